package protocol

import (
	"encoding/json"
	"time"

	gc "gopkg.in/check.v1"
)

type MetadataSuite struct{}

func (s *MetadataSuite) TestMetadataRoundTrip(c *gc.C) {
	var maxCount = uint64(1000)
	var maxAge = 48 * time.Hour
	var tb = uint64(12)

	var meta = StreamMetadata{
		MaxCount:       &maxCount,
		MaxAge:         &maxAge,
		TruncateBefore: &tb,
		ACL: &StreamACL{
			ReadRoles:  []string{"$admins", "ops"},
			WriteRoles: []string{"$admins"},
		},
		Custom: map[string]json.RawMessage{
			"owner": json.RawMessage(`"billing-team"`),
		},
	}

	var b, err = json.Marshal(meta)
	c.Assert(err, gc.IsNil)

	var decoded StreamMetadata
	c.Assert(json.Unmarshal(b, &decoded), gc.IsNil)
	c.Check(decoded, gc.DeepEquals, meta)
}

func (s *MetadataSuite) TestMetadataSystemKeys(c *gc.C) {
	var maxAge = 30 * time.Second
	var b, err = json.Marshal(StreamMetadata{MaxAge: &maxAge})
	c.Assert(err, gc.IsNil)
	c.Check(string(b), gc.Equals, `{"$maxAge":30}`)

	var decoded StreamMetadata
	c.Assert(json.Unmarshal([]byte(`{"$tb":7,"custom":true}`), &decoded), gc.IsNil)
	c.Check(*decoded.TruncateBefore, gc.Equals, uint64(7))
	c.Check(string(decoded.Custom["custom"]), gc.Equals, "true")
}

func (s *MetadataSuite) TestMetastreamNaming(c *gc.C) {
	c.Check(MetastreamOf("orders"), gc.Equals, "$$orders")
}

var _ = gc.Suite(&MetadataSuite{})
