package protocol

import (
	"encoding/json"
	"time"
)

// StreamMetadata is the stream-level metadata record held by a stream's
// metastream. Zero-valued fields are omitted from the encoded record.
type StreamMetadata struct {
	// MaxCount bounds the count of retained events.
	MaxCount *uint64
	// MaxAge bounds the age of retained events, in whole seconds on the wire.
	MaxAge *time.Duration
	// TruncateBefore marks events below this revision as scavengeable.
	TruncateBefore *uint64
	// CacheControl advises readers how long metadata may be cached.
	CacheControl *time.Duration
	// ACL is the stream's access control list.
	ACL *StreamACL
	// Custom holds caller-defined metadata properties.
	Custom map[string]json.RawMessage
}

// StreamACL is the access control list of a stream.
type StreamACL struct {
	ReadRoles      []string `json:"$r,omitempty"`
	WriteRoles     []string `json:"$w,omitempty"`
	DeleteRoles    []string `json:"$d,omitempty"`
	MetaReadRoles  []string `json:"$mr,omitempty"`
	MetaWriteRoles []string `json:"$mw,omitempty"`
}

// MarshalJSON encodes the metadata record, rendering durations as whole
// seconds and inlining custom properties.
func (m StreamMetadata) MarshalJSON() ([]byte, error) {
	var out = make(map[string]json.RawMessage)
	for k, v := range m.Custom {
		out[k] = v
	}
	var put = func(key string, value interface{}) error {
		var b, err = json.Marshal(value)
		if err != nil {
			return err
		}
		out[key] = b
		return nil
	}
	if m.MaxCount != nil {
		if err := put("$maxCount", *m.MaxCount); err != nil {
			return nil, err
		}
	}
	if m.MaxAge != nil {
		if err := put("$maxAge", int64(*m.MaxAge/time.Second)); err != nil {
			return nil, err
		}
	}
	if m.TruncateBefore != nil {
		if err := put("$tb", *m.TruncateBefore); err != nil {
			return nil, err
		}
	}
	if m.CacheControl != nil {
		if err := put("$cacheControl", int64(*m.CacheControl/time.Second)); err != nil {
			return nil, err
		}
	}
	if m.ACL != nil {
		if err := put("$acl", *m.ACL); err != nil {
			return nil, err
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the metadata record, splitting system properties
// from custom ones.
func (m *StreamMetadata) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*m = StreamMetadata{}

	for key, value := range raw {
		var err error
		switch key {
		case "$maxCount":
			var v uint64
			if err = json.Unmarshal(value, &v); err == nil {
				m.MaxCount = &v
			}
		case "$maxAge":
			var v int64
			if err = json.Unmarshal(value, &v); err == nil {
				var d = time.Duration(v) * time.Second
				m.MaxAge = &d
			}
		case "$tb":
			var v uint64
			if err = json.Unmarshal(value, &v); err == nil {
				m.TruncateBefore = &v
			}
		case "$cacheControl":
			var v int64
			if err = json.Unmarshal(value, &v); err == nil {
				var d = time.Duration(v) * time.Second
				m.CacheControl = &d
			}
		case "$acl":
			var v StreamACL
			if err = json.Unmarshal(value, &v); err == nil {
				m.ACL = &v
			}
		default:
			if m.Custom == nil {
				m.Custom = make(map[string]json.RawMessage)
			}
			m.Custom[key] = value
		}
		if err != nil {
			return ExtendContext(NewValidationError("invalid %s (%s)", key, err), "StreamMetadata")
		}
	}
	return nil
}

// MetastreamOf returns the metastream name of |stream|.
func MetastreamOf(stream string) string { return "$$" + stream }

// MetadataEventType is the event type of stream metadata records.
const MetadataEventType = "$metadata"
