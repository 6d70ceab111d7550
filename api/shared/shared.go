// Package shared holds message types common to all KurrentDB gRPC services.
//
// Packages under api/ are a hand-maintained rendering of the server's
// published proto schemas, trimmed to the fields this client exercises.
// They follow the gogo-proto conventions of the rest of the repository.
package shared

import (
	proto "github.com/gogo/protobuf/proto"
)

// Empty is the canonical empty message.
type Empty struct{}

func (m *Empty) Reset()         { *m = Empty{} }
func (m *Empty) String() string { return proto.CompactTextString(m) }
func (*Empty) ProtoMessage()    {}

// UUID is a server UUID in its string rendering.
type UUID struct {
	String_ string `protobuf:"bytes,2,opt,name=string,proto3" json:"string,omitempty"`
}

func (m *UUID) Reset()         { *m = UUID{} }
func (m *UUID) String() string { return proto.CompactTextString(m) }
func (*UUID) ProtoMessage()    {}

// StreamIdentifier names a stream.
type StreamIdentifier struct {
	StreamName []byte `protobuf:"bytes,3,opt,name=stream_name,json=streamName,proto3" json:"stream_name,omitempty"`
}

func (m *StreamIdentifier) Reset()         { *m = StreamIdentifier{} }
func (m *StreamIdentifier) String() string { return proto.CompactTextString(m) }
func (*StreamIdentifier) ProtoMessage()    {}

func (m *StreamIdentifier) GetStreamName() []byte {
	if m != nil {
		return m.StreamName
	}
	return nil
}

// AllStreamPosition is a commit / prepare position pair within $all.
type AllStreamPosition struct {
	CommitPosition  uint64 `protobuf:"varint,1,opt,name=commit_position,json=commitPosition,proto3" json:"commit_position,omitempty"`
	PreparePosition uint64 `protobuf:"varint,2,opt,name=prepare_position,json=preparePosition,proto3" json:"prepare_position,omitempty"`
}

func (m *AllStreamPosition) Reset()         { *m = AllStreamPosition{} }
func (m *AllStreamPosition) String() string { return proto.CompactTextString(m) }
func (*AllStreamPosition) ProtoMessage()    {}

func init() {
	proto.RegisterType((*Empty)(nil), "event_store.client.Empty")
	proto.RegisterType((*UUID)(nil), "event_store.client.UUID")
	proto.RegisterType((*StreamIdentifier)(nil), "event_store.client.StreamIdentifier")
	proto.RegisterType((*AllStreamPosition)(nil), "event_store.client.AllStreamPosition")
}
