// Package streams mirrors the server's Streams service: appends, ranged and
// subscribing reads, deletes, tombstones, and batched appends.
//
// Oneof groups of the published schema are rendered as sets of optional
// fields, of which exactly one is set; helpers on the client side select
// among them.
package streams

import (
	proto "github.com/gogo/protobuf/proto"

	"go.kurrent.dev/client/api/shared"
)

// ReadReq_Options_ReadDirection is the wire direction of a read.
type ReadReq_Options_ReadDirection int32

const (
	ReadReq_Options_Forwards  ReadReq_Options_ReadDirection = 0
	ReadReq_Options_Backwards ReadReq_Options_ReadDirection = 1
)

// ReadReq opens a ranged read or a subscription.
type ReadReq struct {
	Options *ReadReq_Options `protobuf:"bytes,1,opt,name=options,proto3" json:"options,omitempty"`
}

func (m *ReadReq) Reset()         { *m = ReadReq{} }
func (m *ReadReq) String() string { return proto.CompactTextString(m) }
func (*ReadReq) ProtoMessage()    {}

type ReadReq_Options struct {
	// Exactly one of Stream or All is set.
	Stream *ReadReq_Options_StreamOptions `protobuf:"bytes,1,opt,name=stream,proto3" json:"stream,omitempty"`
	All    *ReadReq_Options_AllOptions    `protobuf:"bytes,2,opt,name=all,proto3" json:"all,omitempty"`

	ReadDirection ReadReq_Options_ReadDirection `protobuf:"varint,3,opt,name=read_direction,json=readDirection,proto3,enum=event_store.client.streams.ReadReq_Options_ReadDirection" json:"read_direction,omitempty"`
	ResolveLinks  bool                          `protobuf:"varint,4,opt,name=resolve_links,json=resolveLinks,proto3" json:"resolve_links,omitempty"`

	// Exactly one of Count or Subscription is set.
	Count        uint64                               `protobuf:"varint,5,opt,name=count,proto3" json:"count,omitempty"`
	Subscription *ReadReq_Options_SubscriptionOptions `protobuf:"bytes,6,opt,name=subscription,proto3" json:"subscription,omitempty"`

	// Exactly one of Filter or NoFilter is set.
	Filter   *ReadReq_Options_FilterOptions `protobuf:"bytes,7,opt,name=filter,proto3" json:"filter,omitempty"`
	NoFilter *shared.Empty                  `protobuf:"bytes,8,opt,name=no_filter,json=noFilter,proto3" json:"no_filter,omitempty"`
}

func (m *ReadReq_Options) Reset()         { *m = ReadReq_Options{} }
func (m *ReadReq_Options) String() string { return proto.CompactTextString(m) }
func (*ReadReq_Options) ProtoMessage()    {}

type ReadReq_Options_StreamOptions struct {
	StreamIdentifier *shared.StreamIdentifier `protobuf:"bytes,1,opt,name=stream_identifier,json=streamIdentifier,proto3" json:"stream_identifier,omitempty"`

	// Exactly one of Revision, Start or End is set.
	Revision *uint64       `protobuf:"varint,2,opt,name=revision,proto3" json:"revision,omitempty"`
	Start    *shared.Empty `protobuf:"bytes,3,opt,name=start,proto3" json:"start,omitempty"`
	End      *shared.Empty `protobuf:"bytes,4,opt,name=end,proto3" json:"end,omitempty"`
}

func (m *ReadReq_Options_StreamOptions) Reset()         { *m = ReadReq_Options_StreamOptions{} }
func (m *ReadReq_Options_StreamOptions) String() string { return proto.CompactTextString(m) }
func (*ReadReq_Options_StreamOptions) ProtoMessage()    {}

type ReadReq_Options_AllOptions struct {
	// Exactly one of Position, Start or End is set.
	Position *shared.AllStreamPosition `protobuf:"bytes,1,opt,name=position,proto3" json:"position,omitempty"`
	Start    *shared.Empty             `protobuf:"bytes,2,opt,name=start,proto3" json:"start,omitempty"`
	End      *shared.Empty             `protobuf:"bytes,3,opt,name=end,proto3" json:"end,omitempty"`
}

func (m *ReadReq_Options_AllOptions) Reset()         { *m = ReadReq_Options_AllOptions{} }
func (m *ReadReq_Options_AllOptions) String() string { return proto.CompactTextString(m) }
func (*ReadReq_Options_AllOptions) ProtoMessage()    {}

type ReadReq_Options_SubscriptionOptions struct{}

func (m *ReadReq_Options_SubscriptionOptions) Reset() {
	*m = ReadReq_Options_SubscriptionOptions{}
}
func (m *ReadReq_Options_SubscriptionOptions) String() string { return proto.CompactTextString(m) }
func (*ReadReq_Options_SubscriptionOptions) ProtoMessage()    {}

type ReadReq_Options_FilterOptions struct {
	// Exactly one of StreamIdentifier or EventType is set.
	StreamIdentifier *ReadReq_Options_FilterOptions_Expression `protobuf:"bytes,1,opt,name=stream_identifier,json=streamIdentifier,proto3" json:"stream_identifier,omitempty"`
	EventType        *ReadReq_Options_FilterOptions_Expression `protobuf:"bytes,2,opt,name=event_type,json=eventType,proto3" json:"event_type,omitempty"`

	// Exactly one of Max or Count is set.
	Max   uint32        `protobuf:"varint,3,opt,name=max,proto3" json:"max,omitempty"`
	Count *shared.Empty `protobuf:"bytes,4,opt,name=count,proto3" json:"count,omitempty"`

	CheckpointIntervalMultiplier uint32 `protobuf:"varint,5,opt,name=checkpointIntervalMultiplier,proto3" json:"checkpointIntervalMultiplier,omitempty"`
}

func (m *ReadReq_Options_FilterOptions) Reset()         { *m = ReadReq_Options_FilterOptions{} }
func (m *ReadReq_Options_FilterOptions) String() string { return proto.CompactTextString(m) }
func (*ReadReq_Options_FilterOptions) ProtoMessage()    {}

type ReadReq_Options_FilterOptions_Expression struct {
	Regex  string   `protobuf:"bytes,1,opt,name=regex,proto3" json:"regex,omitempty"`
	Prefix []string `protobuf:"bytes,2,rep,name=prefix,proto3" json:"prefix,omitempty"`
}

func (m *ReadReq_Options_FilterOptions_Expression) Reset() {
	*m = ReadReq_Options_FilterOptions_Expression{}
}
func (m *ReadReq_Options_FilterOptions_Expression) String() string {
	return proto.CompactTextString(m)
}
func (*ReadReq_Options_FilterOptions_Expression) ProtoMessage() {}

// ReadResp is one frame of a read or subscription stream. Exactly one
// member field is set.
type ReadResp struct {
	Event                 *ReadResp_ReadEvent                `protobuf:"bytes,1,opt,name=event,proto3" json:"event,omitempty"`
	Confirmation          *ReadResp_SubscriptionConfirmation `protobuf:"bytes,2,opt,name=confirmation,proto3" json:"confirmation,omitempty"`
	Checkpoint            *ReadResp_Checkpoint               `protobuf:"bytes,3,opt,name=checkpoint,proto3" json:"checkpoint,omitempty"`
	StreamNotFound        *ReadResp_StreamNotFound           `protobuf:"bytes,4,opt,name=stream_not_found,json=streamNotFound,proto3" json:"stream_not_found,omitempty"`
	FirstStreamPosition   uint64                             `protobuf:"varint,5,opt,name=first_stream_position,json=firstStreamPosition,proto3" json:"first_stream_position,omitempty"`
	LastStreamPosition    uint64                             `protobuf:"varint,6,opt,name=last_stream_position,json=lastStreamPosition,proto3" json:"last_stream_position,omitempty"`
	LastAllStreamPosition *shared.AllStreamPosition          `protobuf:"bytes,7,opt,name=last_all_stream_position,json=lastAllStreamPosition,proto3" json:"last_all_stream_position,omitempty"`
	CaughtUp              *ReadResp_CaughtUp                 `protobuf:"bytes,8,opt,name=caught_up,json=caughtUp,proto3" json:"caught_up,omitempty"`
	FellBehind            *ReadResp_FellBehind               `protobuf:"bytes,9,opt,name=fell_behind,json=fellBehind,proto3" json:"fell_behind,omitempty"`
}

func (m *ReadResp) Reset()         { *m = ReadResp{} }
func (m *ReadResp) String() string { return proto.CompactTextString(m) }
func (*ReadResp) ProtoMessage()    {}

type ReadResp_ReadEvent struct {
	Event *ReadResp_ReadEvent_RecordedEvent `protobuf:"bytes,1,opt,name=event,proto3" json:"event,omitempty"`
	Link  *ReadResp_ReadEvent_RecordedEvent `protobuf:"bytes,2,opt,name=link,proto3" json:"link,omitempty"`

	// Exactly one of CommitPosition or NoPosition is set.
	CommitPosition *uint64       `protobuf:"varint,3,opt,name=commit_position,json=commitPosition,proto3" json:"commit_position,omitempty"`
	NoPosition     *shared.Empty `protobuf:"bytes,4,opt,name=no_position,json=noPosition,proto3" json:"no_position,omitempty"`
}

func (m *ReadResp_ReadEvent) Reset()         { *m = ReadResp_ReadEvent{} }
func (m *ReadResp_ReadEvent) String() string { return proto.CompactTextString(m) }
func (*ReadResp_ReadEvent) ProtoMessage()    {}

type ReadResp_ReadEvent_RecordedEvent struct {
	Id               *shared.UUID             `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	StreamIdentifier *shared.StreamIdentifier `protobuf:"bytes,2,opt,name=stream_identifier,json=streamIdentifier,proto3" json:"stream_identifier,omitempty"`
	StreamRevision   uint64                   `protobuf:"varint,3,opt,name=stream_revision,json=streamRevision,proto3" json:"stream_revision,omitempty"`
	PreparePosition  uint64                   `protobuf:"varint,4,opt,name=prepare_position,json=preparePosition,proto3" json:"prepare_position,omitempty"`
	CommitPosition   uint64                   `protobuf:"varint,5,opt,name=commit_position,json=commitPosition,proto3" json:"commit_position,omitempty"`
	Metadata         map[string]string        `protobuf:"bytes,6,rep,name=metadata,proto3" json:"metadata,omitempty" protobuf_key:"bytes,1,opt,name=key,proto3" protobuf_val:"bytes,2,opt,name=value,proto3"`
	CustomMetadata   []byte                   `protobuf:"bytes,7,opt,name=custom_metadata,json=customMetadata,proto3" json:"custom_metadata,omitempty"`
	Data             []byte                   `protobuf:"bytes,8,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *ReadResp_ReadEvent_RecordedEvent) Reset()         { *m = ReadResp_ReadEvent_RecordedEvent{} }
func (m *ReadResp_ReadEvent_RecordedEvent) String() string { return proto.CompactTextString(m) }
func (*ReadResp_ReadEvent_RecordedEvent) ProtoMessage()    {}

type ReadResp_SubscriptionConfirmation struct {
	SubscriptionId string `protobuf:"bytes,1,opt,name=subscription_id,json=subscriptionId,proto3" json:"subscription_id,omitempty"`
}

func (m *ReadResp_SubscriptionConfirmation) Reset()         { *m = ReadResp_SubscriptionConfirmation{} }
func (m *ReadResp_SubscriptionConfirmation) String() string { return proto.CompactTextString(m) }
func (*ReadResp_SubscriptionConfirmation) ProtoMessage()    {}

type ReadResp_Checkpoint struct {
	CommitPosition  uint64 `protobuf:"varint,1,opt,name=commit_position,json=commitPosition,proto3" json:"commit_position,omitempty"`
	PreparePosition uint64 `protobuf:"varint,2,opt,name=prepare_position,json=preparePosition,proto3" json:"prepare_position,omitempty"`
}

func (m *ReadResp_Checkpoint) Reset()         { *m = ReadResp_Checkpoint{} }
func (m *ReadResp_Checkpoint) String() string { return proto.CompactTextString(m) }
func (*ReadResp_Checkpoint) ProtoMessage()    {}

type ReadResp_StreamNotFound struct {
	StreamIdentifier *shared.StreamIdentifier `protobuf:"bytes,1,opt,name=stream_identifier,json=streamIdentifier,proto3" json:"stream_identifier,omitempty"`
}

func (m *ReadResp_StreamNotFound) Reset()         { *m = ReadResp_StreamNotFound{} }
func (m *ReadResp_StreamNotFound) String() string { return proto.CompactTextString(m) }
func (*ReadResp_StreamNotFound) ProtoMessage()    {}

type ReadResp_CaughtUp struct{}

func (m *ReadResp_CaughtUp) Reset()         { *m = ReadResp_CaughtUp{} }
func (m *ReadResp_CaughtUp) String() string { return proto.CompactTextString(m) }
func (*ReadResp_CaughtUp) ProtoMessage()    {}

type ReadResp_FellBehind struct{}

func (m *ReadResp_FellBehind) Reset()         { *m = ReadResp_FellBehind{} }
func (m *ReadResp_FellBehind) String() string { return proto.CompactTextString(m) }
func (*ReadResp_FellBehind) ProtoMessage()    {}

// AppendReq is one frame of an append stream: first the Options, then one
// frame per proposed message.
type AppendReq struct {
	Options         *AppendReq_Options         `protobuf:"bytes,1,opt,name=options,proto3" json:"options,omitempty"`
	ProposedMessage *AppendReq_ProposedMessage `protobuf:"bytes,2,opt,name=proposed_message,json=proposedMessage,proto3" json:"proposed_message,omitempty"`
}

func (m *AppendReq) Reset()         { *m = AppendReq{} }
func (m *AppendReq) String() string { return proto.CompactTextString(m) }
func (*AppendReq) ProtoMessage()    {}

type AppendReq_Options struct {
	StreamIdentifier *shared.StreamIdentifier `protobuf:"bytes,1,opt,name=stream_identifier,json=streamIdentifier,proto3" json:"stream_identifier,omitempty"`

	// Exactly one of Revision, NoStream, Any or StreamExists is set.
	Revision     *uint64       `protobuf:"varint,2,opt,name=revision,proto3" json:"revision,omitempty"`
	NoStream     *shared.Empty `protobuf:"bytes,3,opt,name=no_stream,json=noStream,proto3" json:"no_stream,omitempty"`
	Any          *shared.Empty `protobuf:"bytes,4,opt,name=any,proto3" json:"any,omitempty"`
	StreamExists *shared.Empty `protobuf:"bytes,5,opt,name=stream_exists,json=streamExists,proto3" json:"stream_exists,omitempty"`
}

func (m *AppendReq_Options) Reset()         { *m = AppendReq_Options{} }
func (m *AppendReq_Options) String() string { return proto.CompactTextString(m) }
func (*AppendReq_Options) ProtoMessage()    {}

type AppendReq_ProposedMessage struct {
	Id             *shared.UUID      `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Metadata       map[string]string `protobuf:"bytes,2,rep,name=metadata,proto3" json:"metadata,omitempty" protobuf_key:"bytes,1,opt,name=key,proto3" protobuf_val:"bytes,2,opt,name=value,proto3"`
	CustomMetadata []byte            `protobuf:"bytes,3,opt,name=custom_metadata,json=customMetadata,proto3" json:"custom_metadata,omitempty"`
	Data           []byte            `protobuf:"bytes,4,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *AppendReq_ProposedMessage) Reset()         { *m = AppendReq_ProposedMessage{} }
func (m *AppendReq_ProposedMessage) String() string { return proto.CompactTextString(m) }
func (*AppendReq_ProposedMessage) ProtoMessage()    {}

// AppendResp closes an append stream. Exactly one of Success or
// WrongExpectedVersion is set.
type AppendResp struct {
	Success              *AppendResp_Success              `protobuf:"bytes,1,opt,name=success,proto3" json:"success,omitempty"`
	WrongExpectedVersion *AppendResp_WrongExpectedVersion `protobuf:"bytes,2,opt,name=wrong_expected_version,json=wrongExpectedVersion,proto3" json:"wrong_expected_version,omitempty"`
}

func (m *AppendResp) Reset()         { *m = AppendResp{} }
func (m *AppendResp) String() string { return proto.CompactTextString(m) }
func (*AppendResp) ProtoMessage()    {}

type AppendResp_Position struct {
	CommitPosition  uint64 `protobuf:"varint,1,opt,name=commit_position,json=commitPosition,proto3" json:"commit_position,omitempty"`
	PreparePosition uint64 `protobuf:"varint,2,opt,name=prepare_position,json=preparePosition,proto3" json:"prepare_position,omitempty"`
}

func (m *AppendResp_Position) Reset()         { *m = AppendResp_Position{} }
func (m *AppendResp_Position) String() string { return proto.CompactTextString(m) }
func (*AppendResp_Position) ProtoMessage()    {}

type AppendResp_Success struct {
	// Exactly one of CurrentRevision or NoStream is set.
	CurrentRevision *uint64       `protobuf:"varint,1,opt,name=current_revision,json=currentRevision,proto3" json:"current_revision,omitempty"`
	NoStream        *shared.Empty `protobuf:"bytes,2,opt,name=no_stream,json=noStream,proto3" json:"no_stream,omitempty"`

	// Exactly one of Position or NoPosition is set.
	Position   *AppendResp_Position `protobuf:"bytes,3,opt,name=position,proto3" json:"position,omitempty"`
	NoPosition *shared.Empty        `protobuf:"bytes,4,opt,name=no_position,json=noPosition,proto3" json:"no_position,omitempty"`
}

func (m *AppendResp_Success) Reset()         { *m = AppendResp_Success{} }
func (m *AppendResp_Success) String() string { return proto.CompactTextString(m) }
func (*AppendResp_Success) ProtoMessage()    {}

type AppendResp_WrongExpectedVersion struct {
	// Exactly one of CurrentRevision or CurrentNoStream is set.
	CurrentRevision *uint64       `protobuf:"varint,1,opt,name=current_revision,json=currentRevision,proto3" json:"current_revision,omitempty"`
	CurrentNoStream *shared.Empty `protobuf:"bytes,2,opt,name=current_no_stream,json=currentNoStream,proto3" json:"current_no_stream,omitempty"`

	// Exactly one of ExpectedRevision, ExpectedAny, ExpectedNoStream or
	// ExpectedStreamExists is set.
	ExpectedRevision     *uint64       `protobuf:"varint,3,opt,name=expected_revision,json=expectedRevision,proto3" json:"expected_revision,omitempty"`
	ExpectedAny          *shared.Empty `protobuf:"bytes,4,opt,name=expected_any,json=expectedAny,proto3" json:"expected_any,omitempty"`
	ExpectedNoStream     *shared.Empty `protobuf:"bytes,5,opt,name=expected_no_stream,json=expectedNoStream,proto3" json:"expected_no_stream,omitempty"`
	ExpectedStreamExists *shared.Empty `protobuf:"bytes,6,opt,name=expected_stream_exists,json=expectedStreamExists,proto3" json:"expected_stream_exists,omitempty"`
}

func (m *AppendResp_WrongExpectedVersion) Reset()         { *m = AppendResp_WrongExpectedVersion{} }
func (m *AppendResp_WrongExpectedVersion) String() string { return proto.CompactTextString(m) }
func (*AppendResp_WrongExpectedVersion) ProtoMessage()    {}

// DeleteReq soft-deletes a stream.
type DeleteReq struct {
	Options *DeleteReq_Options `protobuf:"bytes,1,opt,name=options,proto3" json:"options,omitempty"`
}

func (m *DeleteReq) Reset()         { *m = DeleteReq{} }
func (m *DeleteReq) String() string { return proto.CompactTextString(m) }
func (*DeleteReq) ProtoMessage()    {}

type DeleteReq_Options struct {
	StreamIdentifier *shared.StreamIdentifier `protobuf:"bytes,1,opt,name=stream_identifier,json=streamIdentifier,proto3" json:"stream_identifier,omitempty"`

	// Exactly one of Revision, NoStream, Any or StreamExists is set.
	Revision     *uint64       `protobuf:"varint,2,opt,name=revision,proto3" json:"revision,omitempty"`
	NoStream     *shared.Empty `protobuf:"bytes,3,opt,name=no_stream,json=noStream,proto3" json:"no_stream,omitempty"`
	Any          *shared.Empty `protobuf:"bytes,4,opt,name=any,proto3" json:"any,omitempty"`
	StreamExists *shared.Empty `protobuf:"bytes,5,opt,name=stream_exists,json=streamExists,proto3" json:"stream_exists,omitempty"`
}

func (m *DeleteReq_Options) Reset()         { *m = DeleteReq_Options{} }
func (m *DeleteReq_Options) String() string { return proto.CompactTextString(m) }
func (*DeleteReq_Options) ProtoMessage()    {}

type DeleteResp struct {
	// Exactly one of Position or NoPosition is set.
	Position   *DeleteResp_Position `protobuf:"bytes,1,opt,name=position,proto3" json:"position,omitempty"`
	NoPosition *shared.Empty        `protobuf:"bytes,2,opt,name=no_position,json=noPosition,proto3" json:"no_position,omitempty"`
}

func (m *DeleteResp) Reset()         { *m = DeleteResp{} }
func (m *DeleteResp) String() string { return proto.CompactTextString(m) }
func (*DeleteResp) ProtoMessage()    {}

type DeleteResp_Position struct {
	CommitPosition  uint64 `protobuf:"varint,1,opt,name=commit_position,json=commitPosition,proto3" json:"commit_position,omitempty"`
	PreparePosition uint64 `protobuf:"varint,2,opt,name=prepare_position,json=preparePosition,proto3" json:"prepare_position,omitempty"`
}

func (m *DeleteResp_Position) Reset()         { *m = DeleteResp_Position{} }
func (m *DeleteResp_Position) String() string { return proto.CompactTextString(m) }
func (*DeleteResp_Position) ProtoMessage()    {}

// TombstoneReq hard-deletes a stream.
type TombstoneReq struct {
	Options *TombstoneReq_Options `protobuf:"bytes,1,opt,name=options,proto3" json:"options,omitempty"`
}

func (m *TombstoneReq) Reset()         { *m = TombstoneReq{} }
func (m *TombstoneReq) String() string { return proto.CompactTextString(m) }
func (*TombstoneReq) ProtoMessage()    {}

type TombstoneReq_Options struct {
	StreamIdentifier *shared.StreamIdentifier `protobuf:"bytes,1,opt,name=stream_identifier,json=streamIdentifier,proto3" json:"stream_identifier,omitempty"`

	// Exactly one of Revision, NoStream, Any or StreamExists is set.
	Revision     *uint64       `protobuf:"varint,2,opt,name=revision,proto3" json:"revision,omitempty"`
	NoStream     *shared.Empty `protobuf:"bytes,3,opt,name=no_stream,json=noStream,proto3" json:"no_stream,omitempty"`
	Any          *shared.Empty `protobuf:"bytes,4,opt,name=any,proto3" json:"any,omitempty"`
	StreamExists *shared.Empty `protobuf:"bytes,5,opt,name=stream_exists,json=streamExists,proto3" json:"stream_exists,omitempty"`
}

func (m *TombstoneReq_Options) Reset()         { *m = TombstoneReq_Options{} }
func (m *TombstoneReq_Options) String() string { return proto.CompactTextString(m) }
func (*TombstoneReq_Options) ProtoMessage()    {}

type TombstoneResp struct {
	// Exactly one of Position or NoPosition is set.
	Position   *TombstoneResp_Position `protobuf:"bytes,1,opt,name=position,proto3" json:"position,omitempty"`
	NoPosition *shared.Empty           `protobuf:"bytes,2,opt,name=no_position,json=noPosition,proto3" json:"no_position,omitempty"`
}

func (m *TombstoneResp) Reset()         { *m = TombstoneResp{} }
func (m *TombstoneResp) String() string { return proto.CompactTextString(m) }
func (*TombstoneResp) ProtoMessage()    {}

type TombstoneResp_Position struct {
	CommitPosition  uint64 `protobuf:"varint,1,opt,name=commit_position,json=commitPosition,proto3" json:"commit_position,omitempty"`
	PreparePosition uint64 `protobuf:"varint,2,opt,name=prepare_position,json=preparePosition,proto3" json:"prepare_position,omitempty"`
}

func (m *TombstoneResp_Position) Reset()         { *m = TombstoneResp_Position{} }
func (m *TombstoneResp_Position) String() string { return proto.CompactTextString(m) }
func (*TombstoneResp_Position) ProtoMessage()    {}

// BatchAppendReq is one frame of a batched append: options plus a chunk of
// proposed messages, with IsFinal marking the batch's last frame.
type BatchAppendReq struct {
	CorrelationId    *shared.UUID                      `protobuf:"bytes,1,opt,name=correlation_id,json=correlationId,proto3" json:"correlation_id,omitempty"`
	Options          *BatchAppendReq_Options           `protobuf:"bytes,2,opt,name=options,proto3" json:"options,omitempty"`
	ProposedMessages []*BatchAppendReq_ProposedMessage `protobuf:"bytes,3,rep,name=proposed_messages,json=proposedMessages,proto3" json:"proposed_messages,omitempty"`
	IsFinal          bool                              `protobuf:"varint,4,opt,name=is_final,json=isFinal,proto3" json:"is_final,omitempty"`
}

func (m *BatchAppendReq) Reset()         { *m = BatchAppendReq{} }
func (m *BatchAppendReq) String() string { return proto.CompactTextString(m) }
func (*BatchAppendReq) ProtoMessage()    {}

type BatchAppendReq_Options struct {
	StreamIdentifier *shared.StreamIdentifier `protobuf:"bytes,1,opt,name=stream_identifier,json=streamIdentifier,proto3" json:"stream_identifier,omitempty"`

	// Exactly one of StreamPosition, NoStream, Any or StreamExists is set.
	StreamPosition *uint64       `protobuf:"varint,2,opt,name=stream_position,json=streamPosition,proto3" json:"stream_position,omitempty"`
	NoStream       *shared.Empty `protobuf:"bytes,3,opt,name=no_stream,json=noStream,proto3" json:"no_stream,omitempty"`
	Any            *shared.Empty `protobuf:"bytes,4,opt,name=any,proto3" json:"any,omitempty"`
	StreamExists   *shared.Empty `protobuf:"bytes,5,opt,name=stream_exists,json=streamExists,proto3" json:"stream_exists,omitempty"`

	DeadlineMs uint64 `protobuf:"varint,6,opt,name=deadline_ms,json=deadlineMs,proto3" json:"deadline_ms,omitempty"`
}

func (m *BatchAppendReq_Options) Reset()         { *m = BatchAppendReq_Options{} }
func (m *BatchAppendReq_Options) String() string { return proto.CompactTextString(m) }
func (*BatchAppendReq_Options) ProtoMessage()    {}

type BatchAppendReq_ProposedMessage struct {
	Id             *shared.UUID      `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Metadata       map[string]string `protobuf:"bytes,2,rep,name=metadata,proto3" json:"metadata,omitempty" protobuf_key:"bytes,1,opt,name=key,proto3" protobuf_val:"bytes,2,opt,name=value,proto3"`
	CustomMetadata []byte            `protobuf:"bytes,3,opt,name=custom_metadata,json=customMetadata,proto3" json:"custom_metadata,omitempty"`
	Data           []byte            `protobuf:"bytes,4,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *BatchAppendReq_ProposedMessage) Reset()         { *m = BatchAppendReq_ProposedMessage{} }
func (m *BatchAppendReq_ProposedMessage) String() string { return proto.CompactTextString(m) }
func (*BatchAppendReq_ProposedMessage) ProtoMessage()    {}

// BatchAppendResp correlates the outcome of one batch.
type BatchAppendResp struct {
	CorrelationId    *shared.UUID             `protobuf:"bytes,1,opt,name=correlation_id,json=correlationId,proto3" json:"correlation_id,omitempty"`
	StreamIdentifier *shared.StreamIdentifier `protobuf:"bytes,2,opt,name=stream_identifier,json=streamIdentifier,proto3" json:"stream_identifier,omitempty"`

	// Exactly one of Error or Success is set.
	Error   *BatchAppendResp_Error   `protobuf:"bytes,3,opt,name=error,proto3" json:"error,omitempty"`
	Success *BatchAppendResp_Success `protobuf:"bytes,4,opt,name=success,proto3" json:"success,omitempty"`
}

func (m *BatchAppendResp) Reset()         { *m = BatchAppendResp{} }
func (m *BatchAppendResp) String() string { return proto.CompactTextString(m) }
func (*BatchAppendResp) ProtoMessage()    {}

type BatchAppendResp_Error struct {
	Code    int32  `protobuf:"varint,1,opt,name=code,proto3" json:"code,omitempty"`
	Message string `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
}

func (m *BatchAppendResp_Error) Reset()         { *m = BatchAppendResp_Error{} }
func (m *BatchAppendResp_Error) String() string { return proto.CompactTextString(m) }
func (*BatchAppendResp_Error) ProtoMessage()    {}

type BatchAppendResp_Success struct {
	// Exactly one of CurrentRevision or NoStream is set.
	CurrentRevision *uint64       `protobuf:"varint,1,opt,name=current_revision,json=currentRevision,proto3" json:"current_revision,omitempty"`
	NoStream        *shared.Empty `protobuf:"bytes,2,opt,name=no_stream,json=noStream,proto3" json:"no_stream,omitempty"`

	// Exactly one of Position or NoPosition is set.
	Position   *shared.AllStreamPosition `protobuf:"bytes,3,opt,name=position,proto3" json:"position,omitempty"`
	NoPosition *shared.Empty             `protobuf:"bytes,4,opt,name=no_position,json=noPosition,proto3" json:"no_position,omitempty"`
}

func (m *BatchAppendResp_Success) Reset()         { *m = BatchAppendResp_Success{} }
func (m *BatchAppendResp_Success) String() string { return proto.CompactTextString(m) }
func (*BatchAppendResp_Success) ProtoMessage()    {}

func init() {
	proto.RegisterType((*ReadReq)(nil), "event_store.client.streams.ReadReq")
	proto.RegisterType((*ReadResp)(nil), "event_store.client.streams.ReadResp")
	proto.RegisterType((*AppendReq)(nil), "event_store.client.streams.AppendReq")
	proto.RegisterType((*AppendResp)(nil), "event_store.client.streams.AppendResp")
	proto.RegisterType((*DeleteReq)(nil), "event_store.client.streams.DeleteReq")
	proto.RegisterType((*DeleteResp)(nil), "event_store.client.streams.DeleteResp")
	proto.RegisterType((*TombstoneReq)(nil), "event_store.client.streams.TombstoneReq")
	proto.RegisterType((*TombstoneResp)(nil), "event_store.client.streams.TombstoneResp")
	proto.RegisterType((*BatchAppendReq)(nil), "event_store.client.streams.BatchAppendReq")
	proto.RegisterType((*BatchAppendResp)(nil), "event_store.client.streams.BatchAppendResp")
}
