// Package persistent mirrors the server's PersistentSubscriptions service:
// group CRUD, the bidirectional Read stream with its Ack / Nack lanes, parked
// message replay, and group introspection.
package persistent

import (
	proto "github.com/gogo/protobuf/proto"

	"go.kurrent.dev/client/api/shared"
)

// ReadReq is one frame of the consumer's outgoing lane: first Options, then
// Ack / Nack frames as events are processed.
type ReadReq struct {
	// Exactly one of Options, Ack or Nack is set.
	Options *ReadReq_Options `protobuf:"bytes,1,opt,name=options,proto3" json:"options,omitempty"`
	Ack     *ReadReq_Ack     `protobuf:"bytes,2,opt,name=ack,proto3" json:"ack,omitempty"`
	Nack    *ReadReq_Nack    `protobuf:"bytes,3,opt,name=nack,proto3" json:"nack,omitempty"`
}

func (m *ReadReq) Reset()         { *m = ReadReq{} }
func (m *ReadReq) String() string { return proto.CompactTextString(m) }
func (*ReadReq) ProtoMessage()    {}

type ReadReq_Options struct {
	// Exactly one of StreamIdentifier or All is set.
	StreamIdentifier *shared.StreamIdentifier `protobuf:"bytes,1,opt,name=stream_identifier,json=streamIdentifier,proto3" json:"stream_identifier,omitempty"`
	All              *shared.Empty            `protobuf:"bytes,2,opt,name=all,proto3" json:"all,omitempty"`

	GroupName  string `protobuf:"bytes,3,opt,name=group_name,json=groupName,proto3" json:"group_name,omitempty"`
	BufferSize int32  `protobuf:"varint,4,opt,name=buffer_size,json=bufferSize,proto3" json:"buffer_size,omitempty"`
}

func (m *ReadReq_Options) Reset()         { *m = ReadReq_Options{} }
func (m *ReadReq_Options) String() string { return proto.CompactTextString(m) }
func (*ReadReq_Options) ProtoMessage()    {}

type ReadReq_Ack struct {
	Id  []byte         `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Ids []*shared.UUID `protobuf:"bytes,2,rep,name=ids,proto3" json:"ids,omitempty"`
}

func (m *ReadReq_Ack) Reset()         { *m = ReadReq_Ack{} }
func (m *ReadReq_Ack) String() string { return proto.CompactTextString(m) }
func (*ReadReq_Ack) ProtoMessage()    {}

// ReadReq_Nack_Action directs the server's handling of a rejected event.
type ReadReq_Nack_Action int32

const (
	ReadReq_Nack_Unknown ReadReq_Nack_Action = 0
	ReadReq_Nack_Park    ReadReq_Nack_Action = 1
	ReadReq_Nack_Retry   ReadReq_Nack_Action = 2
	ReadReq_Nack_Skip    ReadReq_Nack_Action = 3
	ReadReq_Nack_Stop    ReadReq_Nack_Action = 4
)

type ReadReq_Nack struct {
	Id     []byte              `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Ids    []*shared.UUID      `protobuf:"bytes,2,rep,name=ids,proto3" json:"ids,omitempty"`
	Action ReadReq_Nack_Action `protobuf:"varint,3,opt,name=action,proto3,enum=event_store.client.persistent_subscriptions.ReadReq_Nack_Action" json:"action,omitempty"`
	Reason string              `protobuf:"bytes,4,opt,name=reason,proto3" json:"reason,omitempty"`
}

func (m *ReadReq_Nack) Reset()         { *m = ReadReq_Nack{} }
func (m *ReadReq_Nack) String() string { return proto.CompactTextString(m) }
func (*ReadReq_Nack) ProtoMessage()    {}

// ReadResp is one frame of the incoming lane. Exactly one member is set.
type ReadResp struct {
	Event                    *ReadResp_ReadEvent                `protobuf:"bytes,1,opt,name=event,proto3" json:"event,omitempty"`
	SubscriptionConfirmation *ReadResp_SubscriptionConfirmation `protobuf:"bytes,2,opt,name=subscription_confirmation,json=subscriptionConfirmation,proto3" json:"subscription_confirmation,omitempty"`
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

	// Exactly one of RetryCount or NoRetryCount is set.
	RetryCount   *int32        `protobuf:"varint,5,opt,name=retry_count,json=retryCount,proto3" json:"retry_count,omitempty"`
	NoRetryCount *shared.Empty `protobuf:"bytes,6,opt,name=no_retry_count,json=noRetryCount,proto3" json:"no_retry_count,omitempty"`
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

// Settings parameterize a created or updated group.
type Settings struct {
	ResolveLinks       bool   `protobuf:"varint,1,opt,name=resolve_links,json=resolveLinks,proto3" json:"resolve_links,omitempty"`
	ExtraStatistics    bool   `protobuf:"varint,2,opt,name=extra_statistics,json=extraStatistics,proto3" json:"extra_statistics,omitempty"`
	MaxRetryCount      int32  `protobuf:"varint,3,opt,name=max_retry_count,json=maxRetryCount,proto3" json:"max_retry_count,omitempty"`
	MinCheckpointCount int32  `protobuf:"varint,4,opt,name=min_checkpoint_count,json=minCheckpointCount,proto3" json:"min_checkpoint_count,omitempty"`
	MaxCheckpointCount int32  `protobuf:"varint,5,opt,name=max_checkpoint_count,json=maxCheckpointCount,proto3" json:"max_checkpoint_count,omitempty"`
	MaxSubscriberCount int32  `protobuf:"varint,6,opt,name=max_subscriber_count,json=maxSubscriberCount,proto3" json:"max_subscriber_count,omitempty"`
	LiveBufferSize     int32  `protobuf:"varint,7,opt,name=live_buffer_size,json=liveBufferSize,proto3" json:"live_buffer_size,omitempty"`
	ReadBatchSize      int32  `protobuf:"varint,8,opt,name=read_batch_size,json=readBatchSize,proto3" json:"read_batch_size,omitempty"`
	HistoryBufferSize  int32  `protobuf:"varint,9,opt,name=history_buffer_size,json=historyBufferSize,proto3" json:"history_buffer_size,omitempty"`
	MessageTimeoutMs   int32  `protobuf:"varint,10,opt,name=message_timeout_ms,json=messageTimeoutMs,proto3" json:"message_timeout_ms,omitempty"`
	CheckpointAfterMs  int32  `protobuf:"varint,11,opt,name=checkpoint_after_ms,json=checkpointAfterMs,proto3" json:"checkpoint_after_ms,omitempty"`
	ConsumerStrategy   string `protobuf:"bytes,12,opt,name=consumer_strategy,json=consumerStrategy,proto3" json:"consumer_strategy,omitempty"`
}

func (m *Settings) Reset()         { *m = Settings{} }
func (m *Settings) String() string { return proto.CompactTextString(m) }
func (*Settings) ProtoMessage()    {}

// StreamOptions position a group within a single stream.
type StreamOptions struct {
	StreamIdentifier *shared.StreamIdentifier `protobuf:"bytes,1,opt,name=stream_identifier,json=streamIdentifier,proto3" json:"stream_identifier,omitempty"`

	// Exactly one of Revision, Start or End is set.
	Revision *uint64       `protobuf:"varint,2,opt,name=revision,proto3" json:"revision,omitempty"`
	Start    *shared.Empty `protobuf:"bytes,3,opt,name=start,proto3" json:"start,omitempty"`
	End      *shared.Empty `protobuf:"bytes,4,opt,name=end,proto3" json:"end,omitempty"`
}

func (m *StreamOptions) Reset()         { *m = StreamOptions{} }
func (m *StreamOptions) String() string { return proto.CompactTextString(m) }
func (*StreamOptions) ProtoMessage()    {}

// AllOptions position a group within $all.
type AllOptions struct {
	// Exactly one of Position, Start or End is set.
	Position *shared.AllStreamPosition `protobuf:"bytes,1,opt,name=position,proto3" json:"position,omitempty"`
	Start    *shared.Empty             `protobuf:"bytes,2,opt,name=start,proto3" json:"start,omitempty"`
	End      *shared.Empty             `protobuf:"bytes,3,opt,name=end,proto3" json:"end,omitempty"`

	Filter   *AllOptions_FilterOptions `protobuf:"bytes,4,opt,name=filter,proto3" json:"filter,omitempty"`
	NoFilter *shared.Empty             `protobuf:"bytes,5,opt,name=no_filter,json=noFilter,proto3" json:"no_filter,omitempty"`
}

func (m *AllOptions) Reset()         { *m = AllOptions{} }
func (m *AllOptions) String() string { return proto.CompactTextString(m) }
func (*AllOptions) ProtoMessage()    {}

type AllOptions_FilterOptions struct {
	// Exactly one of StreamIdentifier or EventType is set.
	StreamIdentifier *AllOptions_FilterOptions_Expression `protobuf:"bytes,1,opt,name=stream_identifier,json=streamIdentifier,proto3" json:"stream_identifier,omitempty"`
	EventType        *AllOptions_FilterOptions_Expression `protobuf:"bytes,2,opt,name=event_type,json=eventType,proto3" json:"event_type,omitempty"`

	Max                          uint32        `protobuf:"varint,3,opt,name=max,proto3" json:"max,omitempty"`
	Count                        *shared.Empty `protobuf:"bytes,4,opt,name=count,proto3" json:"count,omitempty"`
	CheckpointIntervalMultiplier uint32        `protobuf:"varint,5,opt,name=checkpointIntervalMultiplier,proto3" json:"checkpointIntervalMultiplier,omitempty"`
}

func (m *AllOptions_FilterOptions) Reset()         { *m = AllOptions_FilterOptions{} }
func (m *AllOptions_FilterOptions) String() string { return proto.CompactTextString(m) }
func (*AllOptions_FilterOptions) ProtoMessage()    {}

type AllOptions_FilterOptions_Expression struct {
	Regex  string   `protobuf:"bytes,1,opt,name=regex,proto3" json:"regex,omitempty"`
	Prefix []string `protobuf:"bytes,2,rep,name=prefix,proto3" json:"prefix,omitempty"`
}

func (m *AllOptions_FilterOptions_Expression) Reset() {
	*m = AllOptions_FilterOptions_Expression{}
}
func (m *AllOptions_FilterOptions_Expression) String() string { return proto.CompactTextString(m) }
func (*AllOptions_FilterOptions_Expression) ProtoMessage()    {}

// CreateReq creates a persistent subscription group.
type CreateReq struct {
	Options *CreateReq_Options `protobuf:"bytes,1,opt,name=options,proto3" json:"options,omitempty"`
}

func (m *CreateReq) Reset()         { *m = CreateReq{} }
func (m *CreateReq) String() string { return proto.CompactTextString(m) }
func (*CreateReq) ProtoMessage()    {}

type CreateReq_Options struct {
	// Exactly one of Stream or All is set.
	Stream *StreamOptions `protobuf:"bytes,1,opt,name=stream,proto3" json:"stream,omitempty"`
	All    *AllOptions    `protobuf:"bytes,2,opt,name=all,proto3" json:"all,omitempty"`

	GroupName string    `protobuf:"bytes,3,opt,name=group_name,json=groupName,proto3" json:"group_name,omitempty"`
	Settings  *Settings `protobuf:"bytes,4,opt,name=settings,proto3" json:"settings,omitempty"`
}

func (m *CreateReq_Options) Reset()         { *m = CreateReq_Options{} }
func (m *CreateReq_Options) String() string { return proto.CompactTextString(m) }
func (*CreateReq_Options) ProtoMessage()    {}

type CreateResp struct{}

func (m *CreateResp) Reset()         { *m = CreateResp{} }
func (m *CreateResp) String() string { return proto.CompactTextString(m) }
func (*CreateResp) ProtoMessage()    {}

// UpdateReq updates a group's settings and position.
type UpdateReq struct {
	Options *UpdateReq_Options `protobuf:"bytes,1,opt,name=options,proto3" json:"options,omitempty"`
}

func (m *UpdateReq) Reset()         { *m = UpdateReq{} }
func (m *UpdateReq) String() string { return proto.CompactTextString(m) }
func (*UpdateReq) ProtoMessage()    {}

type UpdateReq_Options struct {
	// Exactly one of Stream or All is set.
	Stream *StreamOptions `protobuf:"bytes,1,opt,name=stream,proto3" json:"stream,omitempty"`
	All    *AllOptions    `protobuf:"bytes,2,opt,name=all,proto3" json:"all,omitempty"`

	GroupName string    `protobuf:"bytes,3,opt,name=group_name,json=groupName,proto3" json:"group_name,omitempty"`
	Settings  *Settings `protobuf:"bytes,4,opt,name=settings,proto3" json:"settings,omitempty"`
}

func (m *UpdateReq_Options) Reset()         { *m = UpdateReq_Options{} }
func (m *UpdateReq_Options) String() string { return proto.CompactTextString(m) }
func (*UpdateReq_Options) ProtoMessage()    {}

type UpdateResp struct{}

func (m *UpdateResp) Reset()         { *m = UpdateResp{} }
func (m *UpdateResp) String() string { return proto.CompactTextString(m) }
func (*UpdateResp) ProtoMessage()    {}

// DeleteReq removes a group.
type DeleteReq struct {
	Options *DeleteReq_Options `protobuf:"bytes,1,opt,name=options,proto3" json:"options,omitempty"`
}

func (m *DeleteReq) Reset()         { *m = DeleteReq{} }
func (m *DeleteReq) String() string { return proto.CompactTextString(m) }
func (*DeleteReq) ProtoMessage()    {}

type DeleteReq_Options struct {
	// Exactly one of StreamIdentifier or All is set.
	StreamIdentifier *shared.StreamIdentifier `protobuf:"bytes,1,opt,name=stream_identifier,json=streamIdentifier,proto3" json:"stream_identifier,omitempty"`
	All              *shared.Empty            `protobuf:"bytes,2,opt,name=all,proto3" json:"all,omitempty"`

	GroupName string `protobuf:"bytes,3,opt,name=group_name,json=groupName,proto3" json:"group_name,omitempty"`
}

func (m *DeleteReq_Options) Reset()         { *m = DeleteReq_Options{} }
func (m *DeleteReq_Options) String() string { return proto.CompactTextString(m) }
func (*DeleteReq_Options) ProtoMessage()    {}

type DeleteResp struct{}

func (m *DeleteResp) Reset()         { *m = DeleteResp{} }
func (m *DeleteResp) String() string { return proto.CompactTextString(m) }
func (*DeleteResp) ProtoMessage()    {}

// ReplayParkedReq replays a group's parked messages.
type ReplayParkedReq struct {
	Options *ReplayParkedReq_Options `protobuf:"bytes,1,opt,name=options,proto3" json:"options,omitempty"`
}

func (m *ReplayParkedReq) Reset()         { *m = ReplayParkedReq{} }
func (m *ReplayParkedReq) String() string { return proto.CompactTextString(m) }
func (*ReplayParkedReq) ProtoMessage()    {}

type ReplayParkedReq_Options struct {
	GroupName string `protobuf:"bytes,1,opt,name=group_name,json=groupName,proto3" json:"group_name,omitempty"`

	// Exactly one of StreamIdentifier or All is set.
	StreamIdentifier *shared.StreamIdentifier `protobuf:"bytes,2,opt,name=stream_identifier,json=streamIdentifier,proto3" json:"stream_identifier,omitempty"`
	All              *shared.Empty            `protobuf:"bytes,3,opt,name=all,proto3" json:"all,omitempty"`

	// Exactly one of StopAt or NoLimit is set.
	StopAt  *int64        `protobuf:"varint,4,opt,name=stop_at,json=stopAt,proto3" json:"stop_at,omitempty"`
	NoLimit *shared.Empty `protobuf:"bytes,5,opt,name=no_limit,json=noLimit,proto3" json:"no_limit,omitempty"`
}

func (m *ReplayParkedReq_Options) Reset()         { *m = ReplayParkedReq_Options{} }
func (m *ReplayParkedReq_Options) String() string { return proto.CompactTextString(m) }
func (*ReplayParkedReq_Options) ProtoMessage()    {}

type ReplayParkedResp struct{}

func (m *ReplayParkedResp) Reset()         { *m = ReplayParkedResp{} }
func (m *ReplayParkedResp) String() string { return proto.CompactTextString(m) }
func (*ReplayParkedResp) ProtoMessage()    {}

// SubscriptionInfo describes one group.
type SubscriptionInfo struct {
	EventSource                   string                             `protobuf:"bytes,1,opt,name=event_source,json=eventSource,proto3" json:"event_source,omitempty"`
	GroupName                     string                             `protobuf:"bytes,2,opt,name=group_name,json=groupName,proto3" json:"group_name,omitempty"`
	Status                        string                             `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	Connections                   []*SubscriptionInfo_ConnectionInfo `protobuf:"bytes,4,rep,name=connections,proto3" json:"connections,omitempty"`
	AveragePerSecond              int32                              `protobuf:"varint,5,opt,name=average_per_second,json=averagePerSecond,proto3" json:"average_per_second,omitempty"`
	TotalItems                    int64                              `protobuf:"varint,6,opt,name=total_items,json=totalItems,proto3" json:"total_items,omitempty"`
	LastCheckpointedEventPosition string                             `protobuf:"bytes,7,opt,name=last_checkpointed_event_position,json=lastCheckpointedEventPosition,proto3" json:"last_checkpointed_event_position,omitempty"`
	LastKnownEventPosition        string                             `protobuf:"bytes,8,opt,name=last_known_event_position,json=lastKnownEventPosition,proto3" json:"last_known_event_position,omitempty"`
	ResolveLinkTos                bool                               `protobuf:"varint,9,opt,name=resolve_link_tos,json=resolveLinkTos,proto3" json:"resolve_link_tos,omitempty"`
	StartFrom                     string                             `protobuf:"bytes,10,opt,name=start_from,json=startFrom,proto3" json:"start_from,omitempty"`
	MessageTimeoutMilliseconds    int32                              `protobuf:"varint,11,opt,name=message_timeout_milliseconds,json=messageTimeoutMilliseconds,proto3" json:"message_timeout_milliseconds,omitempty"`
	ExtraStatistics               bool                               `protobuf:"varint,12,opt,name=extra_statistics,json=extraStatistics,proto3" json:"extra_statistics,omitempty"`
	MaxRetryCount                 int32                              `protobuf:"varint,13,opt,name=max_retry_count,json=maxRetryCount,proto3" json:"max_retry_count,omitempty"`
	LiveBufferSize                int32                              `protobuf:"varint,14,opt,name=live_buffer_size,json=liveBufferSize,proto3" json:"live_buffer_size,omitempty"`
	BufferSize                    int32                              `protobuf:"varint,15,opt,name=buffer_size,json=bufferSize,proto3" json:"buffer_size,omitempty"`
	ReadBatchSize                 int32                              `protobuf:"varint,16,opt,name=read_batch_size,json=readBatchSize,proto3" json:"read_batch_size,omitempty"`
	CheckPointAfterMilliseconds   int32                              `protobuf:"varint,17,opt,name=check_point_after_milliseconds,json=checkPointAfterMilliseconds,proto3" json:"check_point_after_milliseconds,omitempty"`
	MinCheckPointCount            int32                              `protobuf:"varint,18,opt,name=min_check_point_count,json=minCheckPointCount,proto3" json:"min_check_point_count,omitempty"`
	MaxCheckPointCount            int32                              `protobuf:"varint,19,opt,name=max_check_point_count,json=maxCheckPointCount,proto3" json:"max_check_point_count,omitempty"`
	ReadBufferCount               int32                              `protobuf:"varint,20,opt,name=read_buffer_count,json=readBufferCount,proto3" json:"read_buffer_count,omitempty"`
	LiveBufferCount               int64                              `protobuf:"varint,21,opt,name=live_buffer_count,json=liveBufferCount,proto3" json:"live_buffer_count,omitempty"`
	RetryBufferCount              int32                              `protobuf:"varint,22,opt,name=retry_buffer_count,json=retryBufferCount,proto3" json:"retry_buffer_count,omitempty"`
	TotalInFlightMessages         int32                              `protobuf:"varint,23,opt,name=total_in_flight_messages,json=totalInFlightMessages,proto3" json:"total_in_flight_messages,omitempty"`
	OutstandingMessagesCount      int32                              `protobuf:"varint,24,opt,name=outstanding_messages_count,json=outstandingMessagesCount,proto3" json:"outstanding_messages_count,omitempty"`
	NamedConsumerStrategy         string                             `protobuf:"bytes,25,opt,name=named_consumer_strategy,json=namedConsumerStrategy,proto3" json:"named_consumer_strategy,omitempty"`
	MaxSubscriberCount            int32                              `protobuf:"varint,26,opt,name=max_subscriber_count,json=maxSubscriberCount,proto3" json:"max_subscriber_count,omitempty"`
	ParkedMessageCount            int64                              `protobuf:"varint,27,opt,name=parked_message_count,json=parkedMessageCount,proto3" json:"parked_message_count,omitempty"`
}

func (m *SubscriptionInfo) Reset()         { *m = SubscriptionInfo{} }
func (m *SubscriptionInfo) String() string { return proto.CompactTextString(m) }
func (*SubscriptionInfo) ProtoMessage()    {}

type SubscriptionInfo_ConnectionInfo struct {
	From                      string `protobuf:"bytes,1,opt,name=from,proto3" json:"from,omitempty"`
	Username                  string `protobuf:"bytes,2,opt,name=username,proto3" json:"username,omitempty"`
	AverageItemsPerSecond     int32  `protobuf:"varint,3,opt,name=average_items_per_second,json=averageItemsPerSecond,proto3" json:"average_items_per_second,omitempty"`
	TotalItems                int64  `protobuf:"varint,4,opt,name=total_items,json=totalItems,proto3" json:"total_items,omitempty"`
	CountSinceLastMeasurement int64  `protobuf:"varint,5,opt,name=count_since_last_measurement,json=countSinceLastMeasurement,proto3" json:"count_since_last_measurement,omitempty"`
	AvailableSlots            int32  `protobuf:"varint,6,opt,name=available_slots,json=availableSlots,proto3" json:"available_slots,omitempty"`
	InFlightMessages          int32  `protobuf:"varint,7,opt,name=in_flight_messages,json=inFlightMessages,proto3" json:"in_flight_messages,omitempty"`
	ConnectionName            string `protobuf:"bytes,8,opt,name=connection_name,json=connectionName,proto3" json:"connection_name,omitempty"`
}

func (m *SubscriptionInfo_ConnectionInfo) Reset()         { *m = SubscriptionInfo_ConnectionInfo{} }
func (m *SubscriptionInfo_ConnectionInfo) String() string { return proto.CompactTextString(m) }
func (*SubscriptionInfo_ConnectionInfo) ProtoMessage()    {}

// GetInfoReq fetches one group's SubscriptionInfo.
type GetInfoReq struct {
	Options *GetInfoReq_Options `protobuf:"bytes,1,opt,name=options,proto3" json:"options,omitempty"`
}

func (m *GetInfoReq) Reset()         { *m = GetInfoReq{} }
func (m *GetInfoReq) String() string { return proto.CompactTextString(m) }
func (*GetInfoReq) ProtoMessage()    {}

type GetInfoReq_Options struct {
	// Exactly one of StreamIdentifier or All is set.
	StreamIdentifier *shared.StreamIdentifier `protobuf:"bytes,1,opt,name=stream_identifier,json=streamIdentifier,proto3" json:"stream_identifier,omitempty"`
	All              *shared.Empty            `protobuf:"bytes,2,opt,name=all,proto3" json:"all,omitempty"`

	GroupName string `protobuf:"bytes,3,opt,name=group_name,json=groupName,proto3" json:"group_name,omitempty"`
}

func (m *GetInfoReq_Options) Reset()         { *m = GetInfoReq_Options{} }
func (m *GetInfoReq_Options) String() string { return proto.CompactTextString(m) }
func (*GetInfoReq_Options) ProtoMessage()    {}

type GetInfoResp struct {
	SubscriptionInfo *SubscriptionInfo `protobuf:"bytes,1,opt,name=subscription_info,json=subscriptionInfo,proto3" json:"subscription_info,omitempty"`
}

func (m *GetInfoResp) Reset()         { *m = GetInfoResp{} }
func (m *GetInfoResp) String() string { return proto.CompactTextString(m) }
func (*GetInfoResp) ProtoMessage()    {}

// ListReq lists groups, optionally of a single stream.
type ListReq struct {
	Options *ListReq_Options `protobuf:"bytes,1,opt,name=options,proto3" json:"options,omitempty"`
}

func (m *ListReq) Reset()         { *m = ListReq{} }
func (m *ListReq) String() string { return proto.CompactTextString(m) }
func (*ListReq) ProtoMessage()    {}

type ListReq_Options struct {
	// Exactly one of ListAllSubscriptions or ListForStream is set.
	ListAllSubscriptions *shared.Empty         `protobuf:"bytes,1,opt,name=list_all_subscriptions,json=listAllSubscriptions,proto3" json:"list_all_subscriptions,omitempty"`
	ListForStream        *ListReq_StreamOption `protobuf:"bytes,2,opt,name=list_for_stream,json=listForStream,proto3" json:"list_for_stream,omitempty"`
}

func (m *ListReq_Options) Reset()         { *m = ListReq_Options{} }
func (m *ListReq_Options) String() string { return proto.CompactTextString(m) }
func (*ListReq_Options) ProtoMessage()    {}

type ListReq_StreamOption struct {
	// Exactly one of Stream or All is set.
	Stream *shared.StreamIdentifier `protobuf:"bytes,1,opt,name=stream,proto3" json:"stream,omitempty"`
	All    *shared.Empty            `protobuf:"bytes,2,opt,name=all,proto3" json:"all,omitempty"`
}

func (m *ListReq_StreamOption) Reset()         { *m = ListReq_StreamOption{} }
func (m *ListReq_StreamOption) String() string { return proto.CompactTextString(m) }
func (*ListReq_StreamOption) ProtoMessage()    {}

type ListResp struct {
	Subscriptions []*SubscriptionInfo `protobuf:"bytes,1,rep,name=subscriptions,proto3" json:"subscriptions,omitempty"`
}

func (m *ListResp) Reset()         { *m = ListResp{} }
func (m *ListResp) String() string { return proto.CompactTextString(m) }
func (*ListResp) ProtoMessage()    {}

func init() {
	proto.RegisterType((*ReadReq)(nil), "event_store.client.persistent_subscriptions.ReadReq")
	proto.RegisterType((*ReadResp)(nil), "event_store.client.persistent_subscriptions.ReadResp")
	proto.RegisterType((*CreateReq)(nil), "event_store.client.persistent_subscriptions.CreateReq")
	proto.RegisterType((*CreateResp)(nil), "event_store.client.persistent_subscriptions.CreateResp")
	proto.RegisterType((*UpdateReq)(nil), "event_store.client.persistent_subscriptions.UpdateReq")
	proto.RegisterType((*UpdateResp)(nil), "event_store.client.persistent_subscriptions.UpdateResp")
	proto.RegisterType((*DeleteReq)(nil), "event_store.client.persistent_subscriptions.DeleteReq")
	proto.RegisterType((*DeleteResp)(nil), "event_store.client.persistent_subscriptions.DeleteResp")
	proto.RegisterType((*ReplayParkedReq)(nil), "event_store.client.persistent_subscriptions.ReplayParkedReq")
	proto.RegisterType((*ReplayParkedResp)(nil), "event_store.client.persistent_subscriptions.ReplayParkedResp")
	proto.RegisterType((*GetInfoReq)(nil), "event_store.client.persistent_subscriptions.GetInfoReq")
	proto.RegisterType((*GetInfoResp)(nil), "event_store.client.persistent_subscriptions.GetInfoResp")
	proto.RegisterType((*ListReq)(nil), "event_store.client.persistent_subscriptions.ListReq")
	proto.RegisterType((*ListResp)(nil), "event_store.client.persistent_subscriptions.ListResp")
}
