// Package projections mirrors the server's Projections service.
package projections

import (
	context "context"

	proto "github.com/gogo/protobuf/proto"
	types "github.com/gogo/protobuf/types"
	grpc "google.golang.org/grpc"

	"go.kurrent.dev/client/api/shared"
)

type CreateReq struct {
	Options *CreateReq_Options `protobuf:"bytes,1,opt,name=options,proto3" json:"options,omitempty"`
}

func (m *CreateReq) Reset()         { *m = CreateReq{} }
func (m *CreateReq) String() string { return proto.CompactTextString(m) }
func (*CreateReq) ProtoMessage()    {}

type CreateReq_Options struct {
	Continuous *CreateReq_Options_Continuous `protobuf:"bytes,1,opt,name=continuous,proto3" json:"continuous,omitempty"`
	Query      string                        `protobuf:"bytes,2,opt,name=query,proto3" json:"query,omitempty"`
}

func (m *CreateReq_Options) Reset()         { *m = CreateReq_Options{} }
func (m *CreateReq_Options) String() string { return proto.CompactTextString(m) }
func (*CreateReq_Options) ProtoMessage()    {}

type CreateReq_Options_Continuous struct {
	Name                string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	TrackEmittedStreams bool   `protobuf:"varint,2,opt,name=track_emitted_streams,json=trackEmittedStreams,proto3" json:"track_emitted_streams,omitempty"`
}

func (m *CreateReq_Options_Continuous) Reset()         { *m = CreateReq_Options_Continuous{} }
func (m *CreateReq_Options_Continuous) String() string { return proto.CompactTextString(m) }
func (*CreateReq_Options_Continuous) ProtoMessage()    {}

type CreateResp struct{}

func (m *CreateResp) Reset()         { *m = CreateResp{} }
func (m *CreateResp) String() string { return proto.CompactTextString(m) }
func (*CreateResp) ProtoMessage()    {}

type UpdateReq struct {
	Options *UpdateReq_Options `protobuf:"bytes,1,opt,name=options,proto3" json:"options,omitempty"`
}

func (m *UpdateReq) Reset()         { *m = UpdateReq{} }
func (m *UpdateReq) String() string { return proto.CompactTextString(m) }
func (*UpdateReq) ProtoMessage()    {}

type UpdateReq_Options struct {
	Name  string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Query string `protobuf:"bytes,2,opt,name=query,proto3" json:"query,omitempty"`

	// Exactly one of EmitEnabled or NoEmitOptions is set.
	EmitEnabled   *bool         `protobuf:"varint,3,opt,name=emit_enabled,json=emitEnabled,proto3" json:"emit_enabled,omitempty"`
	NoEmitOptions *shared.Empty `protobuf:"bytes,4,opt,name=no_emit_options,json=noEmitOptions,proto3" json:"no_emit_options,omitempty"`
}

func (m *UpdateReq_Options) Reset()         { *m = UpdateReq_Options{} }
func (m *UpdateReq_Options) String() string { return proto.CompactTextString(m) }
func (*UpdateReq_Options) ProtoMessage()    {}

type UpdateResp struct{}

func (m *UpdateResp) Reset()         { *m = UpdateResp{} }
func (m *UpdateResp) String() string { return proto.CompactTextString(m) }
func (*UpdateResp) ProtoMessage()    {}

type DeleteReq struct {
	Options *DeleteReq_Options `protobuf:"bytes,1,opt,name=options,proto3" json:"options,omitempty"`
}

func (m *DeleteReq) Reset()         { *m = DeleteReq{} }
func (m *DeleteReq) String() string { return proto.CompactTextString(m) }
func (*DeleteReq) ProtoMessage()    {}

type DeleteReq_Options struct {
	Name                   string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	DeleteEmittedStreams   bool   `protobuf:"varint,2,opt,name=delete_emitted_streams,json=deleteEmittedStreams,proto3" json:"delete_emitted_streams,omitempty"`
	DeleteStateStream      bool   `protobuf:"varint,3,opt,name=delete_state_stream,json=deleteStateStream,proto3" json:"delete_state_stream,omitempty"`
	DeleteCheckpointStream bool   `protobuf:"varint,4,opt,name=delete_checkpoint_stream,json=deleteCheckpointStream,proto3" json:"delete_checkpoint_stream,omitempty"`
}

func (m *DeleteReq_Options) Reset()         { *m = DeleteReq_Options{} }
func (m *DeleteReq_Options) String() string { return proto.CompactTextString(m) }
func (*DeleteReq_Options) ProtoMessage()    {}

type DeleteResp struct{}

func (m *DeleteResp) Reset()         { *m = DeleteResp{} }
func (m *DeleteResp) String() string { return proto.CompactTextString(m) }
func (*DeleteResp) ProtoMessage()    {}

type StatisticsReq struct {
	Options *StatisticsReq_Options `protobuf:"bytes,1,opt,name=options,proto3" json:"options,omitempty"`
}

func (m *StatisticsReq) Reset()         { *m = StatisticsReq{} }
func (m *StatisticsReq) String() string { return proto.CompactTextString(m) }
func (*StatisticsReq) ProtoMessage()    {}

type StatisticsReq_Options struct {
	// Exactly one of Name, All, Transient or Continuous is set.
	Name       *string       `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	All        *shared.Empty `protobuf:"bytes,2,opt,name=all,proto3" json:"all,omitempty"`
	Transient  *shared.Empty `protobuf:"bytes,3,opt,name=transient,proto3" json:"transient,omitempty"`
	Continuous *shared.Empty `protobuf:"bytes,4,opt,name=continuous,proto3" json:"continuous,omitempty"`
}

func (m *StatisticsReq_Options) Reset()         { *m = StatisticsReq_Options{} }
func (m *StatisticsReq_Options) String() string { return proto.CompactTextString(m) }
func (*StatisticsReq_Options) ProtoMessage()    {}

type StatisticsResp struct {
	Details *StatisticsResp_Details `protobuf:"bytes,1,opt,name=details,proto3" json:"details,omitempty"`
}

func (m *StatisticsResp) Reset()         { *m = StatisticsResp{} }
func (m *StatisticsResp) String() string { return proto.CompactTextString(m) }
func (*StatisticsResp) ProtoMessage()    {}

type StatisticsResp_Details struct {
	CoreProcessingTime                 int64   `protobuf:"varint,1,opt,name=coreProcessingTime,proto3" json:"coreProcessingTime,omitempty"`
	Version                            int64   `protobuf:"varint,2,opt,name=version,proto3" json:"version,omitempty"`
	Epoch                              int64   `protobuf:"varint,3,opt,name=epoch,proto3" json:"epoch,omitempty"`
	EffectiveName                      string  `protobuf:"bytes,4,opt,name=effectiveName,proto3" json:"effectiveName,omitempty"`
	WritesInProgress                   int32   `protobuf:"varint,5,opt,name=writesInProgress,proto3" json:"writesInProgress,omitempty"`
	ReadsInProgress                    int32   `protobuf:"varint,6,opt,name=readsInProgress,proto3" json:"readsInProgress,omitempty"`
	PartitionsCached                   int32   `protobuf:"varint,7,opt,name=partitionsCached,proto3" json:"partitionsCached,omitempty"`
	Status                             string  `protobuf:"bytes,8,opt,name=status,proto3" json:"status,omitempty"`
	StateReason                        string  `protobuf:"bytes,9,opt,name=stateReason,proto3" json:"stateReason,omitempty"`
	Name                               string  `protobuf:"bytes,10,opt,name=name,proto3" json:"name,omitempty"`
	Mode                               string  `protobuf:"bytes,11,opt,name=mode,proto3" json:"mode,omitempty"`
	Position                           string  `protobuf:"bytes,12,opt,name=position,proto3" json:"position,omitempty"`
	Progress                           float32 `protobuf:"fixed32,13,opt,name=progress,proto3" json:"progress,omitempty"`
	LastCheckpoint                     string  `protobuf:"bytes,14,opt,name=lastCheckpoint,proto3" json:"lastCheckpoint,omitempty"`
	EventsProcessedAfterRestart        int64   `protobuf:"varint,15,opt,name=eventsProcessedAfterRestart,proto3" json:"eventsProcessedAfterRestart,omitempty"`
	CheckpointStatus                   string  `protobuf:"bytes,16,opt,name=checkpointStatus,proto3" json:"checkpointStatus,omitempty"`
	BufferedEvents                     int64   `protobuf:"varint,17,opt,name=bufferedEvents,proto3" json:"bufferedEvents,omitempty"`
	WritePendingEventsBeforeCheckpoint int32   `protobuf:"varint,18,opt,name=writePendingEventsBeforeCheckpoint,proto3" json:"writePendingEventsBeforeCheckpoint,omitempty"`
	WritePendingEventsAfterCheckpoint  int32   `protobuf:"varint,19,opt,name=writePendingEventsAfterCheckpoint,proto3" json:"writePendingEventsAfterCheckpoint,omitempty"`
}

func (m *StatisticsResp_Details) Reset()         { *m = StatisticsResp_Details{} }
func (m *StatisticsResp_Details) String() string { return proto.CompactTextString(m) }
func (*StatisticsResp_Details) ProtoMessage()    {}

type StateReq struct {
	Options *StateReq_Options `protobuf:"bytes,1,opt,name=options,proto3" json:"options,omitempty"`
}

func (m *StateReq) Reset()         { *m = StateReq{} }
func (m *StateReq) String() string { return proto.CompactTextString(m) }
func (*StateReq) ProtoMessage()    {}

type StateReq_Options struct {
	Name      string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Partition string `protobuf:"bytes,2,opt,name=partition,proto3" json:"partition,omitempty"`
}

func (m *StateReq_Options) Reset()         { *m = StateReq_Options{} }
func (m *StateReq_Options) String() string { return proto.CompactTextString(m) }
func (*StateReq_Options) ProtoMessage()    {}

type StateResp struct {
	State *types.Value `protobuf:"bytes,1,opt,name=state,proto3" json:"state,omitempty"`
}

func (m *StateResp) Reset()         { *m = StateResp{} }
func (m *StateResp) String() string { return proto.CompactTextString(m) }
func (*StateResp) ProtoMessage()    {}

type ResultReq struct {
	Options *ResultReq_Options `protobuf:"bytes,1,opt,name=options,proto3" json:"options,omitempty"`
}

func (m *ResultReq) Reset()         { *m = ResultReq{} }
func (m *ResultReq) String() string { return proto.CompactTextString(m) }
func (*ResultReq) ProtoMessage()    {}

type ResultReq_Options struct {
	Name      string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Partition string `protobuf:"bytes,2,opt,name=partition,proto3" json:"partition,omitempty"`
}

func (m *ResultReq_Options) Reset()         { *m = ResultReq_Options{} }
func (m *ResultReq_Options) String() string { return proto.CompactTextString(m) }
func (*ResultReq_Options) ProtoMessage()    {}

type ResultResp struct {
	Result *types.Value `protobuf:"bytes,1,opt,name=result,proto3" json:"result,omitempty"`
}

func (m *ResultResp) Reset()         { *m = ResultResp{} }
func (m *ResultResp) String() string { return proto.CompactTextString(m) }
func (*ResultResp) ProtoMessage()    {}

type ResetReq struct {
	Options *ResetReq_Options `protobuf:"bytes,1,opt,name=options,proto3" json:"options,omitempty"`
}

func (m *ResetReq) Reset()         { *m = ResetReq{} }
func (m *ResetReq) String() string { return proto.CompactTextString(m) }
func (*ResetReq) ProtoMessage()    {}

type ResetReq_Options struct {
	Name            string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	WriteCheckpoint bool   `protobuf:"varint,2,opt,name=write_checkpoint,json=writeCheckpoint,proto3" json:"write_checkpoint,omitempty"`
}

func (m *ResetReq_Options) Reset()         { *m = ResetReq_Options{} }
func (m *ResetReq_Options) String() string { return proto.CompactTextString(m) }
func (*ResetReq_Options) ProtoMessage()    {}

type ResetResp struct{}

func (m *ResetResp) Reset()         { *m = ResetResp{} }
func (m *ResetResp) String() string { return proto.CompactTextString(m) }
func (*ResetResp) ProtoMessage()    {}

type EnableReq struct {
	Options *EnableReq_Options `protobuf:"bytes,1,opt,name=options,proto3" json:"options,omitempty"`
}

func (m *EnableReq) Reset()         { *m = EnableReq{} }
func (m *EnableReq) String() string { return proto.CompactTextString(m) }
func (*EnableReq) ProtoMessage()    {}

type EnableReq_Options struct {
	Name string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
}

func (m *EnableReq_Options) Reset()         { *m = EnableReq_Options{} }
func (m *EnableReq_Options) String() string { return proto.CompactTextString(m) }
func (*EnableReq_Options) ProtoMessage()    {}

type EnableResp struct{}

func (m *EnableResp) Reset()         { *m = EnableResp{} }
func (m *EnableResp) String() string { return proto.CompactTextString(m) }
func (*EnableResp) ProtoMessage()    {}

type DisableReq struct {
	Options *DisableReq_Options `protobuf:"bytes,1,opt,name=options,proto3" json:"options,omitempty"`
}

func (m *DisableReq) Reset()         { *m = DisableReq{} }
func (m *DisableReq) String() string { return proto.CompactTextString(m) }
func (*DisableReq) ProtoMessage()    {}

type DisableReq_Options struct {
	Name string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	// WriteCheckpoint distinguishes disable (true) from abort (false).
	WriteCheckpoint bool `protobuf:"varint,2,opt,name=write_checkpoint,json=writeCheckpoint,proto3" json:"write_checkpoint,omitempty"`
}

func (m *DisableReq_Options) Reset()         { *m = DisableReq_Options{} }
func (m *DisableReq_Options) String() string { return proto.CompactTextString(m) }
func (*DisableReq_Options) ProtoMessage()    {}

type DisableResp struct{}

func (m *DisableResp) Reset()         { *m = DisableResp{} }
func (m *DisableResp) String() string { return proto.CompactTextString(m) }
func (*DisableResp) ProtoMessage()    {}

func init() {
	proto.RegisterType((*CreateReq)(nil), "event_store.client.projections.CreateReq")
	proto.RegisterType((*CreateResp)(nil), "event_store.client.projections.CreateResp")
	proto.RegisterType((*UpdateReq)(nil), "event_store.client.projections.UpdateReq")
	proto.RegisterType((*UpdateResp)(nil), "event_store.client.projections.UpdateResp")
	proto.RegisterType((*DeleteReq)(nil), "event_store.client.projections.DeleteReq")
	proto.RegisterType((*DeleteResp)(nil), "event_store.client.projections.DeleteResp")
	proto.RegisterType((*StatisticsReq)(nil), "event_store.client.projections.StatisticsReq")
	proto.RegisterType((*StatisticsResp)(nil), "event_store.client.projections.StatisticsResp")
	proto.RegisterType((*StateReq)(nil), "event_store.client.projections.StateReq")
	proto.RegisterType((*StateResp)(nil), "event_store.client.projections.StateResp")
	proto.RegisterType((*ResultReq)(nil), "event_store.client.projections.ResultReq")
	proto.RegisterType((*ResultResp)(nil), "event_store.client.projections.ResultResp")
	proto.RegisterType((*ResetReq)(nil), "event_store.client.projections.ResetReq")
	proto.RegisterType((*ResetResp)(nil), "event_store.client.projections.ResetResp")
	proto.RegisterType((*EnableReq)(nil), "event_store.client.projections.EnableReq")
	proto.RegisterType((*EnableResp)(nil), "event_store.client.projections.EnableResp")
	proto.RegisterType((*DisableReq)(nil), "event_store.client.projections.DisableReq")
	proto.RegisterType((*DisableResp)(nil), "event_store.client.projections.DisableResp")
}

const projectionsService = "event_store.client.projections.Projections"

// ProjectionsClient is the client API for the Projections service.
type ProjectionsClient interface {
	Create(ctx context.Context, in *CreateReq, opts ...grpc.CallOption) (*CreateResp, error)
	Update(ctx context.Context, in *UpdateReq, opts ...grpc.CallOption) (*UpdateResp, error)
	Delete(ctx context.Context, in *DeleteReq, opts ...grpc.CallOption) (*DeleteResp, error)
	Statistics(ctx context.Context, in *StatisticsReq, opts ...grpc.CallOption) (Projections_StatisticsClient, error)
	State(ctx context.Context, in *StateReq, opts ...grpc.CallOption) (*StateResp, error)
	Result(ctx context.Context, in *ResultReq, opts ...grpc.CallOption) (*ResultResp, error)
	Reset(ctx context.Context, in *ResetReq, opts ...grpc.CallOption) (*ResetResp, error)
	Enable(ctx context.Context, in *EnableReq, opts ...grpc.CallOption) (*EnableResp, error)
	Disable(ctx context.Context, in *DisableReq, opts ...grpc.CallOption) (*DisableResp, error)
	RestartSubsystem(ctx context.Context, in *shared.Empty, opts ...grpc.CallOption) (*shared.Empty, error)
}

type projectionsClient struct {
	cc *grpc.ClientConn
}

func NewProjectionsClient(cc *grpc.ClientConn) ProjectionsClient {
	return &projectionsClient{cc}
}

func (c *projectionsClient) Create(ctx context.Context, in *CreateReq, opts ...grpc.CallOption) (*CreateResp, error) {
	out := new(CreateResp)
	if err := c.cc.Invoke(ctx, "/"+projectionsService+"/Create", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *projectionsClient) Update(ctx context.Context, in *UpdateReq, opts ...grpc.CallOption) (*UpdateResp, error) {
	out := new(UpdateResp)
	if err := c.cc.Invoke(ctx, "/"+projectionsService+"/Update", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *projectionsClient) Delete(ctx context.Context, in *DeleteReq, opts ...grpc.CallOption) (*DeleteResp, error) {
	out := new(DeleteResp)
	if err := c.cc.Invoke(ctx, "/"+projectionsService+"/Delete", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *projectionsClient) Statistics(ctx context.Context, in *StatisticsReq, opts ...grpc.CallOption) (Projections_StatisticsClient, error) {
	stream, err := c.cc.NewStream(ctx, &_Projections_serviceDesc.Streams[0], "/"+projectionsService+"/Statistics", opts...)
	if err != nil {
		return nil, err
	}
	x := &projectionsStatisticsClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type Projections_StatisticsClient interface {
	Recv() (*StatisticsResp, error)
	grpc.ClientStream
}

type projectionsStatisticsClient struct {
	grpc.ClientStream
}

func (x *projectionsStatisticsClient) Recv() (*StatisticsResp, error) {
	m := new(StatisticsResp)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *projectionsClient) State(ctx context.Context, in *StateReq, opts ...grpc.CallOption) (*StateResp, error) {
	out := new(StateResp)
	if err := c.cc.Invoke(ctx, "/"+projectionsService+"/State", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *projectionsClient) Result(ctx context.Context, in *ResultReq, opts ...grpc.CallOption) (*ResultResp, error) {
	out := new(ResultResp)
	if err := c.cc.Invoke(ctx, "/"+projectionsService+"/Result", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *projectionsClient) Reset(ctx context.Context, in *ResetReq, opts ...grpc.CallOption) (*ResetResp, error) {
	out := new(ResetResp)
	if err := c.cc.Invoke(ctx, "/"+projectionsService+"/Reset", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *projectionsClient) Enable(ctx context.Context, in *EnableReq, opts ...grpc.CallOption) (*EnableResp, error) {
	out := new(EnableResp)
	if err := c.cc.Invoke(ctx, "/"+projectionsService+"/Enable", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *projectionsClient) Disable(ctx context.Context, in *DisableReq, opts ...grpc.CallOption) (*DisableResp, error) {
	out := new(DisableResp)
	if err := c.cc.Invoke(ctx, "/"+projectionsService+"/Disable", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *projectionsClient) RestartSubsystem(ctx context.Context, in *shared.Empty, opts ...grpc.CallOption) (*shared.Empty, error) {
	out := new(shared.Empty)
	if err := c.cc.Invoke(ctx, "/"+projectionsService+"/RestartSubsystem", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// ProjectionsServer is the server API for the Projections service.
type ProjectionsServer interface {
	Create(context.Context, *CreateReq) (*CreateResp, error)
	Update(context.Context, *UpdateReq) (*UpdateResp, error)
	Delete(context.Context, *DeleteReq) (*DeleteResp, error)
	Statistics(*StatisticsReq, Projections_StatisticsServer) error
	State(context.Context, *StateReq) (*StateResp, error)
	Result(context.Context, *ResultReq) (*ResultResp, error)
	Reset(context.Context, *ResetReq) (*ResetResp, error)
	Enable(context.Context, *EnableReq) (*EnableResp, error)
	Disable(context.Context, *DisableReq) (*DisableResp, error)
	RestartSubsystem(context.Context, *shared.Empty) (*shared.Empty, error)
}

func RegisterProjectionsServer(s *grpc.Server, srv ProjectionsServer) {
	s.RegisterService(&_Projections_serviceDesc, srv)
}

type Projections_StatisticsServer interface {
	Send(*StatisticsResp) error
	grpc.ServerStream
}

type projectionsStatisticsServer struct {
	grpc.ServerStream
}

func (x *projectionsStatisticsServer) Send(m *StatisticsResp) error {
	return x.ServerStream.SendMsg(m)
}

func _Projections_Statistics_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(StatisticsReq)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(ProjectionsServer).Statistics(m, &projectionsStatisticsServer{stream})
}

func unaryHandler(method string, newReq func() interface{}, call func(context.Context, interface{}) (interface{}, error)) func(interface{}, context.Context, func(interface{}) error, grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := newReq()
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: method}
		return interceptor(ctx, in, info, call)
	}
}

func _Projections_Create_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	return unaryHandler("/"+projectionsService+"/Create",
		func() interface{} { return new(CreateReq) },
		func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.(ProjectionsServer).Create(ctx, req.(*CreateReq))
		})(srv, ctx, dec, interceptor)
}

func _Projections_Update_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	return unaryHandler("/"+projectionsService+"/Update",
		func() interface{} { return new(UpdateReq) },
		func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.(ProjectionsServer).Update(ctx, req.(*UpdateReq))
		})(srv, ctx, dec, interceptor)
}

func _Projections_Delete_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	return unaryHandler("/"+projectionsService+"/Delete",
		func() interface{} { return new(DeleteReq) },
		func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.(ProjectionsServer).Delete(ctx, req.(*DeleteReq))
		})(srv, ctx, dec, interceptor)
}

func _Projections_State_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	return unaryHandler("/"+projectionsService+"/State",
		func() interface{} { return new(StateReq) },
		func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.(ProjectionsServer).State(ctx, req.(*StateReq))
		})(srv, ctx, dec, interceptor)
}

func _Projections_Result_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	return unaryHandler("/"+projectionsService+"/Result",
		func() interface{} { return new(ResultReq) },
		func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.(ProjectionsServer).Result(ctx, req.(*ResultReq))
		})(srv, ctx, dec, interceptor)
}

func _Projections_Reset_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	return unaryHandler("/"+projectionsService+"/Reset",
		func() interface{} { return new(ResetReq) },
		func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.(ProjectionsServer).Reset(ctx, req.(*ResetReq))
		})(srv, ctx, dec, interceptor)
}

func _Projections_Enable_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	return unaryHandler("/"+projectionsService+"/Enable",
		func() interface{} { return new(EnableReq) },
		func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.(ProjectionsServer).Enable(ctx, req.(*EnableReq))
		})(srv, ctx, dec, interceptor)
}

func _Projections_Disable_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	return unaryHandler("/"+projectionsService+"/Disable",
		func() interface{} { return new(DisableReq) },
		func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.(ProjectionsServer).Disable(ctx, req.(*DisableReq))
		})(srv, ctx, dec, interceptor)
}

func _Projections_RestartSubsystem_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	return unaryHandler("/"+projectionsService+"/RestartSubsystem",
		func() interface{} { return new(shared.Empty) },
		func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.(ProjectionsServer).RestartSubsystem(ctx, req.(*shared.Empty))
		})(srv, ctx, dec, interceptor)
}

var _Projections_serviceDesc = grpc.ServiceDesc{
	ServiceName: projectionsService,
	HandlerType: (*ProjectionsServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Create", Handler: _Projections_Create_Handler},
		{MethodName: "Update", Handler: _Projections_Update_Handler},
		{MethodName: "Delete", Handler: _Projections_Delete_Handler},
		{MethodName: "State", Handler: _Projections_State_Handler},
		{MethodName: "Result", Handler: _Projections_Result_Handler},
		{MethodName: "Reset", Handler: _Projections_Reset_Handler},
		{MethodName: "Enable", Handler: _Projections_Enable_Handler},
		{MethodName: "Disable", Handler: _Projections_Disable_Handler},
		{MethodName: "RestartSubsystem", Handler: _Projections_RestartSubsystem_Handler},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Statistics",
			Handler:       _Projections_Statistics_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "projections.proto",
}
