// Package operations mirrors the server's Operations service: administrative
// actions against a single node.
package operations

import (
	context "context"

	proto "github.com/gogo/protobuf/proto"
	grpc "google.golang.org/grpc"

	"go.kurrent.dev/client/api/shared"
)

// ScavengeResp_ScavengeResult is the outcome of a scavenge start / stop.
type ScavengeResp_ScavengeResult int32

const (
	ScavengeResp_Started    ScavengeResp_ScavengeResult = 0
	ScavengeResp_InProgress ScavengeResp_ScavengeResult = 1
	ScavengeResp_Stopped    ScavengeResp_ScavengeResult = 2
)

type StartScavengeReq struct {
	Options *StartScavengeReq_Options `protobuf:"bytes,1,opt,name=options,proto3" json:"options,omitempty"`
}

func (m *StartScavengeReq) Reset()         { *m = StartScavengeReq{} }
func (m *StartScavengeReq) String() string { return proto.CompactTextString(m) }
func (*StartScavengeReq) ProtoMessage()    {}

type StartScavengeReq_Options struct {
	ThreadCount    int32 `protobuf:"varint,1,opt,name=thread_count,json=threadCount,proto3" json:"thread_count,omitempty"`
	StartFromChunk int32 `protobuf:"varint,2,opt,name=start_from_chunk,json=startFromChunk,proto3" json:"start_from_chunk,omitempty"`
}

func (m *StartScavengeReq_Options) Reset()         { *m = StartScavengeReq_Options{} }
func (m *StartScavengeReq_Options) String() string { return proto.CompactTextString(m) }
func (*StartScavengeReq_Options) ProtoMessage()    {}

type StopScavengeReq struct {
	Options *StopScavengeReq_Options `protobuf:"bytes,1,opt,name=options,proto3" json:"options,omitempty"`
}

func (m *StopScavengeReq) Reset()         { *m = StopScavengeReq{} }
func (m *StopScavengeReq) String() string { return proto.CompactTextString(m) }
func (*StopScavengeReq) ProtoMessage()    {}

type StopScavengeReq_Options struct {
	ScavengeId string `protobuf:"bytes,1,opt,name=scavenge_id,json=scavengeId,proto3" json:"scavenge_id,omitempty"`
}

func (m *StopScavengeReq_Options) Reset()         { *m = StopScavengeReq_Options{} }
func (m *StopScavengeReq_Options) String() string { return proto.CompactTextString(m) }
func (*StopScavengeReq_Options) ProtoMessage()    {}

type ScavengeResp struct {
	ScavengeId     string                      `protobuf:"bytes,1,opt,name=scavenge_id,json=scavengeId,proto3" json:"scavenge_id,omitempty"`
	ScavengeResult ScavengeResp_ScavengeResult `protobuf:"varint,2,opt,name=scavenge_result,json=scavengeResult,proto3,enum=event_store.client.operations.ScavengeResp_ScavengeResult" json:"scavenge_result,omitempty"`
}

func (m *ScavengeResp) Reset()         { *m = ScavengeResp{} }
func (m *ScavengeResp) String() string { return proto.CompactTextString(m) }
func (*ScavengeResp) ProtoMessage()    {}

type SetNodePriorityReq struct {
	Priority int32 `protobuf:"varint,1,opt,name=priority,proto3" json:"priority,omitempty"`
}

func (m *SetNodePriorityReq) Reset()         { *m = SetNodePriorityReq{} }
func (m *SetNodePriorityReq) String() string { return proto.CompactTextString(m) }
func (*SetNodePriorityReq) ProtoMessage()    {}

func init() {
	proto.RegisterType((*StartScavengeReq)(nil), "event_store.client.operations.StartScavengeReq")
	proto.RegisterType((*StopScavengeReq)(nil), "event_store.client.operations.StopScavengeReq")
	proto.RegisterType((*ScavengeResp)(nil), "event_store.client.operations.ScavengeResp")
	proto.RegisterType((*SetNodePriorityReq)(nil), "event_store.client.operations.SetNodePriorityReq")
}

const operationsService = "event_store.client.operations.Operations"

// OperationsClient is the client API for the Operations service.
type OperationsClient interface {
	StartScavenge(ctx context.Context, in *StartScavengeReq, opts ...grpc.CallOption) (*ScavengeResp, error)
	StopScavenge(ctx context.Context, in *StopScavengeReq, opts ...grpc.CallOption) (*ScavengeResp, error)
	Shutdown(ctx context.Context, in *shared.Empty, opts ...grpc.CallOption) (*shared.Empty, error)
	MergeIndexes(ctx context.Context, in *shared.Empty, opts ...grpc.CallOption) (*shared.Empty, error)
	ResignNode(ctx context.Context, in *shared.Empty, opts ...grpc.CallOption) (*shared.Empty, error)
	SetNodePriority(ctx context.Context, in *SetNodePriorityReq, opts ...grpc.CallOption) (*shared.Empty, error)
	RestartPersistentSubscriptions(ctx context.Context, in *shared.Empty, opts ...grpc.CallOption) (*shared.Empty, error)
}

type operationsClient struct {
	cc *grpc.ClientConn
}

func NewOperationsClient(cc *grpc.ClientConn) OperationsClient {
	return &operationsClient{cc}
}

func (c *operationsClient) StartScavenge(ctx context.Context, in *StartScavengeReq, opts ...grpc.CallOption) (*ScavengeResp, error) {
	out := new(ScavengeResp)
	if err := c.cc.Invoke(ctx, "/"+operationsService+"/StartScavenge", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *operationsClient) StopScavenge(ctx context.Context, in *StopScavengeReq, opts ...grpc.CallOption) (*ScavengeResp, error) {
	out := new(ScavengeResp)
	if err := c.cc.Invoke(ctx, "/"+operationsService+"/StopScavenge", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *operationsClient) Shutdown(ctx context.Context, in *shared.Empty, opts ...grpc.CallOption) (*shared.Empty, error) {
	out := new(shared.Empty)
	if err := c.cc.Invoke(ctx, "/"+operationsService+"/Shutdown", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *operationsClient) MergeIndexes(ctx context.Context, in *shared.Empty, opts ...grpc.CallOption) (*shared.Empty, error) {
	out := new(shared.Empty)
	if err := c.cc.Invoke(ctx, "/"+operationsService+"/MergeIndexes", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *operationsClient) ResignNode(ctx context.Context, in *shared.Empty, opts ...grpc.CallOption) (*shared.Empty, error) {
	out := new(shared.Empty)
	if err := c.cc.Invoke(ctx, "/"+operationsService+"/ResignNode", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *operationsClient) SetNodePriority(ctx context.Context, in *SetNodePriorityReq, opts ...grpc.CallOption) (*shared.Empty, error) {
	out := new(shared.Empty)
	if err := c.cc.Invoke(ctx, "/"+operationsService+"/SetNodePriority", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *operationsClient) RestartPersistentSubscriptions(ctx context.Context, in *shared.Empty, opts ...grpc.CallOption) (*shared.Empty, error) {
	out := new(shared.Empty)
	if err := c.cc.Invoke(ctx, "/"+operationsService+"/RestartPersistentSubscriptions", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// OperationsServer is the server API for the Operations service.
type OperationsServer interface {
	StartScavenge(context.Context, *StartScavengeReq) (*ScavengeResp, error)
	StopScavenge(context.Context, *StopScavengeReq) (*ScavengeResp, error)
	Shutdown(context.Context, *shared.Empty) (*shared.Empty, error)
	MergeIndexes(context.Context, *shared.Empty) (*shared.Empty, error)
	ResignNode(context.Context, *shared.Empty) (*shared.Empty, error)
	SetNodePriority(context.Context, *SetNodePriorityReq) (*shared.Empty, error)
	RestartPersistentSubscriptions(context.Context, *shared.Empty) (*shared.Empty, error)
}

func RegisterOperationsServer(s *grpc.Server, srv OperationsServer) {
	s.RegisterService(&_Operations_serviceDesc, srv)
}

func _Operations_StartScavenge_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StartScavengeReq)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OperationsServer).StartScavenge(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + operationsService + "/StartScavenge"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OperationsServer).StartScavenge(ctx, req.(*StartScavengeReq))
	}
	return interceptor(ctx, in, info, handler)
}

func _Operations_StopScavenge_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StopScavengeReq)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OperationsServer).StopScavenge(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + operationsService + "/StopScavenge"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OperationsServer).StopScavenge(ctx, req.(*StopScavengeReq))
	}
	return interceptor(ctx, in, info, handler)
}

func _Operations_Shutdown_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(shared.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OperationsServer).Shutdown(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + operationsService + "/Shutdown"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OperationsServer).Shutdown(ctx, req.(*shared.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _Operations_MergeIndexes_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(shared.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OperationsServer).MergeIndexes(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + operationsService + "/MergeIndexes"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OperationsServer).MergeIndexes(ctx, req.(*shared.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _Operations_ResignNode_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(shared.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OperationsServer).ResignNode(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + operationsService + "/ResignNode"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OperationsServer).ResignNode(ctx, req.(*shared.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _Operations_SetNodePriority_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetNodePriorityReq)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OperationsServer).SetNodePriority(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + operationsService + "/SetNodePriority"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OperationsServer).SetNodePriority(ctx, req.(*SetNodePriorityReq))
	}
	return interceptor(ctx, in, info, handler)
}

func _Operations_RestartPersistentSubscriptions_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(shared.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OperationsServer).RestartPersistentSubscriptions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + operationsService + "/RestartPersistentSubscriptions"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OperationsServer).RestartPersistentSubscriptions(ctx, req.(*shared.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

var _Operations_serviceDesc = grpc.ServiceDesc{
	ServiceName: operationsService,
	HandlerType: (*OperationsServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "StartScavenge", Handler: _Operations_StartScavenge_Handler},
		{MethodName: "StopScavenge", Handler: _Operations_StopScavenge_Handler},
		{MethodName: "Shutdown", Handler: _Operations_Shutdown_Handler},
		{MethodName: "MergeIndexes", Handler: _Operations_MergeIndexes_Handler},
		{MethodName: "ResignNode", Handler: _Operations_ResignNode_Handler},
		{MethodName: "SetNodePriority", Handler: _Operations_SetNodePriority_Handler},
		{MethodName: "RestartPersistentSubscriptions", Handler: _Operations_RestartPersistentSubscriptions_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "operations.proto",
}
