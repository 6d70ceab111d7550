package persistent

import (
	context "context"

	grpc "google.golang.org/grpc"
)

const serviceName = "event_store.client.persistent_subscriptions.PersistentSubscriptions"

// PersistentSubscriptionsClient is the client API for the
// PersistentSubscriptions service.
type PersistentSubscriptionsClient interface {
	Create(ctx context.Context, in *CreateReq, opts ...grpc.CallOption) (*CreateResp, error)
	Update(ctx context.Context, in *UpdateReq, opts ...grpc.CallOption) (*UpdateResp, error)
	Delete(ctx context.Context, in *DeleteReq, opts ...grpc.CallOption) (*DeleteResp, error)
	Read(ctx context.Context, opts ...grpc.CallOption) (PersistentSubscriptions_ReadClient, error)
	GetInfo(ctx context.Context, in *GetInfoReq, opts ...grpc.CallOption) (*GetInfoResp, error)
	ReplayParked(ctx context.Context, in *ReplayParkedReq, opts ...grpc.CallOption) (*ReplayParkedResp, error)
	List(ctx context.Context, in *ListReq, opts ...grpc.CallOption) (*ListResp, error)
}

type persistentSubscriptionsClient struct {
	cc *grpc.ClientConn
}

func NewPersistentSubscriptionsClient(cc *grpc.ClientConn) PersistentSubscriptionsClient {
	return &persistentSubscriptionsClient{cc}
}

func (c *persistentSubscriptionsClient) Create(ctx context.Context, in *CreateReq, opts ...grpc.CallOption) (*CreateResp, error) {
	out := new(CreateResp)
	err := c.cc.Invoke(ctx, "/"+serviceName+"/Create", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *persistentSubscriptionsClient) Update(ctx context.Context, in *UpdateReq, opts ...grpc.CallOption) (*UpdateResp, error) {
	out := new(UpdateResp)
	err := c.cc.Invoke(ctx, "/"+serviceName+"/Update", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *persistentSubscriptionsClient) Delete(ctx context.Context, in *DeleteReq, opts ...grpc.CallOption) (*DeleteResp, error) {
	out := new(DeleteResp)
	err := c.cc.Invoke(ctx, "/"+serviceName+"/Delete", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *persistentSubscriptionsClient) Read(ctx context.Context, opts ...grpc.CallOption) (PersistentSubscriptions_ReadClient, error) {
	stream, err := c.cc.NewStream(ctx, &_PersistentSubscriptions_serviceDesc.Streams[0], "/"+serviceName+"/Read", opts...)
	if err != nil {
		return nil, err
	}
	return &persistentSubscriptionsReadClient{stream}, nil
}

type PersistentSubscriptions_ReadClient interface {
	Send(*ReadReq) error
	Recv() (*ReadResp, error)
	grpc.ClientStream
}

type persistentSubscriptionsReadClient struct {
	grpc.ClientStream
}

func (x *persistentSubscriptionsReadClient) Send(m *ReadReq) error {
	return x.ClientStream.SendMsg(m)
}

func (x *persistentSubscriptionsReadClient) Recv() (*ReadResp, error) {
	m := new(ReadResp)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *persistentSubscriptionsClient) GetInfo(ctx context.Context, in *GetInfoReq, opts ...grpc.CallOption) (*GetInfoResp, error) {
	out := new(GetInfoResp)
	err := c.cc.Invoke(ctx, "/"+serviceName+"/GetInfo", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *persistentSubscriptionsClient) ReplayParked(ctx context.Context, in *ReplayParkedReq, opts ...grpc.CallOption) (*ReplayParkedResp, error) {
	out := new(ReplayParkedResp)
	err := c.cc.Invoke(ctx, "/"+serviceName+"/ReplayParked", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *persistentSubscriptionsClient) List(ctx context.Context, in *ListReq, opts ...grpc.CallOption) (*ListResp, error) {
	out := new(ListResp)
	err := c.cc.Invoke(ctx, "/"+serviceName+"/List", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PersistentSubscriptionsServer is the server API for the
// PersistentSubscriptions service.
type PersistentSubscriptionsServer interface {
	Create(context.Context, *CreateReq) (*CreateResp, error)
	Update(context.Context, *UpdateReq) (*UpdateResp, error)
	Delete(context.Context, *DeleteReq) (*DeleteResp, error)
	Read(PersistentSubscriptions_ReadServer) error
	GetInfo(context.Context, *GetInfoReq) (*GetInfoResp, error)
	ReplayParked(context.Context, *ReplayParkedReq) (*ReplayParkedResp, error)
	List(context.Context, *ListReq) (*ListResp, error)
}

func RegisterPersistentSubscriptionsServer(s *grpc.Server, srv PersistentSubscriptionsServer) {
	s.RegisterService(&_PersistentSubscriptions_serviceDesc, srv)
}

func _PersistentSubscriptions_Create_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateReq)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PersistentSubscriptionsServer).Create(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/Create"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PersistentSubscriptionsServer).Create(ctx, req.(*CreateReq))
	}
	return interceptor(ctx, in, info, handler)
}

func _PersistentSubscriptions_Update_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateReq)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PersistentSubscriptionsServer).Update(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/Update"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PersistentSubscriptionsServer).Update(ctx, req.(*UpdateReq))
	}
	return interceptor(ctx, in, info, handler)
}

func _PersistentSubscriptions_Delete_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteReq)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PersistentSubscriptionsServer).Delete(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/Delete"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PersistentSubscriptionsServer).Delete(ctx, req.(*DeleteReq))
	}
	return interceptor(ctx, in, info, handler)
}

func _PersistentSubscriptions_Read_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(PersistentSubscriptionsServer).Read(&persistentSubscriptionsReadServer{stream})
}

type PersistentSubscriptions_ReadServer interface {
	Send(*ReadResp) error
	Recv() (*ReadReq, error)
	grpc.ServerStream
}

type persistentSubscriptionsReadServer struct {
	grpc.ServerStream
}

func (x *persistentSubscriptionsReadServer) Send(m *ReadResp) error {
	return x.ServerStream.SendMsg(m)
}

func (x *persistentSubscriptionsReadServer) Recv() (*ReadReq, error) {
	m := new(ReadReq)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func _PersistentSubscriptions_GetInfo_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetInfoReq)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PersistentSubscriptionsServer).GetInfo(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/GetInfo"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PersistentSubscriptionsServer).GetInfo(ctx, req.(*GetInfoReq))
	}
	return interceptor(ctx, in, info, handler)
}

func _PersistentSubscriptions_ReplayParked_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReplayParkedReq)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PersistentSubscriptionsServer).ReplayParked(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/ReplayParked"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PersistentSubscriptionsServer).ReplayParked(ctx, req.(*ReplayParkedReq))
	}
	return interceptor(ctx, in, info, handler)
}

func _PersistentSubscriptions_List_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListReq)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PersistentSubscriptionsServer).List(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/List"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PersistentSubscriptionsServer).List(ctx, req.(*ListReq))
	}
	return interceptor(ctx, in, info, handler)
}

var _PersistentSubscriptions_serviceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*PersistentSubscriptionsServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Create", Handler: _PersistentSubscriptions_Create_Handler},
		{MethodName: "Update", Handler: _PersistentSubscriptions_Update_Handler},
		{MethodName: "Delete", Handler: _PersistentSubscriptions_Delete_Handler},
		{MethodName: "GetInfo", Handler: _PersistentSubscriptions_GetInfo_Handler},
		{MethodName: "ReplayParked", Handler: _PersistentSubscriptions_ReplayParked_Handler},
		{MethodName: "List", Handler: _PersistentSubscriptions_List_Handler},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Read",
			Handler:       _PersistentSubscriptions_Read_Handler,
			ServerStreams: true,
			ClientStreams: true,
		},
	},
	Metadata: "persistent.proto",
}
