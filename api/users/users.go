// Package users mirrors the server's Users service.
package users

import (
	context "context"

	proto "github.com/gogo/protobuf/proto"
	grpc "google.golang.org/grpc"
)

type CreateReq struct {
	Options *CreateReq_Options `protobuf:"bytes,1,opt,name=options,proto3" json:"options,omitempty"`
}

func (m *CreateReq) Reset()         { *m = CreateReq{} }
func (m *CreateReq) String() string { return proto.CompactTextString(m) }
func (*CreateReq) ProtoMessage()    {}

type CreateReq_Options struct {
	LoginName string   `protobuf:"bytes,1,opt,name=login_name,json=loginName,proto3" json:"login_name,omitempty"`
	Password  string   `protobuf:"bytes,2,opt,name=password,proto3" json:"password,omitempty"`
	FullName  string   `protobuf:"bytes,3,opt,name=full_name,json=fullName,proto3" json:"full_name,omitempty"`
	Groups    []string `protobuf:"bytes,4,rep,name=groups,proto3" json:"groups,omitempty"`
}

func (m *CreateReq_Options) Reset()         { *m = CreateReq_Options{} }
func (m *CreateReq_Options) String() string { return proto.CompactTextString(m) }
func (*CreateReq_Options) ProtoMessage()    {}

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
	LoginName string   `protobuf:"bytes,1,opt,name=login_name,json=loginName,proto3" json:"login_name,omitempty"`
	Password  string   `protobuf:"bytes,2,opt,name=password,proto3" json:"password,omitempty"`
	FullName  string   `protobuf:"bytes,3,opt,name=full_name,json=fullName,proto3" json:"full_name,omitempty"`
	Groups    []string `protobuf:"bytes,4,rep,name=groups,proto3" json:"groups,omitempty"`
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
	LoginName string `protobuf:"bytes,1,opt,name=login_name,json=loginName,proto3" json:"login_name,omitempty"`
}

func (m *DeleteReq_Options) Reset()         { *m = DeleteReq_Options{} }
func (m *DeleteReq_Options) String() string { return proto.CompactTextString(m) }
func (*DeleteReq_Options) ProtoMessage()    {}

type DeleteResp struct{}

func (m *DeleteResp) Reset()         { *m = DeleteResp{} }
func (m *DeleteResp) String() string { return proto.CompactTextString(m) }
func (*DeleteResp) ProtoMessage()    {}

type EnableReq struct {
	Options *EnableReq_Options `protobuf:"bytes,1,opt,name=options,proto3" json:"options,omitempty"`
}

func (m *EnableReq) Reset()         { *m = EnableReq{} }
func (m *EnableReq) String() string { return proto.CompactTextString(m) }
func (*EnableReq) ProtoMessage()    {}

type EnableReq_Options struct {
	LoginName string `protobuf:"bytes,1,opt,name=login_name,json=loginName,proto3" json:"login_name,omitempty"`
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
	LoginName string `protobuf:"bytes,1,opt,name=login_name,json=loginName,proto3" json:"login_name,omitempty"`
}

func (m *DisableReq_Options) Reset()         { *m = DisableReq_Options{} }
func (m *DisableReq_Options) String() string { return proto.CompactTextString(m) }
func (*DisableReq_Options) ProtoMessage()    {}

type DisableResp struct{}

func (m *DisableResp) Reset()         { *m = DisableResp{} }
func (m *DisableResp) String() string { return proto.CompactTextString(m) }
func (*DisableResp) ProtoMessage()    {}

type DetailsReq struct {
	Options *DetailsReq_Options `protobuf:"bytes,1,opt,name=options,proto3" json:"options,omitempty"`
}

func (m *DetailsReq) Reset()         { *m = DetailsReq{} }
func (m *DetailsReq) String() string { return proto.CompactTextString(m) }
func (*DetailsReq) ProtoMessage()    {}

type DetailsReq_Options struct {
	// LoginName of a single user, or empty to stream details of all users.
	LoginName string `protobuf:"bytes,1,opt,name=login_name,json=loginName,proto3" json:"login_name,omitempty"`
}

func (m *DetailsReq_Options) Reset()         { *m = DetailsReq_Options{} }
func (m *DetailsReq_Options) String() string { return proto.CompactTextString(m) }
func (*DetailsReq_Options) ProtoMessage()    {}

type DetailsResp struct {
	UserDetails *DetailsResp_UserDetails `protobuf:"bytes,1,opt,name=user_details,json=userDetails,proto3" json:"user_details,omitempty"`
}

func (m *DetailsResp) Reset()         { *m = DetailsResp{} }
func (m *DetailsResp) String() string { return proto.CompactTextString(m) }
func (*DetailsResp) ProtoMessage()    {}

type DetailsResp_UserDetails struct {
	LoginName   string                            `protobuf:"bytes,1,opt,name=login_name,json=loginName,proto3" json:"login_name,omitempty"`
	FullName    string                            `protobuf:"bytes,2,opt,name=full_name,json=fullName,proto3" json:"full_name,omitempty"`
	Groups      []string                          `protobuf:"bytes,3,rep,name=groups,proto3" json:"groups,omitempty"`
	LastUpdated *DetailsResp_UserDetails_DateTime `protobuf:"bytes,4,opt,name=last_updated,json=lastUpdated,proto3" json:"last_updated,omitempty"`
	Disabled    bool                              `protobuf:"varint,5,opt,name=disabled,proto3" json:"disabled,omitempty"`
}

func (m *DetailsResp_UserDetails) Reset()         { *m = DetailsResp_UserDetails{} }
func (m *DetailsResp_UserDetails) String() string { return proto.CompactTextString(m) }
func (*DetailsResp_UserDetails) ProtoMessage()    {}

type DetailsResp_UserDetails_DateTime struct {
	TicksSinceEpoch int64 `protobuf:"varint,1,opt,name=ticks_since_epoch,json=ticksSinceEpoch,proto3" json:"ticks_since_epoch,omitempty"`
}

func (m *DetailsResp_UserDetails_DateTime) Reset()         { *m = DetailsResp_UserDetails_DateTime{} }
func (m *DetailsResp_UserDetails_DateTime) String() string { return proto.CompactTextString(m) }
func (*DetailsResp_UserDetails_DateTime) ProtoMessage()    {}

type ChangePasswordReq struct {
	Options *ChangePasswordReq_Options `protobuf:"bytes,1,opt,name=options,proto3" json:"options,omitempty"`
}

func (m *ChangePasswordReq) Reset()         { *m = ChangePasswordReq{} }
func (m *ChangePasswordReq) String() string { return proto.CompactTextString(m) }
func (*ChangePasswordReq) ProtoMessage()    {}

type ChangePasswordReq_Options struct {
	LoginName       string `protobuf:"bytes,1,opt,name=login_name,json=loginName,proto3" json:"login_name,omitempty"`
	CurrentPassword string `protobuf:"bytes,2,opt,name=current_password,json=currentPassword,proto3" json:"current_password,omitempty"`
	NewPassword     string `protobuf:"bytes,3,opt,name=new_password,json=newPassword,proto3" json:"new_password,omitempty"`
}

func (m *ChangePasswordReq_Options) Reset()         { *m = ChangePasswordReq_Options{} }
func (m *ChangePasswordReq_Options) String() string { return proto.CompactTextString(m) }
func (*ChangePasswordReq_Options) ProtoMessage()    {}

type ChangePasswordResp struct{}

func (m *ChangePasswordResp) Reset()         { *m = ChangePasswordResp{} }
func (m *ChangePasswordResp) String() string { return proto.CompactTextString(m) }
func (*ChangePasswordResp) ProtoMessage()    {}

type ResetPasswordReq struct {
	Options *ResetPasswordReq_Options `protobuf:"bytes,1,opt,name=options,proto3" json:"options,omitempty"`
}

func (m *ResetPasswordReq) Reset()         { *m = ResetPasswordReq{} }
func (m *ResetPasswordReq) String() string { return proto.CompactTextString(m) }
func (*ResetPasswordReq) ProtoMessage()    {}

type ResetPasswordReq_Options struct {
	LoginName   string `protobuf:"bytes,1,opt,name=login_name,json=loginName,proto3" json:"login_name,omitempty"`
	NewPassword string `protobuf:"bytes,2,opt,name=new_password,json=newPassword,proto3" json:"new_password,omitempty"`
}

func (m *ResetPasswordReq_Options) Reset()         { *m = ResetPasswordReq_Options{} }
func (m *ResetPasswordReq_Options) String() string { return proto.CompactTextString(m) }
func (*ResetPasswordReq_Options) ProtoMessage()    {}

type ResetPasswordResp struct{}

func (m *ResetPasswordResp) Reset()         { *m = ResetPasswordResp{} }
func (m *ResetPasswordResp) String() string { return proto.CompactTextString(m) }
func (*ResetPasswordResp) ProtoMessage()    {}

func init() {
	proto.RegisterType((*CreateReq)(nil), "event_store.client.users.CreateReq")
	proto.RegisterType((*CreateResp)(nil), "event_store.client.users.CreateResp")
	proto.RegisterType((*UpdateReq)(nil), "event_store.client.users.UpdateReq")
	proto.RegisterType((*UpdateResp)(nil), "event_store.client.users.UpdateResp")
	proto.RegisterType((*DeleteReq)(nil), "event_store.client.users.DeleteReq")
	proto.RegisterType((*DeleteResp)(nil), "event_store.client.users.DeleteResp")
	proto.RegisterType((*EnableReq)(nil), "event_store.client.users.EnableReq")
	proto.RegisterType((*EnableResp)(nil), "event_store.client.users.EnableResp")
	proto.RegisterType((*DisableReq)(nil), "event_store.client.users.DisableReq")
	proto.RegisterType((*DisableResp)(nil), "event_store.client.users.DisableResp")
	proto.RegisterType((*DetailsReq)(nil), "event_store.client.users.DetailsReq")
	proto.RegisterType((*DetailsResp)(nil), "event_store.client.users.DetailsResp")
	proto.RegisterType((*ChangePasswordReq)(nil), "event_store.client.users.ChangePasswordReq")
	proto.RegisterType((*ChangePasswordResp)(nil), "event_store.client.users.ChangePasswordResp")
	proto.RegisterType((*ResetPasswordReq)(nil), "event_store.client.users.ResetPasswordReq")
	proto.RegisterType((*ResetPasswordResp)(nil), "event_store.client.users.ResetPasswordResp")
}

const usersService = "event_store.client.users.Users"

// UsersClient is the client API for the Users service.
type UsersClient interface {
	Create(ctx context.Context, in *CreateReq, opts ...grpc.CallOption) (*CreateResp, error)
	Update(ctx context.Context, in *UpdateReq, opts ...grpc.CallOption) (*UpdateResp, error)
	Delete(ctx context.Context, in *DeleteReq, opts ...grpc.CallOption) (*DeleteResp, error)
	Disable(ctx context.Context, in *DisableReq, opts ...grpc.CallOption) (*DisableResp, error)
	Enable(ctx context.Context, in *EnableReq, opts ...grpc.CallOption) (*EnableResp, error)
	Details(ctx context.Context, in *DetailsReq, opts ...grpc.CallOption) (Users_DetailsClient, error)
	ChangePassword(ctx context.Context, in *ChangePasswordReq, opts ...grpc.CallOption) (*ChangePasswordResp, error)
	ResetPassword(ctx context.Context, in *ResetPasswordReq, opts ...grpc.CallOption) (*ResetPasswordResp, error)
}

type usersClient struct {
	cc *grpc.ClientConn
}

func NewUsersClient(cc *grpc.ClientConn) UsersClient {
	return &usersClient{cc}
}

func (c *usersClient) Create(ctx context.Context, in *CreateReq, opts ...grpc.CallOption) (*CreateResp, error) {
	out := new(CreateResp)
	if err := c.cc.Invoke(ctx, "/"+usersService+"/Create", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *usersClient) Update(ctx context.Context, in *UpdateReq, opts ...grpc.CallOption) (*UpdateResp, error) {
	out := new(UpdateResp)
	if err := c.cc.Invoke(ctx, "/"+usersService+"/Update", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *usersClient) Delete(ctx context.Context, in *DeleteReq, opts ...grpc.CallOption) (*DeleteResp, error) {
	out := new(DeleteResp)
	if err := c.cc.Invoke(ctx, "/"+usersService+"/Delete", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *usersClient) Disable(ctx context.Context, in *DisableReq, opts ...grpc.CallOption) (*DisableResp, error) {
	out := new(DisableResp)
	if err := c.cc.Invoke(ctx, "/"+usersService+"/Disable", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *usersClient) Enable(ctx context.Context, in *EnableReq, opts ...grpc.CallOption) (*EnableResp, error) {
	out := new(EnableResp)
	if err := c.cc.Invoke(ctx, "/"+usersService+"/Enable", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *usersClient) Details(ctx context.Context, in *DetailsReq, opts ...grpc.CallOption) (Users_DetailsClient, error) {
	stream, err := c.cc.NewStream(ctx, &_Users_serviceDesc.Streams[0], "/"+usersService+"/Details", opts...)
	if err != nil {
		return nil, err
	}
	x := &usersDetailsClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type Users_DetailsClient interface {
	Recv() (*DetailsResp, error)
	grpc.ClientStream
}

type usersDetailsClient struct {
	grpc.ClientStream
}

func (x *usersDetailsClient) Recv() (*DetailsResp, error) {
	m := new(DetailsResp)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *usersClient) ChangePassword(ctx context.Context, in *ChangePasswordReq, opts ...grpc.CallOption) (*ChangePasswordResp, error) {
	out := new(ChangePasswordResp)
	if err := c.cc.Invoke(ctx, "/"+usersService+"/ChangePassword", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *usersClient) ResetPassword(ctx context.Context, in *ResetPasswordReq, opts ...grpc.CallOption) (*ResetPasswordResp, error) {
	out := new(ResetPasswordResp)
	if err := c.cc.Invoke(ctx, "/"+usersService+"/ResetPassword", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// UsersServer is the server API for the Users service.
type UsersServer interface {
	Create(context.Context, *CreateReq) (*CreateResp, error)
	Update(context.Context, *UpdateReq) (*UpdateResp, error)
	Delete(context.Context, *DeleteReq) (*DeleteResp, error)
	Disable(context.Context, *DisableReq) (*DisableResp, error)
	Enable(context.Context, *EnableReq) (*EnableResp, error)
	Details(*DetailsReq, Users_DetailsServer) error
	ChangePassword(context.Context, *ChangePasswordReq) (*ChangePasswordResp, error)
	ResetPassword(context.Context, *ResetPasswordReq) (*ResetPasswordResp, error)
}

func RegisterUsersServer(s *grpc.Server, srv UsersServer) {
	s.RegisterService(&_Users_serviceDesc, srv)
}

type Users_DetailsServer interface {
	Send(*DetailsResp) error
	grpc.ServerStream
}

type usersDetailsServer struct {
	grpc.ServerStream
}

func (x *usersDetailsServer) Send(m *DetailsResp) error {
	return x.ServerStream.SendMsg(m)
}

func _Users_Details_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(DetailsReq)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(UsersServer).Details(m, &usersDetailsServer{stream})
}

func _Users_Create_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateReq)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UsersServer).Create(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + usersService + "/Create"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UsersServer).Create(ctx, req.(*CreateReq))
	}
	return interceptor(ctx, in, info, handler)
}

func _Users_Update_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateReq)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UsersServer).Update(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + usersService + "/Update"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UsersServer).Update(ctx, req.(*UpdateReq))
	}
	return interceptor(ctx, in, info, handler)
}

func _Users_Delete_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteReq)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UsersServer).Delete(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + usersService + "/Delete"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UsersServer).Delete(ctx, req.(*DeleteReq))
	}
	return interceptor(ctx, in, info, handler)
}

func _Users_Disable_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DisableReq)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UsersServer).Disable(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + usersService + "/Disable"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UsersServer).Disable(ctx, req.(*DisableReq))
	}
	return interceptor(ctx, in, info, handler)
}

func _Users_Enable_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EnableReq)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UsersServer).Enable(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + usersService + "/Enable"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UsersServer).Enable(ctx, req.(*EnableReq))
	}
	return interceptor(ctx, in, info, handler)
}

func _Users_ChangePassword_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ChangePasswordReq)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UsersServer).ChangePassword(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + usersService + "/ChangePassword"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UsersServer).ChangePassword(ctx, req.(*ChangePasswordReq))
	}
	return interceptor(ctx, in, info, handler)
}

func _Users_ResetPassword_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResetPasswordReq)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UsersServer).ResetPassword(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + usersService + "/ResetPassword"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UsersServer).ResetPassword(ctx, req.(*ResetPasswordReq))
	}
	return interceptor(ctx, in, info, handler)
}

var _Users_serviceDesc = grpc.ServiceDesc{
	ServiceName: usersService,
	HandlerType: (*UsersServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Create", Handler: _Users_Create_Handler},
		{MethodName: "Update", Handler: _Users_Update_Handler},
		{MethodName: "Delete", Handler: _Users_Delete_Handler},
		{MethodName: "Disable", Handler: _Users_Disable_Handler},
		{MethodName: "Enable", Handler: _Users_Enable_Handler},
		{MethodName: "ChangePassword", Handler: _Users_ChangePassword_Handler},
		{MethodName: "ResetPassword", Handler: _Users_ResetPassword_Handler},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Details",
			Handler:       _Users_Details_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "users.proto",
}
