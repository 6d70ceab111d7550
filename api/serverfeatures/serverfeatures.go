// Package serverfeatures mirrors the server's ServerFeatures service:
// a one-shot probe of the supported RPC set and server version.
package serverfeatures

import (
	context "context"

	proto "github.com/gogo/protobuf/proto"
	grpc "google.golang.org/grpc"

	"go.kurrent.dev/client/api/shared"
)

// SupportedMethod names one supported RPC and its feature flags.
type SupportedMethod struct {
	MethodName  string   `protobuf:"bytes,1,opt,name=method_name,json=methodName,proto3" json:"method_name,omitempty"`
	ServiceName string   `protobuf:"bytes,2,opt,name=service_name,json=serviceName,proto3" json:"service_name,omitempty"`
	Features    []string `protobuf:"bytes,3,rep,name=features,proto3" json:"features,omitempty"`
}

func (m *SupportedMethod) Reset()         { *m = SupportedMethod{} }
func (m *SupportedMethod) String() string { return proto.CompactTextString(m) }
func (*SupportedMethod) ProtoMessage()    {}

// SupportedMethods is the full capability reply.
type SupportedMethods struct {
	Methods                 []*SupportedMethod `protobuf:"bytes,1,rep,name=methods,proto3" json:"methods,omitempty"`
	EventStoreServerVersion string             `protobuf:"bytes,2,opt,name=event_store_server_version,json=eventStoreServerVersion,proto3" json:"event_store_server_version,omitempty"`
}

func (m *SupportedMethods) Reset()         { *m = SupportedMethods{} }
func (m *SupportedMethods) String() string { return proto.CompactTextString(m) }
func (*SupportedMethods) ProtoMessage()    {}

func init() {
	proto.RegisterType((*SupportedMethod)(nil), "event_store.client.server_features.SupportedMethod")
	proto.RegisterType((*SupportedMethods)(nil), "event_store.client.server_features.SupportedMethods")
}

// ServerFeaturesClient is the client API for the ServerFeatures service.
type ServerFeaturesClient interface {
	GetSupportedMethods(ctx context.Context, in *shared.Empty, opts ...grpc.CallOption) (*SupportedMethods, error)
}

type serverFeaturesClient struct {
	cc *grpc.ClientConn
}

func NewServerFeaturesClient(cc *grpc.ClientConn) ServerFeaturesClient {
	return &serverFeaturesClient{cc}
}

func (c *serverFeaturesClient) GetSupportedMethods(ctx context.Context, in *shared.Empty, opts ...grpc.CallOption) (*SupportedMethods, error) {
	out := new(SupportedMethods)
	err := c.cc.Invoke(ctx, "/event_store.client.server_features.ServerFeatures/GetSupportedMethods", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ServerFeaturesServer is the server API for the ServerFeatures service.
type ServerFeaturesServer interface {
	GetSupportedMethods(context.Context, *shared.Empty) (*SupportedMethods, error)
}

func RegisterServerFeaturesServer(s *grpc.Server, srv ServerFeaturesServer) {
	s.RegisterService(&_ServerFeatures_serviceDesc, srv)
}

func _ServerFeatures_GetSupportedMethods_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(shared.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ServerFeaturesServer).GetSupportedMethods(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/event_store.client.server_features.ServerFeatures/GetSupportedMethods",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ServerFeaturesServer).GetSupportedMethods(ctx, req.(*shared.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

var _ServerFeatures_serviceDesc = grpc.ServiceDesc{
	ServiceName: "event_store.client.server_features.ServerFeatures",
	HandlerType: (*ServerFeaturesServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetSupportedMethods",
			Handler:    _ServerFeatures_GetSupportedMethods_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "serverfeatures.proto",
}
