// Package gossip mirrors the server's Gossip service: a unary Read of the
// current cluster membership view.
package gossip

import (
	context "context"

	proto "github.com/gogo/protobuf/proto"
	grpc "google.golang.org/grpc"

	"go.kurrent.dev/client/api/shared"
)

// MemberInfo_VNodeState is the wire encoding of a member's role.
type MemberInfo_VNodeState int32

const (
	MemberInfo_Initializing       MemberInfo_VNodeState = 0
	MemberInfo_DiscoverLeader     MemberInfo_VNodeState = 1
	MemberInfo_Unknown            MemberInfo_VNodeState = 2
	MemberInfo_PreReplica         MemberInfo_VNodeState = 3
	MemberInfo_CatchingUp         MemberInfo_VNodeState = 4
	MemberInfo_Clone              MemberInfo_VNodeState = 5
	MemberInfo_Follower           MemberInfo_VNodeState = 6
	MemberInfo_PreLeader          MemberInfo_VNodeState = 7
	MemberInfo_Leader             MemberInfo_VNodeState = 8
	MemberInfo_Manager            MemberInfo_VNodeState = 9
	MemberInfo_ShuttingDown       MemberInfo_VNodeState = 10
	MemberInfo_Shutdown           MemberInfo_VNodeState = 11
	MemberInfo_ReadOnlyLeaderless MemberInfo_VNodeState = 12
	MemberInfo_PreReadOnlyReplica MemberInfo_VNodeState = 13
	MemberInfo_ReadOnlyReplica    MemberInfo_VNodeState = 14
	MemberInfo_ResigningLeader    MemberInfo_VNodeState = 15
)

// EndPoint is a host / port pair.
type EndPoint struct {
	Address string `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
	Port    uint32 `protobuf:"varint,2,opt,name=port,proto3" json:"port,omitempty"`
}

func (m *EndPoint) Reset()         { *m = EndPoint{} }
func (m *EndPoint) String() string { return proto.CompactTextString(m) }
func (*EndPoint) ProtoMessage()    {}

// MemberInfo is a cluster member of the gossip view.
type MemberInfo struct {
	InstanceId   *shared.UUID          `protobuf:"bytes,1,opt,name=instance_id,json=instanceId,proto3" json:"instance_id,omitempty"`
	TimeStamp    int64                 `protobuf:"varint,2,opt,name=time_stamp,json=timeStamp,proto3" json:"time_stamp,omitempty"`
	State        MemberInfo_VNodeState `protobuf:"varint,3,opt,name=state,proto3,enum=event_store.cluster.MemberInfo_VNodeState" json:"state,omitempty"`
	IsAlive      bool                  `protobuf:"varint,4,opt,name=is_alive,json=isAlive,proto3" json:"is_alive,omitempty"`
	HttpEndPoint *EndPoint             `protobuf:"bytes,5,opt,name=http_end_point,json=httpEndPoint,proto3" json:"http_end_point,omitempty"`
}

func (m *MemberInfo) Reset()         { *m = MemberInfo{} }
func (m *MemberInfo) String() string { return proto.CompactTextString(m) }
func (*MemberInfo) ProtoMessage()    {}

// ClusterInfo is the full membership view of the responding node.
type ClusterInfo struct {
	Members []*MemberInfo `protobuf:"bytes,1,rep,name=members,proto3" json:"members,omitempty"`
}

func (m *ClusterInfo) Reset()         { *m = ClusterInfo{} }
func (m *ClusterInfo) String() string { return proto.CompactTextString(m) }
func (*ClusterInfo) ProtoMessage()    {}

func init() {
	proto.RegisterType((*EndPoint)(nil), "event_store.cluster.EndPoint")
	proto.RegisterType((*MemberInfo)(nil), "event_store.cluster.MemberInfo")
	proto.RegisterType((*ClusterInfo)(nil), "event_store.cluster.ClusterInfo")
}

// GossipClient is the client API for the Gossip service.
type GossipClient interface {
	Read(ctx context.Context, in *shared.Empty, opts ...grpc.CallOption) (*ClusterInfo, error)
}

type gossipClient struct {
	cc *grpc.ClientConn
}

func NewGossipClient(cc *grpc.ClientConn) GossipClient {
	return &gossipClient{cc}
}

func (c *gossipClient) Read(ctx context.Context, in *shared.Empty, opts ...grpc.CallOption) (*ClusterInfo, error) {
	out := new(ClusterInfo)
	err := c.cc.Invoke(ctx, "/event_store.client.gossip.Gossip/Read", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GossipServer is the server API for the Gossip service.
type GossipServer interface {
	Read(context.Context, *shared.Empty) (*ClusterInfo, error)
}

func RegisterGossipServer(s *grpc.Server, srv GossipServer) {
	s.RegisterService(&_Gossip_serviceDesc, srv)
}

func _Gossip_Read_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(shared.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GossipServer).Read(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/event_store.client.gossip.Gossip/Read",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GossipServer).Read(ctx, req.(*shared.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

var _Gossip_serviceDesc = grpc.ServiceDesc{
	ServiceName: "event_store.client.gossip.Gossip",
	HandlerType: (*GossipServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Read",
			Handler:    _Gossip_Read_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "gossip.proto",
}
