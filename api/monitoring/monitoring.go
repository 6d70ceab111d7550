// Package monitoring mirrors the server's Monitoring service: a streaming
// feed of node statistics.
package monitoring

import (
	context "context"

	proto "github.com/gogo/protobuf/proto"
	grpc "google.golang.org/grpc"
)

type StatsReq struct {
	UseMetadata           bool   `protobuf:"varint,1,opt,name=use_metadata,json=useMetadata,proto3" json:"use_metadata,omitempty"`
	RefreshTimePeriodInMs uint64 `protobuf:"varint,4,opt,name=refresh_time_period_in_ms,json=refreshTimePeriodInMs,proto3" json:"refresh_time_period_in_ms,omitempty"`
}

func (m *StatsReq) Reset()         { *m = StatsReq{} }
func (m *StatsReq) String() string { return proto.CompactTextString(m) }
func (*StatsReq) ProtoMessage()    {}

type StatsResp struct {
	Stats map[string]string `protobuf:"bytes,1,rep,name=stats,proto3" json:"stats,omitempty" protobuf_key:"bytes,1,opt,name=key,proto3" protobuf_val:"bytes,2,opt,name=value,proto3"`
}

func (m *StatsResp) Reset()         { *m = StatsResp{} }
func (m *StatsResp) String() string { return proto.CompactTextString(m) }
func (*StatsResp) ProtoMessage()    {}

func init() {
	proto.RegisterType((*StatsReq)(nil), "event_store.client.monitoring.StatsReq")
	proto.RegisterType((*StatsResp)(nil), "event_store.client.monitoring.StatsResp")
}

const monitoringService = "event_store.client.monitoring.Monitoring"

// MonitoringClient is the client API for the Monitoring service.
type MonitoringClient interface {
	Stats(ctx context.Context, in *StatsReq, opts ...grpc.CallOption) (Monitoring_StatsClient, error)
}

type monitoringClient struct {
	cc *grpc.ClientConn
}

func NewMonitoringClient(cc *grpc.ClientConn) MonitoringClient {
	return &monitoringClient{cc}
}

func (c *monitoringClient) Stats(ctx context.Context, in *StatsReq, opts ...grpc.CallOption) (Monitoring_StatsClient, error) {
	stream, err := c.cc.NewStream(ctx, &_Monitoring_serviceDesc.Streams[0], "/"+monitoringService+"/Stats", opts...)
	if err != nil {
		return nil, err
	}
	x := &monitoringStatsClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type Monitoring_StatsClient interface {
	Recv() (*StatsResp, error)
	grpc.ClientStream
}

type monitoringStatsClient struct {
	grpc.ClientStream
}

func (x *monitoringStatsClient) Recv() (*StatsResp, error) {
	m := new(StatsResp)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// MonitoringServer is the server API for the Monitoring service.
type MonitoringServer interface {
	Stats(*StatsReq, Monitoring_StatsServer) error
}

func RegisterMonitoringServer(s *grpc.Server, srv MonitoringServer) {
	s.RegisterService(&_Monitoring_serviceDesc, srv)
}

type Monitoring_StatsServer interface {
	Send(*StatsResp) error
	grpc.ServerStream
}

type monitoringStatsServer struct {
	grpc.ServerStream
}

func (x *monitoringStatsServer) Send(m *StatsResp) error {
	return x.ServerStream.SendMsg(m)
}

func _Monitoring_Stats_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(StatsReq)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(MonitoringServer).Stats(m, &monitoringStatsServer{stream})
}

var _Monitoring_serviceDesc = grpc.ServiceDesc{
	ServiceName: monitoringService,
	HandlerType: (*MonitoringServer)(nil),
	Methods:     []grpc.MethodDesc{},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Stats",
			Handler:       _Monitoring_Stats_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "monitoring.proto",
}
