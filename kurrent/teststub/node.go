// Package teststub stubs a server node over a real loopback gRPC listener,
// routing streaming RPCs onto channels which tests read and write
// synchronously, and unary RPCs onto swappable funcs.
package teststub

import (
	"context"
	"net"
	"strconv"
	"sync/atomic"
	"testing"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	gossipapi "go.kurrent.dev/client/api/gossip"
	persistentapi "go.kurrent.dev/client/api/persistent"
	featuresapi "go.kurrent.dev/client/api/serverfeatures"
	"go.kurrent.dev/client/api/shared"
	streamsapi "go.kurrent.dev/client/api/streams"
	"go.kurrent.dev/client/protocol"
)

// Node is a stubbed server node.
type Node struct {
	t        *testing.T
	ctx      context.Context
	cancel   context.CancelFunc
	srv      *grpc.Server
	Endpoint protocol.Endpoint

	// GossipFunc serves Gossip.Read. Defaults to a single-member view of
	// this node as leader.
	GossipFunc func(context.Context) (*gossipapi.ClusterInfo, error)
	// GossipCount counts Gossip.Read calls.
	GossipCount int64

	// FeaturesFunc serves ServerFeatures.GetSupportedMethods. Defaults to
	// the full modern method set.
	FeaturesFunc func(context.Context) (*featuresapi.SupportedMethods, error)

	// DeleteFunc / TombstoneFunc serve the unary Streams RPCs.
	DeleteFunc    func(context.Context, *streamsapi.DeleteReq) (*streamsapi.DeleteResp, error)
	TombstoneFunc func(context.Context, *streamsapi.TombstoneReq) (*streamsapi.TombstoneResp, error)

	// Read RPCs proxy through ReadReqCh / ReadRespCh, terminated by ErrCh.
	ReadReqCh  chan *streamsapi.ReadReq
	ReadRespCh chan *streamsapi.ReadResp

	// Append RPCs proxy through AppendReqCh (nil on client EOF) and a
	// single AppendRespCh response.
	AppendReqCh  chan *streamsapi.AppendReq
	AppendRespCh chan *streamsapi.AppendResp

	// BatchAppend frames proxy through BatchReqCh / BatchRespCh.
	BatchReqCh  chan *streamsapi.BatchAppendReq
	BatchRespCh chan *streamsapi.BatchAppendResp
	// BatchCalls counts BatchAppend RPCs.
	BatchCalls int64

	// Persistent Read lanes proxy through PersistentReqCh / PersistentRespCh.
	PersistentReqCh  chan *persistentapi.ReadReq
	PersistentRespCh chan *persistentapi.ReadResp

	// ErrCh closes the active streaming RPC with the sent error.
	ErrCh chan error

	// Headers holds the most recent incoming metadata of any RPC.
	Headers atomic.Value // metadata.MD
	// ReadHadDeadline records whether the most recent Read carried a deadline.
	ReadHadDeadline atomic.Value // bool
}

// NewNode starts a Node on a loopback listener.
func NewNode(t *testing.T) *Node {
	var listener, err = net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	var addr = listener.Addr().(*net.TCPAddr)

	var ctx, cancel = context.WithCancel(context.Background())
	var n = &Node{
		t:      t,
		ctx:    ctx,
		cancel: cancel,
		srv:    grpc.NewServer(),
		Endpoint: protocol.Endpoint{
			Host: "127.0.0.1",
			Port: uint16(addr.Port),
		},
		ReadReqCh:        make(chan *streamsapi.ReadReq),
		ReadRespCh:       make(chan *streamsapi.ReadResp),
		AppendReqCh:      make(chan *streamsapi.AppendReq),
		AppendRespCh:     make(chan *streamsapi.AppendResp),
		BatchReqCh:       make(chan *streamsapi.BatchAppendReq),
		BatchRespCh:      make(chan *streamsapi.BatchAppendResp),
		PersistentReqCh:  make(chan *persistentapi.ReadReq),
		PersistentRespCh: make(chan *persistentapi.ReadResp),
		ErrCh:            make(chan error),
	}

	gossipapi.RegisterGossipServer(n.srv, (*nodeGossip)(n))
	featuresapi.RegisterServerFeaturesServer(n.srv, (*nodeFeatures)(n))
	streamsapi.RegisterStreamsServer(n.srv, (*nodeStreams)(n))
	persistentapi.RegisterPersistentSubscriptionsServer(n.srv, (*nodePersistent)(n))

	go func() {
		if err := n.srv.Serve(listener); err != nil {
			log.WithField("err", err).Debug("teststub server stopped")
		}
	}()
	return n
}

// Cleanup stops the Node.
func (n *Node) Cleanup() {
	n.cancel()
	n.srv.Stop()
}

// ConnString returns a single-node, plaintext connection string of the Node.
func (n *Node) ConnString() string {
	return "esdb://" + n.Endpoint.String() + "?tls=false"
}

// LeaderView returns a ClusterInfo naming |leader| as the alive leader and
// the remaining nodes as alive followers.
func LeaderView(leader *Node, followers ...*Node) *gossipapi.ClusterInfo {
	var info = &gossipapi.ClusterInfo{
		Members: []*gossipapi.MemberInfo{{
			State:   gossipapi.MemberInfo_Leader,
			IsAlive: true,
			HttpEndPoint: &gossipapi.EndPoint{
				Address: leader.Endpoint.Host,
				Port:    uint32(leader.Endpoint.Port),
			},
		}},
	}
	for _, f := range followers {
		info.Members = append(info.Members, &gossipapi.MemberInfo{
			State:   gossipapi.MemberInfo_Follower,
			IsAlive: true,
			HttpEndPoint: &gossipapi.EndPoint{
				Address: f.Endpoint.Host,
				Port:    uint32(f.Endpoint.Port),
			},
		})
	}
	return info
}

// FullMethods returns a SupportedMethods reply advertising the full modern
// RPC surface.
func FullMethods() *featuresapi.SupportedMethods {
	var methods = []*featuresapi.SupportedMethod{
		{ServiceName: "event_store.client.streams.streams", MethodName: "read"},
		{ServiceName: "event_store.client.streams.streams", MethodName: "append"},
		{ServiceName: "event_store.client.streams.streams", MethodName: "delete"},
		{ServiceName: "event_store.client.streams.streams", MethodName: "tombstone"},
		{ServiceName: "event_store.client.streams.streams", MethodName: "batchappend"},
		{ServiceName: "event_store.client.persistent_subscriptions.persistentsubscriptions", MethodName: "create"},
		{ServiceName: "event_store.client.persistent_subscriptions.persistentsubscriptions", MethodName: "update"},
		{ServiceName: "event_store.client.persistent_subscriptions.persistentsubscriptions", MethodName: "delete"},
		{ServiceName: "event_store.client.persistent_subscriptions.persistentsubscriptions", MethodName: "read"},
		{ServiceName: "event_store.client.persistent_subscriptions.persistentsubscriptions", MethodName: "getinfo"},
		{ServiceName: "event_store.client.persistent_subscriptions.persistentsubscriptions", MethodName: "replayparked"},
		{ServiceName: "event_store.client.persistent_subscriptions.persistentsubscriptions", MethodName: "list"},
	}
	return &featuresapi.SupportedMethods{
		Methods:                 methods,
		EventStoreServerVersion: "24.10.1",
	}
}

func (n *Node) recordHeaders(ctx context.Context) {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		n.Headers.Store(md)
	}
}

// RecentHeaders returns the most recent incoming metadata.
func (n *Node) RecentHeaders() metadata.MD {
	if md, ok := n.Headers.Load().(metadata.MD); ok {
		return md
	}
	return nil
}

type nodeGossip Node

func (n *nodeGossip) Read(ctx context.Context, _ *shared.Empty) (*gossipapi.ClusterInfo, error) {
	(*Node)(n).recordHeaders(ctx)
	atomic.AddInt64(&n.GossipCount, 1)

	if n.GossipFunc != nil {
		return n.GossipFunc(ctx)
	}
	return LeaderView((*Node)(n)), nil
}

type nodeFeatures Node

func (n *nodeFeatures) GetSupportedMethods(ctx context.Context, _ *shared.Empty) (*featuresapi.SupportedMethods, error) {
	(*Node)(n).recordHeaders(ctx)

	if n.FeaturesFunc != nil {
		return n.FeaturesFunc(ctx)
	}
	return FullMethods(), nil
}

type nodeStreams Node

func (n *nodeStreams) Read(req *streamsapi.ReadReq, srv streamsapi.Streams_ReadServer) error {
	(*Node)(n).recordHeaders(srv.Context())
	var _, hasDeadline = srv.Context().Deadline()
	n.ReadHadDeadline.Store(hasDeadline)

	select {
	case n.ReadReqCh <- req:
		// Pass.
	case <-n.ctx.Done():
		return n.ctx.Err()
	}

	for {
		select {
		case resp := <-n.ReadRespCh:
			if err := srv.Send(resp); err != nil {
				return err
			}
		case err := <-n.ErrCh:
			return err
		case <-srv.Context().Done():
			return srv.Context().Err()
		case <-n.ctx.Done():
			return n.ctx.Err()
		}
	}
}

func (n *nodeStreams) Append(srv streamsapi.Streams_AppendServer) error {
	(*Node)(n).recordHeaders(srv.Context())

	// Read loop of client frames; a nil frame marks client EOF.
	go func() {
		for {
			var msg, err = srv.Recv()
			if err != nil {
				msg = nil
			}
			select {
			case n.AppendReqCh <- msg:
			case <-n.ctx.Done():
				return
			}
			if msg == nil {
				return
			}
		}
	}()

	select {
	case resp := <-n.AppendRespCh:
		return srv.SendAndClose(resp)
	case err := <-n.ErrCh:
		return err
	case <-srv.Context().Done():
		return srv.Context().Err()
	case <-n.ctx.Done():
		return n.ctx.Err()
	}
}

func (n *nodeStreams) Delete(ctx context.Context, req *streamsapi.DeleteReq) (*streamsapi.DeleteResp, error) {
	(*Node)(n).recordHeaders(ctx)

	if n.DeleteFunc != nil {
		return n.DeleteFunc(ctx, req)
	}
	return &streamsapi.DeleteResp{NoPosition: &shared.Empty{}}, nil
}

func (n *nodeStreams) Tombstone(ctx context.Context, req *streamsapi.TombstoneReq) (*streamsapi.TombstoneResp, error) {
	(*Node)(n).recordHeaders(ctx)

	if n.TombstoneFunc != nil {
		return n.TombstoneFunc(ctx, req)
	}
	return &streamsapi.TombstoneResp{NoPosition: &shared.Empty{}}, nil
}

func (n *nodeStreams) BatchAppend(srv streamsapi.Streams_BatchAppendServer) error {
	(*Node)(n).recordHeaders(srv.Context())
	atomic.AddInt64(&n.BatchCalls, 1)

	go func() {
		for {
			var msg, err = srv.Recv()
			if err != nil {
				msg = nil
			}
			select {
			case n.BatchReqCh <- msg:
			case <-n.ctx.Done():
				return
			}
			if msg == nil {
				return
			}
		}
	}()

	select {
	case resp := <-n.BatchRespCh:
		return srv.Send(resp)
	case err := <-n.ErrCh:
		return err
	case <-srv.Context().Done():
		return srv.Context().Err()
	case <-n.ctx.Done():
		return n.ctx.Err()
	}
}

type nodePersistent Node

func (n *nodePersistent) Read(srv persistentapi.PersistentSubscriptions_ReadServer) error {
	(*Node)(n).recordHeaders(srv.Context())

	go func() {
		for {
			var msg, err = srv.Recv()
			if err != nil {
				msg = nil
			}
			select {
			case n.PersistentReqCh <- msg:
			case <-n.ctx.Done():
				return
			}
			if msg == nil {
				return
			}
		}
	}()

	for {
		select {
		case resp := <-n.PersistentRespCh:
			if err := srv.Send(resp); err != nil {
				return err
			}
		case err := <-n.ErrCh:
			return err
		case <-srv.Context().Done():
			return srv.Context().Err()
		case <-n.ctx.Done():
			return n.ctx.Err()
		}
	}
}

func (n *nodePersistent) Create(ctx context.Context, _ *persistentapi.CreateReq) (*persistentapi.CreateResp, error) {
	(*Node)(n).recordHeaders(ctx)
	return &persistentapi.CreateResp{}, nil
}

func (n *nodePersistent) Update(ctx context.Context, _ *persistentapi.UpdateReq) (*persistentapi.UpdateResp, error) {
	(*Node)(n).recordHeaders(ctx)
	return &persistentapi.UpdateResp{}, nil
}

func (n *nodePersistent) Delete(ctx context.Context, _ *persistentapi.DeleteReq) (*persistentapi.DeleteResp, error) {
	(*Node)(n).recordHeaders(ctx)
	return &persistentapi.DeleteResp{}, nil
}

func (n *nodePersistent) GetInfo(ctx context.Context, req *persistentapi.GetInfoReq) (*persistentapi.GetInfoResp, error) {
	(*Node)(n).recordHeaders(ctx)
	return &persistentapi.GetInfoResp{
		SubscriptionInfo: &persistentapi.SubscriptionInfo{
			GroupName: req.Options.GroupName,
			Status:    "Live",
		},
	}, nil
}

func (n *nodePersistent) ReplayParked(ctx context.Context, _ *persistentapi.ReplayParkedReq) (*persistentapi.ReplayParkedResp, error) {
	(*Node)(n).recordHeaders(ctx)
	return &persistentapi.ReplayParkedResp{}, nil
}

func (n *nodePersistent) List(ctx context.Context, _ *persistentapi.ListReq) (*persistentapi.ListResp, error) {
	(*Node)(n).recordHeaders(ctx)
	return &persistentapi.ListResp{}, nil
}

// NotLeaderTrailer builds the server's not-leader trailer with a leader
// endpoint hint. Unary handlers transmit it with grpc.SetTrailer before
// returning NotLeaderStatus.
func NotLeaderTrailer(leader protocol.Endpoint) metadata.MD {
	return metadata.Pairs(
		"exception", "not-leader",
		"leader-endpoint-host", leader.Host,
		"leader-endpoint-port", strconv.Itoa(int(leader.Port)),
	)
}

// NotLeaderStatus is the status a non-leader node returns for a
// leader-required call.
func NotLeaderStatus() error {
	return status.Error(codes.FailedPrecondition, "Leader info available")
}
