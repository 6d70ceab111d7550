package kurrent

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	gossipapi "go.kurrent.dev/client/api/gossip"
	featuresapi "go.kurrent.dev/client/api/serverfeatures"
	streamsapi "go.kurrent.dev/client/api/streams"
	"go.kurrent.dev/client/kurrent/teststub"
	"go.kurrent.dev/client/protocol"
)

func clusterClient(t *testing.T, pref protocol.NodePreference, nodes ...*teststub.Node) *Client {
	var settings = protocol.DefaultSettings()
	settings.TLS = false
	settings.NodePreference = pref
	settings.MaxDiscoverAttempts = 3
	settings.DiscoveryInterval = time.Millisecond
	settings.GossipTimeout = 2 * time.Second
	for _, n := range nodes {
		settings.Hosts = append(settings.Hosts, n.Endpoint)
	}

	var c, err = NewClient(settings)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func singleNodeClient(t *testing.T, n *teststub.Node) *Client {
	var c, err = Dial(n.ConnString())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestNotLeaderFailoverRetriesOnceTowardHint(t *testing.T) {
	var follower = teststub.NewNode(t)
	defer follower.Cleanup()
	var leader = teststub.NewNode(t)
	defer leader.Cleanup()

	// Only the follower is seeded, and it wrongly advertises itself as
	// leader, so discovery selects it; the leader's gossip is authoritative.
	follower.GossipFunc = func(context.Context) (*gossipapi.ClusterInfo, error) {
		return teststub.LeaderView(follower, leader), nil
	}
	leader.GossipFunc = func(context.Context) (*gossipapi.ClusterInfo, error) {
		return teststub.LeaderView(leader, follower), nil
	}

	var followerCalls, leaderCalls int
	follower.DeleteFunc = func(ctx context.Context, _ *streamsapi.DeleteReq) (*streamsapi.DeleteResp, error) {
		followerCalls++
		grpc.SetTrailer(ctx, teststub.NotLeaderTrailer(leader.Endpoint))
		return nil, teststub.NotLeaderStatus()
	}
	leader.DeleteFunc = func(ctx context.Context, _ *streamsapi.DeleteReq) (*streamsapi.DeleteResp, error) {
		leaderCalls++
		return &streamsapi.DeleteResp{
			Position: &streamsapi.DeleteResp_Position{CommitPosition: 100, PreparePosition: 99},
		}, nil
	}

	var c = clusterClient(t, protocol.NodePreference_Leader, follower, follower)

	var result, err = c.DeleteStream(context.Background(), "orders", DeleteOptions{})
	require.NoError(t, err)
	assert.Equal(t, protocol.Position{Commit: 100, Prepare: 99}, result.Position)
	assert.Equal(t, 1, followerCalls)
	assert.Equal(t, 1, leaderCalls)

	// The leader-required call carried requires-leader: true (to both nodes).
	assert.Equal(t, []string{"true"}, leader.RecentHeaders().Get("requires-leader"))
}

func TestNotLeaderSurfacesAfterSecondAttempt(t *testing.T) {
	var a = teststub.NewNode(t)
	defer a.Cleanup()
	var b = teststub.NewNode(t)
	defer b.Cleanup()

	a.GossipFunc = func(context.Context) (*gossipapi.ClusterInfo, error) {
		return teststub.LeaderView(a, b), nil
	}
	b.GossipFunc = func(context.Context) (*gossipapi.ClusterInfo, error) {
		return teststub.LeaderView(b, a), nil
	}

	var stillNotLeader = func(hint protocol.Endpoint) func(context.Context, *streamsapi.DeleteReq) (*streamsapi.DeleteResp, error) {
		return func(ctx context.Context, _ *streamsapi.DeleteReq) (*streamsapi.DeleteResp, error) {
			grpc.SetTrailer(ctx, teststub.NotLeaderTrailer(hint))
			return nil, teststub.NotLeaderStatus()
		}
	}
	a.DeleteFunc = stillNotLeader(b.Endpoint)
	b.DeleteFunc = stillNotLeader(a.Endpoint)

	var c = clusterClient(t, protocol.NodePreference_Leader, a, b)

	var _, err = c.DeleteStream(context.Background(), "orders", DeleteOptions{})
	var nle *protocol.NotLeaderError
	require.ErrorAs(t, err, &nle)
}

func TestUnavailableRetriesOnlyIdempotentCalls(t *testing.T) {
	var node = teststub.NewNode(t)
	defer node.Cleanup()

	var calls int
	node.DeleteFunc = func(context.Context, *streamsapi.DeleteReq) (*streamsapi.DeleteResp, error) {
		calls++
		return nil, status.Error(codes.Unavailable, "shutting down")
	}

	// Expected revision Any is not idempotent: zero retries.
	var c = singleNodeClient(t, node)
	var _, err = c.DeleteStream(context.Background(), "orders", DeleteOptions{})
	var connErr *protocol.ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.Equal(t, 1, calls)

	// An exact expected revision is idempotent: exactly one retry.
	calls = 0
	var c2 = singleNodeClient(t, node)
	_, err = c2.DeleteStream(context.Background(), "orders",
		DeleteOptions{ExpectedRevision: protocol.Exact(3)})
	require.ErrorAs(t, err, &connErr)
	assert.Equal(t, 2, calls)
}

func TestLeaderRequiredTimeoutForcesRediscovery(t *testing.T) {
	var node = teststub.NewNode(t)
	defer node.Cleanup()

	var probes int64
	node.FeaturesFunc = func(context.Context) (*featuresapi.SupportedMethods, error) {
		atomic.AddInt64(&probes, 1)
		return teststub.FullMethods(), nil
	}
	var stall = func(ctx context.Context, _ *streamsapi.DeleteReq) (*streamsapi.DeleteResp, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}

	var c, err = Dial(node.ConnString() + "&defaultDeadline=100")
	require.NoError(t, err)
	defer c.Close()

	node.DeleteFunc = stall
	_, err = c.DeleteStream(context.Background(), "orders", DeleteOptions{})
	require.ErrorIs(t, err, protocol.ErrDeadlineExceeded)

	// The timed-out leader-required call dropped the channel: the next call
	// rebuilds it (observable as a second feature probe) and succeeds.
	node.DeleteFunc = nil
	_, err = c.DeleteStream(context.Background(), "orders", DeleteOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), atomic.LoadInt64(&probes))

	// A preference which doesn't require the leader keeps its channel
	// through a timeout.
	c2, err := Dial(node.ConnString() + "&defaultDeadline=100&nodePreference=random")
	require.NoError(t, err)
	defer c2.Close()

	atomic.StoreInt64(&probes, 0)
	node.DeleteFunc = stall
	_, err = c2.DeleteStream(context.Background(), "orders", DeleteOptions{})
	require.ErrorIs(t, err, protocol.ErrDeadlineExceeded)

	node.DeleteFunc = nil
	_, err = c2.DeleteStream(context.Background(), "orders", DeleteOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), atomic.LoadInt64(&probes))
}

func TestTrailerExceptionMapping(t *testing.T) {
	var node = teststub.NewNode(t)
	defer node.Cleanup()
	var c = singleNodeClient(t, node)

	var cases = []struct {
		trailer metadata.MD
		verify  func(*testing.T, error)
	}{
		{
			trailer: metadata.Pairs("exception", "access-denied"),
			verify: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, protocol.ErrAccessDenied)
			},
		},
		{
			trailer: metadata.Pairs("exception", "not-authenticated"),
			verify: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, protocol.ErrUnauthenticated)
			},
		},
		{
			trailer: metadata.Pairs("exception", "stream-deleted", "stream-name", "orders"),
			verify: func(t *testing.T, err error) {
				var sde *protocol.StreamDeletedError
				require.ErrorAs(t, err, &sde)
				assert.Equal(t, "orders", sde.Stream)
			},
		},
		{
			trailer: metadata.Pairs("exception", "wrong-expected-version",
				"stream-name", "orders", "actual-version", "7", "expected-version", "3"),
			verify: func(t *testing.T, err error) {
				var wev *protocol.WrongExpectedVersionError
				require.ErrorAs(t, err, &wev)
				var current, exists = wev.Current.Revision()
				assert.True(t, exists)
				assert.Equal(t, uint64(7), current)
			},
		},
		{
			trailer: metadata.Pairs("exception", "maximum-append-size-exceeded",
				"maximum-append-size", "1048576"),
			verify: func(t *testing.T, err error) {
				var mas *protocol.MaximumAppendSizeExceededError
				require.ErrorAs(t, err, &mas)
				assert.Equal(t, uint32(1048576), mas.Limit)
			},
		},
		{
			trailer: metadata.Pairs("exception", "persistent-subscription-does-not-exist"),
			verify: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, protocol.ErrResourceNotFound)
			},
		},
	}

	for _, tc := range cases {
		var trailer = tc.trailer
		node.DeleteFunc = func(ctx context.Context, _ *streamsapi.DeleteReq) (*streamsapi.DeleteResp, error) {
			grpc.SetTrailer(ctx, trailer)
			return nil, status.Error(codes.FailedPrecondition, "mapped by trailer")
		}
		var _, err = c.DeleteStream(context.Background(), "orders", DeleteOptions{})
		require.Error(t, err)
		tc.verify(t, err)
	}
}

func TestDefaultDeadlineAppliesToUnaryButNeverToReads(t *testing.T) {
	var node = teststub.NewNode(t)
	defer node.Cleanup()

	var c, err = Dial(node.ConnString() + "&defaultDeadline=30000")
	require.NoError(t, err)
	defer c.Close()

	var sawDeadline bool
	node.DeleteFunc = func(ctx context.Context, _ *streamsapi.DeleteReq) (*streamsapi.DeleteResp, error) {
		_, sawDeadline = ctx.Deadline()
		return &streamsapi.DeleteResp{}, nil
	}
	_, err = c.DeleteStream(context.Background(), "orders", DeleteOptions{})
	require.NoError(t, err)
	assert.True(t, sawDeadline)

	rs, err := c.ReadStream(context.Background(), "orders", ReadStreamOptions{})
	require.NoError(t, err)
	defer rs.Close()

	<-node.ReadReqCh // Read RPC reached the server.
	assert.Equal(t, false, node.ReadHadDeadline.Load())
	node.ErrCh <- nil // Graceful end of stream.
}

func TestConcurrentCallsShareOneDiscoveryPass(t *testing.T) {
	var a = teststub.NewNode(t)
	defer a.Cleanup()
	var b = teststub.NewNode(t)
	defer b.Cleanup()

	var view = func(context.Context) (*gossipapi.ClusterInfo, error) {
		return teststub.LeaderView(a, b), nil
	}
	a.GossipFunc, b.GossipFunc = view, view

	var c = clusterClient(t, protocol.NodePreference_Leader, a, b)

	var group errgroup.Group
	for i := 0; i != 10; i++ {
		group.Go(func() error {
			var _, err = c.DeleteStream(context.Background(), "orders", DeleteOptions{})
			return err
		})
	}
	require.NoError(t, group.Wait())

	assert.Equal(t, int64(1),
		atomic.LoadInt64(&a.GossipCount)+atomic.LoadInt64(&b.GossipCount))
}
