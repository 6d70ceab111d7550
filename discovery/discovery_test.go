package discovery

import (
	"context"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	gossipapi "go.kurrent.dev/client/api/gossip"
	"go.kurrent.dev/client/kurrent/teststub"
	"go.kurrent.dev/client/protocol"
)

func dialInsecure(ctx context.Context, ep protocol.Endpoint) (*grpc.ClientConn, error) {
	return grpc.DialContext(ctx, ep.String(),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
}

func testSettings(pref protocol.NodePreference, hosts ...protocol.Endpoint) protocol.ClientSettings {
	var settings = protocol.DefaultSettings()
	settings.TLS = false
	settings.NodePreference = pref
	settings.Hosts = hosts
	settings.MaxDiscoverAttempts = 3
	settings.DiscoveryInterval = time.Millisecond
	settings.GossipTimeout = 2 * time.Second
	return settings
}

func TestSingleNodeSkipsGossip(t *testing.T) {
	var ep = protocol.Endpoint{Host: "localhost", Port: 2113}
	var d = NewDiscoverer(
		testSettings(protocol.NodePreference_Leader, ep),
		func(context.Context, protocol.Endpoint) (*grpc.ClientConn, error) {
			t.Fatal("single-node discovery must not dial gossip")
			return nil, nil
		})

	var selected, err = d.Discover(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, ep, selected)
}

func TestClusterSelectionHonorsPreference(t *testing.T) {
	var leader = teststub.NewNode(t)
	defer leader.Cleanup()
	var follower = teststub.NewNode(t)
	defer follower.Cleanup()

	var view = func(context.Context) (*gossipapi.ClusterInfo, error) {
		return teststub.LeaderView(leader, follower), nil
	}
	leader.GossipFunc, follower.GossipFunc = view, view

	var d = NewDiscoverer(
		testSettings(protocol.NodePreference_Leader, leader.Endpoint, follower.Endpoint),
		dialInsecure)
	var selected, err = d.Discover(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, leader.Endpoint, selected)

	d = NewDiscoverer(
		testSettings(protocol.NodePreference_Follower, leader.Endpoint, follower.Endpoint),
		dialInsecure)
	selected, err = d.Discover(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, follower.Endpoint, selected)
}

func TestDiscoveryExhaustsAttempts(t *testing.T) {
	// A listener which is immediately closed: gossip reads fail fast.
	var listener, err = net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	var port = uint16(listener.Addr().(*net.TCPAddr).Port)
	require.NoError(t, listener.Close())

	var dead = protocol.Endpoint{Host: "127.0.0.1", Port: port}
	var settings = testSettings(protocol.NodePreference_Leader, dead, dead)
	settings.MaxDiscoverAttempts = 2

	var d = NewDiscoverer(settings, dialInsecure)

	_, err = d.Discover(context.Background(), nil, nil)
	var gse *protocol.GossipSeedError
	require.ErrorAs(t, err, &gse)
	assert.Equal(t, uint32(2), gse.Attempts)
}

func TestDiscoveryPrefersHintedEndpoint(t *testing.T) {
	var a = teststub.NewNode(t)
	defer a.Cleanup()
	var b = teststub.NewNode(t)
	defer b.Cleanup()

	var view = func(context.Context) (*gossipapi.ClusterInfo, error) {
		return teststub.LeaderView(b, a), nil
	}
	a.GossipFunc, b.GossipFunc = view, view

	var d = NewDiscoverer(
		testSettings(protocol.NodePreference_Leader, a.Endpoint, b.Endpoint),
		dialInsecure)

	var hint = b.Endpoint
	var selected, err = d.Discover(context.Background(), &hint, nil)
	require.NoError(t, err)
	assert.Equal(t, b.Endpoint, selected)

	// Only the hinted endpoint was asked for gossip.
	assert.Equal(t, int64(1), atomic.LoadInt64(&b.GossipCount))
	assert.Equal(t, int64(0), atomic.LoadInt64(&a.GossipCount))
}

func TestDiscoveryRetriesUntilEligibleMember(t *testing.T) {
	var node = teststub.NewNode(t)
	defer node.Cleanup()

	// The first view holds no alive leader; the second does.
	var calls int64
	node.GossipFunc = func(context.Context) (*gossipapi.ClusterInfo, error) {
		if atomic.AddInt64(&calls, 1) == 1 {
			var view = teststub.LeaderView(node)
			view.Members[0].IsAlive = false
			return view, nil
		}
		return teststub.LeaderView(node), nil
	}

	// Two seeds of the same node imply cluster mode.
	var d = NewDiscoverer(
		testSettings(protocol.NodePreference_Leader, node.Endpoint, node.Endpoint),
		dialInsecure)

	var selected, err = d.Discover(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, node.Endpoint, selected)
	assert.True(t, atomic.LoadInt64(&calls) >= 2)
}
