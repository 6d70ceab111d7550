// Package kurrent implements the KurrentDB client core: the connection
// channel bound to a discovered node, per-call dispatch with credentials,
// deadlines and leader routing, server feature detection, and the catch-up
// and persistent subscription drivers. Thin operation facades (streams,
// persistent subscriptions, projections, users, operations) are built on
// the same dispatch core.
package kurrent

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"sync"
	"time"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	grpckeepalive "google.golang.org/grpc/keepalive"

	"go.kurrent.dev/client/discovery"
	"go.kurrent.dev/client/keepalive"
	"go.kurrent.dev/client/metrics"
	"go.kurrent.dev/client/protocol"
)

// Client is a handle to a server node or cluster. It holds the single
// current transport channel, rebuilding it through discovery on first use
// and when the connected node fails or redirects.
//
// A Client is safe for concurrent use. Close releases its transport.
type Client struct {
	// Settings of the Client, immutable after construction.
	Settings protocol.ClientSettings

	discoverer *discovery.Discoverer
	tlsConfig  *tls.Config

	mu         sync.Mutex
	current    *channel
	pending    *pendingChannel
	nextHint   *protocol.Endpoint
	lastFailed *protocol.Endpoint
	closed     bool
}

// channel is a transport bound to a selected endpoint, with the node's
// probed feature set. At most one channel is current at a time; a rebuilt
// channel replaces it atomically and the previous channel drains.
type channel struct {
	endpoint protocol.Endpoint
	conn     *grpc.ClientConn
	server   *ServerInfo
}

// pendingChannel is a channel rebuild in flight. Concurrent requesters wait
// on |done| and share the result rather than launching their own discovery.
type pendingChannel struct {
	done chan struct{}
	ch   *channel
	err  error
}

// Dial parses |connString| and returns a Client of it. The connection is
// established lazily, by the first operation.
func Dial(connString string) (*Client, error) {
	var settings, err = protocol.ParseConnectionString(connString)
	if err != nil {
		return nil, err
	}
	return NewClient(settings)
}

// NewClient returns a Client of the validated |settings|.
func NewClient(settings protocol.ClientSettings) (*Client, error) {
	if err := settings.Validate(); err != nil {
		return nil, protocol.ExtendContext(err, "Settings")
	}
	if settings.ConnectionName == "" {
		settings.ConnectionName = fmt.Sprintf("%s-%s",
			petname.Generate(2, "-"), uuid.NewString()[:8])
	}

	var c = &Client{Settings: settings}

	if settings.TLS {
		var cfg = &tls.Config{InsecureSkipVerify: !settings.TLSVerifyCert}

		if settings.TLSCAFile != "" {
			var pem, err = os.ReadFile(settings.TLSCAFile)
			if err != nil {
				return nil, errors.WithMessage(err, "reading tlsCAFile")
			}
			var pool = x509.NewCertPool()
			if !pool.AppendCertsFromPEM(pem) {
				return nil, errors.Errorf("no certificates parsed from %s", settings.TLSCAFile)
			}
			cfg.RootCAs = pool
		}
		c.tlsConfig = cfg
	}

	c.discoverer = discovery.NewDiscoverer(settings, c.dialEndpoint)
	return c, nil
}

// Close releases the Client's transport. In-flight operations fail with
// their own transport errors; new operations fail with ErrClientClosed.
func (c *Client) Close() error {
	c.mu.Lock()
	var current = c.current
	c.current, c.closed = nil, true
	c.mu.Unlock()

	if current != nil {
		return current.conn.Close()
	}
	return nil
}

// dialEndpoint opens a gRPC connection to |ep| with the configured
// keep-alive and TLS.
func (c *Client) dialEndpoint(ctx context.Context, ep protocol.Endpoint) (*grpc.ClientConn, error) {
	var opts = []grpc.DialOption{
		grpc.WithContextDialer(keepalive.DialerFunc),
		grpc.WithKeepaliveParams(grpckeepalive.ClientParameters{
			Time:                c.Settings.KeepAliveInterval,
			Timeout:             c.Settings.KeepAliveTimeout,
			PermitWithoutStream: true,
		}),
	}
	if c.tlsConfig != nil {
		opts = append(opts, grpc.WithTransportCredentials(credentials.NewTLS(c.tlsConfig)))
	} else {
		opts = append(opts, grpc.WithTransportCredentials(insecure.NewCredentials()))
	}

	var cc, err = grpc.DialContext(ctx, ep.String(), opts...)
	if err != nil {
		return nil, &protocol.ConnectionError{Reason: "dialing " + ep.String(), Err: err}
	}
	return cc, nil
}

// channel returns the current channel, building one if needed. At most one
// rebuild runs at a time; concurrent callers await and share its result.
func (c *Client) channel(ctx context.Context) (*channel, error) {
	for {
		c.mu.Lock()
		if c.closed {
			c.mu.Unlock()
			return nil, protocol.ErrClientClosed
		}
		if c.current != nil {
			var ch = c.current
			c.mu.Unlock()
			return ch, nil
		}
		if p := c.pending; p != nil {
			c.mu.Unlock()

			select {
			case <-p.done:
				if p.err != nil {
					return nil, p.err
				}
				continue // Re-read the now-current channel.
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		var p = &pendingChannel{done: make(chan struct{})}
		c.pending = p
		var hint, failed = c.nextHint, c.lastFailed
		c.nextHint, c.lastFailed = nil, nil
		c.mu.Unlock()

		p.ch, p.err = c.buildChannel(ctx, hint, failed)

		c.mu.Lock()
		c.pending = nil
		if p.err == nil {
			if c.closed {
				_ = p.ch.conn.Close()
				p.ch, p.err = nil, protocol.ErrClientClosed
			} else {
				c.current = p.ch
			}
		}
		c.mu.Unlock()
		close(p.done)

		return p.ch, p.err
	}
}

// buildChannel runs discovery, dials the selected endpoint, and probes its
// features.
func (c *Client) buildChannel(ctx context.Context, hint, failed *protocol.Endpoint) (*channel, error) {
	var ep, err = c.discoverer.Discover(ctx, hint, failed)
	if err != nil {
		return nil, err
	}

	conn, err := c.dialEndpoint(ctx, ep)
	if err != nil {
		return nil, err
	}

	server, err := probeFeatures(ctx, conn, c.Settings.GossipTimeout)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	log.WithFields(log.Fields{
		"endpoint": ep,
		"version":  server.Version,
	}).Info("selected node")

	metrics.ChannelRebuildsTotal.Inc()
	return &channel{endpoint: ep, conn: conn, server: server}, nil
}

// invalidate drops |ch| as the current channel, recording an optional leader
// |hint| for the next discovery pass. The invalidated channel's transport
// lingers briefly so that its in-flight calls drain.
func (c *Client) invalidate(ch *channel, hint *protocol.Endpoint) {
	c.mu.Lock()
	if c.current == ch {
		c.current = nil
		c.nextHint = hint
		var failed = ch.endpoint
		c.lastFailed = &failed
	}
	c.mu.Unlock()

	if ch != nil {
		var conn = ch.conn
		time.AfterFunc(drainGracePeriod, func() { _ = conn.Close() })
	}
}

// serverInfo returns feature detection results of the current channel,
// establishing one if needed.
func (c *Client) serverInfo(ctx context.Context) (*ServerInfo, error) {
	var ch, err = c.channel(ctx)
	if err != nil {
		return nil, err
	}
	return ch.server, nil
}

// drainGracePeriod is how long an invalidated channel's transport lingers
// for in-flight calls before it closes.
var drainGracePeriod = 30 * time.Second
