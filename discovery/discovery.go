// Package discovery resolves and refreshes the set of candidate cluster
// endpoints, retrieves gossip from them, and selects a node satisfying the
// configured preference.
package discovery

import (
	"context"
	"math/rand"
	"net"
	"sync"
	"time"

	multierror "github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"

	"go.kurrent.dev/client/metrics"
	"go.kurrent.dev/client/protocol"
)

// DialFunc dials a candidate endpoint, returning a usable *grpc.ClientConn.
type DialFunc func(ctx context.Context, ep protocol.Endpoint) (*grpc.ClientConn, error)

// Discoverer drives discovery passes: building a candidate set from cached
// views, DNS, or configured seeds, fetching gossip from candidates in turn,
// and applying the node preference to the first usable view.
//
// Discoverer is safe for concurrent use, but callers are expected to
// serialize passes (the client runs at most one at a time, and concurrent
// requesters share its result).
type Discoverer struct {
	settings protocol.ClientSettings
	dial     DialFunc
	views    *ViewCache
	resolver *net.Resolver

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewDiscoverer returns a Discoverer of the settings, dialing candidates
// with |dial|.
func NewDiscoverer(settings protocol.ClientSettings, dial DialFunc) *Discoverer {
	return &Discoverer{
		settings: settings,
		dial:     dial,
		views:    NewViewCache(viewCacheSize, viewCacheTTL),
		resolver: net.DefaultResolver,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Discover runs discovery passes until a node satisfying the preference is
// selected, or MaxDiscoverAttempts passes have failed. |hint| is an optional
// endpoint to gossip first (eg, a server's not-leader redirect); |failed| is
// an optional endpoint to exclude (eg, the endpoint which just failed).
//
// In single-node mode (one seed, no DNS discovery) the seed endpoint is
// returned directly without gossip.
func (d *Discoverer) Discover(ctx context.Context, hint, failed *protocol.Endpoint) (protocol.Endpoint, error) {
	if !d.settings.IsClusterMode() {
		return d.settings.Hosts[0], nil
	}

	var lastErr error

	for attempt := uint32(1); attempt <= d.settings.MaxDiscoverAttempts; attempt++ {
		var ep, err = d.pass(ctx, hint, failed)
		if err == nil {
			metrics.DiscoveryPassesTotal.WithLabelValues(metrics.Ok).Inc()
			return ep, nil
		}
		metrics.DiscoveryPassesTotal.WithLabelValues(metrics.Fail).Inc()
		lastErr = err

		log.WithFields(log.Fields{
			"attempt": attempt,
			"err":     err,
		}).Warn("discovery pass failed (will retry)")

		select {
		case <-ctx.Done():
			return protocol.Endpoint{}, ctx.Err()
		case <-time.After(d.settings.DiscoveryInterval):
		}
	}
	return protocol.Endpoint{}, &protocol.GossipSeedError{
		Attempts: d.settings.MaxDiscoverAttempts,
		Err:      lastErr,
	}
}

// pass performs one discovery pass over the current candidate set.
func (d *Discoverer) pass(ctx context.Context, hint, failed *protocol.Endpoint) (protocol.Endpoint, error) {
	var candidates, err = d.candidates(ctx, hint, failed)
	if err != nil {
		return protocol.Endpoint{}, err
	} else if len(candidates) == 0 {
		return protocol.Endpoint{}, errors.New("no gossip candidates")
	}

	var mErr *multierror.Error
	for _, candidate := range candidates {
		var members, err = d.readGossipFrom(ctx, candidate)
		if err != nil {
			d.views.Invalidate(candidate)
			mErr = multierror.Append(mErr, errors.WithMessagef(err, "gossip from %s", candidate))
			continue
		} else if len(members) == 0 {
			continue
		}
		d.views.Update(candidate, members)

		d.rngMu.Lock()
		selected, err := protocol.SelectMember(d.rng, d.settings.NodePreference, members)
		d.rngMu.Unlock()

		if err != nil {
			mErr = multierror.Append(mErr, errors.WithMessagef(err, "view of %s", candidate))
			continue
		}
		return selected.HTTPEndpoint, nil
	}
	if err := mErr.ErrorOrNil(); err != nil {
		return protocol.Endpoint{}, err
	}
	return protocol.Endpoint{}, errors.New("no candidate produced a usable view")
}

// candidates builds this pass's ordered candidate set: members of recently
// cached views where available, and otherwise DNS-resolved or configured
// seeds. Candidate order is randomized, with manager nodes moved last and a
// |hint| endpoint moved first.
func (d *Discoverer) candidates(ctx context.Context, hint, failed *protocol.Endpoint) ([]protocol.Endpoint, error) {
	var eps []protocol.Endpoint

	if cached := d.views.Members(); len(cached) != 0 {
		eps = d.arrange(cached, failed)
	} else if d.settings.DNSDiscover {
		var seed = d.settings.Hosts[0]
		addrs, err := d.resolver.LookupIPAddr(ctx, seed.Host)
		if err != nil {
			return nil, errors.WithMessagef(err, "resolving %s", seed.Host)
		}
		for _, addr := range addrs {
			eps = append(eps, protocol.Endpoint{Host: addr.IP.String(), Port: seed.Port})
		}
		d.shuffle(eps)
	} else {
		eps = append(eps, d.settings.Hosts...)
		d.shuffle(eps)
	}

	if hint != nil {
		eps = moveToFront(eps, *hint)
	}
	return eps, nil
}

// arrange orders cached members into gossip candidates: the failed endpoint
// is excluded, nodes and managers are independently shuffled, and managers
// are tried last.
func (d *Discoverer) arrange(members []protocol.MemberInfo, failed *protocol.Endpoint) []protocol.Endpoint {
	var nodes, managers []protocol.Endpoint

	for _, m := range members {
		if failed != nil && m.HTTPEndpoint == *failed {
			continue
		}
		if m.State == protocol.VNodeState_Manager {
			managers = append(managers, m.HTTPEndpoint)
		} else {
			nodes = append(nodes, m.HTTPEndpoint)
		}
	}
	d.shuffle(nodes)
	d.shuffle(managers)
	return append(nodes, managers...)
}

func (d *Discoverer) readGossipFrom(ctx context.Context, ep protocol.Endpoint) ([]protocol.MemberInfo, error) {
	dialCtx, cancel := context.WithTimeout(ctx, d.settings.GossipTimeout)
	defer cancel()

	var cc, err = d.dial(dialCtx, ep)
	if err != nil {
		return nil, err
	}
	defer cc.Close()

	return ReadGossip(ctx, cc, d.settings.GossipTimeout, d.settings.DefaultCredentials)
}

func (d *Discoverer) shuffle(eps []protocol.Endpoint) {
	d.rngMu.Lock()
	d.rng.Shuffle(len(eps), func(i, j int) { eps[i], eps[j] = eps[j], eps[i] })
	d.rngMu.Unlock()
}

func moveToFront(eps []protocol.Endpoint, first protocol.Endpoint) []protocol.Endpoint {
	for i, ep := range eps {
		if ep == first {
			copy(eps[1:i+1], eps[:i])
			eps[0] = first
			return eps
		}
	}
	return append([]protocol.Endpoint{first}, eps...)
}

const (
	viewCacheSize = 64
	viewCacheTTL  = time.Minute
)
