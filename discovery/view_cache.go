package discovery

import (
	"time"

	lru "github.com/hashicorp/golang-lru"

	"go.kurrent.dev/client/protocol"
)

// ViewCache caches the cluster views recently learned from seed endpoints.
// At the start of a discovery pass the union of cached views seeds the
// candidate set, so that a pass can go straight to known members instead of
// re-resolving seeds. A candidate whose gossip read fails has its cached
// view invalidated.
type ViewCache struct {
	cache *lru.Cache
	ttl   time.Duration
}

// NewViewCache returns a ViewCache of the given size (which must be > 0)
// and caching Duration.
func NewViewCache(size int, ttl time.Duration) *ViewCache {
	var cache, err = lru.New(size)
	if err != nil {
		panic(err.Error()) // Only errors on size <= 0.
	}
	return &ViewCache{
		cache: cache,
		ttl:   ttl,
	}
}

// Update caches the view learned from |ep|, or invalidates it if the view
// is nil or empty.
func (vc *ViewCache) Update(ep protocol.Endpoint, view []protocol.MemberInfo) {
	if len(view) == 0 {
		vc.cache.Remove(ep)
	} else {
		var cv = cachedView{
			members: append([]protocol.MemberInfo(nil), view...),
			at:      timeNow(),
		}
		vc.cache.Add(ep, cv)
	}
}

// Invalidate drops the view learned from |ep|.
func (vc *ViewCache) Invalidate(ep protocol.Endpoint) { vc.cache.Remove(ep) }

// Members returns the union of cached, un-expired views, de-duplicated by
// member endpoint.
func (vc *ViewCache) Members() []protocol.MemberInfo {
	var out []protocol.MemberInfo
	var seen = make(map[protocol.Endpoint]struct{})

	for _, key := range vc.cache.Keys() {
		var v, ok = vc.cache.Get(key)
		if !ok {
			continue
		}
		// If the TTL has elapsed, treat as a cache miss and remove.
		var cv = v.(cachedView)
		if cv.at.Add(vc.ttl).Before(timeNow()) {
			vc.cache.Remove(key)
			continue
		}
		for _, m := range cv.members {
			if _, dup := seen[m.HTTPEndpoint]; dup {
				continue
			}
			seen[m.HTTPEndpoint] = struct{}{}
			out = append(out, m)
		}
	}
	return out
}

type cachedView struct {
	members []protocol.MemberInfo
	at      time.Time
}

var timeNow = time.Now
