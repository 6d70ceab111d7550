package discovery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go.kurrent.dev/client/protocol"
)

func TestViewCacheUnionsAndInvalidates(t *testing.T) {
	var vc = NewViewCache(8, time.Minute)

	var seedA = protocol.Endpoint{Host: "a", Port: 2113}
	var seedB = protocol.Endpoint{Host: "b", Port: 2113}

	var m1 = protocol.MemberInfo{State: protocol.VNodeState_Leader, IsAlive: true,
		HTTPEndpoint: protocol.Endpoint{Host: "n1", Port: 2113}}
	var m2 = protocol.MemberInfo{State: protocol.VNodeState_Follower, IsAlive: true,
		HTTPEndpoint: protocol.Endpoint{Host: "n2", Port: 2113}}

	vc.Update(seedA, []protocol.MemberInfo{m1, m2})
	vc.Update(seedB, []protocol.MemberInfo{m2})

	// The union de-duplicates by member endpoint.
	assert.Len(t, vc.Members(), 2)

	vc.Invalidate(seedA)
	var members = vc.Members()
	assert.Len(t, members, 1)
	assert.Equal(t, "n2", members[0].HTTPEndpoint.Host)

	// An empty update is an invalidation.
	vc.Update(seedB, nil)
	assert.Empty(t, vc.Members())
}

func TestViewCacheExpiresByTTL(t *testing.T) {
	defer func(fn func() time.Time) { timeNow = fn }(timeNow)

	var now = time.Now()
	timeNow = func() time.Time { return now }

	var vc = NewViewCache(8, time.Minute)
	var seed = protocol.Endpoint{Host: "a", Port: 2113}

	vc.Update(seed, []protocol.MemberInfo{{
		State: protocol.VNodeState_Leader, IsAlive: true,
		HTTPEndpoint: protocol.Endpoint{Host: "n1", Port: 2113},
	}})
	assert.Len(t, vc.Members(), 1)

	now = now.Add(time.Minute + time.Second)
	assert.Empty(t, vc.Members())
}
