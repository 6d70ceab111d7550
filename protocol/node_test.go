package protocol

import (
	"math/rand"

	"github.com/google/uuid"
	gc "gopkg.in/check.v1"
)

type NodeSuite struct{}

func member(host string, state VNodeState, alive bool) MemberInfo {
	return MemberInfo{
		InstanceID:   uuid.New(),
		State:        state,
		IsAlive:      alive,
		HTTPEndpoint: Endpoint{Host: host, Port: 2113},
	}
}

func (s *NodeSuite) TestSelectionByPreference(c *gc.C) {
	var rng = rand.New(rand.NewSource(42))
	var view = []MemberInfo{
		member("a", VNodeState_Leader, true),
		member("b", VNodeState_Follower, true),
		member("c", VNodeState_Follower, false),
	}

	var m, err = SelectMember(rng, NodePreference_Leader, view)
	c.Check(err, gc.IsNil)
	c.Check(m.HTTPEndpoint.Host, gc.Equals, "a")

	m, err = SelectMember(rng, NodePreference_Follower, view)
	c.Check(err, gc.IsNil)
	c.Check(m.HTTPEndpoint.Host, gc.Equals, "b") // "c" is dead.

	// No alive leader fails with ErrNotLeaderAvailable.
	view[0].IsAlive = false
	_, err = SelectMember(rng, NodePreference_Leader, view)
	c.Check(err, gc.Equals, ErrNotLeaderAvailable)

	// Followers remain selectable.
	m, err = SelectMember(rng, NodePreference_Random, view)
	c.Check(err, gc.IsNil)
	c.Check(m.HTTPEndpoint.Host, gc.Equals, "b")
}

func (s *NodeSuite) TestSelectionExcludesIneligibleStates(c *gc.C) {
	var rng = rand.New(rand.NewSource(42))
	var view = []MemberInfo{
		member("mgr", VNodeState_Manager, true),
		member("down", VNodeState_ShuttingDown, true),
		member("gone", VNodeState_Shutdown, true),
		member("pre", VNodeState_PreReplica, true),
		member("catching", VNodeState_CatchingUp, true),
		member("clone", VNodeState_Clone, true),
		member("init", VNodeState_Initializing, true),
		member("unknown", VNodeState_Unknown, true),
	}

	// Even the catch-all Random preference never selects joining,
	// managerial, or terminating members.
	var _, err = SelectMember(rng, NodePreference_Random, view)
	c.Check(err, gc.Equals, ErrNoEligibleMember)

	view = append(view, member("ror", VNodeState_ReadOnlyReplica, true))
	m, err := SelectMember(rng, NodePreference_ReadOnlyReplica, view)
	c.Check(err, gc.IsNil)
	c.Check(m.HTTPEndpoint.Host, gc.Equals, "ror")
}

func (s *NodeSuite) TestSelectionReturnsOnlyMatchingAliveMembers(c *gc.C) {
	var rng = rand.New(rand.NewSource(7))
	var view = []MemberInfo{
		member("a", VNodeState_Leader, true),
		member("b", VNodeState_Follower, true),
		member("c", VNodeState_Follower, true),
		member("d", VNodeState_ReadOnlyReplica, true),
		member("e", VNodeState_Manager, true),
		member("f", VNodeState_Follower, false),
	}

	for i := 0; i != 100; i++ {
		var m, err = SelectMember(rng, NodePreference_Follower, view)
		c.Assert(err, gc.IsNil)
		c.Check(m.State, gc.Equals, VNodeState_Follower)
		c.Check(m.IsAlive, gc.Equals, true)
	}

	// Repeated random selection diversifies across eligible nodes.
	var seen = make(map[string]bool)
	for i := 0; i != 100; i++ {
		var m, err = SelectMember(rng, NodePreference_Random, view)
		c.Assert(err, gc.IsNil)
		seen[m.HTTPEndpoint.Host] = true
	}
	c.Check(seen, gc.DeepEquals, map[string]bool{"a": true, "b": true, "c": true, "d": true})
}

func (s *NodeSuite) TestVNodeStateRoundTrip(c *gc.C) {
	for state, name := range vNodeStateNames {
		c.Check(ParseVNodeState(name), gc.Equals, state)
		c.Check(state.String(), gc.Equals, name)
	}
	c.Check(ParseVNodeState("Bogus"), gc.Equals, VNodeState_Unknown)
}

var _ = gc.Suite(&NodeSuite{})
