package protocol

import (
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

// VNodeState is the role of a node within the cluster, as reported by gossip.
type VNodeState int32

const (
	VNodeState_Initializing VNodeState = iota
	VNodeState_DiscoverLeader
	VNodeState_Unknown
	VNodeState_PreReplica
	VNodeState_CatchingUp
	VNodeState_Clone
	VNodeState_Follower
	VNodeState_PreLeader
	VNodeState_Leader
	VNodeState_Manager
	VNodeState_ShuttingDown
	VNodeState_Shutdown
	VNodeState_ReadOnlyLeaderless
	VNodeState_PreReadOnlyReplica
	VNodeState_ReadOnlyReplica
	VNodeState_ResigningLeader
)

var vNodeStateNames = map[VNodeState]string{
	VNodeState_Initializing:       "Initializing",
	VNodeState_DiscoverLeader:     "DiscoverLeader",
	VNodeState_Unknown:            "Unknown",
	VNodeState_PreReplica:         "PreReplica",
	VNodeState_CatchingUp:         "CatchingUp",
	VNodeState_Clone:              "Clone",
	VNodeState_Follower:           "Follower",
	VNodeState_PreLeader:          "PreLeader",
	VNodeState_Leader:             "Leader",
	VNodeState_Manager:            "Manager",
	VNodeState_ShuttingDown:       "ShuttingDown",
	VNodeState_Shutdown:           "Shutdown",
	VNodeState_ReadOnlyLeaderless: "ReadOnlyLeaderless",
	VNodeState_PreReadOnlyReplica: "PreReadOnlyReplica",
	VNodeState_ReadOnlyReplica:    "ReadOnlyReplica",
	VNodeState_ResigningLeader:    "ResigningLeader",
}

// String returns the gossip wire name of the VNodeState.
func (s VNodeState) String() string {
	if n, ok := vNodeStateNames[s]; ok {
		return n
	}
	return "Unknown"
}

// ParseVNodeState maps a gossip wire name to its VNodeState.
// Unrecognized names map to VNodeState_Unknown.
func ParseVNodeState(s string) VNodeState {
	for state, name := range vNodeStateNames {
		if name == s {
			return state
		}
	}
	return VNodeState_Unknown
}

// NodePreference is the caller-declared preferred node role to which
// operations are dispatched.
type NodePreference int32

const (
	// NodePreference_Leader dispatches to the cluster leader, and requires
	// that contacted nodes be the leader (via the requires-leader header).
	NodePreference_Leader NodePreference = iota
	// NodePreference_Follower dispatches to a randomized alive follower.
	NodePreference_Follower
	// NodePreference_ReadOnlyReplica dispatches to a randomized alive
	// read-only replica.
	NodePreference_ReadOnlyReplica
	// NodePreference_Random dispatches to any randomized alive member.
	NodePreference_Random
)

// String returns the connection-string form of the NodePreference.
func (p NodePreference) String() string {
	switch p {
	case NodePreference_Leader:
		return "leader"
	case NodePreference_Follower:
		return "follower"
	case NodePreference_ReadOnlyReplica:
		return "readonlyreplica"
	case NodePreference_Random:
		return "random"
	default:
		return "leader"
	}
}

// ParseNodePreference parses the connection-string form of a NodePreference.
func ParseNodePreference(s string) (NodePreference, error) {
	switch strings.ToLower(s) {
	case "leader":
		return NodePreference_Leader, nil
	case "follower":
		return NodePreference_Follower, nil
	case "readonlyreplica":
		return NodePreference_ReadOnlyReplica, nil
	case "random":
		return NodePreference_Random, nil
	default:
		return 0, NewValidationError(
			"invalid node preference (%s; expected leader|follower|random|readonlyreplica)", s)
	}
}

// MemberInfo is a cluster member as reported by gossip.
type MemberInfo struct {
	InstanceID   uuid.UUID
	State        VNodeState
	IsAlive      bool
	HTTPEndpoint Endpoint
}

// Candidate pairs an Endpoint with its optionally-known VNodeState.
// Candidates with no known state (single-node or DNS-seed mode) match
// any node preference.
type Candidate struct {
	Endpoint Endpoint
	State    *VNodeState
}

// eligible returns whether a member may ever be selected: it must be alive,
// and not a manager, a shutting-down node, or a node still joining the cluster.
func eligible(m MemberInfo) bool {
	if !m.IsAlive {
		return false
	}
	switch m.State {
	case VNodeState_Leader, VNodeState_Follower,
		VNodeState_ReadOnlyLeaderless, VNodeState_ReadOnlyReplica:
		return true
	default:
		return false
	}
}

// matches returns whether an eligible member satisfies the preference.
func matches(p NodePreference, s VNodeState) bool {
	switch p {
	case NodePreference_Leader:
		return s == VNodeState_Leader
	case NodePreference_Follower:
		return s == VNodeState_Follower
	case NodePreference_ReadOnlyReplica:
		return s == VNodeState_ReadOnlyLeaderless || s == VNodeState_ReadOnlyReplica
	case NodePreference_Random:
		return true
	default:
		return false
	}
}

// SelectMember applies the NodePreference to a gossip member view, returning
// the selected member. Ties among equally-preferred members break by a
// uniform draw from |rng|, so that repeated selections diversify across nodes.
//
// If the preference is NodePreference_Leader and no alive leader exists,
// ErrNotLeaderAvailable is returned. Other preferences return
// ErrNoEligibleMember when nothing matches.
func SelectMember(rng *rand.Rand, p NodePreference, members []MemberInfo) (MemberInfo, error) {
	var matched []MemberInfo
	for _, m := range members {
		if eligible(m) && matches(p, m.State) {
			matched = append(matched, m)
		}
	}

	if len(matched) == 0 {
		if p == NodePreference_Leader {
			return MemberInfo{}, ErrNotLeaderAvailable
		}
		return MemberInfo{}, ErrNoEligibleMember
	}
	return matched[rng.Intn(len(matched))], nil
}
