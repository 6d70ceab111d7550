package discovery

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	gossipapi "go.kurrent.dev/client/api/gossip"
	"go.kurrent.dev/client/api/shared"
	"go.kurrent.dev/client/metrics"
	"go.kurrent.dev/client/protocol"
)

// ReadGossip issues a unary gossip Read against |cc|, bounded by |timeout|,
// and maps the reply into MemberInfos. If |creds| are set they are sent as a
// basic Authorization header; otherwise the request is anonymous.
func ReadGossip(ctx context.Context, cc *grpc.ClientConn, timeout time.Duration,
	creds *protocol.Credentials) ([]protocol.MemberInfo, error) {

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if creds != nil {
		ctx = metadata.AppendToOutgoingContext(ctx,
			"authorization", creds.AuthorizationHeader())
	}

	var resp, err = gossipapi.NewGossipClient(cc).Read(ctx, &shared.Empty{})
	if err != nil {
		metrics.GossipReadsTotal.WithLabelValues(metrics.Fail).Inc()
		return nil, err
	}
	metrics.GossipReadsTotal.WithLabelValues(metrics.Ok).Inc()

	var members = make([]protocol.MemberInfo, 0, len(resp.Members))
	for i, m := range resp.Members {
		var info, err = memberFromWire(m)
		if err != nil {
			return nil, errors.WithMessagef(err, "gossip member %d", i)
		}
		members = append(members, info)
	}
	return members, nil
}

func memberFromWire(m *gossipapi.MemberInfo) (protocol.MemberInfo, error) {
	if m.HttpEndPoint == nil {
		return protocol.MemberInfo{}, errors.New("missing http endpoint")
	} else if m.HttpEndPoint.Port > 65535 {
		return protocol.MemberInfo{}, errors.Errorf("invalid port (%d)", m.HttpEndPoint.Port)
	}

	var instanceID uuid.UUID
	if m.InstanceId != nil {
		// A malformed instance id is tolerated; it identifies but doesn't route.
		instanceID, _ = uuid.Parse(m.InstanceId.String_)
	}

	return protocol.MemberInfo{
		InstanceID: instanceID,
		State:      protocol.VNodeState(m.State),
		IsAlive:    m.IsAlive,
		HTTPEndpoint: protocol.Endpoint{
			Host: m.HttpEndPoint.Address,
			Port: uint16(m.HttpEndPoint.Port),
		},
	}, nil
}
