package kurrent

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	persistentapi "go.kurrent.dev/client/api/persistent"
	featuresapi "go.kurrent.dev/client/api/serverfeatures"
	"go.kurrent.dev/client/api/shared"
	"go.kurrent.dev/client/kurrent/teststub"
	"go.kurrent.dev/client/protocol"
)

func persistentConfirmation(id string) *persistentapi.ReadResp {
	return &persistentapi.ReadResp{
		SubscriptionConfirmation: &persistentapi.ReadResp_SubscriptionConfirmation{
			SubscriptionId: id,
		},
	}
}

func persistentEventFrame(stream string, revision uint64, id uuid.UUID, retry int32) *persistentapi.ReadResp {
	var commit = revision * 100
	return &persistentapi.ReadResp{
		Event: &persistentapi.ReadResp_ReadEvent{
			Event: &persistentapi.ReadResp_ReadEvent_RecordedEvent{
				Id:               &shared.UUID{String_: id.String()},
				StreamIdentifier: &shared.StreamIdentifier{StreamName: []byte(stream)},
				StreamRevision:   revision,
				CommitPosition:   commit,
				PreparePosition:  commit,
				Metadata: map[string]string{
					"type":         "order-placed",
					"content-type": "application/json",
				},
			},
			CommitPosition: &commit,
			RetryCount:     &retry,
		},
	}
}

func TestPersistentSubscriptionDeliversAndAcks(t *testing.T) {
	var node = teststub.NewNode(t)
	defer node.Cleanup()
	var c = singleNodeClient(t, node)

	var eventID = uuid.New()

	var ps, err = c.ConnectToPersistentSubscription(context.Background(), "orders", "workers",
		ConnectToPersistentSubscriptionOptions{BufferSize: 16})
	require.NoError(t, err)
	defer ps.Close()

	go func() {
		var options = <-node.PersistentReqCh
		require.NotNil(t, options.Options)
		assert.Equal(t, "workers", options.Options.GroupName)
		assert.Equal(t, int32(16), options.Options.BufferSize)
		assert.Equal(t, []byte("orders"), options.Options.StreamIdentifier.StreamName)

		node.PersistentRespCh <- persistentConfirmation("workers-1")
		node.PersistentRespCh <- persistentEventFrame("orders", 3, eventID, 1)
	}()

	var delivery, errRecv = ps.Recv()
	require.NoError(t, errRecv)
	require.NotNil(t, delivery.Confirmed)
	assert.Equal(t, "workers-1", delivery.Confirmed.SubscriptionID)

	delivery, errRecv = ps.Recv()
	require.NoError(t, errRecv)
	require.NotNil(t, delivery.Event)
	assert.Equal(t, int32(1), delivery.RetryCount)
	assert.Equal(t, uint64(3), delivery.Event.OriginalEvent().StreamRevision)

	// Ack and Nack carry the delivered event's id on the outgoing lane.
	require.NoError(t, ps.Ack(*delivery.Event))
	var ack = <-node.PersistentReqCh
	require.NotNil(t, ack.Ack)
	require.Len(t, ack.Ack.Ids, 1)
	assert.Equal(t, eventID.String(), ack.Ack.Ids[0].String_)

	require.NoError(t, ps.Nack(protocol.NakAction_Park, "poison", *delivery.Event))
	var nack = <-node.PersistentReqCh
	require.NotNil(t, nack.Nack)
	assert.Equal(t, persistentapi.ReadReq_Nack_Park, nack.Nack.Action)
	assert.Equal(t, "poison", nack.Nack.Reason)
}

func TestPersistentSubscriptionReopensGroupWithoutCursor(t *testing.T) {
	var node = teststub.NewNode(t)
	defer node.Cleanup()
	var c = singleNodeClient(t, node)

	var ps, err = c.ConnectToPersistentSubscription(context.Background(), "orders", "workers",
		ConnectToPersistentSubscriptionOptions{})
	require.NoError(t, err)
	defer ps.Close()

	go func() {
		<-node.PersistentReqCh // Options of the first connection.
		node.PersistentRespCh <- persistentConfirmation("gen-1")
		node.ErrCh <- status.Error(codes.Unavailable, "restarting")

		// Re-subscription sends a fresh options frame and no cursor: the
		// server owns the group's position. The torn-down stream's read loop
		// may first deliver its trailing nil.
		var options = <-node.PersistentReqCh
		for options == nil {
			options = <-node.PersistentReqCh
		}
		require.NotNil(t, options.Options)
		assert.Equal(t, "workers", options.Options.GroupName)
		node.PersistentRespCh <- persistentConfirmation("gen-2")
	}()

	var delivery, errRecv = ps.Recv()
	require.NoError(t, errRecv)
	require.NotNil(t, delivery.Confirmed)
	assert.Equal(t, "gen-1", delivery.Confirmed.SubscriptionID)

	delivery, errRecv = ps.Recv()
	require.NoError(t, errRecv)
	require.NotNil(t, delivery.Confirmed)
	assert.Equal(t, "gen-2", delivery.Confirmed.SubscriptionID)
}

func TestPersistentManagementOpsAreCapabilityGated(t *testing.T) {
	var node = teststub.NewNode(t)
	defer node.Cleanup()

	// A legacy server: the probe RPC is unimplemented, so the baseline
	// capability set applies and management operations are unsupported.
	node.FeaturesFunc = func(context.Context) (*featuresapi.SupportedMethods, error) {
		return nil, status.Error(codes.Unimplemented, "unknown service")
	}

	var c = singleNodeClient(t, node)

	var _, err = c.ListPersistentSubscriptions(context.Background(), "", OperationOptions{})
	assert.ErrorIs(t, err, protocol.ErrUnsupportedFeature)

	_, err = c.GetPersistentSubscriptionInfo(context.Background(), "orders", "workers", OperationOptions{})
	assert.ErrorIs(t, err, protocol.ErrUnsupportedFeature)

	err = c.ReplayParkedMessages(context.Background(), "orders", "workers", ReplayParkedOptions{})
	assert.ErrorIs(t, err, protocol.ErrUnsupportedFeature)

	// Core operations remain available under the baseline set.
	err = c.CreatePersistentSubscription(context.Background(), "orders", "workers",
		PersistentSubscriptionOptions{})
	assert.NoError(t, err)
}
