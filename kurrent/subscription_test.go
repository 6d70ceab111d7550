package kurrent

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"go.kurrent.dev/client/api/shared"
	streamsapi "go.kurrent.dev/client/api/streams"
	"go.kurrent.dev/client/kurrent/teststub"
	"go.kurrent.dev/client/protocol"
)

func confirmationFrame(id string) *streamsapi.ReadResp {
	return &streamsapi.ReadResp{
		Confirmation: &streamsapi.ReadResp_SubscriptionConfirmation{SubscriptionId: id},
	}
}

func eventFrame(stream string, revision uint64) *streamsapi.ReadResp {
	var commit = revision * 100
	return &streamsapi.ReadResp{
		Event: &streamsapi.ReadResp_ReadEvent{
			Event: &streamsapi.ReadResp_ReadEvent_RecordedEvent{
				Id:               &shared.UUID{String_: uuid.NewString()},
				StreamIdentifier: &shared.StreamIdentifier{StreamName: []byte(stream)},
				StreamRevision:   revision,
				CommitPosition:   commit,
				PreparePosition:  commit,
				Metadata: map[string]string{
					"type":         "order-placed",
					"content-type": "application/json",
				},
				Data: []byte(`{}`),
			},
			CommitPosition: &commit,
		},
	}
}

func TestCatchUpSubscriptionResumesPastObservedRevision(t *testing.T) {
	var node = teststub.NewNode(t)
	defer node.Cleanup()
	var c = singleNodeClient(t, node)

	var sub, err = c.SubscribeToStream(context.Background(), "orders",
		SubscribeToStreamOptions{From: protocol.Start()})
	require.NoError(t, err)
	defer sub.Close()

	go func() {
		// First subscription starts from the stream start.
		var req = <-node.ReadReqCh
		assert.NotNil(t, req.Options.Stream.Start)
		assert.NotNil(t, req.Options.Subscription)

		node.ReadRespCh <- confirmationFrame("sub-1")
		node.ReadRespCh <- eventFrame("orders", 0)
		node.ReadRespCh <- eventFrame("orders", 1)
		node.ReadRespCh <- eventFrame("orders", 2)
		node.ErrCh <- status.Error(codes.Unavailable, "node restarting")

		// The driver re-subscribes after the last observed revision.
		req = <-node.ReadReqCh
		require.NotNil(t, req.Options.Stream.Revision)
		assert.Equal(t, uint64(2), *req.Options.Stream.Revision)

		node.ReadRespCh <- confirmationFrame("sub-2")
		node.ReadRespCh <- &streamsapi.ReadResp{CaughtUp: &streamsapi.ReadResp_CaughtUp{}}
		node.ReadRespCh <- eventFrame("orders", 3)
		node.ReadRespCh <- eventFrame("orders", 4)
	}()

	var deliver = func() SubscriptionEvent {
		var event, err = sub.Recv()
		require.NoError(t, err)
		return event
	}

	var first = deliver()
	require.NotNil(t, first.Confirmed)
	assert.Equal(t, "sub-1", first.Confirmed.SubscriptionID)

	var revisions []uint64
	for i := 0; i != 3; i++ {
		var event = deliver()
		require.NotNil(t, event.Event)
		revisions = append(revisions, event.Event.OriginalEvent().StreamRevision)
	}

	var second = deliver()
	require.NotNil(t, second.Confirmed)
	assert.Equal(t, "sub-2", second.Confirmed.SubscriptionID)

	assert.True(t, deliver().CaughtUp)

	for i := 0; i != 2; i++ {
		var event = deliver()
		require.NotNil(t, event.Event)
		revisions = append(revisions, event.Event.OriginalEvent().StreamRevision)
	}
	assert.Equal(t, []uint64{0, 1, 2, 3, 4}, revisions)

	// Cancellation stops the reconnect loop and refuses further deliveries.
	sub.Close()
	var _, err2 = sub.Recv()
	assert.ErrorIs(t, err2, protocol.ErrCancelled)
	_, err2 = sub.Recv()
	assert.ErrorIs(t, err2, protocol.ErrCancelled)
}

func TestCatchUpSubscriptionSurfacesFatalErrors(t *testing.T) {
	var node = teststub.NewNode(t)
	defer node.Cleanup()
	var c = singleNodeClient(t, node)

	var sub, err = c.SubscribeToStream(context.Background(), "secure",
		SubscribeToStreamOptions{})
	require.NoError(t, err)
	defer sub.Close()

	go func() {
		<-node.ReadReqCh
		node.ReadRespCh <- confirmationFrame("sub-1")
		node.ErrCh <- status.Error(codes.PermissionDenied, "access denied")
	}()

	var first, errRecv = sub.Recv()
	require.NoError(t, errRecv)
	require.NotNil(t, first.Confirmed)

	_, errRecv = sub.Recv()
	assert.ErrorIs(t, errRecv, protocol.ErrAccessDenied)
}

func TestSubscribeToAllResumesFromCheckpoint(t *testing.T) {
	var node = teststub.NewNode(t)
	defer node.Cleanup()
	var c = singleNodeClient(t, node)

	var sub, err = c.SubscribeToAll(context.Background(), SubscribeToAllOptions{
		From: protocol.StartPosition,
		Filter: &protocol.SubscriptionFilter{
			Prefixes:           []string{"order-"},
			MaxSearchWindow:    32,
			CheckpointInterval: 1,
		},
	})
	require.NoError(t, err)
	defer sub.Close()

	go func() {
		var req = <-node.ReadReqCh
		assert.NotNil(t, req.Options.All.Start)
		require.NotNil(t, req.Options.Filter)
		assert.Equal(t, []string{"order-"}, req.Options.Filter.EventType.Prefix)

		node.ReadRespCh <- confirmationFrame("sub-1")
		node.ReadRespCh <- &streamsapi.ReadResp{
			Checkpoint: &streamsapi.ReadResp_Checkpoint{CommitPosition: 700, PreparePosition: 700},
		}
		node.ErrCh <- status.Error(codes.Unavailable, "boom")

		req = <-node.ReadReqCh
		require.NotNil(t, req.Options.All.Position)
		assert.Equal(t, uint64(700), req.Options.All.Position.CommitPosition)

		node.ReadRespCh <- confirmationFrame("sub-2")
	}()

	var event, errRecv = sub.Recv()
	require.NoError(t, errRecv)
	require.NotNil(t, event.Confirmed)

	event, errRecv = sub.Recv()
	require.NoError(t, errRecv)
	require.NotNil(t, event.Checkpoint)
	assert.Equal(t, uint64(700), event.Checkpoint.Commit)

	event, errRecv = sub.Recv()
	require.NoError(t, errRecv)
	require.NotNil(t, event.Confirmed)
	assert.Equal(t, "sub-2", event.Confirmed.SubscriptionID)
}
