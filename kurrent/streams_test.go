package kurrent

import (
	"context"
	"io"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	featuresapi "go.kurrent.dev/client/api/serverfeatures"
	"go.kurrent.dev/client/api/shared"
	streamsapi "go.kurrent.dev/client/api/streams"
	"go.kurrent.dev/client/kurrent/teststub"
	"go.kurrent.dev/client/protocol"
)

func TestAppendToStreamSendsOptionsAndEvents(t *testing.T) {
	var node = teststub.NewNode(t)
	defer node.Cleanup()
	var c = singleNodeClient(t, node)

	go func() {
		var options = <-node.AppendReqCh
		require.NotNil(t, options.Options)
		assert.Equal(t, []byte("orders"), options.Options.StreamIdentifier.StreamName)
		assert.NotNil(t, options.Options.NoStream)

		var first = <-node.AppendReqCh
		require.NotNil(t, first.ProposedMessage)
		assert.Equal(t, "order-placed", first.ProposedMessage.Metadata["type"])
		assert.Equal(t, "application/json", first.ProposedMessage.Metadata["content-type"])

		var second = <-node.AppendReqCh
		require.NotNil(t, second.ProposedMessage)

		assert.Nil(t, <-node.AppendReqCh) // Client EOF.

		var revision = uint64(1)
		node.AppendRespCh <- &streamsapi.AppendResp{
			Success: &streamsapi.AppendResp_Success{
				CurrentRevision: &revision,
				Position:        &streamsapi.AppendResp_Position{CommitPosition: 500, PreparePosition: 480},
			},
		}
	}()

	var result, err = c.AppendToStream(context.Background(), "orders",
		AppendOptions{ExpectedRevision: protocol.NoStream()},
		protocol.EventData{Type: "order-placed", Data: []byte(`{"id": 1}`)},
		protocol.EventData{Type: "order-placed", Data: []byte(`{"id": 2}`)},
	)
	require.NoError(t, err)
	assert.True(t, result.Succeeded)

	var revision, exists = result.NextExpectedRevision.Revision()
	assert.True(t, exists)
	assert.Equal(t, uint64(1), revision)
	assert.Equal(t, protocol.Position{Commit: 500, Prepare: 480}, result.Position)
}

func TestAppendWrongExpectedVersionAsErrorOrData(t *testing.T) {
	var node = teststub.NewNode(t)
	defer node.Cleanup()

	var serveWEV = func() {
		for frame := range node.AppendReqCh {
			if frame == nil {
				break
			}
		}
		var current = uint64(7)
		node.AppendRespCh <- &streamsapi.AppendResp{
			WrongExpectedVersion: &streamsapi.AppendResp_WrongExpectedVersion{
				CurrentRevision: &current,
			},
		}
	}

	// Default: surfaced as an error.
	var c = singleNodeClient(t, node)
	go serveWEV()
	var _, err = c.AppendToStream(context.Background(), "orders",
		AppendOptions{ExpectedRevision: protocol.Exact(3)},
		protocol.EventData{Type: "order-placed"})

	var wev *protocol.WrongExpectedVersionError
	require.ErrorAs(t, err, &wev)
	var current, exists = wev.Current.Revision()
	assert.True(t, exists)
	assert.Equal(t, uint64(7), current)

	// With throwOnAppendFailure=false: reported as data.
	c2, err := Dial(node.ConnString() + "&throwOnAppendFailure=false")
	require.NoError(t, err)
	defer c2.Close()

	go serveWEV()
	result, err := c2.AppendToStream(context.Background(), "orders",
		AppendOptions{ExpectedRevision: protocol.Exact(3)},
		protocol.EventData{Type: "order-placed"})
	require.NoError(t, err)
	assert.False(t, result.Succeeded)
	require.NotNil(t, result.WrongExpectedVersion)
}

func TestReadStreamDeliversOrderedEventsThenEOF(t *testing.T) {
	var node = teststub.NewNode(t)
	defer node.Cleanup()
	var c = singleNodeClient(t, node)

	var rs, err = c.ReadStream(context.Background(), "orders", ReadStreamOptions{
		From:     protocol.Revision(5),
		MaxCount: 3,
	})
	require.NoError(t, err)
	defer rs.Close()

	go func() {
		var req = <-node.ReadReqCh
		require.NotNil(t, req.Options.Stream.Revision)
		assert.Equal(t, uint64(5), *req.Options.Stream.Revision)
		assert.Equal(t, uint64(3), req.Options.Count)
		assert.Nil(t, req.Options.Subscription)

		for rev := uint64(5); rev != 8; rev++ {
			node.ReadRespCh <- eventFrame("orders", rev)
		}
		node.ErrCh <- nil // Graceful end of stream.
	}()

	var revisions []uint64
	for {
		var event, err = rs.Recv()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		revisions = append(revisions, event.OriginalEvent().StreamRevision)
	}
	assert.Equal(t, []uint64{5, 6, 7}, revisions)
}

func TestReadStreamNotFound(t *testing.T) {
	var node = teststub.NewNode(t)
	defer node.Cleanup()
	var c = singleNodeClient(t, node)

	var rs, err = c.ReadStream(context.Background(), "missing", ReadStreamOptions{})
	require.NoError(t, err)
	defer rs.Close()

	go func() {
		<-node.ReadReqCh
		node.ReadRespCh <- &streamsapi.ReadResp{
			StreamNotFound: &streamsapi.ReadResp_StreamNotFound{
				StreamIdentifier: &shared.StreamIdentifier{StreamName: []byte("missing")},
			},
		}
	}()

	_, err = rs.Recv()
	assert.ErrorIs(t, err, protocol.ErrResourceNotFound)
}

func TestBatchAppendIsGatedOnServerCapability(t *testing.T) {
	var node = teststub.NewNode(t)
	defer node.Cleanup()

	// The probe advertises a method set without batch-append.
	node.FeaturesFunc = func(context.Context) (*featuresapi.SupportedMethods, error) {
		var full = teststub.FullMethods()
		var trimmed = full.Methods[:0]
		for _, m := range full.Methods {
			if m.MethodName != "batchappend" {
				trimmed = append(trimmed, m)
			}
		}
		full.Methods = trimmed
		return full, nil
	}

	var c = singleNodeClient(t, node)

	var _, err = c.BatchAppend(context.Background(), "orders", BatchAppendOptions{},
		protocol.EventData{Type: "order-placed"})
	assert.ErrorIs(t, err, protocol.ErrUnsupportedFeature)

	// The gate rejects before any RPC is issued.
	assert.Equal(t, int64(0), atomic.LoadInt64(&node.BatchCalls))
}

func TestBatchAppendChunksAndCompletes(t *testing.T) {
	var node = teststub.NewNode(t)
	defer node.Cleanup()
	var c = singleNodeClient(t, node)

	go func() {
		var first = <-node.BatchReqCh
		require.NotNil(t, first.Options)
		assert.NotNil(t, first.Options.Any)
		assert.Len(t, first.ProposedMessages, 2)
		assert.False(t, first.IsFinal)

		var second = <-node.BatchReqCh
		assert.Nil(t, second.Options)
		assert.Len(t, second.ProposedMessages, 1)
		assert.True(t, second.IsFinal)

		assert.Nil(t, <-node.BatchReqCh) // Client EOF.

		var revision = uint64(2)
		node.BatchRespCh <- &streamsapi.BatchAppendResp{
			CorrelationId: first.CorrelationId,
			Success: &streamsapi.BatchAppendResp_Success{
				CurrentRevision: &revision,
				Position:        &shared.AllStreamPosition{CommitPosition: 900, PreparePosition: 900},
			},
		}
	}()

	var result, err = c.BatchAppend(context.Background(), "orders",
		BatchAppendOptions{ChunkSize: 2},
		protocol.EventData{Type: "a"},
		protocol.EventData{Type: "b"},
		protocol.EventData{Type: "c"},
	)
	require.NoError(t, err)
	assert.True(t, result.Succeeded)
	assert.Equal(t, protocol.Position{Commit: 900, Prepare: 900}, result.Position)
}
