package kurrent

import (
	"context"
	"io"

	streamsapi "go.kurrent.dev/client/api/streams"
	"go.kurrent.dev/client/metrics"
	"go.kurrent.dev/client/protocol"
)

// ReadStream is a lazy, cancellable sequence of events produced by a
// streaming read. Events are decoded frame-by-frame as Recv is called; the
// read runs arbitrarily long and never inherits a default deadline.
//
// Recv returns io.EOF when the requested range is exhausted. Close cancels
// the underlying stream; a ReadStream is invalidated by its first returned
// error.
type ReadStream struct {
	ctx    context.Context
	cancel context.CancelFunc
	client *Client
	ch     *channel
	inner  streamsapi.Streams_ReadClient

	// FirstPosition and LastPosition frames of the stream, where sent.
	FirstPosition uint64
	LastPosition  uint64
}

// Recv returns the next event of the read.
func (rs *ReadStream) Recv() (protocol.ResolvedEvent, error) {
	for {
		var resp, err = rs.inner.Recv()
		if err == io.EOF {
			return protocol.ResolvedEvent{}, io.EOF
		} else if err != nil {
			// Transport failure (or a leader-required timeout) also drops
			// the channel, so the next operation re-discovers.
			rs.client.maybeInvalidate(rs.ch, err)
			return protocol.ResolvedEvent{}, mapRPCError(rs.ctx, err, rs.inner.Trailer())
		}

		switch {
		case resp.Event != nil:
			metrics.ReadEventsTotal.Inc()
			return resolvedFromWire(resp.Event), nil
		case resp.StreamNotFound != nil:
			return protocol.ResolvedEvent{}, protocol.ErrResourceNotFound
		case resp.FirstStreamPosition != 0:
			rs.FirstPosition = resp.FirstStreamPosition
		case resp.LastStreamPosition != 0:
			rs.LastPosition = resp.LastStreamPosition
		default:
			// Informational frame of no interest to a ranged read.
		}
	}
}

// Close cancels the read. Further Recv calls fail.
func (rs *ReadStream) Close() { rs.cancel() }

// openRead starts a Read RPC of the given request against the current
// channel. The returned ReadStream owns a derived, cancellable Context.
func (c *Client) openRead(ctx context.Context, opts callOptions, req *streamsapi.ReadReq) (*ReadStream, error) {
	var ch, err = c.channel(ctx)
	if err != nil {
		return nil, err
	}

	callCtx, _ := c.callContext(ctx, opts, true)
	callCtx, cancel := context.WithCancel(callCtx)

	inner, err := streamsapi.NewStreamsClient(ch.conn).Read(callCtx, req)
	if err != nil {
		cancel()
		c.maybeInvalidate(ch, err)
		return nil, mapRPCError(ctx, err, nil)
	}
	return &ReadStream{
		ctx:    callCtx,
		cancel: cancel,
		client: c,
		ch:     ch,
		inner:  inner,
	}, nil
}
