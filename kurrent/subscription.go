package kurrent

import (
	"context"
	"io"
	"math"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"go.kurrent.dev/client/api/shared"
	streamsapi "go.kurrent.dev/client/api/streams"
	"go.kurrent.dev/client/metrics"
	"go.kurrent.dev/client/protocol"
)

// SubscriptionEvent is one delivery of a catch-up subscription. Exactly one
// member field is set.
type SubscriptionEvent struct {
	// Confirmed reports the server accepted the subscription. It is the
	// first delivery, and re-occurs after each automatic re-subscription.
	Confirmed *SubscriptionConfirmed
	// Event is a subscribed event.
	Event *protocol.ResolvedEvent
	// Checkpoint is a filtered $all subscription's position checkpoint.
	Checkpoint *protocol.Position
	// CaughtUp marks the transition from replaying history to live events.
	CaughtUp bool
	// FellBehind marks a live subscription which regressed to catch-up.
	FellBehind bool
}

// SubscriptionConfirmed carries the server-assigned subscription id.
type SubscriptionConfirmed struct {
	SubscriptionID string
}

// Subscription is a catch-up subscription to a stream or to $all. It tracks
// the last observed position, and on transient disconnect re-subscribes
// from that position after a capped exponential backoff. Fatal conditions —
// failed authentication, denied access, a deleted stream, or caller
// cancellation — surface as errors and end the subscription.
//
// Subscription is not safe for concurrent Recv calls, with one exception:
// Close may be called from another goroutine to abort a blocked Recv.
type Subscription struct {
	client *Client
	ctx    context.Context
	cancel context.CancelFunc

	// Request state, advanced as events are observed.
	stream       string // Empty for a $all subscription.
	fromStream   protocol.StreamPosition
	fromAll      protocol.Position
	resolveLinks bool
	filter       *protocol.SubscriptionFilter
	opts         callOptions

	// Cursors of the last observed event, nil until one is observed.
	lastRevision *uint64
	lastPosition *protocol.Position

	ch      *channel
	inner   streamsapi.Streams_ReadClient
	attempt int
	err     error
}

// SubscribeToStream opens a catch-up subscription to |stream|, replaying
// history after opts.From and continuing live.
func (c *Client) SubscribeToStream(ctx context.Context, stream string, opts SubscribeToStreamOptions) (*Subscription, error) {
	if stream == "" {
		return nil, protocol.NewValidationError("expected stream")
	}
	var subCtx, cancel = context.WithCancel(ctx)
	var s = &Subscription{
		client:       c,
		ctx:          subCtx,
		cancel:       cancel,
		stream:       stream,
		fromStream:   opts.From,
		resolveLinks: opts.ResolveLinkTos,
		opts:         opts.callOptions(),
	}
	if err := s.resubscribe(); err != nil {
		cancel()
		return nil, err
	}
	return s, nil
}

// SubscribeToAll opens a catch-up subscription to $all, optionally filtered,
// replaying history after opts.From and continuing live.
func (c *Client) SubscribeToAll(ctx context.Context, opts SubscribeToAllOptions) (*Subscription, error) {
	if opts.Filter != nil {
		if err := opts.Filter.Validate(); err != nil {
			return nil, protocol.ExtendContext(err, "Filter")
		}
	}
	var subCtx, cancel = context.WithCancel(ctx)
	var s = &Subscription{
		client:       c,
		ctx:          subCtx,
		cancel:       cancel,
		fromAll:      opts.From,
		resolveLinks: opts.ResolveLinkTos,
		filter:       opts.Filter,
		opts:         opts.callOptions(),
	}
	if err := s.resubscribe(); err != nil {
		cancel()
		return nil, err
	}
	return s, nil
}

// Recv returns the subscription's next delivery. It blocks awaiting live
// events, and internally re-subscribes through transient failures. After
// Recv returns a terminal error the subscription is finished, and every
// later call returns that same error.
func (s *Subscription) Recv() (SubscriptionEvent, error) {
	if s.err != nil {
		return SubscriptionEvent{}, s.err
	}

	for {
		if s.inner == nil {
			if err := s.connectWithBackoff(); err != nil {
				s.err = err
				return SubscriptionEvent{}, err
			}
		}

		var resp, err = s.inner.Recv()
		if err != nil {
			if terminal := s.classify(err); terminal != nil {
				s.err = terminal
				return SubscriptionEvent{}, terminal
			}
			continue // Transient; re-subscribe from the last observed position.
		}

		switch {
		case resp.Confirmation != nil:
			return SubscriptionEvent{Confirmed: &SubscriptionConfirmed{
				SubscriptionID: resp.Confirmation.SubscriptionId,
			}}, nil

		case resp.Event != nil:
			var event = resolvedFromWire(resp.Event)
			s.observe(event)
			metrics.ReadEventsTotal.Inc()
			return SubscriptionEvent{Event: &event}, nil

		case resp.Checkpoint != nil:
			var pos = protocol.Position{
				Commit:  resp.Checkpoint.CommitPosition,
				Prepare: resp.Checkpoint.PreparePosition,
			}
			s.lastPosition = &pos
			return SubscriptionEvent{Checkpoint: &pos}, nil

		case resp.CaughtUp != nil:
			return SubscriptionEvent{CaughtUp: true}, nil
		case resp.FellBehind != nil:
			return SubscriptionEvent{FellBehind: true}, nil

		case resp.StreamNotFound != nil:
			// The stream doesn't exist yet. The server still delivers its
			// events once created, so this frame is informational only.
		default:
			// Informational frame (first / last positions).
		}
	}
}

// Close cancels the subscription: the underlying stream closes, the
// re-subscription loop stops, and further Recv calls fail.
func (s *Subscription) Close() {
	s.cancel()
}

// observe advances the resume cursor past the delivered event.
func (s *Subscription) observe(event protocol.ResolvedEvent) {
	if original := event.OriginalEvent(); s.stream != "" && original != nil {
		var rev = original.StreamRevision
		s.lastRevision = &rev
	}
	if event.Commit != nil {
		var pos = *event.Commit
		s.lastPosition = &pos
	}
}

// classify splits stream errors into transient (nil is returned and the
// driver re-subscribes) and terminal conditions.
func (s *Subscription) classify(err error) error {
	var mapped = mapRPCError(s.ctx, err, s.inner.Trailer())
	s.inner = nil

	switch {
	case s.ctx.Err() != nil:
		return protocol.ErrCancelled
	case errors.Is(mapped, protocol.ErrAccessDenied),
		errors.Is(mapped, protocol.ErrUnauthenticated),
		errors.Is(mapped, protocol.ErrStreamDeleted),
		errors.Is(mapped, protocol.ErrResourceNotFound):
		return mapped
	case err == io.EOF:
		// Server-initiated stream closure; re-subscribe.
	}

	// Transport failure (or a leader-required timeout) also drops the
	// channel for other operations.
	s.client.maybeInvalidate(s.ch, err)

	log.WithFields(log.Fields{
		"stream":  s.streamLabel(),
		"attempt": s.attempt,
		"err":     mapped,
	}).Warn("subscription interrupted (will re-subscribe)")
	return nil
}

// connectWithBackoff re-subscribes after a capped exponential backoff,
// honoring cancellation.
func (s *Subscription) connectWithBackoff() error {
	for {
		select {
		case <-s.ctx.Done():
			return protocol.ErrCancelled
		case <-time.After(subscribeBackoff(s.attempt)):
		}
		metrics.SubscriptionResubscribesTotal.Inc()
		s.attempt++

		var err = s.resubscribe()
		if err == nil {
			s.attempt = 0
			return nil
		}
		if s.ctx.Err() != nil {
			return protocol.ErrCancelled
		}
		switch {
		case errors.Is(err, protocol.ErrAccessDenied),
			errors.Is(err, protocol.ErrUnauthenticated),
			errors.Is(err, protocol.ErrStreamDeleted),
			errors.Is(err, protocol.ErrClientClosed):
			return err
		}

		log.WithFields(log.Fields{
			"stream":  s.streamLabel(),
			"attempt": s.attempt,
			"err":     err,
		}).Warn("re-subscription failed (will retry)")
	}
}

// resubscribe opens the server stream from the current resume cursor.
func (s *Subscription) resubscribe() error {
	var ch, err = s.client.channel(s.ctx)
	if err != nil {
		return err
	}

	var options = &streamsapi.ReadReq_Options{
		ReadDirection: streamsapi.ReadReq_Options_Forwards,
		ResolveLinks:  s.resolveLinks,
		Subscription:  &streamsapi.ReadReq_Options_SubscriptionOptions{},
	}

	if s.stream != "" {
		var streamOptions = &streamsapi.ReadReq_Options_StreamOptions{
			StreamIdentifier: streamIdentifier(s.stream),
		}
		if s.lastRevision != nil {
			streamOptions.Revision = s.lastRevision
		} else if rev, ok := s.fromStream.RevisionValue(); ok {
			streamOptions.Revision = &rev
		} else if s.fromStream.IsEnd() {
			streamOptions.End = &shared.Empty{}
		} else {
			streamOptions.Start = &shared.Empty{}
		}
		options.Stream = streamOptions
		options.NoFilter = &shared.Empty{}
	} else {
		var allOptions = &streamsapi.ReadReq_Options_AllOptions{}
		var from = s.fromAll
		if s.lastPosition != nil {
			from = *s.lastPosition
		}
		switch from {
		case protocol.StartPosition:
			allOptions.Start = &shared.Empty{}
		case protocol.EndPosition:
			allOptions.End = &shared.Empty{}
		default:
			allOptions.Position = &shared.AllStreamPosition{
				CommitPosition:  from.Commit,
				PreparePosition: from.Prepare,
			}
		}
		options.All = allOptions

		if s.filter != nil {
			options.Filter = filterOptionsToWire(*s.filter)
		} else {
			options.NoFilter = &shared.Empty{}
		}
	}

	callCtx, _ := s.client.callContext(s.ctx, s.opts, true)
	inner, err := streamsapi.NewStreamsClient(ch.conn).Read(callCtx, &streamsapi.ReadReq{Options: options})
	if err != nil {
		s.client.maybeInvalidate(ch, err)
		return mapRPCError(s.ctx, err, nil)
	}
	s.ch, s.inner = ch, inner
	return nil
}

func (s *Subscription) streamLabel() string {
	if s.stream == "" {
		return "$all"
	}
	return s.stream
}

// subscribeBackoff is the capped exponential backoff of re-subscription
// attempts: 100ms doubling to a 5s cap.
func subscribeBackoff(attempt int) time.Duration {
	if attempt > 5 {
		return subscribeBackoffCap
	}
	var d = subscribeBackoffFloor * time.Duration(math.Pow(2, float64(attempt)))
	if d > subscribeBackoffCap {
		d = subscribeBackoffCap
	}
	return d
}

const (
	subscribeBackoffFloor = 100 * time.Millisecond
	subscribeBackoffCap   = 5 * time.Second
)
