package kurrent

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"

	persistentapi "go.kurrent.dev/client/api/persistent"
	"go.kurrent.dev/client/api/shared"
	"go.kurrent.dev/client/metrics"
	"go.kurrent.dev/client/protocol"
)

// CreatePersistentSubscription creates the persistent subscription |group|
// on |stream|.
func (c *Client) CreatePersistentSubscription(ctx context.Context, stream, group string,
	opts PersistentSubscriptionOptions) error {

	var settings, err = resolvePersistentSettings(opts.Settings)
	if err != nil {
		return err
	}

	var streamOptions = &persistentapi.StreamOptions{
		StreamIdentifier: streamIdentifier(stream),
	}
	if rev, ok := opts.From.RevisionValue(); ok {
		streamOptions.Revision = &rev
	} else if opts.From.IsEnd() {
		streamOptions.End = &shared.Empty{}
	} else {
		streamOptions.Start = &shared.Empty{}
	}

	var req = &persistentapi.CreateReq{
		Options: &persistentapi.CreateReq_Options{
			Stream:    streamOptions,
			GroupName: group,
			Settings:  persistentSettingsToWire(settings),
		},
	}
	return c.unary(ctx, opts.callOptions(), false,
		func(ctx context.Context, conn *grpc.ClientConn, callOpts ...grpc.CallOption) error {
			var _, err = persistentapi.NewPersistentSubscriptionsClient(conn).Create(ctx, req, callOpts...)
			return err
		})
}

// CreatePersistentSubscriptionToAll creates the persistent subscription
// |group| on $all, optionally filtered.
func (c *Client) CreatePersistentSubscriptionToAll(ctx context.Context, group string,
	opts PersistentSubscriptionToAllOptions) error {

	var settings, err = resolvePersistentSettings(opts.Settings)
	if err != nil {
		return err
	}

	var allOptions = &persistentapi.AllOptions{}
	switch opts.From {
	case protocol.StartPosition:
		allOptions.Start = &shared.Empty{}
	case protocol.EndPosition:
		allOptions.End = &shared.Empty{}
	default:
		allOptions.Position = &shared.AllStreamPosition{
			CommitPosition:  opts.From.Commit,
			PreparePosition: opts.From.Prepare,
		}
	}
	if opts.Filter != nil {
		if err = opts.Filter.Validate(); err != nil {
			return protocol.ExtendContext(err, "Filter")
		}
		allOptions.Filter = persistentFilterToWire(*opts.Filter)
	} else {
		allOptions.NoFilter = &shared.Empty{}
	}

	var req = &persistentapi.CreateReq{
		Options: &persistentapi.CreateReq_Options{
			All:       allOptions,
			GroupName: group,
			Settings:  persistentSettingsToWire(settings),
		},
	}
	return c.unary(ctx, opts.callOptions(), false,
		func(ctx context.Context, conn *grpc.ClientConn, callOpts ...grpc.CallOption) error {
			var _, err = persistentapi.NewPersistentSubscriptionsClient(conn).Create(ctx, req, callOpts...)
			return err
		})
}

// UpdatePersistentSubscription updates the settings and position of |group|
// on |stream|.
func (c *Client) UpdatePersistentSubscription(ctx context.Context, stream, group string,
	opts PersistentSubscriptionOptions) error {

	var settings, err = resolvePersistentSettings(opts.Settings)
	if err != nil {
		return err
	}

	var streamOptions = &persistentapi.StreamOptions{
		StreamIdentifier: streamIdentifier(stream),
	}
	if rev, ok := opts.From.RevisionValue(); ok {
		streamOptions.Revision = &rev
	} else if opts.From.IsEnd() {
		streamOptions.End = &shared.Empty{}
	} else {
		streamOptions.Start = &shared.Empty{}
	}

	var req = &persistentapi.UpdateReq{
		Options: &persistentapi.UpdateReq_Options{
			Stream:    streamOptions,
			GroupName: group,
			Settings:  persistentSettingsToWire(settings),
		},
	}
	return c.unary(ctx, opts.callOptions(), false,
		func(ctx context.Context, conn *grpc.ClientConn, callOpts ...grpc.CallOption) error {
			var _, err = persistentapi.NewPersistentSubscriptionsClient(conn).Update(ctx, req, callOpts...)
			return err
		})
}

// DeletePersistentSubscription removes |group| from |stream|. Pass an empty
// stream to remove a $all group.
func (c *Client) DeletePersistentSubscription(ctx context.Context, stream, group string,
	opts OperationOptions) error {

	var options = &persistentapi.DeleteReq_Options{GroupName: group}
	if stream == "" {
		options.All = &shared.Empty{}
	} else {
		options.StreamIdentifier = streamIdentifier(stream)
	}

	return c.unary(ctx, opts.callOptions(), false,
		func(ctx context.Context, conn *grpc.ClientConn, callOpts ...grpc.CallOption) error {
			var _, err = persistentapi.NewPersistentSubscriptionsClient(conn).
				Delete(ctx, &persistentapi.DeleteReq{Options: options}, callOpts...)
			return err
		})
}

// ReplayParkedMessages replays the parked messages of |group|. Pass an
// empty stream for a $all group.
func (c *Client) ReplayParkedMessages(ctx context.Context, stream, group string,
	opts ReplayParkedOptions) error {

	if err := c.requireSupport(ctx, PersistentService, MethodPersistentReplayParked); err != nil {
		return err
	}

	var options = &persistentapi.ReplayParkedReq_Options{GroupName: group}
	if stream == "" {
		options.All = &shared.Empty{}
	} else {
		options.StreamIdentifier = streamIdentifier(stream)
	}
	if opts.StopAt > 0 {
		var stopAt = opts.StopAt
		options.StopAt = &stopAt
	} else {
		options.NoLimit = &shared.Empty{}
	}

	return c.unary(ctx, opts.callOptions(), false,
		func(ctx context.Context, conn *grpc.ClientConn, callOpts ...grpc.CallOption) error {
			var _, err = persistentapi.NewPersistentSubscriptionsClient(conn).
				ReplayParked(ctx, &persistentapi.ReplayParkedReq{Options: options}, callOpts...)
			return err
		})
}

// GetPersistentSubscriptionInfo fetches the description of |group|. Pass an
// empty stream for a $all group.
func (c *Client) GetPersistentSubscriptionInfo(ctx context.Context, stream, group string,
	opts OperationOptions) (*protocol.PersistentSubscriptionInfo, error) {

	if err := c.requireSupport(ctx, PersistentService, MethodPersistentGetInfo); err != nil {
		return nil, err
	}

	var options = &persistentapi.GetInfoReq_Options{GroupName: group}
	if stream == "" {
		options.All = &shared.Empty{}
	} else {
		options.StreamIdentifier = streamIdentifier(stream)
	}

	var info *protocol.PersistentSubscriptionInfo
	var err = c.unary(ctx, opts.callOptions(), true,
		func(ctx context.Context, conn *grpc.ClientConn, callOpts ...grpc.CallOption) error {
			var resp, err = persistentapi.NewPersistentSubscriptionsClient(conn).
				GetInfo(ctx, &persistentapi.GetInfoReq{Options: options}, callOpts...)
			if err != nil {
				return err
			} else if resp.SubscriptionInfo == nil {
				return &protocol.InternalClientError{Detail: "GetInfo response lacks info"}
			}
			var converted = subscriptionInfoFromWire(resp.SubscriptionInfo)
			info = &converted
			return nil
		})
	if err != nil {
		return nil, err
	}
	return info, nil
}

// ListPersistentSubscriptions lists persistent subscription groups: of
// |stream|, or of the whole server when |stream| is empty.
func (c *Client) ListPersistentSubscriptions(ctx context.Context, stream string,
	opts OperationOptions) ([]protocol.PersistentSubscriptionInfo, error) {

	if err := c.requireSupport(ctx, PersistentService, MethodPersistentList); err != nil {
		return nil, err
	}

	var options = &persistentapi.ListReq_Options{}
	if stream == "" {
		options.ListAllSubscriptions = &shared.Empty{}
	} else if stream == "$all" {
		options.ListForStream = &persistentapi.ListReq_StreamOption{All: &shared.Empty{}}
	} else {
		options.ListForStream = &persistentapi.ListReq_StreamOption{Stream: streamIdentifier(stream)}
	}

	var infos []protocol.PersistentSubscriptionInfo
	var err = c.unary(ctx, opts.callOptions(), true,
		func(ctx context.Context, conn *grpc.ClientConn, callOpts ...grpc.CallOption) error {
			var resp, err = persistentapi.NewPersistentSubscriptionsClient(conn).
				List(ctx, &persistentapi.ListReq{Options: options}, callOpts...)
			if err != nil {
				return err
			}
			infos = infos[:0]
			for _, sub := range resp.Subscriptions {
				infos = append(infos, subscriptionInfoFromWire(sub))
			}
			return nil
		})
	if err != nil {
		return nil, err
	}
	return infos, nil
}

// PersistentEvent is one delivery of a persistent subscription.
// Exactly one of Confirmed or Event is set.
type PersistentEvent struct {
	// Confirmed reports the server accepted the consumer, and re-occurs
	// after each automatic re-subscription.
	Confirmed *SubscriptionConfirmed
	// Event is a delivered event, with its server-side retry count.
	Event      *protocol.ResolvedEvent
	RetryCount int32
}

// PersistentSubscription is a competing consumer of a persistent
// subscription group. The server owns the group's position, so transient
// disconnects simply reopen the group: no client cursor is replayed.
// Delivered events must be acknowledged with Ack or rejected with Nack.
//
// Recv is not safe for concurrent use; Ack, Nack and Close are.
type PersistentSubscription struct {
	client *Client
	ctx    context.Context
	cancel context.CancelFunc

	stream     string // Empty for a $all group.
	group      string
	bufferSize int32
	opts       callOptions

	sendMu  sync.Mutex
	ch      *channel
	inner   persistentapi.PersistentSubscriptions_ReadClient
	attempt int
	err     error
}

// ConnectToPersistentSubscription opens a consumer of |group|. Pass an
// empty stream to consume a $all group.
func (c *Client) ConnectToPersistentSubscription(ctx context.Context, stream, group string,
	opts ConnectToPersistentSubscriptionOptions) (*PersistentSubscription, error) {

	if group == "" {
		return nil, protocol.NewValidationError("expected group")
	}
	var bufferSize = opts.BufferSize
	if bufferSize <= 0 {
		bufferSize = 10
	}

	var subCtx, cancel = context.WithCancel(ctx)
	var ps = &PersistentSubscription{
		client:     c,
		ctx:        subCtx,
		cancel:     cancel,
		stream:     stream,
		group:      group,
		bufferSize: bufferSize,
		opts:       opts.callOptions(),
	}
	if err := ps.resubscribe(); err != nil {
		cancel()
		return nil, err
	}
	return ps, nil
}

// Recv returns the subscription's next delivery, re-opening the group
// through transient failures.
func (ps *PersistentSubscription) Recv() (PersistentEvent, error) {
	if ps.err != nil {
		return PersistentEvent{}, ps.err
	}

	for {
		ps.sendMu.Lock()
		var inner = ps.inner
		ps.sendMu.Unlock()

		if inner == nil {
			if err := ps.connectWithBackoff(); err != nil {
				ps.err = err
				return PersistentEvent{}, err
			}
			continue
		}

		var resp, err = inner.Recv()
		if err != nil {
			if terminal := ps.classify(inner, err); terminal != nil {
				ps.err = terminal
				return PersistentEvent{}, terminal
			}
			continue
		}

		switch {
		case resp.SubscriptionConfirmation != nil:
			return PersistentEvent{Confirmed: &SubscriptionConfirmed{
				SubscriptionID: resp.SubscriptionConfirmation.SubscriptionId,
			}}, nil

		case resp.Event != nil:
			var event = persistentResolvedFromWire(resp.Event)
			var retryCount int32
			if resp.Event.RetryCount != nil {
				retryCount = *resp.Event.RetryCount
			}
			metrics.ReadEventsTotal.Inc()
			return PersistentEvent{Event: &event, RetryCount: retryCount}, nil
		}
	}
}

// Ack acknowledges processed events to the server.
func (ps *PersistentSubscription) Ack(events ...protocol.ResolvedEvent) error {
	return ps.send(&persistentapi.ReadReq{Ack: &persistentapi.ReadReq_Ack{
		Ids: eventIDs(events),
	}})
}

// Nack negatively acknowledges events, directing the server's |action|.
func (ps *PersistentSubscription) Nack(action protocol.NakAction, reason string,
	events ...protocol.ResolvedEvent) error {

	return ps.send(&persistentapi.ReadReq{Nack: &persistentapi.ReadReq_Nack{
		Ids:    eventIDs(events),
		Action: persistentapi.ReadReq_Nack_Action(action),
		Reason: reason,
	}})
}

// Close cancels the consumer: the stream closes, the reconnect loop stops,
// and further deliveries are refused.
func (ps *PersistentSubscription) Close() {
	ps.cancel()
}

func (ps *PersistentSubscription) send(req *persistentapi.ReadReq) error {
	ps.sendMu.Lock()
	defer ps.sendMu.Unlock()

	if ps.err != nil {
		return ps.err
	} else if ps.inner == nil {
		return errors.New("subscription is not connected")
	}
	return ps.inner.Send(req)
}

func (ps *PersistentSubscription) classify(inner persistentapi.PersistentSubscriptions_ReadClient, err error) error {
	var mapped = mapRPCError(ps.ctx, err, inner.Trailer())

	ps.sendMu.Lock()
	ps.inner = nil
	ps.sendMu.Unlock()

	switch {
	case ps.ctx.Err() != nil:
		return protocol.ErrCancelled
	case errors.Is(mapped, protocol.ErrAccessDenied),
		errors.Is(mapped, protocol.ErrUnauthenticated),
		errors.Is(mapped, protocol.ErrResourceNotFound):
		return mapped
	case err == io.EOF:
		// Server-initiated closure; reopen the group.
	}

	ps.client.maybeInvalidate(ps.ch, err)

	log.WithFields(log.Fields{
		"stream":  ps.stream,
		"group":   ps.group,
		"attempt": ps.attempt,
		"err":     mapped,
	}).Warn("persistent subscription interrupted (will reconnect)")
	return nil
}

func (ps *PersistentSubscription) connectWithBackoff() error {
	for {
		select {
		case <-ps.ctx.Done():
			return protocol.ErrCancelled
		case <-time.After(subscribeBackoff(ps.attempt)):
		}
		metrics.SubscriptionResubscribesTotal.Inc()
		ps.attempt++

		var err = ps.resubscribe()
		if err == nil {
			ps.attempt = 0
			return nil
		}
		if ps.ctx.Err() != nil {
			return protocol.ErrCancelled
		}
		switch {
		case errors.Is(err, protocol.ErrAccessDenied),
			errors.Is(err, protocol.ErrUnauthenticated),
			errors.Is(err, protocol.ErrResourceNotFound),
			errors.Is(err, protocol.ErrClientClosed):
			return err
		}

		log.WithFields(log.Fields{
			"stream":  ps.stream,
			"group":   ps.group,
			"attempt": ps.attempt,
			"err":     err,
		}).Warn("persistent re-subscription failed (will retry)")
	}
}

// resubscribe reopens the bidi stream and sends the consumer options frame.
// The group's position is server-managed, so no cursor accompanies it.
func (ps *PersistentSubscription) resubscribe() error {
	var ch, err = ps.client.channel(ps.ctx)
	if err != nil {
		return err
	}

	callCtx, _ := ps.client.callContext(ps.ctx, ps.opts, true)
	inner, err := persistentapi.NewPersistentSubscriptionsClient(ch.conn).Read(callCtx)
	if err == nil {
		var options = &persistentapi.ReadReq_Options{
			GroupName:  ps.group,
			BufferSize: ps.bufferSize,
		}
		if ps.stream == "" {
			options.All = &shared.Empty{}
		} else {
			options.StreamIdentifier = streamIdentifier(ps.stream)
		}
		err = inner.Send(&persistentapi.ReadReq{Options: options})
	}
	if err != nil {
		ps.client.maybeInvalidate(ch, err)
		return mapRPCError(ps.ctx, err, nil)
	}

	ps.sendMu.Lock()
	ps.ch, ps.inner = ch, inner
	ps.sendMu.Unlock()
	return nil
}

// requireSupport gates an optional operation on the probed capability set.
func (c *Client) requireSupport(ctx context.Context, service, method string) error {
	var server, err = c.serverInfo(ctx)
	if err != nil {
		return err
	} else if !server.Supports(service, method) {
		return protocol.ErrUnsupportedFeature
	}
	return nil
}

func resolvePersistentSettings(s *protocol.PersistentSubscriptionSettings) (protocol.PersistentSubscriptionSettings, error) {
	var settings = protocol.DefaultPersistentSettings()
	if s != nil {
		settings = *s
	}
	if err := settings.Validate(); err != nil {
		return settings, protocol.ExtendContext(err, "Settings")
	}
	return settings, nil
}

func eventIDs(events []protocol.ResolvedEvent) []*shared.UUID {
	var ids = make([]*shared.UUID, 0, len(events))
	for _, e := range events {
		if original := e.OriginalEvent(); original != nil {
			ids = append(ids, &shared.UUID{String_: original.ID.String()})
		}
	}
	return ids
}

func persistentFilterToWire(f protocol.SubscriptionFilter) *persistentapi.AllOptions_FilterOptions {
	var expr = &persistentapi.AllOptions_FilterOptions_Expression{
		Regex:  f.Regex,
		Prefix: f.Prefixes,
	}
	var out = &persistentapi.AllOptions_FilterOptions{}
	if f.OnStreamName {
		out.StreamIdentifier = expr
	} else {
		out.EventType = expr
	}
	if f.MaxSearchWindow != 0 {
		out.Max = f.MaxSearchWindow
	} else {
		out.Count = &shared.Empty{}
	}
	out.CheckpointIntervalMultiplier = f.CheckpointInterval
	if out.CheckpointIntervalMultiplier == 0 {
		out.CheckpointIntervalMultiplier = 1
	}
	return out
}
