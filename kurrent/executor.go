package kurrent

import (
	"context"
	"strconv"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"go.kurrent.dev/client/protocol"
)

// callOptions carry the per-call dispatch overrides: credentials (operation
// override over settings) and an optional deadline override. Whether the
// call must reach the leader follows from the settings' NodePreference.
type callOptions struct {
	credentials *protocol.Credentials
	deadline    *time.Duration
}

// callContext derives the outgoing Context of a call: authorization and
// requires-leader headers, the connection name, and — for non-streaming
// calls only — the operation or settings deadline. Streaming reads and
// subscriptions never inherit a default deadline.
func (c *Client) callContext(ctx context.Context, opts callOptions, streaming bool) (context.Context, context.CancelFunc) {
	var pairs = []string{
		"requires-leader", strconv.FormatBool(
			c.Settings.NodePreference == protocol.NodePreference_Leader),
		"connection-name", c.Settings.ConnectionName,
	}
	var creds = opts.credentials
	if creds == nil {
		creds = c.Settings.DefaultCredentials
	}
	if creds != nil {
		pairs = append(pairs, "authorization", creds.AuthorizationHeader())
	}
	ctx = metadata.AppendToOutgoingContext(ctx, pairs...)

	if !streaming {
		var deadline = c.Settings.DefaultDeadline
		if opts.deadline != nil {
			deadline = *opts.deadline
		}
		if deadline > 0 {
			return context.WithTimeout(ctx, deadline)
		}
	}
	return ctx, func() {}
}

// invoke dispatches a unary or batch call: it acquires a channel, derives
// the call Context, and invokes |fn| against the channel's transport. |fn|
// returns the call's trailers alongside its error, for mapping of the
// server's structured error detail. A first response of not-leader (always
// safe: the server rejected without executing) or transport unavailability
// (safe only for calls marked idempotent) triggers one re-discovery —
// honoring a provided leader hint — and a single retry. Unavailability and
// timeouts of leader-required calls drop the channel either way, so the
// next operation re-discovers. All other errors surface after one attempt.
func (c *Client) invoke(ctx context.Context, opts callOptions, idempotent bool,
	fn func(ctx context.Context, conn *grpc.ClientConn) (metadata.MD, error)) error {

	for attempt := 0; ; attempt++ {
		var ch, err = c.channel(ctx)
		if err != nil {
			return err
		}

		callCtx, cancel := c.callContext(ctx, opts, false)
		trailer, err := fn(callCtx, ch.conn)
		cancel()

		if err == nil {
			return nil
		}
		var mapped = mapRPCError(ctx, err, trailer)

		if nle, ok := mapped.(*protocol.NotLeaderError); ok && attempt == 0 {
			var hint *protocol.Endpoint
			if !nle.Leader.IsZero() {
				hint = &nle.Leader
			}
			c.invalidate(ch, hint)
			continue
		}

		switch status.Code(err) {
		case codes.Unavailable:
			// The node's transport is broken: drop the channel so the next
			// operation re-discovers. Only idempotent calls retry.
			c.invalidate(ch, nil)
			if idempotent && attempt == 0 {
				continue
			}
		case codes.DeadlineExceeded:
			// A leader-required call which times out also forces
			// re-discovery; the deadline error itself surfaces.
			if c.Settings.NodePreference == protocol.NodePreference_Leader {
				c.invalidate(ch, nil)
			}
		}
		return mapped
	}
}

// maybeInvalidate drops |ch| as the current channel when |err| is one of the
// re-discovery triggers: transport unavailability, or a timeout while the
// node preference requires the leader. It is the streaming counterpart of
// invoke's post-call handling.
func (c *Client) maybeInvalidate(ch *channel, err error) {
	switch status.Code(err) {
	case codes.Unavailable:
		c.invalidate(ch, nil)
	case codes.DeadlineExceeded:
		if c.Settings.NodePreference == protocol.NodePreference_Leader {
			c.invalidate(ch, nil)
		}
	}
}

// unary adapts invoke for plain unary stubs, capturing trailers with a
// grpc.Trailer CallOption.
func (c *Client) unary(ctx context.Context, opts callOptions, idempotent bool,
	fn func(ctx context.Context, conn *grpc.ClientConn, opts ...grpc.CallOption) error) error {

	return c.invoke(ctx, opts, idempotent,
		func(ctx context.Context, conn *grpc.ClientConn) (metadata.MD, error) {
			var trailer metadata.MD
			var err = fn(ctx, conn, grpc.Trailer(&trailer))
			return trailer, err
		})
}

// mapRPCError maps a gRPC error and its trailers into the client error
// taxonomy. Trailers carry the server's structured "exception" detail;
// otherwise the status code decides.
func mapRPCError(ctx context.Context, err error, trailer metadata.MD) error {
	if err == nil {
		return nil
	}

	// Unwrap gRPC statuses rooted in a local Context error.
	if ctx.Err() == context.Canceled && status.Code(err) == codes.Canceled {
		return protocol.ErrCancelled
	}

	if exception := first(trailer, "exception"); exception != "" {
		if mapped := mapExceptionTrailer(exception, trailer); mapped != nil {
			return mapped
		}
	}

	var s, ok = status.FromError(err)
	if !ok {
		return err
	}
	switch s.Code() {
	case codes.Unauthenticated:
		return protocol.ErrUnauthenticated
	case codes.PermissionDenied:
		return protocol.ErrAccessDenied
	case codes.NotFound:
		return protocol.ErrResourceNotFound
	case codes.AlreadyExists:
		return protocol.ErrResourceAlreadyExists
	case codes.Unimplemented:
		return protocol.ErrUnsupportedFeature
	case codes.DeadlineExceeded:
		return protocol.ErrDeadlineExceeded
	case codes.Canceled:
		return protocol.ErrCancelled
	case codes.Unavailable:
		return &protocol.ConnectionError{Reason: "node unavailable", Err: err}
	default:
		return &protocol.GrpcError{Code: uint32(s.Code()), Message: s.Message()}
	}
}

// mapExceptionTrailer maps the server's "exception" trailer into the
// taxonomy, or returns nil for exception kinds decided by status code.
func mapExceptionTrailer(exception string, trailer metadata.MD) error {
	switch exception {
	case "not-leader":
		var ep protocol.Endpoint
		ep.Host = first(trailer, "leader-endpoint-host")
		if port, err := strconv.ParseUint(first(trailer, "leader-endpoint-port"), 10, 16); err == nil {
			ep.Port = uint16(port)
		}
		if ep.Validate() != nil {
			ep = protocol.Endpoint{}
		}
		return &protocol.NotLeaderError{Leader: ep}

	case "wrong-expected-version":
		var current = protocol.StreamAbsent()
		if v, err := strconv.ParseInt(first(trailer, "actual-version"), 10, 64); err == nil && v >= 0 {
			current = protocol.StreamAtRevision(uint64(v))
		}
		var expected = protocol.Any()
		if v, err := strconv.ParseInt(first(trailer, "expected-version"), 10, 64); err == nil && v >= 0 {
			expected = protocol.Exact(uint64(v))
		}
		return &protocol.WrongExpectedVersionError{
			Stream:   first(trailer, "stream-name"),
			Expected: expected,
			Current:  current,
		}

	case "stream-deleted":
		return &protocol.StreamDeletedError{Stream: first(trailer, "stream-name")}
	case "access-denied":
		return protocol.ErrAccessDenied
	case "not-authenticated":
		return protocol.ErrUnauthenticated
	case "user-not-found", "stream-not-found", "persistent-subscription-does-not-exist", "scavenge-not-found":
		return protocol.ErrResourceNotFound
	case "persistent-subscription-exists":
		return protocol.ErrResourceAlreadyExists

	case "maximum-append-size-exceeded":
		var limit uint64
		limit, _ = strconv.ParseUint(first(trailer, "maximum-append-size"), 10, 32)
		return &protocol.MaximumAppendSizeExceededError{Limit: uint32(limit)}

	case "maximum-subscribers-reached":
		return &protocol.GrpcError{Code: uint32(codes.FailedPrecondition),
			Message: "maximum subscribers reached"}
	case "persistent-subscription-failed":
		return &protocol.GrpcError{Code: uint32(codes.FailedPrecondition),
			Message: "persistent subscription failed"}
	case "persistent-subscription-dropped":
		return &protocol.GrpcError{Code: uint32(codes.Aborted),
			Message: "persistent subscription dropped"}
	case "missing-required-metadata-property":
		return &protocol.GrpcError{Code: uint32(codes.InvalidArgument),
			Message: "missing required metadata property"}
	default:
		return nil
	}
}

func first(md metadata.MD, key string) string {
	if vs := md.Get(key); len(vs) != 0 {
		return vs[0]
	}
	return ""
}
