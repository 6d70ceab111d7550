package kurrent

import (
	"context"
	"encoding/json"
	"io"
	"math"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"go.kurrent.dev/client/api/shared"
	streamsapi "go.kurrent.dev/client/api/streams"
	"go.kurrent.dev/client/metrics"
	"go.kurrent.dev/client/protocol"
)

// AppendToStream appends |events| to |stream| as a single transaction,
// asserting the expected revision. When the expectation fails, the failure
// is an error with the default throwOnAppendFailure=true, and otherwise is
// reported as data on the returned AppendResult.
//
// Appends with an exact or no-stream expectation are re-playable and may
// fail over to another node; Any and StreamExists appends never retry on
// transport failure.
func (c *Client) AppendToStream(ctx context.Context, stream string,
	opts AppendOptions, events ...protocol.EventData) (*AppendResult, error) {

	if stream == "" {
		return nil, protocol.NewValidationError("expected stream")
	}
	for i, e := range events {
		if e.ContentType == "" {
			events[i].ContentType = "application/json"
		}
		if err := events[i].Validate(); err != nil {
			return nil, protocol.ExtendContext(err, "events[%d]", i)
		}
	}

	var result *AppendResult

	var err = c.invoke(ctx, opts.callOptions(), opts.ExpectedRevision.IsIdempotent(),
		func(ctx context.Context, conn *grpc.ClientConn) (metadata.MD, error) {
			var appender, err = streamsapi.NewStreamsClient(conn).Append(ctx)
			if err != nil {
				return nil, err
			}

			var options = &streamsapi.AppendReq_Options{
				StreamIdentifier: streamIdentifier(stream),
			}
			setAppendExpectation(options, opts.ExpectedRevision)

			if err = appender.Send(&streamsapi.AppendReq{Options: options}); err == nil {
				for _, e := range events {
					if err = appender.Send(&streamsapi.AppendReq{
						ProposedMessage: proposedFromEventData(e),
					}); err != nil {
						break
					}
				}
			}
			// A failed Send means the RPC is already broken; read the causal
			// error from CloseAndRecv rather than the io.EOF Send returned.
			resp, err := appender.CloseAndRecv()
			if err != nil {
				return appender.Trailer(), err
			}

			result, err = appendResultFromWire(c.Settings, stream, opts.ExpectedRevision, resp)
			return appender.Trailer(), err
		})

	if err != nil {
		return nil, err
	}

	metrics.AppendedEventsTotal.Add(float64(len(events)))
	for _, e := range events {
		metrics.AppendedBytesTotal.Add(float64(len(e.Data)))
	}
	return result, nil
}

func appendResultFromWire(settings protocol.ClientSettings, stream string,
	expected protocol.ExpectedRevision, resp *streamsapi.AppendResp) (*AppendResult, error) {

	if resp.Success != nil {
		var result = &AppendResult{Succeeded: true}
		if resp.Success.CurrentRevision != nil {
			result.NextExpectedRevision = protocol.StreamAtRevision(*resp.Success.CurrentRevision)
		}
		if resp.Success.Position != nil {
			result.Position = protocol.Position{
				Commit:  resp.Success.Position.CommitPosition,
				Prepare: resp.Success.Position.PreparePosition,
			}
		}
		return result, nil
	}

	if wev := resp.WrongExpectedVersion; wev != nil {
		var current = protocol.StreamAbsent()
		if wev.CurrentRevision != nil {
			current = protocol.StreamAtRevision(*wev.CurrentRevision)
		}
		var wevErr = &protocol.WrongExpectedVersionError{
			Stream:   stream,
			Expected: expected,
			Current:  current,
		}
		if settings.ThrowOnAppendFailure {
			return nil, wevErr
		}
		return &AppendResult{Succeeded: false, WrongExpectedVersion: wevErr}, nil
	}
	return nil, &protocol.InternalClientError{Detail: "append response has no outcome"}
}

func setAppendExpectation(options *streamsapi.AppendReq_Options, r protocol.ExpectedRevision) {
	if rev, ok := r.Revision(); ok {
		options.Revision = &rev
	} else if r.IsNoStream() {
		options.NoStream = &shared.Empty{}
	} else if r.IsStreamExists() {
		options.StreamExists = &shared.Empty{}
	} else {
		options.Any = &shared.Empty{}
	}
}

// DeleteStream soft-deletes |stream|: its events are scavengeable, and the
// stream may later be re-created.
func (c *Client) DeleteStream(ctx context.Context, stream string, opts DeleteOptions) (*DeleteResult, error) {
	var req = &streamsapi.DeleteReq{
		Options: &streamsapi.DeleteReq_Options{
			StreamIdentifier: streamIdentifier(stream),
		},
	}
	if rev, ok := opts.ExpectedRevision.Revision(); ok {
		req.Options.Revision = &rev
	} else if opts.ExpectedRevision.IsNoStream() {
		req.Options.NoStream = &shared.Empty{}
	} else if opts.ExpectedRevision.IsStreamExists() {
		req.Options.StreamExists = &shared.Empty{}
	} else {
		req.Options.Any = &shared.Empty{}
	}

	var result = new(DeleteResult)
	var err = c.unary(ctx, opts.callOptions(), opts.ExpectedRevision.IsIdempotent(),
		func(ctx context.Context, conn *grpc.ClientConn, callOpts ...grpc.CallOption) error {
			var resp, err = streamsapi.NewStreamsClient(conn).Delete(ctx, req, callOpts...)
			if err != nil {
				return err
			}
			if resp.Position != nil {
				result.Position = protocol.Position{
					Commit:  resp.Position.CommitPosition,
					Prepare: resp.Position.PreparePosition,
				}
			}
			return nil
		})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// TombstoneStream hard-deletes |stream|: it may never be appended to again.
func (c *Client) TombstoneStream(ctx context.Context, stream string, opts DeleteOptions) (*DeleteResult, error) {
	var req = &streamsapi.TombstoneReq{
		Options: &streamsapi.TombstoneReq_Options{
			StreamIdentifier: streamIdentifier(stream),
		},
	}
	if rev, ok := opts.ExpectedRevision.Revision(); ok {
		req.Options.Revision = &rev
	} else if opts.ExpectedRevision.IsNoStream() {
		req.Options.NoStream = &shared.Empty{}
	} else if opts.ExpectedRevision.IsStreamExists() {
		req.Options.StreamExists = &shared.Empty{}
	} else {
		req.Options.Any = &shared.Empty{}
	}

	var result = new(DeleteResult)
	var err = c.unary(ctx, opts.callOptions(), opts.ExpectedRevision.IsIdempotent(),
		func(ctx context.Context, conn *grpc.ClientConn, callOpts ...grpc.CallOption) error {
			var resp, err = streamsapi.NewStreamsClient(conn).Tombstone(ctx, req, callOpts...)
			if err != nil {
				return err
			}
			if resp.Position != nil {
				result.Position = protocol.Position{
					Commit:  resp.Position.CommitPosition,
					Prepare: resp.Position.PreparePosition,
				}
			}
			return nil
		})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ReadStream opens a ranged read of |stream|. The returned ReadStream is
// lazy: events decode as Recv is called, and the read never inherits a
// default deadline.
func (c *Client) ReadStream(ctx context.Context, stream string, opts ReadStreamOptions) (*ReadStream, error) {
	if stream == "" {
		return nil, protocol.NewValidationError("expected stream")
	}

	var streamOptions = &streamsapi.ReadReq_Options_StreamOptions{
		StreamIdentifier: streamIdentifier(stream),
	}
	if rev, ok := opts.From.RevisionValue(); ok {
		streamOptions.Revision = &rev
	} else if opts.From.IsEnd() {
		streamOptions.End = &shared.Empty{}
	} else {
		streamOptions.Start = &shared.Empty{}
	}

	var count = opts.MaxCount
	if count == 0 {
		count = math.MaxUint64
	}
	return c.openRead(ctx, opts.callOptions(), &streamsapi.ReadReq{
		Options: &streamsapi.ReadReq_Options{
			Stream:        streamOptions,
			ReadDirection: readDirection(opts.Direction),
			ResolveLinks:  opts.ResolveLinkTos,
			Count:         count,
			NoFilter:      &shared.Empty{},
		},
	})
}

// ReadAll opens a ranged read of the global $all stream in commit-position
// order, optionally filtered.
func (c *Client) ReadAll(ctx context.Context, opts ReadAllOptions) (*ReadStream, error) {
	var allOptions = &streamsapi.ReadReq_Options_AllOptions{}
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

	var options = &streamsapi.ReadReq_Options{
		All:           allOptions,
		ReadDirection: readDirection(opts.Direction),
		ResolveLinks:  opts.ResolveLinkTos,
	}
	if opts.Filter != nil {
		if err := opts.Filter.Validate(); err != nil {
			return nil, protocol.ExtendContext(err, "Filter")
		}
		options.Filter = filterOptionsToWire(*opts.Filter)
	} else {
		options.NoFilter = &shared.Empty{}
	}

	options.Count = opts.MaxCount
	if options.Count == 0 {
		options.Count = math.MaxUint64
	}
	return c.openRead(ctx, opts.callOptions(), &streamsapi.ReadReq{Options: options})
}

// GetStreamMetadata reads the current metadata record of |stream|, or a
// zero-valued record if none has been set.
func (c *Client) GetStreamMetadata(ctx context.Context, stream string, opts OperationOptions) (*protocol.StreamMetadata, error) {
	var rs, err = c.ReadStream(ctx, protocol.MetastreamOf(stream), ReadStreamOptions{
		OperationOptions: opts,
		Direction:        protocol.Direction_Backwards,
		From:             protocol.End(),
		MaxCount:         1,
	})
	if err != nil {
		return nil, err
	}
	defer rs.Close()

	event, err := rs.Recv()
	if err == io.EOF || errors.Is(err, protocol.ErrResourceNotFound) {
		return &protocol.StreamMetadata{}, nil
	} else if err != nil {
		return nil, err
	}

	var meta protocol.StreamMetadata
	if err = json.Unmarshal(event.OriginalEvent().Data, &meta); err != nil {
		return nil, errors.WithMessage(err, "decoding stream metadata")
	}
	return &meta, nil
}

// SetStreamMetadata writes a metadata record for |stream|, asserting the
// expected revision of its metastream.
func (c *Client) SetStreamMetadata(ctx context.Context, stream string,
	opts AppendOptions, meta protocol.StreamMetadata) (*AppendResult, error) {

	var data, err = json.Marshal(meta)
	if err != nil {
		return nil, errors.WithMessage(err, "encoding stream metadata")
	}
	return c.AppendToStream(ctx, protocol.MetastreamOf(stream), opts, protocol.EventData{
		ID:          uuid.New(),
		Type:        protocol.MetadataEventType,
		ContentType: "application/json",
		Data:        data,
	})
}

// BatchAppend appends |events| to |stream| as a batched, client-streaming
// transaction. It requires the server's batch-append capability, and
// returns ErrUnsupportedFeature — without issuing the RPC — when the
// connected server doesn't advertise it.
func (c *Client) BatchAppend(ctx context.Context, stream string,
	opts BatchAppendOptions, events ...protocol.EventData) (*AppendResult, error) {

	var server, err = c.serverInfo(ctx)
	if err != nil {
		return nil, err
	} else if !server.Supports(StreamsService, MethodBatchAppend) {
		return nil, protocol.ErrUnsupportedFeature
	}

	for i, e := range events {
		if e.ContentType == "" {
			events[i].ContentType = "application/json"
		}
		if err := events[i].Validate(); err != nil {
			return nil, protocol.ExtendContext(err, "events[%d]", i)
		}
	}
	var chunkSize = opts.ChunkSize
	if chunkSize <= 0 {
		chunkSize = 32
	}

	var result *AppendResult

	err = c.invoke(ctx, opts.callOptions(), opts.ExpectedRevision.IsIdempotent(),
		func(ctx context.Context, conn *grpc.ClientConn) (metadata.MD, error) {
			var appender, err = streamsapi.NewStreamsClient(conn).BatchAppend(ctx)
			if err != nil {
				return nil, err
			}
			var correlation = &shared.UUID{String_: uuid.NewString()}

			var options = &streamsapi.BatchAppendReq_Options{
				StreamIdentifier: streamIdentifier(stream),
			}
			if rev, ok := opts.ExpectedRevision.Revision(); ok {
				options.StreamPosition = &rev
			} else if opts.ExpectedRevision.IsNoStream() {
				options.NoStream = &shared.Empty{}
			} else if opts.ExpectedRevision.IsStreamExists() {
				options.StreamExists = &shared.Empty{}
			} else {
				options.Any = &shared.Empty{}
			}

			for first, sent := true, 0; first || sent < len(events); first = false {
				var end = sent + chunkSize
				if end > len(events) {
					end = len(events)
				}
				var frame = &streamsapi.BatchAppendReq{
					CorrelationId: correlation,
					IsFinal:       end == len(events),
				}
				if first {
					frame.Options = options
				}
				for _, e := range events[sent:end] {
					frame.ProposedMessages = append(frame.ProposedMessages, batchProposedFromEventData(e))
				}
				sent = end

				if err = appender.Send(frame); err != nil {
					break
				}
			}
			_ = appender.CloseSend()

			resp, err := appender.Recv()
			if err != nil {
				return appender.Trailer(), err
			}

			if resp.Error != nil {
				return appender.Trailer(), &protocol.GrpcError{
					Code:    uint32(resp.Error.Code),
					Message: resp.Error.Message,
				}
			}
			result = &AppendResult{Succeeded: true}
			if resp.Success != nil {
				if resp.Success.CurrentRevision != nil {
					result.NextExpectedRevision = protocol.StreamAtRevision(*resp.Success.CurrentRevision)
				}
				if resp.Success.Position != nil {
					result.Position = protocol.Position{
						Commit:  resp.Success.Position.CommitPosition,
						Prepare: resp.Success.Position.PreparePosition,
					}
				}
			}
			return appender.Trailer(), nil
		})

	if err != nil {
		return nil, err
	}
	metrics.AppendedEventsTotal.Add(float64(len(events)))
	return result, nil
}

func readDirection(d protocol.Direction) streamsapi.ReadReq_Options_ReadDirection {
	if d == protocol.Direction_Backwards {
		return streamsapi.ReadReq_Options_Backwards
	}
	return streamsapi.ReadReq_Options_Forwards
}
