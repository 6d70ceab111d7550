package kurrent

import (
	"bytes"
	"context"
	"encoding/json"
	"io"

	"github.com/gogo/protobuf/jsonpb"
	types "github.com/gogo/protobuf/types"
	"github.com/pkg/errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	projectionsapi "go.kurrent.dev/client/api/projections"
	"go.kurrent.dev/client/api/shared"
	"go.kurrent.dev/client/protocol"
)

// CreateProjection creates a continuous projection named |name| running
// |query|.
func (c *Client) CreateProjection(ctx context.Context, name, query string,
	trackEmittedStreams bool, opts OperationOptions) error {

	var req = &projectionsapi.CreateReq{
		Options: &projectionsapi.CreateReq_Options{
			Continuous: &projectionsapi.CreateReq_Options_Continuous{
				Name:                name,
				TrackEmittedStreams: trackEmittedStreams,
			},
			Query: query,
		},
	}
	return c.unary(ctx, opts.callOptions(), false,
		func(ctx context.Context, conn *grpc.ClientConn, callOpts ...grpc.CallOption) error {
			var _, err = projectionsapi.NewProjectionsClient(conn).Create(ctx, req, callOpts...)
			return err
		})
}

// UpdateProjection replaces the query of projection |name|. A nil
// |emitEnabled| leaves the projection's emit option unchanged.
func (c *Client) UpdateProjection(ctx context.Context, name, query string,
	emitEnabled *bool, opts OperationOptions) error {

	var options = &projectionsapi.UpdateReq_Options{Name: name, Query: query}
	if emitEnabled != nil {
		options.EmitEnabled = emitEnabled
	} else {
		options.NoEmitOptions = &shared.Empty{}
	}
	return c.unary(ctx, opts.callOptions(), false,
		func(ctx context.Context, conn *grpc.ClientConn, callOpts ...grpc.CallOption) error {
			var _, err = projectionsapi.NewProjectionsClient(conn).
				Update(ctx, &projectionsapi.UpdateReq{Options: options}, callOpts...)
			return err
		})
}

// DeleteProjection deletes projection |name| and, optionally, the streams
// it produced.
func (c *Client) DeleteProjection(ctx context.Context, name string,
	deleteEmittedStreams, deleteStateStream, deleteCheckpointStream bool,
	opts OperationOptions) error {

	var req = &projectionsapi.DeleteReq{
		Options: &projectionsapi.DeleteReq_Options{
			Name:                   name,
			DeleteEmittedStreams:   deleteEmittedStreams,
			DeleteStateStream:      deleteStateStream,
			DeleteCheckpointStream: deleteCheckpointStream,
		},
	}
	return c.unary(ctx, opts.callOptions(), false,
		func(ctx context.Context, conn *grpc.ClientConn, callOpts ...grpc.CallOption) error {
			var _, err = projectionsapi.NewProjectionsClient(conn).Delete(ctx, req, callOpts...)
			return err
		})
}

// EnableProjection starts projection |name|.
func (c *Client) EnableProjection(ctx context.Context, name string, opts OperationOptions) error {
	return c.unary(ctx, opts.callOptions(), false,
		func(ctx context.Context, conn *grpc.ClientConn, callOpts ...grpc.CallOption) error {
			var _, err = projectionsapi.NewProjectionsClient(conn).Enable(ctx,
				&projectionsapi.EnableReq{Options: &projectionsapi.EnableReq_Options{Name: name}},
				callOpts...)
			return err
		})
}

// DisableProjection stops projection |name|, writing a final checkpoint.
func (c *Client) DisableProjection(ctx context.Context, name string, opts OperationOptions) error {
	return c.disableProjection(ctx, name, true, opts)
}

// AbortProjection stops projection |name| without writing a checkpoint.
func (c *Client) AbortProjection(ctx context.Context, name string, opts OperationOptions) error {
	return c.disableProjection(ctx, name, false, opts)
}

func (c *Client) disableProjection(ctx context.Context, name string, writeCheckpoint bool, opts OperationOptions) error {
	var req = &projectionsapi.DisableReq{
		Options: &projectionsapi.DisableReq_Options{
			Name:            name,
			WriteCheckpoint: writeCheckpoint,
		},
	}
	return c.unary(ctx, opts.callOptions(), false,
		func(ctx context.Context, conn *grpc.ClientConn, callOpts ...grpc.CallOption) error {
			var _, err = projectionsapi.NewProjectionsClient(conn).Disable(ctx, req, callOpts...)
			return err
		})
}

// ResetProjection rewinds projection |name| to its beginning.
func (c *Client) ResetProjection(ctx context.Context, name string, opts OperationOptions) error {
	var req = &projectionsapi.ResetReq{
		Options: &projectionsapi.ResetReq_Options{Name: name, WriteCheckpoint: true},
	}
	return c.unary(ctx, opts.callOptions(), false,
		func(ctx context.Context, conn *grpc.ClientConn, callOpts ...grpc.CallOption) error {
			var _, err = projectionsapi.NewProjectionsClient(conn).Reset(ctx, req, callOpts...)
			return err
		})
}

// GetProjectionState decodes the current state of projection |name| into
// |into|, which must be a JSON-decodable pointer. |partition| may be empty.
func (c *Client) GetProjectionState(ctx context.Context, name, partition string,
	into interface{}, opts OperationOptions) error {

	var req = &projectionsapi.StateReq{
		Options: &projectionsapi.StateReq_Options{Name: name, Partition: partition},
	}
	return c.unary(ctx, opts.callOptions(), true,
		func(ctx context.Context, conn *grpc.ClientConn, callOpts ...grpc.CallOption) error {
			var resp, err = projectionsapi.NewProjectionsClient(conn).State(ctx, req, callOpts...)
			if err != nil {
				return err
			}
			return decodeProtoValue(resp.State, into)
		})
}

// GetProjectionResult decodes the current result of projection |name| into
// |into|, which must be a JSON-decodable pointer. |partition| may be empty.
func (c *Client) GetProjectionResult(ctx context.Context, name, partition string,
	into interface{}, opts OperationOptions) error {

	var req = &projectionsapi.ResultReq{
		Options: &projectionsapi.ResultReq_Options{Name: name, Partition: partition},
	}
	return c.unary(ctx, opts.callOptions(), true,
		func(ctx context.Context, conn *grpc.ClientConn, callOpts ...grpc.CallOption) error {
			var resp, err = projectionsapi.NewProjectionsClient(conn).Result(ctx, req, callOpts...)
			if err != nil {
				return err
			}
			return decodeProtoValue(resp.Result, into)
		})
}

// GetProjectionStatistics returns the status and progress of projection
// |name|.
func (c *Client) GetProjectionStatistics(ctx context.Context, name string,
	opts OperationOptions) (*protocol.ProjectionDetails, error) {

	var all, err = c.projectionStatistics(ctx, &projectionsapi.StatisticsReq{
		Options: &projectionsapi.StatisticsReq_Options{Name: &name},
	}, opts)
	if err != nil {
		return nil, err
	} else if len(all) == 0 {
		return nil, protocol.ErrResourceNotFound
	}
	return &all[0], nil
}

// ListContinuousProjections returns the status of all continuous projections.
func (c *Client) ListContinuousProjections(ctx context.Context, opts OperationOptions) ([]protocol.ProjectionDetails, error) {
	return c.projectionStatistics(ctx, &projectionsapi.StatisticsReq{
		Options: &projectionsapi.StatisticsReq_Options{Continuous: &shared.Empty{}},
	}, opts)
}

func (c *Client) projectionStatistics(ctx context.Context, req *projectionsapi.StatisticsReq,
	opts OperationOptions) ([]protocol.ProjectionDetails, error) {

	var out []protocol.ProjectionDetails
	var err = c.invoke(ctx, opts.callOptions(), true,
		func(ctx context.Context, conn *grpc.ClientConn) (metadata.MD, error) {
			var stream, err = projectionsapi.NewProjectionsClient(conn).Statistics(ctx, req)
			if err != nil {
				return nil, err
			}
			out = out[:0]
			for {
				var resp, err = stream.Recv()
				if err == io.EOF {
					return stream.Trailer(), nil
				} else if err != nil {
					return stream.Trailer(), err
				} else if resp.Details == nil {
					continue
				}
				out = append(out, protocol.ProjectionDetails{
					Name:                        resp.Details.Name,
					EffectiveName:               resp.Details.EffectiveName,
					Mode:                        resp.Details.Mode,
					Status:                      resp.Details.Status,
					StateReason:                 resp.Details.StateReason,
					CheckpointStatus:            resp.Details.CheckpointStatus,
					Position:                    resp.Details.Position,
					LastCheckpoint:              resp.Details.LastCheckpoint,
					Progress:                    resp.Details.Progress,
					Version:                     resp.Details.Version,
					Epoch:                       resp.Details.Epoch,
					EventsProcessedAfterRestart: resp.Details.EventsProcessedAfterRestart,
					BufferedEvents:              resp.Details.BufferedEvents,
					WritesInProgress:            resp.Details.WritesInProgress,
					ReadsInProgress:             resp.Details.ReadsInProgress,
					PartitionsCached:            resp.Details.PartitionsCached,
				})
			}
		})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RestartProjectionSubsystem restarts the server's projection subsystem.
func (c *Client) RestartProjectionSubsystem(ctx context.Context, opts OperationOptions) error {
	return c.unary(ctx, opts.callOptions(), false,
		func(ctx context.Context, conn *grpc.ClientConn, callOpts ...grpc.CallOption) error {
			var _, err = projectionsapi.NewProjectionsClient(conn).
				RestartSubsystem(ctx, &shared.Empty{}, callOpts...)
			return err
		})
}

// decodeProtoValue re-encodes a proto Value as JSON and decodes it into
// |into|.
func decodeProtoValue(value *types.Value, into interface{}) error {
	if value == nil {
		return nil
	}
	var buf bytes.Buffer
	var m = jsonpb.Marshaler{}
	if err := m.Marshal(&buf, value); err != nil {
		return errors.WithMessage(err, "encoding projection value")
	}
	if err := json.Unmarshal(buf.Bytes(), into); err != nil {
		return errors.WithMessage(err, "decoding projection value")
	}
	return nil
}
