package kurrent

import (
	"context"
	"io"

	"google.golang.org/grpc"

	monitoringapi "go.kurrent.dev/client/api/monitoring"
	operationsapi "go.kurrent.dev/client/api/operations"
	"go.kurrent.dev/client/api/shared"
	"go.kurrent.dev/client/protocol"
)

// Shutdown asks the connected node to shut down.
func (c *Client) Shutdown(ctx context.Context, opts OperationOptions) error {
	return c.unary(ctx, opts.callOptions(), false,
		func(ctx context.Context, conn *grpc.ClientConn, callOpts ...grpc.CallOption) error {
			var _, err = operationsapi.NewOperationsClient(conn).Shutdown(ctx, &shared.Empty{}, callOpts...)
			return err
		})
}

// MergeIndexes asks the connected node to merge its index files.
func (c *Client) MergeIndexes(ctx context.Context, opts OperationOptions) error {
	return c.unary(ctx, opts.callOptions(), false,
		func(ctx context.Context, conn *grpc.ClientConn, callOpts ...grpc.CallOption) error {
			var _, err = operationsapi.NewOperationsClient(conn).MergeIndexes(ctx, &shared.Empty{}, callOpts...)
			return err
		})
}

// ResignNode asks the connected leader to resign its leadership.
func (c *Client) ResignNode(ctx context.Context, opts OperationOptions) error {
	return c.unary(ctx, opts.callOptions(), false,
		func(ctx context.Context, conn *grpc.ClientConn, callOpts ...grpc.CallOption) error {
			var _, err = operationsapi.NewOperationsClient(conn).ResignNode(ctx, &shared.Empty{}, callOpts...)
			return err
		})
}

// SetNodePriority sets the connected node's election priority.
func (c *Client) SetNodePriority(ctx context.Context, priority int32, opts OperationOptions) error {
	return c.unary(ctx, opts.callOptions(), false,
		func(ctx context.Context, conn *grpc.ClientConn, callOpts ...grpc.CallOption) error {
			var _, err = operationsapi.NewOperationsClient(conn).SetNodePriority(ctx,
				&operationsapi.SetNodePriorityReq{Priority: priority}, callOpts...)
			return err
		})
}

// RestartPersistentSubscriptionSubsystem restarts the server's persistent
// subscription subsystem.
func (c *Client) RestartPersistentSubscriptionSubsystem(ctx context.Context, opts OperationOptions) error {
	return c.unary(ctx, opts.callOptions(), false,
		func(ctx context.Context, conn *grpc.ClientConn, callOpts ...grpc.CallOption) error {
			var _, err = operationsapi.NewOperationsClient(conn).
				RestartPersistentSubscriptions(ctx, &shared.Empty{}, callOpts...)
			return err
		})
}

// StartScavenge begins a scavenge on the connected node.
func (c *Client) StartScavenge(ctx context.Context, threadCount, startFromChunk int32,
	opts OperationOptions) (*protocol.ScavengeResult, error) {

	if threadCount <= 0 {
		return nil, protocol.NewValidationError("invalid threadCount (%d; expected > 0)", threadCount)
	}
	var req = &operationsapi.StartScavengeReq{
		Options: &operationsapi.StartScavengeReq_Options{
			ThreadCount:    threadCount,
			StartFromChunk: startFromChunk,
		},
	}

	var result *protocol.ScavengeResult
	var err = c.unary(ctx, opts.callOptions(), false,
		func(ctx context.Context, conn *grpc.ClientConn, callOpts ...grpc.CallOption) error {
			var resp, err = operationsapi.NewOperationsClient(conn).StartScavenge(ctx, req, callOpts...)
			if err != nil {
				return err
			}
			result = scavengeResultFromWire(resp)
			return nil
		})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// StopScavenge stops the identified in-progress scavenge.
func (c *Client) StopScavenge(ctx context.Context, scavengeID string,
	opts OperationOptions) (*protocol.ScavengeResult, error) {

	var req = &operationsapi.StopScavengeReq{
		Options: &operationsapi.StopScavengeReq_Options{ScavengeId: scavengeID},
	}

	var result *protocol.ScavengeResult
	var err = c.unary(ctx, opts.callOptions(), false,
		func(ctx context.Context, conn *grpc.ClientConn, callOpts ...grpc.CallOption) error {
			var resp, err = operationsapi.NewOperationsClient(conn).StopScavenge(ctx, req, callOpts...)
			if err != nil {
				return err
			}
			result = scavengeResultFromWire(resp)
			return nil
		})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func scavengeResultFromWire(resp *operationsapi.ScavengeResp) *protocol.ScavengeResult {
	var status string
	switch resp.ScavengeResult {
	case operationsapi.ScavengeResp_Started:
		status = "started"
	case operationsapi.ScavengeResp_InProgress:
		status = "in-progress"
	case operationsapi.ScavengeResp_Stopped:
		status = "stopped"
	}
	return &protocol.ScavengeResult{ScavengeID: resp.ScavengeId, Status: status}
}

// ReadStats streams periodic statistic snapshots of the connected node into
// |sink| until the stream ends or |ctx| is cancelled. The stream is
// open-ended and never inherits a default deadline.
func (c *Client) ReadStats(ctx context.Context, refreshInterval uint64,
	sink func(map[string]string) error, opts OperationOptions) error {

	var ch, err = c.channel(ctx)
	if err != nil {
		return err
	}
	callCtx, _ := c.callContext(ctx, opts.callOptions(), true)

	stream, err := monitoringapi.NewMonitoringClient(ch.conn).Stats(callCtx,
		&monitoringapi.StatsReq{
			UseMetadata:           true,
			RefreshTimePeriodInMs: refreshInterval,
		})
	if err != nil {
		return mapRPCError(ctx, err, nil)
	}
	for {
		var resp, err = stream.Recv()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return mapRPCError(ctx, err, stream.Trailer())
		}
		if err = sink(resp.Stats); err != nil {
			return err
		}
	}
}
