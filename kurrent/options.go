package kurrent

import (
	"time"

	"go.kurrent.dev/client/protocol"
)

// OperationOptions are the dispatch overrides common to all operations:
// per-operation credentials take precedence over the settings default, and a
// per-operation deadline takes precedence over the settings default deadline.
type OperationOptions struct {
	// Credentials override the settings default for this operation.
	Credentials *protocol.Credentials
	// Deadline overrides the settings default deadline. It applies to unary
	// and batch operations only, never to open-ended streams.
	Deadline *time.Duration
}

func (o OperationOptions) callOptions() callOptions {
	return callOptions{credentials: o.Credentials, deadline: o.Deadline}
}

// AppendOptions parameterize AppendToStream.
type AppendOptions struct {
	OperationOptions
	// ExpectedRevision asserts the stream state required for the append.
	// The zero value is Any.
	ExpectedRevision protocol.ExpectedRevision
}

// AppendResult is the outcome of an append.
type AppendResult struct {
	// Succeeded is false iff the append failed with a wrong expected version
	// and the client is configured to report that as data rather than error.
	Succeeded bool
	// NextExpectedRevision is the stream's revision after the append.
	NextExpectedRevision protocol.StreamState
	// Position is the append's commit position, where the server reports one.
	Position protocol.Position
	// WrongExpectedVersion details the failure when Succeeded is false.
	WrongExpectedVersion *protocol.WrongExpectedVersionError
}

// DeleteOptions parameterize DeleteStream and TombstoneStream.
type DeleteOptions struct {
	OperationOptions
	// ExpectedRevision asserts the stream state required for the deletion.
	// The zero value is Any.
	ExpectedRevision protocol.ExpectedRevision
}

// DeleteResult is the outcome of a delete or tombstone.
type DeleteResult struct {
	// Position is the deletion's commit position, where the server reports one.
	Position protocol.Position
}

// ReadStreamOptions parameterize ReadStream.
type ReadStreamOptions struct {
	OperationOptions
	// Direction of the read. Default forwards.
	Direction protocol.Direction
	// From is the position to read from. Default the stream start.
	From protocol.StreamPosition
	// MaxCount bounds the number of returned events. Zero reads to the end.
	MaxCount uint64
	// ResolveLinkTos resolves link events to their targets.
	ResolveLinkTos bool
}

// ReadAllOptions parameterize ReadAll.
type ReadAllOptions struct {
	OperationOptions
	// Direction of the read. Default forwards.
	Direction protocol.Direction
	// From is the $all position to read from. Default the stream start;
	// use protocol.EndPosition to read backwards from the end.
	From protocol.Position
	// MaxCount bounds the number of returned events. Zero reads to the end.
	MaxCount uint64
	// ResolveLinkTos resolves link events to their targets.
	ResolveLinkTos bool
	// Filter constrains returned events. Optional.
	Filter *protocol.SubscriptionFilter
}

// SubscribeToStreamOptions parameterize SubscribeToStream.
type SubscribeToStreamOptions struct {
	OperationOptions
	// From is the exclusive position to subscribe after. protocol.Start()
	// replays the stream from its beginning; protocol.End() is live-only.
	From protocol.StreamPosition
	// ResolveLinkTos resolves link events to their targets.
	ResolveLinkTos bool
}

// SubscribeToAllOptions parameterize SubscribeToAll.
type SubscribeToAllOptions struct {
	OperationOptions
	// From is the exclusive $all position to subscribe after.
	// protocol.StartPosition replays from the beginning;
	// protocol.EndPosition is live-only.
	From protocol.Position
	// ResolveLinkTos resolves link events to their targets.
	ResolveLinkTos bool
	// Filter constrains delivered events. Optional.
	Filter *protocol.SubscriptionFilter
}

// BatchAppendOptions parameterize BatchAppend.
type BatchAppendOptions struct {
	OperationOptions
	// ExpectedRevision asserts the stream state required for the append.
	// The zero value is Any.
	ExpectedRevision protocol.ExpectedRevision
	// ChunkSize bounds proposed messages per frame. Zero uses a default.
	ChunkSize int
}

// PersistentSubscriptionOptions parameterize persistent subscription CRUD.
type PersistentSubscriptionOptions struct {
	OperationOptions
	// From is the exclusive position from which a created group starts.
	// Defaults to the stream start.
	From protocol.StreamPosition
	// Settings of the group. Nil uses server defaults.
	Settings *protocol.PersistentSubscriptionSettings
}

// PersistentSubscriptionToAllOptions parameterize persistent-to-$all CRUD.
type PersistentSubscriptionToAllOptions struct {
	OperationOptions
	// From is the exclusive $all position from which a created group starts.
	From protocol.Position
	// Settings of the group. Nil uses server defaults.
	Settings *protocol.PersistentSubscriptionSettings
	// Filter constrains delivered events. Optional.
	Filter *protocol.SubscriptionFilter
}

// ConnectToPersistentSubscriptionOptions parameterize the consumer stream.
type ConnectToPersistentSubscriptionOptions struct {
	OperationOptions
	// BufferSize is the server-side in-flight event window. Zero uses 10.
	BufferSize int32
}

// ReplayParkedOptions parameterize ReplayParkedMessages.
type ReplayParkedOptions struct {
	OperationOptions
	// StopAt bounds how many parked messages replay. Zero replays all.
	StopAt int64
}
