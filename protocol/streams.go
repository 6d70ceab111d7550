package protocol

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Position is a logical record position within the global $all stream,
// expressed as commit and prepare transaction-file positions.
type Position struct {
	Commit  uint64
	Prepare uint64
}

// StartPosition is the beginning of the $all stream.
var StartPosition = Position{}

// EndPosition addresses the current end of the $all stream.
var EndPosition = Position{Commit: ^uint64(0), Prepare: ^uint64(0)}

// Compare returns -1, 0 or 1 as p orders before, with, or after other.
func (p Position) Compare(other Position) int {
	if p.Commit < other.Commit {
		return -1
	} else if p.Commit > other.Commit {
		return 1
	} else if p.Prepare < other.Prepare {
		return -1
	} else if p.Prepare > other.Prepare {
		return 1
	}
	return 0
}

func (p Position) String() string {
	return fmt.Sprintf("C:%d/P:%d", p.Commit, p.Prepare)
}

// Direction of a stream read.
type Direction int32

const (
	Direction_Forwards Direction = iota
	Direction_Backwards
)

func (d Direction) String() string {
	if d == Direction_Backwards {
		return "backwards"
	}
	return "forwards"
}

type revisionKind int32

const (
	revisionAny revisionKind = iota
	revisionNoStream
	revisionStreamExists
	revisionExact
)

// ExpectedRevision is the caller-asserted state of a stream required for an
// append, delete, or tombstone to succeed.
type ExpectedRevision struct {
	kind     revisionKind
	revision uint64
}

// Any matches a stream in any state.
func Any() ExpectedRevision { return ExpectedRevision{kind: revisionAny} }

// NoStream requires that the stream not yet exist.
func NoStream() ExpectedRevision { return ExpectedRevision{kind: revisionNoStream} }

// StreamExists requires that the stream exist.
func StreamExists() ExpectedRevision { return ExpectedRevision{kind: revisionStreamExists} }

// Exact requires that the last event of the stream be |revision|.
func Exact(revision uint64) ExpectedRevision {
	return ExpectedRevision{kind: revisionExact, revision: revision}
}

// IsAny returns whether the revision matches any stream state.
func (r ExpectedRevision) IsAny() bool { return r.kind == revisionAny }

// IsNoStream returns whether the revision requires stream absence.
func (r ExpectedRevision) IsNoStream() bool { return r.kind == revisionNoStream }

// IsStreamExists returns whether the revision requires stream existence.
func (r ExpectedRevision) IsStreamExists() bool { return r.kind == revisionStreamExists }

// Revision returns the exact asserted revision, and whether one is asserted.
func (r ExpectedRevision) Revision() (uint64, bool) {
	return r.revision, r.kind == revisionExact
}

// IsIdempotent returns whether a failed append under this expectation may be
// safely retried against another node: exact and no-stream expectations are
// re-playable, while Any and StreamExists appends are not.
func (r ExpectedRevision) IsIdempotent() bool {
	return r.kind == revisionExact || r.kind == revisionNoStream
}

func (r ExpectedRevision) String() string {
	switch r.kind {
	case revisionAny:
		return "any"
	case revisionNoStream:
		return "no-stream"
	case revisionStreamExists:
		return "stream-exists"
	default:
		return fmt.Sprintf("%d", r.revision)
	}
}

// StreamState is the observed state of a stream: absent, or at a revision.
type StreamState struct {
	exists   bool
	revision uint64
}

// StreamAbsent is the state of a stream which doesn't exist.
func StreamAbsent() StreamState { return StreamState{} }

// StreamAtRevision is the state of a stream whose last event is |revision|.
func StreamAtRevision(revision uint64) StreamState {
	return StreamState{exists: true, revision: revision}
}

// Revision returns the stream's current revision, and whether the stream exists.
func (s StreamState) Revision() (uint64, bool) { return s.revision, s.exists }

func (s StreamState) String() string {
	if !s.exists {
		return "no-stream"
	}
	return fmt.Sprintf("%d", s.revision)
}

type streamPositionKind int32

const (
	streamPositionStart streamPositionKind = iota
	streamPositionEnd
	streamPositionRevision
)

// StreamPosition is a cursor within a single stream: its start, its end, or
// a specific revision.
type StreamPosition struct {
	kind     streamPositionKind
	revision uint64
}

// Start is the beginning of a stream.
func Start() StreamPosition { return StreamPosition{kind: streamPositionStart} }

// End is the current end of a stream.
func End() StreamPosition { return StreamPosition{kind: streamPositionEnd} }

// Revision is a specific stream revision.
func Revision(r uint64) StreamPosition {
	return StreamPosition{kind: streamPositionRevision, revision: r}
}

// IsStart returns whether the position is the stream start.
func (p StreamPosition) IsStart() bool { return p.kind == streamPositionStart }

// IsEnd returns whether the position is the stream end.
func (p StreamPosition) IsEnd() bool { return p.kind == streamPositionEnd }

// RevisionValue returns the specific revision, and whether one is set.
func (p StreamPosition) RevisionValue() (uint64, bool) {
	return p.revision, p.kind == streamPositionRevision
}

func (p StreamPosition) String() string {
	switch p.kind {
	case streamPositionStart:
		return "start"
	case streamPositionEnd:
		return "end"
	default:
		return fmt.Sprintf("%d", p.revision)
	}
}

// EventData is a proposed event to be appended.
type EventData struct {
	// ID of the event. If zero, an ID is drawn at append time.
	ID uuid.UUID
	// Type of the event, eg "order-placed".
	Type string
	// ContentType is "application/json" or "application/octet-stream".
	ContentType string
	// Data is the event payload.
	Data []byte
	// Metadata is the caller's opaque event metadata.
	Metadata []byte
}

// Validate returns an error if the EventData is not well-formed.
func (e EventData) Validate() error {
	if e.Type == "" {
		return NewValidationError("expected Type")
	}
	switch e.ContentType {
	case "application/json", "application/octet-stream":
		// Pass.
	default:
		return NewValidationError(
			"invalid ContentType (%s; expected application/json or application/octet-stream)",
			e.ContentType)
	}
	return nil
}

// RecordedEvent is an event which has been durably sequenced into a stream.
type RecordedEvent struct {
	ID             uuid.UUID
	Stream         string
	Type           string
	ContentType    string
	StreamRevision uint64
	Position       Position
	Created        time.Time
	Data           []byte
	Metadata       []byte
}

// ResolvedEvent is a RecordedEvent, optionally paired with the link event
// through which it was resolved.
type ResolvedEvent struct {
	// Event is the resolved recorded event. It may be nil if the link target
	// has been deleted.
	Event *RecordedEvent
	// Link is the link event, if this event was read through one.
	Link *RecordedEvent
	// Commit is the commit position of the event within $all, where known.
	Commit *Position
}

// OriginalEvent returns the link where present, and the event otherwise.
// Its position is the cursor from which a subscription resumes.
func (r ResolvedEvent) OriginalEvent() *RecordedEvent {
	if r.Link != nil {
		return r.Link
	}
	return r.Event
}

// SubscriptionFilter constrains a read or subscription of $all to events
// whose stream name or event type match the given prefixes or regex.
type SubscriptionFilter struct {
	// OnStreamName applies the filter to stream names rather than event types.
	OnStreamName bool
	// Prefixes to match. Mutually exclusive with Regex.
	Prefixes []string
	// Regex to match. Mutually exclusive with Prefixes.
	Regex string
	// MaxSearchWindow bounds how many events are scanned between matches.
	// Zero means the server default.
	MaxSearchWindow uint32
	// CheckpointInterval is the multiple of MaxSearchWindow at which
	// filtered subscriptions emit position checkpoints. Zero means 1.
	CheckpointInterval uint32
}

// Validate returns an error if the SubscriptionFilter is not well-formed.
func (f SubscriptionFilter) Validate() error {
	if len(f.Prefixes) != 0 && f.Regex != "" {
		return NewValidationError("Prefixes and Regex are mutually exclusive")
	} else if len(f.Prefixes) == 0 && f.Regex == "" {
		return NewValidationError("expected Prefixes or Regex")
	}
	return nil
}
