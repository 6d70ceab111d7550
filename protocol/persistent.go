package protocol

import (
	"fmt"
	"time"
)

// ConsumerStrategy names how a persistent subscription distributes events
// among competing consumers.
type ConsumerStrategy string

const (
	ConsumerStrategy_DispatchToSingle ConsumerStrategy = "DispatchToSingle"
	ConsumerStrategy_RoundRobin       ConsumerStrategy = "RoundRobin"
	ConsumerStrategy_Pinned           ConsumerStrategy = "Pinned"
)

// PersistentSubscriptionSettings parameterize a persistent subscription group.
// The zero value is not useful; start from DefaultPersistentSettings.
type PersistentSubscriptionSettings struct {
	ResolveLinkTos     bool
	ExtraStatistics    bool
	MaxRetryCount      int32
	MinCheckpointCount int32
	MaxCheckpointCount int32
	MaxSubscriberCount int32
	LiveBufferSize     int32
	ReadBatchSize      int32
	HistoryBufferSize  int32
	MessageTimeout     time.Duration
	CheckpointAfter    time.Duration
	ConsumerStrategy   ConsumerStrategy
}

// DefaultPersistentSettings mirror the server's defaults for a new group.
func DefaultPersistentSettings() PersistentSubscriptionSettings {
	return PersistentSubscriptionSettings{
		MaxRetryCount:      10,
		MinCheckpointCount: 10,
		MaxCheckpointCount: 1000,
		LiveBufferSize:     500,
		ReadBatchSize:      20,
		HistoryBufferSize:  500,
		MessageTimeout:     30 * time.Second,
		CheckpointAfter:    2 * time.Second,
		ConsumerStrategy:   ConsumerStrategy_RoundRobin,
	}
}

// Validate returns an error if the settings are not well-formed.
func (s PersistentSubscriptionSettings) Validate() error {
	if s.ReadBatchSize <= 0 {
		return NewValidationError("invalid ReadBatchSize (%d; expected > 0)", s.ReadBatchSize)
	} else if s.LiveBufferSize <= 0 {
		return NewValidationError("invalid LiveBufferSize (%d; expected > 0)", s.LiveBufferSize)
	} else if s.HistoryBufferSize <= 0 {
		return NewValidationError("invalid HistoryBufferSize (%d; expected > 0)", s.HistoryBufferSize)
	} else if s.ReadBatchSize >= s.LiveBufferSize {
		return NewValidationError("invalid ReadBatchSize (%d; expected < LiveBufferSize %d)",
			s.ReadBatchSize, s.LiveBufferSize)
	} else if s.MinCheckpointCount > s.MaxCheckpointCount && s.MaxCheckpointCount != 0 {
		return NewValidationError("invalid MinCheckpointCount (%d; expected <= MaxCheckpointCount %d)",
			s.MinCheckpointCount, s.MaxCheckpointCount)
	}
	switch s.ConsumerStrategy {
	case ConsumerStrategy_DispatchToSingle, ConsumerStrategy_RoundRobin, ConsumerStrategy_Pinned:
		// Pass.
	default:
		return NewValidationError("invalid ConsumerStrategy (%s)", s.ConsumerStrategy)
	}
	return nil
}

// NakAction tells the server what to do with a negatively-acknowledged event.
type NakAction int32

const (
	NakAction_Unknown NakAction = iota
	NakAction_Park
	NakAction_Retry
	NakAction_Skip
	NakAction_Stop
)

func (a NakAction) String() string {
	switch a {
	case NakAction_Park:
		return "park"
	case NakAction_Retry:
		return "retry"
	case NakAction_Skip:
		return "skip"
	case NakAction_Stop:
		return "stop"
	default:
		return "unknown"
	}
}

// PersistentSubscriptionInfo describes a persistent subscription group, as
// returned by the Info and List operations.
type PersistentSubscriptionInfo struct {
	EventSource                   string
	GroupName                     string
	Status                        string
	Settings                      PersistentSubscriptionSettings
	Connections                   []PersistentSubscriptionConnection
	ReadBufferCount               int64
	LiveBufferCount               int64
	RetryBufferCount              int64
	TotalInFlightMessages         int64
	ParkedMessageCount            int64
	AveragePerSecond              int64
	TotalItems                    int64
	LastCheckpointedEventPosition string
	LastKnownEventPosition        string
}

// PersistentSubscriptionConnection describes a single consumer connection of a group.
type PersistentSubscriptionConnection struct {
	From                      string
	Username                  string
	AverageItemsPerSecond     int64
	TotalItems                int64
	CountSinceLastMeasurement int64
	AvailableSlots            int64
	InFlightMessages          int64
	ConnectionName            string
}

func (i PersistentSubscriptionInfo) String() string {
	return fmt.Sprintf("%s::%s (%s)", i.EventSource, i.GroupName, i.Status)
}
