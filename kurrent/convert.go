package kurrent

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	persistentapi "go.kurrent.dev/client/api/persistent"
	"go.kurrent.dev/client/api/shared"
	streamsapi "go.kurrent.dev/client/api/streams"
	"go.kurrent.dev/client/protocol"
)

// System metadata keys of proposed and recorded events.
const (
	metaType        = "type"
	metaContentType = "content-type"
	metaCreated     = "created"
)

func streamIdentifier(stream string) *shared.StreamIdentifier {
	return &shared.StreamIdentifier{StreamName: []byte(stream)}
}

func proposedFromEventData(e protocol.EventData) *streamsapi.AppendReq_ProposedMessage {
	var id = e.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	var contentType = e.ContentType
	if contentType == "" {
		contentType = "application/json"
	}
	return &streamsapi.AppendReq_ProposedMessage{
		Id: &shared.UUID{String_: id.String()},
		Metadata: map[string]string{
			metaType:        e.Type,
			metaContentType: contentType,
		},
		CustomMetadata: e.Metadata,
		Data:           e.Data,
	}
}

func batchProposedFromEventData(e protocol.EventData) *streamsapi.BatchAppendReq_ProposedMessage {
	var p = proposedFromEventData(e)
	return &streamsapi.BatchAppendReq_ProposedMessage{
		Id:             p.Id,
		Metadata:       p.Metadata,
		CustomMetadata: p.CustomMetadata,
		Data:           p.Data,
	}
}

func recordedFromWire(w *streamsapi.ReadResp_ReadEvent_RecordedEvent) *protocol.RecordedEvent {
	if w == nil {
		return nil
	}
	var id uuid.UUID
	if w.Id != nil {
		id, _ = uuid.Parse(w.Id.String_)
	}
	var created time.Time
	if ticks, err := strconv.ParseInt(w.Metadata[metaCreated], 10, 64); err == nil {
		created = time.Unix(0, ticks*100).UTC()
	}
	return &protocol.RecordedEvent{
		ID:             id,
		Stream:         string(w.StreamIdentifier.GetStreamName()),
		Type:           w.Metadata[metaType],
		ContentType:    w.Metadata[metaContentType],
		StreamRevision: w.StreamRevision,
		Position: protocol.Position{
			Commit:  w.CommitPosition,
			Prepare: w.PreparePosition,
		},
		Created:  created,
		Data:     w.Data,
		Metadata: w.CustomMetadata,
	}
}

func resolvedFromWire(w *streamsapi.ReadResp_ReadEvent) protocol.ResolvedEvent {
	var out = protocol.ResolvedEvent{
		Event: recordedFromWire(w.Event),
		Link:  recordedFromWire(w.Link),
	}
	if w.CommitPosition != nil {
		out.Commit = &protocol.Position{Commit: *w.CommitPosition}
	}
	return out
}

func persistentRecordedFromWire(w *persistentapi.ReadResp_ReadEvent_RecordedEvent) *protocol.RecordedEvent {
	if w == nil {
		return nil
	}
	var id uuid.UUID
	if w.Id != nil {
		id, _ = uuid.Parse(w.Id.String_)
	}
	var created time.Time
	if ticks, err := strconv.ParseInt(w.Metadata[metaCreated], 10, 64); err == nil {
		created = time.Unix(0, ticks*100).UTC()
	}
	return &protocol.RecordedEvent{
		ID:             id,
		Stream:         string(w.StreamIdentifier.GetStreamName()),
		Type:           w.Metadata[metaType],
		ContentType:    w.Metadata[metaContentType],
		StreamRevision: w.StreamRevision,
		Position: protocol.Position{
			Commit:  w.CommitPosition,
			Prepare: w.PreparePosition,
		},
		Created:  created,
		Data:     w.Data,
		Metadata: w.CustomMetadata,
	}
}

func persistentResolvedFromWire(w *persistentapi.ReadResp_ReadEvent) protocol.ResolvedEvent {
	var out = protocol.ResolvedEvent{
		Event: persistentRecordedFromWire(w.Event),
		Link:  persistentRecordedFromWire(w.Link),
	}
	if w.CommitPosition != nil {
		out.Commit = &protocol.Position{Commit: *w.CommitPosition}
	}
	return out
}

func filterOptionsToWire(f protocol.SubscriptionFilter) *streamsapi.ReadReq_Options_FilterOptions {
	var expr = &streamsapi.ReadReq_Options_FilterOptions_Expression{
		Regex:  f.Regex,
		Prefix: f.Prefixes,
	}
	var out = &streamsapi.ReadReq_Options_FilterOptions{}
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

func persistentSettingsToWire(s protocol.PersistentSubscriptionSettings) *persistentapi.Settings {
	return &persistentapi.Settings{
		ResolveLinks:       s.ResolveLinkTos,
		ExtraStatistics:    s.ExtraStatistics,
		MaxRetryCount:      s.MaxRetryCount,
		MinCheckpointCount: s.MinCheckpointCount,
		MaxCheckpointCount: s.MaxCheckpointCount,
		MaxSubscriberCount: s.MaxSubscriberCount,
		LiveBufferSize:     s.LiveBufferSize,
		ReadBatchSize:      s.ReadBatchSize,
		HistoryBufferSize:  s.HistoryBufferSize,
		MessageTimeoutMs:   int32(s.MessageTimeout / time.Millisecond),
		CheckpointAfterMs:  int32(s.CheckpointAfter / time.Millisecond),
		ConsumerStrategy:   string(s.ConsumerStrategy),
	}
}

func subscriptionInfoFromWire(w *persistentapi.SubscriptionInfo) protocol.PersistentSubscriptionInfo {
	var info = protocol.PersistentSubscriptionInfo{
		EventSource: w.EventSource,
		GroupName:   w.GroupName,
		Status:      w.Status,
		Settings: protocol.PersistentSubscriptionSettings{
			ResolveLinkTos:     w.ResolveLinkTos,
			ExtraStatistics:    w.ExtraStatistics,
			MaxRetryCount:      w.MaxRetryCount,
			MinCheckpointCount: w.MinCheckPointCount,
			MaxCheckpointCount: w.MaxCheckPointCount,
			MaxSubscriberCount: w.MaxSubscriberCount,
			LiveBufferSize:     w.LiveBufferSize,
			ReadBatchSize:      w.ReadBatchSize,
			HistoryBufferSize:  w.BufferSize,
			MessageTimeout:     time.Duration(w.MessageTimeoutMilliseconds) * time.Millisecond,
			CheckpointAfter:    time.Duration(w.CheckPointAfterMilliseconds) * time.Millisecond,
			ConsumerStrategy:   protocol.ConsumerStrategy(w.NamedConsumerStrategy),
		},
		ReadBufferCount:               int64(w.ReadBufferCount),
		LiveBufferCount:               w.LiveBufferCount,
		RetryBufferCount:              int64(w.RetryBufferCount),
		TotalInFlightMessages:         int64(w.TotalInFlightMessages),
		ParkedMessageCount:            w.ParkedMessageCount,
		AveragePerSecond:              int64(w.AveragePerSecond),
		TotalItems:                    w.TotalItems,
		LastCheckpointedEventPosition: w.LastCheckpointedEventPosition,
		LastKnownEventPosition:        w.LastKnownEventPosition,
	}
	for _, conn := range w.Connections {
		info.Connections = append(info.Connections, protocol.PersistentSubscriptionConnection{
			From:                      conn.From,
			Username:                  conn.Username,
			AverageItemsPerSecond:     int64(conn.AverageItemsPerSecond),
			TotalItems:                conn.TotalItems,
			CountSinceLastMeasurement: conn.CountSinceLastMeasurement,
			AvailableSlots:            int64(conn.AvailableSlots),
			InFlightMessages:          int64(conn.InFlightMessages),
			ConnectionName:            conn.ConnectionName,
		})
	}
	return info
}
