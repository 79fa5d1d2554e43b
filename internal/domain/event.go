package domain

import (
	"context"
	"time"
)

// RawEvent represents an unprocessed site snapshot message from the source topic.
type RawEvent struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// MarkerEvent is a resolved marker stamped with its resolution time.
type MarkerEvent struct {
	Marker     Marker    `json:"marker"`
	ResolvedAt time.Time `json:"resolved_at"`
}

// NewMarkerEvent resolves a site and stamps the result with the package clock.
func NewMarkerEvent(site Site) MarkerEvent {
	return MarkerEvent{
		Marker:     ResolveMarker(site),
		ResolvedAt: clock.Now().UTC(),
	}
}

// OutputEvent is the serialized form destined for the sink topic.
type OutputEvent struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}
