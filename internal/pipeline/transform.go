package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/site-marker-service/internal/domain"
	"github.com/couchcryptid/site-marker-service/internal/observability"
)

// Message headers set on every published marker.
const (
	HeaderIcon       = "icon"
	HeaderSiteType   = "site_type"
	HeaderResolvedAt = "resolved_at"
)

// MarkerTransformer implements Transformer by decoding a site snapshot and
// resolving its marker.
type MarkerTransformer struct {
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewTransformer creates a MarkerTransformer.
func NewTransformer(logger *slog.Logger, metrics *observability.Metrics) *MarkerTransformer {
	return &MarkerTransformer{
		logger:  logger,
		metrics: metrics,
	}
}

func (t *MarkerTransformer) Transform(_ context.Context, raw domain.RawEvent) (domain.OutputEvent, error) {
	site, err := domain.ParseRawEvent(raw)
	if err != nil {
		return domain.OutputEvent{}, err
	}

	event := domain.NewMarkerEvent(site)
	value, err := json.Marshal(event)
	if err != nil {
		return domain.OutputEvent{}, fmt.Errorf("serialize marker: %w", err)
	}

	icon := string(event.Marker.Icon.ID)
	t.metrics.MarkersResolved.WithLabelValues(icon).Inc()
	t.logger.Debug("marker resolved", "site_id", site.ID, "icon", icon)

	return domain.OutputEvent{
		Key:   []byte(site.ID),
		Value: value,
		Headers: map[string]string{
			HeaderIcon:       icon,
			HeaderSiteType:   string(site.Type),
			HeaderResolvedAt: event.ResolvedAt.Format(time.RFC3339),
		},
	}, nil
}
