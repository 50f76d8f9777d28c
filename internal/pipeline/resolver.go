package pipeline

import (
	"context"
	"net/url"

	"go.uber.org/zap"

	"github.com/nuribostan/abTestYazilim/internal/domain"
	"github.com/nuribostan/abTestYazilim/internal/repository"
	"github.com/nuribostan/abTestYazilim/internal/useragent"
)

// VisitorResolver maps (project, visitor) pairs to durable visitor rows
// with create-if-absent-else-update semantics.
type VisitorResolver struct {
	visitors repository.VisitorRepository
	log      *zap.Logger
}

// NewVisitorResolver creates a visitor resolver.
func NewVisitorResolver(visitors repository.VisitorRepository, log *zap.Logger) *VisitorResolver {
	return &VisitorResolver{
		visitors: visitors,
		log:      log,
	}
}

// Resolve creates or updates the visitor row for the event's identity key
// and reports whether this event created it. A URL that fails to parse
// only skips campaign attribution; it never aborts resolution.
func (r *VisitorResolver) Resolve(ctx context.Context, event *domain.IncomingEvent) (created bool, err error) {
	classification := useragent.Classify(event.UserAgent)

	visitor := &domain.Visitor{
		ProjectID:  event.ProjectID,
		VisitorID:  event.VisitorID,
		DeviceType: classification.DeviceType,
		Browser:    classification.Browser,
		OS:         classification.OS,
		Referrer:   event.Referrer,
		VisitCount: 1,
		PageViews:  1,
		FirstSeen:  event.Timestamp,
		LastSeen:   event.Timestamp,
	}

	visitor.UTMSource, visitor.UTMMedium, visitor.UTMCampaign = campaignParams(event.URL)

	created, err = r.visitors.Upsert(ctx, visitor)
	if err != nil {
		return false, err
	}

	if created {
		r.log.Debug("Visitor created",
			zap.String("project_id", event.ProjectID),
			zap.String("visitor_id", event.VisitorID),
			zap.String("device_type", visitor.DeviceType),
			zap.String("browser", visitor.Browser))
	}

	return created, nil
}

// RecordSessionStart increments the visit counter for an existing visitor.
// The creating event already initialized visitCount to 1, so a session
// start that created the row skips the increment.
func (r *VisitorResolver) RecordSessionStart(ctx context.Context, event *domain.IncomingEvent, visitorCreated bool) error {
	if visitorCreated {
		return nil
	}
	return r.visitors.IncrementVisitCount(ctx, event.ProjectID, event.VisitorID)
}

func campaignParams(rawURL string) (source, medium, campaign string) {
	if rawURL == "" {
		return "", "", ""
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", "", ""
	}

	query := parsed.Query()
	return query.Get("utm_source"), query.Get("utm_medium"), query.Get("utm_campaign")
}
