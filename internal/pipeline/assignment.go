package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/nuribostan/abTestYazilim/internal/domain"
	"github.com/nuribostan/abTestYazilim/internal/repository"
)

// AssignmentTracker enforces the sticky visitor→variant pairing. The store's
// unique index on (visitorId, experimentId) is the deduplication gate:
// population counters move only when this call wins the insert, so they
// count unique visitors rather than page views.
type AssignmentTracker struct {
	assignments repository.AssignmentRepository
	counters    repository.CounterRepository
	dailyStats  *DailyStats
	log         *zap.Logger
}

// NewAssignmentTracker creates an assignment tracker.
func NewAssignmentTracker(assignments repository.AssignmentRepository, counters repository.CounterRepository, dailyStats *DailyStats, log *zap.Logger) *AssignmentTracker {
	return &AssignmentTracker{
		assignments: assignments,
		counters:    counters,
		dailyStats:  dailyStats,
		log:         log,
	}
}

// Track handles one EXPERIMENT_VIEW carrying both experimentId and
// variantId. It reports whether this view established the assignment.
// Counter increments happen only on a first view; a lost insert race is
// treated as a repeat view. The daily impression touch is best-effort and
// never fails the view.
func (t *AssignmentTracker) Track(ctx context.Context, event *domain.IncomingEvent) (assigned bool, err error) {
	assignment := &domain.VariantAssignment{
		ProjectID:      event.ProjectID,
		VisitorID:      event.VisitorID,
		ExperimentID:   event.ExperimentID,
		ExperimentName: event.ExperimentName,
		VariantID:      event.VariantID,
		VariantName:    event.VariantName,
		IsControl:      event.IsControl,
		AssignedAt:     event.Timestamp,
	}

	created, err := t.assignments.Create(ctx, assignment)
	if err != nil {
		return false, fmt.Errorf("failed to create assignment: %w", err)
	}

	if !created {
		t.log.Debug("Repeat experiment view",
			zap.String("visitor_id", event.VisitorID),
			zap.String("experiment_id", event.ExperimentID))
		return false, nil
	}

	if err := t.counters.IncrementVariantVisitors(ctx, event.VariantID); err != nil {
		return true, fmt.Errorf("failed to increment variant visitors: %w", err)
	}
	if err := t.counters.IncrementExperimentVisitors(ctx, event.ExperimentID); err != nil {
		return true, fmt.Errorf("failed to increment experiment visitors: %w", err)
	}

	t.dailyStats.RecordImpression(ctx, event.ExperimentID, event.Timestamp)

	t.log.Info("Visitor assigned to variant",
		zap.String("visitor_id", event.VisitorID),
		zap.String("experiment_id", event.ExperimentID),
		zap.String("variant_id", event.VariantID))

	return true, nil
}
