package repository

import (
	"context"
	"time"

	"github.com/nuribostan/abTestYazilim/internal/domain"
)

// VisitorRepository owns durable visitor identity rows keyed by
// (projectId, visitorId).
type VisitorRepository interface {
	// Upsert creates the visitor row if absent, otherwise refreshes
	// lastSeen and increments pageViews. It reports whether the row was
	// created by this call.
	Upsert(ctx context.Context, visitor *domain.Visitor) (created bool, err error)

	// IncrementVisitCount bumps the visit counter, used on session starts
	// for visitors that already exist.
	IncrementVisitCount(ctx context.Context, projectID, visitorID string) error
}

// EventRepository is the append-only sink for ingested event rows.
type EventRepository interface {
	Append(ctx context.Context, event *domain.Event) error
}

// AssignmentRepository owns sticky variant assignments. Uniqueness on
// (visitorId, experimentId) is enforced by the store, not the caller.
type AssignmentRepository interface {
	// Create inserts the assignment and reports whether this call won the
	// unique slot. A concurrent or earlier assignment for the same pair
	// returns (false, nil).
	Create(ctx context.Context, assignment *domain.VariantAssignment) (created bool, err error)

	// FindByVisitor returns the assignments held by one visitor.
	FindByVisitor(ctx context.Context, visitorID string) ([]domain.VariantAssignment, error)
}

// ConversionRepository is the append-only sink for goal conversion rows.
type ConversionRepository interface {
	AppendConversion(ctx context.Context, conversion *domain.GoalConversion) error
}

// CounterRepository issues atomic increments against experiment, variant
// and experiment-goal counters. Implementations must use storage-level
// increment operations, never read-modify-write.
type CounterRepository interface {
	IncrementVariantVisitors(ctx context.Context, variantID string) error
	IncrementVariantConversions(ctx context.Context, variantID string) error
	IncrementExperimentVisitors(ctx context.Context, experimentID string) error
	IncrementExperimentConversions(ctx context.Context, experimentID string) error
	IncrementExperimentGoalConversions(ctx context.Context, experimentID, goalID string) error
}

// DailyStatRepository owns the per-experiment, per-UTC-day aggregate rows.
// day must already be truncated to midnight UTC.
type DailyStatRepository interface {
	IncrementImpressions(ctx context.Context, experimentID string, day time.Time) error
	IncrementConversions(ctx context.Context, experimentID string, day time.Time, revenue float64) error
	FindRange(ctx context.Context, experimentID string, from, to time.Time) ([]domain.ExperimentDailyStat, error)
}

// LiveLogRepository appends ephemeral audit entries. Expiry is carried on
// the entry itself; the store sweeps expired rows.
type LiveLogRepository interface {
	AppendLiveLog(ctx context.Context, entry *domain.LiveLog) error
}

// ExperimentRepository serves the read-only configuration snapshot.
type ExperimentRepository interface {
	ListRunning(ctx context.Context, projectID string) ([]domain.Experiment, error)
	ListVariants(ctx context.Context, experimentIDs []string) ([]domain.Variant, error)
	ListGoals(ctx context.Context, projectID string) ([]domain.Goal, error)
}

// EventMetricsQuery filters the per-day event metrics read.
type EventMetricsQuery struct {
	ProjectID string
	EventType string
	From      time.Time
	To        time.Time
}

// EventMetricsRow is one day of event counts for the metrics read.
type EventMetricsRow struct {
	Day         string
	TotalCount  uint64
	UniqueCount uint64
}

// EventMetricsRepository is the analytical read over the event sink.
type EventMetricsRepository interface {
	GetDailyMetrics(ctx context.Context, query EventMetricsQuery) ([]EventMetricsRow, error)
}
