package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nuribostan/abTestYazilim/internal/domain"
	"github.com/nuribostan/abTestYazilim/internal/repository"
)

// ConversionAttributor records goal conversions against the attributed
// experiment/variant pairs supplied on the event. Each attribution produces
// its own full set of side effects; duplicates within one event are not
// collapsed.
type ConversionAttributor struct {
	conversions repository.ConversionRepository
	counters    repository.CounterRepository
	dailyStats  *DailyStats
	liveLogs    *LiveLogEmitter
	log         *zap.Logger
}

// NewConversionAttributor creates a conversion attributor.
func NewConversionAttributor(conversions repository.ConversionRepository, counters repository.CounterRepository, dailyStats *DailyStats, liveLogs *LiveLogEmitter, log *zap.Logger) *ConversionAttributor {
	return &ConversionAttributor{
		conversions: conversions,
		counters:    counters,
		dailyStats:  dailyStats,
		liveLogs:    liveLogs,
		log:         log,
	}
}

// Attribute handles one GOAL_CONVERSION event. An event without a goalId or
// with no attributions writes nothing at all. A storage failure abandons
// the remaining attributions; the daily stat touch and live log entry stay
// best-effort.
func (a *ConversionAttributor) Attribute(ctx context.Context, event *domain.IncomingEvent) (recorded int, err error) {
	if event.GoalID == "" || len(event.AttributedExperiments) == 0 {
		a.log.Debug("Conversion event with nothing to attribute",
			zap.String("visitor_id", event.VisitorID),
			zap.String("goal_id", event.GoalID))
		return 0, nil
	}

	currency := event.Currency
	if currency == "" {
		currency = domain.FallbackCurrency
	}

	for _, attribution := range event.AttributedExperiments {
		conversion := &domain.GoalConversion{
			ConversionID: uuid.NewString(),
			ProjectID:    event.ProjectID,
			VisitorID:    event.VisitorID,
			SessionID:    event.SessionID,
			GoalID:       event.GoalID,
			GoalName:     event.GoalName,
			GoalType:     event.GoalType,
			ExperimentID: attribution.ExperimentID,
			VariantID:    attribution.VariantID,
			Value:        event.Value,
			Currency:     currency,
			URL:          event.URL,
			ConvertedAt:  event.Timestamp,
		}

		if err := a.conversions.AppendConversion(ctx, conversion); err != nil {
			return recorded, fmt.Errorf("failed to append conversion: %w", err)
		}
		if err := a.counters.IncrementVariantConversions(ctx, attribution.VariantID); err != nil {
			return recorded, fmt.Errorf("failed to increment variant conversions: %w", err)
		}
		if err := a.counters.IncrementExperimentConversions(ctx, attribution.ExperimentID); err != nil {
			return recorded, fmt.Errorf("failed to increment experiment conversions: %w", err)
		}
		if err := a.counters.IncrementExperimentGoalConversions(ctx, attribution.ExperimentID, event.GoalID); err != nil {
			return recorded, fmt.Errorf("failed to increment experiment goal conversions: %w", err)
		}

		a.dailyStats.RecordConversion(ctx, attribution.ExperimentID, event.Timestamp, event.Value)
		a.liveLogs.Conversion(ctx, event, attribution)
		recorded++
	}

	a.log.Info("Goal conversion recorded",
		zap.String("visitor_id", event.VisitorID),
		zap.String("goal_id", event.GoalID),
		zap.Int("attributions", recorded))

	return recorded, nil
}
