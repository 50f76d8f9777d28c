package pipeline

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/nuribostan/abTestYazilim/internal/repository"
)

// DailyStats maintains per-experiment, per-UTC-day aggregate counters.
// Failures here are logged and swallowed so they can never roll back or
// fail the primary write that triggered the touch.
type DailyStats struct {
	stats repository.DailyStatRepository
	log   *zap.Logger
}

// NewDailyStats creates the daily stat aggregator.
func NewDailyStats(stats repository.DailyStatRepository, log *zap.Logger) *DailyStats {
	return &DailyStats{
		stats: stats,
		log:   log,
	}
}

// RecordImpression touches the impression counter for the experiment's day
// bucket.
func (d *DailyStats) RecordImpression(ctx context.Context, experimentID string, ts time.Time) {
	day := dayOf(ts)
	if err := d.stats.IncrementImpressions(ctx, experimentID, day); err != nil {
		d.log.Error("Failed to update daily impression stat",
			zap.String("experiment_id", experimentID),
			zap.Time("day", day),
			zap.Error(err))
	}
}

// RecordConversion touches the conversion counter for the experiment's day
// bucket, adding revenue when the conversion carried a positive value.
func (d *DailyStats) RecordConversion(ctx context.Context, experimentID string, ts time.Time, value *float64) {
	day := dayOf(ts)

	revenue := 0.0
	if value != nil && *value > 0 {
		revenue = *value
	}

	if err := d.stats.IncrementConversions(ctx, experimentID, day, revenue); err != nil {
		d.log.Error("Failed to update daily conversion stat",
			zap.String("experiment_id", experimentID),
			zap.Time("day", day),
			zap.Error(err))
	}
}

// dayOf truncates an event timestamp to its UTC calendar date, independent
// of any zone offset carried by the timestamp.
func dayOf(ts time.Time) time.Time {
	u := ts.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
