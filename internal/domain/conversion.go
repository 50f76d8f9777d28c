package domain

import "time"

// FallbackCurrency is applied when a conversion event carries a value but
// no currency.
const FallbackCurrency = "USD"

// GoalConversion is one append-only conversion record for one
// (goal, experiment, variant, visitor) attribution.
type GoalConversion struct {
	ConversionID string    `bson:"conversionId"`
	ProjectID    string    `bson:"projectId"`
	VisitorID    string    `bson:"visitorId"`
	SessionID    string    `bson:"sessionId,omitempty"`
	GoalID       string    `bson:"goalId"`
	GoalName     string    `bson:"goalName,omitempty"`
	GoalType     string    `bson:"goalType,omitempty"`
	ExperimentID string    `bson:"experimentId"`
	VariantID    string    `bson:"variantId"`
	Value        *float64  `bson:"value,omitempty"`
	Currency     string    `bson:"currency"`
	URL          string    `bson:"url,omitempty"`
	ConvertedAt  time.Time `bson:"convertedAt"`
}

// ExperimentDailyStat is the per-experiment, per-UTC-day aggregate row.
// Date is always midnight UTC.
type ExperimentDailyStat struct {
	ExperimentID string    `bson:"experimentId"`
	Date         time.Time `bson:"date"`
	Impressions  int64     `bson:"impressions"`
	Conversions  int64     `bson:"conversions"`
	Revenue      float64   `bson:"revenue"`
}
