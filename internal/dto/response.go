package dto

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error" example:"validation_error"`
	Message string `json:"message,omitempty" example:"projectId is required"`
}

// PublishEventResponse represents a successful event publish response
type PublishEventResponse struct {
	Status string `json:"status" example:"accepted"`
}

// VariantConfig is one experiment arm in the configuration snapshot
type VariantConfig struct {
	VariantID string  `json:"variantId" example:"var_b"`
	Name      string  `json:"name" example:"Blue CTA"`
	IsControl bool    `json:"isControl" example:"false"`
	Weight    float64 `json:"weight,omitempty" example:"0.5"`
}

// ExperimentConfig is one running experiment in the configuration snapshot
type ExperimentConfig struct {
	ExperimentID string          `json:"experimentId" example:"exp_42"`
	Name         string          `json:"name" example:"Pricing CTA color"`
	Status       string          `json:"status" example:"running"`
	Variants     []VariantConfig `json:"variants"`
}

// GoalConfig is one project goal in the configuration snapshot
type GoalConfig struct {
	GoalID   string `json:"goalId" example:"goal_checkout"`
	Name     string `json:"name" example:"Checkout completed"`
	GoalType string `json:"goalType" example:"purchase"`
}

// ProjectConfigResponse is the read-only snapshot served to client SDKs
type ProjectConfigResponse struct {
	ProjectID   string             `json:"projectId" example:"proj_123"`
	Experiments []ExperimentConfig `json:"experiments"`
	Goals       []GoalConfig       `json:"goals"`
}

// DailyStatData is one aggregated day for an experiment
type DailyStatData struct {
	Date        string  `json:"date" example:"2026-03-14"`
	Impressions int64   `json:"impressions" example:"1520"`
	Conversions int64   `json:"conversions" example:"87"`
	Revenue     float64 `json:"revenue" example:"4349.13"`
}

// GetDailyStatsResponse represents the daily stats query response
type GetDailyStatsResponse struct {
	ExperimentID string          `json:"experimentId" example:"exp_42"`
	From         string          `json:"from" example:"2026-03-01"`
	To           string          `json:"to" example:"2026-03-14"`
	Stats        []DailyStatData `json:"stats"`
}

// DailyMetricData is one day of raw event counts from the event sink
type DailyMetricData struct {
	Day         string `json:"day" example:"2026-03-14"`
	TotalCount  uint64 `json:"total_count" example:"1500"`
	UniqueCount uint64 `json:"unique_count" example:"820"`
}

// GetDailyMetricsResponse represents the event metrics query response
type GetDailyMetricsResponse struct {
	ProjectID string            `json:"projectId" example:"proj_123"`
	EventType string            `json:"eventType" example:"EXPERIMENT_VIEW"`
	From      int64             `json:"from" example:"1723475612"`
	To        int64             `json:"to" example:"1723562012"`
	Days      []DailyMetricData `json:"days"`
}
