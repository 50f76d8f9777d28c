package dto

import "github.com/nuribostan/abTestYazilim/internal/domain"

// PublishEventRequest represents a server-side event publish request
type PublishEventRequest struct {
	ProjectID string `json:"projectId" binding:"required" example:"proj_123"`
	VisitorID string `json:"visitorId" binding:"required" example:"vis_8f2a"`
	SessionID string `json:"sessionId" example:"sess_41bc"`
	EventType string `json:"eventType" binding:"required" example:"EXPERIMENT_VIEW"`
	EventName string `json:"eventName" example:"pricing_page"`
	Timestamp int64  `json:"timestamp" example:"1723475612"`
	URL       string `json:"url" example:"https://shop.example.com/pricing?utm_source=newsletter"`
	UserAgent string `json:"userAgent" example:"Mozilla/5.0 (Windows NT 10.0; Win64; x64)"`
	Referrer  string `json:"referrer" example:"https://www.google.com/"`

	ExperimentID string `json:"experimentId" example:"exp_42"`
	VariantID    string `json:"variantId" example:"var_b"`

	GoalID                string               `json:"goalId" example:"goal_checkout"`
	GoalName              string               `json:"goalName" example:"Checkout completed"`
	GoalType              string               `json:"goalType" example:"purchase"`
	AttributedExperiments []domain.Attribution `json:"attributedExperiments"`

	Value    *float64 `json:"value" example:"49.99"`
	Currency string   `json:"currency" example:"EUR"`
}

// GetDailyStatsRequest represents a daily stats query request
type GetDailyStatsRequest struct {
	From string `form:"from" binding:"required" example:"2026-03-01"`
	To   string `form:"to" binding:"required" example:"2026-03-14"`
}

// GetDailyMetricsRequest represents an event metrics query request
type GetDailyMetricsRequest struct {
	EventType string `form:"event_type" binding:"required" example:"EXPERIMENT_VIEW"`
	From      int64  `form:"from" binding:"required" example:"1723475612"`
	To        int64  `form:"to" binding:"required" example:"1723562012"`
}
