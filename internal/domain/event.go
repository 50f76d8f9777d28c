package domain

import (
	"encoding/json"
	"time"
)

// EventType enumerates the event types the pipeline routes on. Anything
// else falls through to the generic handler.
type EventType string

const (
	EventSessionStart   EventType = "SESSION_START"
	EventExperimentView EventType = "EXPERIMENT_VIEW"
	EventGoalConversion EventType = "GOAL_CONVERSION"
	EventCustom         EventType = "CUSTOM_EVENT"
	EventPageView       EventType = "PAGE_VIEW"
	EventClick          EventType = "CLICK"
	EventFormSubmit     EventType = "FORM_SUBMIT"
)

// Attribution is one (experiment, variant) pair a conversion is credited to.
type Attribution struct {
	ExperimentID   string `json:"experimentId"`
	ExperimentName string `json:"experimentName,omitempty"`
	VariantID      string `json:"variantId"`
	VariantName    string `json:"variantName,omitempty"`
}

// IncomingEvent is the wire shape of one instrumentation event as it
// arrives inside a batch record body. Fields beyond the declared ones are
// preserved opaquely in Raw.
type IncomingEvent struct {
	ProjectID string    `json:"projectId"`
	VisitorID string    `json:"visitorId"`
	SessionID string    `json:"sessionId"`
	Timestamp time.Time `json:"timestamp"`
	EventType string    `json:"eventType"`
	URL       string    `json:"url"`

	ExperimentID   string `json:"experimentId"`
	ExperimentName string `json:"experimentName"`
	VariantID      string `json:"variantId"`
	VariantName    string `json:"variantName"`
	IsControl      bool   `json:"isControl"`

	GoalID                string        `json:"goalId"`
	GoalName              string        `json:"goalName"`
	GoalType              string        `json:"goalType"`
	AttributedExperiments []Attribution `json:"attributedExperiments"`

	EventName string   `json:"eventName"`
	Value     *float64 `json:"value"`
	Currency  string   `json:"currency"`

	UserAgent string `json:"userAgent"`
	Referrer  string `json:"referrer"`

	// Raw is the full original event object, kept so the generic handler
	// can store unrecognized payloads without loss.
	Raw json.RawMessage `json:"-"`
}

// Event is one append-only ingested occurrence, stored in ClickHouse.
type Event struct {
	EventID      string    `ch:"event_id"`
	ProjectID    string    `ch:"project_id"`
	VisitorID    string    `ch:"visitor_id"`
	SessionID    string    `ch:"session_id"`
	EventType    string    `ch:"event_type"`
	EventName    string    `ch:"event_name"`
	URL          string    `ch:"url"`
	ExperimentID string    `ch:"experiment_id"`
	VariantID    string    `ch:"variant_id"`
	GoalID       string    `ch:"goal_id"`
	Payload      string    `ch:"payload"`
	Timestamp    time.Time `ch:"timestamp"`
	ProcessedAt  time.Time `ch:"processed_at"`
}
