package domain

import "time"

// Visitor is the durable identity row for one (project, visitor) pair.
// Created on the first event seen for the key, mutated afterwards, never
// deleted by the pipeline.
type Visitor struct {
	ProjectID   string    `bson:"projectId"`
	VisitorID   string    `bson:"visitorId"`
	DeviceType  string    `bson:"deviceType"`
	Browser     string    `bson:"browser"`
	OS          string    `bson:"os"`
	Referrer    string    `bson:"referrer,omitempty"`
	UTMSource   string    `bson:"utmSource,omitempty"`
	UTMMedium   string    `bson:"utmMedium,omitempty"`
	UTMCampaign string    `bson:"utmCampaign,omitempty"`
	VisitCount  int64     `bson:"visitCount"`
	PageViews   int64     `bson:"pageViews"`
	FirstSeen   time.Time `bson:"firstSeen"`
	LastSeen    time.Time `bson:"lastSeen"`
}

// VariantAssignment is the sticky visitor→variant pairing for one
// experiment. Unique per (visitorId, experimentId), immutable once created.
type VariantAssignment struct {
	ProjectID      string    `bson:"projectId"`
	VisitorID      string    `bson:"visitorId"`
	ExperimentID   string    `bson:"experimentId"`
	ExperimentName string    `bson:"experimentName,omitempty"`
	VariantID      string    `bson:"variantId"`
	VariantName    string    `bson:"variantName,omitempty"`
	IsControl      bool      `bson:"isControl"`
	AssignedAt     time.Time `bson:"assignedAt"`
}
