package domain

import "time"

// Experiment is the configuration row for one experiment, plus its running
// population counters.
type Experiment struct {
	ExperimentID     string    `bson:"experimentId"`
	ProjectID        string    `bson:"projectId"`
	Name             string    `bson:"name"`
	Status           string    `bson:"status"`
	TotalVisitors    int64     `bson:"totalVisitors"`
	TotalConversions int64     `bson:"totalConversions"`
	CreatedAt        time.Time `bson:"createdAt,omitempty"`
}

// Variant is one arm of an experiment with its population counters.
type Variant struct {
	VariantID    string  `bson:"variantId"`
	ExperimentID string  `bson:"experimentId"`
	Name         string  `bson:"name"`
	IsControl    bool    `bson:"isControl"`
	Weight       float64 `bson:"weight,omitempty"`
	Visitors     int64   `bson:"visitors"`
	Conversions  int64   `bson:"conversions"`
}

// Goal is a project-level conversion goal definition.
type Goal struct {
	GoalID    string `bson:"goalId"`
	ProjectID string `bson:"projectId"`
	Name      string `bson:"name"`
	GoalType  string `bson:"goalType"`
}

// ExperimentGoal is the (experiment, goal) pairing carrying its own
// conversion counter.
type ExperimentGoal struct {
	ExperimentID string `bson:"experimentId"`
	GoalID       string `bson:"goalId"`
	Conversions  int64  `bson:"conversions"`
}
