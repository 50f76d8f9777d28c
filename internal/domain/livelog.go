package domain

import "time"

// LiveLogTTL is how long a live log entry stays visible before the store's
// TTL sweep removes it.
const LiveLogTTL = 24 * time.Hour

// Live log entry types emitted by the pipeline.
const (
	LiveLogAssigned   = "assigned"
	LiveLogConversion = "conversion"
)

// LiveLog is an ephemeral human-facing audit entry. Never read back by the
// pipeline.
type LiveLog struct {
	LogType   string                 `bson:"logType"`
	Message   string                 `bson:"message"`
	Details   map[string]interface{} `bson:"details,omitempty"`
	CreatedAt time.Time              `bson:"createdAt"`
	ExpiresAt time.Time              `bson:"expiresAt"`
}

// NewLiveLog stamps creation and expiry on a live log entry.
func NewLiveLog(logType, message string, details map[string]interface{}) *LiveLog {
	now := time.Now().UTC()
	return &LiveLog{
		LogType:   logType,
		Message:   message,
		Details:   details,
		CreatedAt: now,
		ExpiresAt: now.Add(LiveLogTTL),
	}
}
