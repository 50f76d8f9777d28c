package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/nuribostan/abTestYazilim/internal/domain"
	"github.com/nuribostan/abTestYazilim/internal/repository"
)

// LiveLogEmitter appends best-effort audit entries for the real-time
// activity feed. Append failures are logged and swallowed; nothing in the
// pipeline depends on these entries.
type LiveLogEmitter struct {
	logs repository.LiveLogRepository
	log  *zap.Logger
}

// NewLiveLogEmitter creates a live log emitter.
func NewLiveLogEmitter(logs repository.LiveLogRepository, log *zap.Logger) *LiveLogEmitter {
	return &LiveLogEmitter{
		logs: logs,
		log:  log,
	}
}

// Assigned emits an entry for an experiment view, first or repeat.
func (e *LiveLogEmitter) Assigned(ctx context.Context, event *domain.IncomingEvent) {
	entry := domain.NewLiveLog(domain.LiveLogAssigned,
		fmt.Sprintf("Visitor %s viewed experiment %s", event.VisitorID, event.ExperimentID),
		map[string]interface{}{
			"projectId":    event.ProjectID,
			"visitorId":    event.VisitorID,
			"experimentId": event.ExperimentID,
			"variantId":    event.VariantID,
		})
	e.append(ctx, entry)
}

// Conversion emits an entry for one conversion attribution.
func (e *LiveLogEmitter) Conversion(ctx context.Context, event *domain.IncomingEvent, attribution domain.Attribution) {
	entry := domain.NewLiveLog(domain.LiveLogConversion,
		fmt.Sprintf("Visitor %s converted goal %s on experiment %s", event.VisitorID, event.GoalID, attribution.ExperimentID),
		map[string]interface{}{
			"projectId":    event.ProjectID,
			"visitorId":    event.VisitorID,
			"goalId":       event.GoalID,
			"experimentId": attribution.ExperimentID,
			"variantId":    attribution.VariantID,
		})
	e.append(ctx, entry)
}

func (e *LiveLogEmitter) append(ctx context.Context, entry *domain.LiveLog) {
	if err := e.logs.AppendLiveLog(ctx, entry); err != nil {
		e.log.Warn("Failed to append live log entry",
			zap.String("log_type", entry.LogType),
			zap.Error(err))
	}
}
