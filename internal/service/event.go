package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/nuribostan/abTestYazilim/internal/domain"
	"github.com/nuribostan/abTestYazilim/internal/dto"
	"github.com/nuribostan/abTestYazilim/internal/queue"
)

// EventService publishes server-side events into the ingestion queue.
type EventService struct {
	publisher queue.QueuePublisher
	log       *zap.Logger
}

// NewEventService creates a new event service
func NewEventService(publisher queue.QueuePublisher, log *zap.Logger) *EventService {
	return &EventService{
		publisher: publisher,
		log:       log,
	}
}

// PublishEvent validates one event and hands it to the queue. The consumer
// applies the full pipeline semantics on delivery; this edge only rejects
// events the pipeline would drop unconditionally.
func (s *EventService) PublishEvent(ctx context.Context, req *dto.PublishEventRequest) error {
	currentTime := time.Now().Unix()
	if req.Timestamp > currentTime+1 {
		s.log.Warn("Timestamp validation failed: future timestamp",
			zap.Int64("event_timestamp", req.Timestamp),
			zap.Int64("current_time", currentTime),
			zap.String("event_type", req.EventType))
		return fmt.Errorf("timestamp cannot be in the future: %d > %d", req.Timestamp, currentTime)
	}

	event := &domain.IncomingEvent{
		ProjectID:             req.ProjectID,
		VisitorID:             req.VisitorID,
		SessionID:             req.SessionID,
		EventType:             req.EventType,
		EventName:             req.EventName,
		URL:                   req.URL,
		UserAgent:             req.UserAgent,
		Referrer:              req.Referrer,
		ExperimentID:          req.ExperimentID,
		VariantID:             req.VariantID,
		GoalID:                req.GoalID,
		GoalName:              req.GoalName,
		GoalType:              req.GoalType,
		AttributedExperiments: req.AttributedExperiments,
		Value:                 req.Value,
		Currency:              req.Currency,
	}
	if req.Timestamp > 0 {
		event.Timestamp = time.Unix(req.Timestamp, 0).UTC()
	}

	if err := s.publisher.PublishEvent(ctx, event); err != nil {
		return fmt.Errorf("failed to publish event to queue: %w", err)
	}

	return nil
}
