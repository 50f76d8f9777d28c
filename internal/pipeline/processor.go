// Package pipeline implements the event ingestion core: batch record
// decoding, visitor identity resolution, event-type routing, sticky
// assignment tracking, conversion attribution and daily stat aggregation.
//
// Records are independent of each other and may be processed concurrently
// by the caller. Events inside one record are processed sequentially in
// payload order; a conversion later in a record may depend on an
// assignment made earlier in the same record.
package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nuribostan/abTestYazilim/internal/domain"
	"github.com/nuribostan/abTestYazilim/internal/repository"
)

// errMissingCorrelation marks events that cannot be tied to a visitor.
var errMissingCorrelation = errors.New("event missing projectId, visitorId or eventType")

// Stores bundles the repositories the processor writes through.
type Stores struct {
	Visitors    repository.VisitorRepository
	Events      repository.EventRepository
	Assignments repository.AssignmentRepository
	Conversions repository.ConversionRepository
	Counters    repository.CounterRepository
	DailyStats  repository.DailyStatRepository
	LiveLogs    repository.LiveLogRepository
}

// Processor turns delivered batch records into durable visitor state,
// assignments, conversions and aggregates, reporting an explicit outcome
// per record.
type Processor struct {
	events      repository.EventRepository
	resolver    *VisitorResolver
	assignments *AssignmentTracker
	conversions *ConversionAttributor
	liveLogs    *LiveLogEmitter
	log         *zap.Logger
}

// NewProcessor wires the pipeline components over the given stores.
func NewProcessor(stores Stores, log *zap.Logger) *Processor {
	dailyStats := NewDailyStats(stores.DailyStats, log)
	liveLogs := NewLiveLogEmitter(stores.LiveLogs, log)

	return &Processor{
		events:      stores.Events,
		resolver:    NewVisitorResolver(stores.Visitors, log),
		assignments: NewAssignmentTracker(stores.Assignments, stores.Counters, dailyStats, log),
		conversions: NewConversionAttributor(stores.Conversions, stores.Counters, dailyStats, liveLogs, log),
		liveLogs:    liveLogs,
		log:         log,
	}
}

// ProcessBatch processes the records of one delivered batch and returns one
// result per record, in input order.
func (p *Processor) ProcessBatch(ctx context.Context, records []Record) []RecordResult {
	results := make([]RecordResult, 0, len(records))
	for _, record := range records {
		results = append(results, p.ProcessRecord(ctx, record))
	}
	return results
}

// ProcessRecord decodes one record and applies its events in order. A body
// that fails decoding fails the record wholesale with the body echoed back
// for redelivery. Once decoded, the record is always accepted: per-event
// failures are logged and reported in the result but never bounce the
// record, so one malformed event cannot cause a redelivery loop for an
// otherwise valid batch.
func (p *Processor) ProcessRecord(ctx context.Context, record Record) RecordResult {
	rawEvents, err := DecodeRecord(record.Body)
	if err != nil {
		p.log.Warn("Failed to decode record",
			zap.String("record_id", record.ID),
			zap.Error(err))
		return RecordResult{
			RecordID: record.ID,
			Status:   RecordFailed,
			Body:     record.Body,
		}
	}

	outcomes := make([]EventOutcome, 0, len(rawEvents))
	for i, raw := range rawEvents {
		outcome := p.processEvent(ctx, i, raw)
		if !outcome.OK() {
			p.log.Warn("Event dropped",
				zap.String("record_id", record.ID),
				zap.Int("index", i),
				zap.String("reason", string(outcome.Reason)),
				zap.Error(outcome.Err))
		}
		outcomes = append(outcomes, outcome)
	}

	return RecordResult{
		RecordID: record.ID,
		Status:   RecordAccepted,
		Body:     record.Body,
		Events:   outcomes,
	}
}

func (p *Processor) processEvent(ctx context.Context, index int, raw json.RawMessage) EventOutcome {
	var event domain.IncomingEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		return EventOutcome{Index: index, Reason: FailureValidation, Err: err}
	}
	event.Raw = raw

	if event.ProjectID == "" || event.VisitorID == "" || event.EventType == "" {
		return EventOutcome{
			Index:     index,
			EventType: event.EventType,
			Reason:    FailureValidation,
			Err:       errMissingCorrelation,
		}
	}

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	visitorCreated, err := p.resolver.Resolve(ctx, &event)
	if err != nil {
		return EventOutcome{Index: index, EventType: event.EventType, Reason: FailurePersistence, Err: err}
	}

	if err := p.route(ctx, &event, visitorCreated); err != nil {
		return EventOutcome{Index: index, EventType: event.EventType, Reason: FailurePersistence, Err: err}
	}

	return EventOutcome{Index: index, EventType: event.EventType}
}

// route dispatches one resolved event to exactly one handler.
func (p *Processor) route(ctx context.Context, event *domain.IncomingEvent, visitorCreated bool) error {
	switch domain.EventType(event.EventType) {
	case domain.EventSessionStart:
		return p.handleSessionStart(ctx, event, visitorCreated)
	case domain.EventExperimentView:
		return p.handleExperimentView(ctx, event)
	case domain.EventGoalConversion:
		return p.handleGoalConversion(ctx, event)
	default:
		// CUSTOM_EVENT, PAGE_VIEW, CLICK, FORM_SUBMIT and anything
		// unrecognized: append a bare event row carrying the original
		// type and payload.
		return p.appendEventRow(ctx, event)
	}
}

func (p *Processor) handleSessionStart(ctx context.Context, event *domain.IncomingEvent, visitorCreated bool) error {
	if err := p.resolver.RecordSessionStart(ctx, event, visitorCreated); err != nil {
		return err
	}
	return p.appendEventRow(ctx, event)
}

func (p *Processor) handleExperimentView(ctx context.Context, event *domain.IncomingEvent) error {
	// Only a view carrying both ids can establish an assignment; the
	// event row is appended either way.
	if event.ExperimentID != "" && event.VariantID != "" {
		if _, err := p.assignments.Track(ctx, event); err != nil {
			return err
		}
		if err := p.appendEventRow(ctx, event); err != nil {
			return err
		}
		p.liveLogs.Assigned(ctx, event)
		return nil
	}

	return p.appendEventRow(ctx, event)
}

func (p *Processor) handleGoalConversion(ctx context.Context, event *domain.IncomingEvent) error {
	_, err := p.conversions.Attribute(ctx, event)
	return err
}

func (p *Processor) appendEventRow(ctx context.Context, event *domain.IncomingEvent) error {
	row := &domain.Event{
		EventID:      uuid.NewString(),
		ProjectID:    event.ProjectID,
		VisitorID:    event.VisitorID,
		SessionID:    event.SessionID,
		EventType:    event.EventType,
		EventName:    event.EventName,
		URL:          event.URL,
		ExperimentID: event.ExperimentID,
		VariantID:    event.VariantID,
		GoalID:       event.GoalID,
		Payload:      string(event.Raw),
		Timestamp:    event.Timestamp,
		ProcessedAt:  time.Now().UTC(),
	}
	return p.events.Append(ctx, row)
}
