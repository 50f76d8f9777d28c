package consumer

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awssqs "github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.uber.org/zap"

	"github.com/nuribostan/abTestYazilim/internal/pipeline"
	"github.com/nuribostan/abTestYazilim/internal/queue"
)

// RecordProcessor processes one delivered batch record to an outcome.
type RecordProcessor interface {
	ProcessRecord(ctx context.Context, record pipeline.Record) pipeline.RecordResult
}

// Worker drains SQS messages, runs each one through the pipeline as a
// single batch record and acknowledges by outcome: accepted records are
// deleted, failed records are left for visibility-timeout redelivery. That
// makes the queue itself the redelivery mechanism, at record granularity.
type Worker struct {
	consumer  queue.QueueConsumer
	processor RecordProcessor
	log       *zap.Logger
}

// NewWorker creates a record worker.
func NewWorker(consumer queue.QueueConsumer, processor RecordProcessor, log *zap.Logger) *Worker {
	return &Worker{
		consumer:  consumer,
		processor: processor,
		log:       log,
	}
}

// Start consumes messages until the input channel closes or the context is
// cancelled.
func (w *Worker) Start(ctx context.Context, in <-chan types.Message) {
	for {
		select {
		case <-ctx.Done():
			w.log.Info("Record worker shutting down")
			return
		case msg, ok := <-in:
			if !ok {
				w.log.Info("Record worker input channel closed")
				return
			}
			w.handleMessage(ctx, msg)
		}
	}
}

func (w *Worker) handleMessage(ctx context.Context, msg types.Message) {
	record := pipeline.Record{
		ID:   aws.ToString(msg.MessageId),
		Body: []byte(aws.ToString(msg.Body)),
	}

	result := w.processor.ProcessRecord(ctx, record)

	if !result.Accepted() {
		// Leave the message in the queue; it becomes visible again after
		// the visibility timeout and is redelivered unchanged.
		w.log.Warn("Record failed, leaving message for redelivery",
			zap.String("record_id", result.RecordID))
		return
	}

	if failed := result.FailedEvents(); failed > 0 {
		w.log.Warn("Record accepted with dropped events",
			zap.String("record_id", result.RecordID),
			zap.Int("event_count", len(result.Events)),
			zap.Int("dropped", failed))
	}

	if err := w.deleteMessage(ctx, msg); err != nil {
		// The record's effects are durable; redelivery will replay it.
		// Assignment uniqueness still holds, counters may re-apply.
		w.log.Error("Failed to delete accepted message",
			zap.String("record_id", result.RecordID),
			zap.Error(err))
	}
}

func (w *Worker) deleteMessage(ctx context.Context, msg types.Message) error {
	_, err := w.consumer.DeleteMessage(ctx, &awssqs.DeleteMessageInput{
		QueueUrl:      aws.String(w.consumer.QueueURL()),
		ReceiptHandle: msg.ReceiptHandle,
	})
	return err
}
