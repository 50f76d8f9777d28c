package consumer

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awssqs "github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.uber.org/zap"

	"github.com/nuribostan/abTestYazilim/internal/queue"
)

const maxReceiveBackoff = 5 * time.Second

// ReceiverConfig configures the SQS receiver
type ReceiverConfig struct {
	MaxMessages     int32
	WaitTimeSeconds int32
	BufferSize      int
}

// Receiver long-polls the queue and feeds delivered batch records to the
// worker pool. One SQS message is one record.
type Receiver struct {
	consumer queue.QueueConsumer
	config   ReceiverConfig
	log      *zap.Logger
}

// NewReceiver creates a new SQS receiver
func NewReceiver(consumer queue.QueueConsumer, config ReceiverConfig, log *zap.Logger) *Receiver {
	return &Receiver{
		consumer: consumer,
		config:   config,
		log:      log,
	}
}

// Start polls until the context is cancelled, closing out on return so the
// workers drain and exit.
func (r *Receiver) Start(ctx context.Context, out chan<- types.Message) {
	defer close(out)

	backoff := time.Second

	for {
		select {
		case <-ctx.Done():
			r.log.Info("Receiver shutting down")
			return
		default:
		}

		messages, err := r.poll(ctx)
		if err != nil {
			r.log.Error("Error receiving records from SQS",
				zap.Duration("backoff", backoff),
				zap.Error(err))
			time.Sleep(backoff)
			if backoff < maxReceiveBackoff {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		if len(messages) == 0 {
			continue
		}

		r.log.Debug("Received records from SQS", zap.Int("record_count", len(messages)))

		for _, msg := range messages {
			select {
			case <-ctx.Done():
				r.log.Info("Receiver shutting down with records in flight")
				return
			case out <- msg:
			}
		}
	}
}

func (r *Receiver) poll(ctx context.Context) ([]types.Message, error) {
	result, err := r.consumer.ReceiveMessages(ctx, &awssqs.ReceiveMessageInput{
		QueueUrl:              aws.String(r.consumer.QueueURL()),
		MaxNumberOfMessages:   r.config.MaxMessages,
		WaitTimeSeconds:       r.config.WaitTimeSeconds,
		MessageAttributeNames: []string{"All"},
	})
	if err != nil {
		return nil, err
	}
	return result.Messages, nil
}
