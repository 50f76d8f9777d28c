package queue

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/nuribostan/abTestYazilim/internal/domain"
)

// QueuePublisher publishes events into the ingestion queue as encoded
// batch records.
type QueuePublisher interface {
	PublishEvent(ctx context.Context, event *domain.IncomingEvent) error
}

// QueueConsumer defines the interface for consuming messages from a queue
type QueueConsumer interface {
	ReceiveMessages(ctx context.Context, input *sqs.ReceiveMessageInput) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, input *sqs.DeleteMessageInput) (*sqs.DeleteMessageOutput, error)
	QueueURL() string
}
