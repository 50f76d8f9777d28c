// Package consumer runs the ingestion worker: an SQS receiver stage
// fanning out to a pool of record workers. Records are independent, so
// workers process them concurrently; events inside one record stay
// sequential inside the pipeline.
package consumer

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.uber.org/zap"

	"github.com/nuribostan/abTestYazilim/internal/config"
	"github.com/nuribostan/abTestYazilim/internal/queue"
)

// Consumer orchestrates the receiver and the record worker pool.
type Consumer struct {
	receiver *Receiver
	workers  []*Worker
	log      *zap.Logger
}

// NewConsumer creates a consumer from configuration.
func NewConsumer(cfg *config.Config, queueConsumer queue.QueueConsumer, processor RecordProcessor, log *zap.Logger) *Consumer {
	receiver := NewReceiver(queueConsumer, ReceiverConfig{
		MaxMessages:     cfg.Consumer.MaxMessages,
		WaitTimeSeconds: cfg.Consumer.WaitTimeSeconds,
		BufferSize:      100,
	}, log)

	workerCount := cfg.Consumer.Workers
	if workerCount < 1 {
		workerCount = 1
	}

	workers := make([]*Worker, workerCount)
	for i := range workers {
		workers[i] = NewWorker(queueConsumer, processor, log)
	}

	return &Consumer{
		receiver: receiver,
		workers:  workers,
		log:      log,
	}
}

// Start runs the receiver and workers until the context is cancelled and
// all stages have drained.
func (c *Consumer) Start(ctx context.Context) error {
	messageChan := make(chan types.Message, c.receiver.config.BufferSize)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		c.receiver.Start(ctx, messageChan)
	}()

	for _, worker := range c.workers {
		wg.Add(1)
		go func(w *Worker) {
			defer wg.Done()
			w.Start(ctx, messageChan)
		}(worker)
	}

	wg.Wait()
	return nil
}
