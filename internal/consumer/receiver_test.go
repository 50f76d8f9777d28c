package consumer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockQueueConsumer is a mock implementation of queue.QueueConsumer
type MockQueueConsumer struct {
	mock.Mock
}

func (m *MockQueueConsumer) ReceiveMessages(ctx context.Context, input *sqs.ReceiveMessageInput) (*sqs.ReceiveMessageOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqs.ReceiveMessageOutput), args.Error(1)
}

func (m *MockQueueConsumer) DeleteMessage(ctx context.Context, input *sqs.DeleteMessageInput) (*sqs.DeleteMessageOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqs.DeleteMessageOutput), args.Error(1)
}

func (m *MockQueueConsumer) QueueURL() string {
	args := m.Called()
	return args.String(0)
}

func TestReceiver_Start_Success(t *testing.T) {
	mockConsumer := new(MockQueueConsumer)
	log := zap.NewNop()

	config := ReceiverConfig{
		MaxMessages:     10,
		WaitTimeSeconds: 20,
		BufferSize:      100,
	}

	receiver := NewReceiver(mockConsumer, config, log)

	mockConsumer.On("QueueURL").Return("https://sqs.eu-central-1.amazonaws.com/123/events-queue")

	messages := []types.Message{
		{
			MessageId: aws.String("msg-1"),
			Body:      aws.String(`eyJldmVudFR5cGUiOiJQQUdFX1ZJRVcifQ==`),
		},
		{
			MessageId: aws.String("msg-2"),
			Body:      aws.String(`eyJldmVudFR5cGUiOiJDTElDSyJ9`),
		},
	}

	mockConsumer.On("ReceiveMessages", mock.Anything, mock.AnythingOfType("*sqs.ReceiveMessageInput")).
		Return(&sqs.ReceiveMessageOutput{Messages: messages}, nil).Once()
	mockConsumer.On("ReceiveMessages", mock.Anything, mock.AnythingOfType("*sqs.ReceiveMessageInput")).
		Return(&sqs.ReceiveMessageOutput{Messages: []types.Message{}}, nil).Maybe()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	out := make(chan types.Message, 10)

	go receiver.Start(ctx, out)

	received := make([]types.Message, 0, 2)
	timeout := time.After(500 * time.Millisecond)
	for len(received) < 2 {
		select {
		case msg := <-out:
			received = append(received, msg)
		case <-timeout:
			t.Fatal("timed out waiting for messages")
		}
	}

	assert.Equal(t, "msg-1", aws.ToString(received[0].MessageId))
	assert.Equal(t, "msg-2", aws.ToString(received[1].MessageId))
}

func TestReceiver_Start_ReceiveErrorRetries(t *testing.T) {
	mockConsumer := new(MockQueueConsumer)
	log := zap.NewNop()

	receiver := NewReceiver(mockConsumer, ReceiverConfig{MaxMessages: 10, WaitTimeSeconds: 1}, log)

	mockConsumer.On("QueueURL").Return("https://sqs.eu-central-1.amazonaws.com/123/events-queue")
	mockConsumer.On("ReceiveMessages", mock.Anything, mock.AnythingOfType("*sqs.ReceiveMessageInput")).
		Return(nil, errors.New("network error")).Once()
	mockConsumer.On("ReceiveMessages", mock.Anything, mock.AnythingOfType("*sqs.ReceiveMessageInput")).
		Return(&sqs.ReceiveMessageOutput{Messages: []types.Message{}}, nil).Maybe()

	ctx, cancel := context.WithTimeout(context.Background(), 1500*time.Millisecond)
	defer cancel()

	out := make(chan types.Message, 10)
	done := make(chan struct{})
	go func() {
		receiver.Start(ctx, out)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("receiver did not shut down")
	}

	// The error did not stop the loop: at least one more receive happened.
	mockConsumer.AssertCalled(t, "ReceiveMessages", mock.Anything, mock.Anything)
}

func TestReceiver_Start_ClosesOutputOnShutdown(t *testing.T) {
	mockConsumer := new(MockQueueConsumer)
	log := zap.NewNop()

	receiver := NewReceiver(mockConsumer, ReceiverConfig{MaxMessages: 10, WaitTimeSeconds: 1}, log)

	mockConsumer.On("QueueURL").Return("https://sqs.eu-central-1.amazonaws.com/123/events-queue").Maybe()
	mockConsumer.On("ReceiveMessages", mock.Anything, mock.AnythingOfType("*sqs.ReceiveMessageInput")).
		Return(&sqs.ReceiveMessageOutput{Messages: []types.Message{}}, nil).Maybe()

	ctx, cancel := context.WithCancel(context.Background())
	out := make(chan types.Message, 10)

	done := make(chan struct{})
	go func() {
		receiver.Start(ctx, out)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("receiver did not stop after cancellation")
	}

	_, open := <-out
	assert.False(t, open, "output channel should be closed after shutdown")
}
