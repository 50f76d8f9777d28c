package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/nuribostan/abTestYazilim/internal/domain"
	"github.com/nuribostan/abTestYazilim/internal/dto"
	"github.com/nuribostan/abTestYazilim/internal/repository"
)

// MockQueuePublisher is a mock implementation of queue.QueuePublisher
type MockQueuePublisher struct {
	mock.Mock
}

func (m *MockQueuePublisher) PublishEvent(ctx context.Context, event *domain.IncomingEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockExperimentRepository is a mock implementation of repository.ExperimentRepository
type MockExperimentRepository struct {
	mock.Mock
}

func (m *MockExperimentRepository) ListRunning(ctx context.Context, projectID string) ([]domain.Experiment, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Experiment), args.Error(1)
}

func (m *MockExperimentRepository) ListVariants(ctx context.Context, experimentIDs []string) ([]domain.Variant, error) {
	args := m.Called(ctx, experimentIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Variant), args.Error(1)
}

func (m *MockExperimentRepository) ListGoals(ctx context.Context, projectID string) ([]domain.Goal, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Goal), args.Error(1)
}

// MockDailyStatRepository is a mock implementation of repository.DailyStatRepository
type MockDailyStatRepository struct {
	mock.Mock
}

func (m *MockDailyStatRepository) IncrementImpressions(ctx context.Context, experimentID string, day time.Time) error {
	args := m.Called(ctx, experimentID, day)
	return args.Error(0)
}

func (m *MockDailyStatRepository) IncrementConversions(ctx context.Context, experimentID string, day time.Time, revenue float64) error {
	args := m.Called(ctx, experimentID, day, revenue)
	return args.Error(0)
}

func (m *MockDailyStatRepository) FindRange(ctx context.Context, experimentID string, from, to time.Time) ([]domain.ExperimentDailyStat, error) {
	args := m.Called(ctx, experimentID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExperimentDailyStat), args.Error(1)
}

// MockEventMetricsRepository is a mock implementation of repository.EventMetricsRepository
type MockEventMetricsRepository struct {
	mock.Mock
}

func (m *MockEventMetricsRepository) GetDailyMetrics(ctx context.Context, query repository.EventMetricsQuery) ([]repository.EventMetricsRow, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.EventMetricsRow), args.Error(1)
}

var (
	_ EventServicer  = (*EventService)(nil)
	_ ConfigServicer = (*ConfigService)(nil)
	_ StatsServicer  = (*StatsService)(nil)
)

func TestEventService_PublishEvent_Success(t *testing.T) {
	mockPublisher := new(MockQueuePublisher)
	svc := NewEventService(mockPublisher, zap.NewNop())

	value := 49.99
	req := &dto.PublishEventRequest{
		ProjectID: "proj-1",
		VisitorID: "visitor-1",
		SessionID: "session-1",
		EventType: "GOAL_CONVERSION",
		GoalID:    "goal-1",
		Timestamp: time.Now().Unix() - 60,
		Value:     &value,
		Currency:  "EUR",
		AttributedExperiments: []domain.Attribution{
			{ExperimentID: "exp-1", VariantID: "var-a"},
		},
	}

	mockPublisher.On("PublishEvent", mock.Anything, mock.MatchedBy(func(e *domain.IncomingEvent) bool {
		return e.ProjectID == "proj-1" &&
			e.VisitorID == "visitor-1" &&
			e.EventType == "GOAL_CONVERSION" &&
			e.Currency == "EUR" &&
			len(e.AttributedExperiments) == 1 &&
			!e.Timestamp.IsZero()
	})).Return(nil)

	err := svc.PublishEvent(context.Background(), req)

	assert.NoError(t, err)
	mockPublisher.AssertExpectations(t)
}

func TestEventService_PublishEvent_FutureTimestamp(t *testing.T) {
	mockPublisher := new(MockQueuePublisher)
	svc := NewEventService(mockPublisher, zap.NewNop())

	req := &dto.PublishEventRequest{
		ProjectID: "proj-1",
		VisitorID: "visitor-1",
		EventType: "PAGE_VIEW",
		Timestamp: time.Now().Unix() + 3600,
	}

	err := svc.PublishEvent(context.Background(), req)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "future")
	mockPublisher.AssertNotCalled(t, "PublishEvent", mock.Anything, mock.Anything)
}

func TestEventService_PublishEvent_ZeroTimestampLeftForConsumer(t *testing.T) {
	mockPublisher := new(MockQueuePublisher)
	svc := NewEventService(mockPublisher, zap.NewNop())

	req := &dto.PublishEventRequest{
		ProjectID: "proj-1",
		VisitorID: "visitor-1",
		EventType: "PAGE_VIEW",
	}

	mockPublisher.On("PublishEvent", mock.Anything, mock.MatchedBy(func(e *domain.IncomingEvent) bool {
		return e.Timestamp.IsZero()
	})).Return(nil)

	err := svc.PublishEvent(context.Background(), req)

	assert.NoError(t, err)
	mockPublisher.AssertExpectations(t)
}

func TestEventService_PublishEvent_QueueError(t *testing.T) {
	mockPublisher := new(MockQueuePublisher)
	svc := NewEventService(mockPublisher, zap.NewNop())

	req := &dto.PublishEventRequest{
		ProjectID: "proj-1",
		VisitorID: "visitor-1",
		EventType: "PAGE_VIEW",
	}

	mockPublisher.On("PublishEvent", mock.Anything, mock.Anything).
		Return(errors.New("queue unavailable"))

	err := svc.PublishEvent(context.Background(), req)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish event")
}

func TestConfigService_GetProjectConfig_Success(t *testing.T) {
	mockRepo := new(MockExperimentRepository)
	svc := NewConfigService(mockRepo, zap.NewNop())

	mockRepo.On("ListRunning", mock.Anything, "proj-1").Return([]domain.Experiment{
		{ExperimentID: "exp-1", ProjectID: "proj-1", Name: "Pricing CTA color", Status: "running"},
		{ExperimentID: "exp-2", ProjectID: "proj-1", Name: "Checkout layout", Status: "running"},
	}, nil)
	mockRepo.On("ListVariants", mock.Anything, []string{"exp-1", "exp-2"}).Return([]domain.Variant{
		{VariantID: "var-a", ExperimentID: "exp-1", Name: "Control", IsControl: true},
		{VariantID: "var-b", ExperimentID: "exp-1", Name: "Blue CTA"},
		{VariantID: "var-c", ExperimentID: "exp-2", Name: "Control", IsControl: true},
	}, nil)
	mockRepo.On("ListGoals", mock.Anything, "proj-1").Return([]domain.Goal{
		{GoalID: "goal-1", ProjectID: "proj-1", Name: "Checkout completed", GoalType: "purchase"},
	}, nil)

	resp, err := svc.GetProjectConfig(context.Background(), "proj-1")

	assert.NoError(t, err)
	assert.Equal(t, "proj-1", resp.ProjectID)
	assert.Len(t, resp.Experiments, 2)
	assert.Len(t, resp.Experiments[0].Variants, 2)
	assert.True(t, resp.Experiments[0].Variants[0].IsControl)
	assert.Len(t, resp.Experiments[1].Variants, 1)
	assert.Len(t, resp.Goals, 1)
	assert.Equal(t, "purchase", resp.Goals[0].GoalType)
}

func TestConfigService_GetProjectConfig_NoRunningExperiments(t *testing.T) {
	mockRepo := new(MockExperimentRepository)
	svc := NewConfigService(mockRepo, zap.NewNop())

	mockRepo.On("ListRunning", mock.Anything, "proj-1").Return([]domain.Experiment{}, nil)
	mockRepo.On("ListGoals", mock.Anything, "proj-1").Return([]domain.Goal{}, nil)

	resp, err := svc.GetProjectConfig(context.Background(), "proj-1")

	assert.NoError(t, err)
	assert.Empty(t, resp.Experiments)
	assert.Empty(t, resp.Goals)
	mockRepo.AssertNotCalled(t, "ListVariants", mock.Anything, mock.Anything)
}

func TestConfigService_GetProjectConfig_RepositoryError(t *testing.T) {
	mockRepo := new(MockExperimentRepository)
	svc := NewConfigService(mockRepo, zap.NewNop())

	mockRepo.On("ListRunning", mock.Anything, "proj-1").
		Return(nil, errors.New("connection reset"))

	resp, err := svc.GetProjectConfig(context.Background(), "proj-1")

	assert.Error(t, err)
	assert.Nil(t, resp)
}

func TestStatsService_GetDailyStats_Success(t *testing.T) {
	mockStats := new(MockDailyStatRepository)
	mockMetrics := new(MockEventMetricsRepository)
	svc := NewStatsService(mockStats, mockMetrics, zap.NewNop())

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	mockStats.On("FindRange", mock.Anything, "exp-1", from, to).Return([]domain.ExperimentDailyStat{
		{ExperimentID: "exp-1", Date: from, Impressions: 100, Conversions: 7, Revenue: 349.93},
		{ExperimentID: "exp-1", Date: to, Impressions: 180, Conversions: 12, Revenue: 599.88},
	}, nil)

	resp, err := svc.GetDailyStats(context.Background(), "exp-1", &dto.GetDailyStatsRequest{
		From: "2026-03-01",
		To:   "2026-03-14",
	})

	assert.NoError(t, err)
	assert.Equal(t, "exp-1", resp.ExperimentID)
	assert.Len(t, resp.Stats, 2)
	assert.Equal(t, "2026-03-01", resp.Stats[0].Date)
	assert.Equal(t, int64(100), resp.Stats[0].Impressions)
	assert.Equal(t, 599.88, resp.Stats[1].Revenue)
}

func TestStatsService_GetDailyStats_InvalidDate(t *testing.T) {
	svc := NewStatsService(new(MockDailyStatRepository), new(MockEventMetricsRepository), zap.NewNop())

	_, err := svc.GetDailyStats(context.Background(), "exp-1", &dto.GetDailyStatsRequest{
		From: "03/01/2026",
		To:   "2026-03-14",
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid from date")
}

func TestStatsService_GetDailyStats_InvertedRange(t *testing.T) {
	svc := NewStatsService(new(MockDailyStatRepository), new(MockEventMetricsRepository), zap.NewNop())

	_, err := svc.GetDailyStats(context.Background(), "exp-1", &dto.GetDailyStatsRequest{
		From: "2026-03-14",
		To:   "2026-03-01",
	})

	assert.Error(t, err)
}

func TestStatsService_GetDailyMetrics_Success(t *testing.T) {
	mockStats := new(MockDailyStatRepository)
	mockMetrics := new(MockEventMetricsRepository)
	svc := NewStatsService(mockStats, mockMetrics, zap.NewNop())

	mockMetrics.On("GetDailyMetrics", mock.Anything, mock.MatchedBy(func(q repository.EventMetricsQuery) bool {
		return q.ProjectID == "proj-1" && q.EventType == "EXPERIMENT_VIEW"
	})).Return([]repository.EventMetricsRow{
		{Day: "2026-03-14", TotalCount: 1500, UniqueCount: 820},
	}, nil)

	resp, err := svc.GetDailyMetrics(context.Background(), "proj-1", &dto.GetDailyMetricsRequest{
		EventType: "EXPERIMENT_VIEW",
		From:      1772668800,
		To:        1772755199,
	})

	assert.NoError(t, err)
	assert.Len(t, resp.Days, 1)
	assert.Equal(t, uint64(1500), resp.Days[0].TotalCount)
	assert.Equal(t, uint64(820), resp.Days[0].UniqueCount)
}

func TestStatsService_GetDailyMetrics_InvertedRange(t *testing.T) {
	svc := NewStatsService(new(MockDailyStatRepository), new(MockEventMetricsRepository), zap.NewNop())

	_, err := svc.GetDailyMetrics(context.Background(), "proj-1", &dto.GetDailyMetricsRequest{
		EventType: "EXPERIMENT_VIEW",
		From:      200,
		To:        100,
	})

	assert.Error(t, err)
}
