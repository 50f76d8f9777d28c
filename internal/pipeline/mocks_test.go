package pipeline

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/nuribostan/abTestYazilim/internal/domain"
	"github.com/nuribostan/abTestYazilim/internal/repository"
)

// MockVisitorRepository is a mock implementation of repository.VisitorRepository
type MockVisitorRepository struct {
	mock.Mock
}

func (m *MockVisitorRepository) Upsert(ctx context.Context, visitor *domain.Visitor) (bool, error) {
	args := m.Called(ctx, visitor)
	return args.Bool(0), args.Error(1)
}

func (m *MockVisitorRepository) IncrementVisitCount(ctx context.Context, projectID, visitorID string) error {
	args := m.Called(ctx, projectID, visitorID)
	return args.Error(0)
}

// MockEventRepository is a mock implementation of repository.EventRepository
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Append(ctx context.Context, event *domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockAssignmentRepository is a mock implementation of repository.AssignmentRepository
type MockAssignmentRepository struct {
	mock.Mock
}

func (m *MockAssignmentRepository) Create(ctx context.Context, assignment *domain.VariantAssignment) (bool, error) {
	args := m.Called(ctx, assignment)
	return args.Bool(0), args.Error(1)
}

func (m *MockAssignmentRepository) FindByVisitor(ctx context.Context, visitorID string) ([]domain.VariantAssignment, error) {
	args := m.Called(ctx, visitorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VariantAssignment), args.Error(1)
}

// MockConversionRepository is a mock implementation of repository.ConversionRepository
type MockConversionRepository struct {
	mock.Mock
}

func (m *MockConversionRepository) AppendConversion(ctx context.Context, conversion *domain.GoalConversion) error {
	args := m.Called(ctx, conversion)
	return args.Error(0)
}

// MockCounterRepository is a mock implementation of repository.CounterRepository
type MockCounterRepository struct {
	mock.Mock
}

func (m *MockCounterRepository) IncrementVariantVisitors(ctx context.Context, variantID string) error {
	args := m.Called(ctx, variantID)
	return args.Error(0)
}

func (m *MockCounterRepository) IncrementVariantConversions(ctx context.Context, variantID string) error {
	args := m.Called(ctx, variantID)
	return args.Error(0)
}

func (m *MockCounterRepository) IncrementExperimentVisitors(ctx context.Context, experimentID string) error {
	args := m.Called(ctx, experimentID)
	return args.Error(0)
}

func (m *MockCounterRepository) IncrementExperimentConversions(ctx context.Context, experimentID string) error {
	args := m.Called(ctx, experimentID)
	return args.Error(0)
}

func (m *MockCounterRepository) IncrementExperimentGoalConversions(ctx context.Context, experimentID, goalID string) error {
	args := m.Called(ctx, experimentID, goalID)
	return args.Error(0)
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

// MockLiveLogRepository is a mock implementation of repository.LiveLogRepository
type MockLiveLogRepository struct {
	mock.Mock
}

func (m *MockLiveLogRepository) AppendLiveLog(ctx context.Context, entry *domain.LiveLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// newMockStores returns a Stores wired with fresh mocks plus the mocks
// themselves for expectations.
func newMockStores() (Stores, *mockSet) {
	set := &mockSet{
		visitors:    new(MockVisitorRepository),
		events:      new(MockEventRepository),
		assignments: new(MockAssignmentRepository),
		conversions: new(MockConversionRepository),
		counters:    new(MockCounterRepository),
		dailyStats:  new(MockDailyStatRepository),
		liveLogs:    new(MockLiveLogRepository),
	}

	stores := Stores{
		Visitors:    set.visitors,
		Events:      set.events,
		Assignments: set.assignments,
		Conversions: set.conversions,
		Counters:    set.counters,
		DailyStats:  set.dailyStats,
		LiveLogs:    set.liveLogs,
	}

	return stores, set
}

type mockSet struct {
	visitors    *MockVisitorRepository
	events      *MockEventRepository
	assignments *MockAssignmentRepository
	conversions *MockConversionRepository
	counters    *MockCounterRepository
	dailyStats  *MockDailyStatRepository
	liveLogs    *MockLiveLogRepository
}

var _ repository.VisitorRepository = (*MockVisitorRepository)(nil)
var _ repository.AssignmentRepository = (*MockAssignmentRepository)(nil)
var _ repository.DailyStatRepository = (*MockDailyStatRepository)(nil)
