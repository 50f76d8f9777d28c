package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/nuribostan/abTestYazilim/internal/domain"
)

func TestVisitorResolver_ClassifiesAndExtractsCampaign(t *testing.T) {
	repo := new(MockVisitorRepository)
	resolver := NewVisitorResolver(repo, zap.NewNop())

	var captured *domain.Visitor
	repo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.Visitor")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*domain.Visitor)
		}).
		Return(true, nil)

	ts := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	event := &domain.IncomingEvent{
		ProjectID: "proj-1",
		VisitorID: "vis-1",
		Timestamp: ts,
		URL:       "https://example.com/?utm_source=news&utm_medium=email&utm_campaign=spring",
		UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36 Edg/120.0.2210.91",
		Referrer:  "https://news.example.com/",
	}

	created, err := resolver.Resolve(context.Background(), event)

	assert.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "proj-1", captured.ProjectID)
	assert.Equal(t, "edge", captured.Browser)
	assert.Equal(t, "windows", captured.OS)
	assert.Equal(t, "desktop", captured.DeviceType)
	assert.Equal(t, "news", captured.UTMSource)
	assert.Equal(t, "email", captured.UTMMedium)
	assert.Equal(t, "spring", captured.UTMCampaign)
	assert.Equal(t, int64(1), captured.VisitCount)
	assert.Equal(t, int64(1), captured.PageViews)
	assert.Equal(t, ts, captured.FirstSeen)
	assert.Equal(t, ts, captured.LastSeen)
}

func TestVisitorResolver_MalformedURLSkipsAttribution(t *testing.T) {
	repo := new(MockVisitorRepository)
	resolver := NewVisitorResolver(repo, zap.NewNop())

	var captured *domain.Visitor
	repo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.Visitor")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*domain.Visitor)
		}).
		Return(false, nil)

	event := &domain.IncomingEvent{
		ProjectID: "proj-1",
		VisitorID: "vis-1",
		Timestamp: time.Now(),
		URL:       "http://bad url with spaces\x7f?utm_source=x",
		UserAgent: "curl/8.4.0",
	}

	created, err := resolver.Resolve(context.Background(), event)

	// A bad URL must not abort resolution, only campaign extraction.
	assert.NoError(t, err)
	assert.False(t, created)
	assert.Empty(t, captured.UTMSource)
	assert.Empty(t, captured.UTMMedium)
	assert.Empty(t, captured.UTMCampaign)
}

func TestVisitorResolver_SessionStartIncrementOnlyForExisting(t *testing.T) {
	repo := new(MockVisitorRepository)
	resolver := NewVisitorResolver(repo, zap.NewNop())

	event := &domain.IncomingEvent{ProjectID: "proj-1", VisitorID: "vis-1"}

	// Creating session start: counter already initialized by the upsert.
	assert.NoError(t, resolver.RecordSessionStart(context.Background(), event, true))
	repo.AssertNotCalled(t, "IncrementVisitCount", mock.Anything, mock.Anything, mock.Anything)

	repo.On("IncrementVisitCount", mock.Anything, "proj-1", "vis-1").Return(nil).Once()
	assert.NoError(t, resolver.RecordSessionStart(context.Background(), event, false))
	repo.AssertExpectations(t)
}
