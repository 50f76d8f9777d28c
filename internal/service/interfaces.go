package service

import (
	"context"

	"github.com/nuribostan/abTestYazilim/internal/dto"
)

// EventServicer defines the interface for event publish operations
type EventServicer interface {
	PublishEvent(ctx context.Context, req *dto.PublishEventRequest) error
}

// ConfigServicer defines the interface for the configuration snapshot read
type ConfigServicer interface {
	GetProjectConfig(ctx context.Context, projectID string) (*dto.ProjectConfigResponse, error)
}

// StatsServicer defines the interface for aggregate and metrics reads
type StatsServicer interface {
	GetDailyStats(ctx context.Context, experimentID string, req *dto.GetDailyStatsRequest) (*dto.GetDailyStatsResponse, error)
	GetDailyMetrics(ctx context.Context, projectID string, req *dto.GetDailyMetricsRequest) (*dto.GetDailyMetricsResponse, error)
}
