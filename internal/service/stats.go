package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/nuribostan/abTestYazilim/internal/dto"
	"github.com/nuribostan/abTestYazilim/internal/repository"
)

const statDateLayout = "2006-01-02"

// StatsService serves aggregate reads: daily stat rows from the entity
// store and per-day event counts from the event sink.
type StatsService struct {
	dailyStats repository.DailyStatRepository
	metrics    repository.EventMetricsRepository
	log        *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(dailyStats repository.DailyStatRepository, metrics repository.EventMetricsRepository, log *zap.Logger) *StatsService {
	return &StatsService{
		dailyStats: dailyStats,
		metrics:    metrics,
		log:        log,
	}
}

// GetDailyStats returns the aggregated rows for one experiment over an
// inclusive date range. Dates are UTC days.
func (s *StatsService) GetDailyStats(ctx context.Context, experimentID string, req *dto.GetDailyStatsRequest) (*dto.GetDailyStatsResponse, error) {
	from, err := time.ParseInLocation(statDateLayout, req.From, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid from date %q: %w", req.From, err)
	}
	to, err := time.ParseInLocation(statDateLayout, req.To, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid to date %q: %w", req.To, err)
	}
	if from.After(to) {
		return nil, fmt.Errorf("from date must not be after to date")
	}

	stats, err := s.dailyStats.FindRange(ctx, experimentID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to read daily stats: %w", err)
	}

	response := &dto.GetDailyStatsResponse{
		ExperimentID: experimentID,
		From:         req.From,
		To:           req.To,
		Stats:        make([]dto.DailyStatData, 0, len(stats)),
	}
	for _, stat := range stats {
		response.Stats = append(response.Stats, dto.DailyStatData{
			Date:        stat.Date.UTC().Format(statDateLayout),
			Impressions: stat.Impressions,
			Conversions: stat.Conversions,
			Revenue:     stat.Revenue,
		})
	}

	return response, nil
}

// GetDailyMetrics returns per-day event counts and unique visitor counts
// for one project and event type from the event sink.
func (s *StatsService) GetDailyMetrics(ctx context.Context, projectID string, req *dto.GetDailyMetricsRequest) (*dto.GetDailyMetricsResponse, error) {
	if req.From > req.To {
		s.log.Warn("Invalid time range for metrics",
			zap.Int64("from", req.From),
			zap.Int64("to", req.To),
			zap.String("project_id", projectID))
		return nil, fmt.Errorf("from timestamp must be less than or equal to to timestamp")
	}

	rows, err := s.metrics.GetDailyMetrics(ctx, repository.EventMetricsQuery{
		ProjectID: projectID,
		EventType: req.EventType,
		From:      time.Unix(req.From, 0).UTC(),
		To:        time.Unix(req.To, 0).UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get daily metrics: %w", err)
	}

	response := &dto.GetDailyMetricsResponse{
		ProjectID: projectID,
		EventType: req.EventType,
		From:      req.From,
		To:        req.To,
		Days:      make([]dto.DailyMetricData, 0, len(rows)),
	}
	for _, row := range rows {
		response.Days = append(response.Days, dto.DailyMetricData{
			Day:         row.Day,
			TotalCount:  row.TotalCount,
			UniqueCount: row.UniqueCount,
		})
	}

	return response, nil
}
