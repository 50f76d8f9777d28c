package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/nuribostan/abTestYazilim/internal/dto"
	"github.com/nuribostan/abTestYazilim/internal/repository"
)

// ConfigService assembles the read-only configuration snapshot served to
// client SDKs: running experiments with their variants, plus project goals.
type ConfigService struct {
	experiments repository.ExperimentRepository
	log         *zap.Logger
}

// NewConfigService creates a new config service
func NewConfigService(experiments repository.ExperimentRepository, log *zap.Logger) *ConfigService {
	return &ConfigService{
		experiments: experiments,
		log:         log,
	}
}

// GetProjectConfig returns the snapshot for one project. Counters are
// deliberately omitted; the snapshot is configuration, not analytics.
func (s *ConfigService) GetProjectConfig(ctx context.Context, projectID string) (*dto.ProjectConfigResponse, error) {
	running, err := s.experiments.ListRunning(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list running experiments: %w", err)
	}

	experimentIDs := make([]string, 0, len(running))
	for _, exp := range running {
		experimentIDs = append(experimentIDs, exp.ExperimentID)
	}

	variantsByExperiment := make(map[string][]dto.VariantConfig)
	if len(experimentIDs) > 0 {
		variants, err := s.experiments.ListVariants(ctx, experimentIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to list variants: %w", err)
		}
		for _, v := range variants {
			variantsByExperiment[v.ExperimentID] = append(variantsByExperiment[v.ExperimentID], dto.VariantConfig{
				VariantID: v.VariantID,
				Name:      v.Name,
				IsControl: v.IsControl,
				Weight:    v.Weight,
			})
		}
	}

	goals, err := s.experiments.ListGoals(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	response := &dto.ProjectConfigResponse{
		ProjectID:   projectID,
		Experiments: make([]dto.ExperimentConfig, 0, len(running)),
		Goals:       make([]dto.GoalConfig, 0, len(goals)),
	}

	for _, exp := range running {
		response.Experiments = append(response.Experiments, dto.ExperimentConfig{
			ExperimentID: exp.ExperimentID,
			Name:         exp.Name,
			Status:       exp.Status,
			Variants:     variantsByExperiment[exp.ExperimentID],
		})
	}

	for _, goal := range goals {
		response.Goals = append(response.Goals, dto.GoalConfig{
			GoalID:   goal.GoalID,
			Name:     goal.Name,
			GoalType: goal.GoalType,
		})
	}

	s.log.Info("Served project config",
		zap.String("project_id", projectID),
		zap.Int("experiment_count", len(response.Experiments)),
		zap.Int("goal_count", len(response.Goals)))

	return response, nil
}
