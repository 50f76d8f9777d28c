package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/nuribostan/abTestYazilim/internal/domain"
)

// ListRunning returns the project's experiments currently accepting
// traffic, for the configuration snapshot.
func (r *Repository) ListRunning(ctx context.Context, projectID string) ([]domain.Experiment, error) {
	filter := bson.M{"projectId": projectID, "status": "running"}

	cursor, err := r.collection(colExperiments).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find experiments: %w", err)
	}
	defer cursor.Close(ctx)

	var experiments []domain.Experiment
	if err := cursor.All(ctx, &experiments); err != nil {
		return nil, fmt.Errorf("failed to decode experiments: %w", err)
	}
	return experiments, nil
}

// ListVariants returns the variants of the given experiments.
func (r *Repository) ListVariants(ctx context.Context, experimentIDs []string) ([]domain.Variant, error) {
	if len(experimentIDs) == 0 {
		return nil, nil
	}

	filter := bson.M{"experimentId": bson.M{"$in": experimentIDs}}

	cursor, err := r.collection(colVariants).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find variants: %w", err)
	}
	defer cursor.Close(ctx)

	var variants []domain.Variant
	if err := cursor.All(ctx, &variants); err != nil {
		return nil, fmt.Errorf("failed to decode variants: %w", err)
	}
	return variants, nil
}

// ListGoals returns the project's goal definitions.
func (r *Repository) ListGoals(ctx context.Context, projectID string) ([]domain.Goal, error) {
	cursor, err := r.collection(colGoals).Find(ctx, bson.M{"projectId": projectID})
	if err != nil {
		return nil, fmt.Errorf("failed to find goals: %w", err)
	}
	defer cursor.Close(ctx)

	var goals []domain.Goal
	if err := cursor.All(ctx, &goals); err != nil {
		return nil, fmt.Errorf("failed to decode goals: %w", err)
	}
	return goals, nil
}
