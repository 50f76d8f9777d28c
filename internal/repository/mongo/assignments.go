package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nuribostan/abTestYazilim/internal/domain"
)

// Create inserts the sticky assignment. The unique index on
// (visitorId, experimentId) resolves races between concurrent first views:
// the loser gets a duplicate key error and is reported as a repeat view,
// not a failure.
func (r *Repository) Create(ctx context.Context, assignment *domain.VariantAssignment) (bool, error) {
	_, err := r.collection(colAssignments).InsertOne(ctx, assignment)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to insert assignment: %w", err)
	}
	return true, nil
}

// FindByVisitor returns all assignments held by one visitor.
func (r *Repository) FindByVisitor(ctx context.Context, visitorID string) ([]domain.VariantAssignment, error) {
	cursor, err := r.collection(colAssignments).Find(ctx, bson.M{"visitorId": visitorID})
	if err != nil {
		return nil, fmt.Errorf("failed to find assignments: %w", err)
	}
	defer cursor.Close(ctx)

	var assignments []domain.VariantAssignment
	if err := cursor.All(ctx, &assignments); err != nil {
		return nil, fmt.Errorf("failed to decode assignments: %w", err)
	}
	return assignments, nil
}
