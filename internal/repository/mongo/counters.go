package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nuribostan/abTestYazilim/internal/domain"
)

func (r *Repository) incrementByKey(ctx context.Context, collection string, filter bson.M, field string) error {
	update := bson.M{"$inc": bson.M{field: int64(1)}}
	if _, err := r.collection(collection).UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to increment %s.%s: %w", collection, field, err)
	}
	return nil
}

// IncrementVariantVisitors bumps a variant's unique visitor counter.
func (r *Repository) IncrementVariantVisitors(ctx context.Context, variantID string) error {
	return r.incrementByKey(ctx, colVariants, bson.M{"variantId": variantID}, "visitors")
}

// IncrementVariantConversions bumps a variant's conversion counter.
func (r *Repository) IncrementVariantConversions(ctx context.Context, variantID string) error {
	return r.incrementByKey(ctx, colVariants, bson.M{"variantId": variantID}, "conversions")
}

// IncrementExperimentVisitors bumps an experiment's total visitor counter.
func (r *Repository) IncrementExperimentVisitors(ctx context.Context, experimentID string) error {
	return r.incrementByKey(ctx, colExperiments, bson.M{"experimentId": experimentID}, "totalVisitors")
}

// IncrementExperimentConversions bumps an experiment's total conversion
// counter.
func (r *Repository) IncrementExperimentConversions(ctx context.Context, experimentID string) error {
	return r.incrementByKey(ctx, colExperiments, bson.M{"experimentId": experimentID}, "totalConversions")
}

// IncrementExperimentGoalConversions bumps the (experiment, goal) pairing
// counter, creating the pairing row on first conversion so the counter
// never depends on config seeding order.
func (r *Repository) IncrementExperimentGoalConversions(ctx context.Context, experimentID, goalID string) error {
	filter := bson.M{"experimentId": experimentID, "goalId": goalID}
	update := bson.M{"$inc": bson.M{"conversions": int64(1)}}

	_, err := r.collection(colExperimentGoals).UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to increment experiment goal conversions: %w", err)
	}
	return nil
}

// AppendConversion inserts one goal conversion row.
func (r *Repository) AppendConversion(ctx context.Context, conversion *domain.GoalConversion) error {
	if _, err := r.collection(colConversions).InsertOne(ctx, conversion); err != nil {
		return fmt.Errorf("failed to insert conversion: %w", err)
	}
	return nil
}
