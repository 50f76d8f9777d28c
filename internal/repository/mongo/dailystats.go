package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nuribostan/abTestYazilim/internal/domain"
)

// touchDailyStat creates the (experiment, day) bucket on first touch or
// atomically increments it afterwards; both paths are a single upserted
// $inc so concurrent touches never lose updates.
func (r *Repository) touchDailyStat(ctx context.Context, experimentID string, day time.Time, inc bson.M) error {
	filter := bson.M{"experimentId": experimentID, "date": day}
	update := bson.M{"$inc": inc}

	_, err := r.collection(colDailyStats).UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to touch daily stat: %w", err)
	}
	return nil
}

// IncrementImpressions bumps the day bucket's impression counter.
func (r *Repository) IncrementImpressions(ctx context.Context, experimentID string, day time.Time) error {
	return r.touchDailyStat(ctx, experimentID, day, bson.M{"impressions": int64(1)})
}

// IncrementConversions bumps the day bucket's conversion counter and adds
// revenue when present.
func (r *Repository) IncrementConversions(ctx context.Context, experimentID string, day time.Time, revenue float64) error {
	inc := bson.M{"conversions": int64(1)}
	if revenue > 0 {
		inc["revenue"] = revenue
	}
	return r.touchDailyStat(ctx, experimentID, day, inc)
}

// FindRange returns the experiment's day buckets between from and to
// inclusive, ordered by date.
func (r *Repository) FindRange(ctx context.Context, experimentID string, from, to time.Time) ([]domain.ExperimentDailyStat, error) {
	filter := bson.M{
		"experimentId": experimentID,
		"date":         bson.M{"$gte": from, "$lte": to},
	}

	cursor, err := r.collection(colDailyStats).Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find daily stats: %w", err)
	}
	defer cursor.Close(ctx)

	var stats []domain.ExperimentDailyStat
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, fmt.Errorf("failed to decode daily stats: %w", err)
	}
	return stats, nil
}
