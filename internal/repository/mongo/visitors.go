package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nuribostan/abTestYazilim/internal/domain"
)

// Upsert creates the visitor row if absent, otherwise refreshes lastSeen
// and increments pageViews. The $inc also seeds pageViews to 1 on the
// insert path; visitCount is seeded by $setOnInsert and only moved again
// by IncrementVisitCount.
func (r *Repository) Upsert(ctx context.Context, visitor *domain.Visitor) (bool, error) {
	filter := bson.M{
		"projectId": visitor.ProjectID,
		"visitorId": visitor.VisitorID,
	}

	setOnInsert := bson.M{
		"projectId":  visitor.ProjectID,
		"visitorId":  visitor.VisitorID,
		"deviceType": visitor.DeviceType,
		"browser":    visitor.Browser,
		"os":         visitor.OS,
		"referrer":   visitor.Referrer,
		"visitCount": int64(1),
		"firstSeen":  visitor.FirstSeen,
	}
	if visitor.UTMSource != "" {
		setOnInsert["utmSource"] = visitor.UTMSource
	}
	if visitor.UTMMedium != "" {
		setOnInsert["utmMedium"] = visitor.UTMMedium
	}
	if visitor.UTMCampaign != "" {
		setOnInsert["utmCampaign"] = visitor.UTMCampaign
	}

	update := bson.M{
		"$setOnInsert": setOnInsert,
		"$set":         bson.M{"lastSeen": visitor.LastSeen},
		"$inc":         bson.M{"pageViews": int64(1)},
	}

	result, err := r.collection(colVisitors).UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return false, fmt.Errorf("failed to upsert visitor: %w", err)
	}

	return result.UpsertedCount > 0, nil
}

// IncrementVisitCount atomically bumps the session counter.
func (r *Repository) IncrementVisitCount(ctx context.Context, projectID, visitorID string) error {
	filter := bson.M{"projectId": projectID, "visitorId": visitorID}
	update := bson.M{"$inc": bson.M{"visitCount": int64(1)}}

	if _, err := r.collection(colVisitors).UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to increment visit count: %w", err)
	}
	return nil
}
