// File: database/repository/blocked/indexes.go
package blockedRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the blocked_times collection.
func EnsureIndexes(repo BlockedTimeRepository) error {
	r, ok := repo.(*mongoBlockedTimeRepo)
	if !ok {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Resolver query pattern: date window plus office scoping.
		{
			Keys:    bson.D{{Key: "blocked_date", Value: 1}, {Key: "office_location", Value: 1}},
			Options: options.Index().SetName("date_office_idx"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create blocked time indexes: %w", err)
	}
	return nil
}
