// File: database/repository/blocked/crud.go
package blockedRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"theyool/models"
)

func (repo *mongoBlockedTimeRepo) Create(ctx context.Context, block *models.BlockedTime) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if block.ID == "" {
		block.ID = uuid.New().String()
	}
	block.CreatedAt = time.Now()

	if _, err := repo.coll.InsertOne(ctx, block); err != nil {
		return fmt.Errorf("failed to insert blocked time: %w", err)
	}
	return nil
}

func (repo *mongoBlockedTimeRepo) List(ctx context.Context, filters models.BlockedTimeFilters) ([]models.BlockedTime, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if filters.BlockType != "" {
		filter["block_type"] = filters.BlockType
	}
	if filters.OfficeLocation != "" {
		// An office-scoped listing also shows all-office blocks.
		filter["$or"] = bson.A{
			bson.M{"office_location": filters.OfficeLocation},
			bson.M{"office_location": bson.M{"$exists": false}},
			bson.M{"office_location": ""},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "blocked_date", Value: 1}})
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blocked times: %w", err)
	}
	defer cursor.Close(ctx)

	var blocks []models.BlockedTime
	if err := cursor.All(ctx, &blocks); err != nil {
		return nil, fmt.Errorf("error decoding blocked times: %w", err)
	}
	return blocks, nil
}

func (repo *mongoBlockedTimeRepo) ListForDates(ctx context.Context, from, to string) ([]models.BlockedTime, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"blocked_date": bson.M{"$gte": from, "$lte": to},
	}
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blocked times for dates: %w", err)
	}
	defer cursor.Close(ctx)

	var blocks []models.BlockedTime
	if err := cursor.All(ctx, &blocks); err != nil {
		return nil, fmt.Errorf("error decoding blocked times: %w", err)
	}
	return blocks, nil
}

func (repo *mongoBlockedTimeRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// IsNotFound reports whether err means no matching blocked time exists.
func IsNotFound(err error) bool {
	return err == mongo.ErrNoDocuments
}
