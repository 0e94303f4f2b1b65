// File: database/repository/blocked/interface.go
package blockedRepo

import (
	"context"

	"theyool/database"
	"theyool/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BlockedTimeRepository defines methods to interact with blocked times.
// Blocked times are immutable: there is deliberately no update method.
type BlockedTimeRepository interface {
	Create(ctx context.Context, block *models.BlockedTime) error
	List(ctx context.Context, filters models.BlockedTimeFilters) ([]models.BlockedTime, error)
	// ListForDates fetches every block whose date falls in [from, to],
	// regardless of office scope; scoping is the resolver's job.
	ListForDates(ctx context.Context, from, to string) ([]models.BlockedTime, error)
	Delete(ctx context.Context, id string) error
}

type mongoBlockedTimeRepo struct {
	coll *mongo.Collection
}

// NewMongoBlockedTimeRepo constructs a new MongoDB BlockedTimeRepository.
func NewMongoBlockedTimeRepo() BlockedTimeRepository {
	db := database.MongoClient.Database("theyool")
	return &mongoBlockedTimeRepo{
		coll: db.Collection("blocked_times"),
	}
}
