// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"

	"theyool/database"
	"theyool/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	List(ctx context.Context, filters models.BookingFilters) ([]models.Booking, error)
	// UpdateStatus writes the new status plus its transition timestamp and
	// returns the updated record. The caller owns transition legality.
	UpdateStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error)
	UpdateAdminNotes(ctx context.Context, id string, notes string) (*models.Booking, error)
	GetConfirmedByDate(ctx context.Context, date string) ([]models.Booking, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("theyool")
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
