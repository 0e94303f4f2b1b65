// File: database/repository/booking/crud.go
package bookingRepo

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

func (repo *mongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if _, err := repo.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

func (repo *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (repo *mongoBookingRepo) List(ctx context.Context, filters models.BookingFilters) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if filters.Status != "" {
		filter["status"] = filters.Status
	}
	if filters.Type != "" {
		filter["type"] = filters.Type
	}
	if filters.OfficeLocation != "" {
		filter["office_location"] = filters.OfficeLocation
	}
	if filters.DateFrom != "" || filters.DateTo != "" {
		dateRange := bson.M{}
		if filters.DateFrom != "" {
			dateRange["$gte"] = filters.DateFrom
		}
		if filters.DateTo != "" {
			dateRange["$lte"] = filters.DateTo
		}
		filter["preferred_date"] = dateRange
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

func (repo *mongoBookingRepo) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	set := bson.M{
		"status":     status,
		"updated_at": now,
	}
	switch status {
	case models.BookingStatusConfirmed:
		set["confirmed_at"] = now
	case models.BookingStatusCancelled:
		set["cancelled_at"] = now
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var booking models.Booking
	err := repo.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&booking)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (repo *mongoBookingRepo) UpdateAdminNotes(ctx context.Context, id string, notes string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{
		"admin_notes": notes,
		"updated_at":  time.Now(),
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var booking models.Booking
	err := repo.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&booking)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (repo *mongoBookingRepo) GetConfirmedByDate(ctx context.Context, date string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"status":         models.BookingStatusConfirmed,
		"preferred_date": date,
	}
	opts := options.Find().SetSort(bson.D{{Key: "preferred_time", Value: 1}})
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch confirmed bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding confirmed bookings: %w", err)
	}
	return bookings, nil
}

// IsNotFound reports whether err means no matching booking exists.
func IsNotFound(err error) bool {
	return err == mongo.ErrNoDocuments
}
