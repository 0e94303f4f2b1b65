package booking

import (
	"context"

	"theyool/models"
)

// CreateBookingInput is a client-facing submission.
type CreateBookingInput struct {
	Type           models.BookingType
	Name           string
	Phone          string
	Email          string
	Category       string
	Message        string
	PreferredDate  string
	PreferredTime  string
	OfficeLocation string
	Source         string
	UTMSource      string
	UTMMedium      string
	UTMCampaign    string
}

// BookingService owns the booking lifecycle and its availability checks.
// Transition methods return the dispatch result alongside the booking:
// notification is best-effort and its failure never rolls the state back.
type BookingService interface {
	Create(ctx context.Context, input CreateBookingInput) (*models.Booking, models.NotificationResult, error)
	Confirm(ctx context.Context, id string) (*models.Booking, models.NotificationResult, error)
	Cancel(ctx context.Context, id string) (*models.Booking, models.NotificationResult, error)
	Get(ctx context.Context, id string) (*models.Booking, error)
	List(ctx context.Context, filters models.BookingFilters) ([]models.Booking, error)
	UpdateNotes(ctx context.Context, id, notes string) (*models.Booking, error)

	// Availability resolves the bookable window for an office.
	Availability(ctx context.Context, office string) ([]models.DaySlots, error)
	// SlotsForDate lists one date's full grid with availability flags.
	SlotsForDate(ctx context.Context, date, office string) ([]models.TimeSlotStatus, error)
}
