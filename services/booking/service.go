package booking

import (
	"context"
	"time"

	blockedRepo "theyool/database/repository/blocked"
	bookingRepo "theyool/database/repository/booking"
	"theyool/models"
	"theyool/services/availability"
	"theyool/services/notification"
	"theyool/utils"

	"go.uber.org/zap"
)

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo         bookingRepo.BookingRepository
	BlockedRepo  blockedRepo.BlockedTimeRepository
	Notification notification.NotificationService

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Create validates a submission, rechecks the requested slot against the
// current availability set, persists the pending booking and dispatches
// the created event best-effort.
func (s *DefaultBookingService) Create(ctx context.Context, input CreateBookingInput) (*models.Booking, models.NotificationResult, error) {
	logger := utils.GetLogger()

	if !utils.IsValidPhone(input.Phone) {
		return nil, models.NotificationResult{}, ErrInvalidPhone
	}
	if input.Type == models.BookingTypeVisit && input.OfficeLocation == "" {
		return nil, models.NotificationResult{}, ErrMissingOffice
	}
	if input.Type != models.BookingTypeVisit {
		// Office scoping only exists for visit bookings.
		input.OfficeLocation = ""
	}
	if !validSlotFormat(input.PreferredDate, input.PreferredTime) {
		return nil, models.NotificationResult{}, ErrInvalidSlotFormat
	}

	// Mandatory submission-time recheck: the slot list the client saw may
	// be stale by now (a concurrent booking or a fresh blocked time).
	resolved, err := s.resolve(ctx, input.OfficeLocation)
	if err != nil {
		return nil, models.NotificationResult{}, err
	}
	if !availability.IsSlotAvailable(resolved, input.PreferredDate, input.PreferredTime) {
		return nil, models.NotificationResult{}, ErrSlotUnavailable
	}

	booking := &models.Booking{
		Type:           input.Type,
		Status:         models.BookingStatusPending,
		Name:           input.Name,
		Phone:          input.Phone,
		Email:          input.Email,
		Category:       input.Category,
		Message:        input.Message,
		PreferredDate:  input.PreferredDate,
		PreferredTime:  input.PreferredTime,
		OfficeLocation: input.OfficeLocation,
		Source:         input.Source,
		UTMSource:      input.UTMSource,
		UTMMedium:      input.UTMMedium,
		UTMCampaign:    input.UTMCampaign,
	}
	if err := s.Repo.Create(ctx, booking); err != nil {
		return nil, models.NotificationResult{}, err
	}

	// The persisted booking is the source of truth; a dispatch failure is
	// reported, never rolled back.
	result := s.Notification.Dispatch(ctx, models.EventBookingCreated, booking)
	logger.Info("booking created",
		zap.String("bookingID", booking.ID),
		zap.String("type", string(booking.Type)),
		zap.String("date", booking.PreferredDate),
		zap.String("time", booking.PreferredTime),
		zap.Bool("notified", result.Success))
	return booking, result, nil
}

// Confirm moves a pending booking to confirmed and dispatches the event.
func (s *DefaultBookingService) Confirm(ctx context.Context, id string) (*models.Booking, models.NotificationResult, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, models.NotificationResult{}, err
	}
	if current.Status.IsTerminal() {
		return nil, models.NotificationResult{}, ErrTerminalState
	}
	if current.Status != models.BookingStatusPending {
		return nil, models.NotificationResult{}, ErrInvalidTransition
	}

	updated, err := s.Repo.UpdateStatus(ctx, id, models.BookingStatusConfirmed)
	if err != nil {
		return nil, models.NotificationResult{}, err
	}

	result := s.Notification.Dispatch(ctx, models.EventBookingConfirmed, updated)
	utils.GetLogger().Info("booking confirmed",
		zap.String("bookingID", id), zap.Bool("notified", result.Success))
	return updated, result, nil
}

// Cancel moves a pending or confirmed booking to cancelled.
func (s *DefaultBookingService) Cancel(ctx context.Context, id string) (*models.Booking, models.NotificationResult, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, models.NotificationResult{}, err
	}
	if current.Status.IsTerminal() {
		return nil, models.NotificationResult{}, ErrTerminalState
	}

	updated, err := s.Repo.UpdateStatus(ctx, id, models.BookingStatusCancelled)
	if err != nil {
		return nil, models.NotificationResult{}, err
	}

	result := s.Notification.Dispatch(ctx, models.EventBookingCancelled, updated)
	utils.GetLogger().Info("booking cancelled",
		zap.String("bookingID", id), zap.Bool("notified", result.Success))
	return updated, result, nil
}

func (s *DefaultBookingService) Get(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if bookingRepo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return booking, nil
}

func (s *DefaultBookingService) List(ctx context.Context, filters models.BookingFilters) ([]models.Booking, error) {
	return s.Repo.List(ctx, filters)
}

func (s *DefaultBookingService) UpdateNotes(ctx context.Context, id, notes string) (*models.Booking, error) {
	booking, err := s.Repo.UpdateAdminNotes(ctx, id, notes)
	if err != nil {
		if bookingRepo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return booking, nil
}

func (s *DefaultBookingService) Availability(ctx context.Context, office string) ([]models.DaySlots, error) {
	return s.resolve(ctx, office)
}

func (s *DefaultBookingService) SlotsForDate(ctx context.Context, date, office string) ([]models.TimeSlotStatus, error) {
	resolved, err := s.resolve(ctx, office)
	if err != nil {
		return nil, err
	}

	grid := availability.DayGrid()
	statuses := make([]models.TimeSlotStatus, 0, len(grid))
	for _, slot := range grid {
		statuses = append(statuses, models.TimeSlotStatus{
			Time:      slot,
			Available: availability.IsSlotAvailable(resolved, date, slot),
		})
	}
	return statuses, nil
}

func (s *DefaultBookingService) resolve(ctx context.Context, office string) ([]models.DaySlots, error) {
	now := s.now()
	from, to := availability.Window(now)
	blocks, err := s.BlockedRepo.ListForDates(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return availability.Resolve(availability.ResolveRequest{
		Now:    now,
		Office: office,
		Blocks: blocks,
	}), nil
}

func validSlotFormat(date, slot string) bool {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return false
	}
	if _, err := time.Parse("15:04", slot); err != nil {
		return false
	}
	return true
}
