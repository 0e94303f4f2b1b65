// Package tasks holds time-triggered batch jobs.
package tasks

import (
	"context"
	"fmt"
	"time"

	bookingRepo "theyool/database/repository/booking"
	"theyool/models"
	"theyool/services/notification"
	"theyool/utils"

	"go.uber.org/zap"
)

// ReminderJob notifies clients whose confirmed booking is tomorrow.
// The job carries no idempotency guard: running it twice in one day
// sends duplicate reminders, and each day's run is independent of
// yesterday's failures.
type ReminderJob struct {
	Repo         bookingRepo.BookingRepository
	Notification notification.NotificationService

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func (j *ReminderJob) now() time.Time {
	if j.Now != nil {
		return j.Now()
	}
	return time.Now()
}

// Run fetches every confirmed booking for tomorrow and dispatches the
// reminder event per booking. One bad booking record never aborts the
// batch; its failure is contained and counted.
func (j *ReminderJob) Run(ctx context.Context) (*models.ReminderReport, error) {
	logger := utils.GetLogger()

	now := j.now()
	tomorrow := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, 1).Format("2006-01-02")

	bookings, err := j.Repo.GetConfirmedByDate(ctx, tomorrow)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for %s: %w", tomorrow, err)
	}

	report := &models.ReminderReport{
		TotalBookings: len(bookings),
		Details:       []models.ReminderDetail{},
	}

	for i := range bookings {
		booking := &bookings[i]
		result := j.dispatchOne(ctx, booking)

		if result.Success {
			report.Sent++
			report.Details = append(report.Details, models.ReminderDetail{
				ID:        booking.ID,
				Name:      booking.Name,
				Date:      booking.PreferredDate,
				Time:      booking.PreferredTime,
				EmailSent: result.EmailSent,
				SMSSent:   result.SMSSent,
				Status:    "sent",
			})
			continue
		}

		report.Failed++
		report.Details = append(report.Details, models.ReminderDetail{
			ID:     booking.ID,
			Name:   booking.Name,
			Status: "failed",
			Error:  attemptErrors(result),
		})
	}

	logger.Info("reminder run completed",
		zap.String("date", tomorrow),
		zap.Int("total", report.TotalBookings),
		zap.Int("sent", report.Sent),
		zap.Int("failed", report.Failed))
	return report, nil
}

// dispatchOne contains any panic from a malformed booking record so the
// rest of the batch keeps going.
func (j *ReminderJob) dispatchOne(ctx context.Context, booking *models.Booking) (result models.NotificationResult) {
	defer func() {
		if r := recover(); r != nil {
			utils.GetLogger().Error("reminder dispatch panicked",
				zap.String("bookingID", booking.ID),
				zap.Any("panic", r))
			result = models.NotificationResult{
				Attempts: []models.NotificationAttempt{{
					Channel: models.ChannelSMS,
					Outcome: models.OutcomeFailed,
					Error:   fmt.Sprintf("panic: %v", r),
				}},
			}
		}
	}()
	return j.Notification.Dispatch(ctx, models.EventBookingReminder, booking)
}

func attemptErrors(result models.NotificationResult) string {
	for _, attempt := range result.Attempts {
		if attempt.Outcome == models.OutcomeFailed && attempt.Error != "" {
			return attempt.Error
		}
	}
	return "no channel delivered"
}
