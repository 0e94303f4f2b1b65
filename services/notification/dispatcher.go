package notification

import (
	"context"
	"fmt"

	"theyool/models"
	"theyool/utils"

	"go.uber.org/zap"
)

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Email EmailSender
	SMS   SMSSender

	// OfficeAlertPhone receives the new-booking alert SMS. When empty the
	// created event messages the client directly instead.
	OfficeAlertPhone string
}

func NewDefaultNotificationService(email EmailSender, sms SMSSender, officeAlertPhone string) (*DefaultNotificationService, error) {
	if email == nil || sms == nil {
		return nil, fmt.Errorf("notification service initialization error: email or sms sender is nil")
	}
	return &DefaultNotificationService{
		Email:            email,
		SMS:              sms,
		OfficeAlertPhone: officeAlertPhone,
	}, nil
}

// Dispatch attempts each channel independently and reports the aggregate.
// A failure on one channel is recorded and never stops the other; the
// dispatch succeeds when at least one channel sent. No retries happen
// here: a failed attempt is reported upward and the caller decides.
func (s *DefaultNotificationService) Dispatch(ctx context.Context, event models.NotificationEvent, booking *models.Booking) models.NotificationResult {
	logger := utils.GetLogger()
	var result models.NotificationResult

	result.Attempts = append(result.Attempts, s.attemptEmail(ctx, event, booking, &result))
	result.Attempts = append(result.Attempts, s.attemptSMS(ctx, event, booking, &result))

	result.Success = result.EmailSent || result.SMSSent
	if !result.Success {
		logger.Warn("notification dispatch: no channel delivered",
			zap.String("event", string(event)),
			zap.String("bookingID", booking.ID))
	}
	return result
}

func (s *DefaultNotificationService) attemptEmail(ctx context.Context, event models.NotificationEvent, booking *models.Booking, result *models.NotificationResult) models.NotificationAttempt {
	attempt := models.NotificationAttempt{Channel: models.ChannelEmail}

	if booking.Email == "" || !s.Email.Configured() {
		attempt.Outcome = models.OutcomeSkipped
		return attempt
	}

	subject, html := EmailContent(event, booking)
	if err := s.Email.Send(ctx, booking.Email, subject, html); err != nil {
		utils.GetLogger().Error("notification dispatch: email failed",
			zap.String("event", string(event)),
			zap.String("bookingID", booking.ID),
			zap.Error(err))
		attempt.Outcome = models.OutcomeFailed
		attempt.Error = err.Error()
		return attempt
	}

	attempt.Outcome = models.OutcomeSent
	result.EmailSent = true
	return attempt
}

func (s *DefaultNotificationService) attemptSMS(ctx context.Context, event models.NotificationEvent, booking *models.Booking, result *models.NotificationResult) models.NotificationAttempt {
	attempt := models.NotificationAttempt{Channel: models.ChannelSMS}

	to, text := s.smsDestination(event, booking)
	if to == "" || !s.SMS.Configured() {
		attempt.Outcome = models.OutcomeSkipped
		return attempt
	}

	if err := s.SMS.Send(ctx, utils.NormalizePhone(to), text); err != nil {
		utils.GetLogger().Error("notification dispatch: sms failed",
			zap.String("event", string(event)),
			zap.String("bookingID", booking.ID),
			zap.Error(err))
		attempt.Outcome = models.OutcomeFailed
		attempt.Error = err.Error()
		return attempt
	}

	attempt.Outcome = models.OutcomeSent
	result.SMSSent = true
	return attempt
}

// smsDestination picks the SMS recipient and body for an event. The
// created event alerts the office when an alert number is configured;
// every other event messages the client.
func (s *DefaultNotificationService) smsDestination(event models.NotificationEvent, booking *models.Booking) (to, text string) {
	if event == models.EventBookingCreated && s.OfficeAlertPhone != "" {
		return s.OfficeAlertPhone, NewBookingAlertSMS(booking)
	}
	return booking.Phone, ClientSMS(event, booking)
}
