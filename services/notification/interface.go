package notification

import (
	"context"

	"theyool/models"
)

// EmailSender delivers one HTML email. Implementations report success or
// failure per call; delivery receipts are not modeled.
type EmailSender interface {
	Send(ctx context.Context, to, subject, html string) error
	Configured() bool
}

// SMSSender delivers one text message.
type SMSSender interface {
	Send(ctx context.Context, to, text string) error
	Configured() bool
}

// NotificationService fans a booking lifecycle event out to the
// configured channels and aggregates the per-channel outcomes.
type NotificationService interface {
	Dispatch(ctx context.Context, event models.NotificationEvent, booking *models.Booking) models.NotificationResult
}
