package models

// NotificationEvent names a booking lifecycle event that triggers a dispatch.
type NotificationEvent string

const (
	EventBookingCreated   NotificationEvent = "booking_created"
	EventBookingConfirmed NotificationEvent = "booking_confirmed"
	EventBookingCancelled NotificationEvent = "booking_cancelled"
	EventBookingReminder  NotificationEvent = "booking_reminder"
)

// NotificationChannel is a delivery channel.
type NotificationChannel string

const (
	ChannelEmail NotificationChannel = "email"
	ChannelSMS   NotificationChannel = "sms"
)

// AttemptOutcome is the result of a single channel attempt.
type AttemptOutcome string

const (
	OutcomeSent    AttemptOutcome = "sent"
	OutcomeSkipped AttemptOutcome = "skipped" // channel unconfigured or no destination
	OutcomeFailed  AttemptOutcome = "failed"
)

// NotificationAttempt records one channel's attempt within a dispatch.
// Attempts are computed per dispatch call and never persisted.
type NotificationAttempt struct {
	Channel NotificationChannel `json:"channel"`
	Outcome AttemptOutcome      `json:"outcome"`
	Error   string              `json:"error,omitempty"`
}

// NotificationResult aggregates all channel attempts for one dispatch.
type NotificationResult struct {
	EmailSent bool                  `json:"emailSent"`
	SMSSent   bool                  `json:"smsSent"`
	Success   bool                  `json:"success"` // at least one channel sent
	Attempts  []NotificationAttempt `json:"attempts"`
}

// ReminderDetail is the per-booking entry in a reminder run report.
type ReminderDetail struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Date      string `json:"date,omitempty"`
	Time      string `json:"time,omitempty"`
	EmailSent bool   `json:"emailSent"`
	SMSSent   bool   `json:"smsSent"`
	Status    string `json:"status"` // "sent" or "failed"
	Error     string `json:"error,omitempty"`
}

// ReminderReport aggregates one reminder run.
type ReminderReport struct {
	TotalBookings int              `json:"total_bookings"`
	Sent          int              `json:"sent"`
	Failed        int              `json:"failed"`
	Details       []ReminderDetail `json:"details"`
}
