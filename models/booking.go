package models

import "time"

// BookingType is the consultation channel requested by the client.
type BookingType string

const (
	BookingTypePhone BookingType = "phone"
	BookingTypeVisit BookingType = "visit"
	BookingTypeVideo BookingType = "video"
)

// BookingStatus is the lifecycle state of a consultation booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	// Completed is set by an out-of-band business process, never by this
	// server. It is terminal like cancelled.
	BookingStatusCompleted BookingStatus = "completed"
)

// IsTerminal reports whether no further transitions are accepted from s.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCancelled || s == BookingStatusCompleted
}

// Booking represents a consultation booking record.
type Booking struct {
	ID     string        `bson:"id" json:"id"`
	Type   BookingType   `bson:"type" json:"type"`
	Status BookingStatus `bson:"status" json:"status"`

	// Client contact details. Phone is mandatory, email optional.
	Name  string `bson:"name" json:"name"`
	Phone string `bson:"phone" json:"phone"`
	Email string `bson:"email,omitempty" json:"email,omitempty"`

	Category string `bson:"category,omitempty" json:"category,omitempty"`
	Message  string `bson:"message,omitempty" json:"message,omitempty"`

	// Resolved slot, "YYYY-MM-DD" and "HH:MM".
	PreferredDate string `bson:"preferred_date" json:"preferred_date"`
	PreferredTime string `bson:"preferred_time" json:"preferred_time"`

	// Required for visit bookings, empty otherwise.
	OfficeLocation string `bson:"office_location,omitempty" json:"office_location,omitempty"`

	AdminNotes string `bson:"admin_notes,omitempty" json:"admin_notes,omitempty"`

	// Marketing attribution captured on submission.
	Source      string `bson:"source,omitempty" json:"source,omitempty"`
	UTMSource   string `bson:"utm_source,omitempty" json:"utm_source,omitempty"`
	UTMMedium   string `bson:"utm_medium,omitempty" json:"utm_medium,omitempty"`
	UTMCampaign string `bson:"utm_campaign,omitempty" json:"utm_campaign,omitempty"`

	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `bson:"updated_at" json:"updated_at"`
	ConfirmedAt *time.Time `bson:"confirmed_at,omitempty" json:"confirmed_at,omitempty"`
	CancelledAt *time.Time `bson:"cancelled_at,omitempty" json:"cancelled_at,omitempty"`
}

// BookingFilters narrows admin booking listings.
type BookingFilters struct {
	Status         BookingStatus `form:"status"`
	Type           BookingType   `form:"type"`
	OfficeLocation string        `form:"office_location"`
	DateFrom       string        `form:"date_from"`
	DateTo         string        `form:"date_to"`
}
