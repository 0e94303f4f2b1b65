package models

import "time"

// BlockType distinguishes full-day blocks from time-range blocks.
type BlockType string

const (
	BlockTypeDate     BlockType = "date"
	BlockTypeTimeSlot BlockType = "time_slot"
)

// BlockedTime is an administrator-authored rule that removes availability.
// OfficeLocation is empty when the block applies to all offices.
// Records are immutable: created once, deleted by admin action, never updated.
type BlockedTime struct {
	ID               string    `bson:"id" json:"id"`
	BlockType        BlockType `bson:"block_type" json:"block_type"`
	BlockedDate      string    `bson:"blocked_date" json:"blocked_date"`                                 // "YYYY-MM-DD"
	BlockedTimeStart string    `bson:"blocked_time_start,omitempty" json:"blocked_time_start,omitempty"` // "HH:MM", time_slot only
	BlockedTimeEnd   string    `bson:"blocked_time_end,omitempty" json:"blocked_time_end,omitempty"`     // "HH:MM", exclusive
	OfficeLocation   string    `bson:"office_location,omitempty" json:"office_location,omitempty"`
	Reason           string    `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedBy        string    `bson:"created_by" json:"created_by"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
}

// AppliesTo reports whether the block affects the given office.
func (b BlockedTime) AppliesTo(office string) bool {
	return b.OfficeLocation == "" || b.OfficeLocation == office
}

// BlockedTimeFilters narrows admin blocked-time listings.
type BlockedTimeFilters struct {
	BlockType      BlockType `form:"block_type"`
	OfficeLocation string    `form:"office_location"`
}
