package models

// DaySlots groups the bookable times of a single business day.
type DaySlots struct {
	Date  string   `json:"date"`  // "YYYY-MM-DD"
	Slots []string `json:"slots"` // "HH:MM", ascending
}

// TimeSlotStatus is one grid entry in a per-date slot listing.
type TimeSlotStatus struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}
