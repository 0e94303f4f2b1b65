// Package availability computes bookable consultation slots.
//
// Resolve is a pure function: the blocked-time set and the current
// timestamp are explicit inputs, never read from ambient state, so two
// calls with identical inputs always produce identical output.
package availability

import (
	"fmt"
	"time"

	"theyool/models"
)

const (
	// BusinessDays is how many Mon-Fri days a resolved window contains.
	BusinessDays = 10
	// ScanCapDays caps the calendar-day scan so weekends and holidays can
	// never make the search run away. 20 calendar days always cover 10
	// business days, but the cap is what guarantees termination.
	ScanCapDays = 20

	gridStartHour = 9
	gridEndHour   = 17 // inclusive; last slot of the day is 17:30
)

// ResolveRequest carries every input the resolver depends on.
type ResolveRequest struct {
	// Now is the current wall-clock time; its date is the first candidate
	// day and its time drives the same-day cutoff.
	Now    time.Time
	Office string
	Blocks []models.BlockedTime
}

// Resolve returns the bookable slots for the next BusinessDays business
// days, grouped by date in ascending date/time order. Days whose grid is
// fully consumed (past cutoff or fully blocked) are omitted. The result
// is empty, never an error, when nothing in the window survives.
func Resolve(req ResolveRequest) []models.DaySlots {
	var out []models.DaySlots

	collected := 0
	for offset := 0; offset < ScanCapDays && collected < BusinessDays; offset++ {
		day := req.Now.AddDate(0, 0, offset)
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		collected++

		slots := SlotsForDay(day, req.Now, req.Office, req.Blocks)
		if len(slots) == 0 {
			continue
		}
		out = append(out, models.DaySlots{
			Date:  day.Format("2006-01-02"),
			Slots: slots,
		})
	}
	return out
}

// SlotsForDay generates one business day's surviving slots: the fixed
// half-hour grid minus the same-day cutoff and applicable blocks.
func SlotsForDay(day, now time.Time, office string, blocks []models.BlockedTime) []string {
	date := day.Format("2006-01-02")
	sameDay := date == now.Format("2006-01-02")
	nowMinutes := now.Hour()*60 + now.Minute()

	var slots []string
	for _, slot := range DayGrid() {
		if sameDay && slotMinutes(slot) <= nowMinutes {
			// Strict cutoff: an equal-minute slot is already gone,
			// otherwise a client could book seconds ahead of time.
			continue
		}
		if slotBlocked(date, slot, office, blocks) {
			continue
		}
		slots = append(slots, slot)
	}
	return slots
}

// DayGrid returns the fixed slot grid: 09:00 through 17:30 at :00/:30.
func DayGrid() []string {
	grid := make([]string, 0, (gridEndHour-gridStartHour+1)*2)
	for hour := gridStartHour; hour <= gridEndHour; hour++ {
		grid = append(grid, fmt.Sprintf("%02d:00", hour))
		grid = append(grid, fmt.Sprintf("%02d:30", hour))
	}
	return grid
}

// IsSlotAvailable reports whether (date, slot) survives in a resolved set.
func IsSlotAvailable(days []models.DaySlots, date, slot string) bool {
	for _, d := range days {
		if d.Date != date {
			continue
		}
		for _, s := range d.Slots {
			if s == slot {
				return true
			}
		}
	}
	return false
}

// Window returns the inclusive date range a Resolve call can touch,
// for pre-fetching the blocked times it needs.
func Window(now time.Time) (from, to string) {
	return now.Format("2006-01-02"), now.AddDate(0, 0, ScanCapDays-1).Format("2006-01-02")
}

func slotBlocked(date, slot, office string, blocks []models.BlockedTime) bool {
	for _, b := range blocks {
		if b.BlockedDate != date || !b.AppliesTo(office) {
			continue
		}
		switch b.BlockType {
		case models.BlockTypeDate:
			return true
		case models.BlockTypeTimeSlot:
			// Half-open range: a slot exactly at the end time stays
			// bookable. HH:MM strings compare correctly byte-wise.
			if slot >= b.BlockedTimeStart && slot < b.BlockedTimeEnd {
				return true
			}
		}
	}
	return false
}

func slotMinutes(slot string) int {
	var h, m int
	fmt.Sscanf(slot, "%d:%d", &h, &m)
	return h*60 + m
}
