package availability

import (
	"fmt"
	"time"

	"sudsy/models"
)

const minutesPerDay = 24 * 60

// ParseClock converts a 24-hour "HH:MM" string to minutes from midnight.
func ParseClock(clock string) (int, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", clock, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// minuteOf returns the minutes elapsed since midnight of t's calendar day.
func minuteOf(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// dayUnion merges the enabled rules for one weekday into disjoint minute
// intervals. Rules flagged unavailable contribute nothing; they never block.
func dayUnion(rules []models.AvailabilityRule, day time.Weekday) []interval {
	var ivs []interval
	for _, rule := range rules {
		if rule.DayOfWeek != day || !rule.IsAvailable {
			continue
		}
		start, err := ParseClock(rule.StartTime)
		if err != nil {
			continue
		}
		end, err := ParseClock(rule.EndTime)
		if err != nil {
			continue
		}
		ivs = append(ivs, interval{Start: start, End: end})
	}
	return union(ivs)
}

// blockCuts clamps every blocked interval intersecting the calendar day
// starting at dayStart to that day's minute range.
func blockCuts(blocks []models.BlockedTime, dayStart time.Time) []interval {
	dayEnd := dayStart.AddDate(0, 0, 1)
	var cuts []interval
	for _, block := range blocks {
		if !block.Overlaps(dayStart, dayEnd) {
			continue
		}
		start := 0
		if block.StartDate.After(dayStart) {
			start = int(block.StartDate.Sub(dayStart).Minutes())
		}
		end := minutesPerDay
		if block.EndDate.Before(dayEnd) {
			end = int(block.EndDate.Sub(dayStart).Minutes())
		}
		cuts = append(cuts, interval{Start: start, End: end})
	}
	return cuts
}

// IsBookable reports whether [candidateStart, candidateEnd) can be booked
// against the given rules and blocks. The candidate must fall on a single
// calendar day, be fully contained in the union of that day's enabled rule
// windows, and intersect no blocked interval. Pure: safe for concurrent use.
func IsBookable(rules []models.AvailabilityRule, blocks []models.BlockedTime, candidateStart, candidateEnd time.Time) bool {
	if !candidateEnd.After(candidateStart) {
		return false
	}

	day := dateOf(candidateStart)
	startMin := minuteOf(candidateStart)
	endMin := minuteOf(candidateEnd)
	if !dateOf(candidateEnd).Equal(day) {
		// Ending exactly at the following midnight is allowed; anything
		// further spills onto a second day and rules are per-day.
		if !candidateEnd.Equal(day.AddDate(0, 0, 1)) {
			return false
		}
		endMin = minutesPerDay
	}

	dayRules := dayUnion(rules, candidateStart.Weekday())
	if len(dayRules) == 0 {
		return false
	}
	if !covered(dayRules, interval{Start: startMin, End: endMin}) {
		return false
	}

	for _, block := range blocks {
		if block.Overlaps(candidateStart, candidateEnd) {
			return false
		}
	}
	return true
}

// EnumerateSlots walks every calendar date in [rangeStart, rangeEnd], takes
// the day's rule union, subtracts intersecting blocked intervals, and tiles
// the remainder with non-overlapping windows of slotDuration. Windows shorter
// than slotDuration are discarded. Slots come back in chronological order.
func EnumerateSlots(rules []models.AvailabilityRule, blocks []models.BlockedTime, rangeStart, rangeEnd time.Time, slotDuration time.Duration) []models.BookableSlot {
	slotMin := int(slotDuration.Minutes())
	if slotMin <= 0 {
		return nil
	}

	var slots []models.BookableSlot
	last := dateOf(rangeEnd)
	for d := dateOf(rangeStart); !d.After(last); d = d.AddDate(0, 0, 1) {
		dayRules := dayUnion(rules, d.Weekday())
		if len(dayRules) == 0 {
			continue
		}
		free := subtractAll(dayRules, blockCuts(blocks, d))

		dateStr := d.Format("2006-01-02")
		for _, iv := range free {
			for start := iv.Start; start+slotMin <= iv.End; start += slotMin {
				slots = append(slots, models.BookableSlot{
					Date:  dateStr,
					Start: start,
					End:   start + slotMin,
					Label: fmt.Sprintf("%s - %s", minuteLabel(start), minuteLabel(start+slotMin)),
				})
			}
		}
	}
	return slots
}

// minuteLabel renders minutes from midnight as a 12-hour clock label.
func minuteLabel(m int) string {
	h := (m / 60) % 24
	meridiem := "AM"
	switch {
	case h == 0:
		h = 12
	case h == 12:
		meridiem = "PM"
	case h > 12:
		h -= 12
		meridiem = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", h, m%60, meridiem)
}
