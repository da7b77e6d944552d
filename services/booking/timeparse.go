package booking

import (
	"fmt"
	"strings"
	"time"
)

// ParseTimeLabel parses a 12-hour clock label like "1:30 PM" into hour and
// minute. "12:00 AM" maps to hour 0 and "12:00 PM" to hour 12.
func ParseTimeLabel(label string) (hour, minute int, err error) {
	t, err := time.Parse("3:04 PM", strings.ToUpper(strings.TrimSpace(label)))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time label %q: %w", label, err)
	}
	return t.Hour(), t.Minute(), nil
}

// CombineDateTime merges a "YYYY-MM-DD" date and a 12-hour time label into a
// single local timestamp.
func CombineDateTime(date, label string) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	hour, minute, err := ParseTimeLabel(label)
	if err != nil {
		return time.Time{}, err
	}
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute), nil
}
