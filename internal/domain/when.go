package domain

import "time"

var monthNames = []string{
	"", "Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// DisplayDate returns a user-friendly day string relative to now
func DisplayDate(t *time.Time, now time.Time) string {
	if t == nil {
		return "never"
	}
	date := t.In(now.Location())

	// Check if today
	if sameDay(date, now) {
		return "today"
	}

	// Check if yesterday
	if sameDay(date, now.AddDate(0, 0, -1)) {
		return "yesterday"
	}

	return date.Format("2 ") + monthNames[date.Month()] + date.Format(" 2006")
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
