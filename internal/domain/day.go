package domain

import "time"

// DayLayout is the compact date format used in callback data
const DayLayout = "20060102"

// Day represents a calendar day with the number of entries added on it
type Day struct {
	Date      time.Time
	WordCount int
}

// DateString returns date in YYYYMMDD format
func (d Day) DateString() string {
	return d.Date.Format(DayLayout)
}

// Label returns a user-friendly date relative to now
func (d Day) Label(now time.Time) string {
	if sameDay(d.Date, now) {
		return "Today"
	}
	if sameDay(d.Date, now.AddDate(0, 0, -1)) {
		return "Yesterday"
	}
	return d.Date.Format("2 Jan 2006")
}

// SameDay reports whether t falls on the same calendar day as ref, in ref's location
func SameDay(t, ref time.Time) bool {
	return sameDay(t.In(ref.Location()), ref)
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
