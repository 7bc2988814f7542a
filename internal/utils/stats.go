package utils

import "time"

// DateLayout is the calendar date format appointments are stored with.
const DateLayout = "2006-01-02"

// CalendarDay drops the clock from t, keeping its calendar date.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// OnOrAfter reports whether the YYYY-MM-DD date falls on today's calendar day
// or later. The time of day never matters.
func OnOrAfter(date string, today time.Time) (bool, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return false, err
	}
	return !d.Before(CalendarDay(today)), nil
}
