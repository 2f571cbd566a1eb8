package worklog

import "time"

// Session is one stored work session row with its store and scheduled times.
type Session struct {
	ID          []byte
	StoreName   string
	StartAt     *time.Time
	EndAt       *time.Time
	WorkMinutes int
}

// Schedule is one session flattened for the today listing.
type Schedule struct {
	WorkLogID   string
	StoreName   string
	StartAt     string // HH:MM, empty when unscheduled
	EndAt       string
	WorkMinutes int
}

// TodayList is the authenticated user's work sessions for the current day.
type TodayList struct {
	Date      string // YYYY-MM-DD
	Schedules []Schedule
}
