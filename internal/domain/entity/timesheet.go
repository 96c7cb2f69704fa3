package entity

import "time"

// TimesheetEntry is one clock-in/clock-out cycle for a staff member. An entry
// without a ClockOut is an active shift; a user has at most one at a time.
// HoursWorked is fixed at clock-out time and treated as authoritative.
type TimesheetEntry struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	UserName    string     `json:"userName"`
	ClockIn     time.Time  `json:"clockIn"`
	ClockOut    *time.Time `json:"clockOut"`
	HoursWorked *float64   `json:"hoursWorked"`
}

// Active reports whether the entry is an open shift
func (e TimesheetEntry) Active() bool {
	return e.ClockOut == nil
}
