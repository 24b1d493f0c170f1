package attendance

import "errors"

var (
	ErrAlreadyClockedIn      = errors.New("Already clocked in today")
	ErrAlreadyClockedOut     = errors.New("Already clocked out")
	ErrAttendanceNotFound    = errors.New("Attendance record not found")
	ErrClockOutBeforeClockIn = errors.New("Clock-out time cannot be before clock-in time")
)
