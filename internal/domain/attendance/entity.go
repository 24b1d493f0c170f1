package attendance

import (
	"time"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusAbsent  Status = "absent"
)

type Attendance struct {
	ID         string     `json:"id"`
	EmployeeID string     `json:"employeeId"`
	Date       string     `json:"date"` // YYYY-MM-DD
	CheckIn    time.Time  `json:"checkIn"`
	CheckOut   *time.Time `json:"checkOut"`
	Status     Status     `json:"status"`
}

// IsClockedOut reports whether the check-out time has been recorded.
func (a Attendance) IsClockedOut() bool {
	return a.CheckOut != nil
}

// StatusAt decides present or late for a clock-in at now; anything strictly
// after cutoff (a wall-clock time of day) is late.
func StatusAt(now time.Time, cutoff time.Duration) Status {
	if timeOfDay(now) > cutoff {
		return StatusLate
	}
	return StatusPresent
}

// timeOfDay reads the wall clock of t, so DST shifts do not move the cutoff.
func timeOfDay(t time.Time) time.Duration {
	h, m, s := t.Clock()
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second
}

// Record is an attendance row joined with the owner's name for listings.
type Record struct {
	Attendance
	UserID     string `json:"userId"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

type TodayStats struct {
	Date      string   `json:"date"`
	Total     int      `json:"total"`
	Present   int      `json:"present"`
	Late      int      `json:"late"`
	Absent    int      `json:"absent"`
	ClockedIn int      `json:"clockedIn"`
	Records   []Record `json:"records"`
}
