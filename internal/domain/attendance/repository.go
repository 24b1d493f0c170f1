package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// Create fails with ErrAlreadyClockedIn when the employee already has a record for the date.
	Create(ctx context.Context, newAttendance Attendance) (Attendance, error)
	GetByIDForEmployee(ctx context.Context, id, employeeID string) (Attendance, error)
	// SetCheckOut fails with ErrAlreadyClockedOut when check-out is already recorded.
	SetCheckOut(ctx context.Context, id string, at time.Time) (Attendance, error)
	ListByEmployee(ctx context.Context, employeeID string, limit int) ([]Attendance, error)
	ListByDate(ctx context.Context, date string) ([]Record, error)
}
