package attendance

import (
	"context"
	"errors"
	"time"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	clock      clock.Clock
	lateCutoff time.Duration
}

// ClockIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context, identity user.Identity) (attendance.Attendance, error) {
	profile, err := a.EmployeeRepository.GetByUserID(ctx, identity.UserID)
	if err != nil {
		return attendance.Attendance{}, err
	}

	now := a.clock.Now()
	record, err := a.AttendanceRepository.Create(ctx, attendance.Attendance{
		EmployeeID: profile.ID,
		Date:       clock.DateString(now),
		CheckIn:    now,
		Status:     attendance.StatusAt(now, a.lateCutoff),
	})
	if err != nil {
		return attendance.Attendance{}, err
	}

	metrics.AttendanceClockIns.WithLabelValues(string(record.Status)).Inc()
	return record, nil
}

// ClockOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context, identity user.Identity, req attendance.ClockOutRequest) (attendance.Attendance, error) {
	if err := req.Validate(); err != nil {
		return attendance.Attendance{}, err
	}

	profile, err := a.EmployeeRepository.GetByUserID(ctx, identity.UserID)
	if err != nil {
		return attendance.Attendance{}, err
	}

	record, err := a.GetByIDForEmployee(ctx, req.AttendanceID, profile.ID)
	if err != nil {
		return attendance.Attendance{}, err
	}
	if record.IsClockedOut() {
		return attendance.Attendance{}, attendance.ErrAlreadyClockedOut
	}

	now := a.clock.Now()
	if now.Before(record.CheckIn) {
		return attendance.Attendance{}, attendance.ErrClockOutBeforeClockIn
	}

	return a.SetCheckOut(ctx, record.ID, now)
}

// History implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) History(ctx context.Context, identity user.Identity, userID string, limit int) ([]attendance.Attendance, error) {
	if identity.UserID != userID && !user.HasPermission(identity.Role, user.PermissionAttendanceViewAll) {
		return nil, user.ErrAccessDenied
	}

	profile, err := a.EmployeeRepository.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, employee.ErrProfileNotFound) && identity.UserID != userID {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}

	return a.ListByEmployee(ctx, profile.ID, attendance.ClampLimit(limit))
}

// ListByDate implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListByDate(ctx context.Context, date string) ([]attendance.Record, error) {
	if _, ok := validator.IsValidDate(date); !ok {
		return nil, validator.ValidationErrors{{Field: "date", Message: "Date must be in YYYY-MM-DD format"}}
	}
	return a.AttendanceRepository.ListByDate(ctx, date)
}

// ListToday implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListToday(ctx context.Context) ([]attendance.Record, error) {
	return a.AttendanceRepository.ListByDate(ctx, clock.DateString(a.clock.Now()))
}

// StatsForToday implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) StatsForToday(ctx context.Context) (attendance.TodayStats, error) {
	today := clock.DateString(a.clock.Now())

	records, err := a.AttendanceRepository.ListByDate(ctx, today)
	if err != nil {
		return attendance.TodayStats{}, err
	}
	total, err := a.CountActive(ctx)
	if err != nil {
		return attendance.TodayStats{}, err
	}

	stats := attendance.TodayStats{Date: today, Total: total, Records: records}
	for _, r := range records {
		switch r.Status {
		case attendance.StatusPresent:
			stats.Present++
		case attendance.StatusLate:
			stats.Present++
			stats.Late++
		}
		if !r.IsClockedOut() {
			stats.ClockedIn++
		}
	}
	stats.Absent = max(stats.Total-stats.Present, 0)

	return stats, nil
}

func NewAttendanceService(
	attendanceRepository attendance.AttendanceRepository,
	employeeRepository employee.EmployeeRepository,
	clk clock.Clock,
	lateCutoff time.Duration,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		EmployeeRepository:   employeeRepository,
		clock:                clk,
		lateCutoff:           lateCutoff,
	}
}
