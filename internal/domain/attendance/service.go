package attendance

import (
	"context"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
)

type AttendanceService interface {
	ClockIn(ctx context.Context, identity user.Identity) (Attendance, error)
	ClockOut(ctx context.Context, identity user.Identity, req ClockOutRequest) (Attendance, error)
	History(ctx context.Context, identity user.Identity, userID string, limit int) ([]Attendance, error)
	ListByDate(ctx context.Context, date string) ([]Record, error)
	ListToday(ctx context.Context) ([]Record, error)
	StatsForToday(ctx context.Context) (TodayStats, error)
}
