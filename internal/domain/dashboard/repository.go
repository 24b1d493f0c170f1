package dashboard

import (
	"context"

	"github.com/shopspring/decimal"
)

// EmployeeSummary covers active profiles only
type EmployeeSummary struct {
	Active    int
	AvgSalary decimal.Decimal // baseline salary
}

// AttendanceSummary counts one day's records by status
type AttendanceSummary struct {
	Present int
	Late    int
}

type SalarySummary struct {
	TotalPaid decimal.Decimal
	Paid      int
	Pending   int
}

type LeaveSummary struct {
	Pending  int
	Approved int
	Rejected int
}

// DashboardRepository defines the interface for dashboard data access
type DashboardRepository interface {
	GetEmployeeSummary(ctx context.Context) (EmployeeSummary, error)
	GetAttendanceSummary(ctx context.Context, date string) (AttendanceSummary, error)
	GetSalarySummary(ctx context.Context) (SalarySummary, error)
	GetLeaveSummary(ctx context.Context) (LeaveSummary, error)
	CountDocuments(ctx context.Context) (int, error)
}
