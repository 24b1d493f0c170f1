package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// GetEmployeeSummary returns active count and average baseline salary in single query
func (r *dashboardRepositoryImpl) GetEmployeeSummary(ctx context.Context) (dashboard.EmployeeSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*),
			COALESCE(ROUND(AVG(salary), 2), 0)
		FROM employees
		WHERE status = 'active'
	`

	var stats dashboard.EmployeeSummary
	if err := q.QueryRow(ctx, query).Scan(&stats.Active, &stats.AvgSalary); err != nil {
		return dashboard.EmployeeSummary{}, fmt.Errorf("failed to get employee summary: %w", err)
	}
	return stats, nil
}

// GetAttendanceSummary counts on-time and late clock-ins for a date
func (r *dashboardRepositoryImpl) GetAttendanceSummary(ctx context.Context, date string) (dashboard.AttendanceSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'present'),
			COUNT(*) FILTER (WHERE status = 'late')
		FROM attendance
		WHERE date = $1::date
	`

	var stats dashboard.AttendanceSummary
	if err := q.QueryRow(ctx, query, date).Scan(&stats.Present, &stats.Late); err != nil {
		return dashboard.AttendanceSummary{}, fmt.Errorf("failed to get attendance summary: %w", err)
	}
	return stats, nil
}

func (r *dashboardRepositoryImpl) GetSalarySummary(ctx context.Context) (dashboard.SalarySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE status = 'paid'), 0),
			COUNT(*) FILTER (WHERE status = 'paid'),
			COUNT(*) FILTER (WHERE status = 'pending')
		FROM salaries
	`

	var stats dashboard.SalarySummary
	if err := q.QueryRow(ctx, query).Scan(&stats.TotalPaid, &stats.Paid, &stats.Pending); err != nil {
		return dashboard.SalarySummary{}, fmt.Errorf("failed to get salary summary: %w", err)
	}
	return stats, nil
}

func (r *dashboardRepositoryImpl) GetLeaveSummary(ctx context.Context) (dashboard.LeaveSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'approved'),
			COUNT(*) FILTER (WHERE status = 'rejected')
		FROM leave_applications
	`

	var stats dashboard.LeaveSummary
	if err := q.QueryRow(ctx, query).Scan(&stats.Pending, &stats.Approved, &stats.Rejected); err != nil {
		return dashboard.LeaveSummary{}, fmt.Errorf("failed to get leave summary: %w", err)
	}
	return stats, nil
}

func (r *dashboardRepositoryImpl) CountDocuments(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM documents`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}
	return count, nil
}
