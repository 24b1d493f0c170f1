package dashboard

import (
	"context"
	"math"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/clock"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	clock clock.Clock
}

func NewDashboardService(repo dashboard.DashboardRepository, clk clock.Clock) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
		clock:               clk,
	}
}

// GetStats returns combined dashboard data using parallel goroutines,
// one query per ledger.
func (s *DashboardServiceImpl) GetStats(ctx context.Context) (dashboard.StatsResponse, error) {
	today := clock.DateString(s.clock.Now())

	var (
		employees  dashboard.EmployeeSummary
		attendance dashboard.AttendanceSummary
		salaries   dashboard.SalarySummary
		leaves     dashboard.LeaveSummary
		documents  int
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		employees, err = s.GetEmployeeSummary(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		attendance, err = s.GetAttendanceSummary(gCtx, today)
		return err
	})

	g.Go(func() error {
		var err error
		salaries, err = s.GetSalarySummary(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		leaves, err = s.GetLeaveSummary(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		documents, err = s.CountDocuments(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return dashboard.StatsResponse{}, err
	}

	// Late arrivals still count as present.
	present := attendance.Present + attendance.Late

	return dashboard.StatsResponse{
		TotalEmployees:    employees.Active,
		PresentToday:      present,
		TotalSalaryPaid:   salaries.TotalPaid,
		DocumentsUploaded: documents,
		AttendanceRate:    attendanceRate(present, employees.Active),
		AvgSalary:         employees.AvgSalary,
		ApprovedLeaves:    leaves.Approved,
		PendingLeaves:     leaves.Pending,
		AttendanceOverview: dashboard.AttendanceOverview{
			Present: attendance.Present,
			Late:    attendance.Late,
			Absent:  max(employees.Active-present, 0),
		},
		SalaryDistribution: dashboard.SalaryDistribution{
			Paid:    salaries.Paid,
			Pending: salaries.Pending,
		},
		LeaveStatus: dashboard.LeaveStatus{
			Pending:  leaves.Pending,
			Approved: leaves.Approved,
			Rejected: leaves.Rejected,
		},
	}, nil
}

func attendanceRate(present, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(present) / float64(total) * 100))
}
