package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

type DashboardJobs struct {
	dashboardSvc dashboard.DashboardService
	gauge        *prometheus.GaugeVec
}

func NewDashboardJobs(dashboardSvc dashboard.DashboardService) *DashboardJobs {
	return &DashboardJobs{
		dashboardSvc: dashboardSvc,
		gauge:        metrics.Workforce,
	}
}

func (j *DashboardJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("refresh_workforce_gauges", interval, j.RefreshWorkforceGauges)
}

// RefreshWorkforceGauges copies the current dashboard counters into the
// ems_workforce gauge so they can be scraped and alerted on.
func (j *DashboardJobs) RefreshWorkforceGauges(ctx context.Context) error {
	stats, err := j.dashboardSvc.GetStats(ctx)
	if err != nil {
		return fmt.Errorf("load dashboard stats: %w", err)
	}

	j.gauge.WithLabelValues("active_employees").Set(float64(stats.TotalEmployees))
	j.gauge.WithLabelValues("present_today").Set(float64(stats.PresentToday))
	j.gauge.WithLabelValues("late_today").Set(float64(stats.AttendanceOverview.Late))
	j.gauge.WithLabelValues("pending_leaves").Set(float64(stats.PendingLeaves))
	j.gauge.WithLabelValues("pending_salaries").Set(float64(stats.SalaryDistribution.Pending))
	j.gauge.WithLabelValues("documents").Set(float64(stats.DocumentsUploaded))
	return nil
}
