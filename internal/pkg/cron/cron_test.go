package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/dashboard"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RunsUntilCancelled(t *testing.T) {
	var runs atomic.Int32
	s := NewScheduler()
	s.AddJob("count", 10*time.Millisecond, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	require.Eventually(t, func() bool { return runs.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
	s.Wait()

	stopped := runs.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, runs.Load())
}

func TestScheduler_SkipsDisabledJobs(t *testing.T) {
	var runs int
	s := NewScheduler()
	s.AddJob("disabled", 0, func(ctx context.Context) error {
		runs++
		return nil
	})
	s.AddJob("failing", time.Minute, func(ctx context.Context) error {
		runs++
		return errors.New("boom")
	})

	s.RunOnce(context.Background())

	assert.Equal(t, 1, runs)
}

type stubDashboardService struct {
	stats dashboard.StatsResponse
	err   error
}

func (s stubDashboardService) GetStats(ctx context.Context) (dashboard.StatsResponse, error) {
	return s.stats, s.err
}

func newTestJobs(svc dashboard.DashboardService) *DashboardJobs {
	return &DashboardJobs{
		dashboardSvc: svc,
		gauge: prometheus.NewGaugeVec(prometheus.GaugeOpts{Name: "test_workforce"}, []string{"metric"}),
	}
}

func TestRefreshWorkforceGauges(t *testing.T) {
	jobs := newTestJobs(stubDashboardService{stats: dashboard.StatsResponse{
		TotalEmployees:     4,
		PresentToday:       3,
		PendingLeaves:      2,
		DocumentsUploaded:  7,
		AttendanceOverview: dashboard.AttendanceOverview{Present: 2, Late: 1, Absent: 1},
		SalaryDistribution: dashboard.SalaryDistribution{Paid: 5, Pending: 1},
	}})

	require.NoError(t, jobs.RefreshWorkforceGauges(context.Background()))

	assert.Equal(t, 4.0, testutil.ToFloat64(jobs.gauge.WithLabelValues("active_employees")))
	assert.Equal(t, 3.0, testutil.ToFloat64(jobs.gauge.WithLabelValues("present_today")))
	assert.Equal(t, 1.0, testutil.ToFloat64(jobs.gauge.WithLabelValues("late_today")))
	assert.Equal(t, 2.0, testutil.ToFloat64(jobs.gauge.WithLabelValues("pending_leaves")))
	assert.Equal(t, 1.0, testutil.ToFloat64(jobs.gauge.WithLabelValues("pending_salaries")))
	assert.Equal(t, 7.0, testutil.ToFloat64(jobs.gauge.WithLabelValues("documents")))
}

func TestRefreshWorkforceGauges_Error(t *testing.T) {
	boom := errors.New("boom")
	jobs := newTestJobs(stubDashboardService{err: boom})

	err := jobs.RefreshWorkforceGauges(context.Background())

	assert.ErrorIs(t, err, boom)
}
