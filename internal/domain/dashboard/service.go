package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetStats aggregates the ledgers for today; it never writes
	GetStats(ctx context.Context) (StatsResponse, error)
}
