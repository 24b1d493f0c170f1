package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	Create(ctx context.Context, newLeave Leave) (Leave, error)
	GetByID(ctx context.Context, id string) (Leave, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Leave, error)
	List(ctx context.Context, filter Filter) ([]Record, error)
	// Decide moves a pending application to status; ErrLeaveAlreadyProcessed if it was not pending.
	Decide(ctx context.Context, id string, status Status, at time.Time) (Leave, error)
	Delete(ctx context.Context, id string) (bool, error)
	DeletePendingOwned(ctx context.Context, id, employeeID string) (bool, error)
	Stats(ctx context.Context) (Stats, error)
}
