package leave

import (
	"context"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
)

type LeaveService interface {
	Apply(ctx context.Context, identity user.Identity, req ApplyRequest) (Leave, error)
	ListMine(ctx context.Context, identity user.Identity) ([]Leave, error)
	ListAll(ctx context.Context, filter Filter) ([]Record, error)
	SetStatus(ctx context.Context, id string, req SetStatusRequest) (Leave, error)
	Delete(ctx context.Context, identity user.Identity, id string) error
	Stats(ctx context.Context) (Stats, error)
}
