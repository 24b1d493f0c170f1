package employee

import "context"

type EmployeeService interface {
	List(ctx context.Context) ([]Entry, error)
	Get(ctx context.Context, userID string) (Entry, error)
	Create(ctx context.Context, req CreateRequest) (Entry, error)
	Update(ctx context.Context, userID string, req UpdateRequest) (Entry, error)
	Delete(ctx context.Context, userID string) error
}
