package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	Update(ctx context.Context, userID string, req UpdateProfileFields) error

	// Directory reads, keyed by account id
	List(ctx context.Context) ([]Entry, error)
	GetEntry(ctx context.Context, userID string) (Entry, error)

	CountActive(ctx context.Context) (int, error)
}
