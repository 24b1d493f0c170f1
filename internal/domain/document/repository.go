package document

import "context"

type DocumentRepository interface {
	Create(ctx context.Context, newDocument Document) (Document, error)
	GetByID(ctx context.Context, id string) (Document, error)
	List(ctx context.Context) ([]Record, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Document, error)
	Delete(ctx context.Context, id string) error
}
