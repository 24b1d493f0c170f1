package document

import (
	"context"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
)

type DocumentService interface {
	Upload(ctx context.Context, identity user.Identity, req UploadRequest) (Document, error)
	ListAll(ctx context.Context) ([]Record, error)
	ListMine(ctx context.Context, identity user.Identity) ([]Document, error)
	Download(ctx context.Context, identity user.Identity, id string) (Download, error)
	Delete(ctx context.Context, identity user.Identity, id string) error

	// EmployeeFiles lists the storage paths owned by an employee profile.
	EmployeeFiles(ctx context.Context, employeeID string) ([]string, error)
	// RemoveFiles deletes blobs best-effort, logging failures.
	RemoveFiles(ctx context.Context, paths []string)
}
