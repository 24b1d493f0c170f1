package salary

import (
	"context"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
)

type SalaryService interface {
	Create(ctx context.Context, req CreateRequest) (Salary, error)
	Update(ctx context.Context, id string, req UpdateRequest) (Salary, error)
	Delete(ctx context.Context, id string) error

	List(ctx context.Context) ([]Record, error)
	ListMine(ctx context.Context, identity user.Identity) ([]Record, error)
	ListByEmployee(ctx context.Context, identity user.Identity, userID string) ([]Record, error)

	StatsForAdmin(ctx context.Context) (Stats, error)
	StatsForEmployee(ctx context.Context, identity user.Identity) (Stats, error)

	// SyncBaseSalary records base as the paid salary of the current period for
	// the employee profile, creating the record if needed.
	SyncBaseSalary(ctx context.Context, employeeID string, base decimal.Decimal) (Salary, error)

	Payslip(ctx context.Context, identity user.Identity, id string) (File, error)
	Export(ctx context.Context) (File, error)
}

// File is a rendered download.
type File struct {
	Name        string
	ContentType string
	Content     []byte
}
