package salary

import "context"

type SalaryRepository interface {
	// Create fails with ErrSalaryExists when the employee already has a record for the period.
	Create(ctx context.Context, newSalary Salary) (Salary, error)
	GetByID(ctx context.Context, id string) (Salary, error)
	GetByPeriod(ctx context.Context, employeeID string, month, year int) (Salary, error)
	Update(ctx context.Context, s Salary) (Salary, error)
	Delete(ctx context.Context, id string) error

	GetRecord(ctx context.Context, id string) (Record, error)
	// List orders by year desc, month desc, paid_at desc; employeeID nil lists everyone.
	List(ctx context.Context, employeeID *string) ([]Record, error)
	Stats(ctx context.Context, employeeID *string) (Stats, error)
}
