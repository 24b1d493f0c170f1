package salary

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/salary"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/render"
	"github.com/shopspring/decimal"
)

type SalaryServiceImpl struct {
	transactor   database.Transactor
	salaryRepo   salary.SalaryRepository
	employeeRepo employee.EmployeeRepository
	clock        clock.Clock
}

func NewSalaryService(
	transactor database.Transactor,
	salaryRepo salary.SalaryRepository,
	employeeRepo employee.EmployeeRepository,
	clk clock.Clock,
) salary.SalaryService {
	return &SalaryServiceImpl{
		transactor:   transactor,
		salaryRepo:   salaryRepo,
		employeeRepo: employeeRepo,
		clock:        clk,
	}
}

// profileFor resolves the employee profile of an account; an account without
// one is reported as an unknown employee.
func (s *SalaryServiceImpl) profileFor(ctx context.Context, userID string) (employee.Employee, error) {
	profile, err := s.employeeRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, employee.ErrProfileNotFound) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return profile, nil
}

// Create implements salary.SalaryService.
func (s *SalaryServiceImpl) Create(ctx context.Context, req salary.CreateRequest) (salary.Salary, error) {
	v, err := req.Validate()
	if err != nil {
		return salary.Salary{}, err
	}

	profile, err := s.profileFor(ctx, v.UserID)
	if err != nil {
		return salary.Salary{}, err
	}

	record := salary.Salary{
		EmployeeID: profile.ID,
		Month:      v.Month,
		Year:       v.Year,
		BaseSalary: v.BaseSalary,
		Incentives: v.Incentives,
		Deductions: v.Deductions,
		Status:     salary.StatusPending,
	}
	record.SetStatus(v.Status, s.clock.Now())
	record.Recompute()

	return s.salaryRepo.Create(ctx, record)
}

// Update implements salary.SalaryService.
func (s *SalaryServiceImpl) Update(ctx context.Context, id string, req salary.UpdateRequest) (salary.Salary, error) {
	changes, err := req.Validate()
	if err != nil {
		return salary.Salary{}, err
	}

	var updated salary.Salary
	err = s.transactor.WithinTransaction(ctx, func(txCtx context.Context) error {
		current, err := s.salaryRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		current.Apply(changes, s.clock.Now())
		updated, err = s.salaryRepo.Update(txCtx, current)
		return err
	})
	if err != nil {
		return salary.Salary{}, err
	}
	return updated, nil
}

// Delete implements salary.SalaryService.
func (s *SalaryServiceImpl) Delete(ctx context.Context, id string) error {
	return s.salaryRepo.Delete(ctx, id)
}

// List implements salary.SalaryService.
func (s *SalaryServiceImpl) List(ctx context.Context) ([]salary.Record, error) {
	return s.salaryRepo.List(ctx, nil)
}

// ListMine implements salary.SalaryService.
func (s *SalaryServiceImpl) ListMine(ctx context.Context, identity user.Identity) ([]salary.Record, error) {
	profile, err := s.employeeRepo.GetByUserID(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}
	return s.salaryRepo.List(ctx, &profile.ID)
}

// ListByEmployee implements salary.SalaryService.
func (s *SalaryServiceImpl) ListByEmployee(ctx context.Context, identity user.Identity, userID string) ([]salary.Record, error) {
	if identity.UserID != userID && !user.HasPermission(identity.Role, user.PermissionSalaryViewAll) {
		return nil, user.ErrAccessDenied
	}
	profile, err := s.profileFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.salaryRepo.List(ctx, &profile.ID)
}

// StatsForAdmin implements salary.SalaryService.
func (s *SalaryServiceImpl) StatsForAdmin(ctx context.Context) (salary.Stats, error) {
	return s.salaryRepo.Stats(ctx, nil)
}

// StatsForEmployee implements salary.SalaryService.
func (s *SalaryServiceImpl) StatsForEmployee(ctx context.Context, identity user.Identity) (salary.Stats, error) {
	profile, err := s.employeeRepo.GetByUserID(ctx, identity.UserID)
	if err != nil {
		return salary.Stats{}, err
	}
	return s.salaryRepo.Stats(ctx, &profile.ID)
}

// SyncBaseSalary implements salary.SalaryService.
func (s *SalaryServiceImpl) SyncBaseSalary(ctx context.Context, employeeID string, base decimal.Decimal) (salary.Salary, error) {
	now := s.clock.Now()
	month, year := int(now.Month()), now.Year()

	var synced salary.Salary
	err := s.transactor.WithinTransaction(ctx, func(txCtx context.Context) error {
		current, err := s.salaryRepo.GetByPeriod(txCtx, employeeID, month, year)
		switch {
		case errors.Is(err, salary.ErrSalaryNotFound):
			record := salary.Salary{
				EmployeeID: employeeID,
				Month:      month,
				Year:       year,
				BaseSalary: base,
				Incentives: decimal.Zero,
				Deductions: decimal.Zero,
				Status:     salary.StatusPending,
			}
			record.SetStatus(salary.StatusPaid, now)
			record.Recompute()
			synced, err = s.salaryRepo.Create(txCtx, record)
			return err
		case err != nil:
			return err
		}

		current.BaseSalary = base
		current.SetStatus(salary.StatusPaid, now)
		current.Recompute()
		synced, err = s.salaryRepo.Update(txCtx, current)
		return err
	})
	if err != nil {
		return salary.Salary{}, err
	}
	return synced, nil
}

// Payslip implements salary.SalaryService.
func (s *SalaryServiceImpl) Payslip(ctx context.Context, identity user.Identity, id string) (salary.File, error) {
	rec, err := s.salaryRepo.GetRecord(ctx, id)
	if err != nil {
		return salary.File{}, err
	}
	if rec.UserID != identity.UserID && !user.HasPermission(identity.Role, user.PermissionSalaryViewAll) {
		return salary.File{}, user.ErrAccessDenied
	}

	content, err := render.Payslip(rec, s.clock.Now())
	if err != nil {
		return salary.File{}, fmt.Errorf("failed to render payslip %s: %w", id, err)
	}
	return salary.File{
		Name:        render.PayslipName(rec),
		ContentType: render.PDFContentType,
		Content:     content,
	}, nil
}

// Export implements salary.SalaryService.
func (s *SalaryServiceImpl) Export(ctx context.Context) (salary.File, error) {
	records, err := s.salaryRepo.List(ctx, nil)
	if err != nil {
		return salary.File{}, err
	}

	content, err := render.SalaryWorkbook(records)
	if err != nil {
		return salary.File{}, fmt.Errorf("failed to export salaries: %w", err)
	}
	return salary.File{
		Name:        render.WorkbookName(s.clock.Now()),
		ContentType: render.XLSXContentType,
		Content:     content,
	}, nil
}
