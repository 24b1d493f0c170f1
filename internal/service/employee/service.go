package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/document"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/salary"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	transactor      database.Transactor
	userRepo        user.UserRepository
	employeeRepo    employee.EmployeeRepository
	salaryService   salary.SalaryService
	documentService document.DocumentService
	clock           clock.Clock
}

func NewEmployeeService(
	transactor database.Transactor,
	userRepo user.UserRepository,
	employeeRepo employee.EmployeeRepository,
	salaryService salary.SalaryService,
	documentService document.DocumentService,
	clk clock.Clock,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		transactor:      transactor,
		userRepo:        userRepo,
		employeeRepo:    employeeRepo,
		salaryService:   salaryService,
		documentService: documentService,
		clock:           clk,
	}
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.Entry, error) {
	return s.employeeRepo.List(ctx)
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, userID string) (employee.Entry, error) {
	return s.employeeRepo.GetEntry(ctx, userID)
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateRequest) (employee.Entry, error) {
	if err := req.Validate(); err != nil {
		return employee.Entry{}, err
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return employee.Entry{}, err
	}
	if exists {
		return employee.Entry{}, user.ErrUserEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.Entry{}, fmt.Errorf("failed to hash password: %w", err)
	}

	hireDate := req.HireDate
	if hireDate == "" {
		hireDate = clock.DateString(s.clock.Now())
	}

	var userID string
	err = s.transactor.WithinTransaction(ctx, func(txCtx context.Context) error {
		created, err := s.userRepo.Create(txCtx, user.User{
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Email:        req.Email,
			PasswordHash: string(hash),
			Role:         user.RoleEmployee,
		})
		if err != nil {
			return err
		}
		userID = created.ID

		profile := employee.NewProfile(created.ID, hireDate)
		profile.Phone = req.Phone
		profile.Position = req.Position
		profile.Department = req.Department
		profile.Status = req.Status
		if req.Salary != nil {
			profile.Salary = decimal.NewNullDecimal(*req.Salary)
		}

		createdProfile, err := s.employeeRepo.Create(txCtx, profile)
		if err != nil {
			return err
		}

		if req.Salary != nil {
			if _, err := s.salaryService.SyncBaseSalary(txCtx, createdProfile.ID, *req.Salary); err != nil {
				return fmt.Errorf("failed to record initial salary: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return employee.Entry{}, err
	}

	return s.employeeRepo.GetEntry(ctx, userID)
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, userID string, req employee.UpdateRequest) (employee.Entry, error) {
	if err := req.Validate(); err != nil {
		return employee.Entry{}, err
	}
	if req.IsEmpty() {
		return employee.Entry{}, employee.ErrNoFieldsToUpdate
	}

	current, err := s.employeeRepo.GetEntry(ctx, userID)
	if err != nil {
		return employee.Entry{}, err
	}

	err = s.transactor.WithinTransaction(ctx, func(txCtx context.Context) error {
		if account := req.AccountFields(); !account.IsEmpty() {
			if err := s.userRepo.Update(txCtx, userID, account); err != nil {
				return err
			}
		}
		if profile := req.ProfileFields(); !profile.IsEmpty() {
			if err := s.employeeRepo.Update(txCtx, userID, profile); err != nil {
				return err
			}
		}
		if req.Salary != nil {
			if _, err := s.salaryService.SyncBaseSalary(txCtx, current.EmployeeID, *req.Salary); err != nil {
				return fmt.Errorf("failed to sync salary: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return employee.Entry{}, employee.ErrEmployeeNotFound
		}
		return employee.Entry{}, err
	}

	return s.employeeRepo.GetEntry(ctx, userID)
}

// Delete implements employee.EmployeeService. Ledger rows go with the
// account through foreign keys; stored files are removed afterwards.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, userID string) error {
	current, err := s.employeeRepo.GetEntry(ctx, userID)
	if err != nil {
		return err
	}

	files, err := s.documentService.EmployeeFiles(ctx, current.EmployeeID)
	if err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return employee.ErrEmployeeNotFound
		}
		return err
	}

	s.documentService.RemoveFiles(ctx, files)
	return nil
}
