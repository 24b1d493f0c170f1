package employee

import (
	"time"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

// Defaults applied to auto-provisioned profiles.
const (
	DefaultPosition   = "Employee"
	DefaultDepartment = "General"
)

// Employee is the profile attached one-to-one to an employee-role account.
type Employee struct {
	ID         string
	UserID     string
	Phone      string
	Position   string
	Department string
	HireDate   *string // YYYY-MM-DD
	Salary     decimal.NullDecimal
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewProfile builds the default profile for a freshly registered employee account.
func NewProfile(userID string, hireDate string) Employee {
	return Employee{
		UserID:     userID,
		Position:   DefaultPosition,
		Department: DefaultDepartment,
		HireDate:   &hireDate,
		Status:     StatusActive,
	}
}

// Entry is a directory row: account and profile joined with the latest salary record.
// Salary is the profile baseline; CurrentSalary is the newest ledger amount and may differ.
type Entry struct {
	ID            string              `json:"id"`
	EmployeeID    string              `json:"employeeId"`
	FirstName     string              `json:"firstName"`
	LastName      string              `json:"lastName"`
	Email         string              `json:"email"`
	Role          user.Role           `json:"role"`
	Phone         string              `json:"phone"`
	Position      string              `json:"position"`
	Department    string              `json:"department"`
	HireDate      *string             `json:"hireDate"`
	Salary        decimal.NullDecimal `json:"salary"`
	Status        Status              `json:"status"`
	CurrentSalary decimal.NullDecimal `json:"currentSalary"`
	SalaryMonth   *int                `json:"salaryMonth,omitempty"`
	SalaryYear    *int                `json:"salaryYear,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
}
