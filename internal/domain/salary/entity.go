package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusPaid
}

// Salary is one employee's pay for one month. Amount is always derived from
// the three components and never taken from callers.
type Salary struct {
	ID         string          `json:"id"`
	EmployeeID string          `json:"employeeId"`
	Month      int             `json:"month"`
	Year       int             `json:"year"`
	BaseSalary decimal.Decimal `json:"baseSalary"`
	Incentives decimal.Decimal `json:"incentives"`
	Deductions decimal.Decimal `json:"deductions"`
	Amount     decimal.Decimal `json:"amount"`
	Status     Status          `json:"status"`
	PaidAt     *time.Time      `json:"paidAt"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// NetAmount is base + incentives - deductions.
func NetAmount(base, incentives, deductions decimal.Decimal) decimal.Decimal {
	return base.Add(incentives).Sub(deductions)
}

func (s *Salary) Recompute() {
	s.Amount = NetAmount(s.BaseSalary, s.Incentives, s.Deductions)
}

// SetStatus moves the record to status. Becoming paid stamps PaidAt with now,
// going back to pending clears it.
func (s *Salary) SetStatus(status Status, now time.Time) {
	if s.Status == status {
		return
	}
	s.Status = status
	if status == StatusPaid {
		paidAt := now
		s.PaidAt = &paidAt
	} else {
		s.PaidAt = nil
	}
}

// Apply merges changes into s and recomputes the amount.
func (s *Salary) Apply(c Changes, now time.Time) {
	if c.BaseSalary != nil {
		s.BaseSalary = *c.BaseSalary
	}
	if c.Incentives != nil {
		s.Incentives = *c.Incentives
	}
	if c.Deductions != nil {
		s.Deductions = *c.Deductions
	}
	if c.Status != nil {
		s.SetStatus(*c.Status, now)
	}
	s.Recompute()
}

// Record is a salary row joined with the employee's account and profile.
type Record struct {
	Salary
	UserID     string `json:"userId"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Position   string `json:"position"`
	Department string `json:"department"`
}

type Stats struct {
	TotalPaid     decimal.Decimal `json:"totalPaid"`
	TotalPending  decimal.Decimal `json:"totalPending"`
	AverageSalary decimal.Decimal `json:"averageSalary"`
	TotalRecords  int             `json:"totalRecords"`
}
