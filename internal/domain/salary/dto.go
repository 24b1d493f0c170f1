package salary

import (
	"encoding/json"
	"strings"

	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

const (
	minYear = 1900
	maxYear = 9999
)

// CreateRequest accepts amounts as JSON numbers or numeric strings.
type CreateRequest struct {
	EmployeeID string          `json:"employeeId"` // account id
	Month      json.Number     `json:"month"`
	Year       json.Number     `json:"year"`
	BaseSalary json.RawMessage `json:"baseSalary"`
	Incentives json.RawMessage `json:"incentives"`
	Deductions json.RawMessage `json:"deductions"`
	Status     Status          `json:"status"`
}

// NewSalary is a validated CreateRequest.
type NewSalary struct {
	UserID     string
	Month      int
	Year       int
	BaseSalary decimal.Decimal
	Incentives decimal.Decimal
	Deductions decimal.Decimal
	Status     Status
}

func (r *CreateRequest) Validate() (NewSalary, error) {
	var errs validator.ValidationErrors

	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	base, basePresent, baseErr := parseAmount(r.BaseSalary)
	if r.EmployeeID == "" || r.Month == "" || r.Year == "" || !basePresent {
		errs = append(errs, validator.ValidationError{
			Field:   "fields",
			Message: "Employee ID, month, year, and base salary are required",
		})
		return NewSalary{}, errs
	}

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "Invalid employee ID"})
	}

	month, err := r.Month.Int64()
	if err != nil || month < 1 || month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "Month must be between 1 and 12"})
	}
	year, err := r.Year.Int64()
	if err != nil || year < minYear || year > maxYear {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "Invalid year"})
	}

	if baseErr != nil || !validator.IsNonNegative(base) {
		errs = append(errs, validator.ValidationError{Field: "baseSalary", Message: "Invalid base salary amount"})
	}
	incentives, _, err := parseAmount(r.Incentives)
	if err != nil || !validator.IsNonNegative(incentives) {
		errs = append(errs, validator.ValidationError{Field: "incentives", Message: "Invalid incentives amount"})
	}
	deductions, _, err := parseAmount(r.Deductions)
	if err != nil || !validator.IsNonNegative(deductions) {
		errs = append(errs, validator.ValidationError{Field: "deductions", Message: "Invalid deductions amount"})
	}

	status := r.Status
	if status == "" {
		status = StatusPending
	}
	if !status.IsValid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "Status must be pending or paid"})
	}

	if len(errs) > 0 {
		return NewSalary{}, errs
	}

	return NewSalary{
		UserID:     r.EmployeeID,
		Month:      int(month),
		Year:       int(year),
		BaseSalary: base,
		Incentives: incentives,
		Deductions: deductions,
		Status:     status,
	}, nil
}

// UpdateRequest is a partial update; absent or null fields keep their value.
type UpdateRequest struct {
	BaseSalary json.RawMessage `json:"baseSalary"`
	Incentives json.RawMessage `json:"incentives"`
	Deductions json.RawMessage `json:"deductions"`
	Status     *Status         `json:"status"`
}

// Changes is a validated UpdateRequest.
type Changes struct {
	BaseSalary *decimal.Decimal
	Incentives *decimal.Decimal
	Deductions *decimal.Decimal
	Status     *Status
}

func (r *UpdateRequest) Validate() (Changes, error) {
	var errs validator.ValidationErrors
	var c Changes

	field := func(raw json.RawMessage, name, message string) *decimal.Decimal {
		d, present, err := parseAmount(raw)
		if !present && err == nil {
			return nil
		}
		if err != nil || !validator.IsNonNegative(d) {
			errs = append(errs, validator.ValidationError{Field: name, Message: message})
			return nil
		}
		return &d
	}
	c.BaseSalary = field(r.BaseSalary, "baseSalary", "Invalid base salary amount")
	c.Incentives = field(r.Incentives, "incentives", "Invalid incentives amount")
	c.Deductions = field(r.Deductions, "deductions", "Invalid deductions amount")

	if r.Status != nil {
		if !r.Status.IsValid() {
			errs = append(errs, validator.ValidationError{Field: "status", Message: "Status must be pending or paid"})
		}
		c.Status = r.Status
	}

	if len(errs) > 0 {
		return Changes{}, errs
	}
	if c.BaseSalary == nil && c.Incentives == nil && c.Deductions == nil && c.Status == nil {
		return Changes{}, validator.ValidationErrors{{Field: "fields", Message: "No fields to update"}}
	}
	return c, nil
}

// parseAmount reads a JSON number or a numeric string. present is false when
// the value is absent, null or an empty string.
func parseAmount(raw json.RawMessage) (d decimal.Decimal, present bool, err error) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return decimal.Zero, false, nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return decimal.Zero, true, err
		}
		s = strings.TrimSpace(str)
		if s == "" {
			return decimal.Zero, false, nil
		}
	}
	d, err = decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, true, err
	}
	return d, true, nil
}
