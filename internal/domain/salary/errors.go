package salary

import "errors"

var (
	ErrSalaryNotFound = errors.New("Salary record not found")
	ErrSalaryExists   = errors.New("Salary record already exists for this employee and period")
)
