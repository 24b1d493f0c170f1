package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("Employee not found")
	ErrProfileNotFound  = errors.New("Employee record not found. Please contact administrator.")
	ErrNoFieldsToUpdate = errors.New("No fields to update")
)
