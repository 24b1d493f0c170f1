package employee

import (
	"strings"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateRequest struct {
	FirstName  string           `json:"firstName"`
	LastName   string           `json:"lastName"`
	Email      string           `json:"email"`
	Password   string           `json:"password"`
	Phone      string           `json:"phone"`
	Position   string           `json:"position"`
	Department string           `json:"department"`
	HireDate   string           `json:"hireDate"`
	Salary     *decimal.Decimal `json:"salary"`
	Status     Status           `json:"status"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.TrimSpace(r.Email)
	r.Position = strings.TrimSpace(r.Position)
	r.Department = strings.TrimSpace(r.Department)
	r.Phone = strings.TrimSpace(r.Phone)

	if r.FirstName == "" || r.LastName == "" || r.Email == "" || r.Password == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "fields",
			Message: "First name, last name, email, and password are required",
		})
		return errs
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "Invalid email format"})
	}
	if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "Password must be at least 6 characters"})
	}
	if r.Phone != "" && !validator.IsValidPhoneNumber(r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "Invalid phone number"})
	}
	if r.HireDate != "" {
		if _, ok := validator.IsValidDate(r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "hireDate", Message: "Hire date must be in YYYY-MM-DD format"})
		}
	}
	if r.Salary != nil && !validator.IsNonNegative(*r.Salary) {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "Invalid salary amount"})
	}

	if r.Position == "" {
		r.Position = DefaultPosition
	}
	if r.Department == "" {
		r.Department = DefaultDepartment
	}
	if r.Status == "" {
		r.Status = StatusActive
	}
	if !r.Status.IsValid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "Status must be active or inactive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateRequest is a partial update; nil fields keep their stored value.
type UpdateRequest struct {
	FirstName  *string          `json:"firstName"`
	LastName   *string          `json:"lastName"`
	Email      *string          `json:"email"`
	Phone      *string          `json:"phone"`
	Position   *string          `json:"position"`
	Department *string          `json:"department"`
	HireDate   *string          `json:"hireDate"`
	Salary     *decimal.Decimal `json:"salary"`
	Status     *Status          `json:"status"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	trim := func(s *string) {
		if s != nil {
			*s = strings.TrimSpace(*s)
		}
	}
	trim(r.FirstName)
	trim(r.LastName)
	trim(r.Email)
	trim(r.Phone)
	trim(r.Position)
	trim(r.Department)
	trim(r.HireDate)

	if r.FirstName != nil && *r.FirstName == "" {
		errs = append(errs, validator.ValidationError{Field: "firstName", Message: "First name cannot be empty"})
	}
	if r.LastName != nil && *r.LastName == "" {
		errs = append(errs, validator.ValidationError{Field: "lastName", Message: "Last name cannot be empty"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "Invalid email format"})
	}
	if r.Phone != nil && *r.Phone != "" && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "Invalid phone number"})
	}
	if r.Position != nil && *r.Position == "" {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "Position cannot be empty"})
	}
	if r.Department != nil && *r.Department == "" {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "Department cannot be empty"})
	}
	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "hireDate", Message: "Hire date must be in YYYY-MM-DD format"})
		}
	}
	if r.Salary != nil && !validator.IsNonNegative(*r.Salary) {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "Invalid salary amount"})
	}
	if r.Status != nil && !r.Status.IsValid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "Status must be active or inactive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AccountFields returns the part of the update stored on the account.
func (r UpdateRequest) AccountFields() user.UpdateUserRequest {
	return user.UpdateUserRequest{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
	}
}

// ProfileFields returns the part of the update stored on the employee profile.
func (r UpdateRequest) ProfileFields() UpdateProfileFields {
	return UpdateProfileFields{
		Phone:      r.Phone,
		Position:   r.Position,
		Department: r.Department,
		HireDate:   r.HireDate,
		Salary:     r.Salary,
		Status:     r.Status,
	}
}

func (r UpdateRequest) IsEmpty() bool {
	return r.AccountFields().IsEmpty() && r.ProfileFields().IsEmpty()
}

type UpdateProfileFields struct {
	Phone      *string
	Position   *string
	Department *string
	HireDate   *string
	Salary     *decimal.Decimal
	Status     *Status
}

func (f UpdateProfileFields) IsEmpty() bool {
	return f.Phone == nil && f.Position == nil && f.Department == nil &&
		f.HireDate == nil && f.Salary == nil && f.Status == nil
}
