package leave

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/validator"
)

type ApplyRequest struct {
	LeaveType  string `json:"leaveType"`
	Department string `json:"department"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Reason     string `json:"reason"`
}

// Validate checks the request against today, which must be a local midnight.
// On success it returns the parsed start and end dates.
func (r *ApplyRequest) Validate(today time.Time) (time.Time, time.Time, error) {
	var errs validator.ValidationErrors

	r.LeaveType = strings.TrimSpace(r.LeaveType)
	r.Department = strings.TrimSpace(r.Department)
	r.StartDate = strings.TrimSpace(r.StartDate)
	r.EndDate = strings.TrimSpace(r.EndDate)
	r.Reason = strings.TrimSpace(r.Reason)

	if r.LeaveType == "" || r.Department == "" || r.StartDate == "" || r.EndDate == "" {
		errs = append(errs, validator.ValidationError{Field: "fields", Message: "All fields are required"})
		return time.Time{}, time.Time{}, errs
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "startDate", Message: "Start date must be in YYYY-MM-DD format"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "endDate", Message: "End date must be in YYYY-MM-DD format"})
	}
	if len(errs) > 0 {
		return time.Time{}, time.Time{}, errs
	}

	if start.After(end) {
		errs = append(errs, validator.ValidationError{Field: "endDate", Message: "End date must be after start date"})
	}
	todayUTC := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if start.Before(todayUTC) {
		errs = append(errs, validator.ValidationError{Field: "startDate", Message: "Start date cannot be in the past"})
	}

	if len(errs) > 0 {
		return time.Time{}, time.Time{}, errs
	}
	return start, end, nil
}

type SetStatusRequest struct {
	Status Status `json:"status"`
}

func (r *SetStatusRequest) Validate() error {
	if !r.Status.IsDecision() {
		return validator.ValidationErrors{{Field: "status", Message: "Invalid status"}}
	}
	return nil
}

// Filter narrows the admin listing. Empty fields are ignored, as is status "all".
type Filter struct {
	Status string
	UserID string
	Name   string
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	f.Status = strings.TrimSpace(f.Status)
	f.UserID = strings.TrimSpace(f.UserID)
	f.Name = strings.TrimSpace(f.Name)

	if f.Status == "all" {
		f.Status = ""
	}
	if f.Status != "" && !validator.IsInSlice(f.Status, []string{string(StatusPending), string(StatusApproved), string(StatusRejected)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "Invalid status"})
	}
	if f.UserID != "" && !validator.IsValidUUID(f.UserID) {
		errs = append(errs, validator.ValidationError{Field: "empId", Message: "Invalid employee ID"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
