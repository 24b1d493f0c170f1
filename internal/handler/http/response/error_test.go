package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/document"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/salary"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	cases := []struct {
		err     error
		status  int
		message string
	}{
		{attendance.ErrClockOutBeforeClockIn, http.StatusBadRequest, "Clock-out time cannot be before clock-in time"},
		{employee.ErrNoFieldsToUpdate, http.StatusBadRequest, "No fields to update"},
		{auth.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
		{auth.ErrTokenMissing, http.StatusUnauthorized, "Access token required"},
		{user.ErrAdminAccessRequired, http.StatusForbidden, "Admin access required"},
		{auth.ErrAdminSignupDisabled, http.StatusForbidden, "Admin registration is disabled"},
		{user.ErrAccessDenied, http.StatusForbidden, "Access denied"},
		{employee.ErrProfileNotFound, http.StatusNotFound, "Employee record not found. Please contact administrator."},
		{leave.ErrLeaveNotDeletable, http.StatusNotFound, "Leave application not found or cannot be deleted"},
		{document.ErrFileMissing, http.StatusNotFound, "File not found on server"},
		{fmt.Errorf("wrapped: %w", salary.ErrSalaryNotFound), http.StatusNotFound, "Salary record not found"},
		{attendance.ErrAlreadyClockedIn, http.StatusConflict, "Already clocked in today"},
		{salary.ErrSalaryExists, http.StatusConflict, "Salary record already exists for this employee and period"},
		{leave.ErrLeaveAlreadyProcessed, http.StatusConflict, "Leave application already processed"},
		{errors.New("connection reset"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, c := range cases {
		t.Run(c.message, func(t *testing.T) {
			rec := httptest.NewRecorder()

			HandleError(rec, c.err)

			assert.Equal(t, c.status, rec.Code)
			var body ErrorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, c.message, body.Error)
			assert.Empty(t, body.Details)
		})
	}
}

func TestHandleError_Validation(t *testing.T) {
	rec := httptest.NewRecorder()

	HandleError(rec, validator.ValidationErrors{
		{Field: "startDate", Message: "Start date cannot be in the past"},
		{Field: "endDate", Message: "End date must be after start date"},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Start date cannot be in the past; End date must be after start date", body.Error)
	assert.Equal(t, "End date must be after start date", body.Details["endDate"])
}

func TestFile(t *testing.T) {
	rec := httptest.NewRecorder()

	File(rec, "salaries-20240615.xlsx", "application/octet-stream", []byte("abc"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "3", rec.Header().Get("Content-Length"))
	disposition, params, err := mime.ParseMediaType(rec.Header().Get("Content-Disposition"))
	require.NoError(t, err)
	assert.Equal(t, "attachment", disposition)
	assert.Equal(t, "salaries-20240615.xlsx", params["filename"])
}

func TestAttachment(t *testing.T) {
	cases := []struct {
		name   string
		header string
	}{
		{"kontrak.pdf", "attachment; filename=kontrak.pdf"},
		{"my contract.pdf", `attachment; filename="my contract.pdf"`},
		{`say "hi".pdf`, `attachment; filename="say \"hi\".pdf"`},
		{"kontrak-é.pdf", "attachment; filename*=utf-8''kontrak-%C3%A9.pdf"},
	}
	for _, c := range cases {
		got := Attachment(c.name)
		assert.Equal(t, c.header, got, c.name)

		_, params, err := mime.ParseMediaType(got)
		require.NoError(t, err, c.name)
		assert.Equal(t, c.name, params["filename"], c.name)
	}
}
