package leave

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testToday = time.Date(2024, 3, 1, 0, 0, 0, 0, time.FixedZone("WIB", 7*60*60))

func TestCountDays(t *testing.T) {
	cases := []struct {
		start, end string
		want       int
	}{
		{"2024-03-01", "2024-03-03", 3},
		{"2024-06-10", "2024-06-12", 3},
		{"2024-03-01", "2024-03-01", 1},
		{"2024-02-28", "2024-03-01", 3},
		{"2024-03-30", "2024-04-02", 4},
	}
	for _, c := range cases {
		start, _ := validator.IsValidDate(c.start)
		end, _ := validator.IsValidDate(c.end)
		assert.Equal(t, c.want, CountDays(start, end), "%s..%s", c.start, c.end)
	}
}

func TestApplyRequest_Validate(t *testing.T) {
	req := ApplyRequest{LeaveType: "Annual", Department: "IT", StartDate: "2024-03-01", EndDate: "2024-03-03", Reason: " trip "}

	start, end, err := req.Validate(testToday)

	require.NoError(t, err)
	assert.Equal(t, 3, CountDays(start, end))
	assert.Equal(t, "trip", req.Reason)
}

func TestApplyRequest_Validate_Errors(t *testing.T) {
	cases := []struct {
		name    string
		req     ApplyRequest
		message string
	}{
		{"missing type", ApplyRequest{Department: "IT", StartDate: "2024-03-01", EndDate: "2024-03-02"}, "All fields are required"},
		{"bad date", ApplyRequest{LeaveType: "Sick", Department: "IT", StartDate: "03/01/2024", EndDate: "2024-03-02"}, "Start date must be in YYYY-MM-DD format"},
		{"reversed", ApplyRequest{LeaveType: "Sick", Department: "IT", StartDate: "2024-03-05", EndDate: "2024-03-02"}, "End date must be after start date"},
		{"past", ApplyRequest{LeaveType: "Sick", Department: "IT", StartDate: "2024-02-29", EndDate: "2024-03-02"}, "Start date cannot be in the past"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, _, err := c.req.Validate(testToday)
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.Message(), c.message)
		})
	}
}

func TestSetStatusRequest_Validate(t *testing.T) {
	assert.NoError(t, (&SetStatusRequest{Status: StatusApproved}).Validate())
	assert.NoError(t, (&SetStatusRequest{Status: StatusRejected}).Validate())
	assert.Error(t, (&SetStatusRequest{Status: StatusPending}).Validate())
	assert.Error(t, (&SetStatusRequest{Status: "maybe"}).Validate())
}

func TestFilter_Validate(t *testing.T) {
	f := Filter{Status: "all", Name: " jan "}
	require.NoError(t, f.Validate())
	assert.Empty(t, f.Status)
	assert.Equal(t, "jan", f.Name)

	f = Filter{Status: "archived"}
	assert.Error(t, f.Validate())

	f = Filter{UserID: "42"}
	assert.Error(t, f.Validate())
}
