package employee

import (
	"testing"

	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRequest_Validate_Defaults(t *testing.T) {
	req := CreateRequest{
		FirstName: " Jane ",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Password:  "secret1",
	}

	require.NoError(t, req.Validate())
	assert.Equal(t, "Jane", req.FirstName)
	assert.Equal(t, DefaultPosition, req.Position)
	assert.Equal(t, DefaultDepartment, req.Department)
	assert.Equal(t, StatusActive, req.Status)
}

func TestCreateRequest_Validate_Errors(t *testing.T) {
	negative := decimal.NewFromInt(-1)
	cases := []struct {
		name  string
		req   CreateRequest
		field string
	}{
		{"missing names", CreateRequest{Email: "a@b.co", Password: "secret1"}, "fields"},
		{"bad email", CreateRequest{FirstName: "a", LastName: "b", Email: "nope", Password: "secret1"}, "email"},
		{"short password", CreateRequest{FirstName: "a", LastName: "b", Email: "a@b.co", Password: "123"}, "password"},
		{"bad hire date", CreateRequest{FirstName: "a", LastName: "b", Email: "a@b.co", Password: "secret1", HireDate: "10/06/2024"}, "hireDate"},
		{"negative salary", CreateRequest{FirstName: "a", LastName: "b", Email: "a@b.co", Password: "secret1", Salary: &negative}, "salary"},
		{"bad status", CreateRequest{FirstName: "a", LastName: "b", Email: "a@b.co", Password: "secret1", Status: "fired"}, "status"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.req.Validate()
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), c.field)
		})
	}
}

func TestUpdateRequest_SplitsFields(t *testing.T) {
	first := "Janet"
	dept := "Finance"
	salary := decimal.NewFromInt(4500)
	req := UpdateRequest{FirstName: &first, Department: &dept, Salary: &salary}

	require.NoError(t, req.Validate())
	assert.False(t, req.IsEmpty())

	account := req.AccountFields()
	assert.Equal(t, &first, account.FirstName)
	assert.Nil(t, account.Email)

	profile := req.ProfileFields()
	assert.Equal(t, &dept, profile.Department)
	assert.True(t, profile.Salary.Equal(salary))
	assert.Nil(t, profile.Phone)

	assert.True(t, UpdateRequest{}.IsEmpty())
}

func TestUpdateRequest_Validate_RejectsBlankName(t *testing.T) {
	blank := "  "
	req := UpdateRequest{LastName: &blank}

	err := req.Validate()

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "Last name cannot be empty", verrs.ToMap()["lastName"])
}
