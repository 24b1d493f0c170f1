package validator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, IsEmpty(c.input), "IsEmpty(%q)", c.input)
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), "IsValidEmail(%q)", email)
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), "IsValidEmail(%q)", email)
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"123E4567-E89B-12D3-A456-426614174000",
		"f47ac10b-58cc-4372-a567-0e02b2c3d479",
	}
	invalid := []string{
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",
		"{f47ac10b-58cc-4372-a567-0e02b2c3d479}",
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"",
	}
	for _, id := range valid {
		assert.True(t, IsValidUUID(id), "IsValidUUID(%q)", id)
	}
	for _, id := range invalid {
		assert.False(t, IsValidUUID(id), "IsValidUUID(%q)", id)
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31", "2024-02-29"}
	invalid := []string{"2023-13-01", "2023-02-30", "01-01-2023", "2023/01/01", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		assert.True(t, ok, "IsValidDate(%q)", s)
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		assert.False(t, ok, "IsValidDate(%q)", s)
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	valid := []string{"+1 555 123 4567", "081234567890", "(021) 555-0101"}
	invalid := []string{"abc", "12", "+", "phone: 123456"}
	for _, p := range valid {
		assert.True(t, IsValidPhoneNumber(p), "IsValidPhoneNumber(%q)", p)
	}
	for _, p := range invalid {
		assert.False(t, IsValidPhoneNumber(p), "IsValidPhoneNumber(%q)", p)
	}
}

func TestIsInSlice(t *testing.T) {
	assert.True(t, IsInSlice("paid", []string{"pending", "paid"}))
	assert.False(t, IsInSlice("void", []string{"pending", "paid"}))
	assert.False(t, IsInSlice("x", nil))
}

func TestIsNonNegative(t *testing.T) {
	assert.True(t, IsNonNegative(decimal.Zero))
	assert.True(t, IsNonNegative(decimal.NewFromInt(5)))
	assert.False(t, IsNonNegative(decimal.NewFromFloat(-0.01)))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "All fields are required"},
		{Field: "password", Message: "All fields are required"},
		{Field: "role", Message: "Invalid role"},
	}

	assert.Equal(t, "email: All fields are required; password: All fields are required; role: Invalid role", errs.Error())
	assert.Equal(t, "All fields are required; Invalid role", errs.Message())
	assert.Equal(t, map[string]string{
		"email":    "All fields are required",
		"password": "All fields are required",
		"role":     "Invalid role",
	}, errs.ToMap())
}
