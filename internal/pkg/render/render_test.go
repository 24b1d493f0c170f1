package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/salary"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleRecord() salary.Record {
	paidAt := time.Date(2024, 6, 28, 10, 0, 0, 0, time.UTC)
	return salary.Record{
		Salary: salary.Salary{
			ID:         "s-1",
			Month:      6,
			Year:       2024,
			BaseSalary: decimal.NewFromInt(5000),
			Incentives: decimal.NewFromInt(500),
			Deductions: decimal.NewFromInt(200),
			Amount:     decimal.NewFromInt(5300),
			Status:     salary.StatusPaid,
			PaidAt:     &paidAt,
		},
		FirstName:  "Jane",
		LastName:   "Doe",
		Email:      "jane@example.com",
		Position:   "Engineer",
		Department: "IT",
	}
}

func TestPayslip(t *testing.T) {
	out, err := Payslip(sampleRecord(), time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Equal(t, "payslip-2024-06-Doe.pdf", PayslipName(sampleRecord()))
}

func TestSalaryWorkbook(t *testing.T) {
	out, err := SalaryWorkbook([]salary.Record{sampleRecord()})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(salarySheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, salaryHeader, rows[0])
	assert.Equal(t, "Jane", rows[1][0])
	assert.Equal(t, "5300", rows[1][9])
	assert.Equal(t, "paid", rows[1][10])
	assert.Equal(t, "2024-06-28", rows[1][11])
}

func TestSalaryWorkbook_Empty(t *testing.T) {
	out, err := SalaryWorkbook(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(salarySheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
