package render

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/salary"
	"github.com/xuri/excelize/v2"
)

const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const salarySheet = "Salaries"

var salaryHeader = []string{
	"First name", "Last name", "Email", "Department", "Month", "Year",
	"Base salary", "Incentives", "Deductions", "Amount", "Status", "Paid at",
}

// SalaryWorkbook writes records to a single-sheet XLSX workbook, one row each.
func SalaryWorkbook(records []salary.Record) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", salarySheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	for i, title := range salaryHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(salarySheet, cell, title); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	for r, rec := range records {
		paidAt := ""
		if rec.PaidAt != nil {
			paidAt = rec.PaidAt.Format(time.DateOnly)
		}
		values := []interface{}{
			rec.FirstName,
			rec.LastName,
			rec.Email,
			rec.Department,
			rec.Month,
			rec.Year,
			rec.BaseSalary.InexactFloat64(),
			rec.Incentives.InexactFloat64(),
			rec.Deductions.InexactFloat64(),
			rec.Amount.InexactFloat64(),
			string(rec.Status),
			paidAt,
		}
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(salarySheet, cell, v); err != nil {
				return nil, fmt.Errorf("write row %d: %w", r+1, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// WorkbookName is the export file name for a workbook generated at t.
func WorkbookName(t time.Time) string {
	return fmt.Sprintf("salaries-%s.xlsx", t.Format("20060102"))
}
