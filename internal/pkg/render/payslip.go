// Package render turns salary records into downloadable files.
package render

import (
	"bytes"
	"fmt"
	"time"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/salary"
	"github.com/jung-kurt/gofpdf"
)

const PDFContentType = "application/pdf"

// Payslip renders a one-page A4 payslip for rec.
func Payslip(rec salary.Record, issuedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s %s", rec.FirstName, rec.LastName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Email: %s", rec.Email))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Position: %s, %s", rec.Position, rec.Department))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s %d", time.Month(rec.Month), rec.Year))
	pdf.Ln(10)

	lines := []struct {
		label string
		value string
	}{
		{"Base salary", rec.BaseSalary.StringFixed(2)},
		{"Incentives", rec.Incentives.StringFixed(2)},
		{"Deductions", rec.Deductions.StringFixed(2)},
	}
	for _, line := range lines {
		pdf.CellFormat(60, 8, line.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, line.value, "", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(60, 8, "Net amount", "T", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, rec.Amount.StringFixed(2), "T", 1, "R", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 10)
	status := string(rec.Status)
	if rec.PaidAt != nil {
		status = fmt.Sprintf("%s on %s", status, rec.PaidAt.Format(time.DateOnly))
	}
	pdf.Cell(0, 6, fmt.Sprintf("Status: %s", status))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Issued: %s", issuedAt.Format(time.DateOnly)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render payslip: %w", err)
	}
	return buf.Bytes(), nil
}

// PayslipName is the download file name for rec.
func PayslipName(rec salary.Record) string {
	return fmt.Sprintf("payslip-%d-%02d-%s.pdf", rec.Year, rec.Month, rec.LastName)
}
