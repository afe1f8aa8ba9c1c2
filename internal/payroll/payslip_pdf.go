package payroll

import (
	"bytes"
	"fmt"
	"strings"
)

// buildPayslipPDF renders the snapshot as a minimal single-page PDF.
// Layout is one text column; anything fancier belongs to a reporting
// frontend, not here.
func buildPayslipPDF(payroll Payroll) ([]byte, error) {
	lines := []string{
		fmt.Sprintf("Payslip %s", payroll.Month),
	}
	if payroll.Employee != nil {
		lines = append(lines, fmt.Sprintf("%s (%s)", payroll.Employee.FullName, payroll.Employee.EmployeeNumber))
	} else {
		lines = append(lines, payroll.EmployeeID.String())
	}

	lines = append(lines,
		fmt.Sprintf("Salary type: %s, basic %.2f", payroll.SalaryType, payroll.BasicSalary),
		fmt.Sprintf("Days worked: %.2f (MC %d, OFF %d)", payroll.TotalDaysWorked, payroll.McDays, payroll.OffDays),
		fmt.Sprintf("Basic pay: %.2f", payroll.BasicPayTotal),
		fmt.Sprintf("Holiday pay: %.2f (%.2f days)", payroll.HolidayPayTotal, payroll.TotalHolidayDays),
		fmt.Sprintf("Overtime: %.2f hours, %.2f", payroll.TotalOtHours, payroll.OtPayTotal),
		fmt.Sprintf("Lunch allowance: %.2f", payroll.LunchAllowanceTotal),
		fmt.Sprintf("Transport: %.2f, other: %.2f", payroll.TransportAllowance, payroll.OtherAllowances),
		fmt.Sprintf("Deductions: %.2f (housing %.2f, advance %.2f)", payroll.Deductions, payroll.HousingDeduction, payroll.AdvanceDeduction),
		fmt.Sprintf("Net salary: %.2f", payroll.NetSalary),
	)

	return buildSimplePDF(lines)
}

func buildSimplePDF(lines []string) ([]byte, error) {
	if len(lines) == 0 {
		lines = []string{"Payslip"}
	}

	var content strings.Builder
	content.WriteString("BT\n/F1 12 Tf\n14 TL\n50 800 Td\n")
	for i, line := range lines {
		escaped := pdfEscape(line)
		if i == 0 {
			content.WriteString(fmt.Sprintf("(%s) Tj\n", escaped))
			continue
		}
		content.WriteString(fmt.Sprintf("T* (%s) Tj\n", escaped))
	}
	content.WriteString("ET")

	stream := content.String()
	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n",
		"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>\nendobj\n",
		"4 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n",
		fmt.Sprintf("5 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(stream), stream),
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, len(objects)+1)
	offsets = append(offsets, 0)

	for _, obj := range objects {
		offsets = append(offsets, out.Len())
		out.WriteString(obj)
	}

	xrefStart := out.Len()
	out.WriteString(fmt.Sprintf("xref\n0 %d\n", len(offsets)))
	out.WriteString("0000000000 65535 f \n")
	for i := 1; i < len(offsets); i++ {
		out.WriteString(fmt.Sprintf("%010d 00000 n \n", offsets[i]))
	}
	out.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(offsets), xrefStart))

	return out.Bytes(), nil
}

func pdfEscape(v string) string {
	replacer := strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)")
	return replacer.Replace(v)
}
