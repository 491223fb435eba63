package payroll

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var rupiah = message.NewPrinter(language.Indonesian)

func formatRupiah(v int64) string {
	if v < 0 {
		return rupiah.Sprintf("-Rp %d", -v)
	}
	return rupiah.Sprintf("Rp %d", v)
}

func renderPayslip(p Payslip) (PayslipFile, error) {
	name := p.EmployeeID.String()
	number := p.EmployeeID.String()
	if p.Employee != nil {
		name = p.Employee.FullName
		if p.Employee.EmployeeNumber != "" {
			number = p.Employee.EmployeeNumber
		}
	}

	row := func(label string, v int64) string {
		return fmt.Sprintf("%-28s %s", label, formatRupiah(v))
	}

	lines := []string{
		"SLIP GAJI",
		fmt.Sprintf("Periode: %s s/d %s", p.PeriodStart.Format("02 Jan 2006"), p.PeriodEnd.Format("02 Jan 2006")),
		fmt.Sprintf("Karyawan: %s (%s)", name, number),
		"",
		row("Gaji Pokok", p.BasicSalary),
		"",
		"PENDAPATAN",
		row("Tunjangan Jabatan", p.PositionAllowance),
		row("Tunjangan Transport", p.TransportAllowance),
		row("Tunjangan Makan", p.MealAllowance),
		row("Tunjangan BPJS Kesehatan", p.BPJSHealthAllowance),
		row("Tunjangan BPJS Ketenagakerjaan", p.BPJSLaborAllowance),
		row("Lembur", p.Overtime),
		row("Bonus", p.Bonus),
		row("Total Pendapatan", p.AllowancesTotal),
		"",
		"POTONGAN",
		row("BPJS Kesehatan", p.BPJSHealthDeduction),
		row("BPJS Ketenagakerjaan", p.BPJSLaborDeduction),
		row("PPh 21", p.TaxDeduction),
		row("Pinjaman", p.LoanDeduction),
		row("Total Potongan", p.DeductionsTotal),
		"",
		row("GAJI BERSIH", p.NetSalary),
	}

	content, err := buildSimplePayslipPDF(lines)
	if err != nil {
		return PayslipFile{}, err
	}

	return PayslipFile{
		FileName: fmt.Sprintf("payslip-%s-%s.pdf", number, p.PeriodStart.Format("2006-01")),
		Content:  content,
	}, nil
}

func buildSimplePayslipPDF(lines []string) ([]byte, error) {
	if len(lines) == 0 {
		lines = []string{"Payslip"}
	}

	var content strings.Builder
	content.WriteString("BT\n/F1 11 Tf\n14 TL\n50 800 Td\n")
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
