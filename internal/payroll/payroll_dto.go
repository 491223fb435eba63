package payroll

import (
	"github.com/shopspring/decimal"
)

type GetPayslipsFilterRequest struct {
	Period     string `form:"period"`
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
}

type PayslipQueryFilter struct {
	EmployeeID  string
	PeriodMonth string // YYYY-MM-01, empty for all periods
}

// OverridesRequest replaces all four override fields. Absent or null values
// count as zero. OvertimeHours, when sent, is converted into Overtime.
type OverridesRequest struct {
	Overtime      *Amount          `json:"overtime"`
	OvertimeHours *decimal.Decimal `json:"overtime_hours"`
	Bonus         *Amount          `json:"bonus"`
	TaxDeduction  *Amount          `json:"tax_deduction"`
	LoanDeduction *Amount          `json:"loan_deduction"`

	NotifyEmployee bool `json:"notify_employee"`
}

func (r OverridesRequest) toOverrides() OverrideFields {
	return OverrideFields{
		Overtime:      r.Overtime.Int64(),
		Bonus:         r.Bonus.Int64(),
		TaxDeduction:  r.TaxDeduction.Int64(),
		LoanDeduction: r.LoanDeduction.Int64(),
	}
}

type EmployeeSummary struct {
	ID             string  `json:"id"`
	FullName       string  `json:"full_name"`
	EmployeeNumber string  `json:"employee_number,omitempty"`
	Email          *string `json:"email,omitempty"`
}

type PayslipResponse struct {
	ID          string           `json:"id"`
	CompanyID   string           `json:"company_id"`
	EmployeeID  string           `json:"employee_id"`
	Employee    *EmployeeSummary `json:"employee,omitempty"`
	PeriodStart string           `json:"period_start"`
	PeriodEnd   string           `json:"period_end"`

	BasicSalary         int64 `json:"basic_salary"`
	PositionAllowance   int64 `json:"position_allowance"`
	TransportAllowance  int64 `json:"transport_allowance"`
	MealAllowance       int64 `json:"meal_allowance"`
	BPJSHealthAllowance int64 `json:"bpjs_health_allowance"`
	BPJSLaborAllowance  int64 `json:"bpjs_labor_allowance"`
	BPJSHealthDeduction int64 `json:"bpjs_health_deduction"`
	BPJSLaborDeduction  int64 `json:"bpjs_labor_deduction"`

	Overtime      int64   `json:"overtime"`
	OvertimeHours *string `json:"overtime_hours,omitempty"`
	Bonus         int64   `json:"bonus"`
	TaxDeduction  int64   `json:"tax_deduction"`
	LoanDeduction int64   `json:"loan_deduction"`

	AllowancesTotal int64 `json:"allowances_total"`
	DeductionsTotal int64 `json:"deductions_total"`
	NetSalary       int64 `json:"net_salary"`

	UpdatedBy *string `json:"updated_by,omitempty"`
	UpdatedAt string  `json:"updated_at"`
}

type PreviewResponse struct {
	PayslipID       string `json:"payslip_id"`
	Overtime        int64  `json:"overtime"`
	Bonus           int64  `json:"bonus"`
	TaxDeduction    int64  `json:"tax_deduction"`
	LoanDeduction   int64  `json:"loan_deduction"`
	AllowancesTotal int64  `json:"allowances_total"`
	DeductionsTotal int64  `json:"deductions_total"`
	NetSalary       int64  `json:"net_salary"`
}

type RecomputeResult struct {
	Checked int      `json:"checked"`
	Drifted int      `json:"drifted"`
	Fixed   int      `json:"fixed"`
	IDs     []string `json:"ids"`
}

type PayslipFile struct {
	FileName string
	Content  []byte
}
