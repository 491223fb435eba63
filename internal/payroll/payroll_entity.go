package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Payslip struct {
	ID         uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID  uuid.UUID    `gorm:"type:uuid;not null;index:idx_payslip_company_period"`
	EmployeeID uuid.UUID    `gorm:"type:uuid;not null;index:idx_payslip_employee_period,unique"`
	Employee   *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`

	// Periode
	PeriodStart time.Time `gorm:"type:date;not null;index:idx_payslip_employee_period,unique;index:idx_payslip_company_period"`
	PeriodEnd   time.Time `gorm:"type:date;not null"`

	// Nilai uang disimpan dalam satuan terkecil untuk hindari floating error.
	BasicSalary         int64 `gorm:"type:bigint;not null;default:0"`
	PositionAllowance   int64 `gorm:"type:bigint;not null;default:0"`
	TransportAllowance  int64 `gorm:"type:bigint;not null;default:0"`
	MealAllowance       int64 `gorm:"type:bigint;not null;default:0"`
	BPJSHealthAllowance int64 `gorm:"column:bpjs_health_allowance;type:bigint;not null;default:0"`
	BPJSLaborAllowance  int64 `gorm:"column:bpjs_labor_allowance;type:bigint;not null;default:0"`
	BPJSHealthDeduction int64 `gorm:"column:bpjs_health_deduction;type:bigint;not null;default:0"`
	BPJSLaborDeduction  int64 `gorm:"column:bpjs_labor_deduction;type:bigint;not null;default:0"`

	// Override (editable)
	Overtime      int64            `gorm:"type:bigint;not null;default:0"`
	OvertimeHours *decimal.Decimal `gorm:"type:numeric(6,2)"`
	Bonus         int64            `gorm:"type:bigint;not null;default:0"`
	TaxDeduction  int64            `gorm:"type:bigint;not null;default:0"`
	LoanDeduction int64            `gorm:"type:bigint;not null;default:0"`

	// Derived, always written together with the overrides
	AllowancesTotal int64 `gorm:"type:bigint;not null;default:0"`
	DeductionsTotal int64 `gorm:"type:bigint;not null;default:0"`
	NetSalary       int64 `gorm:"type:bigint;not null;default:0"`

	UpdatedBy *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Payslip) TableName() string {
	return "payslips"
}

func (p Payslip) Fixed() FixedPayFields {
	return FixedPayFields{
		BasicSalary:         p.BasicSalary,
		PositionAllowance:   p.PositionAllowance,
		TransportAllowance:  p.TransportAllowance,
		MealAllowance:       p.MealAllowance,
		BPJSHealthAllowance: p.BPJSHealthAllowance,
		BPJSLaborAllowance:  p.BPJSLaborAllowance,
		BPJSHealthDeduction: p.BPJSHealthDeduction,
		BPJSLaborDeduction:  p.BPJSLaborDeduction,
	}
}

func (p Payslip) Overrides() OverrideFields {
	return OverrideFields{
		Overtime:      p.Overtime,
		Bonus:         p.Bonus,
		TaxDeduction:  p.TaxDeduction,
		LoanDeduction: p.LoanDeduction,
	}
}

func (p Payslip) Totals() Totals {
	return Totals{
		AllowancesTotal: p.AllowancesTotal,
		DeductionsTotal: p.DeductionsTotal,
		NetSalary:       p.NetSalary,
	}
}

// apply sets overrides and their derived totals in one step.
func (p *Payslip) apply(o OverrideFields, t Totals) {
	p.Overtime = o.Overtime
	p.Bonus = o.Bonus
	p.TaxDeduction = o.TaxDeduction
	p.LoanDeduction = o.LoanDeduction
	p.AllowancesTotal = t.AllowancesTotal
	p.DeductionsTotal = t.DeductionsTotal
	p.NetSalary = t.NetSalary
}

type EmployeeRef struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName       string    `gorm:"column:full_name"`
	EmployeeNumber string    `gorm:"column:employee_number"`
	Email          *string   `gorm:"column:email"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
