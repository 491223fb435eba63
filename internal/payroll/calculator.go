package payroll

import (
	"fmt"
	"math"

	payrollerrors "go-hrportal/internal/payroll/errors"
	"go-hrportal/internal/shared/apperror"
)

// FixedPayFields are set when the payslip is generated and never edited afterwards.
type FixedPayFields struct {
	BasicSalary         int64
	PositionAllowance   int64
	TransportAllowance  int64
	MealAllowance       int64
	BPJSHealthAllowance int64
	BPJSLaborAllowance  int64
	BPJSHealthDeduction int64
	BPJSLaborDeduction  int64
}

// OverrideFields are the only payslip values an admin may adjust per period.
type OverrideFields struct {
	Overtime      int64
	Bonus         int64
	TaxDeduction  int64
	LoanDeduction int64
}

type Totals struct {
	AllowancesTotal int64
	DeductionsTotal int64
	NetSalary       int64
}

type namedAmount struct {
	name  string
	value int64
}

// Recompute derives the three payslip totals. Every write path and every
// preview goes through here so the stored totals cannot drift from the inputs.
func Recompute(fixed FixedPayFields, overrides OverrideFields) (Totals, error) {
	allowances := []namedAmount{
		{"position_allowance", fixed.PositionAllowance},
		{"transport_allowance", fixed.TransportAllowance},
		{"meal_allowance", fixed.MealAllowance},
		{"bpjs_health_allowance", fixed.BPJSHealthAllowance},
		{"bpjs_labor_allowance", fixed.BPJSLaborAllowance},
		{"overtime", overrides.Overtime},
		{"bonus", overrides.Bonus},
	}
	deductions := []namedAmount{
		{"bpjs_health_deduction", fixed.BPJSHealthDeduction},
		{"bpjs_labor_deduction", fixed.BPJSLaborDeduction},
		{"tax_deduction", overrides.TaxDeduction},
		{"loan_deduction", overrides.LoanDeduction},
	}

	if fixed.BasicSalary < 0 {
		return Totals{}, negativeField("basic_salary")
	}

	allowancesTotal, err := sum(allowances)
	if err != nil {
		return Totals{}, err
	}
	deductionsTotal, err := sum(deductions)
	if err != nil {
		return Totals{}, err
	}

	gross, ok := addInt64(fixed.BasicSalary, allowancesTotal)
	if !ok {
		return Totals{}, apperror.InvalidInput("gross salary overflows", payrollerrors.ErrAmountOverflow)
	}

	// both operands are non-negative, so the subtraction cannot overflow
	return Totals{
		AllowancesTotal: allowancesTotal,
		DeductionsTotal: deductionsTotal,
		NetSalary:       gross - deductionsTotal,
	}, nil
}

func sum(items []namedAmount) (int64, error) {
	var total int64
	for _, item := range items {
		if item.value < 0 {
			return 0, negativeField(item.name)
		}
		next, ok := addInt64(total, item.value)
		if !ok {
			return 0, apperror.InvalidInput(fmt.Sprintf("sum overflows at %s", item.name), payrollerrors.ErrAmountOverflow)
		}
		total = next
	}
	return total, nil
}

func negativeField(name string) error {
	return apperror.InvalidInput(fmt.Sprintf("%s cannot be negative", name), payrollerrors.ErrInvalidMoneyValue)
}

func addInt64(a, b int64) (int64, bool) {
	if b > 0 && a > math.MaxInt64-b {
		return 0, false
	}
	return a + b, true
}
