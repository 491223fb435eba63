package payroll

import (
	"math"

	payrollerrors "go-hrportal/internal/payroll/errors"

	"github.com/shopspring/decimal"
)

// Kepmenakertrans 102/2004: upah sejam = 1/173 upah sebulan.
const monthlyWorkHours = 173

var (
	firstHourMultiplier = decimal.NewFromFloat(1.5)
	nextHourMultiplier  = decimal.NewFromInt(2)
	maxOvertimeHours    = decimal.NewFromInt(200)
	maxAmount           = decimal.NewFromInt(math.MaxInt64)
)

// OvertimePay converts overtime hours on a workday into an amount: the first
// hour at 1.5x the hourly wage and every following hour at 2x. The result is
// rounded half away from zero to the smallest currency unit.
func OvertimePay(basicSalary int64, hours decimal.Decimal) (int64, error) {
	if basicSalary < 0 {
		return 0, payrollerrors.ErrInvalidMoneyValue
	}
	if hours.IsNegative() || hours.GreaterThan(maxOvertimeHours) {
		return 0, payrollerrors.ErrInvalidOvertimeHours
	}
	if hours.IsZero() || basicSalary == 0 {
		return 0, nil
	}

	hourly := decimal.NewFromInt(basicSalary).Div(decimal.NewFromInt(monthlyWorkHours))

	first := decimal.Min(hours, decimal.NewFromInt(1))
	rest := hours.Sub(first)

	pay := hourly.Mul(first).Mul(firstHourMultiplier).
		Add(hourly.Mul(rest).Mul(nextHourMultiplier))

	pay = pay.Round(0)
	if pay.GreaterThan(maxAmount) {
		return 0, payrollerrors.ErrAmountOverflow
	}
	return pay.IntPart(), nil
}
