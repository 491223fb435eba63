package payrollerrors

import (
	"net/http"

	"go-hrportal/internal/shared/apperror"
)

var (
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid company id",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrInvalidPayslipID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid payslip id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidPeriodFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid period format, expected YYYY-MM",
		http.StatusBadRequest,
	)
	ErrInvalidMoneyValue = apperror.New(
		apperror.CodeInvalidInput,
		"salary component values cannot be negative",
		http.StatusBadRequest,
	)
	ErrAmountOverflow = apperror.New(
		apperror.CodeInvalidInput,
		"salary totals exceed the supported range",
		http.StatusBadRequest,
	)
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"amount must be a whole number in the smallest currency unit",
		http.StatusBadRequest,
	)
	ErrInvalidOvertimeHours = apperror.New(
		apperror.CodeInvalidInput,
		"overtime_hours must be between 0 and 200",
		http.StatusBadRequest,
	)
	ErrOvertimeConflict = apperror.New(
		apperror.CodeInvalidInput,
		"send either overtime or overtime_hours, not both",
		http.StatusBadRequest,
	)
	ErrPayslipNotFound = apperror.New(
		apperror.CodeNotFound,
		"payslip not found",
		http.StatusNotFound,
	)
	ErrPayslipForbidden = apperror.New(
		apperror.CodeForbidden,
		"payslip belongs to another employee",
		http.StatusForbidden,
	)
	ErrNotifierDisabled = apperror.New(
		apperror.CodeServiceUnavailable,
		"email delivery is not configured",
		http.StatusServiceUnavailable,
	)
	ErrEmployeeEmailMissing = apperror.New(
		apperror.CodeInvalidState,
		"employee has no email address",
		http.StatusUnprocessableEntity,
	)
)
