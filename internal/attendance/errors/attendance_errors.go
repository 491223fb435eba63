package attendanceerrors

import (
	"net/http"

	"go-hrportal/internal/shared/apperror"
)

var (
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company ID",
		http.StatusBadRequest,
	)

	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)

	ErrInvalidAttendanceID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid attendance ID",
		http.StatusBadRequest,
	)

	ErrIncompleteLocation = apperror.New(
		apperror.CodeInvalidInput,
		"Latitude and longitude must be sent together",
		http.StatusBadRequest,
	)

	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Date must use YYYY-MM-DD format",
		http.StatusBadRequest,
	)

	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"Date range is invalid or longer than 93 days",
		http.StatusBadRequest,
	)

	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)

	ErrAttendanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Attendance not found",
		http.StatusNotFound,
	)

	ErrClockInNotFound = apperror.New(
		apperror.CodeNotFound,
		"Clock in not found for today",
		http.StatusNotFound,
	)

	ErrAttendanceForbidden = apperror.New(
		apperror.CodeForbidden,
		"You can only view your own attendance",
		http.StatusForbidden,
	)

	ErrOutsideAllowedRadius = apperror.New(
		apperror.CodeOutsideAllowedRadius,
		"You are outside the allowed office radius",
		http.StatusForbidden,
	)

	ErrAlreadyClockedIn = apperror.New(
		apperror.CodeConflict,
		"Already clocked in for today",
		http.StatusConflict,
	)

	ErrAlreadyClockedOut = apperror.New(
		apperror.CodeConflict,
		"Already clocked out for today",
		http.StatusConflict,
	)
)
