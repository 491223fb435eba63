package companyerrors

import (
	"net/http"

	"go-hrportal/internal/shared/apperror"
)

var (
	ErrOfficeLocationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Office location has not been configured",
		http.StatusNotFound,
	)

	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company ID",
		http.StatusBadRequest,
	)

	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid actor ID",
		http.StatusBadRequest,
	)
)

var ErrInvalidCoordinates = apperror.New(
	apperror.CodeInvalidInput,
	"Latitude and longitude are required",
	http.StatusBadRequest,
)
