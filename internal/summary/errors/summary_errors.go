package errors

import (
	"net/http"

	"go-timeclock/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)

	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Date must be YYYY-MM-DD",
		http.StatusBadRequest,
	)

	ErrSummaryNotFound = apperror.New(
		apperror.CodeNotFound,
		"No summary for that employee and date",
		http.StatusNotFound,
	)

	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date and end_date must be YYYY-MM-DD and start before end",
		http.StatusBadRequest,
	)
)
