package errors

import (
	"net/http"

	"go-timeclock/internal/shared/apperror"
)

var (
	ErrPunchNotFound = apperror.New(
		apperror.CodeNotFound,
		"Punch not found",
		http.StatusNotFound,
	)

	ErrAlreadyClockedIn = apperror.New(
		apperror.CodeConflict,
		"Already clocked in; clock out first",
		http.StatusConflict,
	)

	ErrNotClockedIn = apperror.New(
		apperror.CodeConflict,
		"No open clock-in to clock out from",
		http.StatusConflict,
	)

	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Date must be YYYY-MM-DD",
		http.StatusBadRequest,
	)

	ErrInvalidTimestamp = apperror.New(
		apperror.CodeInvalidInput,
		"Timestamp must be RFC3339",
		http.StatusBadRequest,
	)
)
