package settingserrors

import (
	"net/http"

	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/shared/apperror"
)

var (
	ErrHolidayNotFound = apperror.New(
		apperror.CodeNotFound,
		"public holiday not found",
		http.StatusNotFound,
	)
	ErrInvalidHolidayDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid holiday date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrDuplicateHoliday = apperror.New(
		apperror.CodeConflict,
		"a public holiday already exists on this date",
		http.StatusConflict,
	)
)
