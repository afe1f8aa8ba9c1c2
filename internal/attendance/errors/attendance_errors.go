package attendanceerrors

import (
	"net/http"

	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/shared/apperror"
)

var (
	ErrAttendanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"attendance record not found",
		http.StatusNotFound,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidMonthFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid month format, expected YYYY-MM",
		http.StatusBadRequest,
	)
	ErrInvalidTimeFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid time format, expected HH:mm",
		http.StatusBadRequest,
	)
	ErrDuplicateAttendanceDay = apperror.New(
		apperror.CodeConflict,
		"attendance for this employee and date already exists",
		http.StatusConflict,
	)
)
