package adjustmenterrors

import (
	"net/http"

	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/shared/apperror"
)

var (
	ErrAdjustmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"adjustment record not found",
		http.StatusNotFound,
	)
	ErrInvalidMonthFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid month format, expected YYYY-MM",
		http.StatusBadRequest,
	)
	ErrDuplicateAdjustmentMonth = apperror.New(
		apperror.CodeConflict,
		"adjustments for this employee and month already exist",
		http.StatusConflict,
	)
)
