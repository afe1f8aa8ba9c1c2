package payroll

import (
	"errors"
	"strings"

	payrollerrors "github.com/Saron-Raj/HRMS-sytem-Singapore/internal/payroll/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payrollerrors.ErrPayrollNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_payroll_month" {
			return payrollerrors.ErrDuplicatePayrollMonth
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_payroll_month") {
		return payrollerrors.ErrDuplicatePayrollMonth
	}

	return err
}
