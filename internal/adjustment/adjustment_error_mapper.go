package adjustment

import (
	"errors"
	"strings"

	adjustmenterrors "github.com/Saron-Raj/HRMS-sytem-Singapore/internal/adjustment/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return adjustmenterrors.ErrAdjustmentNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_adjustment_month" {
			return adjustmenterrors.ErrDuplicateAdjustmentMonth
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_adjustment_month") {
		return adjustmenterrors.ErrDuplicateAdjustmentMonth
	}

	return err
}
