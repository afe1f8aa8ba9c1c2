package settings

import (
	"errors"
	"strings"

	settingserrors "github.com/Saron-Raj/HRMS-sytem-Singapore/internal/settings/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return settingserrors.ErrHolidayNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_holiday_date" {
			return settingserrors.ErrDuplicateHoliday
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_holiday_date") {
		return settingserrors.ErrDuplicateHoliday
	}

	return err
}
