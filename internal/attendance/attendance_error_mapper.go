package attendance

import (
	"errors"
	"strings"

	attendanceerrors "github.com/Saron-Raj/HRMS-sytem-Singapore/internal/attendance/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return attendanceerrors.ErrAttendanceNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_attendance_day" {
			return attendanceerrors.ErrDuplicateAttendanceDay
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_attendance_day") {
		return attendanceerrors.ErrDuplicateAttendanceDay
	}

	return err
}
