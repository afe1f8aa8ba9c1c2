package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/events"
	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/payroll"
	payrollerrors "github.com/Saron-Raj/HRMS-sytem-Singapore/internal/payroll/errors"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeAttendanceUpdated re-derives the affected payroll month after an
// attendance edit. Months that were never generated are skipped; the
// first run stays an explicit operator action.
func ConsumeAttendanceUpdated(
	ctx context.Context,
	reader *kafkago.Reader,
	payrollService payroll.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.attendance_updated")
	log.Info("attendance updated consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("attendance updated consumer stopped")
				return
			}
			log.Error("fetch attendance updated message failed", zap.Error(err))
			continue
		}

		var event events.AttendanceUpdatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode attendance.updated event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		_, err = payrollService.GetByEmployeeAndMonth(ctx, event.CompanyID, event.EmployeeID, event.Month)
		if errors.Is(err, payrollerrors.ErrPayrollNotFound) {
			_ = reader.CommitMessages(ctx, msg)
			continue
		}
		if err != nil {
			log.Error("lookup payroll for attendance.updated failed",
				zap.String("employee_id", event.EmployeeID),
				zap.String("month", event.Month),
				zap.Error(err),
			)
			continue
		}

		if _, err := payrollService.Generate(ctx, event.CompanyID, payroll.GeneratePayrollRequest{
			EmployeeID: event.EmployeeID,
			Month:      event.Month,
		}); err != nil {
			log.Error("regenerate payroll from attendance.updated failed",
				zap.String("employee_id", event.EmployeeID),
				zap.String("month", event.Month),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit attendance updated message failed", zap.Error(err))
			continue
		}

		log.Info("payroll regenerated from attendance.updated event",
			zap.String("employee_id", event.EmployeeID),
			zap.String("company_id", event.CompanyID),
			zap.String("month", event.Month),
		)
	}
}
