package attendance

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	attendanceerrors "github.com/Saron-Raj/HRMS-sytem-Singapore/internal/attendance/errors"
	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/events"
	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/messaging/kafka"
	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/paycalc"
	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EmployeeDirectory is the slice of the employee module this service
// needs: the pay profile for the engine and the active list for the
// daily sheet.
type EmployeeDirectory interface {
	PayProfile(ctx context.Context, companyID, employeeID string) (paycalc.Employee, error)
	GetActiveIDs(ctx context.Context, companyID string) ([]EmployeeOption, error)
}

type EmployeeOption struct {
	ID       string
	FullName string
}

// PaySettingsProvider supplies the current holiday multiplier and
// public-holiday calendar. Pay is always computed from the live value.
type PaySettingsProvider interface {
	PaySettings(ctx context.Context, companyID string) (paycalc.Settings, error)
}

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	Upsert(ctx context.Context, companyID, employeeID, date string, req UpsertAttendanceRequest) (AttendanceResponse, error)
	GetSheet(ctx context.Context, companyID, date string) ([]AttendanceResponse, error)
	GetMonth(ctx context.Context, companyID, employeeID, month string) ([]AttendanceResponse, error)
	DeleteByEmployee(ctx context.Context, companyID, employeeID string) error

	// MonthRecords is the engine-facing view of one employee's month.
	MonthRecords(ctx context.Context, companyID, employeeID, month string) ([]paycalc.DayRecord, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees EmployeeDirectory
	settings  PaySettingsProvider
	outbox    kafka.OutboxRepository
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employees EmployeeDirectory,
	settings PaySettingsProvider,
	outboxRepo kafka.OutboxRepository,
) Service {
	return &service{
		db:        db,
		repo:      repo,
		employees: employees,
		settings:  settings,
		outbox:    outboxRepo,
		logger:    zap.L().Named("attendance.service"),
	}
}

func (s *service) Upsert(
	ctx context.Context,
	companyID, employeeID, date string,
	req UpsertAttendanceRequest,
) (AttendanceResponse, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidDateFormat
	}
	if err := validateClockFields(req); err != nil {
		return AttendanceResponse{}, err
	}

	profile, err := s.employees.PayProfile(ctx, companyID, employeeID)
	if err != nil {
		return AttendanceResponse{}, err
	}

	paySettings, err := s.settings.PaySettings(ctx, companyID)
	if err != nil {
		return AttendanceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rec, created, err := s.findOrInit(ctx, qtx, companyID, employeeID, day)
	if err != nil {
		return AttendanceResponse{}, err
	}

	endTimeEdited := req.EndTime != nil
	applyEdit(rec, req)

	// Keep status/workDay in agreement with the resolver on every edit.
	res := paycalc.ResolveDayStatus(toDayRecord(*rec), profile.SalaryType)
	rec.WorkDay = res.WorkDay
	rec.Status = string(res.Status)

	// OT hours follow the checkout time when it changed; an explicit
	// ot_hours value in the same request is a manual override.
	if endTimeEdited && rec.Remarks != paycalc.RemarkMC && rec.Remarks != paycalc.RemarkOff {
		rec.OtHours = res.OtHours
	}
	if req.OtHours != nil {
		rec.OtHours = *req.OtHours
	}

	rec.CalculatedDailyPay = paycalc.DailyPay(profile, rec.OtHours, rec.WorkDay, day, paySettings)

	if created {
		err = qtx.Create(ctx, rec)
	} else {
		err = qtx.Update(ctx, rec)
	}
	if err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		if err := s.enqueueUpdatedEvent(ctx, tx, rec); err != nil {
			return AttendanceResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	return mapToResponse(*rec), nil
}

func (s *service) findOrInit(
	ctx context.Context,
	repo Repository,
	companyID, employeeID string,
	day time.Time,
) (*Attendance, bool, error) {
	rec, err := repo.FindByEmployeeAndDate(ctx, companyID, employeeID, day)
	if err == nil {
		return rec, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, mapRepositoryError(err)
	}

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return nil, false, attendanceerrors.ErrAttendanceNotFound
	}
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, false, attendanceerrors.ErrAttendanceNotFound
	}

	// First touch of this day: defaulted Absent/zero.
	return &Attendance{
		ID:             uuid.New(),
		CompanyID:      companyUUID,
		EmployeeID:     employeeUUID,
		AttendanceDate: day,
		Status:         string(paycalc.StatusAbsent),
	}, true, nil
}

func applyEdit(rec *Attendance, req UpsertAttendanceRequest) {
	if req.StartTime != nil {
		rec.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		rec.EndTime = *req.EndTime
	}
	if req.LunchHours != nil {
		rec.LunchHours = *req.LunchHours
	}
	if req.Remarks != nil {
		rec.Remarks = *req.Remarks
	}
	if req.SiteLocation != nil {
		rec.SiteLocation = *req.SiteLocation
	}
}

func validateClockFields(req UpsertAttendanceRequest) error {
	for _, v := range []*string{req.StartTime, req.EndTime} {
		if v == nil || *v == "" {
			continue
		}
		if _, err := time.Parse("15:04", *v); err != nil {
			return attendanceerrors.ErrInvalidTimeFormat
		}
	}
	return nil
}

func (s *service) enqueueUpdatedEvent(ctx context.Context, tx *sql.Tx, rec *Attendance) error {
	date := rec.AttendanceDate.Format("2006-01-02")
	event := events.AttendanceUpdatedEvent{
		EventType:  "attendance.updated",
		EmployeeID: rec.EmployeeID.String(),
		CompanyID:  rec.CompanyID.String(),
		Date:       date,
		Month:      date[:7],
		OccurredAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		CompanyID:     rec.CompanyID.String(),
		AggregateType: "attendance",
		AggregateID:   rec.ID.String(),
		EventType:     event.EventType,
		Topic:         events.AttendanceUpdatedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

// GetSheet returns one row per active employee for the given date. Days
// that were never touched come back as transient Absent/zero rows; they
// are only persisted once edited.
func (s *service) GetSheet(ctx context.Context, companyID, date string) ([]AttendanceResponse, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, attendanceerrors.ErrInvalidDateFormat
	}

	options, err := s.employees.GetActiveIDs(ctx, companyID)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.FindAllByDate(ctx, companyID, day)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	byEmployee := make(map[string]Attendance, len(rows))
	for _, row := range rows {
		byEmployee[row.EmployeeID.String()] = row
	}

	sheet := make([]AttendanceResponse, 0, len(options))
	for _, opt := range options {
		if row, ok := byEmployee[opt.ID]; ok {
			resp := mapToResponse(row)
			resp.EmployeeName = opt.FullName
			sheet = append(sheet, resp)
			continue
		}
		sheet = append(sheet, AttendanceResponse{
			CompanyID:    companyID,
			EmployeeID:   opt.ID,
			EmployeeName: opt.FullName,
			Date:         date,
			Status:       string(paycalc.StatusAbsent),
		})
	}

	return sheet, nil
}

func (s *service) GetMonth(ctx context.Context, companyID, employeeID, month string) ([]AttendanceResponse, error) {
	if _, err := time.Parse("2006-01", month); err != nil {
		return nil, attendanceerrors.ErrInvalidMonthFormat
	}

	rows, err := s.repo.FindByEmployeeAndMonth(ctx, companyID, employeeID, month)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]AttendanceResponse, len(rows))
	for i, row := range rows {
		resp[i] = mapToResponse(row)
	}
	return resp, nil
}

func (s *service) MonthRecords(ctx context.Context, companyID, employeeID, month string) ([]paycalc.DayRecord, error) {
	if _, err := time.Parse("2006-01", month); err != nil {
		return nil, attendanceerrors.ErrInvalidMonthFormat
	}

	rows, err := s.repo.FindByEmployeeAndMonth(ctx, companyID, employeeID, month)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	records := make([]paycalc.DayRecord, len(rows))
	for i, row := range rows {
		records[i] = toDayRecord(row)
	}
	return records, nil
}

func (s *service) DeleteByEmployee(ctx context.Context, companyID, employeeID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.DeleteByEmployee(ctx, companyID, employeeID); err != nil {
		return mapRepositoryError(err)
	}

	return tx.Commit()
}

// toDayRecord adapts the stored row to the engine's input shape.
func toDayRecord(rec Attendance) paycalc.DayRecord {
	return paycalc.DayRecord{
		Date:       rec.AttendanceDate.Format("2006-01-02"),
		StartTime:  rec.StartTime,
		EndTime:    rec.EndTime,
		OtHours:    rec.OtHours,
		LunchHours: rec.LunchHours,
		WorkDay:    rec.WorkDay,
		Remarks:    rec.Remarks,
		Status:     paycalc.Status(rec.Status),
	}
}

func mapToResponse(rec Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:                 rec.ID.String(),
		CompanyID:          rec.CompanyID.String(),
		EmployeeID:         rec.EmployeeID.String(),
		Date:               rec.AttendanceDate.Format("2006-01-02"),
		StartTime:          rec.StartTime,
		EndTime:            rec.EndTime,
		OtHours:            rec.OtHours,
		LunchHours:         rec.LunchHours,
		WorkDay:            rec.WorkDay,
		Remarks:            rec.Remarks,
		Status:             rec.Status,
		SiteLocation:       rec.SiteLocation,
		CalculatedDailyPay: rec.CalculatedDailyPay,
	}

	if rec.Employee != nil {
		resp.EmployeeName = rec.Employee.FullName
	}

	return resp
}
