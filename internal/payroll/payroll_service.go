package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/events"
	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/messaging/kafka"
	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/paycalc"
	payrollerrors "github.com/Saron-Raj/HRMS-sytem-Singapore/internal/payroll/errors"
	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/shared/contextutil"
	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/shared/counter"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EmployeeDirectory, AttendanceSource, AdjustmentSource and
// PaySettingsProvider are the narrow views of the other modules this
// service needs; generation always reads all four live so a regenerated
// month reflects every edit made since the last run.
type EmployeeDirectory interface {
	PayProfile(ctx context.Context, companyID, employeeID string) (paycalc.Employee, error)
}

type AttendanceSource interface {
	MonthRecords(ctx context.Context, companyID, employeeID, month string) ([]paycalc.DayRecord, error)
}

type AdjustmentSource interface {
	Amounts(ctx context.Context, companyID, employeeID, month string) (paycalc.Adjustments, error)
}

type PaySettingsProvider interface {
	PaySettings(ctx context.Context, companyID string) (paycalc.Settings, error)
}

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Generate(ctx context.Context, companyID string, req GeneratePayrollRequest) (PayrollResponse, error)
	GetAll(ctx context.Context, companyID string, filter GetPayrollsFilterRequest) ([]PayrollResponse, error)
	GetByID(ctx context.Context, companyID, id string) (PayrollResponse, error)
	GetByEmployeeAndMonth(ctx context.Context, companyID, employeeID, month string) (PayrollResponse, error)
	Delete(ctx context.Context, companyID, id string) error

	// Payslip renders the stored snapshot as a minimal PDF.
	Payslip(ctx context.Context, companyID, id string) ([]byte, string, error)
}

type service struct {
	db          *sql.DB
	repo        Repository
	employees   EmployeeDirectory
	attendances AttendanceSource
	adjustments AdjustmentSource
	settings    PaySettingsProvider
	counter     counter.Repository
	outbox      kafka.OutboxRepository
	logger      *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employees EmployeeDirectory,
	attendances AttendanceSource,
	adjustments AdjustmentSource,
	settings PaySettingsProvider,
	counterRepo counter.Repository,
	outboxRepo kafka.OutboxRepository,
) Service {
	return &service{
		db:          db,
		repo:        repo,
		employees:   employees,
		attendances: attendances,
		adjustments: adjustments,
		settings:    settings,
		counter:     counterRepo,
		outbox:      outboxRepo,
		logger:      zap.L().Named("payroll.service"),
	}
}

// Generate computes the month and upserts the snapshot. Running it again
// for the same (employee, month) overwrites the previous numbers and
// keeps the original run number.
func (s *service) Generate(
	ctx context.Context,
	companyID string,
	req GeneratePayrollRequest,
) (PayrollResponse, error) {
	if _, err := time.Parse("2006-01", req.Month); err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidMonthFormat
	}

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return PayrollResponse{}, payrollerrors.ErrPayrollNotFound
	}
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return PayrollResponse{}, payrollerrors.ErrPayrollNotFound
	}

	profile, err := s.employees.PayProfile(ctx, companyID, req.EmployeeID)
	if err != nil {
		return PayrollResponse{}, err
	}

	records, err := s.attendances.MonthRecords(ctx, companyID, req.EmployeeID, req.Month)
	if err != nil {
		return PayrollResponse{}, err
	}

	amounts, err := s.adjustments.Amounts(ctx, companyID, req.EmployeeID, req.Month)
	if err != nil {
		return PayrollResponse{}, err
	}

	paySettings, err := s.settings.PaySettings(ctx, companyID)
	if err != nil {
		return PayrollResponse{}, err
	}

	computed := paycalc.MonthlyPayroll(profile, req.Month, records, amounts, paySettings)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	snapshot, created, err := s.findOrInit(ctx, qtx, companyUUID, employeeUUID, req.Month)
	if err != nil {
		return PayrollResponse{}, err
	}

	if created {
		runNumber, err := s.counter.GetNextValue(ctx, companyID, counter.TypePayrollRun)
		if err != nil {
			return PayrollResponse{}, err
		}
		snapshot.RunNumber = runNumber
	}

	applyComputed(snapshot, profile, computed)
	snapshot.GeneratedAt = time.Now().UTC()

	if created {
		err = qtx.Create(ctx, snapshot)
	} else {
		err = qtx.Update(ctx, snapshot)
	}
	if err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		if err := s.enqueueGeneratedEvent(ctx, tx, snapshot); err != nil {
			return PayrollResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}

	s.logger.Info("payroll generated",
		zap.String("company_id", companyID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("month", req.Month),
		zap.Float64("net_salary", snapshot.NetSalary),
	)

	return mapToResponse(*snapshot), nil
}

func (s *service) findOrInit(
	ctx context.Context,
	repo Repository,
	companyID, employeeID uuid.UUID,
	month string,
) (*Payroll, bool, error) {
	snapshot, err := repo.FindByEmployeeAndMonth(ctx, companyID.String(), employeeID.String(), month)
	if err == nil {
		return snapshot, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, mapRepositoryError(err)
	}

	return &Payroll{
		ID:         uuid.New(),
		CompanyID:  companyID,
		EmployeeID: employeeID,
		Month:      month,
	}, true, nil
}

func applyComputed(snapshot *Payroll, profile paycalc.Employee, rec paycalc.PayrollRecord) {
	snapshot.SalaryType = string(profile.SalaryType)
	snapshot.BasicSalary = profile.BasicSalary

	snapshot.TotalDaysWorked = rec.TotalDaysWorked
	snapshot.TotalOtHours = rec.TotalOtHours
	snapshot.TotalLunchHours = rec.TotalLunchHours
	snapshot.McDays = rec.McDays
	snapshot.OffDays = rec.OffDays

	snapshot.BasicPayTotal = rec.BasicPayTotal
	snapshot.HolidayPayTotal = rec.HolidayPayTotal
	snapshot.TotalHolidayDays = rec.TotalHolidayDays
	snapshot.OtPayTotal = rec.OtPayTotal
	snapshot.LunchAllowanceTotal = rec.LunchAllowanceTotal

	snapshot.TransportAllowance = rec.TransportAllowance
	snapshot.OtherAllowances = rec.OtherAllowances
	snapshot.HousingDeduction = rec.HousingDeduction
	snapshot.AdvanceDeduction = rec.AdvanceDeduction
	snapshot.Deductions = rec.Deductions

	snapshot.NetSalary = rec.NetSalary
}

func (s *service) enqueueGeneratedEvent(ctx context.Context, tx *sql.Tx, snapshot *Payroll) error {
	event := events.PayrollGeneratedEvent{
		EventType:  "payroll.generated",
		PayrollID:  snapshot.ID.String(),
		CompanyID:  snapshot.CompanyID.String(),
		EmployeeID: snapshot.EmployeeID.String(),
		Month:      snapshot.Month,
		NetSalary:  snapshot.NetSalary,
		OccurredAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		CompanyID:     snapshot.CompanyID.String(),
		AggregateType: "payroll",
		AggregateID:   snapshot.ID.String(),
		EventType:     event.EventType,
		Topic:         events.PayrollGeneratedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) GetAll(ctx context.Context, companyID string, filter GetPayrollsFilterRequest) ([]PayrollResponse, error) {
	if filter.Month != "" {
		if _, err := time.Parse("2006-01", filter.Month); err != nil {
			return nil, payrollerrors.ErrInvalidMonthFormat
		}
	}

	payrolls, err := s.repo.FindAllByCompany(ctx, companyID, filter)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(payrolls), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (PayrollResponse, error) {
	payroll, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*payroll), nil
}

func (s *service) GetByEmployeeAndMonth(ctx context.Context, companyID, employeeID, month string) (PayrollResponse, error) {
	if _, err := time.Parse("2006-01", month); err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidMonthFormat
	}

	payroll, err := s.repo.FindByEmployeeAndMonth(ctx, companyID, employeeID, month)
	if err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*payroll), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Delete(ctx, companyID, id); err != nil {
		return mapRepositoryError(err)
	}

	return tx.Commit()
}

func (s *service) Payslip(ctx context.Context, companyID, id string) ([]byte, string, error) {
	payroll, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return nil, "", mapRepositoryError(err)
	}

	pdf, err := buildPayslipPDF(*payroll)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("payslip-%s-%s.pdf", payroll.EmployeeID, payroll.Month)
	if payroll.Employee != nil && payroll.Employee.EmployeeNumber != "" {
		filename = fmt.Sprintf("payslip-%s-%s.pdf", payroll.Employee.EmployeeNumber, payroll.Month)
	}
	return pdf, filename, nil
}

func mapToResponse(payroll Payroll) PayrollResponse {
	resp := PayrollResponse{
		ID:         payroll.ID.String(),
		CompanyID:  payroll.CompanyID.String(),
		EmployeeID: payroll.EmployeeID.String(),
		Month:      payroll.Month,
		RunNumber:  payroll.RunNumber,

		SalaryType:  payroll.SalaryType,
		BasicSalary: payroll.BasicSalary,

		TotalDaysWorked: payroll.TotalDaysWorked,
		TotalOtHours:    payroll.TotalOtHours,
		TotalLunchHours: payroll.TotalLunchHours,
		McDays:          payroll.McDays,
		OffDays:         payroll.OffDays,

		BasicPayTotal:       payroll.BasicPayTotal,
		HolidayPayTotal:     payroll.HolidayPayTotal,
		TotalHolidayDays:    payroll.TotalHolidayDays,
		OtPayTotal:          payroll.OtPayTotal,
		LunchAllowanceTotal: payroll.LunchAllowanceTotal,

		TransportAllowance: payroll.TransportAllowance,
		OtherAllowances:    payroll.OtherAllowances,
		HousingDeduction:   payroll.HousingDeduction,
		AdvanceDeduction:   payroll.AdvanceDeduction,
		Deductions:         payroll.Deductions,

		NetSalary:   payroll.NetSalary,
		GeneratedAt: payroll.GeneratedAt.Format(time.RFC3339),
	}

	if payroll.Employee != nil {
		resp.EmployeeName = payroll.Employee.FullName
		resp.EmployeeNumber = payroll.Employee.EmployeeNumber
	}

	return resp
}

func mapToListResponse(payrolls []Payroll) []PayrollResponse {
	resp := make([]PayrollResponse, len(payrolls))
	for i, payroll := range payrolls {
		resp[i] = mapToResponse(payroll)
	}
	return resp
}
