package payroll

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/events"
	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/messaging/kafka"
	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/paycalc"
	payrollerrors "github.com/Saron-Raj/HRMS-sytem-Singapore/internal/payroll/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	createFn                 func(ctx context.Context, payroll *Payroll) error
	findAllByCompanyFn       func(ctx context.Context, companyID string, filter GetPayrollsFilterRequest) ([]Payroll, error)
	findByIDAndCompanyFn     func(ctx context.Context, companyID, id string) (*Payroll, error)
	findByEmployeeAndMonthFn func(ctx context.Context, companyID, employeeID, month string) (*Payroll, error)
	updateFn                 func(ctx context.Context, payroll *Payroll) error
	deleteFn                 func(ctx context.Context, companyID, id string) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f }

func (f *fakeRepo) Create(ctx context.Context, payroll *Payroll) error {
	return f.createFn(ctx, payroll)
}
func (f *fakeRepo) FindAllByCompany(ctx context.Context, companyID string, filter GetPayrollsFilterRequest) ([]Payroll, error) {
	return f.findAllByCompanyFn(ctx, companyID, filter)
}
func (f *fakeRepo) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Payroll, error) {
	return f.findByIDAndCompanyFn(ctx, companyID, id)
}
func (f *fakeRepo) FindByEmployeeAndMonth(ctx context.Context, companyID, employeeID, month string) (*Payroll, error) {
	return f.findByEmployeeAndMonthFn(ctx, companyID, employeeID, month)
}
func (f *fakeRepo) Update(ctx context.Context, payroll *Payroll) error {
	return f.updateFn(ctx, payroll)
}
func (f *fakeRepo) Delete(ctx context.Context, companyID, id string) error {
	return f.deleteFn(ctx, companyID, id)
}

type fakeDirectory struct {
	profile paycalc.Employee
}

func (f *fakeDirectory) PayProfile(ctx context.Context, companyID, employeeID string) (paycalc.Employee, error) {
	return f.profile, nil
}

type fakeAttendance struct {
	records []paycalc.DayRecord
}

func (f *fakeAttendance) MonthRecords(ctx context.Context, companyID, employeeID, month string) ([]paycalc.DayRecord, error) {
	return f.records, nil
}

type fakeAdjustments struct {
	amounts paycalc.Adjustments
}

func (f *fakeAdjustments) Amounts(ctx context.Context, companyID, employeeID, month string) (paycalc.Adjustments, error) {
	return f.amounts, nil
}

type fakeSettings struct {
	settings paycalc.Settings
}

func (f *fakeSettings) PaySettings(ctx context.Context, companyID string) (paycalc.Settings, error) {
	return f.settings, nil
}

type fakeCounter struct {
	next  int64
	calls int
}

func (f *fakeCounter) GetNextValue(ctx context.Context, companyID, counterType string) (int64, error) {
	f.calls++
	f.next++
	return f.next, nil
}

type fakeOutbox struct {
	created []kafka.OutboxEvent
}

func (f *fakeOutbox) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutbox) Create(ctx context.Context, e kafka.OutboxEvent) error {
	f.created = append(f.created, e)
	return nil
}
func (f *fakeOutbox) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutbox) MarkSent(ctx context.Context, id string) error           { return nil }
func (f *fakeOutbox) MarkFailed(ctx context.Context, id, reason string) error { return nil }

func monthRecords() []paycalc.DayRecord {
	return []paycalc.DayRecord{
		{Date: "2024-06-03", StartTime: "08:00", EndTime: "20:00", OtHours: 3, LunchHours: 1, WorkDay: 1, Status: paycalc.StatusPresent},
		{Date: "2024-06-04", StartTime: "08:00", EndTime: "17:00", LunchHours: 1, WorkDay: 1, Status: paycalc.StatusPresent},
		{Date: "2024-06-05", Remarks: paycalc.RemarkMC, WorkDay: 1, Status: paycalc.StatusMC},
	}
}

func newTestService(repo *fakeRepo, db *sql.DB, ctr *fakeCounter, outbox *fakeOutbox) Service {
	return NewService(
		db,
		repo,
		&fakeDirectory{profile: paycalc.Employee{SalaryType: paycalc.SalaryTypeDaily, BasicSalary: 80}},
		&fakeAttendance{records: monthRecords()},
		&fakeAdjustments{amounts: paycalc.Adjustments{Transport: 50, Advance: 100}},
		&fakeSettings{settings: paycalc.Settings{HolidayPayMultiplier: 1.5}},
		ctr,
		outbox,
	)
}

func TestService_Generate_CreatesSnapshot(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	companyID := uuid.New().String()
	employeeID := uuid.New().String()

	var saved *Payroll
	repo := &fakeRepo{}
	repo.findByEmployeeAndMonthFn = func(ctx context.Context, companyID, employeeID, month string) (*Payroll, error) {
		return nil, gorm.ErrRecordNotFound
	}
	repo.createFn = func(ctx context.Context, payroll *Payroll) error { saved = payroll; return nil }

	ctr := &fakeCounter{}
	outbox := &fakeOutbox{}
	svc := newTestService(repo, db, ctr, outbox)

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := svc.Generate(context.Background(), companyID, GeneratePayrollRequest{
		EmployeeID: employeeID,
		Month:      "2024-06",
	})
	assert.NoError(t, err)
	assert.NotNil(t, saved)
	assert.Equal(t, int64(1), resp.RunNumber)
	assert.Equal(t, 1, ctr.calls)

	// 3 work days at 80, 3 OT hours at 80/8*1.5, 2 lunch hours at 1,
	// transport 50 minus advance 100.
	assert.Equal(t, 3.0, resp.TotalDaysWorked)
	assert.Equal(t, 3.0, resp.TotalOtHours)
	assert.Equal(t, 1, resp.McDays)
	assert.Equal(t, 240.0, resp.BasicPayTotal)
	assert.Equal(t, 45.0, resp.OtPayTotal)
	assert.Equal(t, 2.0, resp.LunchAllowanceTotal)
	assert.Equal(t, 100.0, resp.Deductions)
	assert.Equal(t, 237.0, resp.NetSalary)

	if assert.Len(t, outbox.created, 1) {
		assert.Equal(t, events.PayrollGeneratedTopic, outbox.created[0].Topic)
		assert.Equal(t, "payroll.generated", outbox.created[0].EventType)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Generate_RegenerateKeepsRunNumber(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	companyID := uuid.New()
	employeeID := uuid.New()

	existing := &Payroll{
		ID:         uuid.New(),
		CompanyID:  companyID,
		EmployeeID: employeeID,
		Month:      "2024-06",
		RunNumber:  7,
		NetSalary:  1,
	}

	var saved *Payroll
	repo := &fakeRepo{}
	repo.findByEmployeeAndMonthFn = func(ctx context.Context, companyID, employeeID, month string) (*Payroll, error) {
		snapshot := *existing
		return &snapshot, nil
	}
	repo.updateFn = func(ctx context.Context, payroll *Payroll) error { saved = payroll; return nil }
	repo.createFn = func(ctx context.Context, payroll *Payroll) error {
		t.Fatal("expected update, not create")
		return nil
	}

	ctr := &fakeCounter{}
	svc := newTestService(repo, db, ctr, &fakeOutbox{})

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := svc.Generate(context.Background(), companyID.String(), GeneratePayrollRequest{
		EmployeeID: employeeID.String(),
		Month:      "2024-06",
	})
	assert.NoError(t, err)
	assert.NotNil(t, saved)
	assert.Equal(t, int64(7), resp.RunNumber)
	assert.Equal(t, 0, ctr.calls)
	assert.Equal(t, 237.0, resp.NetSalary)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Generate_RejectsMalformedMonth(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := newTestService(&fakeRepo{}, db, &fakeCounter{}, &fakeOutbox{})

	_, err := svc.Generate(context.Background(), uuid.New().String(), GeneratePayrollRequest{
		EmployeeID: uuid.New().String(),
		Month:      "June 2024",
	})
	assert.True(t, errors.Is(err, payrollerrors.ErrInvalidMonthFormat))
}

func TestService_Payslip_RendersPDF(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.findByIDAndCompanyFn = func(ctx context.Context, companyID, id string) (*Payroll, error) {
		return &Payroll{
			ID:         uuid.New(),
			CompanyID:  uuid.New(),
			EmployeeID: uuid.New(),
			Month:      "2024-06",
			NetSalary:  237,
			Employee:   &EmployeeRef{ID: uuid.New(), EmployeeNumber: "EMP-00001", FullName: "Arul Kumar"},
		}, nil
	}

	svc := newTestService(repo, db, &fakeCounter{}, &fakeOutbox{})

	pdf, filename, err := svc.Payslip(context.Background(), uuid.New().String(), uuid.New().String())
	assert.NoError(t, err)
	assert.Equal(t, "payslip-EMP-00001-2024-06.pdf", filename)
	assert.True(t, len(pdf) > 0)
	assert.Equal(t, "%PDF", string(pdf[:4]))
	assert.Contains(t, string(pdf), "Net salary: 237.00")
}

func TestService_GetAll_FilterValidation(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := newTestService(&fakeRepo{}, db, &fakeCounter{}, &fakeOutbox{})

	_, err := svc.GetAll(context.Background(), uuid.New().String(), GetPayrollsFilterRequest{Month: "06/2024"})
	assert.True(t, errors.Is(err, payrollerrors.ErrInvalidMonthFormat))
}
