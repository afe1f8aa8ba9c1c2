package attendance_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/attendance"
	attendanceerrors "github.com/Saron-Raj/HRMS-sytem-Singapore/internal/attendance/errors"
	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/paycalc"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	upsertFn   func(ctx context.Context, companyID, employeeID, date string, req attendance.UpsertAttendanceRequest) (attendance.AttendanceResponse, error)
	getSheetFn func(ctx context.Context, companyID, date string) ([]attendance.AttendanceResponse, error)
	getMonthFn func(ctx context.Context, companyID, employeeID, month string) ([]attendance.AttendanceResponse, error)
	deleteFn   func(ctx context.Context, companyID, employeeID string) error
}

func (f *fakeService) Upsert(ctx context.Context, companyID, employeeID, date string, req attendance.UpsertAttendanceRequest) (attendance.AttendanceResponse, error) {
	return f.upsertFn(ctx, companyID, employeeID, date, req)
}
func (f *fakeService) GetSheet(ctx context.Context, companyID, date string) ([]attendance.AttendanceResponse, error) {
	return f.getSheetFn(ctx, companyID, date)
}
func (f *fakeService) GetMonth(ctx context.Context, companyID, employeeID, month string) ([]attendance.AttendanceResponse, error) {
	return f.getMonthFn(ctx, companyID, employeeID, month)
}
func (f *fakeService) DeleteByEmployee(ctx context.Context, companyID, employeeID string) error {
	return f.deleteFn(ctx, companyID, employeeID)
}
func (f *fakeService) MonthRecords(ctx context.Context, companyID, employeeID, month string) ([]paycalc.DayRecord, error) {
	return nil, nil
}

func TestHandler_UpsertAndSheet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	companyID := uuid.New().String()
	employeeID := uuid.New().String()

	svc := &fakeService{
		upsertFn: func(ctx context.Context, cid, eid, date string, req attendance.UpsertAttendanceRequest) (attendance.AttendanceResponse, error) {
			assert.Equal(t, companyID, cid)
			assert.Equal(t, employeeID, eid)
			assert.Equal(t, "2024-06-03", date)
			assert.NotNil(t, req.EndTime)
			return attendance.AttendanceResponse{ID: uuid.New().String(), EmployeeID: eid, Status: "Present"}, nil
		},
		getSheetFn: func(ctx context.Context, cid, date string) ([]attendance.AttendanceResponse, error) {
			assert.Equal(t, "2024-06-03", date)
			return []attendance.AttendanceResponse{{EmployeeID: uuid.New().String(), Status: "Absent"}}, nil
		},
	}

	h := attendance.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("company_id", companyID)
	c.Params = gin.Params{
		{Key: "employee_id", Value: employeeID},
		{Key: "date", Value: "2024-06-03"},
	}
	c.Request = httptest.NewRequest(http.MethodPut, "/attendances", strings.NewReader(`{"end_time":"20:00"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Upsert(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Present")

	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Set("company_id", companyID)
	c2.Request = httptest.NewRequest(http.MethodGet, "/attendances/sheet?date=2024-06-03", nil)
	h.GetSheet(c2)
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Contains(t, w2.Body.String(), "Absent")
}

func TestHandler_Upsert_ServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		upsertFn: func(ctx context.Context, cid, eid, date string, req attendance.UpsertAttendanceRequest) (attendance.AttendanceResponse, error) {
			return attendance.AttendanceResponse{}, attendanceerrors.ErrInvalidTimeFormat
		},
	}

	h := attendance.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("company_id", uuid.New().String())
	c.Params = gin.Params{
		{Key: "employee_id", Value: uuid.New().String()},
		{Key: "date", Value: "2024-06-03"},
	}
	c.Request = httptest.NewRequest(http.MethodPut, "/attendances", strings.NewReader(`{"start_time":"8am"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Upsert(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_INPUT")
}

func TestHandler_GetMonth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		getMonthFn: func(ctx context.Context, cid, eid, month string) ([]attendance.AttendanceResponse, error) {
			assert.Equal(t, "2024-06", month)
			return []attendance.AttendanceResponse{{Date: "2024-06-03"}, {Date: "2024-06-04"}}, nil
		},
	}

	h := attendance.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("company_id", uuid.New().String())
	c.Params = gin.Params{
		{Key: "employee_id", Value: uuid.New().String()},
		{Key: "month", Value: "2024-06"},
	}
	c.Request = httptest.NewRequest(http.MethodGet, "/attendances", nil)
	h.GetMonth(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "2024-06-04")
}
