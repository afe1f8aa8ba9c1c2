package payroll_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/payroll"
	payrollerrors "github.com/Saron-Raj/HRMS-sytem-Singapore/internal/payroll/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	generateFn func(ctx context.Context, companyID string, req payroll.GeneratePayrollRequest) (payroll.PayrollResponse, error)
	getAllFn   func(ctx context.Context, companyID string, filter payroll.GetPayrollsFilterRequest) ([]payroll.PayrollResponse, error)
	getByIDFn  func(ctx context.Context, companyID, id string) (payroll.PayrollResponse, error)
	payslipFn  func(ctx context.Context, companyID, id string) ([]byte, string, error)
}

func (f *fakeService) Generate(ctx context.Context, companyID string, req payroll.GeneratePayrollRequest) (payroll.PayrollResponse, error) {
	return f.generateFn(ctx, companyID, req)
}
func (f *fakeService) GetAll(ctx context.Context, companyID string, filter payroll.GetPayrollsFilterRequest) ([]payroll.PayrollResponse, error) {
	return f.getAllFn(ctx, companyID, filter)
}
func (f *fakeService) GetByID(ctx context.Context, companyID, id string) (payroll.PayrollResponse, error) {
	return f.getByIDFn(ctx, companyID, id)
}
func (f *fakeService) GetByEmployeeAndMonth(ctx context.Context, companyID, employeeID, month string) (payroll.PayrollResponse, error) {
	return payroll.PayrollResponse{}, nil
}
func (f *fakeService) Delete(ctx context.Context, companyID, id string) error { return nil }
func (f *fakeService) Payslip(ctx context.Context, companyID, id string) ([]byte, string, error) {
	return f.payslipFn(ctx, companyID, id)
}

func TestHandler_GenerateAndGetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)
	companyID := uuid.New().String()
	employeeID := uuid.New().String()

	svc := &fakeService{
		generateFn: func(ctx context.Context, cid string, req payroll.GeneratePayrollRequest) (payroll.PayrollResponse, error) {
			assert.Equal(t, companyID, cid)
			assert.Equal(t, employeeID, req.EmployeeID)
			assert.Equal(t, "2024-06", req.Month)
			return payroll.PayrollResponse{ID: uuid.New().String(), EmployeeID: req.EmployeeID, Month: req.Month, NetSalary: 237}, nil
		},
		getAllFn: func(ctx context.Context, cid string, filter payroll.GetPayrollsFilterRequest) ([]payroll.PayrollResponse, error) {
			assert.Equal(t, "2024-06", filter.Month)
			return []payroll.PayrollResponse{{ID: uuid.New().String()}, {ID: uuid.New().String()}}, nil
		},
	}

	h := payroll.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("company_id", companyID)
	c.Request = httptest.NewRequest(
		http.MethodPost,
		"/payrolls/generate",
		strings.NewReader(`{"employee_id":"`+employeeID+`","month":"2024-06"}`),
	)
	c.Request.Header.Set("Content-Type", "application/json")
	h.Generate(c)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "237")

	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Set("company_id", companyID)
	c2.Request = httptest.NewRequest(http.MethodGet, "/payrolls?month=2024-06&page=1&page_size=1", nil)
	h.GetAll(c2)
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Contains(t, w2.Body.String(), "\"meta\"")
}

func TestHandler_Generate_InvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := payroll.NewHandler(&fakeService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("company_id", uuid.New().String())
	c.Request = httptest.NewRequest(http.MethodPost, "/payrolls/generate", strings.NewReader(`{"month":"2024-06"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Generate(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DownloadPayslip(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		payslipFn: func(ctx context.Context, companyID, id string) ([]byte, string, error) {
			return []byte("%PDF-1.4 fake"), "payslip-EMP-00001-2024-06.pdf", nil
		},
	}

	h := payroll.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("company_id", uuid.New().String())
	c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}
	c.Request = httptest.NewRequest(http.MethodGet, "/payrolls/x/payslip/download", nil)
	h.DownloadPayslip(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "payslip-EMP-00001-2024-06.pdf")
}

func TestHandler_GetById_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		getByIDFn: func(ctx context.Context, companyID, id string) (payroll.PayrollResponse, error) {
			return payroll.PayrollResponse{}, payrollerrors.ErrPayrollNotFound
		},
	}

	h := payroll.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("company_id", uuid.New().String())
	c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}
	c.Request = httptest.NewRequest(http.MethodGet, "/payrolls/x", nil)
	h.GetById(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}
