package employee_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/employee"
	employeeerrors "github.com/Saron-Raj/HRMS-sytem-Singapore/internal/employee/errors"
	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/paycalc"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	createFn    func(ctx context.Context, companyID string, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	getAllFn    func(ctx context.Context, companyID string) ([]employee.EmployeeResponse, error)
	getActiveFn func(ctx context.Context, companyID string) ([]employee.EmployeeResponse, error)
	getByIDFn   func(ctx context.Context, companyID, id string) (employee.EmployeeResponse, error)
	updateFn    func(ctx context.Context, companyID, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	deleteFn    func(ctx context.Context, companyID, id string) error
}

func (f *fakeService) Create(ctx context.Context, companyID string, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.createFn(ctx, companyID, req)
}
func (f *fakeService) GetAll(ctx context.Context, companyID string) ([]employee.EmployeeResponse, error) {
	return f.getAllFn(ctx, companyID)
}
func (f *fakeService) GetActive(ctx context.Context, companyID string) ([]employee.EmployeeResponse, error) {
	return f.getActiveFn(ctx, companyID)
}
func (f *fakeService) GetByID(ctx context.Context, companyID, id string) (employee.EmployeeResponse, error) {
	return f.getByIDFn(ctx, companyID, id)
}
func (f *fakeService) Update(ctx context.Context, companyID, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.updateFn(ctx, companyID, id, req)
}
func (f *fakeService) Delete(ctx context.Context, companyID, id string) error {
	return f.deleteFn(ctx, companyID, id)
}
func (f *fakeService) PayProfile(ctx context.Context, companyID, employeeID string) (paycalc.Employee, error) {
	return paycalc.Employee{}, nil
}

func TestHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)
	companyID := uuid.New().String()

	svc := &fakeService{
		createFn: func(ctx context.Context, cid string, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
			assert.Equal(t, companyID, cid)
			assert.Equal(t, "Daily", req.SalaryType)
			return employee.EmployeeResponse{ID: uuid.New().String(), EmployeeNumber: "EMP-00007", FullName: req.FullName}, nil
		},
	}

	h := employee.NewHandler(svc)

	body := `{"full_name":"Tan Wei Ming","fin":"S1234567A","salary_type":"Daily","basic_salary":80,"join_date":"2023-02-01"}`

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("company_id", companyID)
	c.Request = httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Create(c)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "EMP-00007")
}

func TestHandler_Create_InvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		createFn: func(ctx context.Context, cid string, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
			t.Fatal("service should not be reached on bind failure")
			return employee.EmployeeResponse{}, nil
		},
	}

	h := employee.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("company_id", uuid.New().String())
	c.Request = httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(`{"salary_type":"Weekly"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Create(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_INPUT")
}

func TestHandler_GetAll_ActiveFilterUsesOptionsPath(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		getActiveFn: func(ctx context.Context, cid string) ([]employee.EmployeeResponse, error) {
			return []employee.EmployeeResponse{{FullName: "Active Only"}}, nil
		},
		getAllFn: func(ctx context.Context, cid string) ([]employee.EmployeeResponse, error) {
			t.Fatal("status=Active should route to the active list")
			return nil, nil
		},
	}

	h := employee.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("company_id", uuid.New().String())
	c.Request = httptest.NewRequest(http.MethodGet, "/employees?status=Active", nil)
	h.GetAll(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Active Only")
}

func TestHandler_GetById_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		getByIDFn: func(ctx context.Context, cid, id string) (employee.EmployeeResponse, error) {
			return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		},
	}

	h := employee.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("company_id", uuid.New().String())
	c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}
	c.Request = httptest.NewRequest(http.MethodGet, "/employees", nil)
	h.GetById(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	deleted := ""
	svc := &fakeService{
		deleteFn: func(ctx context.Context, cid, id string) error {
			deleted = id
			return nil
		},
	}

	h := employee.NewHandler(svc)

	id := uuid.New().String()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("company_id", uuid.New().String())
	c.Params = gin.Params{{Key: "id", Value: id}}
	c.Request = httptest.NewRequest(http.MethodDelete, "/employees", nil)
	h.Delete(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, deleted)
}
