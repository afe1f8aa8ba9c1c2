package app

import (
	"context"
	"database/sql"

	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/adjustment"
	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/attendance"
	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/employee"
	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/messaging/kafka"
	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/middleware"
	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/paycalc"
	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/payroll"
	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/settings"
	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// employeeDirectory narrows employee.Service to what the attendance
// module needs.
type employeeDirectory struct {
	svc employee.Service
}

func (d employeeDirectory) PayProfile(ctx context.Context, companyID, employeeID string) (paycalc.Employee, error) {
	return d.svc.PayProfile(ctx, companyID, employeeID)
}

func (d employeeDirectory) GetActiveIDs(ctx context.Context, companyID string) ([]attendance.EmployeeOption, error) {
	emps, err := d.svc.GetActive(ctx, companyID)
	if err != nil {
		return nil, err
	}

	options := make([]attendance.EmployeeOption, len(emps))
	for i, emp := range emps {
		options[i] = attendance.EmployeeOption{ID: emp.ID, FullName: emp.FullName}
	}
	return options, nil
}

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	employeeRepo := employee.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	adjustmentRepo := adjustment.NewRepository(gormDB)
	settingsRepo := settings.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)

	// --- Services ---
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, counterRepo, outboxRepo, rdb)
	settingsService := settings.NewService(db, settingsRepo, rdb)
	directory := employeeDirectory{svc: employeeService}
	attendanceService := attendance.NewService(db, attendanceRepo, directory, settingsService, outboxRepo)
	adjustmentService := adjustment.NewService(db, adjustmentRepo)
	payrollService := payroll.NewService(
		db,
		payrollRepo,
		directory,
		attendanceService,
		adjustmentService,
		settingsService,
		counterRepo,
		outboxRepo,
	)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	adjustmentHandler := adjustment.NewHandler(adjustmentService)
	settingsHandler := settings.NewHandler(settingsService)
	payrollHandler := payroll.NewHandlerWithRedis(payrollService, rdb)

	// --- Routes ---
	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimitByIP(rate.Limit(50), 100))

	api := router.Group("/api/v1")
	{
		employee.RegisterRoutes(api, employeeHandler)
		attendance.RegisterRoutes(api, attendanceHandler)
		adjustment.RegisterRoutes(api, adjustmentHandler)
		settings.RegisterRoutes(api, settingsHandler)
		payroll.RegisterRoutes(api, payrollHandler, rdb)
	}

	return nil
}
