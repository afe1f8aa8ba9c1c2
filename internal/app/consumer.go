package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/adjustment"
	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/attendance"
	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/employee"
	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/events"
	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/messaging/kafka"
	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/messaging/kafka/consumer"
	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/payroll"
	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/settings"
	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/shared/connection"
	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/shared/counter"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(sqlDB)
	employeeRepo := employee.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	adjustmentRepo := adjustment.NewRepository(gormDB)
	settingsRepo := settings.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)

	employeeService := employee.NewService(sqlDB, employeeRepo, counterRepo, nil)
	settingsService := settings.NewService(sqlDB, settingsRepo, nil)
	directory := employeeDirectory{svc: employeeService}
	attendanceService := attendance.NewService(sqlDB, attendanceRepo, directory, settingsService, nil)
	adjustmentService := adjustment.NewService(sqlDB, adjustmentRepo)
	payrollService := payroll.NewService(
		sqlDB,
		payrollRepo,
		directory,
		attendanceService,
		adjustmentService,
		settingsService,
		counterRepo,
		outboxRepo,
	)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     []string{kafkaBroker},
		Topic:       events.AttendanceUpdatedTopic,
		GroupID:     "hrms-payroll-recalc",
		StartOffset: kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeAttendanceUpdated(ctx, reader, payrollService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
