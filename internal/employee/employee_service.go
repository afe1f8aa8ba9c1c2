package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	employeeerrors "github.com/Saron-Raj/HRMS-sytem-Singapore/internal/employee/errors"
	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/events"
	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/messaging/kafka"
	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/paycalc"
	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/shared/contextutil"
	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const employeeOptionsKeyPrefix = "employees:options:"

func optionsCacheKey(companyID string) string {
	return employeeOptionsKeyPrefix + companyID
}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, companyID string) ([]EmployeeResponse, error)
	GetActive(ctx context.Context, companyID string) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, companyID, id string) (EmployeeResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, companyID, id string) error

	// PayProfile returns the pay-relevant subset for the computation engine.
	PayProfile(ctx context.Context, companyID, employeeID string) (paycalc.Employee, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counterRepo counter.Repository, rdb *redis.Client) Service {
	return NewServiceWithOutbox(db, repo, counterRepo, nil, rdb)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	counterRepo counter.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
) Service {
	return &service{
		db:      db,
		repo:    repo,
		counter: counterRepo,
		outbox:  outboxRepo,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  zap.L().Named("employee.service"),
	}
}

func (s *service) Create(
	ctx context.Context,
	companyID string,
	req CreateEmployeeRequest,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("fin", req.Fin),
	)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	joinDate, err := time.Parse("2006-01-02", req.JoinDate)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidJoinDate
	}

	nextVal, err := s.counter.GetNextValue(ctx, companyID, counter.TypeEmployeeNumber)
	if err != nil {
		s.logger.Error("create employee generate number failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	emp := &Employee{
		ID:             uuid.New(),
		CompanyID:      companyUUID,
		EmployeeNumber: fmt.Sprintf("EMP-%05d", nextVal),
		FullName:       req.FullName,
		Fin:            req.Fin,
		Position:       req.Position,
		SalaryType:     req.SalaryType,
		BasicSalary:    req.BasicSalary,
		JoinDate:       joinDate,
		Status:         StatusActive,
	}

	if err := qtx.Create(ctx, emp); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		if err := s.enqueueCreatedEvent(ctx, tx, emp, rid); err != nil {
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	s.invalidateOptions(ctx, companyID)
	return mapToResponse(*emp), nil
}

func (s *service) enqueueCreatedEvent(ctx context.Context, tx *sql.Tx, emp *Employee, rid string) error {
	event := events.EmployeeCreatedEvent{
		EventType:  "employee.created",
		EmployeeID: emp.ID.String(),
		CompanyID:  emp.CompanyID.String(),
		SalaryType: emp.SalaryType,
		OccurredAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		CompanyID:     emp.CompanyID.String(),
		AggregateType: "employee",
		AggregateID:   emp.ID.String(),
		EventType:     event.EventType,
		Topic:         events.EmployeeCreatedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]EmployeeResponse, error) {
	emps, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(emps), nil
}

// GetActive serves the attendance sheet's employee list. It is read on
// every sheet render, so results are cached in redis with singleflight
// guarding the fill.
func (s *service) GetActive(ctx context.Context, companyID string) ([]EmployeeResponse, error) {
	if s.rdb == nil {
		return s.loadActive(ctx, companyID)
	}

	key := optionsCacheKey(companyID)
	if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
		var resp []EmployeeResponse
		if jsonErr := json.Unmarshal([]byte(cached), &resp); jsonErr == nil {
			return resp, nil
		}
	}

	v, err, _ := s.sf.Do(key, func() (any, error) {
		resp, err := s.loadActive(ctx, companyID)
		if err != nil {
			return nil, err
		}
		if payload, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = s.rdb.Set(ctx, key, payload, 5*time.Minute).Err()
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]EmployeeResponse), nil
}

func (s *service) loadActive(ctx context.Context, companyID string) ([]EmployeeResponse, error) {
	emps, err := s.repo.FindActiveByCompany(ctx, companyID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(emps), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (EmployeeResponse, error) {
	emp, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*emp), nil
}

func (s *service) Update(
	ctx context.Context,
	companyID, id string,
	req UpdateEmployeeRequest,
) (EmployeeResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	emp, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	emp.FullName = req.FullName
	emp.Position = req.Position
	emp.SalaryType = req.SalaryType
	emp.BasicSalary = req.BasicSalary

	if req.Status == StatusCancelled && emp.Status != StatusCancelled {
		now := time.Now().UTC()
		emp.CancellationDate = &now
	}
	if req.Status == StatusActive {
		emp.CancellationDate = nil
	}
	emp.Status = req.Status

	if err := qtx.Update(ctx, emp); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	s.invalidateOptions(ctx, companyID)
	return mapToResponse(*emp), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Delete(ctx, companyID, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidateOptions(ctx, companyID)
	return nil
}

func (s *service) PayProfile(ctx context.Context, companyID, employeeID string) (paycalc.Employee, error) {
	emp, err := s.repo.FindByIDAndCompany(ctx, companyID, employeeID)
	if err != nil {
		return paycalc.Employee{}, mapRepositoryError(err)
	}

	return paycalc.Employee{
		SalaryType:  paycalc.SalaryType(emp.SalaryType),
		BasicSalary: emp.BasicSalary,
	}, nil
}

func (s *service) invalidateOptions(ctx context.Context, companyID string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, optionsCacheKey(companyID)).Err(); err != nil {
		s.logger.Warn("invalidate employee options cache failed",
			zap.String("company_id", companyID),
			zap.Error(err),
		)
	}
}

func mapToResponse(emp Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:             emp.ID.String(),
		CompanyID:      emp.CompanyID.String(),
		EmployeeNumber: emp.EmployeeNumber,
		FullName:       emp.FullName,
		Fin:            emp.Fin,
		Position:       emp.Position,
		SalaryType:     emp.SalaryType,
		BasicSalary:    emp.BasicSalary,
		JoinDate:       emp.JoinDate.Format("2006-01-02"),
		Status:         emp.Status,
	}

	if emp.CancellationDate != nil {
		v := emp.CancellationDate.Format("2006-01-02")
		resp.CancellationDate = &v
	}

	return resp
}

func mapToListResponse(emps []Employee) []EmployeeResponse {
	resp := make([]EmployeeResponse, len(emps))
	for i, emp := range emps {
		resp[i] = mapToResponse(emp)
	}
	return resp
}
