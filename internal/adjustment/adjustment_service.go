package adjustment

import (
	"context"
	"database/sql"
	"errors"
	"time"

	adjustmenterrors "github.com/Saron-Raj/HRMS-sytem-Singapore/internal/adjustment/errors"
	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/paycalc"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=adjustment_service.go -destination=mock/adjustment_service_mock.go -package=mock
type Service interface {
	Upsert(ctx context.Context, companyID, employeeID, month string, req UpsertAdjustmentRequest) (AdjustmentResponse, error)
	GetByEmployeeMonth(ctx context.Context, companyID, employeeID, month string) (AdjustmentResponse, error)
	Amounts(ctx context.Context, companyID, employeeID, month string) (paycalc.Adjustments, error)
	DeleteByEmployee(ctx context.Context, companyID, employeeID string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{
		db:     db,
		repo:   repo,
		logger: zap.L().Named("adjustment.service"),
	}
}

func (s *service) Upsert(
	ctx context.Context,
	companyID, employeeID, month string,
	req UpsertAdjustmentRequest,
) (AdjustmentResponse, error) {
	if _, err := time.Parse("2006-01", month); err != nil {
		return AdjustmentResponse{}, adjustmenterrors.ErrInvalidMonthFormat
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AdjustmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	adj, created, err := s.findOrInit(ctx, qtx, companyID, employeeID, month)
	if err != nil {
		return AdjustmentResponse{}, err
	}

	applyEdit(adj, req)

	if created {
		err = qtx.Create(ctx, adj)
	} else {
		err = qtx.Update(ctx, adj)
	}
	if err != nil {
		return AdjustmentResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return AdjustmentResponse{}, err
	}

	return mapToResponse(*adj), nil
}

func (s *service) findOrInit(
	ctx context.Context,
	repo Repository,
	companyID, employeeID, month string,
) (*Adjustment, bool, error) {
	adj, err := repo.FindByEmployeeAndMonth(ctx, companyID, employeeID, month)
	if err == nil {
		return adj, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, mapRepositoryError(err)
	}

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return nil, false, adjustmenterrors.ErrAdjustmentNotFound
	}
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, false, adjustmenterrors.ErrAdjustmentNotFound
	}

	return &Adjustment{
		ID:         uuid.New(),
		CompanyID:  companyUUID,
		EmployeeID: employeeUUID,
		Month:      month,
	}, true, nil
}

func applyEdit(adj *Adjustment, req UpsertAdjustmentRequest) {
	if req.Transport != nil {
		adj.Transport = *req.Transport
	}
	if req.Other != nil {
		adj.Other = *req.Other
	}
	if req.Housing != nil {
		adj.Housing = *req.Housing
	}
	if req.Advance != nil {
		adj.Advance = *req.Advance
	}
	if req.ImageRef != nil {
		adj.ImageRef = *req.ImageRef
	}
}

// GetByEmployeeMonth never 404s on a missing row: a month with no
// adjustments reads as all zeroes.
func (s *service) GetByEmployeeMonth(ctx context.Context, companyID, employeeID, month string) (AdjustmentResponse, error) {
	if _, err := time.Parse("2006-01", month); err != nil {
		return AdjustmentResponse{}, adjustmenterrors.ErrInvalidMonthFormat
	}

	adj, err := s.repo.FindByEmployeeAndMonth(ctx, companyID, employeeID, month)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return AdjustmentResponse{
			CompanyID:  companyID,
			EmployeeID: employeeID,
			Month:      month,
		}, nil
	}
	if err != nil {
		return AdjustmentResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*adj), nil
}

// Amounts is the pay-engine view of one month's adjustments.
func (s *service) Amounts(ctx context.Context, companyID, employeeID, month string) (paycalc.Adjustments, error) {
	resp, err := s.GetByEmployeeMonth(ctx, companyID, employeeID, month)
	if err != nil {
		return paycalc.Adjustments{}, err
	}

	return paycalc.Adjustments{
		Transport: resp.Transport,
		Other:     resp.Other,
		Housing:   resp.Housing,
		Advance:   resp.Advance,
	}, nil
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

func mapToResponse(adj Adjustment) AdjustmentResponse {
	return AdjustmentResponse{
		ID:         adj.ID.String(),
		CompanyID:  adj.CompanyID.String(),
		EmployeeID: adj.EmployeeID.String(),
		Month:      adj.Month,
		Transport:  adj.Transport,
		Other:      adj.Other,
		Housing:    adj.Housing,
		Advance:    adj.Advance,
		ImageRef:   adj.ImageRef,
	}
}
