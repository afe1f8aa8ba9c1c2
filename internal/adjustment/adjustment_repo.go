package adjustment

import (
	"context"
	"database/sql"

	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=adjustment_repo.go -destination=mock/adjustment_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, adj *Adjustment) error
	FindByEmployeeAndMonth(ctx context.Context, companyID, employeeID, month string) (*Adjustment, error)
	Update(ctx context.Context, adj *Adjustment) error
	DeleteByEmployee(ctx context.Context, companyID, employeeID string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, adj *Adjustment) error {
	return r.db.WithContext(ctx).Create(adj).Error
}

func (r *repository) FindByEmployeeAndMonth(ctx context.Context, companyID, employeeID, month string) (*Adjustment, error) {
	var adj Adjustment
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("month = ?", month).
		First(&adj).Error
	if err != nil {
		return nil, err
	}
	return &adj, nil
}

func (r *repository) Update(ctx context.Context, adj *Adjustment) error {
	return r.db.WithContext(ctx).Save(adj).Error
}

func (r *repository) DeleteByEmployee(ctx context.Context, companyID, employeeID string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Delete(&Adjustment{}).Error
}
