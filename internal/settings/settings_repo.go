package settings

import (
	"context"
	"database/sql"

	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=settings_repo.go -destination=mock/settings_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindByCompany(ctx context.Context, companyID string) (*AppSetting, error)
	CreateSetting(ctx context.Context, setting *AppSetting) error
	UpdateSetting(ctx context.Context, setting *AppSetting) error
	ListHolidays(ctx context.Context, companyID string) ([]Holiday, error)
	CreateHoliday(ctx context.Context, holiday *Holiday) error
	DeleteHoliday(ctx context.Context, companyID, id string) error
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

func (r *repository) FindByCompany(ctx context.Context, companyID string) (*AppSetting, error) {
	var setting AppSetting
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&setting).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *repository) CreateSetting(ctx context.Context, setting *AppSetting) error {
	return r.db.WithContext(ctx).Create(setting).Error
}

func (r *repository) UpdateSetting(ctx context.Context, setting *AppSetting) error {
	return r.db.WithContext(ctx).Save(setting).Error
}

func (r *repository) ListHolidays(ctx context.Context, companyID string) ([]Holiday, error) {
	var holidays []Holiday
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("date ASC").
		Find(&holidays).Error
	return holidays, err
}

func (r *repository) CreateHoliday(ctx context.Context, holiday *Holiday) error {
	return r.db.WithContext(ctx).Create(holiday).Error
}

func (r *repository) DeleteHoliday(ctx context.Context, companyID, id string) error {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Delete(&Holiday{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
