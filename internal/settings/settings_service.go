package settings

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/paycalc"
	settingserrors "github.com/Saron-Raj/HRMS-sytem-Singapore/internal/settings/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const settingsKeyPrefix = "settings:pay:"

func settingsCacheKey(companyID string) string {
	return settingsKeyPrefix + companyID
}

//go:generate mockgen -source=settings_service.go -destination=mock/settings_service_mock.go -package=mock
type Service interface {
	Get(ctx context.Context, companyID string) (SettingsResponse, error)
	Update(ctx context.Context, companyID string, req UpdateSettingsRequest) (SettingsResponse, error)
	AddHoliday(ctx context.Context, companyID string, req AddHolidayRequest) (HolidayResponse, error)
	DeleteHoliday(ctx context.Context, companyID, id string) error

	// PaySettings is the engine-facing view, always read through the
	// same cache as Get so both see one value.
	PaySettings(ctx context.Context, companyID string) (paycalc.Settings, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client) Service {
	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: zap.L().Named("settings.service"),
	}
}

func (s *service) Get(ctx context.Context, companyID string) (SettingsResponse, error) {
	if s.rdb == nil {
		return s.load(ctx, companyID)
	}

	key := settingsCacheKey(companyID)
	if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
		var resp SettingsResponse
		if jsonErr := json.Unmarshal([]byte(cached), &resp); jsonErr == nil {
			return resp, nil
		}
	}

	v, err, _ := s.sf.Do(key, func() (any, error) {
		resp, err := s.load(ctx, companyID)
		if err != nil {
			return nil, err
		}
		if payload, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = s.rdb.Set(ctx, key, payload, 5*time.Minute).Err()
		}
		return resp, nil
	})
	if err != nil {
		return SettingsResponse{}, err
	}

	return v.(SettingsResponse), nil
}

// load reads settings straight from the database. A company with no
// settings row reads as the defaults.
func (s *service) load(ctx context.Context, companyID string) (SettingsResponse, error) {
	resp := SettingsResponse{
		CompanyID:            companyID,
		HolidayPayMultiplier: paycalc.DefaultHolidayPayMultiplier,
		PublicHolidays:       []HolidayResponse{},
	}

	setting, err := s.repo.FindByCompany(ctx, companyID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return SettingsResponse{}, mapRepositoryError(err)
	}
	if err == nil {
		resp.HolidayPayMultiplier = setting.HolidayPayMultiplier
	}

	holidays, err := s.repo.ListHolidays(ctx, companyID)
	if err != nil {
		return SettingsResponse{}, mapRepositoryError(err)
	}
	for _, h := range holidays {
		resp.PublicHolidays = append(resp.PublicHolidays, HolidayResponse{
			ID:   h.ID.String(),
			Date: h.Date.Format("2006-01-02"),
			Name: h.Name,
		})
	}

	return resp, nil
}

func (s *service) Update(ctx context.Context, companyID string, req UpdateSettingsRequest) (SettingsResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SettingsResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	setting, err := qtx.FindByCompany(ctx, companyID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		companyUUID, parseErr := uuid.Parse(companyID)
		if parseErr != nil {
			return SettingsResponse{}, settingserrors.ErrHolidayNotFound
		}
		setting = &AppSetting{
			ID:                   uuid.New(),
			CompanyID:            companyUUID,
			HolidayPayMultiplier: paycalc.DefaultHolidayPayMultiplier,
		}
		if err := qtx.CreateSetting(ctx, setting); err != nil {
			return SettingsResponse{}, mapRepositoryError(err)
		}
	} else if err != nil {
		return SettingsResponse{}, mapRepositoryError(err)
	}

	if req.HolidayPayMultiplier != nil {
		setting.HolidayPayMultiplier = *req.HolidayPayMultiplier
		if err := qtx.UpdateSetting(ctx, setting); err != nil {
			return SettingsResponse{}, mapRepositoryError(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return SettingsResponse{}, err
	}

	s.invalidate(ctx, companyID)
	return s.Get(ctx, companyID)
}

func (s *service) AddHoliday(ctx context.Context, companyID string, req AddHolidayRequest) (HolidayResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return HolidayResponse{}, settingserrors.ErrInvalidHolidayDate
	}

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return HolidayResponse{}, settingserrors.ErrHolidayNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return HolidayResponse{}, err
	}
	defer tx.Rollback()

	holiday := &Holiday{
		ID:        uuid.New(),
		CompanyID: companyUUID,
		Date:      date,
		Name:      req.Name,
	}
	if err := s.repo.WithTx(tx).CreateHoliday(ctx, holiday); err != nil {
		return HolidayResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return HolidayResponse{}, err
	}

	s.invalidate(ctx, companyID)
	return HolidayResponse{
		ID:   holiday.ID.String(),
		Date: holiday.Date.Format("2006-01-02"),
		Name: holiday.Name,
	}, nil
}

func (s *service) DeleteHoliday(ctx context.Context, companyID, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).DeleteHoliday(ctx, companyID, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidate(ctx, companyID)
	return nil
}

func (s *service) PaySettings(ctx context.Context, companyID string) (paycalc.Settings, error) {
	resp, err := s.Get(ctx, companyID)
	if err != nil {
		return paycalc.Settings{}, err
	}

	out := paycalc.Settings{HolidayPayMultiplier: resp.HolidayPayMultiplier}
	for _, h := range resp.PublicHolidays {
		out.PublicHolidays = append(out.PublicHolidays, paycalc.Holiday{Date: h.Date, Name: h.Name})
	}
	return out, nil
}

func (s *service) invalidate(ctx context.Context, companyID string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, settingsCacheKey(companyID)).Err(); err != nil {
		s.logger.Warn("invalidate settings cache failed",
			zap.String("company_id", companyID),
			zap.Error(err),
		)
	}
}
