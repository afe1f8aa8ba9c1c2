package settings

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	settingserrors "github.com/Saron-Raj/HRMS-sytem-Singapore/internal/settings/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	findByCompanyFn func(ctx context.Context, companyID string) (*AppSetting, error)
	createSettingFn func(ctx context.Context, setting *AppSetting) error
	updateSettingFn func(ctx context.Context, setting *AppSetting) error
	listHolidaysFn  func(ctx context.Context, companyID string) ([]Holiday, error)
	createHolidayFn func(ctx context.Context, holiday *Holiday) error
	deleteHolidayFn func(ctx context.Context, companyID, id string) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f }

func (f *fakeRepo) FindByCompany(ctx context.Context, companyID string) (*AppSetting, error) {
	return f.findByCompanyFn(ctx, companyID)
}
func (f *fakeRepo) CreateSetting(ctx context.Context, setting *AppSetting) error {
	return f.createSettingFn(ctx, setting)
}
func (f *fakeRepo) UpdateSetting(ctx context.Context, setting *AppSetting) error {
	return f.updateSettingFn(ctx, setting)
}
func (f *fakeRepo) ListHolidays(ctx context.Context, companyID string) ([]Holiday, error) {
	return f.listHolidaysFn(ctx, companyID)
}
func (f *fakeRepo) CreateHoliday(ctx context.Context, holiday *Holiday) error {
	return f.createHolidayFn(ctx, holiday)
}
func (f *fakeRepo) DeleteHoliday(ctx context.Context, companyID, id string) error {
	return f.deleteHolidayFn(ctx, companyID, id)
}

func TestService_Get_DefaultsWhenNoRow(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	companyID := uuid.New().String()

	repo := &fakeRepo{}
	repo.findByCompanyFn = func(ctx context.Context, companyID string) (*AppSetting, error) {
		return nil, gorm.ErrRecordNotFound
	}
	repo.listHolidaysFn = func(ctx context.Context, companyID string) ([]Holiday, error) {
		return nil, nil
	}

	svc := NewService(db, repo, nil)

	resp, err := svc.Get(context.Background(), companyID)
	assert.NoError(t, err)
	assert.Equal(t, 1.5, resp.HolidayPayMultiplier)
	assert.Empty(t, resp.PublicHolidays)
}

func TestService_Get_ServesFromCache(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	companyID := uuid.New().String()

	cached := SettingsResponse{
		CompanyID:            companyID,
		HolidayPayMultiplier: 2.0,
		PublicHolidays: []HolidayResponse{
			{ID: uuid.New().String(), Date: "2024-08-09", Name: "National Day"},
		},
	}
	payload, err := json.Marshal(cached)
	assert.NoError(t, err)

	rdb, redisMock := redismock.NewClientMock()
	redisMock.ExpectGet(settingsCacheKey(companyID)).SetVal(string(payload))

	// A repo hit here means the cache was bypassed.
	repo := &fakeRepo{}
	repo.findByCompanyFn = func(ctx context.Context, companyID string) (*AppSetting, error) {
		t.Fatal("unexpected database read")
		return nil, nil
	}

	svc := NewService(db, repo, rdb)

	resp, err := svc.Get(context.Background(), companyID)
	assert.NoError(t, err)
	assert.Equal(t, 2.0, resp.HolidayPayMultiplier)
	assert.Len(t, resp.PublicHolidays, 1)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestService_Update_InvalidatesCache(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	companyID := uuid.New()

	stored := &AppSetting{
		ID:                   uuid.New(),
		CompanyID:            companyID,
		HolidayPayMultiplier: 1.5,
	}

	repo := &fakeRepo{}
	repo.findByCompanyFn = func(ctx context.Context, companyID string) (*AppSetting, error) {
		s := *stored
		return &s, nil
	}
	repo.updateSettingFn = func(ctx context.Context, setting *AppSetting) error {
		stored = setting
		return nil
	}
	repo.listHolidaysFn = func(ctx context.Context, companyID string) ([]Holiday, error) {
		return nil, nil
	}

	rdb, redisMock := redismock.NewClientMock()
	redisMock.ExpectDel(settingsCacheKey(companyID.String())).SetVal(1)
	redisMock.ExpectGet(settingsCacheKey(companyID.String())).RedisNil()
	redisMock.Regexp().ExpectSet(settingsCacheKey(companyID.String()), `.*`, 5*time.Minute).SetVal("OK")

	svc := NewService(db, repo, rdb)

	mock.ExpectBegin()
	mock.ExpectCommit()

	m := 2.0
	resp, err := svc.Update(context.Background(), companyID.String(), UpdateSettingsRequest{HolidayPayMultiplier: &m})
	assert.NoError(t, err)
	assert.Equal(t, 2.0, resp.HolidayPayMultiplier)
	assert.Equal(t, 2.0, stored.HolidayPayMultiplier)
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestService_AddHoliday_RejectsMalformedDate(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{}, nil)

	_, err := svc.AddHoliday(context.Background(), uuid.New().String(), AddHolidayRequest{
		Date: "9 Aug 2024",
		Name: "National Day",
	})
	assert.True(t, errors.Is(err, settingserrors.ErrInvalidHolidayDate))
}

func TestService_PaySettings_MapsHolidayCalendar(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	companyID := uuid.New()

	repo := &fakeRepo{}
	repo.findByCompanyFn = func(ctx context.Context, companyID string) (*AppSetting, error) {
		return &AppSetting{ID: uuid.New(), CompanyID: uuid.MustParse(companyID), HolidayPayMultiplier: 2.0}, nil
	}
	repo.listHolidaysFn = func(ctx context.Context, companyID string) ([]Holiday, error) {
		return []Holiday{
			{ID: uuid.New(), Date: time.Date(2024, 8, 9, 0, 0, 0, 0, time.UTC), Name: "National Day"},
		}, nil
	}

	svc := NewService(db, repo, nil)

	settings, err := svc.PaySettings(context.Background(), companyID.String())
	assert.NoError(t, err)
	assert.Equal(t, 2.0, settings.HolidayPayMultiplier)
	assert.Len(t, settings.PublicHolidays, 1)
	assert.Equal(t, "2024-08-09", settings.PublicHolidays[0].Date)
}
