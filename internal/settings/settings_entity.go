package settings

import (
	"time"

	"github.com/google/uuid"
)

// AppSetting is a one-row-per-company knob set. The row is created
// lazily with defaults the first time the company reads or writes it.
type AppSetting struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID `gorm:"column:company_id;type:uuid;not null;uniqueIndex:uq_app_setting_company"`

	HolidayPayMultiplier float64 `gorm:"column:holiday_pay_multiplier;type:numeric(4,2);not null;default:1.5"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (AppSetting) TableName() string {
	return "app_settings"
}

// Holiday is one public-holiday calendar entry.
type Holiday struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID `gorm:"column:company_id;type:uuid;not null;index;uniqueIndex:uq_holiday_date"`
	Date      time.Time `gorm:"column:date;type:date;not null;uniqueIndex:uq_holiday_date"`
	Name      string    `gorm:"column:name;type:varchar(120);not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Holiday) TableName() string {
	return "public_holidays"
}
