package adjustment

import (
	"time"

	"github.com/google/uuid"
)

// Adjustment holds the manual pay inputs for one employee and one month.
// Transport and Other add to the net salary, Housing and Advance deduct
// from it. ImageRef is an opaque pointer to an uploaded supporting scan.
type Adjustment struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID  uuid.UUID `gorm:"column:company_id;type:uuid;not null;index;uniqueIndex:uq_adjustment_month"`
	EmployeeID uuid.UUID `gorm:"column:employee_id;type:uuid;not null;index;uniqueIndex:uq_adjustment_month"`
	Month      string    `gorm:"column:month;type:varchar(7);not null;uniqueIndex:uq_adjustment_month"`

	Transport float64 `gorm:"column:transport;type:numeric(12,2);not null;default:0"`
	Other     float64 `gorm:"column:other;type:numeric(12,2);not null;default:0"`
	Housing   float64 `gorm:"column:housing;type:numeric(12,2);not null;default:0"`
	Advance   float64 `gorm:"column:advance;type:numeric(12,2);not null;default:0"`

	ImageRef string `gorm:"column:image_ref;type:varchar(255);not null;default:''"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Adjustment) TableName() string {
	return "payroll_adjustments"
}
