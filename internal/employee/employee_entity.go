package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusActive    = "Active"
	StatusCancelled = "Cancelled"
)

type Employee struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID      uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeNumber string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_employee_number"`
	FullName       string    `gorm:"type:varchar(120);not null"`
	Fin            string    `gorm:"column:fin;type:varchar(20);not null;uniqueIndex:uq_employee_fin"`
	Position       string    `gorm:"type:varchar(80)"`

	// SalaryType decides whether BasicSalary is a per-day rate (Daily)
	// or a monthly total (Monthly).
	SalaryType  string  `gorm:"type:varchar(10);not null;default:'Daily'"`
	BasicSalary float64 `gorm:"type:numeric(12,2);not null;default:0"`

	JoinDate         time.Time  `gorm:"type:date;not null"`
	Status           string     `gorm:"type:varchar(20);not null;default:'Active';index"`
	CancellationDate *time.Time `gorm:"type:date"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}
