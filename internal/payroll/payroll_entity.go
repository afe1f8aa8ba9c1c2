package payroll

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payroll is the stored snapshot of one employee's computed month. It is
// derived data: regenerating from the same attendance, adjustments and
// settings overwrites the row in place, keyed by uq_payroll_month.
type Payroll struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID  uuid.UUID `gorm:"column:company_id;type:uuid;not null;index;uniqueIndex:uq_payroll_month"`
	EmployeeID uuid.UUID `gorm:"column:employee_id;type:uuid;not null;index;uniqueIndex:uq_payroll_month"`
	Month      string    `gorm:"column:month;type:varchar(7);not null;index;uniqueIndex:uq_payroll_month"`

	RunNumber int64 `gorm:"column:run_number;type:bigint;not null;default:0"`

	SalaryType  string  `gorm:"column:salary_type;type:varchar(10);not null"`
	BasicSalary float64 `gorm:"column:basic_salary;type:numeric(12,2);not null;default:0"`

	TotalDaysWorked float64 `gorm:"column:total_days_worked;type:numeric(6,2);not null;default:0"`
	TotalOtHours    float64 `gorm:"column:total_ot_hours;type:numeric(8,2);not null;default:0"`
	TotalLunchHours float64 `gorm:"column:total_lunch_hours;type:numeric(8,2);not null;default:0"`
	McDays          int     `gorm:"column:mc_days;type:int;not null;default:0"`
	OffDays         int     `gorm:"column:off_days;type:int;not null;default:0"`

	BasicPayTotal       float64 `gorm:"column:basic_pay_total;type:numeric(12,2);not null;default:0"`
	HolidayPayTotal     float64 `gorm:"column:holiday_pay_total;type:numeric(12,2);not null;default:0"`
	TotalHolidayDays    float64 `gorm:"column:total_holiday_days;type:numeric(6,2);not null;default:0"`
	OtPayTotal          float64 `gorm:"column:ot_pay_total;type:numeric(12,2);not null;default:0"`
	LunchAllowanceTotal float64 `gorm:"column:lunch_allowance_total;type:numeric(12,2);not null;default:0"`

	TransportAllowance float64 `gorm:"column:transport_allowance;type:numeric(12,2);not null;default:0"`
	OtherAllowances    float64 `gorm:"column:other_allowances;type:numeric(12,2);not null;default:0"`
	HousingDeduction   float64 `gorm:"column:housing_deduction;type:numeric(12,2);not null;default:0"`
	AdvanceDeduction   float64 `gorm:"column:advance_deduction;type:numeric(12,2);not null;default:0"`
	Deductions         float64 `gorm:"column:deductions;type:numeric(12,2);not null;default:0"`

	NetSalary float64 `gorm:"column:net_salary;type:numeric(12,2);not null;default:0"`

	GeneratedAt time.Time `gorm:"column:generated_at;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at;index"`

	Employee *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Payroll) TableName() string {
	return "payrolls"
}

type EmployeeRef struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeNumber string    `gorm:"column:employee_number"`
	FullName       string    `gorm:"column:full_name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
