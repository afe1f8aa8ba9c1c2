package attendance

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Attendance is one day of one employee. StartTime/EndTime are local
// "HH:mm" strings, empty when the punch is missing. Status, WorkDay and
// OtHours are denormalized resolver output and are never set directly by
// a caller.
type Attendance struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID      uuid.UUID `gorm:"column:company_id;type:uuid;not null;index;uniqueIndex:uq_attendance_day"`
	EmployeeID     uuid.UUID `gorm:"column:employee_id;type:uuid;not null;index;uniqueIndex:uq_attendance_day"`
	AttendanceDate time.Time `gorm:"column:attendance_date;type:date;not null;index;uniqueIndex:uq_attendance_day"`

	StartTime  string  `gorm:"column:start_time;type:varchar(5);not null;default:''"`
	EndTime    string  `gorm:"column:end_time;type:varchar(5);not null;default:''"`
	OtHours    float64 `gorm:"column:ot_hours;type:numeric(6,2);not null;default:0"`
	LunchHours float64 `gorm:"column:lunch_hours;type:numeric(4,2);not null;default:0"`
	WorkDay    float64 `gorm:"column:work_day;type:numeric(4,2);not null;default:0"`
	Remarks    string  `gorm:"column:remarks;type:varchar(40);not null;default:''"`
	Status     string  `gorm:"column:status;type:varchar(10);not null;default:'Absent'"`

	SiteLocation       string  `gorm:"column:site_location;type:varchar(120);not null;default:''"`
	CalculatedDailyPay float64 `gorm:"column:calculated_daily_pay;type:numeric(12,2);not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`

	Employee *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Attendance) TableName() string {
	return "attendances"
}

type EmployeeRef struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string    `gorm:"column:full_name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
