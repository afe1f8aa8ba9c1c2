package paycalc

type SalaryType string

const (
	SalaryTypeDaily   SalaryType = "Daily"
	SalaryTypeMonthly SalaryType = "Monthly"
)

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusLeave   Status = "Leave"
	StatusMC      Status = "MC"
)

const (
	// Remark sentinels. Anything else, including empty, is a normal working day.
	RemarkMC  = "MC"
	RemarkOff = "OFF"
)

// Employee is the subset of the employee record the engine reads.
// BasicSalary is a per-day rate for Daily employees and a monthly total
// for Monthly employees.
type Employee struct {
	SalaryType  SalaryType
	BasicSalary float64
}

// DayRecord is one attendance day as the engine sees it. StartTime and
// EndTime are local "HH:mm" strings and may be empty.
type DayRecord struct {
	Date       string // YYYY-MM-DD
	StartTime  string
	EndTime    string
	OtHours    float64
	LunchHours float64
	WorkDay    float64
	Remarks    string
	Status     Status
}

// Adjustments are the month-scoped manual allowances and deductions.
// The zero value means "no adjustments".
type Adjustments struct {
	Transport float64
	Other     float64
	Housing   float64
	Advance   float64
}

type Holiday struct {
	Date string // YYYY-MM-DD
	Name string
}

// Settings carries the pay-relevant application settings. A zero
// HolidayPayMultiplier is substituted with 1.5 and a nil holiday list is
// treated as empty.
type Settings struct {
	HolidayPayMultiplier float64
	PublicHolidays       []Holiday
}

// PayrollRecord is the computed payroll for one employee and month. It is
// a pure derived value and can always be recomputed from its inputs.
type PayrollRecord struct {
	Month string

	TotalDaysWorked float64
	TotalOtHours    float64
	TotalLunchHours float64
	McDays          int
	OffDays         int

	BasicPayTotal       float64
	HolidayPayTotal     float64
	TotalHolidayDays    float64
	OtPayTotal          float64
	LunchAllowanceTotal float64

	TransportAllowance float64
	OtherAllowances    float64
	HousingDeduction   float64
	AdvanceDeduction   float64
	Deductions         float64

	NetSalary float64
}
