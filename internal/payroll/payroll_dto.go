package payroll

type GeneratePayrollRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Month      string `json:"month" binding:"required"`
}

type GetPayrollsFilterRequest struct {
	Month      string `form:"month"`
	EmployeeID string `form:"employee_id"`
}

type PayrollResponse struct {
	ID             string `json:"id"`
	CompanyID      string `json:"company_id"`
	EmployeeID     string `json:"employee_id"`
	EmployeeName   string `json:"employee_name,omitempty"`
	EmployeeNumber string `json:"employee_number,omitempty"`
	Month          string `json:"month"`
	RunNumber      int64  `json:"run_number"`

	SalaryType  string  `json:"salary_type"`
	BasicSalary float64 `json:"basic_salary"`

	TotalDaysWorked float64 `json:"total_days_worked"`
	TotalOtHours    float64 `json:"total_ot_hours"`
	TotalLunchHours float64 `json:"total_lunch_hours"`
	McDays          int     `json:"mc_days"`
	OffDays         int     `json:"off_days"`

	BasicPayTotal       float64 `json:"basic_pay_total"`
	HolidayPayTotal     float64 `json:"holiday_pay_total"`
	TotalHolidayDays    float64 `json:"total_holiday_days"`
	OtPayTotal          float64 `json:"ot_pay_total"`
	LunchAllowanceTotal float64 `json:"lunch_allowance_total"`

	TransportAllowance float64 `json:"transport_allowance"`
	OtherAllowances    float64 `json:"other_allowances"`
	HousingDeduction   float64 `json:"housing_deduction"`
	AdvanceDeduction   float64 `json:"advance_deduction"`
	Deductions         float64 `json:"deductions"`

	NetSalary   float64 `json:"net_salary"`
	GeneratedAt string  `json:"generated_at"`
}
