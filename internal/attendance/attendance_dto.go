package attendance

// UpsertAttendanceRequest carries a partial edit of one day. Nil fields
// are left untouched; the day is created lazily (defaulted Absent/zero)
// the first time any field of it is edited.
type UpsertAttendanceRequest struct {
	StartTime    *string  `json:"start_time"`
	EndTime      *string  `json:"end_time"`
	OtHours      *float64 `json:"ot_hours" binding:"omitempty,gte=0"`
	LunchHours   *float64 `json:"lunch_hours" binding:"omitempty,oneof=0 1"`
	Remarks      *string  `json:"remarks"`
	SiteLocation *string  `json:"site_location"`
}

type AttendanceResponse struct {
	ID                 string  `json:"id"`
	CompanyID          string  `json:"company_id"`
	EmployeeID         string  `json:"employee_id"`
	EmployeeName       string  `json:"employee_name,omitempty"`
	Date               string  `json:"date"`
	StartTime          string  `json:"start_time,omitempty"`
	EndTime            string  `json:"end_time,omitempty"`
	OtHours            float64 `json:"ot_hours"`
	LunchHours         float64 `json:"lunch_hours"`
	WorkDay            float64 `json:"work_day"`
	Remarks            string  `json:"remarks,omitempty"`
	Status             string  `json:"status"`
	SiteLocation       string  `json:"site_location,omitempty"`
	CalculatedDailyPay float64 `json:"calculated_daily_pay"`
}
