package settings

type UpdateSettingsRequest struct {
	HolidayPayMultiplier *float64 `json:"holiday_pay_multiplier" binding:"omitempty,gt=0"`
}

type AddHolidayRequest struct {
	Date string `json:"date" binding:"required"`
	Name string `json:"name" binding:"required"`
}

type HolidayResponse struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Name string `json:"name"`
}

type SettingsResponse struct {
	CompanyID            string            `json:"company_id"`
	HolidayPayMultiplier float64           `json:"holiday_pay_multiplier"`
	PublicHolidays       []HolidayResponse `json:"public_holidays"`
}
