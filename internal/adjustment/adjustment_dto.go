package adjustment

type UpsertAdjustmentRequest struct {
	Transport *float64 `json:"transport" binding:"omitempty,gte=0"`
	Other     *float64 `json:"other" binding:"omitempty,gte=0"`
	Housing   *float64 `json:"housing" binding:"omitempty,gte=0"`
	Advance   *float64 `json:"advance" binding:"omitempty,gte=0"`
	ImageRef  *string  `json:"image_ref"`
}

type AdjustmentResponse struct {
	ID         string  `json:"id,omitempty"`
	CompanyID  string  `json:"company_id"`
	EmployeeID string  `json:"employee_id"`
	Month      string  `json:"month"`
	Transport  float64 `json:"transport"`
	Other      float64 `json:"other"`
	Housing    float64 `json:"housing"`
	Advance    float64 `json:"advance"`
	ImageRef   string  `json:"image_ref,omitempty"`
}
