package employee

type CreateEmployeeRequest struct {
	FullName    string  `json:"full_name" binding:"required"`
	Fin         string  `json:"fin" binding:"required"`
	Position    string  `json:"position"`
	SalaryType  string  `json:"salary_type" binding:"required,oneof=Daily Monthly"`
	BasicSalary float64 `json:"basic_salary" binding:"required,gt=0"`
	JoinDate    string  `json:"join_date" binding:"required"`
}

type UpdateEmployeeRequest struct {
	FullName    string  `json:"full_name" binding:"required"`
	Position    string  `json:"position"`
	SalaryType  string  `json:"salary_type" binding:"required,oneof=Daily Monthly"`
	BasicSalary float64 `json:"basic_salary" binding:"required,gt=0"`
	Status      string  `json:"status" binding:"required,oneof=Active Cancelled"`
}

type EmployeeResponse struct {
	ID               string  `json:"id"`
	CompanyID        string  `json:"company_id"`
	EmployeeNumber   string  `json:"employee_number"`
	FullName         string  `json:"full_name"`
	Fin              string  `json:"fin"`
	Position         string  `json:"position,omitempty"`
	SalaryType       string  `json:"salary_type"`
	BasicSalary      float64 `json:"basic_salary"`
	JoinDate         string  `json:"join_date"`
	Status           string  `json:"status"`
	CancellationDate *string `json:"cancellation_date,omitempty"`
}
