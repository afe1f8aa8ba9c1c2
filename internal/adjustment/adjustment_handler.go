package adjustment

import (
	"net/http"

	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/shared/apperror"
	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Upsert(c *gin.Context) {
	companyID := c.GetString("company_id")
	employeeID := c.Param("employee_id")
	month := c.Param("month")

	var req UpsertAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, http.StatusBadRequest, mapped.Code, mapped.Message, err.Error())
		return
	}

	resp, err := h.service.Upsert(c.Request.Context(), companyID, employeeID, month, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByEmployeeMonth(c *gin.Context) {
	companyID := c.GetString("company_id")
	employeeID := c.Param("employee_id")
	month := c.Param("month")

	resp, err := h.service.GetByEmployeeMonth(c.Request.Context(), companyID, employeeID, month)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
