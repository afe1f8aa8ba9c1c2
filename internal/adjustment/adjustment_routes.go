package adjustment

import (
	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	adjustments := r.Group("/adjustments")
	adjustments.Use(middleware.AuthMiddleware())
	{
		adjustments.PUT("/:employee_id/:month", middleware.RoleMiddleware("admin", "hr"), handler.Upsert)
		adjustments.GET("/:employee_id/:month", handler.GetByEmployeeMonth)
	}
}
