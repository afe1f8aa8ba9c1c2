package attendance

import (
	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	attendances := r.Group("/attendances")
	attendances.Use(middleware.AuthMiddleware())
	{
		attendances.PUT("/:employee_id/:date", middleware.RoleMiddleware("admin", "hr"), handler.Upsert)
		attendances.GET("/sheet", handler.GetSheet)
		attendances.GET("/:employee_id/month/:month", handler.GetMonth)
		attendances.DELETE("/employee/:employee_id", middleware.RoleMiddleware("admin"), handler.DeleteByEmployee)
	}
}
