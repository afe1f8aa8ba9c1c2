package settings

import (
	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	group := r.Group("/settings")
	group.Use(middleware.AuthMiddleware())
	{
		group.GET("", handler.Get)
		group.PUT("", middleware.RoleMiddleware("admin"), handler.Update)
		group.POST("/holidays", middleware.RoleMiddleware("admin", "hr"), handler.AddHoliday)
		group.DELETE("/holidays/:id", middleware.RoleMiddleware("admin", "hr"), handler.DeleteHoliday)
	}
}
