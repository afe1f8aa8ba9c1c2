package employee

import (
	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.POST("", middleware.RoleMiddleware("admin", "hr"), handler.Create)
		employees.GET("", handler.GetAll)
		employees.GET("/:id", handler.GetById)
		employees.PUT("/:id", middleware.RoleMiddleware("admin", "hr"), handler.Update)
		employees.DELETE("/:id", middleware.RoleMiddleware("admin"), handler.Delete)
	}
}
