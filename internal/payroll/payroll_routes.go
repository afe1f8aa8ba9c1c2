package payroll

import (
	"github.com/Saron-Raj/HRMS-sytem-Singapore/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb ...*redis.Client) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	payrolls := r.Group("/payrolls")
	payrolls.Use(middleware.AuthMiddleware())
	{
		payrolls.GET("", handler.GetAll)
		payrolls.GET("/:id", handler.GetById)
		payrolls.GET("/:id/payslip/download", handler.DownloadPayslip)
		payrolls.GET("/employee/:employee_id/month/:month", handler.GetByEmployeeMonth)
		if redisClient != nil {
			payrolls.POST(
				"/generate",
				middleware.Idempotency(redisClient),
				middleware.RoleMiddleware("admin", "hr"),
				handler.Generate,
			)
		} else {
			payrolls.POST("/generate", middleware.RoleMiddleware("admin", "hr"), handler.Generate)
		}
		payrolls.DELETE("/:id", middleware.RoleMiddleware("admin"), handler.Delete)
	}
}
