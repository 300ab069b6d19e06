package summary

import (
	"go-timeclock/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer middleware.Enforcer) {
	summaries := r.Group("/summaries")
	summaries.Use(middleware.AuthMiddleware())
	{
		summaries.POST("/calculate", middleware.RBACAuthorize(enforcer, "summary", "calculate"), h.Calculate)
		summaries.GET("/:employeeID", middleware.RBACAuthorize(enforcer, "summary", "read"), h.GetByEmployee)
		summaries.GET("/:employeeID/:date", middleware.RBACAuthorize(enforcer, "summary", "read"), h.GetForDate)
	}

	admin := r.Group("/admin/summaries")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RBACAuthorize(enforcer, "summary", "admin"))
	{
		admin.GET("", h.AdminGetAll)
		admin.POST("/regenerate", h.AdminRegenerate)
	}
}
