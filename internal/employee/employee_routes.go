package employee

import (
	"go-timeclock/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer middleware.Enforcer) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("", middleware.RBACAuthorize(enforcer, "employee", "read"), h.GetAll)
		employees.GET("/:id", middleware.RBACAuthorize(enforcer, "employee", "read"), h.GetByID)
		employees.POST("", middleware.RBACAuthorize(enforcer, "employee", "write"), h.Create)
		employees.PUT("/:id", middleware.RBACAuthorize(enforcer, "employee", "write"), h.Update)
		employees.PUT("/:id/schedule", middleware.RBACAuthorize(enforcer, "employee", "write"), h.UpdateSchedule)
		employees.DELETE("/:id", middleware.RBACAuthorize(enforcer, "employee", "write"), h.Delete)
	}
}
