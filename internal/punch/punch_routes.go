package punch

import (
	"go-timeclock/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer middleware.Enforcer, rdb *redis.Client) {
	punches := r.Group("/punches")
	punches.Use(middleware.AuthMiddleware())
	{
		punches.POST("",
			middleware.RBACAuthorize(enforcer, "punch", "create"),
			middleware.Idempotency(rdb),
			h.Record,
		)
		punches.GET("", middleware.RBACAuthorize(enforcer, "punch", "read"), h.ListMine)
	}

	admin := r.Group("/admin/punches")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RBACAuthorize(enforcer, "punch", "admin"))
	{
		admin.GET("", h.AdminList)
		admin.PUT("/:id", h.AdminUpdate)
		admin.DELETE("/:id", h.AdminDelete)
	}
}
