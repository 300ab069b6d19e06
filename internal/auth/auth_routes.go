package auth

import (
	"go-timeclock/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer middleware.Enforcer) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimitByIP(0.08, 5), h.Login)
		auth.POST("/refresh", h.RefreshToken)
		auth.GET("/me", middleware.AuthMiddleware(), middleware.RateLimitByUser(2, 5), h.Me)
		auth.POST("/logout", middleware.AuthMiddleware(), h.Logout)
		auth.POST("/password",
			middleware.AuthMiddleware(),
			middleware.RBACAuthorize(enforcer, "password", "change"),
			h.ChangePassword,
		)
	}
}
