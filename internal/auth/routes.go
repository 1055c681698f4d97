package auth

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, authService AuthServicePort, logService LogServicePort) {
	authController := &AuthController{AuthService: authService, LS: logService}

	group := r.Group("/api/auth")
	{
		group.POST("/login", authController.Login)
		group.POST("/logout", authController.Logout)
		group.POST("/refresh", authController.Refresh)
		group.GET("/me", authController.Me)
	}
}
