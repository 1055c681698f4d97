package logs

import (
	"github.com/gin-gonic/gin"

	"rx-education-api/internal/middlewares"
)

func RegisterRoutes(r *gin.Engine, logService *LogService) {
	logController := &LogController{LogService: logService}

	group := r.Group("/api/logs")
	group.Use(middlewares.AuthMiddleware())
	{
		group.GET("", logController.GetLogs)
	}
}
