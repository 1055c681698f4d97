package videos

import (
	"github.com/gin-gonic/gin"

	"rx-education-api/internal/middlewares"
)

func RegisterRoutes(r *gin.Engine, videoService VideoServicePort) {
	controller := &VideoController{VideoService: videoService}

	group := r.Group("/api/videos")
	group.Use(middlewares.AuthMiddleware())
	{
		group.GET("", controller.List)
		group.POST("/upload", controller.Upload)
		group.DELETE("/:name", controller.Delete)
	}
}
