package education

import (
	"github.com/gin-gonic/gin"

	"rx-education-api/internal/middlewares"
)

func RegisterRoutes(r *gin.Engine, educationService EducationServicePort, summarizer SummarizerPort, logService LogServicePort) {
	controller := &EducationController{
		EducationService: educationService,
		Summarizer:       summarizer,
		LS:               logService,
	}

	group := r.Group("/api/education")
	group.Use(middlewares.AuthMiddleware())
	{
		group.GET("", controller.List)
		group.POST("", controller.Create)
		group.PUT("/:id", controller.Update)
		group.DELETE("/:id", controller.Delete)
		group.GET("/export", controller.Export)
		group.POST("/summary", controller.Summary)
	}
}
