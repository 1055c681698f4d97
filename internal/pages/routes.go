package pages

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rx-education-api/config"
	"rx-education-api/internal/auth"
	"rx-education-api/internal/education"
	"rx-education-api/internal/lookup"
	"rx-education-api/internal/middlewares"
)

func RegisterRoutes(r *gin.Engine, cfg config.Config, authService auth.AuthServicePort, educationService education.EducationServicePort, lookupService lookup.LookupServiceAPI) {
	r.SetHTMLTemplate(Templates())

	controller := &PageController{
		Cfg:              cfg,
		AuthService:      authService,
		EducationService: educationService,
		LookupService:    lookupService,
	}

	r.GET("/static/app.css", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/css; charset=utf-8", appCSS)
	})

	r.GET("/", controller.Home)
	r.GET("/login", controller.LoginForm)
	r.POST("/login", controller.LoginSubmit)
	r.GET("/p/:slug/:gpi", controller.PatientPage)

	dashboard := r.Group("/dashboard")
	dashboard.Use(middlewares.RequireSessionPage())
	{
		dashboard.GET("", controller.Dashboard)
		dashboard.POST("/create", controller.CreateSubmit)
		dashboard.POST("/:id/update", controller.UpdateSubmit)
		dashboard.POST("/:id/delete", controller.DeleteSubmit)
		dashboard.POST("/logout", controller.Logout)
	}
}
