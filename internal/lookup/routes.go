package lookup

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the public lookup endpoint. No session middleware:
// patients hit this from a QR code on the bag label.
func RegisterRoutes(r *gin.Engine, lookupService LookupServiceAPI) {
	lookupController := &LookupController{Service: lookupService}

	r.GET("/api/public-education", lookupController.GetPublicEducation)
}
