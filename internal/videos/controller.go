package videos

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rx-education-api/internal/middlewares"
)

type VideoController struct {
	VideoService VideoServicePort
}

func (vc *VideoController) tenant(c *gin.Context) (uint, bool) {
	pharmacyID, ok := middlewares.SessionPharmacyID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid access token"})
		return 0, false
	}
	return pharmacyID, true
}

// POST /api/videos
func (vc *VideoController) Upload(c *gin.Context) {
	pharmacyID, ok := vc.tenant(c)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
		return
	}

	video, err := vc.VideoService.Upload(c.Request.Context(), pharmacyID, file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Video uploaded", "data": video})
}

// GET /api/videos
func (vc *VideoController) List(c *gin.Context) {
	pharmacyID, ok := vc.tenant(c)
	if !ok {
		return
	}

	videos, err := vc.VideoService.List(c.Request.Context(), pharmacyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": videos})
}

// DELETE /api/videos/:name
func (vc *VideoController) Delete(c *gin.Context) {
	pharmacyID, ok := vc.tenant(c)
	if !ok {
		return
	}

	name := c.Param("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "video name is required"})
		return
	}

	if err := vc.VideoService.Delete(c.Request.Context(), pharmacyID, name); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Video deleted"})
}
