package lookup

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type LookupController struct {
	Service LookupServiceAPI
}

// GetPublicEducation serves the unauthenticated patient lookup. Every
// response carries Cache-Control: no-store so shared caches never hold
// clinical content.
func (lc *LookupController) GetPublicEducation(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	slug := strings.TrimSpace(c.Query("slug"))
	gpi := strings.TrimSpace(c.Query("gpi"))
	if slug == "" || gpi == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing slug or gpi"})
		return
	}

	record, err := lc.Service.FindBySlugAndGPI(slug, gpi)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, record)
}
