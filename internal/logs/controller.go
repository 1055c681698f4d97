package logs

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rx-education-api/internal/middlewares"
)

type LogController struct {
	LogService *LogService
}

// GetLogs lists the action log for the caller's own pharmacy. The tenant
// filter comes from the session, whatever the query string says.
func (lc *LogController) GetLogs(c *gin.Context) {
	var input LogFilterInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pharmacyID, ok := middlewares.SessionPharmacyID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing session"})
		return
	}
	input.PharmacyID = &pharmacyID

	rows, total, totalPages, err := lc.LogService.GetLogs(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":        rows,
		"page":        input.Page,
		"page_size":   input.PageSize,
		"total":       total,
		"total_pages": totalPages,
	})
}
