package education

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"rx-education-api/internal/logs"
	"rx-education-api/internal/middlewares"
)

type EducationController struct {
	EducationService EducationServicePort
	Summarizer       SummarizerPort
	LS               LogServicePort
}

func (ec *EducationController) tenant(c *gin.Context) (uint, bool) {
	pharmacyID, ok := middlewares.SessionPharmacyID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid access token"})
		return 0, false
	}
	return pharmacyID, true
}

// GET /api/education
func (ec *EducationController) List(c *gin.Context) {
	pharmacyID, ok := ec.tenant(c)
	if !ok {
		return
	}

	records, err := ec.EducationService.List(pharmacyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch education records"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": records})
}

// POST /api/education
func (ec *EducationController) Create(c *gin.Context) {
	pharmacyID, ok := ec.tenant(c)
	if !ok {
		return
	}

	var input EducationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	record, err := ec.EducationService.Create(pharmacyID, input)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create education record"})
		return
	}

	ec.logAction(c, pharmacyID, "CREATE", record, fmt.Sprintf("Created education record %q", record.Title))
	c.JSON(http.StatusCreated, gin.H{"message": "Education record created", "data": record})
}

// PUT /api/education/:id
func (ec *EducationController) Update(c *gin.Context) {
	pharmacyID, ok := ec.tenant(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid record id"})
		return
	}

	var input EducationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	record, err := ec.EducationService.Update(pharmacyID, uint(id), input)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Education record not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update education record"})
		}
		return
	}

	ec.logAction(c, pharmacyID, "UPDATE", record, fmt.Sprintf("Updated education record %q", record.Title))
	c.JSON(http.StatusOK, gin.H{"message": "Education record updated", "data": record})
}

// DELETE /api/education/:id
func (ec *EducationController) Delete(c *gin.Context) {
	pharmacyID, ok := ec.tenant(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid record id"})
		return
	}

	if err := ec.EducationService.Delete(pharmacyID, uint(id)); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Education record not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete education record"})
		return
	}

	ec.logAction(c, pharmacyID, "DELETE", nil, fmt.Sprintf("Deleted education record %d", id))
	c.JSON(http.StatusOK, gin.H{"message": "Education record deleted"})
}

// GET /api/education/export
func (ec *EducationController) Export(c *gin.Context) {
	pharmacyID, ok := ec.tenant(c)
	if !ok {
		return
	}

	records, err := ec.EducationService.List(pharmacyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch education records"})
		return
	}

	data, err := BuildExportWorkbook(records)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build export"})
		return
	}

	filename := fmt.Sprintf("education_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// POST /api/education/summary
func (ec *EducationController) Summary(c *gin.Context) {
	if _, ok := ec.tenant(c); !ok {
		return
	}

	var req SummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	draft, err := ec.Summarizer.DraftSummary(c.Request.Context(), req.Title, req.GPI)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": draft})
}

func (ec *EducationController) logAction(c *gin.Context, pharmacyID uint, action string, record *DrugEducation, message string) {
	if ec.LS == nil {
		return
	}
	entry := logs.SystemLog{
		Level:      "INFO",
		Service:    "education",
		PharmacyID: &pharmacyID,
		Action:     action,
		Message:    message,
	}
	if userID, ok := middlewares.SessionUserID(c); ok {
		entry.UserID = &userID
	}
	var payload any
	if record != nil {
		entry.GPI = &record.GPI
		payload = gin.H{"id": record.ID, "gpi": record.GPI, "title": record.Title}
	}
	_ = ec.LS.Log(entry, payload)
}
