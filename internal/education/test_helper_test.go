package education

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"rx-education-api/internal/logs"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Unique in-memory DB per test to avoid cross-test contamination
	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(&Pharmacy{}, &DrugEducation{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	return db
}

type mockEducationService struct {
	ListFn   func(pharmacyID uint) ([]DrugEducation, error)
	GetFn    func(pharmacyID, id uint) (*DrugEducation, error)
	CreateFn func(pharmacyID uint, input EducationInput) (*DrugEducation, error)
	UpdateFn func(pharmacyID, id uint, input EducationInput) (*DrugEducation, error)
	DeleteFn func(pharmacyID, id uint) error
}

func (m *mockEducationService) List(pharmacyID uint) ([]DrugEducation, error) {
	if m.ListFn == nil {
		return nil, assertErr("List not implemented")
	}
	return m.ListFn(pharmacyID)
}

func (m *mockEducationService) Get(pharmacyID, id uint) (*DrugEducation, error) {
	if m.GetFn == nil {
		return nil, assertErr("Get not implemented")
	}
	return m.GetFn(pharmacyID, id)
}

func (m *mockEducationService) Create(pharmacyID uint, input EducationInput) (*DrugEducation, error) {
	if m.CreateFn == nil {
		return nil, assertErr("Create not implemented")
	}
	return m.CreateFn(pharmacyID, input)
}

func (m *mockEducationService) Update(pharmacyID, id uint, input EducationInput) (*DrugEducation, error) {
	if m.UpdateFn == nil {
		return nil, assertErr("Update not implemented")
	}
	return m.UpdateFn(pharmacyID, id, input)
}

func (m *mockEducationService) Delete(pharmacyID, id uint) error {
	if m.DeleteFn == nil {
		return assertErr("Delete not implemented")
	}
	return m.DeleteFn(pharmacyID, id)
}

type mockSummarizer struct {
	DraftSummaryFn func(ctx context.Context, title, gpi string) (string, error)
}

func (m *mockSummarizer) DraftSummary(ctx context.Context, title, gpi string) (string, error) {
	if m.DraftSummaryFn == nil {
		return "", assertErr("DraftSummary not implemented")
	}
	return m.DraftSummaryFn(ctx, title, gpi)
}

type mockLogService struct {
	LogFn func(entry logs.SystemLog, payload any) error
}

func (m *mockLogService) Log(entry logs.SystemLog, payload any) error {
	if m.LogFn == nil {
		return nil
	}
	return m.LogFn(entry, payload)
}

type assertErr string

func (e assertErr) Error() string { return string(e) }

// setupEducationRouter wires the controller behind a stand-in session guard
// that trusts the X-PharmacyID / X-UserID headers.
func setupEducationRouter(ec *EducationController) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.Use(func(c *gin.Context) {
		if v := c.GetHeader("X-PharmacyID"); v != "" {
			if id, err := strconv.ParseUint(v, 10, 32); err == nil {
				c.Set("pharmacyID", uint(id))
			}
		}
		if v := c.GetHeader("X-UserID"); v != "" {
			if id, err := strconv.ParseUint(v, 10, 32); err == nil {
				c.Set("userID", uint(id))
			}
		}
		c.Next()
	})

	r.GET("/api/education", ec.List)
	r.POST("/api/education", ec.Create)
	r.PUT("/api/education/:id", ec.Update)
	r.DELETE("/api/education/:id", ec.Delete)
	r.GET("/api/education/export", ec.Export)
	r.POST("/api/education/summary", ec.Summary)

	return r
}

func doJSON(r http.Handler, method, path string, body []byte, pharmacyID string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if pharmacyID != "" {
		req.Header.Set("X-PharmacyID", pharmacyID)
	}
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, b []byte, out any) {
	t.Helper()
	if err := json.Unmarshal(b, out); err != nil {
		t.Fatalf("json unmarshal: %v body=%s", err, string(b))
	}
}

func strPtr(s string) *string { return &s }
