package auth

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"rx-education-api/internal/logs"
)

type mockAuthService struct {
	CreateUserFn  func(user Pharmacist) (*Pharmacist, error)
	GetUserFn     func(email string) (*Pharmacist, error)
	GetUserByIDFn func(id uint) (*Pharmacist, error)
}

func (m *mockAuthService) CreateUser(user Pharmacist) (*Pharmacist, error) {
	if m.CreateUserFn == nil {
		return nil, assertErr("CreateUser not implemented")
	}
	return m.CreateUserFn(user)
}

func (m *mockAuthService) GetUser(email string) (*Pharmacist, error) {
	if m.GetUserFn == nil {
		return nil, assertErr("GetUser not implemented")
	}
	return m.GetUserFn(email)
}

func (m *mockAuthService) GetUserByID(id uint) (*Pharmacist, error) {
	if m.GetUserByIDFn == nil {
		return nil, assertErr("GetUserByID not implemented")
	}
	return m.GetUserByIDFn(id)
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

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Unique in-memory DB per test to avoid cross-test contamination
	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(&Pharmacist{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	return db
}

func setupAuthRouter(ac *AuthController) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.POST("/login", ac.Login)
	r.POST("/logout", ac.Logout)
	r.GET("/me", ac.Me)
	r.POST("/refresh", ac.Refresh)

	return r
}

func postJSON(r http.Handler, path string, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func doReq(r http.Handler, method, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	r.ServeHTTP(w, req)
	return w
}

func requireContains(t *testing.T, s, sub string) {
	t.Helper()
	if !strings.Contains(s, sub) {
		t.Fatalf("expected %q to contain %q", s, sub)
	}
}

func hashPassword(t *testing.T, plain string) string {
	t.Helper()
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(b)
}

func cookieValue(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}
