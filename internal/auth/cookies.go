package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"rx-education-api/config"
)

const (
	AccessCookie  = "access_token"
	RefreshCookie = "refresh_token"

	accessTokenTTL = 15 * time.Minute
)

// IssueSessionCookies mints the access/refresh token pair and attaches both
// as HttpOnly cookies. The pharmacy id is resolved from the stored pharmacist
// row here, at sign-in, and never from anything the client sends later.
func IssueSessionCookies(c *gin.Context, cfg config.Config, user *Pharmacist, rememberMe bool) error {
	accessExp := time.Now().Add(accessTokenTTL)
	access := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":     user.ID,
		"pharmacy_id": user.PharmacyID,
		"exp":         accessExp.Unix(),
	})
	accessString, err := access.SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		return err
	}

	refreshDuration := 24 * time.Hour
	if rememberMe {
		refreshDuration = 30 * 24 * time.Hour
	}
	refreshExp := time.Now().Add(refreshDuration)
	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":     user.ID,
		"pharmacy_id": user.PharmacyID,
		"exp":         refreshExp.Unix(),
	})
	refreshString, err := refresh.SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		return err
	}

	// Lax is enough here: the dashboard is served first-party by this server.
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     AccessCookie,
		Value:    accessString,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     RefreshCookie,
		Value:    refreshString,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// ClearSessionCookies expires both session cookies.
func ClearSessionCookies(c *gin.Context) {
	for _, name := range []string{AccessCookie, RefreshCookie} {
		http.SetCookie(c.Writer, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			Secure:   true,
			SameSite: http.SameSiteLaxMode,
			MaxAge:   -1,
		})
	}
}
