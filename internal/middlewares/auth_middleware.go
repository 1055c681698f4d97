package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"rx-education-api/config"
)

const (
	userIDKey     = "userID"
	pharmacyIDKey = "pharmacyID"
)

// AuthMiddleware guards JSON API routes. It validates the access-token
// cookie and loads the session identity into the request context. The
// pharmacy id carried in the token is the tenant for every downstream call.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, pharmacyID, ok := sessionFromCookie(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid access token"})
			c.Abort()
			return
		}

		c.Set(userIDKey, userID)
		c.Set(pharmacyIDKey, pharmacyID)
		c.Next()
	}
}

// RequireSessionPage guards HTML surfaces: same check as AuthMiddleware, but
// an unauthenticated browser is sent to the sign-in page instead of getting
// a JSON 401.
func RequireSessionPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, pharmacyID, ok := sessionFromCookie(c)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(userIDKey, userID)
		c.Set(pharmacyIDKey, pharmacyID)
		c.Next()
	}
}

func sessionFromCookie(c *gin.Context) (userID, pharmacyID uint, ok bool) {
	cfg := config.LoadConfig()

	accessToken, err := c.Cookie("access_token")
	if err != nil {
		return 0, 0, false
	}

	token, err := jwt.Parse(accessToken, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, 0, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, 0, false
	}

	uid, okUser := claims["user_id"].(float64)
	pid, okPharm := claims["pharmacy_id"].(float64)
	if !okUser || !okPharm || uid <= 0 || pid <= 0 {
		return 0, 0, false
	}

	return uint(uid), uint(pid), true
}

// SessionUserID returns the authenticated pharmacist id set by the guard.
func SessionUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(userIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// SessionPharmacyID returns the session tenant set by the guard.
func SessionPharmacyID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(pharmacyIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
