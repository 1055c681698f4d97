package auth

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"rx-education-api/config"
	"rx-education-api/internal/logs"
	"rx-education-api/internal/util"
)

type AuthController struct {
	AuthService AuthServicePort
	LS          LogServicePort
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ac.AuthService.GetUser(req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	if err := util.VerifyPassword(req.Password, user.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	cfg := config.LoadConfig()
	if err := IssueSessionCookies(c, cfg, user, req.RememberMe); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create session"})
		return
	}

	uid := user.ID
	pid := user.PharmacyID
	entry := logs.SystemLog{
		Level:      "INFO",
		Service:    "auth",
		Action:     "LOGIN",
		Message:    fmt.Sprintf("Pharmacist signed in with email %s", user.Email),
		UserID:     &uid,
		PharmacyID: &pid,
	}
	if err := ac.LS.Log(entry, nil); err != nil {
		fmt.Printf("Failed to insert log: %v\n", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"data": LoginResponse{
			ID:         user.ID,
			FirstName:  user.FirstName,
			LastName:   user.LastName,
			Email:      user.Email,
			PharmacyID: user.PharmacyID,
		},
	})
}

func (ac *AuthController) Logout(c *gin.Context) {
	ClearSessionCookies(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (ac *AuthController) Me(c *gin.Context) {
	cfg := config.LoadConfig()

	accessToken, err := c.Cookie(AccessCookie)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing access token"})
		return
	}

	token, err := jwt.Parse(accessToken, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	claims := token.Claims.(jwt.MapClaims)
	userID, ok := claims["user_id"].(float64)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid user ID"})
		return
	}

	user, err := ac.AuthService.GetUserByID(uint(userID))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "account no longer exists"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": LoginResponse{
			ID:         user.ID,
			FirstName:  user.FirstName,
			LastName:   user.LastName,
			Email:      user.Email,
			PharmacyID: user.PharmacyID,
		},
	})
}

func (ac *AuthController) Refresh(c *gin.Context) {
	cfg := config.LoadConfig()

	refreshToken, err := c.Cookie(RefreshCookie)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing refresh token"})
		return
	}

	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
		return
	}

	claims := token.Claims.(jwt.MapClaims)
	userID, okUser := claims["user_id"].(float64)
	pharmacyID, okPharm := claims["pharmacy_id"].(float64)
	if !okUser || !okPharm {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
		return
	}

	accessExp := time.Now().Add(accessTokenTTL)
	access := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":     uint(userID),
		"pharmacy_id": uint(pharmacyID),
		"exp":         accessExp.Unix(),
	})
	accessString, err := access.SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not refresh session"})
		return
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     AccessCookie,
		Value:    accessString,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})

	c.JSON(http.StatusOK, gin.H{"message": "Access token refreshed"})
}
