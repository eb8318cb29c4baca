package utils

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenCookie = "token"
	tokenTTL    = 30 * 24 * time.Hour
)

type Claims struct {
	UserID string
	Role   string
}

func secret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

func GenerateToken(userID, role string) (string, error) {
	claims := jwt.MapClaims{
		"id":   userID,
		"role": role,
		"exp":  time.Now().Add(tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

func ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString,
		func(t *jwt.Token) (interface{}, error) { return secret(), nil },
		jwt.WithValidMethods([]string{"HS256"}),
	)
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	id, _ := mapClaims["id"].(string)
	role, _ := mapClaims["role"].(string)
	return &Claims{UserID: id, Role: role}, nil
}

// SetTokenCookie attaches the session token as an httpOnly cookie, secure
// outside development.
func SetTokenCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	secure := os.Getenv("APP_ENV") == "production"
	c.SetCookie(tokenCookie, token, int(tokenTTL.Seconds()), "/", "", secure, true)
}

func ClearTokenCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(tokenCookie, "", -1, "/", "", false, true)
}

// TokenFromRequest reads the session cookie, falling back to a bearer header
// for non-browser clients and the websocket feed.
func TokenFromRequest(c *gin.Context) string {
	if token, err := c.Cookie(tokenCookie); err == nil && token != "" {
		return token
	}
	return strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
}
