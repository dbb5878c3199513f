package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"stockroom/internal/models"
)

var jwtSecret = []byte("dev-only-secret")

// SetSecret installs the signing secret from configuration. Call once at
// startup before any token is issued or parsed.
func SetSecret(secret string) {
	jwtSecret = []byte(secret)
}

// GenerateToken issues a short-lived HS256 token for the user.
func GenerateToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(15 * time.Minute).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ParseToken validates a raw token string.
func ParseToken(tokenStr string) (*jwt.Token, error) {
	return jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		return jwtSecret, nil
	})
}

// TokenClaims parses an Authorization header value and returns the token and
// its claims.
func TokenClaims(authorization string) (*jwt.Token, jwt.MapClaims, error) {
	tokenStr := strings.TrimPrefix(authorization, "Bearer ")
	token, err := ParseToken(tokenStr)
	if err != nil {
		return nil, nil, err
	}
	claims, _ := token.Claims.(jwt.MapClaims)
	return token, claims, nil
}
