package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/Nixie-Tech-LLC/playhouse/internal/model"
)

const (
	currentUserKey = "currentUser"
	tokenClaimsKey = "tokenClaims"
)

// uses bcrypt to hash a plaintext password.
func HashPassword(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(bytes), err
}

// compares a bcrypt hash with the plaintext.
func CheckPassword(hash, plain string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	return err == nil
}

// retrieves *model.User from Gin context (after JWTMiddleware has run).
func GetCurrentUser(c *gin.Context) (*model.User, bool) {
	u, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := u.(*model.User)
	return user, ok
}

// retrieves the verified token claims from Gin context (after JWTMiddleware has run).
func GetTokenClaims(c *gin.Context) (*TokenClaims, bool) {
	v, exists := c.Get(tokenClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*TokenClaims)
	return claims, ok
}
