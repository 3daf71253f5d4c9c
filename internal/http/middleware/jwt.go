package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/playhouse/internal/model"
)

// UserLookup resolves the admin a token was issued to.
type UserLookup interface {
	GetUserByID(id int) (*model.User, error)
}

// Revocations reports tokens that were logged out before expiry.
type Revocations interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// TokenClaims is what the guard extracts from a verified token.
type TokenClaims struct {
	UserID    int
	ID        string
	ExpiresAt time.Time
}

// signs a token embedding userID in the "sub" claim, valid for ttl.
func GenerateJWT(userID int, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	})
	return token.SignedString([]byte(secret))
}

// verifies the JWT signature and expiry and returns its claims.
func ParseToken(tokenString, secret string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	sub, ok := claims["sub"].(float64)
	if !ok {
		return nil, errors.New("invalid sub claim")
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, errors.New("invalid exp claim")
	}
	jti, _ := claims["jti"].(string)

	return &TokenClaims{
		UserID:    int(sub),
		ID:        jti,
		ExpiresAt: time.Unix(int64(exp), 0),
	}, nil
}

func unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": 0, "error": msg})
}

// checks "Authorization: Bearer <token>", verifies it, loads the admin, and sets
// "currentUser" in context. revocations may be nil.
func JWTMiddleware(secret string, users UserLookup, revocations Revocations) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			unauthorized(c, "Authorization token not found")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			unauthorized(c, "Authorization header must be a bearer token")
			return
		}

		claims, err := ParseToken(strings.TrimSpace(parts[1]), secret)
		if err != nil {
			unauthorized(c, "Token is invalid or expired")
			return
		}

		if revocations != nil && claims.ID != "" {
			revoked, err := revocations.IsRevoked(c.Request.Context(), claims.ID)
			if err != nil {
				log.Error().Err(err).Str("jti", claims.ID).Msg("[auth] revocation lookup failed")
				c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"success": 0, "error": "Token could not be verified"})
				return
			}
			if revoked {
				unauthorized(c, "Token has been revoked")
				return
			}
		}

		user, err := users.GetUserByID(claims.UserID)
		if err != nil || user == nil {
			unauthorized(c, "Admin not found")
			return
		}

		c.Set(currentUserKey, user)
		c.Set(tokenClaimsKey, claims)
		c.Next()
	}
}
