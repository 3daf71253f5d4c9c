package middleware

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nixie-Tech-LLC/playhouse/internal/model"
)

const secret = "supersecret"

type usersStub map[int]*model.User

func (u usersStub) GetUserByID(id int) (*model.User, error) {
	if user, ok := u[id]; ok {
		return user, nil
	}
	return nil, sql.ErrNoRows
}

type revokedStub map[string]bool

func (r revokedStub) Revoke(_ context.Context, jti string, _ time.Duration) error {
	r[jti] = true
	return nil
}

func (r revokedStub) IsRevoked(_ context.Context, jti string) (bool, error) {
	return r[jti], nil
}

type unreachableRevocations struct{}

func (unreachableRevocations) Revoke(context.Context, string, time.Duration) error {
	return errors.New("redis down")
}

func (unreachableRevocations) IsRevoked(context.Context, string) (bool, error) {
	return false, errors.New("redis down")
}

func guardedRouter(users UserLookup, revocations Revocations) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/Test/Token", JWTMiddleware(secret, users, revocations), func(c *gin.Context) {
		u, ok := GetCurrentUser(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": u.ID})
	})
	return r
}

func call(r *gin.Engine, header string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/Test/Token", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Password1!")
	require.NoError(t, err)
	assert.NotEqual(t, "Password1!", hash)
	assert.True(t, CheckPassword(hash, "Password1!"))
	assert.False(t, CheckPassword(hash, "Password2!"))
}

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT(42, secret, time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, 5*time.Second)

	_, err = ParseToken(token, "other-secret")
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	token, err := GenerateJWT(1, secret, -time.Minute)
	require.NoError(t, err)
	_, err = ParseToken(token, secret)
	assert.Error(t, err)
}

func TestParseTokenRejectsOtherAlgorithms(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": 1, "exp": time.Now().Add(time.Hour).Unix()})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseToken(signed, secret)
	assert.Error(t, err)
}

func TestJWTMiddleware(t *testing.T) {
	users := usersStub{7: {ID: 7, Email: "admin@example.com"}}
	revoked := revokedStub{}
	r := guardedRouter(users, revoked)

	valid, err := GenerateJWT(7, secret, time.Hour)
	require.NoError(t, err)
	orphan, err := GenerateJWT(8, secret, time.Hour)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, call(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, call(r, "Token "+valid).Code)
	assert.Equal(t, http.StatusUnauthorized, call(r, "Bearer not-a-jwt").Code)
	assert.Equal(t, http.StatusUnauthorized, call(r, "Bearer "+orphan).Code)

	w := call(r, "Bearer "+valid)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":7}`, w.Body.String())

	claims, err := ParseToken(valid, secret)
	require.NoError(t, err)
	revoked[claims.ID] = true
	w = call(r, "Bearer "+valid)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "revoked")
}

func TestJWTMiddlewareWithoutRevocations(t *testing.T) {
	r := guardedRouter(usersStub{1: {ID: 1}}, nil)
	token, err := GenerateJWT(1, secret, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, call(r, "Bearer "+token).Code)
}

func TestJWTMiddlewareRevocationStoreDown(t *testing.T) {
	r := guardedRouter(usersStub{1: {ID: 1}}, unreachableRevocations{})
	token, err := GenerateJWT(1, secret, time.Hour)
	require.NoError(t, err)

	w := call(r, "Bearer "+token)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.NotContains(t, w.Body.String(), `"id"`)
}
