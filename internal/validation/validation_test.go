package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Name     string `json:"name" binding:"required,max=50"`
	Email    string `json:"email" binding:"required,email,rfcemail,max=50"`
	Password string `json:"password" binding:"required,min=8,strongpassword"`
}

func bindJSON(t *testing.T, body string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	ctx.Request.Header.Set("Content-Type", "application/json")

	var req signup
	return Bind(ctx, &req)
}

func TestIsStrongPassword(t *testing.T) {
	cases := map[string]bool{
		"Password1!": true,
		"Aa1_aaaa":   true,
		"Password!":  false, // no digit
		"password1!": false, // no upper
		"PASSWORD1!": false, // no lower
		"Password12": false, // no symbol
		"Pa1!":       false, // too short
	}
	for in, want := range cases {
		assert.Equal(t, want, IsStrongPassword(in), in)
	}
}

func TestIsRFCEmail(t *testing.T) {
	assert.True(t, IsRFCEmail("admin@example.com"))
	assert.False(t, IsRFCEmail("Admin <admin@example.com>"))
	assert.False(t, IsRFCEmail("not-an-email"))
}

func TestFirstErrorReportsFirstRule(t *testing.T) {
	err := bindJSON(t, `{"name":"Ada","email":"ada@example.com","password":"Password!"}`)
	require.Error(t, err)
	assert.Equal(t, "The password field format is invalid.", FirstError(err))

	err = bindJSON(t, `{"email":"ada@example.com","password":"Password1!"}`)
	require.Error(t, err)
	assert.Equal(t, "The name field is required.", FirstError(err))

	err = bindJSON(t, `{"name":"Ada","email":"nope","password":"Password1!"}`)
	require.Error(t, err)
	assert.Equal(t, "The email field must be a valid email address.", FirstError(err))

	long := strings.Repeat("n", 51)
	err = bindJSON(t, `{"name":"`+long+`","email":"ada@example.com","password":"Password1!"}`)
	require.Error(t, err)
	assert.Equal(t, "The name field must not be greater than 50 characters.", FirstError(err))
}

func TestBindAcceptsValidRequest(t *testing.T) {
	assert.NoError(t, bindJSON(t, `{"name":"Ada","email":"ada@example.com","password":"Password1!"}`))
}
