package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mylaramshashank/academicshelf/models"
)

func mintToken(t *testing.T, secret, userID string, role models.Role, ttl time.Duration) string {
	t.Helper()

	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    string(role),
		"exp":     time.Now().Add(ttl).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func newProtectedRouter(requireAdmin bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handlers := []gin.HandlerFunc{ValidateToken}
	if requireAdmin {
		handlers = append(handlers, RequireAdmin)
	}
	handlers = append(handlers, func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})

	r.GET("/protected", handlers...)
	return r
}

func get(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newProtectedRouter(false)

	// Missing header
	assert.Equal(t, http.StatusUnauthorized, get(r, "").Code)

	// Garbage token
	assert.Equal(t, http.StatusUnauthorized, get(r, "not-a-jwt").Code)

	// Wrong secret
	bad := mintToken(t, "other-secret", "u1", models.RoleStudent, time.Hour)
	assert.Equal(t, http.StatusUnauthorized, get(r, bad).Code)

	// Expired
	expired := mintToken(t, "test-secret", "u1", models.RoleStudent, -time.Hour)
	assert.Equal(t, http.StatusUnauthorized, get(r, expired).Code)

	// Valid
	good := mintToken(t, "test-secret", "u1", models.RoleStudent, time.Hour)
	w := get(r, good)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "u1")
}

func TestRequireAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newProtectedRouter(true)

	student := mintToken(t, "test-secret", "u1", models.RoleStudent, time.Hour)
	assert.Equal(t, http.StatusForbidden, get(r, student).Code)

	admin := mintToken(t, "test-secret", "a1", models.RoleAdmin, time.Hour)
	assert.Equal(t, http.StatusOK, get(r, admin).Code)
}
