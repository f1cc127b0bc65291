package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddlewareHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
	}{
		{"Empty header", "", http.StatusUnauthorized},
		{"Invalid format", "Token abc", http.StatusUnauthorized},
		{"Empty token", "Bearer ", http.StatusUnauthorized},
		{"Garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			req := httptest.NewRequest("GET", "/", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			c.Request = req

			handler := AuthMiddleware("secret")
			handler(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	token, err := GenerateToken("admin@example.com", "admin", testSecret)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	c.Request = req

	handler := AuthMiddleware(testSecret)
	handler(c)

	assert.False(t, c.IsAborted())

	email, ok := GetUserEmail(c)
	assert.True(t, ok)
	assert.Equal(t, "admin@example.com", email)
}

func TestGetUserEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		email    any
		expected string
		ok       bool
	}{
		{"Valid email", "admin@example.com", "admin@example.com", true},
		{"Missing email", nil, "", false},
		{"Wrong type", 123, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			if tt.email != nil {
				c.Set("user_email", tt.email)
			}
			c.Request = httptest.NewRequest("GET", "/", nil)

			email, ok := GetUserEmail(c)
			assert.Equal(t, tt.expected, email)
			assert.Equal(t, tt.ok, ok)
		})
	}
}
