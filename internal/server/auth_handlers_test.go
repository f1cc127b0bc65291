package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lisbooa16/fut-analise/internal/auth"
	"github.com/Lisbooa16/fut-analise/internal/config"
)

func loginRouter(t *testing.T) (*gin.Engine, *config.Config) {
	gin.SetMode(gin.TestMode)

	hash, err := auth.HashPassword("admin")
	require.NoError(t, err)

	cfg := &config.Config{
		JWTSecret:         "test-secret",
		AdminEmail:        "admin@example.com",
		AdminPasswordHash: hash,
	}

	router := gin.New()
	router.POST("/auth/login", Login(cfg))
	return router, cfg
}

func postLogin(router *gin.Engine, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)

	req := httptest.NewRequest("POST", "/auth/login", &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLogin_Success(t *testing.T) {
	router, cfg := loginRouter(t)

	w := postLogin(router, gin.H{"email": "admin@example.com", "password": "admin"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	claims, err := auth.ValidateToken(resp.Token, cfg.JWTSecret)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	router, _ := loginRouter(t)

	w := postLogin(router, gin.H{"email": "admin@example.com", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_UnknownEmail(t *testing.T) {
	router, _ := loginRouter(t)

	w := postLogin(router, gin.H{"email": "someone@example.com", "password": "admin"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_InvalidBody(t *testing.T) {
	router, _ := loginRouter(t)

	w := postLogin(router, gin.H{"email": "not-an-email", "password": "admin"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
