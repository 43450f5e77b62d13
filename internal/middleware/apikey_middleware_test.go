package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"teamboard/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupAPIKeyRouter(key string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()

	integration := r.Group("/integration")
	integration.Use(middleware.APIKeyMiddleware(key))

	integration.GET("/team-pulse", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return r
}

func TestAPIKeyMiddleware_ValidKey(t *testing.T) {
	// Arrange
	router := setupAPIKeyRouter("shared-secret")

	req, _ := http.NewRequest("GET", "/integration/team-pulse", nil)
	req.Header.Set(middleware.APIKeyHeader, "shared-secret")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestAPIKeyMiddleware_MissingKey(t *testing.T) {
	// Arrange
	router := setupAPIKeyRouter("shared-secret")

	req, _ := http.NewRequest("GET", "/integration/team-pulse", nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "invalid API key")
}

func TestAPIKeyMiddleware_WrongKey(t *testing.T) {
	// Arrange
	router := setupAPIKeyRouter("shared-secret")

	req, _ := http.NewRequest("GET", "/integration/team-pulse", nil)
	req.Header.Set(middleware.APIKeyHeader, "not-the-secret")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "invalid API key")
}

func TestAPIKeyMiddleware_UnconfiguredKey(t *testing.T) {
	// Arrange
	router := setupAPIKeyRouter("")

	req, _ := http.NewRequest("GET", "/integration/team-pulse", nil)
	req.Header.Set(middleware.APIKeyHeader, "")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "not configured")
}
