package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newscatcher/catchall-mcp/internal/infrastructure/config"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"Bearer abc123", "abc123"},
		{"bearer abc123", "abc123"},
		{"Basic abc123", ""},
		{"Bearer", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, bearerToken(tt.header), "header %q", tt.header)
	}
}

func TestAudienceMatches(t *testing.T) {
	assert.True(t, audienceMatches(nil, "catchall"))
	assert.True(t, audienceMatches("catchall", "catchall"))
	assert.False(t, audienceMatches("other", "catchall"))
	assert.True(t, audienceMatches([]any{"other", "catchall"}, "catchall"))
	assert.False(t, audienceMatches([]any{"other"}, "catchall"))
	assert.False(t, audienceMatches(42, "catchall"))
}

func TestMiddlewarePassthroughWhenDisabled(t *testing.T) {
	validator, err := NewValidator(context.Background(), &config.Config{AuthEnabled: false}, zerolog.Nop())
	require.NoError(t, err)
	assert.True(t, validator.Ready())

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(validator.Middleware())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/ping", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
