package mcp

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func guardRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/mcp", MCPMethodGuard(allowedMCPMethods), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"passed": true})
	})
	return router
}

func TestMCPMethodGuard(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "tools/call allowed",
			body:       `{"jsonrpc":"2.0","method":"tools/call","id":1}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "initialize allowed",
			body:       `{"jsonrpc":"2.0","method":"initialize","id":1}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "resources not served",
			body:       `{"jsonrpc":"2.0","method":"resources/list","id":1}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "empty body rejected",
			body:       "",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid payload rejected",
			body:       "not json",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing method rejected",
			body:       `{"jsonrpc":"2.0","id":1}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	router := guardRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/mcp", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
