package platformerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToolResultMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "api error carries status",
			err:  NewAPI(429, "rate limited"),
			want: "Error (429): rate limited",
		},
		{
			name: "config error",
			err:  New(ErrorTypeConfig, "credential required"),
			want: "Error: credential required",
		},
		{
			name: "transport error",
			err:  Wrap(ErrorTypeTransport, "catchall request failed", errors.New("dial tcp: timeout")),
			want: "Error: catchall request failed",
		},
		{
			name: "plain error",
			err:  errors.New("something broke"),
			want: "Unexpected error: something broke",
		},
		{
			name: "wrapped gateway error unwraps",
			err:  fmt.Errorf("calling tool: %w", NewAPI(404, "job not found")),
			want: "Error (404): job not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToolResultMessage(tt.err))
		})
	}
}

func TestIsType(t *testing.T) {
	err := New(ErrorTypeValidation, "missing argument")
	assert.True(t, IsType(err, ErrorTypeValidation))
	assert.False(t, IsType(err, ErrorTypeAPI))
	assert.False(t, IsType(errors.New("plain"), ErrorTypeValidation))

	wrapped := fmt.Errorf("outer: %w", err)
	assert.True(t, IsType(wrapped, ErrorTypeValidation))
}

func TestErrorTypeToHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, ErrorTypeToHTTPStatus(ErrorTypeValidation))
	assert.Equal(t, http.StatusBadGateway, ErrorTypeToHTTPStatus(ErrorTypeTransport))
	assert.Equal(t, http.StatusBadGateway, ErrorTypeToHTTPStatus(ErrorTypeAPI))
	assert.Equal(t, http.StatusInternalServerError, ErrorTypeToHTTPStatus(ErrorTypeInternal))
	assert.Equal(t, http.StatusInternalServerError, ErrorTypeToHTTPStatus(ErrorTypeConfig))
}

func TestGatewayErrorUnwrap(t *testing.T) {
	inner := errors.New("connection refused")
	err := Wrap(ErrorTypeTransport, "catchall request failed", inner)
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "TRANSPORT")
	assert.Contains(t, err.Error(), "connection refused")
}
