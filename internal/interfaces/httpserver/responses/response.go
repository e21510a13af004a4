package responses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/newscatcher/catchall-mcp/internal/utils/platformerrors"
)

type ErrorResponse struct {
	Error         string `json:"error"`
	ErrorInstance error  `json:"-"`
}

// HandleError maps a gateway error to an HTTP response. The message is used
// directly as the error body; the status code follows the error type.
func HandleError(reqCtx *gin.Context, err error, message string) {
	var gatewayErr *platformerrors.GatewayError
	if errors.As(err, &gatewayErr) {
		statusCode := platformerrors.ErrorTypeToHTTPStatus(gatewayErr.Type)
		reqCtx.AbortWithStatusJSON(statusCode, ErrorResponse{
			Error:         message,
			ErrorInstance: gatewayErr,
		})
		return
	}

	reqCtx.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
		Error:         message,
		ErrorInstance: err,
	})
}

// HandleNewError creates a typed error at the route layer and responds with
// the status mapped from its type.
func HandleNewError(reqCtx *gin.Context, errorType platformerrors.ErrorType, message string) {
	err := platformerrors.New(errorType, message)

	reqCtx.AbortWithStatusJSON(platformerrors.ErrorTypeToHTTPStatus(errorType), ErrorResponse{
		Error:         message,
		ErrorInstance: err,
	})
}
