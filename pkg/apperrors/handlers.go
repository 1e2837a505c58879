package apperrors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the uniform error envelope:
// {"success": false, "error": {"code", "message", "details?"}}
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   *AppError `json:"error"`
}

// HandleError writes err as an error envelope. Non-AppError values are
// treated as internal errors and stripped of detail.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}
	if appErr.HTTPCode >= http.StatusInternalServerError {
		// Never leak internals to the caller.
		appErr = New(CodeInternalError, "Internal server error", appErr.HTTPCode)
	}
	c.JSON(appErr.HTTPCode, ErrorResponse{Success: false, Error: appErr})
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
