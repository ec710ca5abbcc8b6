package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	domainerrors "souq/internal/domain/errors"
	"souq/internal/errors"
	"souq/internal/usecase/impl"
)

// Response unified API response structure
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`    // Business error code, e.g., "KIND_NOT_FOUND"
	Details string `json:"details"` // Detailed error description
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Error error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// BadRequest 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// BindingError binding error response
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// NotFound 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, "")
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, "")
}

// HandleAppError maps use case errors onto the response taxonomy.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	switch {
	case errors.Is(err, impl.ErrBrowserClosed):
		return Error(c, domainerrors.ErrBrowserClosed.HTTPCode(), domainerrors.ErrBrowserClosed.ErrorCode(), domainerrors.ErrBrowserClosed.Message(), "")
	case errors.Is(err, impl.ErrEmptySelection):
		return Error(c, domainerrors.ErrEmptySelection.HTTPCode(), domainerrors.ErrEmptySelection.ErrorCode(), domainerrors.ErrEmptySelection.Message(), "")
	case errors.Is(err, impl.ErrUnknownAction):
		return Error(c, domainerrors.ErrUnknownAction.HTTPCode(), domainerrors.ErrUnknownAction.ErrorCode(), domainerrors.ErrUnknownAction.Message(), "")
	default:
		return Error(c, domainerrors.ErrCatalogUnavailable.HTTPCode(), domainerrors.ErrCatalogUnavailable.ErrorCode(), domainerrors.ErrCatalogUnavailable.Message(), err.Error())
	}
}
