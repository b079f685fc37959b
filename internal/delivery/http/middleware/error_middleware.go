package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"ledger/internal/delivery/http/response"
	domainerrors "ledger/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware translates errors into the response envelope. It is the
// single place where application errors become HTTP shapes.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Application errors carry their own HTTP status and message.
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		m.write(c, appErr.HTTPCode(), appErr.Message())

		return
	}

	// Echo's own errors: unmatched routes, method mismatches, body limits.
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		m.write(c, httpErr.Code, fmt.Sprintf("%v", httpErr.Message))

		return
	}

	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	m.write(c, http.StatusInternalServerError, "Internal server error")
}

func (m *ErrorMiddleware) write(c echo.Context, statusCode int, message string) {
	var writeErr error
	if statusCode >= http.StatusInternalServerError {
		writeErr = response.Error(c, statusCode, message)
	} else {
		writeErr = response.Fail(c, statusCode, message)
	}

	if writeErr != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", writeErr))
	}
}
