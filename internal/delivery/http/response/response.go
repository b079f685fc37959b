// Package response defines the JSON envelope shared by every endpoint.
package response

import (
	"github.com/labstack/echo/v4"
)

// Envelope status values. Client errors report "fail", server errors
// report "error"; both carry a human-readable message.
const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// Response is the unified API response structure.
type Response struct {
	Status  string `json:"status"`
	Results *int   `json:"results,omitempty"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// Success writes a success envelope with a data payload.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, Response{
		Status: StatusSuccess,
		Data:   data,
	})
}

// SuccessList writes a success envelope with a collection payload and its
// element count. A zero count is still serialized.
func SuccessList(c echo.Context, statusCode int, results int, data any) error {
	return c.JSON(statusCode, Response{
		Status:  StatusSuccess,
		Results: &results,
		Data:    data,
	})
}

// Fail writes a client-error envelope (4xx).
func Fail(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, Response{
		Status:  StatusFail,
		Message: message,
	})
}

// Error writes a server-error envelope (5xx).
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, Response{
		Status:  StatusError,
		Message: message,
	})
}
