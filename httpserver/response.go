package httpserver

import (
	"github.com/labstack/echo/v4"
)

// Envelope is the body of every API response.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func writeData(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func writeMessage(c echo.Context, status int, message string) error {
	return c.JSON(status, Envelope{
		Success: true,
		Message: message,
	})
}

func writeError(c echo.Context, status int, message string) error {
	return c.JSON(status, Envelope{
		Success: false,
		Message: message,
	})
}
