package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterHealthRoutes() {
	s.Router.GET("/healthz", s.healthCheck)
}

// healthCheck godoc
// @Summary Health Check
// @Description Check if server is alive
// @Tags health
// @Success 200 {object} Envelope
// @Router /healthz [get]
func (s *Server) healthCheck(c echo.Context) error {
	return writeMessage(c, http.StatusOK, "Service is up and running")
}
