package http

import (
	"log/slog"

	"freight/internal/core/ports"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter builds the echo instance serving the API, /health, /metrics and,
// when doc is non-nil, the swagger UI under /swagger/.
func NewRouter(server *Server, doc *openapi3.T, clock ports.Clock, logger *slog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewRequestValidator(clock)
	e.HTTPErrorHandler = NewErrorHandler(logger, clock)

	e.Use(Observability())
	e.Use(middleware.Recover())

	RegisterHandlers(e, server)
	e.GET("/health", server.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	if doc != nil {
		if err := RegisterDocs(doc); err != nil {
			return nil, err
		}
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	return e, nil
}
