package bootstrap

import (
	"github.com/eleven-am/vision-backend/internal/engine"
	"github.com/eleven-am/vision-backend/internal/health"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const version = "1.0.0"

func ProvideHealthHandler(gen engine.Generator) *health.Handler {
	return health.NewHandler(gen, version)
}

func metricsMiddleware(h *health.Handler) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h.IncrementRequests()
			h.IncrementConnections()
			defer h.DecrementConnections()
			return next(c)
		}
	}
}

func RegisterHealthRoutes(e *echo.Echo, h *health.Handler) {
	e.Use(metricsMiddleware(h))
	h.RegisterRoutes(e)
}

var HealthModule = fx.Options(
	fx.Provide(ProvideHealthHandler),
	fx.Invoke(RegisterHealthRoutes),
)
