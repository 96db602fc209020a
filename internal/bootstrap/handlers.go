package bootstrap

import (
	"log/slog"
	"os"

	"github.com/eleven-am/vision-backend/internal/engine"
	"github.com/eleven-am/vision-backend/internal/inference"
	"github.com/eleven-am/vision-backend/internal/media"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/fx"
)

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func ProvideLogger(cfg *Config) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))
}

func ProvideEngineClient(cfg *Config) engine.Generator {
	return engine.NewClient(engine.Config{
		BaseURL: cfg.EngineURL,
		Model:   cfg.ModelPath,
		Timeout: cfg.EngineTimeout,
	})
}

func ProvideMediaResolver(cfg *Config, logger *slog.Logger) (*media.Resolver, error) {
	return media.NewResolver(media.Config{
		TempDir:       cfg.TempDir,
		MaxImageBytes: cfg.MaxImageBytes,
		MaxVideoBytes: cfg.MaxVideoBytes,
	}, logger)
}

func ProvideInferenceService(gen engine.Generator, resolver *media.Resolver, logger *slog.Logger) *inference.Service {
	return inference.NewService(gen, resolver, logger)
}

func ProvideInferenceHandler(service *inference.Service, logger *slog.Logger) *inference.Handler {
	return inference.NewHandler(service, logger)
}

func RegisterRoutes(e *echo.Echo, inferenceHandler *inference.Handler) {
	api := e.Group("/api/v1")
	inferenceHandler.RegisterRoutes(api)

	e.GET("/swagger/*", echoSwagger.EchoWrapHandler())
}

var HandlersModule = fx.Options(
	fx.Provide(
		ProvideLogger,
		ProvideEngineClient,
		ProvideMediaResolver,
		ProvideInferenceService,
		ProvideInferenceHandler,
	),
	fx.Invoke(RegisterRoutes),
)
