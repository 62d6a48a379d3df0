// Package observability wires logging and metrics for the application.
package observability

import (
	"github.com/smallbiznis/catalog/internal/config"
	"github.com/smallbiznis/catalog/internal/observability/logger"
	"github.com/smallbiznis/catalog/internal/observability/metrics"
	"go.uber.org/fx"
)

var Module = fx.Module("observability",
	fx.Provide(
		provideLoggerConfig,
		logger.New,
		metrics.NewHTTPMetrics,
	),
)

func provideLoggerConfig(cfg config.Config) logger.Config {
	return logger.Config{
		ServiceName:         cfg.AppName,
		Environment:         cfg.Environment,
		Version:             cfg.AppVersion,
		Level:               cfg.LogLevel,
		Format:              cfg.LogFormat,
		IncludeCaller:       true,
		IncludeStackOnError: !cfg.IsProduction(),
	}
}
