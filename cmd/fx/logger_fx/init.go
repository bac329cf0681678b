package logger_fx

import (
	"context"
	"fmt"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"mapfuture/internal/config"
)

var Module = fx.Options(
	fx.Provide(ProvideLogger),
	fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: log.Named("fx")}
	}),
)

// ProvideLogger builds the JSON production logger, or the console development
// logger when gin runs in debug mode.
func ProvideLogger(lc fx.Lifecycle, cfg config.Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}

	zcfg := loggerConfig(cfg)
	zcfg.Level = level

	log, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			_ = log.Sync()
			return nil
		},
	})
	return log, nil
}

// loggerConfig follows gin's mode. An unset GIN_MODE means gin's own default,
// which is debug.
func loggerConfig(cfg config.Config) zap.Config {
	mode := cfg.GinMode
	if mode == "" {
		mode = gin.Mode()
	}
	if mode == gin.DebugMode {
		return zap.NewDevelopmentConfig()
	}
	return zap.NewProductionConfig()
}
