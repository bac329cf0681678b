package config_fx

import (
	"go.uber.org/fx"
	"mapfuture/internal/config"
)

var Module = fx.Provide(config.Load)
