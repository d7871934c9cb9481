package bootstrap

import (
	"hostel-admin/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.HostelConfig { return cfg.Hostel },
	),
)
