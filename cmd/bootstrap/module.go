package bootstrap

import (
	"hostel-admin/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	RedisModule,
	VoucherModule,
	ExportModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
