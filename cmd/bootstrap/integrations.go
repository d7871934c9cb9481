package bootstrap

import (
	"context"

	"hostel-admin/internal/infra/export"
	"hostel-admin/internal/infra/lock"
	"hostel-admin/internal/infra/notify"
	"hostel-admin/internal/infra/voucher"
	"hostel-admin/internal/pkg/config"
	"hostel-admin/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
		lock.NewRoomLocker,
		func(cfg config.Config) config.RedisConfig { return cfg.Redis },
	),
)

// NewRedis yields a nil client when REDIS_ADDR is unset.
func NewRedis(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	client, cleanup, err := lock.Connect(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})
	return client, nil
}

var VoucherModule = fx.Module("voucher",
	fx.Provide(
		fx.Annotate(
			NewVoucherRenderer,
			fx.As(new(queries.VoucherRenderer)),
		),
		func(cfg config.Config) config.SMTPConfig { return cfg.SMTP },
		notify.NewMailer,
	),
)

func NewVoucherRenderer(lc fx.Lifecycle, cfg config.Config) (*voucher.Renderer, error) {
	r, err := voucher.NewRenderer(cfg.Voucher)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			r.Close()
			return nil
		},
	})
	return r, nil
}

var ExportModule = fx.Module("export",
	fx.Provide(
		fx.Annotate(
			export.NewExcelExporter,
			fx.As(new(queries.DashboardExporter)),
		),
	),
)
