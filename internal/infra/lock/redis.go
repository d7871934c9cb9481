package lock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"hostel-admin/internal/pkg/config"
	"hostel-admin/internal/pkg/errs"
	"hostel-admin/internal/usecase/shared"

	"github.com/bsm/redislock"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const retryInterval = 100 * time.Millisecond

// RedisRoomLocker holds a short-lived redis lock per room while a booking is written.
type RedisRoomLocker struct {
	locker *redislock.Client
	ttl    time.Duration
	wait   time.Duration
}

func NewRedisRoomLocker(client redis.Cmdable, cfg config.RedisConfig) *RedisRoomLocker {
	return &RedisRoomLocker{
		locker: redislock.New(client),
		ttl:    cfg.LockTTL,
		wait:   cfg.LockWait,
	}
}

func (l *RedisRoomLocker) LockRoom(ctx context.Context, roomID uuid.UUID) (func(context.Context), error) {
	attempts := int(l.wait / retryInterval)
	opts := &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(retryInterval), attempts),
	}

	lk, err := l.locker.Obtain(ctx, roomKey(roomID), l.ttl, opts)
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, shared.ErrRoomBusy
	}
	if err != nil {
		return nil, errs.Wrap(err, "failed to obtain room lock")
	}

	return func(ctx context.Context) {
		if err := lk.Release(ctx); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			slog.Warn("failed to release room lock", "room_id", roomID.String(), "error", err.Error())
		}
	}, nil
}

func roomKey(roomID uuid.UUID) string {
	return fmt.Sprintf("lock:room:%s", roomID)
}

// NewRoomLocker picks the redis locker when an address is configured.
func NewRoomLocker(client *redis.Client, cfg config.RedisConfig) shared.RoomLocker {
	if client == nil {
		return shared.NoopLocker{}
	}
	return NewRedisRoomLocker(client, cfg)
}

// Connect returns a nil client when redis is not configured.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, func(), error) {
	if !cfg.Enabled() {
		slog.Info("redis not configured, room locks use the database only")
		return nil, func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, errs.Wrap(err, "failed to ping redis")
	}

	cleanup := func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err.Error())
		}
	}
	return client, cleanup, nil
}
