//go:build unit

package lock

import (
	"context"
	"testing"

	"hostel-admin/internal/pkg/config"
	"hostel-admin/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoomLocker_WithoutRedisFallsBackToNoop(t *testing.T) {
	locker := NewRoomLocker(nil, config.RedisConfig{})
	assert.IsType(t, shared.NoopLocker{}, locker)

	release, err := locker.LockRoom(context.Background(), uuid.New())
	require.NoError(t, err)
	release(context.Background())
}

func TestConnect_DisabledReturnsNilClient(t *testing.T) {
	client, cleanup, err := Connect(context.Background(), config.RedisConfig{})
	require.NoError(t, err)
	assert.Nil(t, client)
	cleanup()
}

func TestRoomKeyIsPerRoom(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	assert.NotEqual(t, roomKey(a), roomKey(b))
	assert.Equal(t, "lock:room:"+a.String(), roomKey(a))
}
