//go:build unit

package jwt

import (
	"testing"
	"time"

	"hostel-admin/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	userID := uuid.New()

	t.Run("round trip keeps user and role", func(t *testing.T) {
		svc := NewService("secret", time.Hour)

		token, err := svc.GenerateToken(userID, user.RoleRecepcion)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "recepcion", claims.Role)
	})

	t.Run("expired token", func(t *testing.T) {
		svc := NewService("secret", time.Minute)
		issued := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
		svc.now = func() time.Time { return issued }
		token, err := svc.GenerateToken(userID, user.RoleAdmin)
		require.NoError(t, err)

		svc.now = func() time.Time { return issued.Add(2 * time.Minute) }
		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		token, err := NewService("other", time.Hour).GenerateToken(userID, user.RoleAdmin)
		require.NoError(t, err)

		_, err = NewService("secret", time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
