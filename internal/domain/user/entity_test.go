//go:build unit

package user_test

import (
	"testing"

	"hostel-admin/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	email, err := user.NewEmail("  Recepcion@Hostel.PE ")
	require.NoError(t, err)
	assert.Equal(t, "recepcion@hostel.pe", email.Value())

	t.Run("valid staff account", func(t *testing.T) {
		u, err := user.NewUser(email, "hash", user.RoleRecepcion, "Ana Quispe")
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, u.ID())
		assert.True(t, u.IsActive())
		assert.Nil(t, u.LastLogin())
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := user.NewUser(email, "hash", user.RoleRecepcion, "   ")
		assert.ErrorIs(t, err, user.ErrEmptyFullName)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := user.NewUser(email, "hash", user.Role("operator"), "Ana")
		assert.ErrorIs(t, err, user.ErrInvalidRole)
	})
}

func TestEmail(t *testing.T) {
	for _, in := range []string{"", "invalid-email", "invalidemail.com", "a@b"} {
		t.Run(in, func(t *testing.T) {
			_, err := user.NewEmail(in)
			assert.ErrorIs(t, err, user.ErrInvalidEmail)
		})
	}
}

func TestRoleAtLeast(t *testing.T) {
	testCases := []struct {
		role   user.Role
		min    user.Role
		expect bool
	}{
		{role: user.RoleSuperadmin, min: user.RoleAdmin, expect: true},
		{role: user.RoleAdmin, min: user.RoleRecepcion, expect: true},
		{role: user.RoleRecepcion, min: user.RoleHousekeeping, expect: true},
		{role: user.RoleHousekeeping, min: user.RoleRecepcion, expect: false},
		{role: user.RoleViewer, min: user.RoleHousekeeping, expect: false},
		{role: user.RoleRecepcion, min: user.RoleRecepcion, expect: true},
		{role: user.Role("ghost"), min: user.RoleViewer, expect: false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.role)+">="+string(tc.min), func(t *testing.T) {
			assert.Equal(t, tc.expect, tc.role.AtLeast(tc.min))
		})
	}

	_, err := user.NewRole("operator")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}
