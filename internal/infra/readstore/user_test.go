//go:build unit

package readstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"hostel-admin/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDBTX struct {
	mock.Mock
}

func (m *MockDBTX) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockDBTX) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	rows, _ := mockArgs.Get(0).(pgx.Rows)
	return rows, mockArgs.Error(1)
}

func (m *MockDBTX) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

// userRow scans a staff_users projection, or fails with err.
type userRow struct {
	id        uuid.UUID
	email     string
	role      string
	fullName  string
	lastLogin pgtype.Timestamptz
	active    bool
	err       error
}

func (r userRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != 6 {
		return errors.New("userRow: unexpected column count")
	}
	*dest[0].(*uuid.UUID) = r.id
	*dest[1].(*string) = r.email
	*dest[2].(*string) = r.role
	*dest[3].(*string) = r.fullName
	*dest[4].(*pgtype.Timestamptz) = r.lastLogin
	*dest[5].(*bool) = r.active
	return nil
}

func TestUserReadStoreFindByID(t *testing.T) {
	id := uuid.New()
	loggedIn := time.Date(2024, 7, 1, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		row       userRow
		wantKind  infra.RepositoryErrorKind
		wantLogin bool
	}{
		{
			name: "active user with a last login",
			row: userRow{
				id: id, email: "desk@hostel.test", role: "recepcion", fullName: "Front Desk",
				lastLogin: pgtype.Timestamptz{Time: loggedIn, Valid: true}, active: true,
			},
			wantLogin: true,
		},
		{
			name: "never logged in",
			row:  userRow{id: id, email: "new@hostel.test", role: "viewer", fullName: "New", active: true},
		},
		{
			name:     "missing row",
			row:      userRow{err: pgx.ErrNoRows},
			wantKind: infra.KindNotFound,
		},
		{
			name:     "database failure",
			row:      userRow{err: assert.AnError},
			wantKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(MockDBTX)
			db.On("QueryRow", mock.Anything, mock.Anything, []any{id}).Return(tt.row)

			got, err := NewUserReadStore(db).FindByID(context.Background(), id)

			db.AssertExpectations(t)
			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.row.email, got.Email)
			assert.Equal(t, tt.row.role, got.Role)
			assert.True(t, got.IsActive)
			if tt.wantLogin {
				require.NotNil(t, got.LastLogin)
				assert.True(t, loggedIn.Equal(*got.LastLogin))
			} else {
				assert.Nil(t, got.LastLogin)
			}
		})
	}
}

func TestEscapeLike(t *testing.T) {
	tests := map[string]string{
		"  ana ":     "ana",
		"50%":        `50\%`,
		"first_name": `first\_name`,
		`back\slash`: `back\\slash`,
	}
	for in, want := range tests {
		assert.Equal(t, want, escapeLike(in), in)
	}
}
