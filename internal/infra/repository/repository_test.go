//go:build unit

package repository

import (
	"context"
	"errors"
	"testing"

	"hostel-admin/internal/infra"
	"hostel-admin/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDBTX struct {
	mock.Mock
}

func (m *MockDBTX) Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockDBTX) Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	rows, _ := mockArgs.Get(0).(pgx.Rows)
	return rows, mockArgs.Error(1)
}

func (m *MockDBTX) QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

// stubRow scans a fixed list of values, or fails with err.
type stubRow struct {
	values []any
	err    error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *int64:
			*p = r.values[i].(int64)
		case *uuid.UUID:
			*p = r.values[i].(uuid.UUID)
		default:
			return errors.New("stubRow: unsupported destination")
		}
	}
	return nil
}

func TestUpdateLastLogin(t *testing.T) {
	testUserID := uuid.New()

	tests := []struct {
		name      string
		mockError error
		wantError bool
	}{
		{name: "success", mockError: nil, wantError: false},
		{name: "database error", mockError: assert.AnError, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(MockDBTX)
			db.On("Exec", mock.Anything, mock.Anything, []interface{}{testUserID}).
				Return(pgconn.NewCommandTag("UPDATE 1"), tt.mockError)

			err := NewUserRepository(db).UpdateLastLogin(context.Background(), testUserID)

			if tt.wantError {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				assert.NoError(t, err)
			}
			db.AssertExpectations(t)
		})
	}
}

func TestReservationCreate_ExclusionViolationIsConflict(t *testing.T) {
	db := new(MockDBTX)
	db.On("Exec", mock.Anything, mock.Anything, mock.Anything).Return(pgconn.CommandTag{}, &pgconn.PgError{
		Code:           "23P01",
		ConstraintName: "reservations_no_overlap",
	})

	err := NewReservationRepository(db).Create(context.Background(), builder.NewReservationBuilder().BuildStored())

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindConflict))
	assert.Equal(t, "reservations_no_overlap", infra.ConstraintOf(err))
	// companions are not written after a failed insert
	db.AssertNumberOfCalls(t, "Exec", 1)
}

func TestReservationNextCode(t *testing.T) {
	db := new(MockDBTX)
	db.On("QueryRow", mock.Anything, mock.Anything, mock.Anything).Return(stubRow{values: []any{int64(42)}})

	code, err := NewReservationRepository(db).NextCode(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "R-000042", code)
}

func TestReservationLockRoom_MissingRoom(t *testing.T) {
	db := new(MockDBTX)
	db.On("QueryRow", mock.Anything, mock.Anything, mock.Anything).Return(stubRow{err: pgx.ErrNoRows})

	err := NewReservationRepository(db).LockRoom(context.Background(), uuid.New())

	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestRowsAffectedZeroIsNotFound(t *testing.T) {
	id := uuid.New()
	tests := []struct {
		name string
		call func(db *MockDBTX) error
	}{
		{
			name: "reservation status",
			call: func(db *MockDBTX) error {
				return NewReservationRepository(db).UpdateStatus(context.Background(), id, "confirmed")
			},
		},
		{
			name: "reservation delete",
			call: func(db *MockDBTX) error { return NewReservationRepository(db).Delete(context.Background(), id) },
		},
		{
			name: "payment delete",
			call: func(db *MockDBTX) error { return NewPaymentRepository(db).Delete(context.Background(), id) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(MockDBTX)
			db.On("Exec", mock.Anything, mock.Anything, mock.Anything).Return(pgconn.NewCommandTag("UPDATE 0"), nil)

			err := tt.call(db)

			assert.True(t, infra.IsKind(err, infra.KindNotFound))
		})
	}
}
