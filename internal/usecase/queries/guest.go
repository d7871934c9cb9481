package queries

import (
	"context"

	"hostel-admin/internal/pkg/errs"

	"github.com/google/uuid"
)

type GuestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*GuestView, error)
	// Search matches name, document or email; after is the (full_name, id) keyset of the last row seen.
	Search(ctx context.Context, term string, after *GuestKey, limit int32) ([]*GuestView, error)
}

// GuestKey is the keyset position guest listings page by.
type GuestKey struct {
	FullName string
	ID       uuid.UUID
}

type GuestQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*GuestView, error)
	Search(ctx context.Context, term string, cursor *Cursor, limit int) ([]*GuestView, *Cursor, error)
}

type guestQueriesImpl struct {
	store GuestReadStore
}

func NewGuestQueries(store GuestReadStore) GuestQueries {
	return &guestQueriesImpl{store: store}
}

func (q *guestQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*GuestView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrGuestNotFound)
	}
	return v, nil
}

func (q *guestQueriesImpl) Search(ctx context.Context, term string, cursor *Cursor, limit int) ([]*GuestView, *Cursor, error) {
	limit = ValidateLimit(limit)

	var after *GuestKey
	if cursor != nil && cursor.After != "" {
		name, id, err := DecodeAfterCursor(cursor.After)
		if err != nil {
			return nil, nil, errs.Categorize(err, ErrInvalidCursor, errs.ErrValidation)
		}
		after = &GuestKey{FullName: name, ID: id}
	}

	// one extra row tells whether another page exists
	// #nosec G115 -- limit is capped by ValidateLimit
	rows, err := q.store.Search(ctx, term, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	if len(rows) <= limit {
		return rows, nil, nil
	}
	rows = rows[:limit]
	last := rows[limit-1]
	return rows, &Cursor{After: EncodeAfterCursor(last.FullName, last.ID)}, nil
}

