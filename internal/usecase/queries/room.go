package queries

import (
	"context"

	"github.com/google/uuid"
)

type RoomFilter struct {
	Status          string
	RoomType        string
	IncludeArchived bool
}

type RoomReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	List(ctx context.Context, f RoomFilter) ([]*RoomView, error)
}

type RoomQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	List(ctx context.Context, f RoomFilter) ([]*RoomView, error)
}

type roomQueriesImpl struct {
	store RoomReadStore
}

func NewRoomQueries(store RoomReadStore) RoomQueries {
	return &roomQueriesImpl{store: store}
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrRoomNotFound)
	}
	return v, nil
}

func (q *roomQueriesImpl) List(ctx context.Context, f RoomFilter) ([]*RoomView, error) {
	return q.store.List(ctx, f)
}
