package queries

import (
	"context"

	"github.com/google/uuid"
)

type CompanyReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CompanyView, error)
	List(ctx context.Context, term string, activeOnly bool) ([]*CompanyView, error)
}

type CompanyQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CompanyView, error)
	List(ctx context.Context, term string, activeOnly bool) ([]*CompanyView, error)
}

type companyQueriesImpl struct {
	store CompanyReadStore
}

func NewCompanyQueries(store CompanyReadStore) CompanyQueries {
	return &companyQueriesImpl{store: store}
}

func (q *companyQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CompanyView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrCompanyNotFound)
	}
	return v, nil
}

func (q *companyQueriesImpl) List(ctx context.Context, term string, activeOnly bool) ([]*CompanyView, error) {
	return q.store.List(ctx, term, activeOnly)
}
