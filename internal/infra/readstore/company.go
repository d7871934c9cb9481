package readstore

import (
	"context"

	"hostel-admin/internal/infra"
	"hostel-admin/internal/infra/db"
	"hostel-admin/internal/pkg/pgconv"
	"hostel-admin/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const companyViewColumns = `id, name, tax_id, email, phone, discount_percent, payment_terms_days,
	is_active, created_at, updated_at`

type CompanyReadStore struct {
	db db.DBTX
}

func NewCompanyReadStore(db db.DBTX) *CompanyReadStore {
	return &CompanyReadStore{db: db}
}

func (s *CompanyReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CompanyView, error) {
	v, err := scanCompanyView(s.db.QueryRow(ctx, `SELECT `+companyViewColumns+` FROM companies WHERE id = $1`, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find company", err)
	}
	return v, nil
}

func (s *CompanyReadStore) List(ctx context.Context, term string, activeOnly bool) ([]*queries.CompanyView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+companyViewColumns+`
		FROM companies
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR tax_id ILIKE $1 || '%')
		  AND (NOT $2 OR is_active)
		ORDER BY name`,
		escapeLike(term), activeOnly,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list companies", err)
	}
	defer rows.Close()

	var out []*queries.CompanyView
	for rows.Next() {
		v, err := scanCompanyView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan company", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate companies", err)
	}
	return out, nil
}

func scanCompanyView(row pgx.Row) (*queries.CompanyView, error) {
	var (
		v        queries.CompanyView
		discount pgtype.Numeric
	)
	if err := row.Scan(&v.ID, &v.Name, &v.TaxID, &v.Email, &v.Phone, &discount, &v.PaymentTermsDays,
		&v.IsActive, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	pct, err := pgconv.DecimalFromPgtype(discount)
	if err != nil {
		return nil, err
	}
	v.DiscountPercent = pct
	return &v, nil
}
