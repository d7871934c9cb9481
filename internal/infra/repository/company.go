package repository

import (
	"context"
	"time"

	"hostel-admin/internal/domain/company"
	"hostel-admin/internal/infra"
	"hostel-admin/internal/infra/db"
	"hostel-admin/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const companyColumns = `id, name, tax_id, email, phone, discount_percent, payment_terms_days,
	is_active, created_at, updated_at`

type CompanyRepository struct {
	db db.DBTX
}

func NewCompanyRepository(db db.DBTX) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*company.Company, error) {
	c, err := scanCompany(r.db.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find company", err)
	}
	return c, nil
}

func (r *CompanyRepository) Create(ctx context.Context, c *company.Company) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO companies (id, name, tax_id, email, phone, discount_percent, payment_terms_days, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID(), c.Name(), c.TaxID(), c.Email(), c.Phone(),
		pgconv.DecimalToPgtype(c.Terms().DiscountPercent), c.Terms().PaymentTermsDays, c.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create company", err)
	}
	return nil
}

func (r *CompanyRepository) Update(ctx context.Context, c *company.Company) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE companies SET name = $2, tax_id = $3, email = $4, phone = $5, discount_percent = $6,
			payment_terms_days = $7, is_active = $8, updated_at = now()
		WHERE id = $1`,
		c.ID(), c.Name(), c.TaxID(), c.Email(), c.Phone(),
		pgconv.DecimalToPgtype(c.Terms().DiscountPercent), c.Terms().PaymentTermsDays, c.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update company", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("company not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanCompany(row pgx.Row) (*company.Company, error) {
	var (
		id                   uuid.UUID
		p                    company.Profile
		discount             pgtype.Numeric
		isActive             bool
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &p.Name, &p.TaxID, &p.Email, &p.Phone, &discount, &p.Terms.PaymentTermsDays,
		&isActive, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	pct, err := pgconv.DecimalFromPgtype(discount)
	if err != nil {
		return nil, err
	}
	p.Terms.DiscountPercent = pct
	return company.ReconstructCompany(id, p, isActive, createdAt, updatedAt), nil
}
