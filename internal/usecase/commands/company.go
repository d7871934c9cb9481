package commands

import (
	"context"

	"hostel-admin/internal/domain/company"
	reqdto "hostel-admin/internal/handler/dto/request"
	"hostel-admin/internal/usecase/queries"
	"hostel-admin/internal/usecase/shared"

	"github.com/google/uuid"
)

type CompanyCommands interface {
	Create(ctx context.Context, req reqdto.CompanyRequest) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.CompanyRequest) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type companyCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewCompanyCommands(uow shared.UnitOfWork) CompanyCommands {
	return &companyCommandsImpl{uow: uow}
}

func (c *companyCommandsImpl) Create(ctx context.Context, req reqdto.CompanyRequest) (uuid.UUID, error) {
	co, err := company.NewCompany(req.ToDomain())
	if err != nil {
		return uuid.Nil, invalid(err)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Companies().Create(ctx, co)
	})
	if err != nil {
		return uuid.Nil, storeErr(err, ErrCompanyNameTaken)
	}
	return co.ID(), nil
}

func (c *companyCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.CompanyRequest) error {
	profile := req.ToDomain()
	return c.modify(ctx, id, func(co *company.Company) error {
		return co.Update(profile)
	})
}

func (c *companyCommandsImpl) Deactivate(ctx context.Context, id uuid.UUID) error {
	return c.modify(ctx, id, func(co *company.Company) error {
		co.Deactivate()
		return nil
	})
}

func (c *companyCommandsImpl) modify(ctx context.Context, id uuid.UUID, change func(co *company.Company) error) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		co, err := tx.Companies().FindByID(ctx, id)
		if err != nil {
			return notFoundAs(err, queries.ErrCompanyNotFound)
		}
		if err := change(co); err != nil {
			return invalid(err)
		}
		return tx.Companies().Update(ctx, co)
	})
	return storeErr(err, ErrCompanyNameTaken)
}
