package commands

import (
	"context"
	"log/slog"

	"hostel-admin/internal/domain/user"
	reqdto "hostel-admin/internal/handler/dto/request"
	"hostel-admin/internal/pkg/password"
	"hostel-admin/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserCommands interface {
	Create(ctx context.Context, req reqdto.CreateUserRequest) (uuid.UUID, error)
}

type userCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewUserCommands(uow shared.UnitOfWork) UserCommands {
	return &userCommandsImpl{uow: uow}
}

func (u *userCommandsImpl) Create(ctx context.Context, req reqdto.CreateUserRequest) (uuid.UUID, error) {
	in, err := req.ToDomain()
	if err != nil {
		return uuid.Nil, invalid(err)
	}

	hash, err := password.HashPassword(in.Password.Value())
	if err != nil {
		return uuid.Nil, err
	}

	staff, err := user.NewUser(in.Email, hash, in.Role, in.FullName)
	if err != nil {
		return uuid.Nil, invalid(err)
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, staff)
	})
	if err != nil {
		return uuid.Nil, storeErr(err, ErrEmailTaken)
	}

	slog.Info("staff user created", "user_id", staff.ID(), "role", staff.Role().String())
	return staff.ID(), nil
}
