package commands

import (
	"context"
	"log/slog"
	"time"

	"hostel-admin/internal/domain/user"
	reqdto "hostel-admin/internal/handler/dto/request"
	"hostel-admin/internal/infra"
	"hostel-admin/internal/pkg/errs"
	"hostel-admin/internal/pkg/password"
	"hostel-admin/internal/usecase/queries"
	"hostel-admin/internal/usecase/shared"
)

type LoginResult struct {
	Token     string
	ExpiresIn time.Duration
	User      *queries.AuthorizedUserView
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow    shared.UnitOfWork
	tokens TokenIssuer
}

func NewAuthCommands(uow shared.UnitOfWork, tokens TokenIssuer) AuthCommands {
	return &authCommandsImpl{
		uow:    uow,
		tokens: tokens,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Categorize(err, ErrInvalidCredentials, errs.ErrUnauthorized)
	}

	var staff *user.User
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, findErr := tx.Users().FindByEmail(ctx, credentials.Email())
		if findErr != nil {
			return findErr
		}
		staff = found
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// same answer as a wrong password so accounts cannot be enumerated
			return nil, errs.Mark(ErrInvalidCredentials, errs.ErrUnauthorized)
		}
		return nil, err
	}

	if password.ComparePassword(staff.PasswordHash(), credentials.Password()) != nil {
		return nil, errs.Mark(ErrInvalidCredentials, errs.ErrUnauthorized)
	}
	if !staff.IsActive() {
		return nil, errs.Mark(ErrUserInactive, errs.ErrForbidden)
	}

	token, err := a.tokens.GenerateToken(staff.ID(), staff.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	now := time.Now()
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, staff.ID())
	})
	if err != nil {
		slog.Warn("failed to update last login", "user_id", staff.ID(), "error", err.Error())
	}

	return &LoginResult{
		Token:     token,
		ExpiresIn: a.tokens.TokenDuration(),
		User: &queries.AuthorizedUserView{
			ID:        staff.ID(),
			Email:     staff.Email().Value(),
			Role:      staff.Role().String(),
			FullName:  staff.FullName(),
			LastLogin: &now,
			IsActive:  staff.IsActive(),
		},
	}, nil
}
