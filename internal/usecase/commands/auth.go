package commands

import (
	"context"

	"dungji-market/internal/domain/auth"
	"dungji-market/internal/domain/user"
	"dungji-market/internal/infra"
	"dungji-market/internal/pkg/clock"
	"dungji-market/internal/pkg/errs"
	"dungji-market/internal/pkg/jwt"
	"dungji-market/internal/pkg/password"
	"dungji-market/internal/usecase/shared"

	"github.com/google/uuid"
)

type RegisterInput struct {
	Email    string
	Nickname string
	Password string
	Role     string
}

type LoginResult struct {
	Token    string
	UserID   uuid.UUID
	Nickname string
	Role     string
}

type AuthCommands interface {
	Register(ctx context.Context, input RegisterInput) (uuid.UUID, error)
	Login(ctx context.Context, email, plainPassword string) (LoginResult, error)
}

type authCommandsImpl struct {
	uow   shared.UnitOfWork
	jwt   *jwt.Service
	clock clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{uow: uow, jwt: jwtService, clock: clk}
}

func (c *authCommandsImpl) Register(ctx context.Context, input RegisterInput) (uuid.UUID, error) {
	email, err := user.NewEmail(input.Email)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if _, err := user.NewPassword(input.Password); err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	role, err := user.NewRole(input.Role)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if role == user.RoleAdmin {
		// Admin accounts are provisioned out of band.
		return uuid.Nil, errs.Mark(user.ErrInvalidRole, errs.ErrInvalidRole)
	}

	hash, err := password.HashPassword(input.Password)
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "hash password")
	}
	u, err := user.NewUser(email, input.Nickname, hash, role)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().Create(ctx, u); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, auth.ErrEmailTaken)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return u.ID(), nil
}

func (c *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (LoginResult, error) {
	now := c.clock.Now()
	var result LoginResult

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindByEmail(ctx, email)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, auth.ErrInvalidCredentials)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !u.IsActive() {
			return auth.ErrInvalidCredentials
		}
		if err := password.ComparePassword(u.PasswordHash(), plainPassword); err != nil {
			return errs.Mark(err, auth.ErrInvalidCredentials)
		}

		tokenString, err := c.jwt.GenerateToken(u.ID(), u.Role())
		if err != nil {
			return errs.Wrap(err, "generate token")
		}
		result = LoginResult{
			Token:    tokenString,
			UserID:   u.ID(),
			Nickname: u.Nickname(),
			Role:     u.Role().String(),
		}
		return tx.Users().UpdateLastLogin(ctx, u.ID(), now)
	})
	if err != nil {
		return LoginResult{}, err
	}
	return result, nil
}
