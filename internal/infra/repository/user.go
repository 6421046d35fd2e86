package repository

import (
	"context"
	"time"

	"dungji-market/internal/domain/user"
	"dungji-market/internal/infra/db"
	"dungji-market/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(d db.DBTX) shared.UserRepository {
	return &UserRepository{db: d}
}

const insertUser = `
INSERT INTO users (id, email, nickname, password_hash, role, last_login, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())`

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx, insertUser,
		u.ID(), u.Email().Value(), u.Nickname(), u.PasswordHash(),
		string(u.Role()), u.LastLogin(), u.IsActive(),
	)
	if err != nil {
		return wrapErr("failed to insert user", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx,
		`SELECT id, email, nickname, password_hash, role, last_login, is_active, created_at, updated_at
		 FROM users WHERE email = $1 AND is_active = true`, email))
	if err != nil {
		return nil, wrapErr("failed to find user by email", err)
	}
	return u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx,
		`SELECT id, email, nickname, password_hash, role, last_login, is_active, created_at, updated_at
		 FROM users WHERE id = $1 AND is_active = true`, id))
	if err != nil {
		return nil, wrapErr("failed to find user by id", err)
	}
	return u, nil
}

func scanUser(row pgx.Row) (*user.User, error) {
	var (
		id                   uuid.UUID
		email, nickname      string
		passwordHash, role   string
		lastLogin            *time.Time
		isActive             bool
		createdAt, updatedAt time.Time
	)
	err := row.Scan(&id, &email, &nickname, &passwordHash, &role, &lastLogin, &isActive, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	em, err := user.NewEmail(email)
	if err != nil {
		return nil, err
	}
	return user.Reconstruct(id, em, nickname, passwordHash, user.Role(role), lastLogin, isActive, createdAt, updatedAt), nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID, now time.Time) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET last_login = $2, updated_at = $2 WHERE id = $1`,
		userID, now,
	)
	if err != nil {
		return wrapErr("failed to update last login", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound("user not found for last login update")
	}
	return nil
}
