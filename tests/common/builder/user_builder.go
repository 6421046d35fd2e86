//go:build unit || e2e

package builder

import (
	"time"

	"dungji-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID       uuid.UUID
	Email    string
	Nickname string
	Role     string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:       uuid.New(),
		Email:    "buyer@example.com",
		Nickname: "둥지버이어",
		Role:     "buyer",
	}
}

func (u *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) BuildReadModel() *queries.UserView {
	return &queries.UserView{
		ID:        u.ID,
		Email:     u.Email,
		Nickname:  u.Nickname,
		Role:      u.Role,
		CreatedAt: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}
