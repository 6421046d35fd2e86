package user

import (
	"time"

	"github.com/google/uuid"
)

// User entity. Buyers join group purchases, sellers place bids, admins
// moderate no-show reports.
type User struct {
	id           uuid.UUID
	email        Email
	nickname     string
	passwordHash string
	role         Role
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email Email, nickname, passwordHash string, role Role) (*User, error) {
	if nickname == "" {
		return nil, ErrEmptyNickname
	}
	return &User{
		id:           uuid.New(),
		email:        email,
		nickname:     nickname,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
	}, nil
}

// Reconstruct rebuilds a User from persisted state without validation.
func Reconstruct(
	id uuid.UUID,
	email Email,
	nickname string,
	passwordHash string,
	role Role,
	lastLogin *time.Time,
	isActive bool,
	createdAt time.Time,
	updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		email:        email,
		nickname:     nickname,
		passwordHash: passwordHash,
		role:         role,
		lastLogin:    lastLogin,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Email() Email          { return u.email }
func (u *User) Nickname() string      { return u.nickname }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Role() Role            { return u.role }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }

func (u *User) IsSeller() bool { return u.role == RoleSeller }
func (u *User) IsAdmin() bool  { return u.role == RoleAdmin }
