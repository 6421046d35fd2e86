package queries

import (
	"context"
	"time"

	"dungji-market/internal/infra"
	"dungji-market/internal/pkg/errs"

	"github.com/google/uuid"
)

type UserView struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	Nickname     string     `json:"nickname"`
	Role         string     `json:"role"`
	PenaltyUntil *time.Time `json:"penalty_until,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type NotificationView struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID, now time.Time) (*UserView, error)
	NotificationsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]NotificationView, error)
}

type UserQueries interface {
	Me(ctx context.Context, userID uuid.UUID, now time.Time) (*UserView, error)
	MyNotifications(ctx context.Context, userID uuid.UUID, limit int) ([]NotificationView, error)
}

type userQueriesImpl struct {
	store UserReadStore
}

func NewUserQueries(store UserReadStore) UserQueries {
	return &userQueriesImpl{store: store}
}

func (q *userQueriesImpl) Me(ctx context.Context, userID uuid.UUID, now time.Time) (*UserView, error) {
	u, err := q.store.FindByID(ctx, userID, now)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUserNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return u, nil
}

func (q *userQueriesImpl) MyNotifications(ctx context.Context, userID uuid.UUID, limit int) ([]NotificationView, error) {
	if limit <= 0 || limit > 100 {
		limit = 30
	}
	items, err := q.store.NotificationsByUser(ctx, userID, limit)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}
