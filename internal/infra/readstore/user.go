package readstore

import (
	"context"
	"time"

	"dungji-market/internal/infra/db"
	"dungji-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(d db.DBTX) queries.UserReadStore {
	return &UserReadStore{db: d}
}

const selectUserView = `
SELECT u.id, u.email, u.nickname, u.role, u.created_at,
       (SELECT MAX(p.end_at) FROM penalties p
        WHERE p.user_id = u.id AND p.start_at <= $2 AND p.end_at > $2)
FROM users u
WHERE u.id = $1 AND u.is_active = true`

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID, now time.Time) (*queries.UserView, error) {
	var v queries.UserView
	err := s.db.QueryRow(ctx, selectUserView, id, now).
		Scan(&v.ID, &v.Email, &v.Nickname, &v.Role, &v.CreatedAt, &v.PenaltyUntil)
	if err != nil {
		return nil, wrapErr("failed to find user view", err)
	}
	return &v, nil
}

func (s *UserReadStore) NotificationsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]queries.NotificationView, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, kind, title, body, read, created_at
		 FROM notifications
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, wrapErr("failed to list notifications", err)
	}
	defer rows.Close()

	var out []queries.NotificationView
	for rows.Next() {
		var v queries.NotificationView
		if err := rows.Scan(&v.ID, &v.Kind, &v.Title, &v.Body, &v.Read, &v.CreatedAt); err != nil {
			return nil, wrapErr("failed to scan notification", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("failed to iterate notifications", err)
	}
	return out, nil
}
