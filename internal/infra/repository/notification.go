package repository

import (
	"context"

	"dungji-market/internal/infra/db"
	"dungji-market/internal/usecase/shared"
)

type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(d db.DBTX) shared.NotificationRepository {
	return &NotificationRepository{db: d}
}

const insertNotification = `
INSERT INTO notifications (id, user_id, kind, title, body, read, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

func (r *NotificationRepository) Create(ctx context.Context, n *shared.Notification) error {
	_, err := r.db.Exec(ctx, insertNotification,
		n.ID, n.UserID, n.Kind, n.Title, n.Body, n.Read, n.CreatedAt,
	)
	if err != nil {
		return wrapErr("failed to insert notification", err)
	}
	return nil
}
