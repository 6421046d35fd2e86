package readstore

import (
	"context"

	"dungji-market/internal/infra/db"
	"dungji-market/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type NoShowReadStore struct {
	db db.DBTX
}

func NewNoShowReadStore(d db.DBTX) queries.NoShowReadStore {
	return &NoShowReadStore{db: d}
}

const noShowViewColumns = `
	id, group_buy_id, reporter_id, reported_id, type, content,
	status, edit_count, admin_note, processed_at, created_at`

func (s *NoShowReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.NoShowReportView, error) {
	v, err := scanNoShowView(s.db.QueryRow(ctx,
		`SELECT `+noShowViewColumns+` FROM noshow_reports WHERE id = $1`, id))
	if err != nil {
		return nil, wrapErr("failed to find no-show report view", err)
	}
	return v, nil
}

func (s *NoShowReadStore) ListByReporter(ctx context.Context, reporterID uuid.UUID) ([]queries.NoShowReportView, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+noShowViewColumns+`
		 FROM noshow_reports
		 WHERE reporter_id = $1
		 ORDER BY created_at DESC`,
		reporterID,
	)
	if err != nil {
		return nil, wrapErr("failed to list reporter no-show reports", err)
	}
	return collectNoShowViews(rows)
}

func (s *NoShowReadStore) ListPending(ctx context.Context, limit int) ([]queries.NoShowReportView, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+noShowViewColumns+`
		 FROM noshow_reports
		 WHERE status = 'pending'
		 ORDER BY created_at
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, wrapErr("failed to list pending no-show reports", err)
	}
	return collectNoShowViews(rows)
}

func collectNoShowViews(rows pgx.Rows) ([]queries.NoShowReportView, error) {
	defer rows.Close()

	var out []queries.NoShowReportView
	for rows.Next() {
		v, err := scanNoShowView(rows)
		if err != nil {
			return nil, wrapErr("failed to scan no-show report view", err)
		}
		out = append(out, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("failed to iterate no-show report views", err)
	}
	return out, nil
}

func scanNoShowView(row pgx.Row) (*queries.NoShowReportView, error) {
	var v queries.NoShowReportView
	err := row.Scan(
		&v.ID, &v.GroupBuyID, &v.ReporterID, &v.ReportedID, &v.Type, &v.Content,
		&v.Status, &v.EditCount, &v.AdminNote, &v.ProcessedAt, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
