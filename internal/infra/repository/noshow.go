package repository

import (
	"context"

	"dungji-market/internal/domain/noshow"
	"dungji-market/internal/infra/db"
	"dungji-market/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type NoShowReportRepository struct {
	db db.DBTX
}

func NewNoShowReportRepository(d db.DBTX) shared.NoShowReportRepository {
	return &NoShowReportRepository{db: d}
}

const insertNoShowReport = `
INSERT INTO noshow_reports (
	id, group_buy_id, reporter_id, reported_id, type, content,
	status, edit_count, admin_note, processed_at, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

func (r *NoShowReportRepository) Create(ctx context.Context, rep *noshow.Report) error {
	_, err := r.db.Exec(ctx, insertNoShowReport,
		rep.ID, rep.GroupBuyID, rep.ReporterID, rep.ReportedID,
		string(rep.Type), rep.Content, string(rep.Status),
		rep.EditCount, rep.AdminNote, rep.ProcessedAt, rep.CreatedAt, rep.UpdatedAt,
	)
	if err != nil {
		return wrapErr("failed to insert no-show report", err)
	}
	return nil
}

const selectNoShowReport = `
SELECT id, group_buy_id, reporter_id, reported_id, type, content,
       status, edit_count, admin_note, processed_at, created_at, updated_at
FROM noshow_reports
WHERE id = $1
FOR UPDATE`

func (r *NoShowReportRepository) FindByID(ctx context.Context, id uuid.UUID) (*noshow.Report, error) {
	rep, err := scanNoShowReport(r.db.QueryRow(ctx, selectNoShowReport, id))
	if err != nil {
		return nil, wrapErr("failed to find no-show report", err)
	}
	return rep, nil
}

func scanNoShowReport(row pgx.Row) (*noshow.Report, error) {
	var (
		rep         noshow.Report
		typ, status string
	)
	err := row.Scan(
		&rep.ID, &rep.GroupBuyID, &rep.ReporterID, &rep.ReportedID,
		&typ, &rep.Content, &status, &rep.EditCount, &rep.AdminNote,
		&rep.ProcessedAt, &rep.CreatedAt, &rep.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	rep.Type = noshow.ReportType(typ)
	rep.Status = noshow.Status(status)
	return &rep, nil
}

const updateNoShowReport = `
UPDATE noshow_reports
SET content = $2, status = $3, edit_count = $4, admin_note = $5, processed_at = $6, updated_at = now()
WHERE id = $1`

func (r *NoShowReportRepository) Save(ctx context.Context, rep *noshow.Report) error {
	tag, err := r.db.Exec(ctx, updateNoShowReport,
		rep.ID, rep.Content, string(rep.Status), rep.EditCount, rep.AdminNote, rep.ProcessedAt,
	)
	if err != nil {
		return wrapErr("failed to update no-show report", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound("no-show report not found for update")
	}
	return nil
}

// Exists only counts live reports so a withdrawn one can be refiled.
func (r *NoShowReportRepository) Exists(ctx context.Context, groupBuyID, reporterID, reportedID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM noshow_reports
			WHERE group_buy_id = $1 AND reporter_id = $2 AND reported_id = $3 AND status <> 'cancelled'
		)`,
		groupBuyID, reporterID, reportedID,
	).Scan(&exists)
	if err != nil {
		return false, wrapErr("failed to check no-show report", err)
	}
	return exists, nil
}

func (r *NoShowReportRepository) CountConfirmedByGroupBuy(ctx context.Context, groupBuyID uuid.UUID, typ noshow.ReportType) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(DISTINCT reported_id) FROM noshow_reports
		 WHERE group_buy_id = $1 AND type = $2 AND status = 'completed'`,
		groupBuyID, string(typ),
	).Scan(&count)
	if err != nil {
		return 0, wrapErr("failed to count confirmed no-show reports", err)
	}
	return count, nil
}
