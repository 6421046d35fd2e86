package queries

import (
	"context"
	"time"

	"dungji-market/internal/infra"
	"dungji-market/internal/pkg/errs"

	"github.com/google/uuid"
)

type NoShowReportView struct {
	ID          uuid.UUID  `json:"id"`
	GroupBuyID  uuid.UUID  `json:"groupbuy_id"`
	ReporterID  uuid.UUID  `json:"reporter_id"`
	ReportedID  uuid.UUID  `json:"reported_id"`
	Type        string     `json:"type"`
	Content     string     `json:"content"`
	Status      string     `json:"status"`
	EditCount   int        `json:"edit_count"`
	AdminNote   string     `json:"admin_note,omitempty"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type NoShowReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*NoShowReportView, error)
	ListByReporter(ctx context.Context, reporterID uuid.UUID) ([]NoShowReportView, error)
	ListPending(ctx context.Context, limit int) ([]NoShowReportView, error)
}

type NoShowQueries interface {
	Get(ctx context.Context, id, viewerID uuid.UUID, isAdmin bool) (*NoShowReportView, error)
	MyReports(ctx context.Context, reporterID uuid.UUID) ([]NoShowReportView, error)
	PendingReports(ctx context.Context, limit int) ([]NoShowReportView, error)
}

type noShowQueriesImpl struct {
	store NoShowReadStore
}

func NewNoShowQueries(store NoShowReadStore) NoShowQueries {
	return &noShowQueriesImpl{store: store}
}

func (q *noShowQueriesImpl) Get(ctx context.Context, id, viewerID uuid.UUID, isAdmin bool) (*NoShowReportView, error) {
	r, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrNoShowReportNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	// Reports are visible to their parties and to admins only.
	if !isAdmin && r.ReporterID != viewerID && r.ReportedID != viewerID {
		return nil, errs.ErrNoShowReportNotFound
	}
	return r, nil
}

func (q *noShowQueriesImpl) MyReports(ctx context.Context, reporterID uuid.UUID) ([]NoShowReportView, error) {
	reports, err := q.store.ListByReporter(ctx, reporterID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return reports, nil
}

func (q *noShowQueriesImpl) PendingReports(ctx context.Context, limit int) ([]NoShowReportView, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	reports, err := q.store.ListPending(ctx, limit)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return reports, nil
}
