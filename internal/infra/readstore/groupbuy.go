package readstore

import (
	"context"

	"dungji-market/internal/domain/groupbuy"
	"dungji-market/internal/infra/db"
	"dungji-market/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type GroupBuyReadStore struct {
	db db.DBTX
}

func NewGroupBuyReadStore(d db.DBTX) queries.GroupBuyReadStore {
	return &GroupBuyReadStore{db: d}
}

const groupBuyViewColumns = `
	g.id, g.creator_id, g.title, g.description, g.product_name, g.product_type,
	g.starting_amount, g.min_participants, g.max_participants, g.current_participants,
	g.region, g.status, g.end_time, g.final_selection_end, g.seller_selection_end,
	g.selected_bid_id, g.cancel_reason, g.created_at`

func (s *GroupBuyReadStore) List(ctx context.Context, f queries.GroupBuyFilter) ([]queries.GroupBuyView, error) {
	sql := `SELECT ` + groupBuyViewColumns + `
		FROM group_buys g
		WHERE ($1 = '' OR g.status = $1)
		  AND ($2 = '' OR g.region = $2)
		ORDER BY g.created_at DESC
		LIMIT $3 OFFSET $4`

	rows, err := s.db.Query(ctx, sql, f.Status, f.Region, f.Limit, f.Offset)
	if err != nil {
		return nil, wrapErr("failed to list group buys", err)
	}
	return collectGroupBuyViews(rows)
}

func (s *GroupBuyReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.GroupBuyView, error) {
	sql := `SELECT ` + groupBuyViewColumns + ` FROM group_buys g WHERE g.id = $1`
	v, err := scanGroupBuyView(s.db.QueryRow(ctx, sql, id))
	if err != nil {
		return nil, wrapErr("failed to find group buy view", err)
	}
	return v, nil
}

func (s *GroupBuyReadStore) BidsByGroupBuy(ctx context.Context, groupBuyID uuid.UUID) ([]queries.BidRow, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, seller_id, amount, message, status, created_at
		 FROM bids WHERE group_buy_id = $1
		 ORDER BY amount, created_at`,
		groupBuyID,
	)
	if err != nil {
		return nil, wrapErr("failed to list bid rows", err)
	}
	defer rows.Close()

	var out []queries.BidRow
	for rows.Next() {
		var r queries.BidRow
		if err := rows.Scan(&r.ID, &r.SellerID, &r.Amount, &r.Message, &r.Status, &r.CreatedAt); err != nil {
			return nil, wrapErr("failed to scan bid row", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("failed to iterate bid rows", err)
	}
	return out, nil
}

func (s *GroupBuyReadStore) ListByParticipant(ctx context.Context, buyerID uuid.UUID) ([]queries.GroupBuyView, error) {
	sql := `SELECT ` + groupBuyViewColumns + `
		FROM group_buys g
		JOIN participations p ON p.group_buy_id = g.id
		WHERE p.buyer_id = $1 AND p.status = 'active'
		ORDER BY g.created_at DESC`

	rows, err := s.db.Query(ctx, sql, buyerID)
	if err != nil {
		return nil, wrapErr("failed to list joined group buys", err)
	}
	return collectGroupBuyViews(rows)
}

func (s *GroupBuyReadStore) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]queries.GroupBuyView, error) {
	sql := `SELECT DISTINCT ` + groupBuyViewColumns + `
		FROM group_buys g
		JOIN bids b ON b.group_buy_id = g.id
		WHERE b.seller_id = $1
		ORDER BY g.created_at DESC`

	rows, err := s.db.Query(ctx, sql, sellerID)
	if err != nil {
		return nil, wrapErr("failed to list bid-on group buys", err)
	}
	return collectGroupBuyViews(rows)
}

func collectGroupBuyViews(rows pgx.Rows) ([]queries.GroupBuyView, error) {
	defer rows.Close()

	var out []queries.GroupBuyView
	for rows.Next() {
		v, err := scanGroupBuyView(rows)
		if err != nil {
			return nil, wrapErr("failed to scan group buy view", err)
		}
		out = append(out, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("failed to iterate group buy views", err)
	}
	return out, nil
}

func scanGroupBuyView(row pgx.Row) (*queries.GroupBuyView, error) {
	var (
		v            queries.GroupBuyView
		cancelReason *string
	)
	err := row.Scan(
		&v.ID, &v.CreatorID, &v.Title, &v.Description, &v.ProductName, &v.ProductType,
		&v.StartingAmount, &v.MinParticipants, &v.MaxParticipants, &v.CurrentParticipants,
		&v.Region, &v.Status, &v.EndTime, &v.FinalSelectionEnd, &v.SellerSelectionEnd,
		&v.SelectedBidID, &cancelReason, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	// Legacy rows keep their historical status names in storage.
	v.Status = string(groupbuy.NormalizeStatus(v.Status))
	if cancelReason != nil {
		v.CancelReason = *cancelReason
	}
	return &v, nil
}
