package readstore

import (
	"context"

	"dungji-market/internal/infra/db"
	"dungji-market/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CustomDealReadStore struct {
	db db.DBTX
}

func NewCustomDealReadStore(d db.DBTX) queries.CustomDealReadStore {
	return &CustomDealReadStore{db: d}
}

const customDealViewColumns = `
	d.id, d.seller_id, d.title, d.description, d.kind, d.discount_type,
	d.discount_valid_days, d.target_participants, d.current_participants,
	d.allow_partial_sale, d.expires_at, d.seller_deadline, d.status, d.created_at`

func (s *CustomDealReadStore) List(ctx context.Context, f queries.CustomDealFilter) ([]queries.CustomDealView, error) {
	sql := `SELECT ` + customDealViewColumns + `
		FROM custom_deals d
		WHERE ($1 = '' OR d.status = $1)
		ORDER BY d.created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := s.db.Query(ctx, sql, f.Status, f.Limit, f.Offset)
	if err != nil {
		return nil, wrapErr("failed to list custom deals", err)
	}
	return collectCustomDealViews(rows)
}

func (s *CustomDealReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CustomDealView, error) {
	sql := `SELECT ` + customDealViewColumns + ` FROM custom_deals d WHERE d.id = $1`
	v, err := scanCustomDealView(s.db.QueryRow(ctx, sql, id))
	if err != nil {
		return nil, wrapErr("failed to find custom deal view", err)
	}
	return v, nil
}

const customSeatColumns = `p.deal_id, p.code, p.status, p.discount_link, p.discount_code, p.discount_valid_until, p.joined_at, p.redeemed_at`

func (s *CustomDealReadStore) SeatsByBuyer(ctx context.Context, buyerID uuid.UUID) ([]queries.CustomSeatView, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+customSeatColumns+`
		 FROM custom_participants p
		 WHERE p.buyer_id = $1
		 ORDER BY p.joined_at DESC`,
		buyerID,
	)
	if err != nil {
		return nil, wrapErr("failed to list seats", err)
	}
	defer rows.Close()

	var out []queries.CustomSeatView
	for rows.Next() {
		var v queries.CustomSeatView
		if err := rows.Scan(&v.DealID, &v.Code, &v.Status, &v.DiscountLink, &v.DiscountCode, &v.DiscountValidUntil, &v.JoinedAt, &v.RedeemedAt); err != nil {
			return nil, wrapErr("failed to scan seat", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("failed to iterate seats", err)
	}
	return out, nil
}

func (s *CustomDealReadStore) SeatByDealAndBuyer(ctx context.Context, dealID, buyerID uuid.UUID) (*queries.CustomSeatView, error) {
	var v queries.CustomSeatView
	err := s.db.QueryRow(ctx,
		`SELECT `+customSeatColumns+`
		 FROM custom_participants p
		 WHERE p.deal_id = $1 AND p.buyer_id = $2`,
		dealID, buyerID,
	).Scan(&v.DealID, &v.Code, &v.Status, &v.DiscountLink, &v.DiscountCode, &v.DiscountValidUntil, &v.JoinedAt, &v.RedeemedAt)
	if err != nil {
		return nil, wrapErr("failed to find seat", err)
	}
	return &v, nil
}

func (s *CustomDealReadStore) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]queries.CustomDealView, error) {
	sql := `SELECT ` + customDealViewColumns + `
		FROM custom_deals d
		WHERE d.seller_id = $1
		ORDER BY d.created_at DESC`

	rows, err := s.db.Query(ctx, sql, sellerID)
	if err != nil {
		return nil, wrapErr("failed to list seller custom deals", err)
	}
	return collectCustomDealViews(rows)
}

func collectCustomDealViews(rows pgx.Rows) ([]queries.CustomDealView, error) {
	defer rows.Close()

	var out []queries.CustomDealView
	for rows.Next() {
		v, err := scanCustomDealView(rows)
		if err != nil {
			return nil, wrapErr("failed to scan custom deal view", err)
		}
		out = append(out, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("failed to iterate custom deal views", err)
	}
	return out, nil
}

func scanCustomDealView(row pgx.Row) (*queries.CustomDealView, error) {
	var v queries.CustomDealView
	err := row.Scan(
		&v.ID, &v.SellerID, &v.Title, &v.Description, &v.Kind, &v.DiscountType,
		&v.DiscountValidDays, &v.TargetParticipants, &v.CurrentParticipants,
		&v.AllowPartialSale, &v.ExpiresAt, &v.SellerDeadline, &v.Status, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
