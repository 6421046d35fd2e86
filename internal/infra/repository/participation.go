package repository

import (
	"context"
	"time"

	"dungji-market/internal/domain/participation"
	"dungji-market/internal/infra/db"
	"dungji-market/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ParticipationRepository struct {
	db db.DBTX
}

func NewParticipationRepository(d db.DBTX) shared.ParticipationRepository {
	return &ParticipationRepository{db: d}
}

const insertParticipation = `
INSERT INTO participations (id, group_buy_id, buyer_id, status, decision, decided_at, joined_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

func (r *ParticipationRepository) Create(ctx context.Context, p *participation.Participation) error {
	_, err := r.db.Exec(ctx, insertParticipation,
		p.ID, p.GroupBuyID, p.BuyerID, string(p.Status), string(p.Decision), p.DecidedAt, p.JoinedAt,
	)
	if err != nil {
		return wrapErr("failed to insert participation", err)
	}
	return nil
}

const selectParticipationsByGroupBuy = `
SELECT id, group_buy_id, buyer_id, status, decision, decided_at, joined_at
FROM participations
WHERE group_buy_id = $1
ORDER BY joined_at`

func (r *ParticipationRepository) FindByGroupBuy(ctx context.Context, groupBuyID uuid.UUID) ([]*participation.Participation, error) {
	rows, err := r.db.Query(ctx, selectParticipationsByGroupBuy, groupBuyID)
	if err != nil {
		return nil, wrapErr("failed to list participations", err)
	}
	defer rows.Close()

	var parts []*participation.Participation
	for rows.Next() {
		p, err := scanParticipation(rows)
		if err != nil {
			return nil, wrapErr("failed to scan participation", err)
		}
		parts = append(parts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("failed to iterate participations", err)
	}
	return parts, nil
}

const selectActiveParticipation = `
SELECT id, group_buy_id, buyer_id, status, decision, decided_at, joined_at
FROM participations
WHERE group_buy_id = $1 AND buyer_id = $2 AND status = 'active'
FOR UPDATE`

func (r *ParticipationRepository) FindActiveByBuyer(ctx context.Context, groupBuyID, buyerID uuid.UUID) (*participation.Participation, error) {
	p, err := scanParticipation(r.db.QueryRow(ctx, selectActiveParticipation, groupBuyID, buyerID))
	if err != nil {
		return nil, wrapErr("failed to find active participation", err)
	}
	return p, nil
}

// existsActiveForProduct spans group purchases: one buyer may hold at most
// one live participation per product, regardless of which deal carries it.
const existsActiveForProduct = `
SELECT EXISTS (
	SELECT 1
	FROM participations p
	JOIN group_buys g ON g.id = p.group_buy_id
	WHERE p.buyer_id = $1
	  AND p.status = 'active'
	  AND g.product_name = $2
	  AND g.id <> $3
	  AND g.status NOT IN ('completed', 'cancelled')
)`

func (r *ParticipationRepository) ExistsActiveForProduct(ctx context.Context, buyerID uuid.UUID, productName string, excludeGroupBuyID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, existsActiveForProduct, buyerID, productName, excludeGroupBuyID).Scan(&exists)
	if err != nil {
		return false, wrapErr("failed to check product participation", err)
	}
	return exists, nil
}

func scanParticipation(row pgx.Row) (*participation.Participation, error) {
	var (
		p                participation.Participation
		status, decision string
	)
	err := row.Scan(&p.ID, &p.GroupBuyID, &p.BuyerID, &status, &decision, &p.DecidedAt, &p.JoinedAt)
	if err != nil {
		return nil, err
	}
	p.Status = participation.Status(status)
	p.Decision = participation.Decision(decision)
	return &p, nil
}

const updateParticipation = `
UPDATE participations
SET status = $2, decision = $3, decided_at = $4
WHERE id = $1`

func (r *ParticipationRepository) Save(ctx context.Context, p *participation.Participation) error {
	tag, err := r.db.Exec(ctx, updateParticipation,
		p.ID, string(p.Status), string(p.Decision), p.DecidedAt,
	)
	if err != nil {
		return wrapErr("failed to update participation", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound("participation not found for update")
	}
	return nil
}

const cancelPendingParticipations = `
UPDATE participations
SET status = 'cancelled', decision = 'cancelled', decided_at = $2
WHERE group_buy_id = $1 AND status = 'active' AND decision = 'pending'`

func (r *ParticipationRepository) CancelPending(ctx context.Context, groupBuyID uuid.UUID, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, cancelPendingParticipations, groupBuyID, now)
	if err != nil {
		return 0, wrapErr("failed to cancel pending participations", err)
	}
	return tag.RowsAffected(), nil
}
