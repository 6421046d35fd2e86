package shared

import (
	"context"
	"time"

	"dungji-market/internal/domain/bid"
	"dungji-market/internal/domain/customdeal"
	"dungji-market/internal/domain/groupbuy"
	"dungji-market/internal/domain/noshow"
	"dungji-market/internal/domain/participation"
	"dungji-market/internal/domain/penalty"
	"dungji-market/internal/domain/token"
	"dungji-market/internal/domain/user"
	"dungji-market/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, d db.DBTX) error) error
}

type Tx interface {
	GroupBuys() GroupBuyRepository
	Bids() BidRepository
	Participations() ParticipationRepository
	Tokens() TokenRepository
	Penalties() PenaltyRepository
	CustomDeals() CustomDealRepository
	CustomParticipants() CustomParticipantRepository
	DiscountCodes() DiscountCodeRepository
	NoShowReports() NoShowReportRepository
	Users() UserRepository
	Notifications() NotificationRepository
	DB() db.DBTX
}

type GroupBuyRepository interface {
	Create(ctx context.Context, g *groupbuy.GroupBuy) error
	// FindByIDForUpdate locks the row for the rest of the transaction.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*groupbuy.GroupBuy, error)
	// ApplyEffect persists a transition effect on the groupbuy row itself.
	ApplyEffect(ctx context.Context, id uuid.UUID, eff *groupbuy.Effect, now time.Time) error
	SetParticipantCount(ctx context.Context, id uuid.UUID, count int) error
	IncrementParticipants(ctx context.Context, id uuid.UUID, delta int) error
	// DueForEvaluation returns ids of open deals whose next deadline passed.
	DueForEvaluation(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error)
	// ReconcileParticipantCounts recomputes cached counters from the
	// participations table and returns how many rows were corrected.
	ReconcileParticipantCounts(ctx context.Context) (int64, error)
}

type BidRepository interface {
	Create(ctx context.Context, b *bid.Bid) error
	FindByID(ctx context.Context, id uuid.UUID) (*bid.Bid, error)
	FindByGroupBuy(ctx context.Context, groupBuyID uuid.UUID) ([]*bid.Bid, error)
	// FindPendingBySeller locks the seller's open bid on the groupbuy,
	// if any, so a re-bid updates it in place.
	FindPendingBySeller(ctx context.Context, groupBuyID, sellerID uuid.UUID) (*bid.Bid, error)
	Save(ctx context.Context, b *bid.Bid) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status bid.Status, now time.Time) error
	UpdateStatusBatch(ctx context.Context, ids []uuid.UUID, status bid.Status, now time.Time) error
}

type ParticipationRepository interface {
	Create(ctx context.Context, p *participation.Participation) error
	FindByGroupBuy(ctx context.Context, groupBuyID uuid.UUID) ([]*participation.Participation, error)
	FindActiveByBuyer(ctx context.Context, groupBuyID, buyerID uuid.UUID) (*participation.Participation, error)
	Save(ctx context.Context, p *participation.Participation) error
	// CancelPending force-cancels participants that never answered.
	CancelPending(ctx context.Context, groupBuyID uuid.UUID, now time.Time) (int64, error)
	// ExistsActiveForProduct reports whether the buyer already holds a
	// seat in another open group-buy for the same product.
	ExistsActiveForProduct(ctx context.Context, buyerID uuid.UUID, productName string, excludeGroupBuyID uuid.UUID) (bool, error)
}

type TokenRepository interface {
	// ClaimActive locks and returns a usable token for the seller, preferring
	// unlimited tokens so single-use ones are kept in reserve.
	ClaimActive(ctx context.Context, sellerID uuid.UUID, now time.Time) (*token.BidToken, error)
	CreateBatch(ctx context.Context, tokens []*token.BidToken) error
	Save(ctx context.Context, t *token.BidToken) error
	FindUsedByBid(ctx context.Context, bidID uuid.UUID) (*token.BidToken, error)
	ExpireDue(ctx context.Context, now time.Time) (int64, error)
}

type PenaltyRepository interface {
	Create(ctx context.Context, p *penalty.Penalty) error
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
	FindActiveByUser(ctx context.Context, userID uuid.UUID, now time.Time) (*penalty.Penalty, error)
}

type CustomDealRepository interface {
	Create(ctx context.Context, d *customdeal.CustomDeal) error
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*customdeal.CustomDeal, error)
	Save(ctx context.Context, d *customdeal.CustomDeal) error
	DueForExpiry(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error)
}

type CustomParticipantRepository interface {
	Create(ctx context.Context, p *CustomParticipant) error
	FindByDeal(ctx context.Context, dealID uuid.UUID) ([]*CustomParticipant, error)
	Exists(ctx context.Context, dealID, buyerID uuid.UUID) (bool, error)
	AttachDiscount(ctx context.Context, participantID uuid.UUID, link, code string, validUntil *time.Time) error
	// CancelByDeal marks every confirmed seat on the deal cancelled and
	// reports how many rows changed.
	CancelByDeal(ctx context.Context, dealID uuid.UUID) (int64, error)
	// MarkRedeemed stamps the seat matching (deal, code) as redeemed.
	// KindNotFound means no such code; KindDuplicateKey means it was
	// already stamped.
	MarkRedeemed(ctx context.Context, dealID uuid.UUID, code string, now time.Time) error
}

type DiscountCodeRepository interface {
	CreateBatch(ctx context.Context, dealID uuid.UUID, codes []string) error
	// ClaimUnassigned locks and returns one unassigned code, or
	// errs.ErrDiscountPoolExhausted when the pool is empty.
	ClaimUnassigned(ctx context.Context, dealID, participantID uuid.UUID) (string, error)
}

type NoShowReportRepository interface {
	Create(ctx context.Context, r *noshow.Report) error
	FindByID(ctx context.Context, id uuid.UUID) (*noshow.Report, error)
	Save(ctx context.Context, r *noshow.Report) error
	Exists(ctx context.Context, groupBuyID, reporterID, reportedID uuid.UUID) (bool, error)
	CountConfirmedByGroupBuy(ctx context.Context, groupBuyID uuid.UUID, typ noshow.ReportType) (int, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	UpdateLastLogin(ctx context.Context, userID uuid.UUID, now time.Time) error
}

type NotificationRepository interface {
	Create(ctx context.Context, n *Notification) error
}
