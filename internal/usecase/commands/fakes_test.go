//go:build unit

package commands

import (
	"context"
	"time"

	"dungji-market/internal/domain/customdeal"
	"dungji-market/internal/domain/groupbuy"
	"dungji-market/internal/domain/participation"
	"dungji-market/internal/domain/penalty"
	"dungji-market/internal/infra/db"
	"dungji-market/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeUOW runs the closure against a hand-wired Tx. No real transaction
// exists, so tests assert on the returned error to cover rollback paths.
type fakeUOW struct {
	tx shared.Tx
}

func (u *fakeUOW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *fakeUOW) WithDB(ctx context.Context, fn func(ctx context.Context, d db.DBTX) error) error {
	return fn(ctx, nil)
}

// fakeTx hands out whichever repositories the test wired; touching an
// unwired one panics, which is the test's way of flagging an unexpected
// dependency.
type fakeTx struct {
	groupBuys          shared.GroupBuyRepository
	bids               shared.BidRepository
	participations     shared.ParticipationRepository
	penalties          shared.PenaltyRepository
	customDeals        shared.CustomDealRepository
	customParticipants shared.CustomParticipantRepository
	discountCodes      shared.DiscountCodeRepository
}

func (t *fakeTx) GroupBuys() shared.GroupBuyRepository                   { return t.groupBuys }
func (t *fakeTx) Bids() shared.BidRepository                             { return t.bids }
func (t *fakeTx) Participations() shared.ParticipationRepository         { return t.participations }
func (t *fakeTx) Tokens() shared.TokenRepository                         { panic("tokens not wired") }
func (t *fakeTx) Penalties() shared.PenaltyRepository                    { return t.penalties }
func (t *fakeTx) CustomDeals() shared.CustomDealRepository               { return t.customDeals }
func (t *fakeTx) CustomParticipants() shared.CustomParticipantRepository { return t.customParticipants }
func (t *fakeTx) DiscountCodes() shared.DiscountCodeRepository           { return t.discountCodes }
func (t *fakeTx) NoShowReports() shared.NoShowReportRepository           { panic("noshow not wired") }
func (t *fakeTx) Users() shared.UserRepository                           { panic("users not wired") }
func (t *fakeTx) Notifications() shared.NotificationRepository           { panic("notifications not wired") }
func (t *fakeTx) DB() db.DBTX                                            { return nil }

type fakeGroupBuyRepo struct {
	findByIDForUpdate     func(ctx context.Context, id uuid.UUID) (*groupbuy.GroupBuy, error)
	incrementParticipants func(ctx context.Context, id uuid.UUID, delta int) error
}

func (r *fakeGroupBuyRepo) Create(context.Context, *groupbuy.GroupBuy) error {
	panic("Create not wired")
}

func (r *fakeGroupBuyRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*groupbuy.GroupBuy, error) {
	return r.findByIDForUpdate(ctx, id)
}

func (r *fakeGroupBuyRepo) ApplyEffect(context.Context, uuid.UUID, *groupbuy.Effect, time.Time) error {
	panic("ApplyEffect not wired")
}

func (r *fakeGroupBuyRepo) SetParticipantCount(context.Context, uuid.UUID, int) error {
	panic("SetParticipantCount not wired")
}

func (r *fakeGroupBuyRepo) IncrementParticipants(ctx context.Context, id uuid.UUID, delta int) error {
	return r.incrementParticipants(ctx, id, delta)
}

func (r *fakeGroupBuyRepo) DueForEvaluation(context.Context, time.Time, int) ([]uuid.UUID, error) {
	panic("DueForEvaluation not wired")
}

func (r *fakeGroupBuyRepo) ReconcileParticipantCounts(context.Context) (int64, error) {
	panic("ReconcileParticipantCounts not wired")
}

type fakeParticipationRepo struct {
	create                 func(ctx context.Context, p *participation.Participation) error
	existsActiveForProduct func(ctx context.Context, buyerID uuid.UUID, productName string, excludeGroupBuyID uuid.UUID) (bool, error)
}

func (r *fakeParticipationRepo) Create(ctx context.Context, p *participation.Participation) error {
	return r.create(ctx, p)
}

func (r *fakeParticipationRepo) FindByGroupBuy(context.Context, uuid.UUID) ([]*participation.Participation, error) {
	panic("FindByGroupBuy not wired")
}

func (r *fakeParticipationRepo) FindActiveByBuyer(context.Context, uuid.UUID, uuid.UUID) (*participation.Participation, error) {
	panic("FindActiveByBuyer not wired")
}

func (r *fakeParticipationRepo) Save(context.Context, *participation.Participation) error {
	panic("Save not wired")
}

func (r *fakeParticipationRepo) CancelPending(context.Context, uuid.UUID, time.Time) (int64, error) {
	panic("CancelPending not wired")
}

func (r *fakeParticipationRepo) ExistsActiveForProduct(ctx context.Context, buyerID uuid.UUID, productName string, excludeGroupBuyID uuid.UUID) (bool, error) {
	return r.existsActiveForProduct(ctx, buyerID, productName, excludeGroupBuyID)
}

type fakePenaltyRepo struct {
	findActiveByUser func(ctx context.Context, userID uuid.UUID, now time.Time) (*penalty.Penalty, error)
}

func (r *fakePenaltyRepo) Create(context.Context, *penalty.Penalty) error { panic("Create not wired") }

func (r *fakePenaltyRepo) CountByUser(context.Context, uuid.UUID) (int, error) {
	panic("CountByUser not wired")
}

func (r *fakePenaltyRepo) FindActiveByUser(ctx context.Context, userID uuid.UUID, now time.Time) (*penalty.Penalty, error) {
	return r.findActiveByUser(ctx, userID, now)
}

type fakeCustomDealRepo struct {
	findByIDForUpdate func(ctx context.Context, id uuid.UUID) (*customdeal.CustomDeal, error)
	save              func(ctx context.Context, d *customdeal.CustomDeal) error
	dueForExpiry      func(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error)
}

func (r *fakeCustomDealRepo) Create(context.Context, *customdeal.CustomDeal) error {
	panic("Create not wired")
}

func (r *fakeCustomDealRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*customdeal.CustomDeal, error) {
	return r.findByIDForUpdate(ctx, id)
}

func (r *fakeCustomDealRepo) Save(ctx context.Context, d *customdeal.CustomDeal) error {
	return r.save(ctx, d)
}

func (r *fakeCustomDealRepo) DueForExpiry(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	return r.dueForExpiry(ctx, now, limit)
}

type fakeCustomParticipantRepo struct {
	create         func(ctx context.Context, p *shared.CustomParticipant) error
	findByDeal     func(ctx context.Context, dealID uuid.UUID) ([]*shared.CustomParticipant, error)
	exists         func(ctx context.Context, dealID, buyerID uuid.UUID) (bool, error)
	attachDiscount func(ctx context.Context, participantID uuid.UUID, link, code string, validUntil *time.Time) error
	cancelByDeal   func(ctx context.Context, dealID uuid.UUID) (int64, error)
}

func (r *fakeCustomParticipantRepo) Create(ctx context.Context, p *shared.CustomParticipant) error {
	return r.create(ctx, p)
}

func (r *fakeCustomParticipantRepo) FindByDeal(ctx context.Context, dealID uuid.UUID) ([]*shared.CustomParticipant, error) {
	return r.findByDeal(ctx, dealID)
}

func (r *fakeCustomParticipantRepo) Exists(ctx context.Context, dealID, buyerID uuid.UUID) (bool, error) {
	return r.exists(ctx, dealID, buyerID)
}

func (r *fakeCustomParticipantRepo) AttachDiscount(ctx context.Context, participantID uuid.UUID, link, code string, validUntil *time.Time) error {
	return r.attachDiscount(ctx, participantID, link, code, validUntil)
}

func (r *fakeCustomParticipantRepo) CancelByDeal(ctx context.Context, dealID uuid.UUID) (int64, error) {
	return r.cancelByDeal(ctx, dealID)
}

func (r *fakeCustomParticipantRepo) MarkRedeemed(context.Context, uuid.UUID, string, time.Time) error {
	panic("MarkRedeemed not wired")
}

type fakeDiscountCodeRepo struct {
	claimUnassigned func(ctx context.Context, dealID, participantID uuid.UUID) (string, error)
}

func (r *fakeDiscountCodeRepo) CreateBatch(context.Context, uuid.UUID, []string) error {
	panic("CreateBatch not wired")
}

func (r *fakeDiscountCodeRepo) ClaimUnassigned(ctx context.Context, dealID, participantID uuid.UUID) (string, error) {
	return r.claimUnassigned(ctx, dealID, participantID)
}

// fakeNotifier records dispatched notices.
type fakeNotifier struct {
	events []groupbuy.Notice
}

func (n *fakeNotifier) GroupBuyEvent(_ context.Context, _ uuid.UUID, notice groupbuy.Notice) {
	n.events = append(n.events, notice)
}

func (n *fakeNotifier) UserEvent(context.Context, uuid.UUID, string, string, string) {}
