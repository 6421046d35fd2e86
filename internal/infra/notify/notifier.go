// Package notify delivers in-app notifications. Delivery runs after the
// owning transaction committed, so failures are logged and dropped rather
// than rolled back into the state machine.
package notify

import (
	"context"
	"log/slog"
	"time"

	"dungji-market/internal/domain/groupbuy"
	"dungji-market/internal/infra/db"
	"dungji-market/internal/pkg/clock"
	"dungji-market/internal/usecase/commands"
	"dungji-market/internal/usecase/shared"

	"github.com/google/uuid"
)

type InAppNotifier struct {
	pool  db.DBTX
	clock clock.Clock
	log   *slog.Logger
}

func NewInAppNotifier(pool db.DBTX, clk clock.Clock, log *slog.Logger) commands.Notifier {
	return &InAppNotifier{pool: pool, clock: clk, log: log}
}

var noticeText = map[groupbuy.NoticeKind][2]string{
	groupbuy.NoticeBidSelected:        {"입찰 선정", "회원님의 입찰이 낙찰되었습니다."},
	groupbuy.NoticeBidRejected:        {"입찰 미선정", "아쉽지만 다른 입찰이 선정되었습니다."},
	groupbuy.NoticeBuyerDecisionOpen:  {"최종선택 시작", "공구 최종선택이 시작되었습니다. 12시간 내에 확정해 주세요."},
	groupbuy.NoticeSellerDecisionOpen: {"판매자 확정 대기", "구매자 선택이 끝났습니다. 6시간 내에 판매 확정해 주세요."},
	groupbuy.NoticeCompleted:          {"공구 성사", "공구가 성사되었습니다. 거래를 진행해 주세요."},
	groupbuy.NoticeCancelled:          {"공구 무산", "공구가 취소되었습니다."},
}

// GroupBuyEvent delivers one notice to the audience it names: buyers, the
// winning seller, the losing sellers, or buyers plus the winner.
func (n *InAppNotifier) GroupBuyEvent(ctx context.Context, groupBuyID uuid.UUID, notice groupbuy.Notice) {
	text, ok := noticeText[notice.Kind]
	if !ok {
		text = [2]string{string(notice.Kind), ""}
	}

	recipients, err := n.recipients(ctx, groupBuyID, notice.Audience)
	if err != nil {
		n.log.Error("failed to resolve notification recipients",
			"groupbuy_id", groupBuyID, "kind", string(notice.Kind), "error", err.Error())
		return
	}

	now := n.clock.Now()
	for _, userID := range recipients {
		n.insert(ctx, &shared.Notification{
			ID:        uuid.New(),
			UserID:    userID,
			Kind:      string(notice.Kind),
			Title:     text[0],
			Body:      text[1],
			CreatedAt: now,
		})
	}
}

func (n *InAppNotifier) UserEvent(ctx context.Context, userID uuid.UUID, kind, title, body string) {
	n.insert(ctx, &shared.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Kind:      kind,
		Title:     title,
		Body:      body,
		CreatedAt: n.clock.Now(),
	})
}

const selectBuyerRecipients = `
SELECT creator_id FROM group_buys WHERE id = $1
UNION
SELECT buyer_id FROM participations WHERE group_buy_id = $1 AND status = 'active'`

const selectWinnerRecipient = `
SELECT b.seller_id
FROM bids b
JOIN group_buys g ON g.selected_bid_id = b.id
WHERE g.id = $1`

const selectLoserRecipients = `
SELECT seller_id FROM bids WHERE group_buy_id = $1 AND status = 'rejected'`

var audienceQueries = map[groupbuy.Audience][]string{
	groupbuy.AudienceBuyers:  {selectBuyerRecipients},
	groupbuy.AudienceWinner:  {selectWinnerRecipient},
	groupbuy.AudienceLosers:  {selectLoserRecipients},
	groupbuy.AudienceParties: {selectBuyerRecipients, selectWinnerRecipient},
}

func (n *InAppNotifier) recipients(ctx context.Context, groupBuyID uuid.UUID, audience groupbuy.Audience) ([]uuid.UUID, error) {
	queryCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	var ids []uuid.UUID
	seen := make(map[uuid.UUID]bool)
	for _, sql := range audienceQueries[audience] {
		batch, err := n.queryRecipients(queryCtx, sql, groupBuyID)
		if err != nil {
			return nil, err
		}
		for _, id := range batch {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	return ids, nil
}

func (n *InAppNotifier) queryRecipients(ctx context.Context, sql string, groupBuyID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := n.pool.Query(ctx, sql, groupBuyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

const insertNotificationRow = `
INSERT INTO notifications (id, user_id, kind, title, body, read, created_at)
VALUES ($1, $2, $3, $4, $5, false, $6)`

func (n *InAppNotifier) insert(ctx context.Context, row *shared.Notification) {
	execCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	_, err := n.pool.Exec(execCtx, insertNotificationRow,
		row.ID, row.UserID, row.Kind, row.Title, row.Body, row.CreatedAt,
	)
	if err != nil {
		n.log.Error("failed to write notification",
			"user_id", row.UserID, "kind", row.Kind, "error", err.Error())
	}
}
