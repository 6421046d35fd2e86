package commands

import (
	"context"

	"dungji-market/internal/domain/groupbuy"

	"github.com/google/uuid"
)

// Notifier fans out user-facing notices. Implementations must be safe to
// call after the transaction committed: delivery failures are logged and
// swallowed, never propagated back into the state transition.
type Notifier interface {
	GroupBuyEvent(ctx context.Context, groupBuyID uuid.UUID, notice groupbuy.Notice)
	UserEvent(ctx context.Context, userID uuid.UUID, kind, title, body string)
}
