package errs

import "errors"

// Sentinel errors shared across usecase and handler layers.
var (
	// Group-buy errors
	ErrGroupBuyNotFound      = errors.New("groupbuy not found")
	ErrGroupBuyNotRecruiting = errors.New("groupbuy is not recruiting")
	ErrGroupBuyClosed        = errors.New("groupbuy already closed")
	ErrInvalidTransition     = errors.New("invalid status transition")
	ErrNotGroupBuyCreator    = errors.New("not the groupbuy creator")

	// Bid errors
	ErrBidNotFound         = errors.New("bid not found")
	ErrDuplicateBid        = errors.New("seller already has a bid on this groupbuy")
	ErrBidNotSelected      = errors.New("bid is not the selected bid")
	ErrBidAlreadyDecided   = errors.New("bid decision already made")
	ErrSelectionWindowOver = errors.New("selection window has ended")
	ErrBelowStartingPrice  = errors.New("bid amount below starting support amount")

	// Participation errors
	ErrAlreadyJoined      = errors.New("already participating in this groupbuy")
	ErrParticipantLimit   = errors.New("participant limit reached")
	ErrNotParticipant     = errors.New("not a participant of this groupbuy")
	ErrDecisionWindowOver = errors.New("final selection window has ended")
	ErrAlreadyDecided     = errors.New("final decision already made")
	ErrProductConflict    = errors.New("already participating in a groupbuy for this product")

	// Token errors
	ErrNoActiveToken    = errors.New("no active bid token available")
	ErrTokenExpired     = errors.New("bid token has expired")
	ErrTokenNotFound    = errors.New("bid token not found")
	ErrInvalidTokenPlan = errors.New("unknown token purchase plan")

	// Custom deal errors
	ErrCustomDealNotFound    = errors.New("custom deal not found")
	ErrCustomDealNotOpen     = errors.New("custom deal is not recruiting")
	ErrCustomDealFull        = errors.New("custom deal target already reached")
	ErrDiscountPoolExhausted = errors.New("discount codes exhausted")
	ErrNotCustomDealSeller   = errors.New("not the custom deal seller")
	ErrDecisionDeadlinePast  = errors.New("seller decision deadline has passed")
	ErrCustomDealNotDone     = errors.New("custom deal is not completed")
	ErrSeatCodeInvalid       = errors.New("participation code not found for this deal")
	ErrSeatCodeUsed          = errors.New("participation code already redeemed")

	// No-show errors
	ErrNoShowReportNotFound  = errors.New("noshow report not found")
	ErrDuplicateNoShowReport = errors.New("noshow report already filed")
	ErrNoShowEditExhausted   = errors.New("noshow report can only be edited once")
	ErrNoShowNotPending      = errors.New("noshow report is not pending")

	// Penalty errors
	ErrPenaltyActive = errors.New("user has an active penalty")

	// User errors
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidRole  = errors.New("operation not allowed for this role")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
