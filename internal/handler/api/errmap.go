package api

import (
	"errors"
	"net/http"

	"dungji-market/internal/domain/auth"
	"dungji-market/internal/handler/httperr"
	"dungji-market/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// errMissingIdentity fires when a handler behind RequireAuth finds no user
// in the context, which means the middleware chain is miswired.
var errMissingIdentity = errors.New("authenticated user missing from context")

type errStatus struct {
	err    error
	status int
	msg    string
}

// One table instead of a per-handler switch; handlers share the same
// sentinel vocabulary so the mapping is uniform.
var errTable = []errStatus{
	{errs.ErrGroupBuyNotFound, http.StatusNotFound, "Group buy not found"},
	{errs.ErrGroupBuyNotRecruiting, http.StatusConflict, "Group buy is not recruiting"},
	{errs.ErrGroupBuyClosed, http.StatusConflict, "Group buy already closed"},
	{errs.ErrInvalidTransition, http.StatusConflict, "Invalid state transition"},
	{errs.ErrNotGroupBuyCreator, http.StatusForbidden, "Only the creator may do this"},

	{errs.ErrBidNotFound, http.StatusNotFound, "Bid not found"},
	{errs.ErrDuplicateBid, http.StatusConflict, "You already have a bid on this group buy"},
	{errs.ErrBidNotSelected, http.StatusConflict, "Bid is not the selected bid"},
	{errs.ErrBidAlreadyDecided, http.StatusConflict, "Bid decision already made"},
	{errs.ErrSelectionWindowOver, http.StatusConflict, "Selection window has ended"},
	{errs.ErrBelowStartingPrice, http.StatusUnprocessableEntity, "Bid amount below the starting support amount"},

	{errs.ErrAlreadyJoined, http.StatusConflict, "Already participating"},
	{errs.ErrProductConflict, http.StatusConflict, "Already participating in a group buy for this product"},
	{errs.ErrParticipantLimit, http.StatusConflict, "Participant limit reached"},
	{errs.ErrNotParticipant, http.StatusForbidden, "Not a participant of this group buy"},
	{errs.ErrDecisionWindowOver, http.StatusConflict, "Final selection window has ended"},
	{errs.ErrAlreadyDecided, http.StatusConflict, "Final decision already made"},

	{errs.ErrNoActiveToken, http.StatusPaymentRequired, "No active bid token"},
	{errs.ErrTokenExpired, http.StatusConflict, "Bid token has expired"},
	{errs.ErrTokenNotFound, http.StatusNotFound, "Bid token not found"},
	{errs.ErrInvalidTokenPlan, http.StatusBadRequest, "Unknown token purchase plan"},

	{errs.ErrCustomDealNotFound, http.StatusNotFound, "Custom deal not found"},
	{errs.ErrCustomDealNotOpen, http.StatusConflict, "Custom deal is not recruiting"},
	{errs.ErrCustomDealFull, http.StatusConflict, "Custom deal target already reached"},
	{errs.ErrDiscountPoolExhausted, http.StatusConflict, "Discount codes exhausted"},
	{errs.ErrNotCustomDealSeller, http.StatusForbidden, "Only the deal seller may do this"},
	{errs.ErrCustomDealNotDone, http.StatusConflict, "Custom deal is not completed yet"},
	{errs.ErrSeatCodeInvalid, http.StatusNotFound, "Participation code not found"},
	{errs.ErrSeatCodeUsed, http.StatusConflict, "Participation code already redeemed"},
	{errs.ErrDecisionDeadlinePast, http.StatusConflict, "Seller decision deadline has passed"},

	{errs.ErrNoShowReportNotFound, http.StatusNotFound, "Report not found"},
	{errs.ErrDuplicateNoShowReport, http.StatusConflict, "Report already filed"},
	{errs.ErrNoShowEditExhausted, http.StatusConflict, "Report can only be edited once"},
	{errs.ErrNoShowNotPending, http.StatusConflict, "Report is not pending"},

	{errs.ErrPenaltyActive, http.StatusForbidden, "Account is under penalty"},

	{errs.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{errs.ErrInvalidRole, http.StatusForbidden, "Operation not allowed for this role"},

	{auth.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{auth.ErrEmailTaken, http.StatusConflict, "Email already registered"},

	{errs.ErrDomainValidation, http.StatusUnprocessableEntity, "Validation failed"},
}

func abortWithMappedError(c *gin.Context, err error) {
	for _, e := range errTable {
		if errors.Is(err, e.err) {
			httperr.AbortWithError(c, e.status, err, e.msg, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
