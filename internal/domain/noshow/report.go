package noshow

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ReportType says who failed to show up for the transaction.
type ReportType string

const (
	// TypeBuyerNoShow is filed by the seller against a buyer.
	TypeBuyerNoShow ReportType = "buyer_noshow"
	// TypeSellerNoShow is filed by a buyer against the seller.
	TypeSellerNoShow ReportType = "seller_noshow"
)

func (t ReportType) IsValid() bool {
	return t == TypeBuyerNoShow || t == TypeSellerNoShow
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusOnHold    Status = "on_hold"
	StatusCancelled Status = "cancelled"
)

var (
	ErrInvalidType   = errors.New("invalid report type")
	ErrEmptyContent  = errors.New("report content must not be empty")
	ErrNotPending    = errors.New("report is not pending")
	ErrEditExhausted = errors.New("report can only be edited once")
	ErrNotReporter   = errors.New("only the reporter may edit")
)

// Report is a no-show complaint tied to a completed group purchase.
type Report struct {
	ID          uuid.UUID
	GroupBuyID  uuid.UUID
	ReporterID  uuid.UUID
	ReportedID  uuid.UUID
	Type        ReportType
	Content     string
	Status      Status
	EditCount   int
	AdminNote   string
	ProcessedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewReport(groupBuyID, reporterID, reportedID uuid.UUID, typ ReportType, content string, now time.Time) (*Report, error) {
	if !typ.IsValid() {
		return nil, ErrInvalidType
	}
	if content == "" {
		return nil, ErrEmptyContent
	}
	return &Report{
		ID:         uuid.New(),
		GroupBuyID: groupBuyID,
		ReporterID: reporterID,
		ReportedID: reportedID,
		Type:       typ,
		Content:    content,
		Status:     StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Edit replaces the report content. Reporters get a single edit while the
// report is still pending.
func (r *Report) Edit(editorID uuid.UUID, content string) error {
	if editorID != r.ReporterID {
		return ErrNotReporter
	}
	if r.Status != StatusPending {
		return ErrNotPending
	}
	if r.EditCount >= 1 {
		return ErrEditExhausted
	}
	if content == "" {
		return ErrEmptyContent
	}
	r.Content = content
	r.EditCount++
	return nil
}

// Confirm marks the report as processed by an admin.
func (r *Report) Confirm(note string, now time.Time) error {
	if r.Status != StatusPending && r.Status != StatusOnHold {
		return ErrNotPending
	}
	r.Status = StatusCompleted
	r.AdminNote = note
	r.ProcessedAt = &now
	return nil
}

// Hold parks the report for later review.
func (r *Report) Hold(note string) error {
	if r.Status != StatusPending {
		return ErrNotPending
	}
	r.Status = StatusOnHold
	r.AdminNote = note
	return nil
}

// Withdraw cancels the report. Only pending reports can be withdrawn.
func (r *Report) Withdraw() error {
	if r.Status != StatusPending {
		return ErrNotPending
	}
	r.Status = StatusCancelled
	return nil
}

// Resolution decides what happens to the group purchase when buyer-noshow
// reports are confirmed: if every confirmed buyer was reported the deal is
// voided, otherwise it stands for the remaining buyers.
type Resolution string

const (
	ResolutionCancelDeal Resolution = "cancel_deal"
	ResolutionKeepDeal   Resolution = "keep_deal"
)

// ResolveBuyerNoShow compares the set of reported buyers against the
// confirmed buyer count.
func ResolveBuyerNoShow(confirmedBuyers, reportedBuyers int) Resolution {
	if reportedBuyers >= confirmedBuyers {
		return ResolutionCancelDeal
	}
	return ResolutionKeepDeal
}
