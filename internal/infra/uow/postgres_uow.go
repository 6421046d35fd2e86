package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"dungji-market/internal/infra/db"
	"dungji-market/internal/infra/repository"
	"dungji-market/internal/pkg/errs"
	"dungji-market/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, d db.DBTX) error) error {
	return fn(ctx, u.pool)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	groupBuyRepo          shared.GroupBuyRepository
	bidRepo               shared.BidRepository
	participationRepo     shared.ParticipationRepository
	tokenRepo             shared.TokenRepository
	penaltyRepo           shared.PenaltyRepository
	customDealRepo        shared.CustomDealRepository
	customParticipantRepo shared.CustomParticipantRepository
	discountCodeRepo      shared.DiscountCodeRepository
	noShowReportRepo      shared.NoShowReportRepository
	userRepo              shared.UserRepository
	notificationRepo      shared.NotificationRepository
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) GroupBuys() shared.GroupBuyRepository {
	if t.groupBuyRepo == nil {
		t.groupBuyRepo = repository.NewGroupBuyRepository(t.dbtx)
	}
	return t.groupBuyRepo
}

func (t *pgTx) Bids() shared.BidRepository {
	if t.bidRepo == nil {
		t.bidRepo = repository.NewBidRepository(t.dbtx)
	}
	return t.bidRepo
}

func (t *pgTx) Participations() shared.ParticipationRepository {
	if t.participationRepo == nil {
		t.participationRepo = repository.NewParticipationRepository(t.dbtx)
	}
	return t.participationRepo
}

func (t *pgTx) Tokens() shared.TokenRepository {
	if t.tokenRepo == nil {
		t.tokenRepo = repository.NewTokenRepository(t.dbtx)
	}
	return t.tokenRepo
}

func (t *pgTx) Penalties() shared.PenaltyRepository {
	if t.penaltyRepo == nil {
		t.penaltyRepo = repository.NewPenaltyRepository(t.dbtx)
	}
	return t.penaltyRepo
}

func (t *pgTx) CustomDeals() shared.CustomDealRepository {
	if t.customDealRepo == nil {
		t.customDealRepo = repository.NewCustomDealRepository(t.dbtx)
	}
	return t.customDealRepo
}

func (t *pgTx) CustomParticipants() shared.CustomParticipantRepository {
	if t.customParticipantRepo == nil {
		t.customParticipantRepo = repository.NewCustomParticipantRepository(t.dbtx)
	}
	return t.customParticipantRepo
}

func (t *pgTx) DiscountCodes() shared.DiscountCodeRepository {
	if t.discountCodeRepo == nil {
		t.discountCodeRepo = repository.NewDiscountCodeRepository(t.dbtx)
	}
	return t.discountCodeRepo
}

func (t *pgTx) NoShowReports() shared.NoShowReportRepository {
	if t.noShowReportRepo == nil {
		t.noShowReportRepo = repository.NewNoShowReportRepository(t.dbtx)
	}
	return t.noShowReportRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.dbtx)
	}
	return t.userRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.dbtx)
	}
	return t.notificationRepo
}
