package repository

import (
	"errors"
	"log/slog"

	"dungji-market/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

// wrapErr classifies a pgx error into the repository error kinds the
// usecase layer switches on.
func wrapErr(msg string, err error) error {
	kind := infra.KindDBFailure
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		kind = infra.KindNotFound
	default:
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgErrCodeUniqueViolation:
				kind = infra.KindDuplicateKey
			case pgErrCodeForeignKeyViolation:
				kind = infra.KindForeignKeyViolated
			}
		}
	}
	return infra.WrapRepoErr(slog.Default(), kind, msg, err)
}

func notFound(msg string) error {
	return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, msg, pgx.ErrNoRows)
}

func duplicate(msg string) error {
	return infra.WrapRepoErr(slog.Default(), infra.KindDuplicateKey, msg, nil)
}
