package readstore

import (
	"errors"
	"log/slog"

	"dungji-market/internal/infra"

	"github.com/jackc/pgx/v5"
)

func wrapErr(msg string, err error) error {
	kind := infra.KindDBFailure
	if errors.Is(err, pgx.ErrNoRows) {
		kind = infra.KindNotFound
	}
	return infra.WrapRepoErr(slog.Default(), kind, msg, err)
}
