package components

import (
	"dungji-market/internal/infra/db"
	"dungji-market/internal/infra/notify"
	"dungji-market/internal/infra/readstore"
	"dungji-market/internal/infra/uow"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	fx.Provide(
		// Write-side repositories are constructed per-transaction inside
		// the unit of work, so only the UoW itself is wired here.
		uow.NewPostgresUoW,
		notify.NewInAppNotifier,
	),
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		readstore.NewGroupBuyReadStore,
		readstore.NewCustomDealReadStore,
		readstore.NewTokenReadStore,
		readstore.NewNoShowReadStore,
		readstore.NewUserReadStore,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
