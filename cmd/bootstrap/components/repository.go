package components

import (
	"hotel-reservations/internal/infra/db"
	"hotel-reservations/internal/infra/readstore"
	repo_impl "hotel-reservations/internal/infra/repository"
	"hotel-reservations/internal/usecase/queries"
	"hotel-reservations/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repo_impl.NewReservationRepository,
			fx.As(new(shared.ReservationRepository)),
		),
		// Read-side repository for queries
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationViewRepo)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
