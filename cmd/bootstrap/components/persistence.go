package components

import (
	"rentaldesk/internal/infra/db"
	"rentaldesk/internal/infra/repository"
	"rentaldesk/internal/infra/sessionstore"
	"rentaldesk/internal/usecase/commands"
	"rentaldesk/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	journalModule,
	sessionModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var journalModule = fx.Module("persistence/journal",
	fx.Provide(
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.ActionQueries)),
		),
		fx.Annotate(
			repository.NewActionJournalRepository,
			fx.As(new(shared.ActionJournal)),
		),
	),
)

var sessionModule = fx.Module("persistence/session",
	fx.Provide(
		fx.Annotate(
			sessionstore.NewStore,
			fx.As(new(commands.DraftStore)),
			fx.As(new(shared.ReservationBoard)),
			fx.As(new(commands.SessionPurger)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *db.Queries {
	return db.New()
}

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
