package repository

import (
	"context"
	"log/slog"
	"time"

	"rentaldesk/internal/infra"
	"rentaldesk/internal/infra/db"
	"rentaldesk/internal/pkg/pgconv"
	"rentaldesk/internal/usecase/readmodel"
	"rentaldesk/internal/usecase/shared"

	"github.com/google/uuid"
)

const actionHistoryLimit = 100

type ActionQueries interface {
	InsertReservationAction(ctx context.Context, conn db.DBTX, arg db.InsertReservationActionParams) error
	ListReservationActions(ctx context.Context, conn db.DBTX, arg db.ListReservationActionsParams) ([]db.ReservationAction, error)
}

// ActionJournalRepository records every lifecycle action attempted from
// the staff console, successful or not.
type ActionJournalRepository struct {
	queries ActionQueries
	conn    db.DBTX
	logger  *slog.Logger
	newID   func() uuid.UUID
}

func NewActionJournalRepository(queries ActionQueries, conn db.DBTX, logger *slog.Logger) *ActionJournalRepository {
	return &ActionJournalRepository{
		queries: queries,
		conn:    conn,
		logger:  logger,
		newID:   uuid.New,
	}
}

func (r *ActionJournalRepository) Append(ctx context.Context, entry shared.ActionEntry) error {
	at := entry.At
	if at.IsZero() {
		at = time.Now()
	}
	err := r.queries.InsertReservationAction(ctx, r.conn, db.InsertReservationActionParams{
		ID:            pgconv.UUIDToPgtype(r.newID()),
		ReservationID: entry.ReservationID,
		ActorID:       entry.ActorID,
		ActorRole:     entry.ActorRole,
		Action:        string(entry.Action),
		Outcome:       string(entry.Outcome),
		Message:       pgconv.OptionalText(entry.Message),
		RefundAmount:  pgconv.Float64PtrToPgtype(entry.RefundAmount),
		CreatedAt:     pgconv.TimeToPgtype(at.UTC()),
	})
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to append reservation action", err)
	}
	return nil
}

func (r *ActionJournalRepository) ListByReservation(ctx context.Context, reservationID string) ([]readmodel.ActionRecordRM, error) {
	rows, err := r.queries.ListReservationActions(ctx, r.conn, db.ListReservationActionsParams{
		ReservationID: reservationID,
		Limit:         actionHistoryLimit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list reservation actions", err)
	}

	out := make([]readmodel.ActionRecordRM, len(rows))
	for i, row := range rows {
		out[i] = toActionRecordRM(row)
	}
	return out, nil
}

func toActionRecordRM(row db.ReservationAction) readmodel.ActionRecordRM {
	return readmodel.ActionRecordRM{
		ID:            pgconv.UUIDFromPgtype(row.ID),
		ReservationID: row.ReservationID,
		ActorID:       row.ActorID,
		ActorRole:     row.ActorRole,
		Action:        row.Action,
		Outcome:       row.Outcome,
		Message:       pgconv.StringPtrFromPgtype(row.Message),
		RefundAmount:  pgconv.Float64PtrFromPgtype(row.RefundAmount),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
