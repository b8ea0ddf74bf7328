//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// ActionRow is a journal row as stored.
type ActionRow struct {
	ReservationID string
	ActorID       string
	ActorRole     string
	Action        string
	Outcome       string
	Message       *string
	RefundAmount  *float64
}

func InsertAction(t *testing.T, db DBLike, row ActionRow, at time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO reservation_actions (id, reservation_id, actor_id, actor_role, action, outcome, message, refund_amount, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		id, row.ReservationID, row.ActorID, row.ActorRole, row.Action, row.Outcome, row.Message, row.RefundAmount, at)
	require.NoError(t, err)
	return id
}

// ActionsFor returns the journal rows for a reservation, oldest first.
func ActionsFor(t *testing.T, db *pgxpool.Pool, reservationID string) []ActionRow {
	t.Helper()

	rows, err := db.Query(context.Background(),
		`SELECT reservation_id, actor_id, actor_role, action, outcome, message, refund_amount
		 FROM reservation_actions WHERE reservation_id = $1 ORDER BY created_at ASC`, reservationID)
	require.NoError(t, err)
	defer rows.Close()

	var out []ActionRow
	for rows.Next() {
		var r ActionRow
		require.NoError(t, rows.Scan(&r.ReservationID, &r.ActorID, &r.ActorRole, &r.Action, &r.Outcome, &r.Message, &r.RefundAmount))
		out = append(out, r)
	}
	require.NoError(t, rows.Err())
	return out
}

// ResetDB empties the action journal.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE reservation_actions")
	return err
}
