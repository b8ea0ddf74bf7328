package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

type Queries struct{}

func New() *Queries {
	return &Queries{}
}

type ReservationAction struct {
	ID            pgtype.UUID        `json:"id"`
	ReservationID string             `json:"reservation_id"`
	ActorID       string             `json:"actor_id"`
	ActorRole     string             `json:"actor_role"`
	Action        string             `json:"action"`
	Outcome       string             `json:"outcome"`
	Message       pgtype.Text        `json:"message"`
	RefundAmount  pgtype.Float8      `json:"refund_amount"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
}

const insertReservationAction = `-- name: InsertReservationAction :exec
INSERT INTO reservation_actions (
    id, reservation_id, actor_id, actor_role, action, outcome, message, refund_amount, created_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9
)
`

type InsertReservationActionParams struct {
	ID            pgtype.UUID        `json:"id"`
	ReservationID string             `json:"reservation_id"`
	ActorID       string             `json:"actor_id"`
	ActorRole     string             `json:"actor_role"`
	Action        string             `json:"action"`
	Outcome       string             `json:"outcome"`
	Message       pgtype.Text        `json:"message"`
	RefundAmount  pgtype.Float8      `json:"refund_amount"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) InsertReservationAction(ctx context.Context, db DBTX, arg InsertReservationActionParams) error {
	_, err := db.Exec(ctx, insertReservationAction,
		arg.ID,
		arg.ReservationID,
		arg.ActorID,
		arg.ActorRole,
		arg.Action,
		arg.Outcome,
		arg.Message,
		arg.RefundAmount,
		arg.CreatedAt,
	)
	return err
}

const listReservationActions = `-- name: ListReservationActions :many
SELECT id, reservation_id, actor_id, actor_role, action, outcome, message, refund_amount, created_at
FROM reservation_actions
WHERE reservation_id = $1
ORDER BY created_at DESC, id
LIMIT $2
`

type ListReservationActionsParams struct {
	ReservationID string `json:"reservation_id"`
	Limit         int32  `json:"limit"`
}

func (q *Queries) ListReservationActions(ctx context.Context, db DBTX, arg ListReservationActionsParams) ([]ReservationAction, error) {
	rows, err := db.Query(ctx, listReservationActions, arg.ReservationID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ReservationAction{}
	for rows.Next() {
		var i ReservationAction
		if err := rows.Scan(
			&i.ID,
			&i.ReservationID,
			&i.ActorID,
			&i.ActorRole,
			&i.Action,
			&i.Outcome,
			&i.Message,
			&i.RefundAmount,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
