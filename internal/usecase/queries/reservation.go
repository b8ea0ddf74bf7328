package queries

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"rentaldesk/internal/domain/availability"
	"rentaldesk/internal/domain/reservation"
	"rentaldesk/internal/domain/user"
	"rentaldesk/internal/pkg/clock"
	"rentaldesk/internal/pkg/errs"
	"rentaldesk/internal/usecase/readmodel"
	"rentaldesk/internal/usecase/shared"
)

var ErrInvalidStatusFilter = errs.New("unknown payment status filter")

type ReservationFilter struct {
	Status string
	Date   string
}

type ReservationQueries interface {
	List(ctx context.Context, session *user.Session, filter ReservationFilter) ([]readmodel.ReservationRM, error)
	// ByDate is the staff day view, ordered by first reserved slot.
	ByDate(ctx context.Context, session *user.Session, date string) ([]readmodel.ReservationRM, error)
	Actions(ctx context.Context, reservationID string) ([]readmodel.ActionRecordRM, error)
}

type reservationQueriesImpl struct {
	gateway shared.ReservationGateway
	board   shared.ReservationBoard
	journal shared.ActionJournal
	clock   clock.Clock
	logger  *slog.Logger
}

func NewReservationQueries(
	gateway shared.ReservationGateway,
	board shared.ReservationBoard,
	journal shared.ActionJournal,
	clk clock.Clock,
	logger *slog.Logger,
) ReservationQueries {
	return &reservationQueriesImpl{
		gateway: gateway,
		board:   board,
		journal: journal,
		clock:   clk,
		logger:  logger,
	}
}

func (q *reservationQueriesImpl) List(ctx context.Context, session *user.Session, filter ReservationFilter) ([]readmodel.ReservationRM, error) {
	var status reservation.PaymentStatus
	if s := strings.TrimSpace(filter.Status); s != "" {
		status = reservation.PaymentStatus(s)
		if !status.IsValid() {
			return nil, errs.Validation(ErrInvalidStatusFilter)
		}
	}
	date := strings.TrimSpace(filter.Date)
	if date != "" {
		if _, err := availability.ParseDate(date, q.clock.Now().Location()); err != nil {
			return nil, errs.Validation(err)
		}
	}

	snaps, err := q.gateway.ListReservations(ctx, session.Token())
	if err != nil {
		return nil, err
	}
	q.remember(ctx, session, snaps)

	now := q.clock.Now()
	out := make([]readmodel.ReservationRM, 0, len(snaps))
	for _, s := range snaps {
		r := reservation.Reconstruct(s)
		if status != "" && r.PaymentStatus() != status {
			continue
		}
		if date != "" && r.Date() != date {
			continue
		}
		out = append(out, readmodel.NewReservationRM(r, now))
	}
	return out, nil
}

func (q *reservationQueriesImpl) ByDate(ctx context.Context, session *user.Session, date string) ([]readmodel.ReservationRM, error) {
	if _, err := availability.ParseDate(date, q.clock.Now().Location()); err != nil {
		return nil, errs.Validation(err)
	}

	snaps, err := q.gateway.ReservationsByDate(ctx, session.Token(), strings.TrimSpace(date))
	if err != nil {
		return nil, err
	}
	q.remember(ctx, session, snaps)

	rs := make([]*reservation.Reservation, len(snaps))
	for i, s := range snaps {
		rs[i] = reservation.Reconstruct(s)
	}
	sort.SliceStable(rs, func(i, j int) bool {
		return rs[i].FirstSlot() < rs[j].FirstSlot()
	})

	now := q.clock.Now()
	out := make([]readmodel.ReservationRM, len(rs))
	for i, r := range rs {
		out[i] = readmodel.NewReservationRM(r, now)
	}
	return out, nil
}

func (q *reservationQueriesImpl) Actions(ctx context.Context, reservationID string) ([]readmodel.ActionRecordRM, error) {
	if strings.TrimSpace(reservationID) == "" {
		return nil, errs.Validation(errs.New("reservation id is required"))
	}
	return q.journal.ListByReservation(ctx, reservationID)
}

// remember caches what the session just saw so lifecycle actions can work
// on it. A failing cache write only costs a refetch later.
func (q *reservationQueriesImpl) remember(ctx context.Context, session *user.Session, snaps []reservation.Snapshot) {
	if len(snaps) == 0 {
		return
	}
	if err := q.board.Put(ctx, session.Key(), snaps...); err != nil {
		q.logger.Warn("failed to cache reservations",
			slog.String("user_id", session.UserID()),
			slog.String("error", err.Error()))
	}
}
