package commands

import (
	"context"
	"errors"
	"log/slog"

	"rentaldesk/internal/domain/reservation"
	"rentaldesk/internal/domain/selection"
	"rentaldesk/internal/domain/user"
	"rentaldesk/internal/pkg/clock"
	"rentaldesk/internal/pkg/errs"
	"rentaldesk/internal/usecase/queries"
	"rentaldesk/internal/usecase/readmodel"
	"rentaldesk/internal/usecase/shared"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrUnknownProduct      = errs.New("product is not in the catalog")
)

// ActionOptions carries what the caller sent along with a lifecycle action.
type ActionOptions struct {
	Confirm       bool
	PaymentMethod reservation.PaymentMethod
}

type ActionResult struct {
	Reservation  readmodel.ReservationRM
	RefundAmount *float64
}

type ReservationCommands interface {
	Create(ctx context.Context, session *user.Session, params reservation.BookingParams) (*readmodel.ReservationRM, error)
	Apply(ctx context.Context, session *user.Session, id string, action reservation.Action, opts ActionOptions) (*ActionResult, error)
}

type reservationCommandsImpl struct {
	gateway      shared.ReservationGateway
	board        shared.ReservationBoard
	journal      shared.ActionJournal
	products     queries.ProductQueries
	availability queries.AvailabilityQueries
	validator    *selection.Validator
	clock        clock.Clock
	logger       *slog.Logger
}

func NewReservationCommands(
	gateway shared.ReservationGateway,
	board shared.ReservationBoard,
	journal shared.ActionJournal,
	products queries.ProductQueries,
	availability queries.AvailabilityQueries,
	validator *selection.Validator,
	clk clock.Clock,
	logger *slog.Logger,
) ReservationCommands {
	return &reservationCommandsImpl{
		gateway:      gateway,
		board:        board,
		journal:      journal,
		products:     products,
		availability: availability,
		validator:    validator,
		clock:        clk,
		logger:       logger,
	}
}

func (r *reservationCommandsImpl) Create(ctx context.Context, session *user.Session, params reservation.BookingParams) (*readmodel.ReservationRM, error) {
	if err := r.describeItems(ctx, params.Items); err != nil {
		return nil, err
	}

	booking, err := reservation.NewBooking(r.validator, params)
	if err != nil {
		return nil, errs.Validation(err)
	}
	if _, err := r.availability.CheckDate(booking.Date()); err != nil {
		return nil, err
	}

	snap, err := r.gateway.CreateReservation(ctx, session.Token(), booking)
	if err != nil {
		r.logger.Warn("backend rejected reservation",
			slog.String("user_id", session.UserID()),
			slog.String("date", booking.Date()),
			slog.String("error", errs.UserMessage(err)))
		return nil, err
	}
	if snap == nil {
		return nil, errs.Mark(errs.New("booking service returned no reservation"), errs.ErrTransport)
	}
	fillLineDetails(snap, booking.Items())

	if err := r.board.Put(ctx, session.Key(), *snap); err != nil {
		r.logger.Warn("failed to cache new reservation", slog.String("reservation_id", snap.ID), slog.String("error", err.Error()))
	}

	r.logger.Info("reservation created",
		slog.String("reservation_id", snap.ID),
		slog.String("user_id", session.UserID()),
		slog.String("date", snap.Date))

	rm := readmodel.NewReservationRM(reservation.Reconstruct(*snap), r.clock.Now())
	return &rm, nil
}

// describeItems completes the line items with the catalog data the rider
// and equipment rules depend on.
func (r *reservationCommandsImpl) describeItems(ctx context.Context, items []reservation.LineItem) error {
	if len(items) == 0 {
		return nil
	}
	catalog, err := r.products.List(ctx)
	if err != nil {
		return err
	}
	byID := make(map[string]readmodel.ProductRM, len(catalog))
	for _, p := range catalog {
		byID[p.ID] = p
	}
	for i := range items {
		if items[i].ProductID == "" {
			continue
		}
		p, ok := byID[items[i].ProductID]
		if !ok {
			return errs.Validation(ErrUnknownProduct)
		}
		items[i].ProductName = p.Name
		items[i].ProductType = p.Type
		items[i].UnitPrice = p.Price
	}
	return nil
}

func fillLineDetails(snap *reservation.Snapshot, sent []reservation.LineItem) {
	for i := range snap.Items {
		if snap.Items[i].ProductType != "" {
			continue
		}
		for _, it := range sent {
			if it.ProductID == snap.Items[i].ProductID {
				snap.Items[i].ProductName = it.ProductName
				snap.Items[i].ProductType = it.ProductType
				snap.Items[i].UnitPrice = it.UnitPrice
			}
		}
	}
}

// Apply runs a lifecycle action: the session's cached copy is updated
// first, then the backend is called and its answer replaces the cached
// copy. When the backend fails the previous copy is put back.
func (r *reservationCommandsImpl) Apply(ctx context.Context, session *user.Session, id string, action reservation.Action, opts ActionOptions) (*ActionResult, error) {
	if !action.IsValid() {
		return nil, errs.Validation(reservation.ErrUnknownAction)
	}
	if !opts.Confirm {
		return nil, errs.Mark(errs.New(action.Prompt()), errs.ErrConfirmationRequired)
	}

	prior, fresh, err := r.lookup(ctx, session, id)
	if err != nil {
		return nil, err
	}

	actor := reservation.Actor{UserID: session.UserID(), Role: session.Role()}
	optimistic := reservation.Reconstruct(*prior)
	terr := optimistic.Apply(action, actor)
	if terr != nil && !fresh && !isRoleErr(terr) {
		// cached copies can be stale: re-check against the backend before rejecting
		if prior, err = r.refresh(ctx, session, id); err != nil {
			return nil, err
		}
		optimistic = reservation.Reconstruct(*prior)
		terr = optimistic.Apply(action, actor)
	}
	if terr != nil {
		r.record(ctx, session, id, action, shared.OutcomeRejected, terr.Error(), nil)
		return nil, classifyTransitionErr(terr)
	}
	r.cache(ctx, session, optimistic.Snapshot())

	res, err := r.send(ctx, session, id, action, opts)
	if err != nil {
		r.cache(ctx, session, *prior)
		r.record(ctx, session, id, action, shared.OutcomeFailed, errs.UserMessage(err), nil)
		r.logger.Warn("reservation action failed",
			slog.String("reservation_id", id),
			slog.String("action", action.String()),
			slog.String("error", errs.UserMessage(err)))
		return nil, err
	}

	final := reconcile(prior, optimistic, action, actor, res)
	r.cache(ctx, session, final.Snapshot())
	r.record(ctx, session, id, action, shared.OutcomeSucceeded, "", final.RefundAmount())

	r.logger.Info("reservation action applied",
		slog.String("reservation_id", id),
		slog.String("action", action.String()),
		slog.String("user_id", session.UserID()))

	return &ActionResult{
		Reservation:  readmodel.NewReservationRM(final, r.clock.Now()),
		RefundAmount: final.RefundAmount(),
	}, nil
}

// lookup finds the reservation in the session cache, refreshing the cache
// from the backend once on a miss. fresh reports whether the copy came from
// the backend during this call.
func (r *reservationCommandsImpl) lookup(ctx context.Context, session *user.Session, id string) (snap *reservation.Snapshot, fresh bool, err error) {
	snap, err = r.board.Get(ctx, session.Key(), id)
	if err != nil {
		r.logger.Warn("failed to read reservation cache", slog.String("reservation_id", id), slog.String("error", err.Error()))
	}
	if snap != nil {
		return snap, false, nil
	}
	snap, err = r.refresh(ctx, session, id)
	return snap, err == nil, err
}

// refresh reloads the caller's reservations into the cache and returns the
// requested one.
func (r *reservationCommandsImpl) refresh(ctx context.Context, session *user.Session, id string) (*reservation.Snapshot, error) {
	all, err := r.gateway.ListReservations(ctx, session.Token())
	if err != nil {
		return nil, err
	}
	r.cache(ctx, session, all...)
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, errs.Mark(ErrReservationNotFound, errs.ErrNotFound)
}

func (r *reservationCommandsImpl) send(ctx context.Context, session *user.Session, id string, action reservation.Action, opts ActionOptions) (*shared.ActionResult, error) {
	switch action {
	case reservation.ActionMarkPaid:
		return r.gateway.MarkPaid(ctx, session.Token(), id, opts.PaymentMethod.WithDefaults())
	case reservation.ActionCancel:
		return r.gateway.CancelReservation(ctx, session.Token(), id)
	default:
		return r.gateway.StormRefund(ctx, session.Token(), id)
	}
}

// reconcile prefers the backend's copy. A storm refund the backend answered
// with only an amount is replayed locally with that amount.
func reconcile(prior *reservation.Snapshot, optimistic *reservation.Reservation, action reservation.Action, actor reservation.Actor, res *shared.ActionResult) *reservation.Reservation {
	if res == nil {
		return optimistic
	}
	if res.Reservation != nil {
		snap := *res.Reservation
		if snap.ID == "" {
			snap.ID = prior.ID
		}
		if len(snap.Items) == 0 {
			snap.Items = prior.Items
		}
		if action == reservation.ActionStormRefund && snap.RefundAmount == nil {
			snap.RefundAmount = res.RefundAmount
			if snap.RefundAmount == nil {
				snap.RefundAmount = optimistic.RefundAmount()
			}
		}
		return reservation.Reconstruct(snap)
	}
	if action == reservation.ActionStormRefund && res.RefundAmount != nil {
		replay := reservation.Reconstruct(*prior)
		if err := replay.StormRefund(actor, res.RefundAmount); err == nil {
			return replay
		}
	}
	return optimistic
}

// isRoleErr reports rejections that depend on who acts, not on the
// reservation's state.
func isRoleErr(err error) bool {
	return errors.Is(err, reservation.ErrStaffOnly) || errors.Is(err, reservation.ErrNotOwner)
}

func classifyTransitionErr(err error) error {
	if isRoleErr(err) {
		return errs.Mark(err, errs.ErrAuthorization)
	}
	return errs.Validation(err)
}

func (r *reservationCommandsImpl) cache(ctx context.Context, session *user.Session, snaps ...reservation.Snapshot) {
	if len(snaps) == 0 {
		return
	}
	if err := r.board.Put(ctx, session.Key(), snaps...); err != nil {
		r.logger.Warn("failed to update reservation cache", slog.String("error", err.Error()))
	}
}

// record appends to the action journal. The action itself already
// happened, so a journal failure is only logged.
func (r *reservationCommandsImpl) record(ctx context.Context, session *user.Session, id string, action reservation.Action, outcome shared.ActionOutcome, message string, refund *float64) {
	entry := shared.ActionEntry{
		ReservationID: id,
		ActorID:       session.UserID(),
		ActorRole:     session.Role().String(),
		Action:        action,
		Outcome:       outcome,
		Message:       message,
		RefundAmount:  refund,
		At:            r.clock.Now(),
	}
	if err := r.journal.Append(context.WithoutCancel(ctx), entry); err != nil {
		r.logger.Error("failed to journal reservation action",
			slog.String("reservation_id", id),
			slog.String("action", action.String()),
			slog.String("error", err.Error()))
	}
}
