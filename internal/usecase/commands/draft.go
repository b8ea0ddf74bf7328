package commands

import (
	"context"
	"log/slog"
	"strings"

	"rentaldesk/internal/domain/draft"
	"rentaldesk/internal/domain/equipment"
	"rentaldesk/internal/domain/selection"
	"rentaldesk/internal/domain/slot"
	"rentaldesk/internal/domain/user"
	"rentaldesk/internal/pkg/clock"
	"rentaldesk/internal/pkg/errs"
	"rentaldesk/internal/usecase/queries"
	"rentaldesk/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var ErrDraftNotFound = errs.New("draft not found")

type DraftStore interface {
	SaveDraft(ctx context.Context, d *draft.Draft) error
	GetDraft(ctx context.Context, id string) (*draft.Draft, error)
	UpdateDraft(ctx context.Context, id string, fn func(*draft.Draft) error) (*draft.Draft, error)
	DeleteDraft(ctx context.Context, d *draft.Draft) error
}

type ToggleResult struct {
	Draft    *draft.Draft
	Accepted bool
	Message  string
}

type EquipmentAdjustment struct {
	Kind  string
	Size  string
	Delta int
}

type DraftCommands interface {
	Create(ctx context.Context, session *user.Session, productID string, quantity int) (*draft.Draft, error)
	Get(ctx context.Context, session *user.Session, id string) (*draft.Draft, error)
	SetDate(ctx context.Context, session *user.Session, id, date string) (*draft.Draft, error)
	ToggleSlot(ctx context.Context, session *user.Session, id string, idx slot.Index) (*ToggleResult, error)
	SetRiders(ctx context.Context, session *user.Session, id string, riders int) (*draft.Draft, error)
	AdjustEquipment(ctx context.Context, session *user.Session, id string, adj EquipmentAdjustment) (*draft.Draft, error)
	SetCustomer(ctx context.Context, session *user.Session, id, name, contact string) (*draft.Draft, error)
	Submit(ctx context.Context, session *user.Session, id string) (*readmodel.ReservationRM, error)
	Discard(ctx context.Context, session *user.Session, id string) error
}

type draftCommandsImpl struct {
	store        DraftStore
	products     queries.ProductQueries
	availability queries.AvailabilityQueries
	reservations ReservationCommands
	validator    *selection.Validator
	clock        clock.Clock
	fetches      *fetchRegistry
	logger       *slog.Logger
	newID        func() string
}

func NewDraftCommands(
	store DraftStore,
	products queries.ProductQueries,
	availability queries.AvailabilityQueries,
	reservations ReservationCommands,
	validator *selection.Validator,
	clk clock.Clock,
	logger *slog.Logger,
) DraftCommands {
	return &draftCommandsImpl{
		store:        store,
		products:     products,
		availability: availability,
		reservations: reservations,
		validator:    validator,
		clock:        clk,
		fetches:      newFetchRegistry(),
		logger:       logger,
		newID:        func() string { return uuid.New().String() },
	}
}

func (c *draftCommandsImpl) Create(ctx context.Context, session *user.Session, productID string, quantity int) (*draft.Draft, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, errs.Validation(errs.New("product is required"))
	}
	product, err := c.products.Find(ctx, productID)
	if err != nil {
		return nil, err
	}

	d, err := draft.New(c.newID(), session.Key(), *product, quantity, c.clock.Now())
	if err != nil {
		return nil, errs.Validation(err)
	}
	if err := c.store.SaveDraft(ctx, d); err != nil {
		return nil, err
	}

	c.logger.Debug("draft created",
		slog.String("draft_id", d.ID),
		slog.String("product_id", product.ID),
		slog.Int("quantity", quantity))
	return d, nil
}

func (c *draftCommandsImpl) Get(ctx context.Context, session *user.Session, id string) (*draft.Draft, error) {
	d, err := c.store.GetDraft(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := ownedBy(d, session); err != nil {
		return nil, err
	}
	return d, nil
}

// SetDate moves the draft to another day and loads that day's availability.
// Only the fetch for the draft's latest date may store its result; an
// answer that arrives for a date the user already left is dropped.
func (c *draftCommandsImpl) SetDate(ctx context.Context, session *user.Session, id, date string) (*draft.Draft, error) {
	date = strings.TrimSpace(date)
	if _, err := c.availability.CheckDate(date); err != nil {
		return nil, err
	}

	var generation int64
	var productID string
	_, err := c.store.UpdateDraft(ctx, id, func(d *draft.Draft) error {
		if err := ownedBy(d, session); err != nil {
			return err
		}
		generation = d.SetDate(date, c.clock.Now())
		productID = d.Product.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	fetchCtx, done := c.fetches.begin(ctx, id, generation)
	defer done()

	slots, err := c.availability.Resolve(fetchCtx, date, productID)
	if err != nil {
		if fetchCtx.Err() != nil && ctx.Err() == nil {
			c.logger.Debug("availability fetch superseded",
				slog.String("draft_id", id),
				slog.Int64("generation", generation))
			return c.store.GetDraft(ctx, id)
		}
		return nil, err
	}

	kept := false
	updated, err := c.store.UpdateDraft(ctx, id, func(d *draft.Draft) error {
		kept = d.ApplyAvailability(generation, date, slots)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !kept {
		c.logger.Debug("stale availability discarded",
			slog.String("draft_id", id),
			slog.Int64("generation", generation))
	}
	return updated, nil
}

func (c *draftCommandsImpl) ToggleSlot(ctx context.Context, session *user.Session, id string, idx slot.Index) (*ToggleResult, error) {
	var outcome selection.Outcome
	updated, err := c.store.UpdateDraft(ctx, id, func(d *draft.Draft) error {
		if err := ownedBy(d, session); err != nil {
			return err
		}
		out, err := d.ToggleSlot(c.validator, idx, c.clock.Now())
		if err != nil {
			return errs.Validation(err)
		}
		outcome = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ToggleResult{Draft: updated, Accepted: outcome.Accepted, Message: outcome.Message}, nil
}

func (c *draftCommandsImpl) SetRiders(ctx context.Context, session *user.Session, id string, riders int) (*draft.Draft, error) {
	return c.store.UpdateDraft(ctx, id, func(d *draft.Draft) error {
		if err := ownedBy(d, session); err != nil {
			return err
		}
		if err := d.SetRiders(riders, c.clock.Now()); err != nil {
			return errs.Validation(err)
		}
		return nil
	})
}

func (c *draftCommandsImpl) AdjustEquipment(ctx context.Context, session *user.Session, id string, adj EquipmentAdjustment) (*draft.Draft, error) {
	kind, err := equipment.NewKind(adj.Kind)
	if err != nil {
		return nil, errs.Validation(err)
	}
	size, err := equipment.NewSize(adj.Size)
	if err != nil {
		return nil, errs.Validation(err)
	}
	if adj.Delta == 0 {
		return nil, errs.Validation(errs.New("delta must not be zero"))
	}

	return c.store.UpdateDraft(ctx, id, func(d *draft.Draft) error {
		if err := ownedBy(d, session); err != nil {
			return err
		}
		if err := d.AdjustEquipment(kind, size, adj.Delta, c.clock.Now()); err != nil {
			return errs.Validation(err)
		}
		return nil
	})
}

func (c *draftCommandsImpl) SetCustomer(ctx context.Context, session *user.Session, id, name, contact string) (*draft.Draft, error) {
	return c.store.UpdateDraft(ctx, id, func(d *draft.Draft) error {
		if err := ownedBy(d, session); err != nil {
			return err
		}
		d.SetCustomer(name, contact, c.clock.Now())
		return nil
	})
}

func (c *draftCommandsImpl) Submit(ctx context.Context, session *user.Session, id string) (*readmodel.ReservationRM, error) {
	d, err := c.Get(ctx, session, id)
	if err != nil {
		return nil, err
	}
	if d.Date == "" {
		return nil, errs.Validation(draft.ErrDateRequired)
	}

	created, err := c.reservations.Create(ctx, session, d.BookingParams())
	if err != nil {
		return nil, err
	}

	c.fetches.cancel(id)
	if err := c.store.DeleteDraft(ctx, d); err != nil {
		c.logger.Warn("failed to delete submitted draft", slog.String("draft_id", id), slog.String("error", err.Error()))
	}
	return created, nil
}

func (c *draftCommandsImpl) Discard(ctx context.Context, session *user.Session, id string) error {
	d, err := c.Get(ctx, session, id)
	if err != nil {
		return err
	}
	c.fetches.cancel(id)
	return c.store.DeleteDraft(ctx, d)
}

// A draft of another session is reported as missing.
func ownedBy(d *draft.Draft, session *user.Session) error {
	if d.OwnerKey != session.Key() {
		return errs.Mark(ErrDraftNotFound, errs.ErrNotFound)
	}
	return nil
}
