package queries

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"rentaldesk/internal/domain/availability"
	"rentaldesk/internal/domain/slot"
	"rentaldesk/internal/pkg/clock"
	"rentaldesk/internal/pkg/config"
	"rentaldesk/internal/pkg/errs"
	"rentaldesk/internal/usecase/shared"
)

type AvailabilityQueries interface {
	// CheckDate parses a booking date and rejects days already past.
	CheckDate(date string) (time.Time, error)
	Resolve(ctx context.Context, date, productID string) ([]availability.Slot, error)
}

type availabilityQueriesImpl struct {
	gateway shared.AvailabilityGateway
	clock   *clock.ZonedClock
	rules   availability.Rules
	logger  *slog.Logger
}

func NewAvailabilityQueries(gateway shared.AvailabilityGateway, clk clock.Clock, cfg config.BookingConfig, logger *slog.Logger) (AvailabilityQueries, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	window, err := slot.NewWindow(slot.Index(cfg.FirstSlot), slot.Index(cfg.LastSlot))
	if err != nil {
		return nil, errs.Wrap(err, "invalid booking window")
	}
	return &availabilityQueriesImpl{
		gateway: gateway,
		clock:   clock.NewZonedClock(clk, loc),
		rules:   availability.Rules{Window: window, LeadSlots: cfg.LeadSlots},
		logger:  logger,
	}, nil
}

func (q *availabilityQueriesImpl) CheckDate(date string) (time.Time, error) {
	day, err := availability.ParseDate(date, q.clock.Location())
	if err != nil {
		return time.Time{}, errs.Validation(err)
	}
	now := q.clock.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if day.Before(today) {
		return time.Time{}, errs.Validation(availability.ErrPastDate)
	}
	return day, nil
}

func (q *availabilityQueriesImpl) Resolve(ctx context.Context, date, productID string) ([]availability.Slot, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, errs.Validation(errs.New("product is required"))
	}
	day, err := q.CheckDate(date)
	if err != nil {
		return nil, err
	}

	raw, err := q.gateway.Availability(ctx, day.Format(availability.DateLayout), productID)
	if err != nil {
		return nil, err
	}

	slots, err := availability.Resolve(raw, day, q.clock.Now(), q.rules)
	if err != nil {
		return nil, errs.Validation(err)
	}

	q.logger.Debug("availability resolved",
		slog.String("product_id", productID),
		slog.String("date", day.Format(availability.DateLayout)),
		slog.Int("slots", len(slots)))
	return slots, nil
}
