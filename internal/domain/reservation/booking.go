package reservation

import (
	"errors"
	"strings"
	"time"

	"rentaldesk/internal/domain/equipment"
	"rentaldesk/internal/domain/selection"
	"rentaldesk/internal/domain/slot"
)

var (
	ErrNoItems         = errors.New("at least one product is required")
	ErrInvalidQuantity = errors.New("product quantity must be at least 1")
	ErrProductRequired = errors.New("product id is required")
	ErrInvalidDate     = errors.New("date must be formatted as YYYY-MM-DD")
)

type BookingParams struct {
	CustomerName    string
	CustomerContact string
	Items           []LineItem
	Date            string
	Slots           []slot.Index
	Riders          *int
	Equipment       equipment.Distributions
}

// Booking is a create request that passed every local rule and can be sent
// to the backend as is.
type Booking struct {
	customer  Customer
	items     []LineItem
	date      string
	selection selection.Selection
	riders    *int
	equipment []equipment.Request
}

func NewBooking(v *selection.Validator, p BookingParams) (*Booking, error) {
	customer, err := NewCustomer(p.CustomerName, p.CustomerContact)
	if err != nil {
		return nil, err
	}

	if len(p.Items) == 0 {
		return nil, ErrNoItems
	}
	for _, it := range p.Items {
		if strings.TrimSpace(it.ProductID) == "" {
			return nil, ErrProductRequired
		}
		if it.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
	}

	date := strings.TrimSpace(p.Date)
	if _, err = time.Parse("2006-01-02", date); err != nil {
		return nil, ErrInvalidDate
	}

	sel, err := v.Validate(p.Slots)
	if err != nil {
		return nil, err
	}

	b := &Booking{
		customer:  customer,
		items:     p.Items,
		date:      date,
		selection: sel,
	}

	req := equipment.RequirementFor(linesOf(p.Items)...)
	if !req.RiderCapable() {
		return b, nil
	}
	if p.Riders == nil {
		return nil, equipment.ErrRidersRequired
	}
	if err = req.ValidateSubmission(*p.Riders, p.Equipment); err != nil {
		return nil, err
	}
	riders := *p.Riders
	b.riders = &riders
	b.equipment = req.ToRequests(p.Equipment)
	return b, nil
}

func (b *Booking) Customer() Customer             { return b.customer }
func (b *Booking) Items() []LineItem              { return b.items }
func (b *Booking) Date() string                   { return b.date }
func (b *Booking) Slots() []slot.Index            { return b.selection.Slots() }
func (b *Booking) Riders() *int                   { return b.riders }
func (b *Booking) Equipment() []equipment.Request { return b.equipment }
