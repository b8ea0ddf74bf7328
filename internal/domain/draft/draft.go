package draft

import (
	"errors"
	"slices"
	"strings"
	"time"

	"rentaldesk/internal/domain/availability"
	"rentaldesk/internal/domain/equipment"
	"rentaldesk/internal/domain/reservation"
	"rentaldesk/internal/domain/selection"
	"rentaldesk/internal/domain/slot"
)

var (
	ErrQuantityOutOfStock = errors.New("quantity exceeds available stock")
	ErrProductOutOfStock  = errors.New("product is out of stock")
	ErrDateRequired       = errors.New("select a date first")
	ErrNotRiderCapable    = errors.New("product does not take riders")
)

// Product is the part of a catalog entry a draft needs.
type Product struct {
	ID    string                `json:"id"`
	Name  string                `json:"name"`
	Type  equipment.ProductType `json:"type"`
	Price float64               `json:"price"`
	Stock int                   `json:"stock"`
}

// Draft is the server-side state of an open booking form. It is persisted as
// JSON, so every field is exported.
type Draft struct {
	ID           string                  `json:"id"`
	OwnerKey     string                  `json:"ownerKey"`
	Product      Product                 `json:"product"`
	Quantity     int                     `json:"quantity"`
	Date         string                  `json:"date,omitempty"`
	Generation   int64                   `json:"generation"`
	Availability []availability.Slot     `json:"availability"`
	Loaded       bool                    `json:"availabilityLoaded"`
	Slots        []slot.Index            `json:"slots"`
	Riders       *int                    `json:"riders,omitempty"`
	Equipment    equipment.Distributions `json:"equipment,omitempty"`
	Customer     reservation.Customer    `json:"customer"`
	Message      string                  `json:"message,omitempty"`
	UpdatedAt    time.Time               `json:"updatedAt"`
}

func New(id, ownerKey string, p Product, quantity int, now time.Time) (*Draft, error) {
	if p.Stock < 1 {
		return nil, ErrProductOutOfStock
	}
	if quantity < 1 {
		return nil, equipment.ErrInvalidQuantity
	}
	if quantity > p.Stock {
		return nil, ErrQuantityOutOfStock
	}
	return &Draft{
		ID:        id,
		OwnerKey:  ownerKey,
		Product:   p,
		Quantity:  quantity,
		Slots:     []slot.Index{},
		UpdatedAt: now,
	}, nil
}

func (d *Draft) Requirement() equipment.Requirement {
	return equipment.RequirementFor(equipment.Line{Type: d.Product.Type, Quantity: d.Quantity})
}

// SetDate switches the draft to another day. The selection and the loaded
// availability belong to the old day and are dropped; the returned
// generation identifies the availability fetch for the new day.
func (d *Draft) SetDate(date string, now time.Time) int64 {
	d.Date = strings.TrimSpace(date)
	d.Generation++
	d.Availability = nil
	d.Loaded = false
	d.Slots = []slot.Index{}
	d.Message = ""
	d.UpdatedAt = now
	return d.Generation
}

// ApplyAvailability stores a fetch result only when it answers the draft's
// current date and generation. It reports whether the result was kept.
func (d *Draft) ApplyAvailability(generation int64, date string, slots []availability.Slot) bool {
	if generation != d.Generation || date != d.Date {
		return false
	}
	d.Availability = slices.Clone(slots)
	d.Loaded = true
	return true
}

func (d *Draft) ToggleSlot(v *selection.Validator, idx slot.Index, now time.Time) (selection.Outcome, error) {
	if d.Date == "" {
		return selection.Outcome{}, ErrDateRequired
	}
	out := v.ToggleWithin(selection.Restore(d.Slots), idx, d.Availability)
	d.Slots = out.Selection.Slots()
	d.Message = out.Message
	d.UpdatedAt = now
	return out, nil
}

// SetRiders validates the rider count and clears every size assignment.
func (d *Draft) SetRiders(riders int, now time.Time) error {
	req := d.Requirement()
	if !req.RiderCapable() {
		return ErrNotRiderCapable
	}
	if err := req.ValidateRiders(riders); err != nil {
		return err
	}
	d.Riders = &riders
	d.Equipment = equipment.Distributions{}
	d.UpdatedAt = now
	return nil
}

func (d *Draft) AdjustEquipment(kind equipment.Kind, size equipment.Size, delta int, now time.Time) error {
	if d.Riders == nil {
		return equipment.ErrRidersRequired
	}
	next, err := d.Equipment.Adjust(d.Requirement(), kind, size, delta, *d.Riders)
	if err != nil {
		return err
	}
	d.Equipment = next
	d.UpdatedAt = now
	return nil
}

func (d *Draft) SetCustomer(name, contact string, now time.Time) {
	d.Customer = reservation.Customer{Name: strings.TrimSpace(name), Contact: strings.TrimSpace(contact)}
	d.UpdatedAt = now
}

func (d *Draft) BookingParams() reservation.BookingParams {
	return reservation.BookingParams{
		CustomerName:    d.Customer.Name,
		CustomerContact: d.Customer.Contact,
		Items: []reservation.LineItem{{
			ProductID:   d.Product.ID,
			ProductName: d.Product.Name,
			ProductType: d.Product.Type,
			UnitPrice:   d.Product.Price,
			Quantity:    d.Quantity,
		}},
		Date:      d.Date,
		Slots:     slices.Clone(d.Slots),
		Riders:    d.Riders,
		Equipment: d.Equipment,
	}
}
