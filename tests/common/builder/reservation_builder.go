//go:build unit || e2e

package builder

import (
	"time"

	"rentaldesk/internal/domain/equipment"
	"rentaldesk/internal/domain/reservation"
	"rentaldesk/internal/domain/selection"
	"rentaldesk/internal/domain/slot"
	"rentaldesk/internal/usecase/readmodel"
)

type ReservationBuilder struct {
	ID                 string
	UserID             string
	CustomerName       string
	CustomerContact    string
	ProductID          string
	ProductType        equipment.ProductType
	Quantity           int
	Date               string
	Slots              []slot.Index
	Riders             *int
	PaymentStatus      reservation.PaymentStatus
	CancellationStatus reservation.CancellationStatus
	TotalPrice         float64
	RefundAmount       *float64
	PaymentDeadline    *time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	riders := 2
	deadline := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:                 "res-1",
		UserID:             "user-1",
		CustomerName:       "Ana Pérez",
		CustomerContact:    "+34 600 000 000",
		ProductID:          "prod-jetski",
		ProductType:        equipment.ProductJetSki,
		Quantity:           1,
		Date:               "2025-07-02",
		Slots:              []slot.Index{18, 19},
		Riders:             &riders,
		PaymentStatus:      reservation.PaymentPending,
		CancellationStatus: reservation.CancellationNone,
		TotalPrice:         200,
		PaymentDeadline:    &deadline,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildSnapshot() reservation.Snapshot {
	return reservation.Snapshot{
		ID:                 b.ID,
		UserID:             b.UserID,
		Customer:           reservation.Customer{Name: b.CustomerName, Contact: b.CustomerContact},
		Items:              []reservation.LineItem{{ProductID: b.ProductID, ProductType: b.ProductType, Quantity: b.Quantity}},
		Date:               b.Date,
		Slots:              b.Slots,
		Riders:             b.Riders,
		PaymentStatus:      b.PaymentStatus,
		CancellationStatus: b.CancellationStatus,
		TotalPrice:         b.TotalPrice,
		RefundAmount:       b.RefundAmount,
		PaymentDeadline:    b.PaymentDeadline,
	}
}

func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	return reservation.Reconstruct(b.BuildSnapshot())
}

func (b *ReservationBuilder) BuildReadModel(now time.Time) *readmodel.ReservationRM {
	rm := readmodel.NewReservationRM(b.BuildDomain(), now)
	return &rm
}

// Fluent builder methods
func (b *ReservationBuilder) WithID(id string) *ReservationBuilder {
	b.ID = id
	return b
}

func (b *ReservationBuilder) WithUserID(userID string) *ReservationBuilder {
	b.UserID = userID
	return b
}

func (b *ReservationBuilder) WithDate(date string) *ReservationBuilder {
	b.Date = date
	return b
}

func (b *ReservationBuilder) WithSlots(slots ...slot.Index) *ReservationBuilder {
	b.Slots = slots
	return b
}

func (b *ReservationBuilder) WithoutRiders() *ReservationBuilder {
	b.Riders = nil
	return b
}

func (b *ReservationBuilder) WithQuantity(q int) *ReservationBuilder {
	b.Quantity = q
	return b
}

func (b *ReservationBuilder) WithTotalPrice(p float64) *ReservationBuilder {
	b.TotalPrice = p
	return b
}

func (b *ReservationBuilder) AsPaid() *ReservationBuilder {
	b.PaymentStatus = reservation.PaymentPaid
	return b
}

func (b *ReservationBuilder) AsCanceled() *ReservationBuilder {
	b.PaymentStatus = reservation.PaymentCanceled
	b.CancellationStatus = reservation.CancellationCanceled
	return b
}

type BookingBuilder struct {
	Params reservation.BookingParams
}

func NewBookingBuilder() *BookingBuilder {
	riders := 2
	return &BookingBuilder{Params: reservation.BookingParams{
		CustomerName:    "Ana Pérez",
		CustomerContact: "ana@example.com",
		Items: []reservation.LineItem{
			{ProductID: "prod-jetski", ProductType: equipment.ProductJetSki, Quantity: 1},
		},
		Date:   "2025-07-02",
		Slots:  []slot.Index{18, 19, 20},
		Riders: &riders,
		Equipment: equipment.Distributions{
			equipment.KindHelmet:     {equipment.SizeM: 1, equipment.SizeL: 1},
			equipment.KindLifeJacket: {equipment.SizeM: 2},
		},
	}}
}

func (b *BookingBuilder) With(mutate func(*reservation.BookingParams)) *BookingBuilder {
	mutate(&b.Params)
	return b
}

func (b *BookingBuilder) BuildDomain() (*reservation.Booking, error) {
	return reservation.NewBooking(selection.NewValidator(selection.DefaultMaxSlots), b.Params)
}
