package request

import (
	"rentaldesk/internal/domain/equipment"
	"rentaldesk/internal/domain/reservation"
	"rentaldesk/internal/domain/slot"
	"rentaldesk/internal/pkg/patch"
	"rentaldesk/internal/usecase/commands"
	"rentaldesk/internal/usecase/queries"
)

type CustomerRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

type LineItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type CreateReservationRequest struct {
	Customer  CustomerRequest         `json:"customer"`
	Products  []LineItemRequest       `json:"products" binding:"required,min=1,dive"`
	Date      string                  `json:"date" binding:"required"`
	Slots     []int                   `json:"slots"`
	Riders    *int                    `json:"riders,omitempty"`
	Equipment equipment.Distributions `json:"equipment,omitempty"`
}

func (r CreateReservationRequest) ToParams() reservation.BookingParams {
	items := make([]reservation.LineItem, len(r.Products))
	for i, p := range r.Products {
		items[i] = reservation.LineItem{ProductID: p.ProductID, Quantity: p.Quantity}
	}
	slots := make([]slot.Index, len(r.Slots))
	for i, s := range r.Slots {
		slots[i] = slot.Index(s)
	}
	return reservation.BookingParams{
		CustomerName:    r.Customer.Name,
		CustomerContact: r.Customer.Contact,
		Items:           items,
		Date:            r.Date,
		Slots:           slots,
		Riders:          r.Riders,
		Equipment:       r.Equipment,
	}
}

type PaymentMethodRequest struct {
	Type     *string `json:"type,omitempty"`
	Currency *string `json:"currency,omitempty"`
}

// ActionRequest is the body of the lifecycle endpoints. Without confirm the
// action is not sent and the prompt to confirm comes back instead.
type ActionRequest struct {
	Confirm       bool                  `json:"confirm"`
	PaymentMethod *PaymentMethodRequest `json:"paymentMethod,omitempty"`
}

func (r ActionRequest) ToOptions() commands.ActionOptions {
	opts := commands.ActionOptions{Confirm: r.Confirm}
	if r.PaymentMethod != nil {
		def := reservation.DefaultPaymentMethod()
		opts.PaymentMethod = reservation.PaymentMethod{
			Type:     patch.Coalesce(r.PaymentMethod.Type, def.Type),
			Currency: patch.Coalesce(r.PaymentMethod.Currency, def.Currency),
		}
	}
	return opts
}

type ListReservationsQuery struct {
	Status string `form:"status"`
	Date   string `form:"date"`
}

func (q ListReservationsQuery) ToFilter() queries.ReservationFilter {
	return queries.ReservationFilter{Status: q.Status, Date: q.Date}
}
