package shared

import (
	"context"

	"rentaldesk/internal/domain/availability"
	"rentaldesk/internal/domain/equipment"
	"rentaldesk/internal/domain/reservation"
	"rentaldesk/internal/usecase/readmodel"
)

// Gateways to the external booking backend. Calls that act on behalf of a
// user take its bearer token.

type AuthGateway interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}

type ProductGateway interface {
	ListProducts(ctx context.Context) ([]readmodel.ProductRM, error)
	UpdateProductQuantity(ctx context.Context, token, productID string, quantity int) (*readmodel.ProductRM, error)
}

type AvailabilityGateway interface {
	Availability(ctx context.Context, date, productID string) ([]availability.RawSlot, error)
}

type ReservationGateway interface {
	CreateReservation(ctx context.Context, token string, b *reservation.Booking) (*reservation.Snapshot, error)
	ListReservations(ctx context.Context, token string) ([]reservation.Snapshot, error)
	ReservationsByDate(ctx context.Context, token, date string) ([]reservation.Snapshot, error)
	MarkPaid(ctx context.Context, token, id string, method reservation.PaymentMethod) (*ActionResult, error)
	CancelReservation(ctx context.Context, token, id string) (*ActionResult, error)
	StormRefund(ctx context.Context, token, id string) (*ActionResult, error)
}

type EquipmentGateway interface {
	ListEquipment(ctx context.Context, token string) ([]readmodel.EquipmentItemRM, error)
	CreateEquipment(ctx context.Context, token string, item *equipment.Item) (*readmodel.EquipmentItemRM, error)
	UpdateEquipment(ctx context.Context, token, id string, item *equipment.Item) (*readmodel.EquipmentItemRM, error)
	DeleteEquipment(ctx context.Context, token, id string) error
}

// ReservationBoard caches, per session, the reservations the session has
// listed so lifecycle actions can be applied optimistically.
type ReservationBoard interface {
	Put(ctx context.Context, sessionKey string, snaps ...reservation.Snapshot) error
	Get(ctx context.Context, sessionKey, id string) (*reservation.Snapshot, error)
}

type ActionJournal interface {
	Append(ctx context.Context, e ActionEntry) error
	ListByReservation(ctx context.Context, reservationID string) ([]readmodel.ActionRecordRM, error)
}
