package reservation

import (
	"errors"
	"slices"
	"time"

	"rentaldesk/internal/domain/equipment"
	"rentaldesk/internal/domain/slot"
	"rentaldesk/internal/domain/user"
)

const (
	StormRefundRate        = 0.5
	DeadlineApproachWindow = 6 * time.Hour
)

var (
	ErrStaffOnly          = errors.New("only staff can perform this action")
	ErrNotOwner           = errors.New("reservation belongs to another customer")
	ErrNotPending         = errors.New("only pending reservations can be marked paid")
	ErrAlreadyCanceled    = errors.New("reservation is already canceled")
	ErrPaidSelfCancel     = errors.New("paid reservations can only be canceled by staff")
	ErrStormRefundNotPaid = errors.New("storm refund requires a paid reservation")
	ErrUnknownAction      = errors.New("unknown reservation action")
)

type Actor struct {
	UserID string
	Role   user.Role
}

// Snapshot is the flat state of a reservation as exchanged with the backend
// and cached per session.
type Snapshot struct {
	ID                 string              `json:"id"`
	UserID             string              `json:"userId,omitempty"`
	Customer           Customer            `json:"customer"`
	Items              []LineItem          `json:"items"`
	Date               string              `json:"date"`
	Slots              []slot.Index        `json:"slots"`
	Riders             *int                `json:"riders,omitempty"`
	Equipment          []equipment.Request `json:"safetyEquipmentRequested,omitempty"`
	PaymentStatus      PaymentStatus       `json:"paymentStatus"`
	CancellationStatus CancellationStatus  `json:"cancellationStatus"`
	TotalPrice         float64             `json:"totalPrice"`
	RefundAmount       *float64            `json:"refundAmount,omitempty"`
	PaymentDeadline    *time.Time          `json:"paymentDeadline,omitempty"`
	CreatedAt          *time.Time          `json:"createdAt,omitempty"`
}

type Reservation struct {
	snap Snapshot
}

func Reconstruct(s Snapshot) *Reservation {
	if s.PaymentStatus == "" {
		s.PaymentStatus = PaymentPending
	}
	if s.CancellationStatus == "" {
		s.CancellationStatus = CancellationNone
	}
	s.Items = slices.Clone(s.Items)
	s.Slots = slices.Clone(s.Slots)
	s.Equipment = slices.Clone(s.Equipment)
	return &Reservation{snap: s}
}

func (r *Reservation) Snapshot() Snapshot {
	s := r.snap
	s.Items = slices.Clone(r.snap.Items)
	s.Slots = slices.Clone(r.snap.Slots)
	s.Equipment = slices.Clone(r.snap.Equipment)
	return s
}

func (r *Reservation) ID() string                             { return r.snap.ID }
func (r *Reservation) UserID() string                         { return r.snap.UserID }
func (r *Reservation) Date() string                           { return r.snap.Date }
func (r *Reservation) PaymentStatus() PaymentStatus           { return r.snap.PaymentStatus }
func (r *Reservation) CancellationStatus() CancellationStatus { return r.snap.CancellationStatus }
func (r *Reservation) TotalPrice() float64                    { return r.snap.TotalPrice }
func (r *Reservation) RefundAmount() *float64                 { return r.snap.RefundAmount }

func (r *Reservation) IsCanceled() bool {
	return r.snap.CancellationStatus != CancellationNone || r.snap.PaymentStatus == PaymentCanceled
}

// FirstSlot returns the earliest reserved slot, or -1 when none is recorded.
func (r *Reservation) FirstSlot() slot.Index {
	if len(r.snap.Slots) == 0 {
		return -1
	}
	return slices.Min(r.snap.Slots)
}

// EffectiveRiders falls back to two riders per reserved unit when the
// reservation was stored without a rider count.
func (r *Reservation) EffectiveRiders() int {
	if r.snap.Riders != nil {
		return *r.snap.Riders
	}
	total := 0
	for _, it := range r.snap.Items {
		total += it.Quantity * 2
	}
	return total
}

func (r *Reservation) DeadlineStatus(now time.Time) DeadlineStatus {
	if r.snap.PaymentDeadline == nil {
		return DeadlineNone
	}
	left := r.snap.PaymentDeadline.Sub(now)
	switch {
	case left < 0:
		return DeadlinePast
	case left < DeadlineApproachWindow:
		return DeadlineApproaching
	default:
		return DeadlineNone
	}
}

// CanCancel reports whether actor may cancel the reservation in its current state.
func (r *Reservation) CanCancel(actor Actor) error {
	if r.IsCanceled() {
		return ErrAlreadyCanceled
	}
	if actor.Role.IsStaff() {
		return nil
	}
	if r.snap.UserID != "" && r.snap.UserID != actor.UserID {
		return ErrNotOwner
	}
	if r.snap.PaymentStatus != PaymentPending {
		return ErrPaidSelfCancel
	}
	return nil
}

func (r *Reservation) MarkPaid(actor Actor) error {
	if !actor.Role.IsStaff() {
		return ErrStaffOnly
	}
	if r.IsCanceled() {
		return ErrAlreadyCanceled
	}
	if r.snap.PaymentStatus != PaymentPending {
		return ErrNotPending
	}
	r.snap.PaymentStatus = PaymentPaid
	return nil
}

func (r *Reservation) Cancel(actor Actor) error {
	if err := r.CanCancel(actor); err != nil {
		return err
	}
	r.snap.PaymentStatus = PaymentCanceled
	r.snap.CancellationStatus = CancellationCanceled
	return nil
}

// StormRefund refunds half of the total unless override carries the amount
// the backend actually refunded.
func (r *Reservation) StormRefund(actor Actor, override *float64) error {
	if !actor.Role.IsStaff() {
		return ErrStaffOnly
	}
	if r.snap.PaymentStatus != PaymentPaid || r.snap.CancellationStatus != CancellationNone {
		return ErrStormRefundNotPaid
	}
	amount := r.snap.TotalPrice * StormRefundRate
	if override != nil {
		amount = *override
	}
	r.snap.PaymentStatus = PaymentPartialRefund
	r.snap.CancellationStatus = CancellationStormRefund
	r.snap.RefundAmount = &amount
	return nil
}

func (r *Reservation) Apply(action Action, actor Actor) error {
	switch action {
	case ActionMarkPaid:
		return r.MarkPaid(actor)
	case ActionCancel:
		return r.Cancel(actor)
	case ActionStormRefund:
		return r.StormRefund(actor, nil)
	default:
		return ErrUnknownAction
	}
}
