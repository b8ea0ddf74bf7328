package readmodel

import (
	"time"

	"rentaldesk/internal/domain/reservation"
	"rentaldesk/internal/domain/slot"
)

// ReservationRM is a reservation as listed to the dashboard, with the values
// the staff views derive from it.
type ReservationRM struct {
	reservation.Snapshot
	SlotsLabel      string                     `json:"slotsLabel"`
	EffectiveRiders int                        `json:"effectiveRiders"`
	DeadlineStatus  reservation.DeadlineStatus `json:"deadlineStatus,omitempty"`
}

func NewReservationRM(r *reservation.Reservation, now time.Time) ReservationRM {
	snap := r.Snapshot()
	return ReservationRM{
		Snapshot:        snap,
		SlotsLabel:      slot.FormatRange(snap.Slots),
		EffectiveRiders: r.EffectiveRiders(),
		DeadlineStatus:  r.DeadlineStatus(now),
	}
}

type ActionRecordRM struct {
	ID            string    `json:"id"`
	ReservationID string    `json:"reservationId"`
	ActorID       string    `json:"actorId"`
	ActorRole     string    `json:"actorRole"`
	Action        string    `json:"action"`
	Outcome       string    `json:"outcome"`
	Message       *string   `json:"message,omitempty"`
	RefundAmount  *float64  `json:"refundAmount,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
