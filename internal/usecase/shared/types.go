package shared

import (
	"time"

	"rentaldesk/internal/domain/reservation"
)

// LoginResult is the backend's answer to a successful login.
type LoginResult struct {
	Token string
}

// ActionResult is what the backend returns for a lifecycle action. Either
// field may be missing depending on the endpoint.
type ActionResult struct {
	Reservation  *reservation.Snapshot
	RefundAmount *float64
}

type ActionOutcome string

const (
	OutcomeSucceeded ActionOutcome = "succeeded"
	OutcomeRejected  ActionOutcome = "rejected"
	OutcomeFailed    ActionOutcome = "failed"
)

type ActionEntry struct {
	ReservationID string
	ActorID       string
	ActorRole     string
	Action        reservation.Action
	Outcome       ActionOutcome
	Message       string
	RefundAmount  *float64
	At            time.Time
}
