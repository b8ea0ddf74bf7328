package response

import (
	"time"

	"rentaldesk/internal/domain/equipment"
	"rentaldesk/internal/domain/reservation"
	"rentaldesk/internal/domain/slot"
	"rentaldesk/internal/usecase/commands"
	"rentaldesk/internal/usecase/readmodel"

	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID                 string                         `json:"id"`
	UserID             string                         `json:"userId,omitempty"`
	Customer           reservation.Customer           `json:"customer"`
	Items              []reservation.LineItem         `json:"items"`
	Date               string                         `json:"date"`
	Slots              []slot.Index                   `json:"slots"`
	SlotsLabel         string                         `json:"slotsLabel"`
	Riders             *int                           `json:"riders,omitempty"`
	EffectiveRiders    int                            `json:"effectiveRiders"`
	Equipment          []equipment.Request            `json:"safetyEquipmentRequested,omitempty"`
	PaymentStatus      reservation.PaymentStatus      `json:"paymentStatus"`
	CancellationStatus reservation.CancellationStatus `json:"cancellationStatus"`
	TotalPrice         float64                        `json:"totalPrice"`
	RefundAmount       *float64                       `json:"refundAmount,omitempty"`
	PaymentDeadline    *time.Time                     `json:"paymentDeadline,omitempty"`
	DeadlineStatus     reservation.DeadlineStatus     `json:"deadlineStatus,omitempty"`
	CreatedAt          *time.Time                     `json:"createdAt,omitempty"`
}

type ActionResponse struct {
	Reservation  ReservationResponse `json:"reservation"`
	RefundAmount *float64            `json:"refundAmount,omitempty"`
}

func FromReservationRM(rm *readmodel.ReservationRM) (*ReservationResponse, error) {
	var resp ReservationResponse
	if err := copier.CopyWithOption(&resp, rm, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	if resp.Items == nil {
		resp.Items = []reservation.LineItem{}
	}
	if resp.Slots == nil {
		resp.Slots = []slot.Index{}
	}
	return &resp, nil
}

func FromReservationRMs(rms []readmodel.ReservationRM) ([]*ReservationResponse, error) {
	out := make([]*ReservationResponse, len(rms))
	for i := range rms {
		resp, err := FromReservationRM(&rms[i])
		if err != nil {
			return nil, err
		}
		out[i] = resp
	}
	return out, nil
}

func FromActionResult(res *commands.ActionResult) (*ActionResponse, error) {
	reservationResp, err := FromReservationRM(&res.Reservation)
	if err != nil {
		return nil, err
	}
	return &ActionResponse{Reservation: *reservationResp, RefundAmount: res.RefundAmount}, nil
}
