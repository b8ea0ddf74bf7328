package response

import (
	"time"

	"rentaldesk/internal/domain/availability"
	"rentaldesk/internal/domain/draft"
	"rentaldesk/internal/domain/equipment"
	"rentaldesk/internal/domain/reservation"
	"rentaldesk/internal/domain/slot"
	"rentaldesk/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

type RiderRangeResponse struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type DraftResponse struct {
	ID                 string                  `json:"id"`
	Product            draft.Product           `json:"product"`
	Quantity           int                     `json:"quantity"`
	Date               string                  `json:"date,omitempty"`
	Availability       []availability.Slot     `json:"availability"`
	AvailabilityLoaded bool                    `json:"availabilityLoaded"`
	Slots              []slot.Index            `json:"slots"`
	SlotsLabel         string                  `json:"slotsLabel,omitempty"`
	Riders             *int                    `json:"riders,omitempty"`
	RiderRange         *RiderRangeResponse     `json:"riderRange,omitempty"`
	RequiredEquipment  []equipment.Kind        `json:"requiredEquipment,omitempty"`
	Equipment          equipment.Distributions `json:"equipment,omitempty"`
	Customer           reservation.Customer    `json:"customer"`
	Message            string                  `json:"message,omitempty"`
	UpdatedAt          time.Time               `json:"updatedAt"`
}

type ToggleResponse struct {
	Draft    *DraftResponse `json:"draft"`
	Accepted bool           `json:"accepted"`
	Message  string         `json:"message,omitempty"`
}

func FromDraft(d *draft.Draft) (*DraftResponse, error) {
	var resp DraftResponse
	if err := copier.CopyWithOption(&resp, d, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	resp.AvailabilityLoaded = d.Loaded
	if resp.Availability == nil {
		resp.Availability = []availability.Slot{}
	}
	if resp.Slots == nil {
		resp.Slots = []slot.Index{}
	}
	if len(d.Slots) > 0 {
		resp.SlotsLabel = slot.FormatRange(d.Slots)
	}
	if req := d.Requirement(); req.RiderCapable() {
		bounds := req.Bounds()
		resp.RiderRange = &RiderRangeResponse{Min: bounds.Min, Max: bounds.Max}
		resp.RequiredEquipment = req.Kinds
	}
	return &resp, nil
}

func FromToggleResult(res *commands.ToggleResult) (*ToggleResponse, error) {
	d, err := FromDraft(res.Draft)
	if err != nil {
		return nil, err
	}
	return &ToggleResponse{Draft: d, Accepted: res.Accepted, Message: res.Message}, nil
}
