package equipment

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidKind       = errors.New("invalid equipment type")
	ErrInvalidSize       = errors.New("invalid equipment size")
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrRidersOutOfRange  = errors.New("riders out of range")
	ErrRidersRequired    = errors.New("riders are required for this product")
	ErrKindNotRequired   = errors.New("equipment type not required for this product")
	ErrBelowZero         = errors.New("size quantity cannot go below zero")
	ErrKindFull          = errors.New("all riders already have this equipment assigned")
	ErrDistributionCount = errors.New("equipment sizes do not match riders")
)

type RiderRange struct {
	Min int
	Max int
}

func RiderBounds(reservedQuantity int) RiderRange {
	return RiderRange{Min: max(1, reservedQuantity), Max: reservedQuantity * 2}
}

func (r RiderRange) Contains(riders int) bool {
	return riders >= r.Min && riders <= r.Max
}

type RangeError struct {
	Range RiderRange
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("riders must be within [%d,%d]", e.Range.Min, e.Range.Max)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrRidersOutOfRange
}

func ValidateRiders(riders, reservedQuantity int) error {
	if reservedQuantity < 1 {
		return ErrInvalidQuantity
	}
	bounds := RiderBounds(reservedQuantity)
	if !bounds.Contains(riders) {
		return &RangeError{Range: bounds}
	}
	return nil
}

func RequiredHelmets(riders int) int {
	return riders
}

func RequiredJackets(productType ProductType, riders int) int {
	if productType != ProductJetSki {
		return 0
	}
	return riders
}

type Line struct {
	Type     ProductType
	Quantity int
}

// Requirement is what a set of reserved products demands of riders and
// safety equipment. Only rider-capable products contribute.
type Requirement struct {
	ReservedQuantity int
	Kinds            []Kind
}

func RequirementFor(lines ...Line) Requirement {
	var req Requirement
	jetSki := false
	for _, l := range lines {
		if !l.Type.RiderCapable() {
			continue
		}
		req.ReservedQuantity += l.Quantity
		if l.Type == ProductJetSki {
			jetSki = true
		}
	}
	if req.ReservedQuantity > 0 {
		req.Kinds = append(req.Kinds, KindHelmet)
		if jetSki {
			req.Kinds = append(req.Kinds, KindLifeJacket)
		}
	}
	return req
}

func (r Requirement) RiderCapable() bool {
	return r.ReservedQuantity > 0
}

func (r Requirement) Requires(kind Kind) bool {
	for _, k := range r.Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

func (r Requirement) Bounds() RiderRange {
	return RiderBounds(r.ReservedQuantity)
}

func (r Requirement) ValidateRiders(riders int) error {
	return ValidateRiders(riders, r.ReservedQuantity)
}

type CountError struct {
	Kind     Kind
	Required int
	Got      int
}

func (e *CountError) Error() string {
	return fmt.Sprintf("%s must total exactly %d", e.Kind.label(), e.Required)
}

func (e *CountError) Is(target error) bool {
	return target == ErrDistributionCount
}

// ValidateSubmission checks riders and that each required kind's sizes add
// up to exactly the rider count.
func (r Requirement) ValidateSubmission(riders int, d Distributions) error {
	if !r.RiderCapable() {
		return nil
	}
	if err := r.ValidateRiders(riders); err != nil {
		return err
	}
	for _, kind := range r.Kinds {
		if got := d[kind].Total(); got != riders {
			return &CountError{Kind: kind, Required: riders, Got: got}
		}
	}
	return nil
}

type Request struct {
	Type     Kind `json:"type"`
	Size     Size `json:"size"`
	Quantity int  `json:"quantity"`
}

func (r Requirement) ToRequests(d Distributions) []Request {
	var out []Request
	for _, kind := range r.Kinds {
		dist := d[kind]
		for _, size := range Sizes {
			if qty := dist[size]; qty > 0 {
				out = append(out, Request{Type: kind, Size: size, Quantity: qty})
			}
		}
	}
	return out
}
