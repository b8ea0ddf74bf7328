package equipment

import (
	"errors"
	"strings"
)

var ErrInvalidStatus = errors.New("invalid equipment status")

type Status string

const (
	StatusAvailable   Status = "available"
	StatusMaintenance Status = "maintenance"
	StatusUnavailable Status = "unavailable"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusMaintenance, StatusUnavailable:
		return true
	default:
		return false
	}
}

// Item is one line of the safety-equipment inventory kept by the backend.
type Item struct {
	kind     Kind
	size     Size
	quantity int
	status   Status
}

func NewItem(kind, size string, quantity int, status string) (*Item, error) {
	k, err := NewKind(strings.TrimSpace(kind))
	if err != nil {
		return nil, err
	}
	sz, err := NewSize(size)
	if err != nil {
		return nil, err
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	st := Status(strings.TrimSpace(status))
	if st == "" {
		st = StatusAvailable
	}
	if !st.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Item{kind: k, size: sz, quantity: quantity, status: st}, nil
}

func (i *Item) Kind() Kind     { return i.kind }
func (i *Item) Size() Size     { return i.size }
func (i *Item) Quantity() int  { return i.quantity }
func (i *Item) Status() Status { return i.status }
