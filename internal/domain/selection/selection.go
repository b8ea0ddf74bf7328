package selection

import (
	"errors"
	"slices"

	"rentaldesk/internal/domain/availability"
	"rentaldesk/internal/domain/slot"
)

const DefaultMaxSlots = 3

const (
	MsgTooManySlots   = "too many slots"
	MsgNonConsecutive = "non-consecutive"
	MsgNotAvailable   = "slot not available"
)

var (
	ErrEmpty          = errors.New("at least one slot must be selected")
	ErrTooManySlots   = errors.New(MsgTooManySlots)
	ErrNonConsecutive = errors.New(MsgNonConsecutive)
)

// Selection is an ascending run of consecutive slots.
type Selection struct {
	slots []slot.Index
}

// Restore rebuilds a selection that was validated when it was stored.
func Restore(slots []slot.Index) Selection {
	return Selection{slots: slices.Clone(slots)}
}

func (s Selection) Slots() []slot.Index {
	return slices.Clone(s.slots)
}

func (s Selection) Len() int { return len(s.slots) }

func (s Selection) Contains(idx slot.Index) bool {
	return slices.Contains(s.slots, idx)
}

type Outcome struct {
	Selection Selection
	Accepted  bool
	Message   string
}

type Validator struct {
	maxSlots int
}

func NewValidator(maxSlots int) *Validator {
	if maxSlots <= 0 {
		maxSlots = DefaultMaxSlots
	}
	return &Validator{maxSlots: maxSlots}
}

func (v *Validator) MaxSlots() int { return v.maxSlots }

// Toggle removes idx when it is already selected, otherwise tries to add it.
// A rejected toggle returns the unchanged selection.
func (v *Validator) Toggle(sel Selection, idx slot.Index) Outcome {
	if sel.Contains(idx) {
		next := make([]slot.Index, 0, len(sel.slots)-1)
		for _, s := range sel.slots {
			if s != idx {
				next = append(next, s)
			}
		}
		return Outcome{Selection: Selection{slots: next}, Accepted: true}
	}

	candidate := append(sel.Slots(), idx)
	slices.Sort(candidate)
	if err := v.check(candidate); err != nil {
		return Outcome{Selection: sel, Accepted: false, Message: err.Error()}
	}
	return Outcome{Selection: Selection{slots: candidate}, Accepted: true}
}

// ToggleWithin is Toggle restricted to slots the resolved availability marks selectable.
func (v *Validator) ToggleWithin(sel Selection, idx slot.Index, avail []availability.Slot) Outcome {
	if !sel.Contains(idx) && !availability.IsSelectable(avail, idx) {
		return Outcome{Selection: sel, Accepted: false, Message: MsgNotAvailable}
	}
	return v.Toggle(sel, idx)
}

func (v *Validator) Validate(slots []slot.Index) (Selection, error) {
	if len(slots) == 0 {
		return Selection{}, ErrEmpty
	}
	sorted := slices.Clone(slots)
	slices.Sort(sorted)
	if err := v.check(sorted); err != nil {
		return Selection{}, err
	}
	return Selection{slots: sorted}, nil
}

func (v *Validator) check(sorted []slot.Index) error {
	if len(sorted) > v.maxSlots {
		return ErrTooManySlots
	}
	for i := 1; i < len(sorted); i++ {
		if sorted[i]-sorted[i-1] != 1 {
			return ErrNonConsecutive
		}
	}
	return nil
}
