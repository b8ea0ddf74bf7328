package availability

import (
	"errors"
	"sort"
	"strings"
	"time"

	"rentaldesk/internal/domain/slot"
)

const DateLayout = "2006-01-02"

var (
	ErrInvalidDate = errors.New("date must be formatted as YYYY-MM-DD")
	ErrPastDate    = errors.New("date is in the past")
)

// RawSlot is one entry of the backend's per-day availability listing.
type RawSlot struct {
	Index             slot.Index
	Time              string
	AvailableQuantity int
}

type Slot struct {
	Index             slot.Index `json:"slot"`
	Time              string     `json:"time"`
	AvailableQuantity int        `json:"availableQuantity"`
	Selectable        bool       `json:"selectable"`
}

type Rules struct {
	Window    slot.Window
	LeadSlots int
}

func ParseDate(s string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// Resolve keeps the in-window slots that still have stock. On the current
// day every slot earlier than the lead-time cutoff stays listed but is not
// selectable. now must already be expressed in the booking location.
func Resolve(raw []RawSlot, date, now time.Time, rules Rules) ([]Slot, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	if day.Before(today) {
		return nil, ErrPastDate
	}

	sameDay := day.Equal(today)
	cutoff := slot.AtTime(now) + slot.Index(rules.LeadSlots)

	out := make([]Slot, 0, len(raw))
	for _, r := range raw {
		if r.AvailableQuantity <= 0 || !rules.Window.Contains(r.Index) {
			continue
		}
		label := r.Time
		if label == "" {
			label = slot.ToTime(r.Index)
		}
		out = append(out, Slot{
			Index:             r.Index,
			Time:              label,
			AvailableQuantity: r.AvailableQuantity,
			Selectable:        !sameDay || r.Index >= cutoff,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out, nil
}

func IsSelectable(slots []Slot, idx slot.Index) bool {
	for _, s := range slots {
		if s.Index == idx {
			return s.Selectable
		}
	}
	return false
}

func SelectableIndices(slots []Slot) []slot.Index {
	out := make([]slot.Index, 0, len(slots))
	for _, s := range slots {
		if s.Selectable {
			out = append(out, s.Index)
		}
	}
	return out
}
