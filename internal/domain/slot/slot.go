package slot

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const MinutesPerSlot = 30

var (
	ErrInvalidTime   = errors.New("time must be HH:MM on the 30-minute grid")
	ErrInvalidWindow = errors.New("invalid operating window")
)

// Index numbers the 30-minute intervals of a day starting at 00:00.
type Index int

func (i Index) Time() string {
	return ToTime(i)
}

func ToTime(i Index) string {
	if i < 0 {
		i = 0
	}
	hours := int(i) / 2
	minutes := "00"
	if i%2 == 1 {
		minutes = "30"
	}
	return fmt.Sprintf("%02d:%s", hours, minutes)
}

func FromTime(s string) (Index, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, ErrInvalidTime
	}
	switch t.Minute() {
	case 0:
		return Index(t.Hour() * 2), nil
	case MinutesPerSlot:
		return Index(t.Hour()*2 + 1), nil
	default:
		return 0, ErrInvalidTime
	}
}

// AtTime returns the slot that contains t's wall-clock time.
func AtTime(t time.Time) Index {
	idx := t.Hour() * 2
	if t.Minute() >= MinutesPerSlot {
		idx++
	}
	return Index(idx)
}

// Window is an inclusive range of bookable slots.
type Window struct {
	first Index
	last  Index
}

func NewWindow(first, last Index) (Window, error) {
	if first < 0 || last < first {
		return Window{}, ErrInvalidWindow
	}
	return Window{first: first, last: last}, nil
}

func (w Window) First() Index { return w.first }
func (w Window) Last() Index  { return w.last }

func (w Window) Contains(i Index) bool {
	return i >= w.first && i <= w.last
}

func (w Window) Indices() []Index {
	out := make([]Index, 0, int(w.last-w.first)+1)
	for i := w.first; i <= w.last; i++ {
		out = append(out, i)
	}
	return out
}

func FormatRange(indices []Index) string {
	labels := make([]string, len(indices))
	for i, idx := range indices {
		labels[i] = ToTime(idx)
	}
	return strings.Join(labels, " - ")
}
