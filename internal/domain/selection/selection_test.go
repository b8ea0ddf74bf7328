//go:build unit

package selection_test

import (
	"testing"

	"rentaldesk/internal/domain/availability"
	"rentaldesk/internal/domain/selection"
	"rentaldesk/internal/domain/slot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type toggleCase struct {
	name     string
	current  []slot.Index
	toggle   slot.Index
	want     []slot.Index
	accepted bool
	message  string
}

func TestToggle(t *testing.T) {
	v := selection.NewValidator(selection.DefaultMaxSlots)

	cases := []toggleCase{
		{name: "空から追加OK", current: nil, toggle: 20, want: []slot.Index{20}, accepted: true},
		{name: "前に連続追加OK", current: []slot.Index{20}, toggle: 19, want: []slot.Index{19, 20}, accepted: true},
		{name: "3つ目の連続追加OK", current: []slot.Index{19, 20}, toggle: 21, want: []slot.Index{19, 20, 21}, accepted: true},
		{name: "選択済みは解除OK", current: []slot.Index{19, 20, 21}, toggle: 20, want: []slot.Index{19, 21}, accepted: true},
		{name: "唯一の選択を解除OK", current: []slot.Index{19}, toggle: 19, want: []slot.Index{}, accepted: true},
		{
			name: "4つ目はNGで元に戻る", current: []slot.Index{19, 20, 21}, toggle: 22,
			want: []slot.Index{19, 20, 21}, accepted: false, message: selection.MsgTooManySlots,
		},
		{
			name: "飛び番号はNGで元に戻る", current: []slot.Index{18}, toggle: 20,
			want: []slot.Index{18}, accepted: false, message: selection.MsgNonConsecutive,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out := v.Toggle(selection.Restore(c.current), c.toggle)

			assert.Equal(t, c.accepted, out.Accepted)
			assert.Equal(t, c.message, out.Message)
			assert.ElementsMatch(t, c.want, out.Selection.Slots())
		})
	}
}

func TestToggleKeepsInvariant(t *testing.T) {
	v := selection.NewValidator(selection.DefaultMaxSlots)
	sel := selection.Restore(nil)

	for _, idx := range []slot.Index{25, 18, 26, 24, 27, 23, 26, 19, 25, 20} {
		sel = v.Toggle(sel, idx).Selection
		slots := sel.Slots()
		require.LessOrEqual(t, len(slots), 3)
		for i := 1; i < len(slots); i++ {
			require.Equal(t, slot.Index(1), slots[i]-slots[i-1], "selection %v", slots)
		}
	}
}

func TestToggleWithin(t *testing.T) {
	v := selection.NewValidator(selection.DefaultMaxSlots)
	avail := []availability.Slot{
		{Index: 30, Selectable: false},
		{Index: 32, Selectable: true},
		{Index: 33, Selectable: true},
	}

	t.Run("選択不可スロットNG", func(t *testing.T) {
		out := v.ToggleWithin(selection.Restore(nil), 30, avail)
		assert.False(t, out.Accepted)
		assert.Equal(t, selection.MsgNotAvailable, out.Message)
	})

	t.Run("在庫なしスロットNG", func(t *testing.T) {
		out := v.ToggleWithin(selection.Restore([]slot.Index{32}), 34, avail)
		assert.False(t, out.Accepted)
		assert.Equal(t, []slot.Index{32}, out.Selection.Slots())
	})

	t.Run("選択可能スロットOK", func(t *testing.T) {
		out := v.ToggleWithin(selection.Restore([]slot.Index{32}), 33, avail)
		assert.True(t, out.Accepted)
		assert.Equal(t, []slot.Index{32, 33}, out.Selection.Slots())
	})
}

func TestValidate(t *testing.T) {
	v := selection.NewValidator(0)

	t.Run("連続スロットOK", func(t *testing.T) {
		sel, err := v.Validate([]slot.Index{20, 18, 19})
		require.NoError(t, err)
		assert.Equal(t, []slot.Index{18, 19, 20}, sel.Slots())
	})

	t.Run("飛び番号NG", func(t *testing.T) {
		_, err := v.Validate([]slot.Index{18, 20})
		require.ErrorIs(t, err, selection.ErrNonConsecutive)
	})

	t.Run("重複NG", func(t *testing.T) {
		_, err := v.Validate([]slot.Index{18, 18})
		require.ErrorIs(t, err, selection.ErrNonConsecutive)
	})

	t.Run("4スロットNG", func(t *testing.T) {
		_, err := v.Validate([]slot.Index{18, 19, 20, 21})
		require.ErrorIs(t, err, selection.ErrTooManySlots)
	})

	t.Run("空NG", func(t *testing.T) {
		_, err := v.Validate(nil)
		require.ErrorIs(t, err, selection.ErrEmpty)
	})
}
