//go:build unit

package equipment_test

import (
	"testing"

	"rentaldesk/internal/domain/equipment"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRiderBounds(t *testing.T) {
	cases := []struct {
		name     string
		quantity int
		want     equipment.RiderRange
	}{
		{name: "1台", quantity: 1, want: equipment.RiderRange{Min: 1, Max: 2}},
		{name: "2台", quantity: 2, want: equipment.RiderRange{Min: 2, Max: 4}},
		{name: "3台", quantity: 3, want: equipment.RiderRange{Min: 3, Max: 6}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, equipment.RiderBounds(c.quantity))
		})
	}
}

func TestValidateRiders(t *testing.T) {
	t.Run("範囲内OK", func(t *testing.T) {
		for _, riders := range []int{2, 3, 4} {
			require.NoError(t, equipment.ValidateRiders(riders, 2), "riders=%d", riders)
		}
	})

	t.Run("範囲外NGでメッセージに範囲を含む", func(t *testing.T) {
		for _, riders := range []int{1, 5} {
			err := equipment.ValidateRiders(riders, 2)
			require.ErrorIs(t, err, equipment.ErrRidersOutOfRange)
			assert.Equal(t, "riders must be within [2,4]", err.Error())
		}
	})

	t.Run("数量2なら3人は範囲内、5人は範囲外", func(t *testing.T) {
		assert.NoError(t, equipment.ValidateRiders(3, 2))
		assert.EqualError(t, equipment.ValidateRiders(5, 2), "riders must be within [2,4]")
	})

	t.Run("数量0NG", func(t *testing.T) {
		require.ErrorIs(t, equipment.ValidateRiders(1, 0), equipment.ErrInvalidQuantity)
	})
}

func TestRequiredCounts(t *testing.T) {
	assert.Equal(t, 3, equipment.RequiredHelmets(3))
	assert.Equal(t, 3, equipment.RequiredJackets(equipment.ProductJetSki, 3))
	assert.Equal(t, 0, equipment.RequiredJackets(equipment.ProductATV, 3))
}

func TestRequirementFor(t *testing.T) {
	t.Run("JetSkiはヘルメットとライフジャケット", func(t *testing.T) {
		req := equipment.RequirementFor(equipment.Line{Type: equipment.ProductJetSki, Quantity: 2})
		assert.Equal(t, 2, req.ReservedQuantity)
		assert.Equal(t, []equipment.Kind{equipment.KindHelmet, equipment.KindLifeJacket}, req.Kinds)
	})

	t.Run("ATVはヘルメットのみ", func(t *testing.T) {
		req := equipment.RequirementFor(equipment.Line{Type: equipment.ProductATV, Quantity: 1})
		assert.Equal(t, []equipment.Kind{equipment.KindHelmet}, req.Kinds)
		assert.False(t, req.Requires(equipment.KindLifeJacket))
	})

	t.Run("対象外商品は不要", func(t *testing.T) {
		req := equipment.RequirementFor(equipment.Line{Type: "Kayak", Quantity: 4})
		assert.False(t, req.RiderCapable())
		assert.Empty(t, req.Kinds)
	})

	t.Run("複数商品は搭乗可能分のみ合算", func(t *testing.T) {
		req := equipment.RequirementFor(
			equipment.Line{Type: equipment.ProductATV, Quantity: 1},
			equipment.Line{Type: "Kayak", Quantity: 3},
			equipment.Line{Type: equipment.NormalizeProductType("jetski"), Quantity: 1},
		)
		assert.Equal(t, 2, req.ReservedQuantity)
		assert.Equal(t, equipment.RiderRange{Min: 2, Max: 4}, req.Bounds())
		assert.True(t, req.Requires(equipment.KindLifeJacket))
	})
}

func TestDistributionAdjust(t *testing.T) {
	t.Run("1人の場合は排他的に割り当て", func(t *testing.T) {
		prior := []equipment.Distribution{
			{},
			{equipment.SizeM: 1},
			{equipment.SizeS: 1, equipment.SizeXL: 2},
		}
		for _, d := range prior {
			got, err := d.Adjust(equipment.SizeL, 1, 1)
			require.NoError(t, err)
			if diff := cmp.Diff(equipment.Distribution{equipment.SizeL: 1}, got); diff != "" {
				t.Errorf("Adjust mismatch (-want +got):\n%s", diff)
			}
		}
	})

	t.Run("複数人は加算", func(t *testing.T) {
		d := equipment.Distribution{equipment.SizeM: 1}
		got, err := d.Adjust(equipment.SizeL, 1, 3)
		require.NoError(t, err)
		assert.Equal(t, equipment.Distribution{equipment.SizeM: 1, equipment.SizeL: 1}, got)
		assert.Equal(t, equipment.Distribution{equipment.SizeM: 1}, d)
	})

	t.Run("合計が人数に達したら追加NG", func(t *testing.T) {
		d := equipment.Distribution{equipment.SizeM: 2, equipment.SizeS: 1}
		got, err := d.Adjust(equipment.SizeL, 1, 3)
		require.ErrorIs(t, err, equipment.ErrKindFull)
		assert.Equal(t, 3, got.Total())
	})

	t.Run("0未満への減算NG", func(t *testing.T) {
		d := equipment.Distribution{equipment.SizeM: 1}
		_, err := d.Adjust(equipment.SizeL, -1, 3)
		require.ErrorIs(t, err, equipment.ErrBelowZero)
	})

	t.Run("減算OK", func(t *testing.T) {
		d := equipment.Distribution{equipment.SizeM: 2}
		got, err := d.Adjust(equipment.SizeM, -1, 3)
		require.NoError(t, err)
		assert.Equal(t, 1, got.Total())
	})

	t.Run("不正サイズNG", func(t *testing.T) {
		_, err := equipment.Distribution{}.Adjust("XXL", 1, 3)
		require.ErrorIs(t, err, equipment.ErrInvalidSize)
	})

	t.Run("人数未設定NG", func(t *testing.T) {
		_, err := equipment.Distribution{}.Adjust(equipment.SizeM, 1, 0)
		require.ErrorIs(t, err, equipment.ErrRidersRequired)
	})
}

func TestDistributionsAdjust(t *testing.T) {
	atv := equipment.RequirementFor(equipment.Line{Type: equipment.ProductATV, Quantity: 1})

	t.Run("ATVにライフジャケットNG", func(t *testing.T) {
		_, err := equipment.Distributions{}.Adjust(atv, equipment.KindLifeJacket, equipment.SizeM, 1, 2)
		require.ErrorIs(t, err, equipment.ErrKindNotRequired)
	})

	t.Run("ヘルメットOK", func(t *testing.T) {
		got, err := equipment.Distributions{}.Adjust(atv, equipment.KindHelmet, equipment.SizeM, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, 1, got[equipment.KindHelmet].Total())
	})
}

func TestValidateSubmission(t *testing.T) {
	jetSki := equipment.RequirementFor(equipment.Line{Type: equipment.ProductJetSki, Quantity: 2})
	full := equipment.Distributions{
		equipment.KindHelmet:     {equipment.SizeM: 2, equipment.SizeL: 1},
		equipment.KindLifeJacket: {equipment.SizeL: 3},
	}

	t.Run("人数と一致OK", func(t *testing.T) {
		require.NoError(t, jetSki.ValidateSubmission(3, full))
	})

	t.Run("ライフジャケット不足NG", func(t *testing.T) {
		d := equipment.Distributions{
			equipment.KindHelmet:     {equipment.SizeM: 3},
			equipment.KindLifeJacket: {equipment.SizeL: 2},
		}
		err := jetSki.ValidateSubmission(3, d)
		require.ErrorIs(t, err, equipment.ErrDistributionCount)
		assert.Equal(t, "life jackets must total exactly 3", err.Error())
	})

	t.Run("ヘルメット未割当NG", func(t *testing.T) {
		err := jetSki.ValidateSubmission(2, equipment.Distributions{})
		require.ErrorIs(t, err, equipment.ErrDistributionCount)
		assert.Equal(t, "helmets must total exactly 2", err.Error())
	})

	t.Run("人数範囲外NG", func(t *testing.T) {
		err := jetSki.ValidateSubmission(5, full)
		require.ErrorIs(t, err, equipment.ErrRidersOutOfRange)
	})

	t.Run("対象外商品は常にOK", func(t *testing.T) {
		req := equipment.RequirementFor(equipment.Line{Type: "Kayak", Quantity: 1})
		require.NoError(t, req.ValidateSubmission(0, nil))
	})
}

func TestToRequests(t *testing.T) {
	jetSki := equipment.RequirementFor(equipment.Line{Type: equipment.ProductJetSki, Quantity: 2})
	d := equipment.Distributions{
		equipment.KindLifeJacket: {equipment.SizeL: 3, equipment.SizeXS: 0},
		equipment.KindHelmet:     {equipment.SizeXL: 1, equipment.SizeS: 2},
	}

	want := []equipment.Request{
		{Type: equipment.KindHelmet, Size: equipment.SizeS, Quantity: 2},
		{Type: equipment.KindHelmet, Size: equipment.SizeXL, Quantity: 1},
		{Type: equipment.KindLifeJacket, Size: equipment.SizeL, Quantity: 3},
	}
	if diff := cmp.Diff(want, jetSki.ToRequests(d)); diff != "" {
		t.Errorf("ToRequests mismatch (-want +got):\n%s", diff)
	}
}
