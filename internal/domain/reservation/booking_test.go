//go:build unit

package reservation_test

import (
	"testing"

	"rentaldesk/internal/domain/equipment"
	"rentaldesk/internal/domain/reservation"
	"rentaldesk/internal/domain/selection"
	"rentaldesk/internal/domain/slot"
	"rentaldesk/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingCase struct {
	name   string
	mutate func(*reservation.BookingParams)
	errIs  error
}

func intPtr(v int) *int { return &v }

func TestNewBooking(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, []slot.Index{18, 19, 20}, b.Slots())
		assert.Equal(t, 2, *b.Riders())
		assert.Equal(t, "Ana Pérez", b.Customer().Name)
		assert.Equal(t, []equipment.Request{
			{Type: equipment.KindHelmet, Size: equipment.SizeM, Quantity: 1},
			{Type: equipment.KindHelmet, Size: equipment.SizeL, Quantity: 1},
			{Type: equipment.KindLifeJacket, Size: equipment.SizeM, Quantity: 2},
		}, b.Equipment())
	})

	t.Run("スロット検証", func(t *testing.T) {
		runBookingCases(t, []bookingCase{
			{name: "連続3スロットOK", mutate: func(p *reservation.BookingParams) { p.Slots = []slot.Index{18, 19, 20} }},
			{name: "飛び番号NG", mutate: func(p *reservation.BookingParams) { p.Slots = []slot.Index{18, 20} }, errIs: selection.ErrNonConsecutive},
			{name: "空NG", mutate: func(p *reservation.BookingParams) { p.Slots = nil }, errIs: selection.ErrEmpty},
			{name: "4スロットNG", mutate: func(p *reservation.BookingParams) { p.Slots = []slot.Index{18, 19, 20, 21} }, errIs: selection.ErrTooManySlots},
		})
	})

	t.Run("顧客情報検証", func(t *testing.T) {
		runBookingCases(t, []bookingCase{
			{name: "名前なしNG", mutate: func(p *reservation.BookingParams) { p.CustomerName = " " }, errIs: reservation.ErrCustomerNameRequired},
			{name: "連絡先なしNG", mutate: func(p *reservation.BookingParams) { p.CustomerContact = "" }, errIs: reservation.ErrCustomerContactRequired},
		})
	})

	t.Run("商品検証", func(t *testing.T) {
		runBookingCases(t, []bookingCase{
			{name: "商品なしNG", mutate: func(p *reservation.BookingParams) { p.Items = nil }, errIs: reservation.ErrNoItems},
			{name: "数量0NG", mutate: func(p *reservation.BookingParams) { p.Items[0].Quantity = 0 }, errIs: reservation.ErrInvalidQuantity},
			{name: "商品IDなしNG", mutate: func(p *reservation.BookingParams) { p.Items[0].ProductID = "" }, errIs: reservation.ErrProductRequired},
			{name: "日付形式NG", mutate: func(p *reservation.BookingParams) { p.Date = "02/07/2025" }, errIs: reservation.ErrInvalidDate},
		})
	})

	t.Run("搭乗者と装備検証", func(t *testing.T) {
		runBookingCases(t, []bookingCase{
			{name: "搭乗者なしNG", mutate: func(p *reservation.BookingParams) { p.Riders = nil }, errIs: equipment.ErrRidersRequired},
			{name: "搭乗者範囲外NG", mutate: func(p *reservation.BookingParams) { p.Riders = intPtr(3) }, errIs: equipment.ErrRidersOutOfRange},
			{
				name: "数量2で搭乗者3はOK",
				mutate: func(p *reservation.BookingParams) {
					p.Items[0].Quantity = 2
					p.Riders = intPtr(3)
					p.Equipment = equipment.Distributions{
						equipment.KindHelmet:     {equipment.SizeM: 3},
						equipment.KindLifeJacket: {equipment.SizeL: 3},
					}
				},
			},
			{
				name: "ヘルメット不足NG",
				mutate: func(p *reservation.BookingParams) {
					p.Equipment[equipment.KindHelmet] = equipment.Distribution{equipment.SizeM: 1}
				},
				errIs: equipment.ErrDistributionCount,
			},
			{
				name: "対象外商品は搭乗者不要",
				mutate: func(p *reservation.BookingParams) {
					p.Items[0].ProductType = "Kayak"
					p.Riders = nil
					p.Equipment = nil
				},
			},
		})
	})
}

func TestNewBookingDropsRidersForOtherProducts(t *testing.T) {
	b, err := builder.NewBookingBuilder().With(func(p *reservation.BookingParams) {
		p.Items[0].ProductType = "Kayak"
	}).BuildDomain()
	require.NoError(t, err)
	assert.Nil(t, b.Riders())
	assert.Empty(t, b.Equipment())
}

func runBookingCases(t *testing.T, cases []bookingCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBookingBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
