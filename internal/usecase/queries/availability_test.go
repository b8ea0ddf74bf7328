//go:build unit

package queries_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"rentaldesk/internal/domain/availability"
	"rentaldesk/internal/domain/slot"
	"rentaldesk/internal/pkg/clock"
	"rentaldesk/internal/pkg/config"
	"rentaldesk/internal/pkg/errs"
	"rentaldesk/internal/usecase/queries"
	sharedmock "rentaldesk/tests/mock/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func bookingConfig() config.BookingConfig {
	return config.NewTestConfig().Booking
}

func rawDay() []availability.RawSlot {
	return []availability.RawSlot{
		{Index: 17, AvailableQuantity: 3},
		{Index: 20, AvailableQuantity: 1},
		{Index: 23, AvailableQuantity: 0},
		{Index: 24, AvailableQuantity: 2},
		{Index: 36, AvailableQuantity: 2},
	}
}

func TestAvailabilityQueries_Resolve(t *testing.T) {
	ctx := context.Background()
	// 08:10 UTC: slot 16, cutoff at slot 20
	now := time.Date(2025, 7, 2, 8, 10, 0, 0, time.UTC)

	tests := []struct {
		name    string
		date    string
		setup   func(*sharedmock.MockAvailabilityGateway)
		want    []availability.Slot
		errIs   error
		errMark error
	}{
		{
			name: "same day keeps early slots listed but not selectable",
			date: "2025-07-02",
			setup: func(gw *sharedmock.MockAvailabilityGateway) {
				gw.EXPECT().Availability(ctx, "2025-07-02", "prod-1").Return(rawDay(), nil)
			},
			want: []availability.Slot{
				{Index: 20, Time: "10:00", AvailableQuantity: 1, Selectable: true},
				{Index: 24, Time: "12:00", AvailableQuantity: 2, Selectable: true},
			},
		},
		{
			name: "future day has no cutoff",
			date: "2025-07-05",
			setup: func(gw *sharedmock.MockAvailabilityGateway) {
				gw.EXPECT().Availability(ctx, "2025-07-05", "prod-1").Return([]availability.RawSlot{
					{Index: 18, Time: "09:00", AvailableQuantity: 1},
				}, nil)
			},
			want: []availability.Slot{
				{Index: 18, Time: "09:00", AvailableQuantity: 1, Selectable: true},
			},
		},
		{
			name:    "past day never reaches the backend",
			date:    "2025-07-01",
			setup:   func(*sharedmock.MockAvailabilityGateway) {},
			errIs:   availability.ErrPastDate,
			errMark: errs.ErrValidation,
		},
		{
			name:    "malformed date",
			date:    "02/07/2025",
			setup:   func(*sharedmock.MockAvailabilityGateway) {},
			errIs:   availability.ErrInvalidDate,
			errMark: errs.ErrValidation,
		},
		{
			name: "backend failure gives no partial result",
			date: "2025-07-02",
			setup: func(gw *sharedmock.MockAvailabilityGateway) {
				gw.EXPECT().Availability(ctx, "2025-07-02", "prod-1").
					Return(nil, errs.Mark(errors.New("booking service unavailable"), errs.ErrTransport))
			},
			errMark: errs.ErrTransport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			gw := sharedmock.NewMockAvailabilityGateway(ctrl)
			tt.setup(gw)
			q, err := queries.NewAvailabilityQueries(gw, clock.NewMockClock(now), bookingConfig(), discardLogger())
			require.NoError(t, err)

			got, err := q.Resolve(ctx, tt.date, "prod-1")

			if tt.errMark != nil {
				require.Error(t, err)
				assert.Nil(t, got)
				assert.True(t, errs.Is(err, tt.errMark))
				if tt.errIs != nil {
					assert.ErrorIs(t, err, tt.errIs)
				}
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAvailabilityQueries_SameDayCutoffListsEarlySlots(t *testing.T) {
	ctx := context.Background()
	// 09:40 UTC: slot 19, cutoff at slot 23
	now := time.Date(2025, 7, 2, 9, 40, 0, 0, time.UTC)
	ctrl := gomock.NewController(t)
	gw := sharedmock.NewMockAvailabilityGateway(ctrl)
	gw.EXPECT().Availability(ctx, "2025-07-02", "prod-1").Return(rawDay(), nil)
	q, err := queries.NewAvailabilityQueries(gw, clock.NewMockClock(now), bookingConfig(), discardLogger())
	require.NoError(t, err)

	got, err := q.Resolve(ctx, "2025-07-02", "prod-1")

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, slot.Index(20), got[0].Index)
	assert.False(t, got[0].Selectable)
	assert.True(t, got[1].Selectable)
}

func TestAvailabilityQueries_BookingTimeZone(t *testing.T) {
	cfg := bookingConfig()
	cfg.TimeZone = "Europe/Madrid"
	// 23:30 UTC on the 1st is already the 2nd in Madrid
	now := time.Date(2025, 7, 1, 23, 30, 0, 0, time.UTC)
	q, err := queries.NewAvailabilityQueries(nil, clock.NewMockClock(now), cfg, discardLogger())
	require.NoError(t, err)

	_, err = q.CheckDate("2025-07-01")
	assert.ErrorIs(t, err, availability.ErrPastDate)

	_, err = q.CheckDate("2025-07-02")
	assert.NoError(t, err)
}

func TestNewAvailabilityQueries_InvalidConfig(t *testing.T) {
	cfg := bookingConfig()
	cfg.TimeZone = "Mars/Olympus"
	_, err := queries.NewAvailabilityQueries(nil, clock.NewRealClock(), cfg, discardLogger())
	assert.Error(t, err)

	cfg = bookingConfig()
	cfg.FirstSlot, cfg.LastSlot = 30, 20
	_, err = queries.NewAvailabilityQueries(nil, clock.NewRealClock(), cfg, discardLogger())
	assert.Error(t, err)
}
