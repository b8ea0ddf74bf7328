//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"rentaldesk/internal/domain/availability"
	"rentaldesk/internal/domain/draft"
	"rentaldesk/internal/domain/equipment"
	"rentaldesk/internal/domain/reservation"
	"rentaldesk/internal/domain/selection"
	"rentaldesk/internal/domain/slot"
	"rentaldesk/internal/domain/user"
	"rentaldesk/internal/pkg/clock"
	"rentaldesk/internal/pkg/errs"
	"rentaldesk/internal/usecase/commands"
	"rentaldesk/internal/usecase/readmodel"
	"rentaldesk/tests/common/authtest"
	commandsmock "rentaldesk/tests/mock/commands"
	queriesmock "rentaldesk/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// memoryDraftStore keeps drafts as JSON like the redis store does, so every
// read hands out a fresh copy.
type memoryDraftStore struct {
	mu     sync.Mutex
	drafts map[string][]byte
}

func newMemoryDraftStore() *memoryDraftStore {
	return &memoryDraftStore{drafts: make(map[string][]byte)}
}

func (s *memoryDraftStore) SaveDraft(_ context.Context, d *draft.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, err := json.Marshal(d)
	if err != nil {
		return err
	}
	s.drafts[d.ID] = b
	return nil
}

func (s *memoryDraftStore) GetDraft(_ context.Context, id string) (*draft.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(id)
}

func (s *memoryDraftStore) load(id string) (*draft.Draft, error) {
	b, ok := s.drafts[id]
	if !ok {
		return nil, errs.Mark(errs.New("draft not found"), errs.ErrNotFound)
	}
	var d draft.Draft
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *memoryDraftStore) UpdateDraft(_ context.Context, id string, fn func(*draft.Draft) error) (*draft.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, err := s.load(id)
	if err != nil {
		return nil, err
	}
	if err := fn(d); err != nil {
		return nil, err
	}
	b, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	s.drafts[id] = b
	return d, nil
}

func (s *memoryDraftStore) DeleteDraft(_ context.Context, d *draft.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, d.ID)
	return nil
}

type draftDeps struct {
	store        *memoryDraftStore
	products     *queriesmock.MockProductQueries
	availability *queriesmock.MockAvailabilityQueries
	reservations *commandsmock.MockReservationCommands
}

var jetSki = &draft.Product{ID: "prod-jetski", Name: "Jet Ski", Type: equipment.ProductJetSki, Price: 80, Stock: 3}

func newDraftCommands(t *testing.T) (commands.DraftCommands, *draftDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := &draftDeps{
		store:        newMemoryDraftStore(),
		products:     queriesmock.NewMockProductQueries(ctrl),
		availability: queriesmock.NewMockAvailabilityQueries(ctrl),
		reservations: commandsmock.NewMockReservationCommands(ctrl),
	}
	cmd := commands.NewDraftCommands(
		deps.store,
		deps.products,
		deps.availability,
		deps.reservations,
		selection.NewValidator(selection.DefaultMaxSlots),
		clock.NewMockClock(fixedNow),
		discardLogger(),
	)
	return cmd, deps
}

func openDraft(t *testing.T, cmd commands.DraftCommands, deps *draftDeps, session *user.Session, quantity int) *draft.Draft {
	t.Helper()
	deps.products.EXPECT().Find(gomock.Any(), "prod-jetski").Return(jetSki, nil)
	d, err := cmd.Create(context.Background(), session, "prod-jetski", quantity)
	require.NoError(t, err)
	return d
}

func day(date string) time.Time {
	d, _ := time.Parse(availability.DateLayout, date)
	return d
}

func slotsOf(indices ...slot.Index) []availability.Slot {
	out := make([]availability.Slot, len(indices))
	for i, idx := range indices {
		out[i] = availability.Slot{Index: idx, Time: idx.Time(), AvailableQuantity: 2, Selectable: true}
	}
	return out
}

func TestDraftCommands_Create(t *testing.T) {
	ctx := context.Background()
	owner := authtest.Session(t, "user-1", user.RoleCustomer)

	t.Run("quantity above stock", func(t *testing.T) {
		cmd, deps := newDraftCommands(t)
		deps.products.EXPECT().Find(ctx, "prod-jetski").Return(jetSki, nil)

		_, err := cmd.Create(ctx, owner, "prod-jetski", 4)

		assert.True(t, errs.Is(err, errs.ErrValidation))
		assert.ErrorIs(t, err, draft.ErrQuantityOutOfStock)
	})

	t.Run("draft is owned by the session", func(t *testing.T) {
		cmd, deps := newDraftCommands(t)
		d := openDraft(t, cmd, deps, owner, 2)

		got, err := cmd.Get(ctx, owner, d.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, got.Quantity)

		stranger := authtest.Session(t, "user-2", user.RoleCustomer)
		_, err = cmd.Get(ctx, stranger, d.ID)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}

func TestDraftCommands_SetDate(t *testing.T) {
	ctx := context.Background()
	owner := authtest.Session(t, "user-1", user.RoleCustomer)

	t.Run("availability for the new day is loaded", func(t *testing.T) {
		cmd, deps := newDraftCommands(t)
		d := openDraft(t, cmd, deps, owner, 1)

		deps.availability.EXPECT().CheckDate("2025-07-02").Return(day("2025-07-02"), nil)
		deps.availability.EXPECT().Resolve(gomock.Any(), "2025-07-02", "prod-jetski").Return(slotsOf(18, 19, 20), nil)

		got, err := cmd.SetDate(ctx, owner, d.ID, "2025-07-02")

		require.NoError(t, err)
		assert.True(t, got.Loaded)
		assert.Equal(t, int64(1), got.Generation)
		assert.Len(t, got.Availability, 3)
	})

	t.Run("past date is rejected before the draft changes", func(t *testing.T) {
		cmd, deps := newDraftCommands(t)
		d := openDraft(t, cmd, deps, owner, 1)

		deps.availability.EXPECT().CheckDate("2025-06-01").Return(time.Time{}, errs.Validation(availability.ErrPastDate))

		_, err := cmd.SetDate(ctx, owner, d.ID, "2025-06-01")
		require.Error(t, err)

		got, err := cmd.Get(ctx, owner, d.ID)
		require.NoError(t, err)
		assert.Empty(t, got.Date)
	})

	t.Run("a superseded fetch never overwrites the newer day", func(t *testing.T) {
		cmd, deps := newDraftCommands(t)
		d := openDraft(t, cmd, deps, owner, 1)

		started := make(chan struct{})
		deps.availability.EXPECT().CheckDate(gomock.Any()).DoAndReturn(func(date string) (time.Time, error) {
			return day(date), nil
		}).Times(2)
		deps.availability.EXPECT().Resolve(gomock.Any(), "2025-07-02", "prod-jetski").DoAndReturn(
			func(ctx context.Context, _, _ string) ([]availability.Slot, error) {
				close(started)
				<-ctx.Done()
				return nil, ctx.Err()
			})
		deps.availability.EXPECT().Resolve(gomock.Any(), "2025-07-03", "prod-jetski").Return(slotsOf(24, 25), nil)

		type result struct {
			d   *draft.Draft
			err error
		}
		first := make(chan result, 1)
		go func() {
			got, err := cmd.SetDate(ctx, owner, d.ID, "2025-07-02")
			first <- result{got, err}
		}()
		<-started

		second, err := cmd.SetDate(ctx, owner, d.ID, "2025-07-03")
		require.NoError(t, err)

		r := <-first
		require.NoError(t, r.err)
		assert.Equal(t, "2025-07-03", r.d.Date)

		assert.Equal(t, "2025-07-03", second.Date)
		assert.Equal(t, int64(2), second.Generation)
		require.Len(t, second.Availability, 2)
		assert.Equal(t, slot.Index(24), second.Availability[0].Index)
	})
}

func TestDraftCommands_SelectionAndEquipment(t *testing.T) {
	ctx := context.Background()
	owner := authtest.Session(t, "user-1", user.RoleCustomer)
	cmd, deps := newDraftCommands(t)
	d := openDraft(t, cmd, deps, owner, 1)

	_, err := cmd.ToggleSlot(ctx, owner, d.ID, 18)
	assert.ErrorIs(t, err, draft.ErrDateRequired)

	deps.availability.EXPECT().CheckDate("2025-07-02").Return(day("2025-07-02"), nil)
	deps.availability.EXPECT().Resolve(gomock.Any(), "2025-07-02", "prod-jetski").Return(slotsOf(18, 19, 20, 21), nil)
	_, err = cmd.SetDate(ctx, owner, d.ID, "2025-07-02")
	require.NoError(t, err)

	for _, idx := range []slot.Index{18, 19} {
		res, err := cmd.ToggleSlot(ctx, owner, d.ID, idx)
		require.NoError(t, err)
		assert.True(t, res.Accepted)
	}
	res, err := cmd.ToggleSlot(ctx, owner, d.ID, 21)
	require.NoError(t, err)
	assert.False(t, res.Accepted)
	assert.Equal(t, selection.MsgNonConsecutive, res.Message)
	assert.Equal(t, []slot.Index{18, 19}, res.Draft.Slots)

	_, err = cmd.SetRiders(ctx, owner, d.ID, 3)
	assert.True(t, errs.Is(err, errs.ErrValidation))
	assert.ErrorContains(t, err, "riders must be within [1,2]")

	_, err = cmd.SetRiders(ctx, owner, d.ID, 2)
	require.NoError(t, err)

	_, err = cmd.AdjustEquipment(ctx, owner, d.ID, commands.EquipmentAdjustment{Kind: "Helmet", Size: "M", Delta: 1})
	require.NoError(t, err)
	got, err := cmd.AdjustEquipment(ctx, owner, d.ID, commands.EquipmentAdjustment{Kind: "Helmet", Size: "L", Delta: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, got.Equipment[equipment.KindHelmet].Total())

	_, err = cmd.AdjustEquipment(ctx, owner, d.ID, commands.EquipmentAdjustment{Kind: "Helmet", Size: "S", Delta: 1})
	assert.True(t, errs.Is(err, errs.ErrValidation))

	_, err = cmd.AdjustEquipment(ctx, owner, d.ID, commands.EquipmentAdjustment{Kind: "Goggles", Size: "S", Delta: 1})
	assert.True(t, errs.Is(err, errs.ErrValidation))
}

func TestDraftCommands_Submit(t *testing.T) {
	ctx := context.Background()
	owner := authtest.Session(t, "user-1", user.RoleCustomer)

	t.Run("submitted draft becomes a reservation and is removed", func(t *testing.T) {
		cmd, deps := newDraftCommands(t)
		d := openDraft(t, cmd, deps, owner, 1)
		deps.availability.EXPECT().CheckDate(gomock.Any()).Return(day("2025-07-02"), nil)
		deps.availability.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any()).Return(slotsOf(18, 19), nil)
		_, err := cmd.SetDate(ctx, owner, d.ID, "2025-07-02")
		require.NoError(t, err)
		_, err = cmd.ToggleSlot(ctx, owner, d.ID, 18)
		require.NoError(t, err)
		_, err = cmd.SetCustomer(ctx, owner, d.ID, " Ana ", "ana@example.com")
		require.NoError(t, err)

		deps.reservations.EXPECT().Create(ctx, owner, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ *user.Session, p reservation.BookingParams) (*readmodel.ReservationRM, error) {
				assert.Equal(t, "Ana", p.CustomerName)
				assert.Equal(t, []slot.Index{18}, p.Slots)
				return &readmodel.ReservationRM{Snapshot: reservation.Snapshot{ID: "res-1"}}, nil
			})

		rm, err := cmd.Submit(ctx, owner, d.ID)

		require.NoError(t, err)
		assert.Equal(t, "res-1", rm.ID)
		_, err = cmd.Get(ctx, owner, d.ID)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("draft without a date cannot be submitted", func(t *testing.T) {
		cmd, deps := newDraftCommands(t)
		d := openDraft(t, cmd, deps, owner, 1)

		_, err := cmd.Submit(ctx, owner, d.ID)

		assert.ErrorIs(t, err, draft.ErrDateRequired)
	})

	t.Run("discard removes the draft", func(t *testing.T) {
		cmd, deps := newDraftCommands(t)
		d := openDraft(t, cmd, deps, owner, 1)

		require.NoError(t, cmd.Discard(ctx, owner, d.ID))

		_, err := cmd.Get(ctx, owner, d.ID)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}
