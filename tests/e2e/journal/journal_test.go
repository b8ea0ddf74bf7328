//go:build e2e

package journal_test

import (
	"log/slog"
	"testing"
	"time"

	"rentaldesk/internal/domain/reservation"
	"rentaldesk/internal/infra/db"
	"rentaldesk/internal/infra/repository"
	"rentaldesk/internal/usecase/shared"
	"rentaldesk/tests/common/dbtest"
	"rentaldesk/tests/e2e"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type journalSuite struct {
	e2e.SharedSuite
	repo *repository.ActionJournalRepository
}

func TestJournalSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(journalSuite))
}

func (s *journalSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.repo = repository.NewActionJournalRepository(db.New(), s.DB, slog.Default())
}

func (s *journalSuite) TestAppendAndList() {
	t := s.T()
	ctx := t.Context()
	base := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	refund := 35.5

	entries := []shared.ActionEntry{
		{ReservationID: "r-1", ActorID: "u-staff", ActorRole: "staff", Action: reservation.ActionMarkPaid, Outcome: shared.OutcomeSucceeded, At: base},
		{ReservationID: "r-1", ActorID: "u-staff", ActorRole: "staff", Action: reservation.ActionStormRefund, Outcome: shared.OutcomeSucceeded, RefundAmount: &refund, At: base.Add(time.Minute)},
		{ReservationID: "r-1", ActorID: "u-staff", ActorRole: "staff", Action: reservation.ActionCancel, Outcome: shared.OutcomeRejected, Message: "reservation is already canceled", At: base.Add(2 * time.Minute)},
		{ReservationID: "r-2", ActorID: "u-admin", ActorRole: "admin", Action: reservation.ActionCancel, Outcome: shared.OutcomeFailed, Message: "booking service unavailable", At: base},
	}
	for _, e := range entries {
		require.NoError(t, s.repo.Append(ctx, e))
	}

	got, err := s.repo.ListByReservation(ctx, "r-1")
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "cancel", got[0].Action, "新しい順")
	assert.Equal(t, "rejected", got[0].Outcome)
	require.NotNil(t, got[0].Message)
	assert.Equal(t, "reservation is already canceled", *got[0].Message)

	assert.Equal(t, "storm-refund", got[1].Action)
	require.NotNil(t, got[1].RefundAmount)
	assert.InDelta(t, refund, *got[1].RefundAmount, 0.0001)

	assert.Equal(t, "mark-paid", got[2].Action)
	assert.Nil(t, got[2].Message, "空のメッセージはNULLで保存されること")
	assert.True(t, got[2].CreatedAt.Equal(base))
	assert.NotEmpty(t, got[2].ID)
}

func (s *journalSuite) TestUnknownReservationHasNoHistory() {
	dbtest.InsertAction(s.T(), s.DB, dbtest.ActionRow{
		ReservationID: "r-other",
		ActorID:       "u-staff",
		ActorRole:     "staff",
		Action:        "cancel",
		Outcome:       "succeeded",
	}, time.Now())

	got, err := s.repo.ListByReservation(s.T().Context(), "r-none")
	require.NoError(s.T(), err)
	assert.Empty(s.T(), got)
}

func (s *journalSuite) TestOutcomeIsConstrained() {
	_, err := s.DB.Exec(s.T().Context(),
		`INSERT INTO reservation_actions (id, reservation_id, actor_id, actor_role, action, outcome)
		 VALUES (gen_random_uuid(), 'r-1', 'u', 'staff', 'cancel', 'maybe')`)
	assert.Error(s.T(), err)
}
