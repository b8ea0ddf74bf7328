//go:build unit

package repository_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"rentaldesk/internal/domain/reservation"
	"rentaldesk/internal/infra"
	"rentaldesk/internal/infra/db"
	"rentaldesk/internal/infra/repository"
	"rentaldesk/internal/pkg/errs"
	"rentaldesk/internal/pkg/pgconv"
	"rentaldesk/internal/usecase/shared"
	repositorymock "rentaldesk/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use the queries mock instead.")
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// =============================================================================
// Append Tests
// =============================================================================

func TestActionJournalRepository_Append(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2025, 7, 2, 9, 30, 0, 0, time.FixedZone("CEST", 2*60*60))
	refund := 75.0

	testCases := []struct {
		name          string
		entry         shared.ActionEntry
		setupMock     func(*repositorymock.MockActionQueries, *mockDBTX)
		expectedError bool
	}{
		{
			name: "success: storm refund with amount is stored",
			entry: shared.ActionEntry{
				ReservationID: "res-1",
				ActorID:       "staff-1",
				ActorRole:     "staff",
				Action:        reservation.ActionStormRefund,
				Outcome:       shared.OutcomeSucceeded,
				RefundAmount:  &refund,
				At:            at,
			},
			setupMock: func(mock *repositorymock.MockActionQueries, conn *mockDBTX) {
				mock.EXPECT().InsertReservationAction(ctx, conn, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ db.DBTX, arg db.InsertReservationActionParams) error {
						assert.True(t, arg.ID.Valid)
						assert.Equal(t, "res-1", arg.ReservationID)
						assert.Equal(t, "storm-refund", arg.Action)
						assert.Equal(t, "succeeded", arg.Outcome)
						assert.False(t, arg.Message.Valid)
						assert.Equal(t, pgtype.Float8{Float64: 75, Valid: true}, arg.RefundAmount)
						assert.Equal(t, at.UTC(), arg.CreatedAt.Time)
						return nil
					})
			},
		},
		{
			name: "success: rejected action keeps its message",
			entry: shared.ActionEntry{
				ReservationID: "res-2",
				ActorID:       "user-1",
				ActorRole:     "user",
				Action:        reservation.ActionMarkPaid,
				Outcome:       shared.OutcomeRejected,
				Message:       "only staff can mark a reservation as paid",
				At:            at,
			},
			setupMock: func(mock *repositorymock.MockActionQueries, conn *mockDBTX) {
				mock.EXPECT().InsertReservationAction(ctx, conn, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ db.DBTX, arg db.InsertReservationActionParams) error {
						assert.Equal(t, pgtype.Text{String: "only staff can mark a reservation as paid", Valid: true}, arg.Message)
						assert.False(t, arg.RefundAmount.Valid)
						return nil
					})
			},
		},
		{
			name:  "error: database error occurs",
			entry: shared.ActionEntry{ReservationID: "res-3", Action: reservation.ActionCancel, Outcome: shared.OutcomeFailed},
			setupMock: func(mock *repositorymock.MockActionQueries, conn *mockDBTX) {
				mock.EXPECT().InsertReservationAction(ctx, conn, gomock.Any()).Return(errors.New("connection reset"))
			},
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockActionQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewActionJournalRepository(mockQueries, mockDB, discardLogger())

			tc.setupMock(mockQueries, mockDB)

			err := repo.Append(ctx, tc.entry)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// =============================================================================
// ListByReservation Tests
// =============================================================================

func TestActionJournalRepository_ListByReservation(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	createdAt := time.Date(2025, 7, 2, 7, 30, 0, 0, time.UTC)

	t.Run("success: rows are mapped in the order returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockActionQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewActionJournalRepository(mockQueries, mockDB, discardLogger())

		mockQueries.EXPECT().
			ListReservationActions(ctx, mockDB, db.ListReservationActionsParams{ReservationID: "res-1", Limit: 100}).
			Return([]db.ReservationAction{
				{
					ID:            pgconv.UUIDToPgtype(id),
					ReservationID: "res-1",
					ActorID:       "staff-1",
					ActorRole:     "staff",
					Action:        "cancel",
					Outcome:       "failed",
					Message:       pgtype.Text{String: "Reservation already cancelled", Valid: true},
					CreatedAt:     pgconv.TimeToPgtype(createdAt),
				},
				{ReservationID: "res-1", Action: "mark-paid", Outcome: "succeeded"},
			}, nil)

		got, err := repo.ListByReservation(ctx, "res-1")

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, id.String(), got[0].ID)
		assert.Equal(t, "cancel", got[0].Action)
		require.NotNil(t, got[0].Message)
		assert.Equal(t, "Reservation already cancelled", *got[0].Message)
		assert.Equal(t, createdAt, got[0].CreatedAt)
		assert.Nil(t, got[1].Message)
		assert.Nil(t, got[1].RefundAmount)
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockActionQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewActionJournalRepository(mockQueries, mockDB, discardLogger())

		mockQueries.EXPECT().ListReservationActions(ctx, mockDB, gomock.Any()).Return(nil, errors.New("timeout"))

		_, err := repo.ListByReservation(ctx, "res-1")

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
