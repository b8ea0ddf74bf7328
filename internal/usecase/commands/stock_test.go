//go:build unit

package commands_test

import (
	"context"
	"testing"

	"rentaldesk/internal/domain/equipment"
	"rentaldesk/internal/domain/user"
	"rentaldesk/internal/pkg/errs"
	"rentaldesk/internal/usecase/commands"
	"rentaldesk/internal/usecase/readmodel"
	"rentaldesk/tests/common/authtest"
	sharedmock "rentaldesk/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProductCommands_UpdateStock(t *testing.T) {
	ctx := context.Background()
	staff := authtest.Session(t, "staff-1", user.RoleStaff)
	ctrl := gomock.NewController(t)
	gw := sharedmock.NewMockProductGateway(ctrl)
	cmd := commands.NewProductCommands(gw, discardLogger())

	gw.EXPECT().UpdateProductQuantity(ctx, staff.Token(), "prod-1", 0).Return(&readmodel.ProductRM{ID: "prod-1"}, nil)
	got, err := cmd.UpdateStock(ctx, staff, "prod-1", 0)
	require.NoError(t, err)
	assert.Equal(t, "prod-1", got.ID)

	_, err = cmd.UpdateStock(ctx, staff, "prod-1", -1)
	assert.True(t, errs.Is(err, errs.ErrValidation))
	assert.ErrorIs(t, err, commands.ErrNegativeStock)
}

func TestEquipmentCommands(t *testing.T) {
	ctx := context.Background()
	staff := authtest.Session(t, "staff-1", user.RoleStaff)
	ctrl := gomock.NewController(t)
	gw := sharedmock.NewMockEquipmentGateway(ctrl)
	cmd := commands.NewEquipmentCommands(gw, discardLogger())

	tests := []struct {
		name  string
		in    commands.EquipmentInput
		errIs error
	}{
		{name: "unknown type", in: commands.EquipmentInput{Type: "Gloves", Size: "M", Quantity: 1}, errIs: equipment.ErrInvalidKind},
		{name: "unknown size", in: commands.EquipmentInput{Type: "Helmet", Size: "XXL", Quantity: 1}, errIs: equipment.ErrInvalidSize},
		{name: "zero quantity", in: commands.EquipmentInput{Type: "Helmet", Size: "M", Quantity: 0}, errIs: equipment.ErrInvalidQuantity},
		{name: "unknown status", in: commands.EquipmentInput{Type: "Helmet", Size: "M", Quantity: 1, Status: "lost"}, errIs: equipment.ErrInvalidStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cmd.Create(ctx, staff, tt.in)
			assert.True(t, errs.Is(err, errs.ErrValidation))
			assert.ErrorIs(t, err, tt.errIs)
		})
	}

	t.Run("create defaults to available", func(t *testing.T) {
		gw.EXPECT().CreateEquipment(ctx, staff.Token(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, item *equipment.Item) (*readmodel.EquipmentItemRM, error) {
				assert.Equal(t, equipment.StatusAvailable, item.Status())
				return &readmodel.EquipmentItemRM{ID: "e-1", Type: item.Kind(), Size: item.Size(), Quantity: item.Quantity(), Status: item.Status()}, nil
			})

		got, err := cmd.Create(ctx, staff, commands.EquipmentInput{Type: "LifeJacket", Size: "l", Quantity: 4})

		require.NoError(t, err)
		assert.Equal(t, equipment.SizeL, got.Size)
	})

	t.Run("delete", func(t *testing.T) {
		gw.EXPECT().DeleteEquipment(ctx, staff.Token(), "e-1").Return(nil)
		require.NoError(t, cmd.Delete(ctx, staff, "e-1"))
	})
}
