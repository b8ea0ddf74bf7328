package commands

import (
	"context"
	"log/slog"
	"strings"

	"rentaldesk/internal/domain/equipment"
	"rentaldesk/internal/domain/user"
	"rentaldesk/internal/pkg/errs"
	"rentaldesk/internal/usecase/readmodel"
	"rentaldesk/internal/usecase/shared"
)

type EquipmentInput struct {
	Type     string
	Size     string
	Quantity int
	Status   string
}

type EquipmentCommands interface {
	Create(ctx context.Context, session *user.Session, in EquipmentInput) (*readmodel.EquipmentItemRM, error)
	Update(ctx context.Context, session *user.Session, id string, in EquipmentInput) (*readmodel.EquipmentItemRM, error)
	Delete(ctx context.Context, session *user.Session, id string) error
}

type equipmentCommandsImpl struct {
	gateway shared.EquipmentGateway
	logger  *slog.Logger
}

func NewEquipmentCommands(gateway shared.EquipmentGateway, logger *slog.Logger) EquipmentCommands {
	return &equipmentCommandsImpl{gateway: gateway, logger: logger}
}

func (e *equipmentCommandsImpl) Create(ctx context.Context, session *user.Session, in EquipmentInput) (*readmodel.EquipmentItemRM, error) {
	item, err := equipment.NewItem(in.Type, in.Size, in.Quantity, in.Status)
	if err != nil {
		return nil, errs.Validation(err)
	}
	created, err := e.gateway.CreateEquipment(ctx, session.Token(), item)
	if err != nil {
		return nil, err
	}
	e.logger.Info("safety equipment created", slog.String("equipment_id", created.ID))
	return created, nil
}

func (e *equipmentCommandsImpl) Update(ctx context.Context, session *user.Session, id string, in EquipmentInput) (*readmodel.EquipmentItemRM, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errs.Validation(errs.New("equipment id is required"))
	}
	item, err := equipment.NewItem(in.Type, in.Size, in.Quantity, in.Status)
	if err != nil {
		return nil, errs.Validation(err)
	}
	return e.gateway.UpdateEquipment(ctx, session.Token(), id, item)
}

func (e *equipmentCommandsImpl) Delete(ctx context.Context, session *user.Session, id string) error {
	if strings.TrimSpace(id) == "" {
		return errs.Validation(errs.New("equipment id is required"))
	}
	if err := e.gateway.DeleteEquipment(ctx, session.Token(), id); err != nil {
		return err
	}
	e.logger.Info("safety equipment deleted", slog.String("equipment_id", id))
	return nil
}
