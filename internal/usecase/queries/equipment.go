package queries

import (
	"context"

	"rentaldesk/internal/domain/user"
	"rentaldesk/internal/usecase/readmodel"
	"rentaldesk/internal/usecase/shared"
)

type EquipmentQueries interface {
	List(ctx context.Context, session *user.Session) ([]readmodel.EquipmentItemRM, error)
}

type equipmentQueriesImpl struct {
	gateway shared.EquipmentGateway
}

func NewEquipmentQueries(gateway shared.EquipmentGateway) EquipmentQueries {
	return &equipmentQueriesImpl{gateway: gateway}
}

func (q *equipmentQueriesImpl) List(ctx context.Context, session *user.Session) ([]readmodel.EquipmentItemRM, error) {
	return q.gateway.ListEquipment(ctx, session.Token())
}
