package readmodel

import "rentaldesk/internal/domain/equipment"

type EquipmentItemRM struct {
	ID       string           `json:"id"`
	Type     equipment.Kind   `json:"type"`
	Size     equipment.Size   `json:"size"`
	Quantity int              `json:"quantity"`
	Status   equipment.Status `json:"status"`
}
