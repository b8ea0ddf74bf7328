package request

import "rentaldesk/internal/usecase/commands"

type UpdateStockRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type EquipmentRequest struct {
	Type     string `json:"type" binding:"required"`
	Size     string `json:"size" binding:"required"`
	Quantity int    `json:"quantity" binding:"required"`
	Status   string `json:"status,omitempty"`
}

func (r EquipmentRequest) ToInput() commands.EquipmentInput {
	return commands.EquipmentInput{
		Type:     r.Type,
		Size:     r.Size,
		Quantity: r.Quantity,
		Status:   r.Status,
	}
}
