package request

import "rentaldesk/internal/usecase/commands"

type CreateDraftRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

type SetDraftDateRequest struct {
	Date string `json:"date" binding:"required"`
}

type SetDraftRidersRequest struct {
	Riders int `json:"riders" binding:"required"`
}

type SetDraftCustomerRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

type AdjustEquipmentRequest struct {
	Type  string `json:"type" binding:"required"`
	Size  string `json:"size" binding:"required"`
	Delta int    `json:"delta" binding:"required"`
}

func (r AdjustEquipmentRequest) ToAdjustment() commands.EquipmentAdjustment {
	return commands.EquipmentAdjustment{Kind: r.Type, Size: r.Size, Delta: r.Delta}
}
