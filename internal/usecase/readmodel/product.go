package readmodel

import "rentaldesk/internal/domain/equipment"

type ProductRM struct {
	ID           string                `json:"id"`
	Name         string                `json:"name,omitempty"`
	Type         equipment.ProductType `json:"type"`
	SizeCategory string                `json:"sizeCategory,omitempty"`
	Price        float64               `json:"price"`
	Quantity     int                   `json:"quantity"`
	RiderCapable bool                  `json:"riderCapable"`
}
