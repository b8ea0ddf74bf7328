package reservation

import (
	"errors"
	"strings"

	"rentaldesk/internal/domain/equipment"
)

var (
	ErrCustomerNameRequired    = errors.New("customer name is required")
	ErrCustomerContactRequired = errors.New("customer contact is required")
)

type Customer struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

func NewCustomer(name, contact string) (Customer, error) {
	name = strings.TrimSpace(name)
	contact = strings.TrimSpace(contact)
	if name == "" {
		return Customer{}, ErrCustomerNameRequired
	}
	if contact == "" {
		return Customer{}, ErrCustomerContactRequired
	}
	return Customer{Name: name, Contact: contact}, nil
}

type LineItem struct {
	ProductID   string                `json:"productId"`
	ProductName string                `json:"productName,omitempty"`
	ProductType equipment.ProductType `json:"productType,omitempty"`
	UnitPrice   float64               `json:"unitPrice,omitempty"`
	Quantity    int                   `json:"quantity"`
}

func linesOf(items []LineItem) []equipment.Line {
	lines := make([]equipment.Line, len(items))
	for i, it := range items {
		lines[i] = equipment.Line{Type: it.ProductType, Quantity: it.Quantity}
	}
	return lines
}

type PaymentMethod struct {
	Type     string `json:"type"`
	Currency string `json:"currency"`
}

func DefaultPaymentMethod() PaymentMethod {
	return PaymentMethod{Type: "cash", Currency: "local"}
}

// WithDefaults fills whatever the caller left blank.
func (p PaymentMethod) WithDefaults() PaymentMethod {
	def := DefaultPaymentMethod()
	if strings.TrimSpace(p.Type) == "" {
		p.Type = def.Type
	}
	if strings.TrimSpace(p.Currency) == "" {
		p.Currency = def.Currency
	}
	return p
}
