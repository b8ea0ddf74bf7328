package backend

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"rentaldesk/internal/domain/availability"
	"rentaldesk/internal/domain/equipment"
	"rentaldesk/internal/domain/reservation"
	"rentaldesk/internal/domain/slot"
	"rentaldesk/internal/usecase/readmodel"
)

// The backend identifies documents with "_id"; some endpoints also send "id".
type docID struct {
	MongoID string `json:"_id"`
	ID      string `json:"id"`
}

func (d docID) value() string {
	if d.MongoID != "" {
		return d.MongoID
	}
	return d.ID
}

type productWire struct {
	docID
	Name         string  `json:"name"`
	Title        string  `json:"title"`
	Type         string  `json:"type"`
	SizeCategory string  `json:"sizeCategory"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
}

func (p productWire) toReadModel() readmodel.ProductRM {
	name := p.Name
	if name == "" {
		name = p.Title
	}
	pt := equipment.NormalizeProductType(p.Type)
	return readmodel.ProductRM{
		ID:           p.value(),
		Name:         name,
		Type:         pt,
		SizeCategory: p.SizeCategory,
		Price:        p.Price,
		Quantity:     p.Quantity,
		RiderCapable: pt.RiderCapable(),
	}
}

// productRef is a line item's product: either a bare id or the populated
// product document.
type productRef struct {
	id      string
	product *productWire
}

func (r *productRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	if b[0] == '"' {
		return json.Unmarshal(b, &r.id)
	}
	var p productWire
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	r.product = &p
	r.id = p.value()
	return nil
}

// userRef is the reservation's owner, sent as an id or a populated user.
type userRef struct {
	id string
}

func (r *userRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	if b[0] == '"' {
		return json.Unmarshal(b, &r.id)
	}
	var d docID
	if err := json.Unmarshal(b, &d); err != nil {
		return err
	}
	r.id = d.value()
	return nil
}

type lineWire struct {
	Product   productRef `json:"product"`
	ProductID string     `json:"productId"`
	Quantity  int        `json:"quantity"`
}

type reservationWire struct {
	docID
	User                     userRef              `json:"user"`
	UserID                   string               `json:"userId"`
	Customer                 reservation.Customer `json:"customer"`
	Products                 []lineWire           `json:"products"`
	Date                     string               `json:"date"`
	Slots                    []int                `json:"slots"`
	Riders                   *int                 `json:"riders"`
	SafetyEquipmentRequested []equipment.Request  `json:"safetyEquipmentRequested"`
	PaymentStatus            string               `json:"paymentStatus"`
	CancellationStatus       string               `json:"cancellationStatus"`
	TotalPrice               float64              `json:"totalPrice"`
	RefundAmount             *float64             `json:"refundAmount"`
	PaymentDeadline          *time.Time           `json:"paymentDeadline"`
	CreatedAt                *time.Time           `json:"createdAt"`
}

func (w reservationWire) toSnapshot() reservation.Snapshot {
	items := make([]reservation.LineItem, 0, len(w.Products))
	for _, l := range w.Products {
		it := reservation.LineItem{ProductID: l.Product.id, Quantity: l.Quantity}
		if it.ProductID == "" {
			it.ProductID = l.ProductID
		}
		if p := l.Product.product; p != nil {
			rm := p.toReadModel()
			it.ProductName = rm.Name
			it.ProductType = rm.Type
			it.UnitPrice = rm.Price
		}
		items = append(items, it)
	}

	slots := make([]slot.Index, len(w.Slots))
	for i, s := range w.Slots {
		slots[i] = slot.Index(s)
	}

	userID := w.User.id
	if userID == "" {
		userID = w.UserID
	}

	return reservation.Snapshot{
		ID:                 w.value(),
		UserID:             userID,
		Customer:           w.Customer,
		Items:              items,
		Date:               dayOf(w.Date),
		Slots:              slots,
		Riders:             w.Riders,
		Equipment:          w.SafetyEquipmentRequested,
		PaymentStatus:      reservation.PaymentStatus(w.PaymentStatus),
		CancellationStatus: reservation.CancellationStatus(w.CancellationStatus),
		TotalPrice:         w.TotalPrice,
		RefundAmount:       w.RefundAmount,
		PaymentDeadline:    w.PaymentDeadline,
		CreatedAt:          w.CreatedAt,
	}
}

// dayOf keeps the calendar day of a date the backend may send as a full
// ISO timestamp.
func dayOf(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= len(availability.DateLayout) {
		return s[:len(availability.DateLayout)]
	}
	return s
}

type createReservationWire struct {
	Customer                 reservation.Customer `json:"customer"`
	Products                 []createLineWire     `json:"products"`
	Date                     string               `json:"date"`
	Slots                    []slot.Index         `json:"slots"`
	Riders                   *int                 `json:"riders,omitempty"`
	SafetyEquipmentRequested []equipment.Request  `json:"safetyEquipmentRequested,omitempty"`
}

type createLineWire struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

func bookingToWire(b *reservation.Booking) createReservationWire {
	lines := make([]createLineWire, len(b.Items()))
	for i, it := range b.Items() {
		lines[i] = createLineWire{Product: it.ProductID, Quantity: it.Quantity}
	}
	return createReservationWire{
		Customer:                 b.Customer(),
		Products:                 lines,
		Date:                     b.Date(),
		Slots:                    b.Slots(),
		Riders:                   b.Riders(),
		SafetyEquipmentRequested: b.Equipment(),
	}
}

type availabilitySlotWire struct {
	Slot              int    `json:"slot"`
	Time              string `json:"time"`
	AvailableQuantity int    `json:"availableQuantity"`
}

type availabilityWire struct {
	Availability *struct {
		Slots []availabilitySlotWire `json:"slots"`
	} `json:"availability"`
	Slots []availabilitySlotWire `json:"slots"`
}

func (w availabilityWire) toRaw() []availability.RawSlot {
	src := w.Slots
	if w.Availability != nil {
		src = w.Availability.Slots
	}
	out := make([]availability.RawSlot, len(src))
	for i, s := range src {
		out[i] = availability.RawSlot{
			Index:             slot.Index(s.Slot),
			Time:              s.Time,
			AvailableQuantity: s.AvailableQuantity,
		}
	}
	return out
}

type equipmentWire struct {
	docID
	Type     string `json:"type"`
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
	Status   string `json:"status"`
}

func (w equipmentWire) toReadModel() readmodel.EquipmentItemRM {
	return readmodel.EquipmentItemRM{
		ID:       w.value(),
		Type:     equipment.Kind(w.Type),
		Size:     equipment.Size(w.Size),
		Quantity: w.Quantity,
		Status:   equipment.Status(w.Status),
	}
}

type equipmentBodyWire struct {
	Type     equipment.Kind   `json:"type"`
	Size     equipment.Size   `json:"size"`
	Quantity int              `json:"quantity"`
	Status   equipment.Status `json:"status"`
}

func equipmentToWire(item *equipment.Item) equipmentBodyWire {
	return equipmentBodyWire{
		Type:     item.Kind(),
		Size:     item.Size(),
		Quantity: item.Quantity(),
		Status:   item.Status(),
	}
}

// unwrapEnvelope returns the value under key when the body is an object
// that has it, and the body itself otherwise.
func unwrapEnvelope(raw []byte, key string) []byte {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return trimmed
	}
	var env map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return trimmed
	}
	if inner, ok := env[key]; ok && len(bytes.TrimSpace(inner)) > 0 && !bytes.Equal(bytes.TrimSpace(inner), []byte("null")) {
		return inner
	}
	return trimmed
}
