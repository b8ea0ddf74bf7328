package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"rentaldesk/internal/domain/availability"
	"rentaldesk/internal/domain/equipment"
	"rentaldesk/internal/domain/reservation"
	"rentaldesk/internal/pkg/errs"
	"rentaldesk/internal/usecase/readmodel"
	"rentaldesk/internal/usecase/shared"
)

func decode(raw []byte, out any, what string) error {
	if err := json.Unmarshal(raw, out); err != nil {
		return errs.Mark(&APIError{Status: http.StatusBadGateway, Message: "unexpected " + what + " response from booking service", cause: err}, errs.ErrTransport)
	}
	return nil
}

func (c *Client) Login(ctx context.Context, username, password string) (*shared.LoginResult, error) {
	raw, err := c.do(ctx, http.MethodPost, "/auth/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return nil, err
	}
	var body struct {
		Token string `json:"token"`
	}
	if err := decode(raw, &body, "login"); err != nil {
		return nil, err
	}
	if body.Token == "" {
		return nil, errs.Mark(&APIError{Status: http.StatusBadGateway, Message: "booking service returned no token"}, errs.ErrTransport)
	}
	return &shared.LoginResult{Token: body.Token}, nil
}

func (c *Client) ListProducts(ctx context.Context) ([]readmodel.ProductRM, error) {
	raw, err := c.do(ctx, http.MethodGet, "/products", "", nil)
	if err != nil {
		return nil, err
	}
	var wires []productWire
	if err := decode(unwrapEnvelope(raw, "products"), &wires, "products"); err != nil {
		return nil, err
	}
	out := make([]readmodel.ProductRM, len(wires))
	for i, w := range wires {
		out[i] = w.toReadModel()
	}
	return out, nil
}

func (c *Client) UpdateProductQuantity(ctx context.Context, token, productID string, quantity int) (*readmodel.ProductRM, error) {
	raw, err := c.do(ctx, http.MethodPut, "/products/"+url.PathEscape(productID), token, map[string]int{"quantity": quantity})
	if err != nil {
		return nil, err
	}
	var w productWire
	if err := decode(unwrapEnvelope(raw, "product"), &w, "product"); err != nil {
		return nil, err
	}
	rm := w.toReadModel()
	if rm.ID == "" {
		rm.ID = productID
		rm.Quantity = quantity
	}
	return &rm, nil
}

func (c *Client) Availability(ctx context.Context, date, productID string) ([]availability.RawSlot, error) {
	raw, err := c.do(ctx, http.MethodGet, "/availability/"+url.PathEscape(date)+"/"+url.PathEscape(productID), "", nil)
	if err != nil {
		return nil, err
	}
	var w availabilityWire
	if err := decode(raw, &w, "availability"); err != nil {
		return nil, err
	}
	return w.toRaw(), nil
}

func (c *Client) CreateReservation(ctx context.Context, token string, b *reservation.Booking) (*reservation.Snapshot, error) {
	raw, err := c.do(ctx, http.MethodPost, "/reservations", token, bookingToWire(b))
	if err != nil {
		return nil, err
	}
	return decodeReservation(raw)
}

func (c *Client) ListReservations(ctx context.Context, token string) ([]reservation.Snapshot, error) {
	raw, err := c.do(ctx, http.MethodGet, "/reservations", token, nil)
	if err != nil {
		return nil, err
	}
	return decodeReservationList(raw)
}

func (c *Client) ReservationsByDate(ctx context.Context, token, date string) ([]reservation.Snapshot, error) {
	raw, err := c.do(ctx, http.MethodGet, "/reservations/date/"+url.PathEscape(date), token, nil)
	if err != nil {
		return nil, err
	}
	return decodeReservationList(raw)
}

func (c *Client) MarkPaid(ctx context.Context, token, id string, method reservation.PaymentMethod) (*shared.ActionResult, error) {
	body := map[string]reservation.PaymentMethod{"paymentMethod": method.WithDefaults()}
	raw, err := c.do(ctx, http.MethodPut, "/reservations/"+url.PathEscape(id)+"/payment", token, body)
	if err != nil {
		return nil, err
	}
	return decodeActionResult(raw)
}

func (c *Client) CancelReservation(ctx context.Context, token, id string) (*shared.ActionResult, error) {
	raw, err := c.do(ctx, http.MethodPut, "/reservations/"+url.PathEscape(id)+"/cancel", token, nil)
	if err != nil {
		return nil, err
	}
	return decodeActionResult(raw)
}

func (c *Client) StormRefund(ctx context.Context, token, id string) (*shared.ActionResult, error) {
	raw, err := c.do(ctx, http.MethodPut, "/reservations/"+url.PathEscape(id)+"/storm-refund", token, nil)
	if err != nil {
		return nil, err
	}
	return decodeActionResult(raw)
}

func (c *Client) ListEquipment(ctx context.Context, token string) ([]readmodel.EquipmentItemRM, error) {
	raw, err := c.do(ctx, http.MethodGet, "/safety-equipment", token, nil)
	if err != nil {
		return nil, err
	}
	var wires []equipmentWire
	if err := decode(unwrapEnvelope(raw, "equipment"), &wires, "equipment"); err != nil {
		return nil, err
	}
	out := make([]readmodel.EquipmentItemRM, len(wires))
	for i, w := range wires {
		out[i] = w.toReadModel()
	}
	return out, nil
}

func (c *Client) CreateEquipment(ctx context.Context, token string, item *equipment.Item) (*readmodel.EquipmentItemRM, error) {
	raw, err := c.do(ctx, http.MethodPost, "/safety-equipment", token, equipmentToWire(item))
	if err != nil {
		return nil, err
	}
	return decodeEquipment(raw)
}

func (c *Client) UpdateEquipment(ctx context.Context, token, id string, item *equipment.Item) (*readmodel.EquipmentItemRM, error) {
	raw, err := c.do(ctx, http.MethodPut, "/safety-equipment/"+url.PathEscape(id), token, equipmentToWire(item))
	if err != nil {
		return nil, err
	}
	rm, err := decodeEquipment(raw)
	if err != nil {
		return nil, err
	}
	if rm.ID == "" {
		rm.ID = id
	}
	return rm, nil
}

func (c *Client) DeleteEquipment(ctx context.Context, token, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/safety-equipment/"+url.PathEscape(id), token, nil)
	return err
}

func decodeReservation(raw []byte) (*reservation.Snapshot, error) {
	var w reservationWire
	if err := decode(unwrapEnvelope(raw, "reservation"), &w, "reservation"); err != nil {
		return nil, err
	}
	if w.value() == "" {
		return nil, nil
	}
	snap := w.toSnapshot()
	return &snap, nil
}

func decodeReservationList(raw []byte) ([]reservation.Snapshot, error) {
	var wires []reservationWire
	if err := decode(unwrapEnvelope(raw, "reservations"), &wires, "reservations"); err != nil {
		return nil, err
	}
	out := make([]reservation.Snapshot, len(wires))
	for i, w := range wires {
		out[i] = w.toSnapshot()
	}
	return out, nil
}

func decodeActionResult(raw []byte) (*shared.ActionResult, error) {
	res := &shared.ActionResult{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return res, nil
	}
	var top struct {
		RefundAmount *float64 `json:"refundAmount"`
	}
	if err := decode(raw, &top, "reservation"); err != nil {
		return nil, err
	}
	snap, err := decodeReservation(raw)
	if err != nil {
		return nil, err
	}
	res.Reservation = snap
	res.RefundAmount = top.RefundAmount
	if res.RefundAmount == nil && snap != nil {
		res.RefundAmount = snap.RefundAmount
	}
	return res, nil
}

func decodeEquipment(raw []byte) (*readmodel.EquipmentItemRM, error) {
	var w equipmentWire
	if err := decode(unwrapEnvelope(raw, "equipment"), &w, "equipment"); err != nil {
		return nil, err
	}
	rm := w.toReadModel()
	return &rm, nil
}
