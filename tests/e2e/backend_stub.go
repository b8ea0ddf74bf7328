//go:build e2e

package e2e

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"time"

	"rentaldesk/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const StubPassword = "password123"

// StubUser is an account the stub booking service accepts.
type StubUser struct {
	ID       string
	Username string
	Role     string
}

var (
	StubCustomer = StubUser{ID: "u-customer", Username: "maria", Role: "customer"}
	StubStaff    = StubUser{ID: "u-staff", Username: "kenji", Role: "staff"}
)

// BackendStub is an in-memory stand-in for the booking service. It speaks
// the same JSON the real service does, including its "_id" documents and
// response envelopes.
type BackendStub struct {
	mu           sync.Mutex
	secret       string
	users        map[string]StubUser
	products     map[string]gin.H
	reservations map[string]gin.H
	order        []string
	equipment    map[string]gin.H
	server       *httptest.Server
}

func NewBackendStub(secret string) *BackendStub {
	b := &BackendStub{secret: secret}
	b.Reset()

	engine := gin.New()
	api := engine.Group("/api")
	api.POST("/auth/login", b.login)
	api.GET("/products", b.listProducts)
	api.PUT("/products/:id", b.updateProduct)
	api.GET("/availability/:date/:productId", b.availability)
	api.POST("/reservations", b.createReservation)
	api.GET("/reservations", b.listReservations)
	api.GET("/reservations/date/:date", b.reservationsByDate)
	api.PUT("/reservations/:id/cancel", b.cancel)
	api.PUT("/reservations/:id/payment", b.markPaid)
	api.PUT("/reservations/:id/storm-refund", b.stormRefund)
	api.GET("/safety-equipment", b.listEquipment)

	b.server = httptest.NewServer(engine)
	return b
}

func (b *BackendStub) BaseURL() string {
	return b.server.URL + "/api"
}

func (b *BackendStub) Close() {
	b.server.Close()
}

// Reset restores the seeded catalog and drops every reservation.
func (b *BackendStub) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.users = map[string]StubUser{
		StubCustomer.Username: StubCustomer,
		StubStaff.Username:    StubStaff,
	}
	b.products = map[string]gin.H{
		"p-kayak":  {"_id": "p-kayak", "name": "Kayak", "type": "Kayak", "price": 40.0, "quantity": 6},
		"p-jetski": {"_id": "p-jetski", "name": "Jet Ski", "type": "jetski", "price": 120.0, "quantity": 3},
	}
	b.reservations = map[string]gin.H{}
	b.order = nil
	b.equipment = map[string]gin.H{
		"e-helmet-m": {"_id": "e-helmet-m", "type": "Helmet", "size": "M", "quantity": 8, "status": "available"},
	}
}

// SeedReservation stores a pending reservation owned by userID and returns
// its id.
func (b *BackendStub) SeedReservation(userID, date string, slots []int) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := "r-" + uuid.NewString()[:8]
	b.store(gin.H{
		"_id":                id,
		"user":               gin.H{"_id": userID},
		"customer":           gin.H{"name": "Maria", "contact": "555-0100"},
		"products":           []gin.H{{"product": b.products["p-kayak"], "quantity": 1}},
		"date":               date + "T00:00:00.000Z",
		"slots":              slots,
		"paymentStatus":      "pending",
		"cancellationStatus": "none",
		"totalPrice":         40.0,
		"paymentDeadline":    time.Now().Add(48 * time.Hour).UTC().Format(time.RFC3339),
		"createdAt":          time.Now().UTC().Format(time.RFC3339),
	})
	return id
}

func (b *BackendStub) Reservation(id string) gin.H {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.reservations[id]
}

func (b *BackendStub) ReservationCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.reservations)
}

func (b *BackendStub) store(r gin.H) {
	id := r["_id"].(string)
	if _, exists := b.reservations[id]; !exists {
		b.order = append(b.order, id)
	}
	b.reservations[id] = r
}

func (b *BackendStub) caller(c *gin.Context) (*jwt.Claims, bool) {
	header := c.GetHeader("Authorization")
	if len(header) < len("Bearer ") {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
		return nil, false
	}
	claims, err := jwt.NewDecoder(b.secret).Decode(header[len("Bearer "):])
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
		return nil, false
	}
	return claims, true
}

func (b *BackendStub) login(c *gin.Context) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	b.mu.Lock()
	u, ok := b.users[body.Username]
	b.mu.Unlock()
	if !ok || body.Password != StubPassword {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := jwt.Sign(b.secret, jwt.Claims{
		UID:      u.ID,
		Username: u.Username,
		Role:     u.Role,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwtlib.NewNumericDate(time.Now()),
		},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (b *BackendStub) listProducts(c *gin.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]gin.H, 0, len(b.products))
	for _, id := range []string{"p-kayak", "p-jetski"} {
		if p, ok := b.products[id]; ok {
			out = append(out, p)
		}
	}
	c.JSON(http.StatusOK, out)
}

func (b *BackendStub) updateProduct(c *gin.Context) {
	if _, ok := b.caller(c); !ok {
		return
	}
	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	p, ok := b.products[c.Param("id")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}
	p["quantity"] = body.Quantity
	c.JSON(http.StatusOK, gin.H{"product": p})
}

func (b *BackendStub) availability(c *gin.Context) {
	slots := make([]gin.H, 0, 18)
	for s := 18; s <= 35; s++ {
		slots = append(slots, gin.H{
			"slot":              s,
			"time":              fmt.Sprintf("%02d:%02d", s/2, (s%2)*30),
			"availableQuantity": 4,
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"availability": gin.H{"date": c.Param("date"), "slots": slots},
	})
}

func (b *BackendStub) createReservation(c *gin.Context) {
	claims, ok := b.caller(c)
	if !ok {
		return
	}
	var body struct {
		Customer gin.H `json:"customer"`
		Products []struct {
			Product  string `json:"product"`
			Quantity int    `json:"quantity"`
		} `json:"products"`
		Date                     string  `json:"date"`
		Slots                    []int   `json:"slots"`
		Riders                   *int    `json:"riders"`
		SafetyEquipmentRequested []gin.H `json:"safetyEquipmentRequested"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	lines := make([]gin.H, 0, len(body.Products))
	total := 0.0
	for _, l := range body.Products {
		p, ok := b.products[l.Product]
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown product " + l.Product})
			return
		}
		lines = append(lines, gin.H{"product": p, "quantity": l.Quantity})
		total += p["price"].(float64) * float64(l.Quantity*len(body.Slots))
	}

	r := gin.H{
		"_id":                      "r-" + uuid.NewString()[:8],
		"user":                     claims.UserID(),
		"customer":                 body.Customer,
		"products":                 lines,
		"date":                     body.Date,
		"slots":                    body.Slots,
		"riders":                   body.Riders,
		"safetyEquipmentRequested": body.SafetyEquipmentRequested,
		"paymentStatus":            "pending",
		"cancellationStatus":       "none",
		"totalPrice":               total,
		"paymentDeadline":          time.Now().Add(48 * time.Hour).UTC().Format(time.RFC3339),
		"createdAt":                time.Now().UTC().Format(time.RFC3339),
	}
	b.store(r)
	c.JSON(http.StatusCreated, gin.H{"reservation": r})
}

func (b *BackendStub) visible(claims *jwt.Claims, match func(gin.H) bool) []gin.H {
	out := make([]gin.H, 0, len(b.order))
	for _, id := range b.order {
		r := b.reservations[id]
		if claims.Role == "customer" && ownerOf(r) != claims.UserID() {
			continue
		}
		if match != nil && !match(r) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func ownerOf(r gin.H) string {
	switch u := r["user"].(type) {
	case string:
		return u
	case gin.H:
		id, _ := u["_id"].(string)
		return id
	}
	return ""
}

func (b *BackendStub) listReservations(c *gin.Context) {
	claims, ok := b.caller(c)
	if !ok {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"reservations": b.visible(claims, nil)})
}

func (b *BackendStub) reservationsByDate(c *gin.Context) {
	claims, ok := b.caller(c)
	if !ok {
		return
	}
	date := c.Param("date")
	b.mu.Lock()
	defer b.mu.Unlock()
	c.JSON(http.StatusOK, b.visible(claims, func(r gin.H) bool {
		d, _ := r["date"].(string)
		return len(d) >= len(date) && d[:len(date)] == date
	}))
}

func (b *BackendStub) mutate(c *gin.Context, fn func(r gin.H) (int, string)) {
	if _, ok := b.caller(c); !ok {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	r, ok := b.reservations[c.Param("id")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Reservation not found"})
		return
	}
	if status, msg := fn(r); status != http.StatusOK {
		c.JSON(status, gin.H{"message": msg})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservation": r})
}

func (b *BackendStub) cancel(c *gin.Context) {
	b.mutate(c, func(r gin.H) (int, string) {
		if r["cancellationStatus"] != "none" {
			return http.StatusBadRequest, "Reservation is already closed"
		}
		r["paymentStatus"] = "canceled"
		r["cancellationStatus"] = "canceled"
		return http.StatusOK, ""
	})
}

func (b *BackendStub) markPaid(c *gin.Context) {
	b.mutate(c, func(r gin.H) (int, string) {
		if r["paymentStatus"] != "pending" {
			return http.StatusBadRequest, "Reservation is not pending"
		}
		r["paymentStatus"] = "paid"
		return http.StatusOK, ""
	})
}

func (b *BackendStub) stormRefund(c *gin.Context) {
	b.mutate(c, func(r gin.H) (int, string) {
		if r["paymentStatus"] != "paid" {
			return http.StatusBadRequest, "Only paid reservations can be refunded"
		}
		refund := r["totalPrice"].(float64) / 2
		r["paymentStatus"] = "partial refund"
		r["cancellationStatus"] = "storm refund"
		r["refundAmount"] = refund
		return http.StatusOK, ""
	})
}

func (b *BackendStub) listEquipment(c *gin.Context) {
	if _, ok := b.caller(c); !ok {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]gin.H, 0, len(b.equipment))
	for _, e := range b.equipment {
		out = append(out, e)
	}
	c.JSON(http.StatusOK, out)
}

// SlotsOf converts the stored slot list for assertions.
func SlotsOf(r gin.H) []int {
	switch s := r["slots"].(type) {
	case []int:
		return s
	case []any:
		out := make([]int, 0, len(s))
		for _, v := range s {
			switch n := v.(type) {
			case float64:
				out = append(out, int(n))
			case string:
				i, _ := strconv.Atoi(n)
				out = append(out, i)
			}
		}
		return out
	}
	return nil
}
