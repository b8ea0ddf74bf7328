//go:build e2e

package draft_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"rentaldesk/internal/domain/equipment"
	"rentaldesk/internal/domain/slot"
	"rentaldesk/internal/handler/dto/request"
	"rentaldesk/internal/handler/dto/response"
	"rentaldesk/tests/common/httptest"
	"rentaldesk/tests/e2e"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const draftsURL = "/api/drafts"

type draftSuite struct {
	e2e.SharedSuite
	date string
}

func TestDraftSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(draftSuite))
}

func (s *draftSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.date = time.Now().UTC().AddDate(0, 0, 10).Format("2006-01-02")
}

func draftURL(id string, parts ...string) string {
	u := draftsURL + "/" + id
	for _, p := range parts {
		u += "/" + p
	}
	return u
}

func (s *draftSuite) createDraft(token, productID string, quantity int) *response.DraftResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, draftsURL, request.CreateDraftRequest{
		ProductID: productID,
		Quantity:  quantity,
	}, token)
	var d response.DraftResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &d)
	require.NotEmpty(t, d.ID)
	return &d
}

func (s *draftSuite) toggle(token, id string, idx int) *response.ToggleResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, draftURL(id, "slots", fmt.Sprint(idx), "toggle"), nil, token)
	var res response.ToggleResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	return &res
}

func (s *draftSuite) TestKayakDraftToReservation() {
	t := s.T()
	token := s.Login(e2e.StubCustomer.Username)
	d := s.createDraft(token, "p-kayak", 2)
	assert.Nil(t, d.RiderRange, "カヤックは人数入力が不要")

	w := httptest.PerformRequest(t, s.Router, http.MethodPut, draftURL(d.ID, "date"), request.SetDraftDateRequest{Date: s.date}, token)
	var dated response.DraftResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &dated)
	assert.True(t, dated.AvailabilityLoaded)
	assert.NotEmpty(t, dated.Availability)

	assert.True(t, s.toggle(token, d.ID, 20).Accepted)
	assert.True(t, s.toggle(token, d.ID, 21).Accepted)

	gap := s.toggle(token, d.ID, 24)
	assert.False(t, gap.Accepted, "離れた枠は選択できない")
	assert.NotEmpty(t, gap.Message)
	assert.Equal(t, []slot.Index{20, 21}, gap.Draft.Slots)

	w = httptest.PerformRequest(t, s.Router, http.MethodPut, draftURL(d.ID, "customer"), request.SetDraftCustomerRequest{
		Name:    "Maria",
		Contact: "555-0100",
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = httptest.PerformRequest(t, s.Router, http.MethodPost, draftURL(d.ID, "submit"), nil, token)
	var created response.ReservationResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
	assert.Equal(t, s.date, created.Date)
	assert.Equal(t, "10:00 - 10:30", created.SlotsLabel)
	assert.Equal(t, []int{20, 21}, e2e.SlotsOf(s.Backend.Reservation(created.ID)))

	w = httptest.PerformRequest(t, s.Router, http.MethodGet, draftURL(d.ID), nil, token)
	httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")
}

func (s *draftSuite) TestJetSkiDraftNeedsRidersAndEquipment() {
	t := s.T()
	token := s.Login(e2e.StubCustomer.Username)
	d := s.createDraft(token, "p-jetski", 1)
	require.NotNil(t, d.RiderRange)
	assert.Equal(t, 1, d.RiderRange.Min)
	assert.Equal(t, 2, d.RiderRange.Max)
	assert.ElementsMatch(t, []equipment.Kind{equipment.KindHelmet, equipment.KindLifeJacket}, d.RequiredEquipment)

	w := httptest.PerformRequest(t, s.Router, http.MethodPut, draftURL(d.ID, "date"), request.SetDraftDateRequest{Date: s.date}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.True(t, s.toggle(token, d.ID, 22).Accepted)

	w = httptest.PerformRequest(t, s.Router, http.MethodPut, draftURL(d.ID, "customer"), request.SetDraftCustomerRequest{
		Name:    "Maria",
		Contact: "555-0100",
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	s.Run("人数が範囲外なら拒否", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, draftURL(d.ID, "riders"), request.SetDraftRidersRequest{Riders: 3}, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "riders must be within [1,2]")
	})

	w = httptest.PerformRequest(t, s.Router, http.MethodPut, draftURL(d.ID, "riders"), request.SetDraftRidersRequest{Riders: 2}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// 装備が揃うまで送信できない
	w = httptest.PerformRequest(t, s.Router, http.MethodPost, draftURL(d.ID, "submit"), nil, token)
	httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "")
	assert.Zero(t, s.Backend.ReservationCount())

	for _, adj := range []request.AdjustEquipmentRequest{
		{Type: "Helmet", Size: "M", Delta: 2},
		{Type: "LifeJacket", Size: "L", Delta: 1},
		{Type: "LifeJacket", Size: "S", Delta: 1},
	} {
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, draftURL(d.ID, "equipment"), adj, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	w = httptest.PerformRequest(t, s.Router, http.MethodPost, draftURL(d.ID, "submit"), nil, token)
	var created response.ReservationResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
	require.NotNil(t, created.Riders)
	assert.Equal(t, 2, *created.Riders)
	assert.Len(t, created.Equipment, 3)
}

func (s *draftSuite) TestDraftIsPrivateToItsSession() {
	t := s.T()
	owner := s.Login(e2e.StubCustomer.Username)
	d := s.createDraft(owner, "p-kayak", 1)

	other := s.Login(e2e.StubStaff.Username)
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, draftURL(d.ID), nil, other)
	httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")

	w = httptest.PerformRequest(t, s.Router, http.MethodDelete, draftURL(d.ID), nil, owner)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.PerformRequest(t, s.Router, http.MethodGet, draftURL(d.ID), nil, owner)
	httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")
}

func (s *draftSuite) TestOutOfStockQuantityIsRejected() {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, draftsURL, request.CreateDraftRequest{
		ProductID: "p-jetski",
		Quantity:  4,
	}, s.Login(e2e.StubCustomer.Username))
	httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "quantity exceeds available stock")
}
