//go:build e2e

package e2e

import (
	"net/http"

	"rentaldesk/internal/handler/dto/request"
	"rentaldesk/internal/handler/dto/response"
	"rentaldesk/tests/common/httptest"
)

const LoginURL = "/api/auth/login"

// Login signs in through the API and returns the access token the stub
// backend issued.
func (s *SharedSuite) Login(username string) string {
	t := s.T()
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, LoginURL, request.LoginRequest{
		Username: username,
		Password: StubPassword,
	}, "")

	var resp response.LoginResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &resp)
	s.Require().NotEmpty(resp.AccessToken, "ログインでトークンが返されること")
	return resp.AccessToken
}
