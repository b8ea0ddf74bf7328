package response

import "rentaldesk/internal/usecase/readmodel"

type LoginResponse struct {
	AccessToken string                      `json:"access_token"`
	User        *readmodel.AuthorizedUserRM `json:"user"`
}
