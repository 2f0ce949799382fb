package response

import "grocery-admin/internal/usecase/queries"

// LoginResponse repeats the cookie token for clients that send a Bearer header instead.
type LoginResponse struct {
	AccessToken string                      `json:"access_token"`
	TokenType   string                      `json:"token_type"`
	ExpiresIn   int64                       `json:"expires_in"`
	User        *queries.AuthorizedUserView `json:"user"`
}
