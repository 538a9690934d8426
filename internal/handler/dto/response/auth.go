package response

import "barkeep/internal/usecase/queries"

type LoginResponse struct {
	AccessToken string            `json:"access_token"`
	Host        *queries.HostView `json:"host"`
}
