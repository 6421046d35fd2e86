package response

import (
	"dungji-market/internal/usecase/commands"

	"github.com/google/uuid"
)

type RegisterResponse struct {
	UserID uuid.UUID `json:"user_id"`
}

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	UserID      uuid.UUID `json:"user_id"`
	Nickname    string    `json:"nickname"`
	Role        string    `json:"role"`
}

func FromLoginResult(r commands.LoginResult) LoginResponse {
	return LoginResponse{
		AccessToken: r.Token,
		UserID:      r.UserID,
		Nickname:    r.Nickname,
		Role:        r.Role,
	}
}
