package packets

import (
	"time"

	"github.com/Nixie-Tech-LLC/playhouse/internal/model"
)

// AdminResponse is the public view of an admin account.
type AdminResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func NewAdminResponse(u *model.User) AdminResponse {
	return AdminResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
}

type RegisterResponse struct {
	Success int           `json:"success"`
	Message string        `json:"message"`
	Admin   AdminResponse `json:"admin"`
}

type LoginResponse struct {
	Success     int           `json:"success"`
	User        AdminResponse `json:"user"`
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	ExpiresIn   int64         `json:"expires_in"`
}
