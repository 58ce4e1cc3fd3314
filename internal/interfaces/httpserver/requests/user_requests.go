package requests

import (
	"reel-server/reel-api/internal/domain/user"
)

// CreateUserRequest represents the user creation payload. All fields are
// optional; absent ones are stored as NULL.
type CreateUserRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Country *string `json:"country"`
}

// ToDomain converts request to domain params
func (r *CreateUserRequest) ToDomain() user.CreateParams {
	return user.CreateParams{
		Name:    r.Name,
		Email:   r.Email,
		Country: r.Country,
	}
}
