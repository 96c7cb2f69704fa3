package response

import (
	"time"

	"github.com/arpanregmi/cafepos-api/internal/domain/entity"
)

// UserResponse is a staff account without the PIN hash
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUserResponse maps a user entity to its API shape
func NewUserResponse(u entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

// NewUserListResponse maps a list of user entities
func NewUserListResponse(users []entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}

// LoginResponse is the payload returned after a successful PIN login
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
