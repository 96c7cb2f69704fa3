package entity

import (
	"time"

	"github.com/arpanregmi/cafepos-api/internal/domain/enum"
)

// User is a staff account. Login is by 4-digit PIN; only the bcrypt hash is
// stored. The hash is persisted in the users document but must never reach
// API responses (handlers map users to response DTOs).
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      enum.Role `json:"role"`
	PINHash   string    `json:"pinHash"`
	CreatedAt time.Time `json:"createdAt"`
}
