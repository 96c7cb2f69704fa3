package request

// CreateUserRequest creates a staff account
type CreateUserRequest struct {
	Name string `json:"name" binding:"required"`
	Role string `json:"role" binding:"required,oneof=admin staff"`
	PIN  string `json:"pin" binding:"required,len=4,numeric"`
}

// UpdateUserRequest patches a staff account
type UpdateUserRequest struct {
	Name *string `json:"name"`
	Role *string `json:"role"`
}

// PayWageRequest records a wage payout
type PayWageRequest struct {
	UserID string `json:"userId" binding:"required"`
	Amount int64  `json:"amount" binding:"required,gt=0"`
}

// AddRecipientRequest adds a day-summary email recipient
type AddRecipientRequest struct {
	Email string `json:"email" binding:"required,email"`
}
