package request

// LoginRequest represents a PIN login request
type LoginRequest struct {
	PIN string `json:"pin" binding:"required,len=4,numeric"`
}

// ChangePINRequest represents a PIN change request
type ChangePINRequest struct {
	CurrentPIN string `json:"currentPin" binding:"required,len=4,numeric"`
	NewPIN     string `json:"newPin" binding:"required,len=4,numeric"`
}
