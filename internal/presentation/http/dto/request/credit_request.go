package request

// RecordPaymentRequest records a payment against an outstanding credit bill
type RecordPaymentRequest struct {
	Amount int64  `json:"amount" binding:"required,gt=0"`
	Method string `json:"method" binding:"required,oneof=cash qr"`
}

// CreateCreditorRequest registers a creditor
type CreateCreditorRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

// UpdateCreditorRequest patches a creditor record
type UpdateCreditorRequest struct {
	Name   *string `json:"name"`
	Phone  *string `json:"phone"`
	Notes  *string `json:"notes"`
	Active *bool   `json:"active"`
}
