package entity

import "time"

// Creditor is a customer with a running credit balance tracked across bills
type Creditor struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	Active    bool      `json:"active"`
}
