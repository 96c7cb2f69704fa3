package entity

import "time"

// WagePayment is an append-only record of a wage payout to a staff member
type WagePayment struct {
	ID       string    `json:"id"`
	UserID   string    `json:"userId"`
	UserName string    `json:"userName"`
	Amount   int64     `json:"amount"`
	PaidBy   string    `json:"paidBy"`
	PaidAt   time.Time `json:"paidAt"`
}
