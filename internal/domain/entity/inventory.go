package entity

import (
	"time"

	"github.com/arpanregmi/cafepos-api/internal/domain/enum"
)

// InventoryEntry is an immediate inventory purchase
type InventoryEntry struct {
	ID          string             `json:"id"`
	Item        string             `json:"item"`
	Quantity    float64            `json:"quantity"`
	Unit        string             `json:"unit,omitempty"`
	TotalPrice  int64              `json:"totalPrice"`
	PaidVia     enum.PaymentMethod `json:"paidVia"`
	AddedBy     string             `json:"addedBy"`
	AddedAt     time.Time          `json:"addedAt"`
	FromRequest string             `json:"fromRequest,omitempty"`
}

// InventoryRequest is a purchase request raised by staff; fulfilling it
// appends a linked InventoryEntry
type InventoryRequest struct {
	ID                string             `json:"id"`
	Item              string             `json:"item"`
	Quantity          float64            `json:"quantity"`
	Unit              string             `json:"unit,omitempty"`
	Notes             string             `json:"notes,omitempty"`
	RecommendedPrice  *int64             `json:"recommendedPrice,omitempty"`
	RecommendedMethod string             `json:"recommendedMethod,omitempty"`
	RequestedBy       string             `json:"requestedBy"`
	RequestedAt       time.Time          `json:"requestedAt"`
	Status            enum.RequestStatus `json:"status"`
	FulfilledBy       string             `json:"fulfilledBy,omitempty"`
	FulfilledAt       *time.Time         `json:"fulfilledAt,omitempty"`
	TotalPrice        *int64             `json:"totalPrice,omitempty"`
	PaidVia           enum.PaymentMethod `json:"paidVia,omitempty"`
	CancelledBy       string             `json:"cancelledBy,omitempty"`
	CancelledAt       *time.Time         `json:"cancelledAt,omitempty"`
}

// InventoryData is the inventory ledger aggregate
type InventoryData struct {
	Entries  []InventoryEntry   `json:"entries"`
	Requests []InventoryRequest `json:"requests"`
}
