package request

// AddInventoryEntryRequest records an immediate inventory purchase
type AddInventoryEntryRequest struct {
	Item       string  `json:"item" binding:"required"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
	TotalPrice int64   `json:"totalPrice" binding:"min=0"`
	PaidVia    string  `json:"paidVia" binding:"required,oneof=cash qr"`
}

// CreateInventoryRequestRequest raises a purchase request
type CreateInventoryRequestRequest struct {
	Item              string  `json:"item" binding:"required"`
	Quantity          float64 `json:"quantity"`
	Unit              string  `json:"unit"`
	Notes             string  `json:"notes"`
	RecommendedPrice  *int64  `json:"recommendedPrice"`
	RecommendedMethod string  `json:"recommendedMethod"`
}

// FulfillInventoryRequestRequest fulfills a pending purchase request
type FulfillInventoryRequestRequest struct {
	TotalPrice int64  `json:"totalPrice" binding:"min=0"`
	PaidVia    string `json:"paidVia" binding:"required,oneof=cash qr"`
}
