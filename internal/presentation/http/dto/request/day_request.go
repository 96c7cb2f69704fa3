package request

// StartDayRequest opens a new accounting day
type StartDayRequest struct {
	OpeningCash int64 `json:"openingCash" binding:"min=0"`
}

// EndDayRequest closes the current accounting day
type EndDayRequest struct {
	ClosingCash int64 `json:"closingCash" binding:"min=0"`
}
