package request

// UpdateBillRequest patches the editable fields of a completed bill
type UpdateBillRequest struct {
	CustomerName *string `json:"customerName"`
	CreditName   *string `json:"creditName"`
	CreditorID   *string `json:"creditorId"`
}
