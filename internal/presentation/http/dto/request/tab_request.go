package request

// AddItemRequest adds an item to a table's tab
type AddItemRequest struct {
	Name         string `json:"name" binding:"required"`
	Price        int64  `json:"price" binding:"min=0"`
	Quantity     int    `json:"quantity"`
	CustomerName string `json:"customerName"`
}

// OpenTabRequest opens an empty tab on a table
type OpenTabRequest struct {
	CustomerName string `json:"customerName"`
}

// SetCustomerRequest sets the customer name on an open tab
type SetCustomerRequest struct {
	CustomerName string `json:"customerName" binding:"required"`
}

// CompleteTabRequest settles a tab into a completed bill
type CompleteTabRequest struct {
	PaymentMode   string `json:"paymentMode" binding:"required"`
	CreditName    string `json:"creditName"`
	CreditorID    string `json:"creditorId"`
	CashAmount    int64  `json:"cashAmount"`
	QRAmount      int64  `json:"qrAmount"`
	PartialAmount int64  `json:"partialAmount"`
	PartialMethod string `json:"partialMethod"`
}

// TransferTabRequest moves an open tab to another table
type TransferTabRequest struct {
	TargetTable string `json:"targetTable" binding:"required"`
}
