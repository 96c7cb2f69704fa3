package entity

import (
	"time"

	"github.com/arpanregmi/cafepos-api/internal/domain/enum"
)

// CreditLogEntry is one record in the append-only credit audit log. Entries
// are never mutated or deleted; current state is always derived from bills,
// never by replaying this log.
type CreditLogEntry struct {
	ID              string             `json:"id"`
	Type            enum.CreditLogType `json:"type"`
	Timestamp       time.Time          `json:"timestamp"`
	BillID          string             `json:"billId,omitempty"`
	Table           string             `json:"table,omitempty"`
	CreditName      string             `json:"creditName,omitempty"`
	CreditorID      string             `json:"creditorId,omitempty"`
	CreditorName    string             `json:"creditorName,omitempty"`
	Phone           string             `json:"phone,omitempty"`
	Amount          int64              `json:"amount,omitempty"`
	TotalBillAmount int64              `json:"totalBillAmount,omitempty"`
	Method          enum.PaymentMethod `json:"method,omitempty"`
	PaymentMode     enum.PaymentMode   `json:"paymentMode,omitempty"`
	PartialPayment  *PartialPayment    `json:"partialPayment,omitempty"`
	CustomerName    string             `json:"customerName,omitempty"`
	CreatedBy       string             `json:"createdBy,omitempty"`
	RecordedBy      string             `json:"recordedBy,omitempty"`
	RequestedBy     string             `json:"requestedBy,omitempty"`
	ApprovedBy      string             `json:"approvedBy,omitempty"`
}
