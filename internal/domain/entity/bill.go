package entity

import (
	"time"

	"github.com/arpanregmi/cafepos-api/internal/domain/enum"
)

// BillItem is a single line on a tab or bill
type BillItem struct {
	Name     string     `json:"name"`
	Price    int64      `json:"price"`
	Quantity int        `json:"quantity"`
	AddedBy  string     `json:"addedBy,omitempty"`
	AddedAt  *time.Time `json:"addedAt,omitempty"`
}

// LineTotal returns price * quantity, treating a missing quantity as 1
func (i BillItem) LineTotal() int64 {
	qty := i.Quantity
	if qty <= 0 {
		qty = 1
	}
	return i.Price * int64(qty)
}

// CreditPayment is a payment recorded against an outstanding credit bill
type CreditPayment struct {
	Amount     int64              `json:"amount"`
	Method     enum.PaymentMethod `json:"method"`
	RecordedBy string             `json:"recordedBy"`
	PaidAt     time.Time          `json:"paidAt"`
}

// PartialPayment records the split of a partially-paid bill: the part paid at
// settlement time and the remainder that went on credit
type PartialPayment struct {
	PaidAmount   int64              `json:"paidAmount"`
	PaidMethod   enum.PaymentMethod `json:"paidMethod"`
	CreditAmount int64              `json:"creditAmount"`
}

// Bill is a finalized transaction record. Except for the credit fields it is
// immutable once created.
type Bill struct {
	ID               string           `json:"id"`
	Table            string           `json:"table"`
	Items            []BillItem       `json:"items"`
	Total            int64            `json:"total"`
	PaymentMode      enum.PaymentMode `json:"paymentMode"`
	CashAmount       int64            `json:"cashAmount"`
	QRAmount         int64            `json:"qrAmount"`
	CreditName       string           `json:"creditName,omitempty"`
	CreditorID       string           `json:"creditorId,omitempty"`
	CreditPaid       bool             `json:"creditPaid"`
	CreditCleared    bool             `json:"creditCleared"`
	ClearRequested   bool             `json:"clearRequested"`
	ClearRequestedBy string           `json:"clearRequestedBy,omitempty"`
	CreditPayments   []CreditPayment  `json:"creditPayments,omitempty"`
	PartialPayment   *PartialPayment  `json:"partialPayment,omitempty"`
	CustomerName     string           `json:"customerName,omitempty"`
	CompletedBy      string           `json:"completedBy"`
	Timestamp        time.Time        `json:"timestamp"`
	CompletedAt      time.Time        `json:"completedAt"`
	ClearedBy        string           `json:"clearedBy,omitempty"`
	ClearedAt        *time.Time       `json:"clearedAt,omitempty"`
}

// OriginalCredit returns the credit amount originally extended on this bill:
// the partial payment's credit portion when present, otherwise the full total.
func (b Bill) OriginalCredit() int64 {
	if b.PartialPayment != nil {
		return b.PartialPayment.CreditAmount
	}
	return b.Total
}

// PaidToDate sums all credit payments recorded against the bill
func (b Bill) PaidToDate() int64 {
	var sum int64
	for _, p := range b.CreditPayments {
		sum += p.Amount
	}
	return sum
}

// Remaining is the outstanding balance on the bill's credit
func (b Bill) Remaining() int64 {
	return b.OriginalCredit() - b.PaidToDate()
}

// IsCleared reports whether the bill's credit has been formally cleared
func (b Bill) IsCleared() bool {
	return b.CreditPaid || b.CreditCleared
}

// CreditStatus derives the explicit tri-state credit status. Clearance is an
// approved action, so a bill reported as paid stays pending until approval.
func (b Bill) CreditStatus() enum.CreditStatus {
	if b.IsCleared() {
		return enum.CreditStatusCleared
	}
	if b.ClearRequested || b.Remaining() <= 0 {
		return enum.CreditStatusPaidPendingApproval
	}
	return enum.CreditStatusOutstanding
}

// Tab is an open, uncommitted order attached to a table
type Tab struct {
	Items        []BillItem `json:"items"`
	CustomerName string     `json:"customerName"`
}

// Total sums the line totals of the tab
func (t Tab) Total() int64 {
	var sum int64
	for _, i := range t.Items {
		sum += i.LineTotal()
	}
	return sum
}

// BillData is the bill/tab ledger aggregate: every completed bill plus the
// open tabs keyed by table name
type BillData struct {
	CompletedBills []Bill          `json:"completedBills"`
	OpenTabs       map[string]*Tab `json:"openTabs"`
}

// FindBill returns a pointer into CompletedBills for the given id, or nil
func (d *BillData) FindBill(id string) *Bill {
	for i := range d.CompletedBills {
		if d.CompletedBills[i].ID == id {
			return &d.CompletedBills[i]
		}
	}
	return nil
}
