package enum

// CreditLogType identifies the kind of entry in the append-only credit log
type CreditLogType string

const (
	CreditLogCreditGiven     CreditLogType = "credit_given"
	CreditLogClearRequested  CreditLogType = "clear_requested"
	CreditLogCreditCleared   CreditLogType = "credit_cleared"
	CreditLogPaymentReceived CreditLogType = "payment_received"
	CreditLogCreditorAdded   CreditLogType = "creditor_added"
)
