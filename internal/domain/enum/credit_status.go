package enum

// CreditStatus is the derived credit sub-state of a bill
type CreditStatus string

const (
	// CreditStatusOutstanding means the bill still carries an unpaid balance
	CreditStatusOutstanding CreditStatus = "outstanding"
	// CreditStatusPaidPendingApproval means payments cover the balance but
	// clearance has not been approved yet
	CreditStatusPaidPendingApproval CreditStatus = "paid_pending_approval"
	// CreditStatusCleared is terminal: clearance was approved
	CreditStatusCleared CreditStatus = "cleared"
)
