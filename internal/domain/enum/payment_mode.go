package enum

// PaymentMode represents how a bill was settled
type PaymentMode string

const (
	PaymentModeCash    PaymentMode = "cash"
	PaymentModeQR      PaymentMode = "qr"
	PaymentModeCashQR  PaymentMode = "cash_qr"
	PaymentModeCredit  PaymentMode = "credit"
	PaymentModePartial PaymentMode = "partial"
)

// Valid reports whether the payment mode is one of the known modes
func (m PaymentMode) Valid() bool {
	switch m {
	case PaymentModeCash, PaymentModeQR, PaymentModeCashQR, PaymentModeCredit, PaymentModePartial:
		return true
	}
	return false
}

// IsCredit reports whether the mode leaves an outstanding credit balance
func (m PaymentMode) IsCredit() bool {
	return m == PaymentModeCredit || m == PaymentModePartial
}

// PaymentMethod represents the method of an individual money movement (cash or QR)
type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "cash"
	PaymentMethodQR   PaymentMethod = "qr"
)

// Valid reports whether the payment method is known
func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodCash || m == PaymentMethodQR
}
