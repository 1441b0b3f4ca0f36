package entity

const (
	PaymentCash  = "cash"
	PaymentGcash = "gcash"
)

func ValidPaymentMethod(m string) bool {
	return m == PaymentCash || m == PaymentGcash
}
