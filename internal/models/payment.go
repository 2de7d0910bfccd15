package models

// CreatePaymentRequest opens a payment session for an order.
type CreatePaymentRequest struct {
	OrderID string  `json:"order_id" validate:"required"`
	Amount  float64 `json:"amount" validate:"gte=0"`
}

type PaymentSession struct {
	SessionID string  `json:"session_id"`
	Status    string  `json:"status"`
	Amount    float64 `json:"amount"`
}
