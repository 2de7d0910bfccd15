package services

import "kbbq/internal/models"

const PaymentStatusCreated = "created"

// PaymentService opens stub payment sessions. No payment provider is called.
type PaymentService struct{}

func NewPaymentService() *PaymentService {
	return &PaymentService{}
}

// CreateSession returns a session keyed by the order ID.
func (s *PaymentService) CreateSession(orderID string, amount float64) models.PaymentSession {
	return models.PaymentSession{
		SessionID: "PAY-" + orderID,
		Status:    PaymentStatusCreated,
		Amount:    amount,
	}
}
