package services_test

import (
	"testing"

	"kbbq/internal/models"
	"kbbq/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestPaymentService_CreateSession(t *testing.T) {
	session := services.NewPaymentService().CreateSession("KBQ-20250101-A1Z3X", 21.40)
	assert.Equal(t, models.PaymentSession{
		SessionID: "PAY-KBQ-20250101-A1Z3X",
		Status:    "created",
		Amount:    21.40,
	}, session)
}
