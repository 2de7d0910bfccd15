package app

import (
	"encoding/json"
	"fmt"
	"log"

	"kbbq/internal/models"

	"github.com/streadway/amqp"
)

// StartKitchenFeed logs a ticket for every confirmed order on the kitchen
// queue. It is a no-op when events are disabled.
func (a *App) StartKitchenFeed() error {
	if a.Events == nil {
		return nil
	}
	return a.Events.ConsumeOrderEvents(printTicket)
}

func printTicket(msg amqp.Delivery) error {
	ticket, err := decodeTicket(msg.Body)
	if err != nil {
		return err
	}
	log.Printf("[kitchen] %s #%s for %s (%s): %d item(s), total %.2f",
		ticket.OrderID, ticket.ConfirmationNumber, ticket.CustomerName,
		ticket.OrderType, ticket.ItemCount, ticket.TotalAmount)
	return nil
}

func decodeTicket(body []byte) (models.OrderConfirmedEvent, error) {
	var event models.OrderConfirmedEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return event, fmt.Errorf("invalid order event: %w", err)
	}
	if event.OrderID == "" {
		return event, fmt.Errorf("invalid order event: missing orderId")
	}
	return event, nil
}
