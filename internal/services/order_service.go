package services

import (
	"encoding/json"
	"log"
	"strings"
	"time"

	"kbbq/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	OrderStatusConfirmed  = "Confirmed"
	PickupEstimateMinutes = 30

	orderEventRoutingKey = "order.confirmed"
	timestampLayout      = "2006-01-02T15:04:05Z"
)

var (
	TaxRate    = decimal.NewFromFloat(0.07)
	ServiceFee = decimal.Zero
)

// EventPublisher sends a message to the order events queue.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// OrderService prices checkouts. Orders are not persisted; the confirmation
// is returned once and optionally announced to the kitchen.
type OrderService struct {
	publisher EventPublisher
	now       func() time.Time
}

// NewOrderService creates a new OrderService. publisher may be nil.
func NewOrderService(publisher EventPublisher) *OrderService {
	return &OrderService{
		publisher: publisher,
		now:       time.Now,
	}
}

// CreateOrder builds the confirmation for req. Totals are computed only from
// the unit prices in the request.
func (s *OrderService) CreateOrder(req models.CreateOrderRequest) (*models.OrderConfirmation, error) {
	now := s.now().UTC()
	confirmation := confirmationNumber()

	summary, financials := PriceItems(req.Items)

	order := &models.OrderConfirmation{
		OrderID:               "KBQ-" + now.Format("20060102") + "-" + confirmation,
		Status:                OrderStatusConfirmed,
		ConfirmationNumber:    confirmation,
		OrderTimestamp:        now.Format(timestampLayout),
		CustomerName:          req.Customer.Name,
		PickupEstimateMinutes: PickupEstimateMinutes,
		EstimatedReadyTime:    now.Add(PickupEstimateMinutes * time.Minute).Format(timestampLayout),
		ItemsSummary:          summary,
		Financials:            financials,
		Instructions:          req.SpecialInstructions,
	}

	s.announce(order, req)
	return order, nil
}

// PriceItems computes line totals and order financials. Every amount is
// rounded to cents, and the subtotal is accumulated from rounded lines.
func PriceItems(items []models.OrderItem) ([]models.ItemSummary, models.Financials) {
	summary := make([]models.ItemSummary, 0, len(items))
	subtotal := decimal.Zero
	for _, item := range items {
		unit := decimal.NewFromFloat(item.PriceAtOrderTime)
		line := unit.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2)
		subtotal = subtotal.Add(line).Round(2)
		summary = append(summary, models.ItemSummary{
			Name:      item.ID,
			Quantity:  item.Quantity,
			UnitPrice: item.PriceAtOrderTime,
			LineTotal: line.InexactFloat64(),
		})
	}

	tax := subtotal.Mul(TaxRate).Round(2)
	total := subtotal.Add(tax).Add(ServiceFee).Round(2)

	return summary, models.Financials{
		Subtotal:    subtotal.InexactFloat64(),
		TaxRate:     TaxRate.InexactFloat64(),
		TaxAmount:   tax.InexactFloat64(),
		ServiceFee:  ServiceFee.InexactFloat64(),
		TotalAmount: total.InexactFloat64(),
	}
}

func (s *OrderService) announce(order *models.OrderConfirmation, req models.CreateOrderRequest) {
	if s.publisher == nil {
		return
	}
	event := models.OrderConfirmedEvent{
		OrderID:            order.OrderID,
		ConfirmationNumber: order.ConfirmationNumber,
		CustomerName:       order.CustomerName,
		OrderType:          req.OrderType,
		ItemCount:          len(order.ItemsSummary),
		TotalAmount:        order.Financials.TotalAmount,
		CreatedAt:          order.OrderTimestamp,
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("[orders] failed to marshal event for %s: %v", order.OrderID, err)
		return
	}
	if err := s.publisher.Publish(orderEventRoutingKey, body); err != nil {
		log.Printf("[orders] warning: failed to publish confirmation for %s: %v", order.OrderID, err)
		return
	}
	log.Printf("[orders] published confirmation for %s", order.OrderID)
}

// confirmationNumber is a short display code; it is not used for lookups.
func confirmationNumber() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(id[:5])
}
