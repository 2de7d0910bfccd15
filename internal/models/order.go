package models

// Customer identifies who placed an order.
type Customer struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
	Email string `json:"email" validate:"required"`
}

// OrderItem is a requested line. The price is whatever the client saw when it
// built the cart; it is not checked against the menu.
type OrderItem struct {
	ID               string  `json:"id" validate:"required"`
	Quantity         int     `json:"quantity" validate:"gte=1"`
	PriceAtOrderTime float64 `json:"priceAtOrderTime" validate:"gte=0"`
}

// CreateOrderRequest is the checkout payload.
type CreateOrderRequest struct {
	Customer            Customer    `json:"customer"`
	Items               []OrderItem `json:"items" validate:"dive"`
	OrderType           string      `json:"orderType" validate:"required"`
	SpecialInstructions *string     `json:"specialInstructions"`
	PaymentMethod       string      `json:"paymentMethod" validate:"required"`
	EstimatedTotal      float64     `json:"estimatedTotal"`
}

type ItemSummary struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	LineTotal float64 `json:"lineTotal"`
}

type Financials struct {
	Subtotal    float64 `json:"subtotal"`
	TaxRate     float64 `json:"taxRate"`
	TaxAmount   float64 `json:"taxAmount"`
	ServiceFee  float64 `json:"serviceFee"`
	TotalAmount float64 `json:"totalAmount"`
}

// OrderConfirmation is returned once when an order is placed.
type OrderConfirmation struct {
	OrderID               string        `json:"orderId"`
	Status                string        `json:"status"`
	ConfirmationNumber    string        `json:"confirmationNumber"`
	OrderTimestamp        string        `json:"orderTimestamp"`
	CustomerName          string        `json:"customerName"`
	PickupEstimateMinutes int           `json:"pickupEstimateMinutes"`
	EstimatedReadyTime    string        `json:"estimatedReadyTime"`
	ItemsSummary          []ItemSummary `json:"itemsSummary"`
	Financials            Financials    `json:"financials"`
	Instructions          *string       `json:"instructions"`
}

// OrderConfirmedEvent is published to the kitchen queue after checkout.
type OrderConfirmedEvent struct {
	OrderID            string  `json:"orderId"`
	ConfirmationNumber string  `json:"confirmationNumber"`
	CustomerName       string  `json:"customerName"`
	OrderType          string  `json:"orderType"`
	ItemCount          int     `json:"itemCount"`
	TotalAmount        float64 `json:"totalAmount"`
	CreatedAt          string  `json:"createdAt"`
}
