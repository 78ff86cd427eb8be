package services

import "time"

// OrderPlacedRoutingKey is the routing key order placement events are published with.
const OrderPlacedRoutingKey = "order.placed"

// EventPublisher publishes domain events to a message broker.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// OrderPlacedEvent is published after an order has been committed.
type OrderPlacedEvent struct {
	OrderID       uint              `json:"order_id"`
	OrderNumber   string            `json:"order_number"`
	UserID        uint              `json:"user_id"`
	TotalAmount   float64           `json:"total_amount"`
	PaymentMethod string            `json:"payment_method"`
	Items         []OrderPlacedItem `json:"items"`
	PlacedAt      time.Time         `json:"placed_at"`
}

// OrderPlacedItem is one line of an OrderPlacedEvent.
type OrderPlacedItem struct {
	DestinationID uint    `json:"destination_id"`
	Quantity      int     `json:"quantity"`
	Price         float64 `json:"price"`
	TravelDate    string  `json:"travel_date"`
}
