package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"dreamtravels/internal/cart"
	"dreamtravels/internal/models"
	"dreamtravels/internal/repositories"

	"github.com/google/uuid"
)

var (
	// ErrEmptyCart is returned when checkout is attempted with no cart lines.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrPaymentMethodRequired is returned when no payment method was chosen.
	ErrPaymentMethodRequired = errors.New("payment method is required")
)

// orderNumberAttempts bounds retries after an order number collision.
const orderNumberAttempts = 3

// NewOrderNumber returns a 10 character upper-case hex token derived from a random uuid.
func NewOrderNumber() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:10]
}

// CheckoutService turns a cart into a persisted order.
type CheckoutService struct {
	orderRepo      repositories.OrderRepository
	publisher      EventPublisher
	newOrderNumber func() string
}

// NewCheckoutService creates a new CheckoutService. publisher may be nil.
func NewCheckoutService(orderRepo repositories.OrderRepository, publisher EventPublisher) *CheckoutService {
	return &CheckoutService{
		orderRepo:      orderRepo,
		publisher:      publisher,
		newOrderNumber: NewOrderNumber,
	}
}

// Checkout places an order for userID from the cart lines and clears the cart.
// The order and its items are written in one transaction; on any error nothing
// is stored and the cart is left untouched so the user can retry.
func (s *CheckoutService) Checkout(userID uint, c *cart.Cart, paymentMethod string) (*models.Order, error) {
	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}
	paymentMethod = strings.TrimSpace(paymentMethod)
	if paymentMethod == "" {
		return nil, ErrPaymentMethodRequired
	}

	items := make([]models.OrderItem, 0, c.Len())
	for _, l := range c.Lines {
		items = append(items, models.OrderItem{
			DestinationID: l.DestinationID,
			Quantity:      l.Quantity,
			Price:         l.Price,
			TravelDate:    l.TravelDate,
		})
	}

	var (
		order *models.Order
		err   error
	)
	for attempt := 1; attempt <= orderNumberAttempts; attempt++ {
		order = &models.Order{
			UserID:        userID,
			OrderNumber:   s.newOrderNumber(),
			TotalAmount:   c.Total(),
			PaymentMethod: paymentMethod,
			Status:        models.OrderStatusCompleted,
			Items:         append([]models.OrderItem(nil), items...),
		}
		err = s.orderRepo.CreateWithItems(order)
		if err == nil || !errors.Is(err, repositories.ErrDuplicate) {
			break
		}
		log.Printf("Order number %s already taken (attempt %d), generating a new one", order.OrderNumber, attempt)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	c.Clear()
	log.Printf("Order %s placed by user %d: %d items, total %.2f", order.OrderNumber, userID, len(order.Items), order.TotalAmount)
	s.publishOrderPlaced(order)
	return order, nil
}

// GetOrderForUser returns the order with orderNumber if it belongs to userID.
func (s *CheckoutService) GetOrderForUser(userID uint, orderNumber string) (*models.Order, error) {
	order, err := s.orderRepo.GetByOrderNumber(orderNumber)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, fmt.Errorf("order %s: %w", orderNumber, repositories.ErrNotFound)
	}
	return order, nil
}

// ListOrders returns the orders placed by userID, newest first.
func (s *CheckoutService) ListOrders(userID uint) ([]models.Order, error) {
	return s.orderRepo.ListByUser(userID)
}

// publishOrderPlaced emits an order.placed event. Failures are logged only;
// the order is already committed.
func (s *CheckoutService) publishOrderPlaced(order *models.Order) {
	if s.publisher == nil {
		log.Println("Event publisher is not configured. Skipping order placed event.")
		return
	}

	event := OrderPlacedEvent{
		OrderID:       order.ID,
		OrderNumber:   order.OrderNumber,
		UserID:        order.UserID,
		TotalAmount:   order.TotalAmount,
		PaymentMethod: order.PaymentMethod,
		PlacedAt:      time.Now().UTC(),
	}
	for _, item := range order.Items {
		event.Items = append(event.Items, OrderPlacedItem{
			DestinationID: item.DestinationID,
			Quantity:      item.Quantity,
			Price:         item.Price,
			TravelDate:    item.TravelDate,
		})
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal order placed event: %v", err)
		return
	}
	if err := s.publisher.Publish(OrderPlacedRoutingKey, body); err != nil {
		log.Printf("Warning: Failed to publish order placed event for order %s: %v", order.OrderNumber, err)
		return
	}
	log.Printf("Successfully published order placed event for order %s", order.OrderNumber)
}
