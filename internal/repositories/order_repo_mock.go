package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"dreamtravels/internal/models"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
type MockOrderRepository struct {
	orders      map[uint]models.Order
	nextOrderID uint
	nextItemID  uint
	// FailNext, when set, is returned by the next CreateWithItems call and then cleared.
	FailNext error
	mu       sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{
		orders: make(map[uint]models.Order),
	}
}

// CreateWithItems stores an order and its items.
func (r *MockOrderRepository) CreateWithItems(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.FailNext; err != nil {
		r.FailNext = nil
		return err
	}
	for _, existing := range r.orders {
		if existing.OrderNumber == order.OrderNumber {
			return fmt.Errorf("order number %s: %w", order.OrderNumber, ErrDuplicate)
		}
	}

	r.nextOrderID++
	order.ID = r.nextOrderID
	order.CreatedAt = time.Now()
	items := make([]models.OrderItem, len(order.Items))
	for i, item := range order.Items {
		r.nextItemID++
		item.ID = r.nextItemID
		item.OrderID = order.ID
		items[i] = item
	}
	order.Items = items

	stored := *order
	stored.Items = append([]models.OrderItem(nil), items...)
	r.orders[order.ID] = stored
	return nil
}

// GetByID returns an order by its ID.
func (r *MockOrderRepository) GetByID(id uint) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("order %d: %w", id, ErrNotFound)
	}
	return &order, nil
}

// GetByOrderNumber returns an order by its order number.
func (r *MockOrderRepository) GetByOrderNumber(orderNumber string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, order := range r.orders {
		if order.OrderNumber == orderNumber {
			return &order, nil
		}
	}
	return nil, fmt.Errorf("order %s: %w", orderNumber, ErrNotFound)
}

// ListByUser returns the orders of a user, newest first.
func (r *MockOrderRepository) ListByUser(userID uint) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var list []models.Order
	for _, order := range r.orders {
		if order.UserID == userID {
			list = append(list, order)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	return list, nil
}

// ListForAdmin returns all orders, newest first. Usernames are not known to the mock.
func (r *MockOrderRepository) ListForAdmin() ([]models.OrderRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := make([]models.OrderRow, 0, len(r.orders))
	for _, o := range r.orders {
		rows = append(rows, models.OrderRow{
			ID:            o.ID,
			UserID:        o.UserID,
			OrderNumber:   o.OrderNumber,
			TotalAmount:   o.TotalAmount,
			PaymentMethod: o.PaymentMethod,
			Status:        o.Status,
			CreatedAt:     o.CreatedAt,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID > rows[j].ID })
	return rows, nil
}

// Count returns the number of stored orders.
func (r *MockOrderRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}
