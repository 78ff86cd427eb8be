package repositories

import (
	"dreamtravels/internal/models"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	// CreateWithItems stores the order and its items atomically and fills in
	// the generated ids.
	CreateWithItems(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	GetByOrderNumber(orderNumber string) (*models.Order, error)
	ListByUser(userID uint) ([]models.Order, error)
	ListForAdmin() ([]models.OrderRow, error)
}
