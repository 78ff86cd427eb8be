package repositories

import (
	"errors"
	"fmt"

	"dreamtravels/internal/models"

	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// CreateWithItems inserts the order row and then one row per item inside a
// single transaction. Either all rows are written or none.
func (r *GORMOrderRepository) CreateWithItems(order *models.Order) error {
	items := order.Items
	err := r.db.Transaction(func(tx *gorm.DB) error {
		order.Items = nil
		if err := tx.Create(order).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("order number %s: %w", order.OrderNumber, ErrDuplicate)
			}
			return fmt.Errorf("failed to create order: %w", err)
		}
		for i := range items {
			items[i].ID = 0
			items[i].OrderID = order.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return fmt.Errorf("failed to create order items: %w", err)
			}
		}
		return nil
	})
	order.Items = items
	if err != nil {
		order.ID = 0
		for i := range items {
			items[i].ID = 0
			items[i].OrderID = 0
		}
	}
	return err
}

// GetByID retrieves an order with its items.
func (r *GORMOrderRepository) GetByID(id uint) (*models.Order, error) {
	return r.first("id = ?", id)
}

// GetByOrderNumber retrieves an order with its items by its order number.
func (r *GORMOrderRepository) GetByOrderNumber(orderNumber string) (*models.Order, error) {
	return r.first("order_number = ?", orderNumber)
}

func (r *GORMOrderRepository) first(query string, arg interface{}) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").First(&order, query, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %v: %w", arg, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order %v: %w", arg, err)
	}
	return &order, nil
}

// ListByUser returns the orders of a user, newest first.
func (r *GORMOrderRepository) ListByUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").Order("id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders for user %d: %w", userID, err)
	}
	return orders, nil
}

// ListForAdmin returns every order joined with its owner's username, newest first.
func (r *GORMOrderRepository) ListForAdmin() ([]models.OrderRow, error) {
	var rows []models.OrderRow
	err := r.db.Table("orders o").
		Select("o.id, o.user_id, u.username, o.order_number, o.total_amount, o.payment_method, o.status, o.created_at").
		Joins("JOIN users u ON u.id = o.user_id").
		Order("o.created_at DESC").Order("o.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return rows, nil
}
