package models

import "time"

// OrderStatusCompleted is the only status an order is created with.
const OrderStatusCompleted = "Completed"

// OrderItem represents a single cart line persisted with an order.
type OrderItem struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	OrderID       uint    `json:"order_id" gorm:"index;not null"`
	DestinationID uint    `json:"destination_id" gorm:"not null"`
	Quantity      int     `json:"quantity" gorm:"not null"`
	Price         float64 `json:"price" gorm:"type:decimal(10,2);not null"` // Price locked when added to the cart
	TravelDate    string  `json:"travel_date" gorm:"not null"`
}

// Order represents a placed order.
type Order struct {
	ID            uint        `json:"id" gorm:"primaryKey"`
	UserID        uint        `json:"user_id" gorm:"index;not null"`
	OrderNumber   string      `json:"order_number" gorm:"uniqueIndex;type:varchar(10);not null"`
	TotalAmount   float64     `json:"total_amount" gorm:"type:decimal(10,2);not null"`
	PaymentMethod string      `json:"payment_method" gorm:"not null"`
	Status        string      `json:"status" gorm:"not null"`
	Items         []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time   `json:"created_at"`
}

// OrderRow is an order joined with the username of its owner, used by the admin dashboard.
type OrderRow struct {
	ID            uint      `json:"id"`
	UserID        uint      `json:"user_id"`
	Username      string    `json:"username"`
	OrderNumber   string    `json:"order_number"`
	TotalAmount   float64   `json:"total_amount"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}
