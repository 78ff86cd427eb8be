package repositories

import (
	"fmt"

	"dreamtravels/internal/models"

	"gorm.io/gorm"
)

// BookingRepository defines the interface for booking data access.
type BookingRepository interface {
	Create(booking *models.Booking) error
	Delete(id uint) error
	CountByDestination(destinationID uint) (int64, error)
	ListForAdmin() ([]models.BookingRow, error)
}

// GORMBookingRepository is a GORM implementation of BookingRepository.
type GORMBookingRepository struct {
	db *gorm.DB
}

// NewGORMBookingRepository creates a new instance of GORMBookingRepository.
func NewGORMBookingRepository(db *gorm.DB) *GORMBookingRepository {
	return &GORMBookingRepository{db: db}
}

// Create stores a booking.
func (r *GORMBookingRepository) Create(booking *models.Booking) error {
	if err := r.db.Create(booking).Error; err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// Delete removes a booking by its ID.
func (r *GORMBookingRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Booking{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete booking: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("booking with ID %d: %w", id, ErrNotFound)
	}
	return nil
}

// CountByDestination returns how many bookings reference a destination.
func (r *GORMBookingRepository) CountByDestination(destinationID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Booking{}).Where("destination_id = ?", destinationID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return count, nil
}

// ListForAdmin returns every booking with its destination name, newest first.
func (r *GORMBookingRepository) ListForAdmin() ([]models.BookingRow, error) {
	var rows []models.BookingRow
	err := r.db.Table("bookings b").
		Select("b.id, b.name, b.email, b.destination_id, b.travel_date, b.created_at, d.name AS destination_name").
		Joins("JOIN destinations d ON d.id = b.destination_id").
		Order("b.created_at DESC").Order("b.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return rows, nil
}
