package repositories

import (
	"dreamtravels/internal/models"
)

// DestinationRepository defines the interface for destination data access.
type DestinationRepository interface {
	GetAll() ([]models.Destination, error)
	GetByID(id uint) (*models.Destination, error)
	GetByIDs(ids []uint) (map[uint]models.Destination, error)
	Create(destination *models.Destination) error
	Count() (int64, error)
	// Delete removes a destination unless bookings reference it, in which case
	// the returned error wraps ErrConflict.
	Delete(id uint) error
}
