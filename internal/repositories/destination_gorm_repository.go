package repositories

import (
	"errors"
	"fmt"

	"dreamtravels/internal/models"

	"gorm.io/gorm"
)

// GORMDestinationRepository is a GORM implementation of DestinationRepository.
type GORMDestinationRepository struct {
	db *gorm.DB
}

// NewGORMDestinationRepository creates a new instance of GORMDestinationRepository.
func NewGORMDestinationRepository(db *gorm.DB) *GORMDestinationRepository {
	return &GORMDestinationRepository{
		db: db,
	}
}

// GetAll retrieves all destinations ordered by id.
func (r *GORMDestinationRepository) GetAll() ([]models.Destination, error) {
	var destinations []models.Destination
	if err := r.db.Order("id").Find(&destinations).Error; err != nil {
		return nil, fmt.Errorf("failed to get all destinations: %w", err)
	}
	return destinations, nil
}

// GetByID retrieves a single destination by its ID.
func (r *GORMDestinationRepository) GetByID(id uint) (*models.Destination, error) {
	var destination models.Destination
	if err := r.db.First(&destination, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("destination with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get destination by ID %d: %w", id, err)
	}
	return &destination, nil
}

// GetByIDs retrieves the destinations with the given ids keyed by id. Unknown ids are absent.
func (r *GORMDestinationRepository) GetByIDs(ids []uint) (map[uint]models.Destination, error) {
	result := make(map[uint]models.Destination, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var destinations []models.Destination
	if err := r.db.Where("id IN ?", ids).Find(&destinations).Error; err != nil {
		return nil, fmt.Errorf("failed to get destinations: %w", err)
	}
	for _, d := range destinations {
		result[d.ID] = d
	}
	return result, nil
}

// Create creates a new destination.
func (r *GORMDestinationRepository) Create(destination *models.Destination) error {
	if err := r.db.Create(destination).Error; err != nil {
		return fmt.Errorf("failed to create destination: %w", err)
	}
	return nil
}

// Count returns the number of destinations.
func (r *GORMDestinationRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Destination{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count destinations: %w", err)
	}
	return count, nil
}

// Delete removes a destination. The booking check and the delete run in one
// transaction so a booking cannot slip in between them.
func (r *GORMDestinationRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var bookings int64
		if err := tx.Model(&models.Booking{}).Where("destination_id = ?", id).Count(&bookings).Error; err != nil {
			return fmt.Errorf("failed to count bookings for destination %d: %w", id, err)
		}
		if bookings > 0 {
			return &BookingsExistError{Count: bookings}
		}
		res := tx.Delete(&models.Destination{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete destination: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("destination with ID %d: %w", id, ErrNotFound)
		}
		return nil
	})
}

// BookingsExistError reports how many bookings block a destination delete.
type BookingsExistError struct {
	Count int64
}

func (e *BookingsExistError) Error() string {
	return fmt.Sprintf("destination has %d bookings", e.Count)
}

// Unwrap makes errors.Is(err, ErrConflict) hold.
func (e *BookingsExistError) Unwrap() error {
	return ErrConflict
}
