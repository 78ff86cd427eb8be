package repositories

import (
	"fmt"
	"sort"
	"sync"

	"dreamtravels/internal/models"
)

// MockDestinationRepository is an in-memory implementation of DestinationRepository.
type MockDestinationRepository struct {
	destinations map[uint]models.Destination
	bookings     map[uint]int64 // bookings per destination id
	nextID       uint
	mu           sync.RWMutex
}

// NewMockDestinationRepository creates a new instance of MockDestinationRepository.
func NewMockDestinationRepository() *MockDestinationRepository {
	return &MockDestinationRepository{
		destinations: make(map[uint]models.Destination),
		bookings:     make(map[uint]int64),
	}
}

// GetAll returns all destinations ordered by id.
func (r *MockDestinationRepository) GetAll() ([]models.Destination, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Destination, 0, len(r.destinations))
	for _, d := range r.destinations {
		list = append(list, d)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// GetByID returns a destination by its ID.
func (r *MockDestinationRepository) GetByID(id uint) (*models.Destination, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.destinations[id]
	if !ok {
		return nil, fmt.Errorf("destination with ID %d: %w", id, ErrNotFound)
	}
	return &d, nil
}

// GetByIDs returns the known destinations among ids.
func (r *MockDestinationRepository) GetByIDs(ids []uint) (map[uint]models.Destination, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[uint]models.Destination, len(ids))
	for _, id := range ids {
		if d, ok := r.destinations[id]; ok {
			result[id] = d
		}
	}
	return result, nil
}

// Create adds a new destination, assigning an id when none is set.
func (r *MockDestinationRepository) Create(destination *models.Destination) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if destination.ID == 0 {
		r.nextID++
		destination.ID = r.nextID
	} else if destination.ID > r.nextID {
		r.nextID = destination.ID
	}
	r.destinations[destination.ID] = *destination
	return nil
}

// Count returns the number of destinations.
func (r *MockDestinationRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.destinations)), nil
}

// SetBookingCount records how many bookings reference a destination.
func (r *MockDestinationRepository) SetBookingCount(id uint, count int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings[id] = count
}

// SetPrice changes the price of an existing destination.
func (r *MockDestinationRepository) SetPrice(id uint, price float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if d, ok := r.destinations[id]; ok {
		d.Price = price
		r.destinations[id] = d
	}
}

// Delete removes a destination by its ID.
func (r *MockDestinationRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n := r.bookings[id]; n > 0 {
		return &BookingsExistError{Count: n}
	}
	if _, ok := r.destinations[id]; !ok {
		return fmt.Errorf("destination with ID %d: %w", id, ErrNotFound)
	}
	delete(r.destinations, id)
	return nil
}
