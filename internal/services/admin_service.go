package services

import (
	"dreamtravels/internal/models"
	"dreamtravels/internal/repositories"
)

// Dashboard is everything the admin page lists.
type Dashboard struct {
	Destinations []models.Destination
	Bookings     []models.BookingRow
	Orders       []models.OrderRow
}

// AdminService handles administrator operations.
type AdminService struct {
	destinations repositories.DestinationRepository
	bookings     repositories.BookingRepository
	orders       repositories.OrderRepository
}

// NewAdminService creates a new AdminService.
func NewAdminService(destinations repositories.DestinationRepository, bookings repositories.BookingRepository, orders repositories.OrderRepository) *AdminService {
	return &AdminService{
		destinations: destinations,
		bookings:     bookings,
		orders:       orders,
	}
}

// Dashboard loads destinations, bookings and orders.
func (s *AdminService) Dashboard() (*Dashboard, error) {
	destinations, err := s.destinations.GetAll()
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookings.ListForAdmin()
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.ListForAdmin()
	if err != nil {
		return nil, err
	}
	return &Dashboard{Destinations: destinations, Bookings: bookings, Orders: orders}, nil
}

// DeleteDestination deletes a destination that has no bookings. A blocked delete
// returns a *repositories.BookingsExistError.
func (s *AdminService) DeleteDestination(id uint) error {
	return s.destinations.Delete(id)
}

// DeleteBooking deletes a booking.
func (s *AdminService) DeleteBooking(id uint) error {
	return s.bookings.Delete(id)
}
