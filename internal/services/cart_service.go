package services

import (
	"errors"
	"fmt"
	"strings"

	"dreamtravels/internal/cart"
	"dreamtravels/internal/models"
	"dreamtravels/internal/repositories"
)

// ErrTravelDateRequired is returned when a cart add has no travel date.
var ErrTravelDateRequired = errors.New("travel date is required")

// CartService applies cart mutations that need the store.
type CartService struct {
	destinations repositories.DestinationRepository
}

// NewCartService creates a new CartService.
func NewCartService(destinations repositories.DestinationRepository) *CartService {
	return &CartService{destinations: destinations}
}

// AddToCart adds quantity units of a destination for travelDate. The destination
// price is read now and locked into the line.
func (s *CartService) AddToCart(c *cart.Cart, destinationID uint, travelDate string, quantity int) (*models.Destination, cart.Line, error) {
	travelDate = strings.TrimSpace(travelDate)
	if travelDate == "" {
		return nil, cart.Line{}, ErrTravelDateRequired
	}
	destination, err := s.destinations.GetByID(destinationID)
	if err != nil {
		return nil, cart.Line{}, err
	}
	line, err := c.Add(destination.ID, destination.Price, travelDate, quantity)
	if err != nil {
		return nil, cart.Line{}, fmt.Errorf("failed to add %s to cart: %w", destination.Name, err)
	}
	return destination, line, nil
}

// RemoveFromCart removes the line with lineID.
func (s *CartService) RemoveFromCart(c *cart.Cart, lineID string) error {
	return c.Remove(lineID)
}
