package services

import (
	"dreamtravels/internal/cart"
	"dreamtravels/internal/models"
	"dreamtravels/internal/repositories"
)

// DestinationService handles business logic related to destinations.
type DestinationService struct {
	repo repositories.DestinationRepository
}

// NewDestinationService creates a new DestinationService.
func NewDestinationService(repo repositories.DestinationRepository) *DestinationService {
	return &DestinationService{
		repo: repo,
	}
}

// ListDestinations retrieves all destinations.
func (s *DestinationService) ListDestinations() ([]models.Destination, error) {
	return s.repo.GetAll()
}

// GetDestination retrieves a single destination by its ID.
func (s *DestinationService) GetDestination(id uint) (*models.Destination, error) {
	return s.repo.GetByID(id)
}

// DestinationNames returns the names of the destinations among ids, keyed by
// id, with a single repository lookup. Unknown ids are absent.
func (s *DestinationService) DestinationNames(ids []uint) (map[uint]string, error) {
	destinations, err := s.repo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(destinations))
	for id, d := range destinations {
		names[id] = d.Name
	}
	return names, nil
}

// CartItem is a cart line joined with its destination for display.
type CartItem struct {
	Line        cart.Line
	Destination models.Destination
	Subtotal    float64
}

// CartView is the displayable content of a cart.
type CartView struct {
	Items []CartItem
	Total float64
}

// CartView joins the cart lines with their destinations. Lines whose destination
// no longer exists are left out of the items but still count toward the total.
func (s *DestinationService) CartView(c *cart.Cart) (*CartView, error) {
	ids := make([]uint, 0, c.Len())
	for _, l := range c.Lines {
		ids = append(ids, l.DestinationID)
	}
	destinations, err := s.repo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}

	view := &CartView{Items: make([]CartItem, 0, c.Len()), Total: c.Total()}
	for _, l := range c.Lines {
		d, ok := destinations[l.DestinationID]
		if !ok {
			continue
		}
		view.Items = append(view.Items, CartItem{Line: l, Destination: d, Subtotal: l.Subtotal()})
	}
	return view, nil
}
