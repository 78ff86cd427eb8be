package services_test

import (
	"testing"

	"dreamtravels/internal/cart"
	"dreamtravels/internal/models"
	"dreamtravels/internal/repositories"
	"dreamtravels/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDestinationRepo(t *testing.T) *repositories.MockDestinationRepository {
	t.Helper()
	repo := repositories.NewMockDestinationRepository()
	require.NoError(t, repo.Create(&models.Destination{ID: 1, Name: "Bali, Indonesia", Price: 899.99}))
	require.NoError(t, repo.Create(&models.Destination{ID: 2, Name: "Paris, France", Price: 1299.99}))
	return repo
}

func TestDestinationService_ListAndGet(t *testing.T) {
	service := services.NewDestinationService(newDestinationRepo(t))

	destinations, err := service.ListDestinations()
	require.NoError(t, err)
	assert.Len(t, destinations, 2)

	d, err := service.GetDestination(2)
	require.NoError(t, err)
	assert.Equal(t, "Paris, France", d.Name)

	_, err = service.GetDestination(99)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

// countingRepo counts the single and batch lookups reaching the repository.
type countingRepo struct {
	*repositories.MockDestinationRepository
	single, batch int
}

func (r *countingRepo) GetByID(id uint) (*models.Destination, error) {
	r.single++
	return r.MockDestinationRepository.GetByID(id)
}

func (r *countingRepo) GetByIDs(ids []uint) (map[uint]models.Destination, error) {
	r.batch++
	return r.MockDestinationRepository.GetByIDs(ids)
}

func TestDestinationService_DestinationNames(t *testing.T) {
	repo := &countingRepo{MockDestinationRepository: newDestinationRepo(t)}
	service := services.NewDestinationService(repo)

	names, err := service.DestinationNames([]uint{1, 2, 1, 99})
	require.NoError(t, err)
	assert.Equal(t, map[uint]string{1: "Bali, Indonesia", 2: "Paris, France"}, names)
	assert.Equal(t, 1, repo.batch)
	assert.Zero(t, repo.single)
}

func TestDestinationService_CartView(t *testing.T) {
	repo := newDestinationRepo(t)
	service := services.NewDestinationService(repo)

	c := cart.New()
	_, _ = c.Add(1, 899.99, "2025-06-01", 2)
	_, _ = c.Add(2, 1299.99, "2025-07-10", 1)
	_, _ = c.Add(3, 50, "2025-07-10", 1) // destination no longer exists

	view, err := service.CartView(c)
	require.NoError(t, err)
	require.Len(t, view.Items, 2)
	assert.Equal(t, "Bali, Indonesia", view.Items[0].Destination.Name)
	assert.Equal(t, 1799.98, view.Items[0].Subtotal)
	assert.Equal(t, 3149.97, view.Total)
}

func TestCartService_AddToCartLocksPrice(t *testing.T) {
	repo := newDestinationRepo(t)
	service := services.NewCartService(repo)
	c := cart.New()

	d, line, err := service.AddToCart(c, 1, "2025-06-01", 2)
	require.NoError(t, err)
	assert.Equal(t, "Bali, Indonesia", d.Name)
	assert.Equal(t, 899.99, line.Price)

	_, _, err = service.AddToCart(c, 2, "2025-07-10", 1)
	require.NoError(t, err)
	assert.Equal(t, 3099.97, c.Total())

	// A price change after the add does not touch existing lines.
	repo.SetPrice(1, 999.99)
	_, line, err = service.AddToCart(c, 1, "2025-06-01", 1)
	require.NoError(t, err)
	assert.Equal(t, 899.99, line.Price)
	assert.Equal(t, 3, line.Quantity)
	assert.Equal(t, 3999.96, c.Total())
}

func TestCartService_AddToCartErrors(t *testing.T) {
	service := services.NewCartService(newDestinationRepo(t))
	c := cart.New()

	_, _, err := service.AddToCart(c, 1, " ", 1)
	assert.ErrorIs(t, err, services.ErrTravelDateRequired)

	_, _, err = service.AddToCart(c, 99, "2025-06-01", 1)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	_, _, err = service.AddToCart(c, 1, "2025-06-01", 0)
	assert.ErrorIs(t, err, cart.ErrInvalidQuantity)

	assert.True(t, c.IsEmpty())
}

func TestCartService_RemoveFromCart(t *testing.T) {
	service := services.NewCartService(newDestinationRepo(t))
	c := cart.New()
	_, line, err := service.AddToCart(c, 1, "2025-06-01", 1)
	require.NoError(t, err)

	require.NoError(t, service.RemoveFromCart(c, line.ID))
	assert.True(t, c.IsEmpty())
	assert.ErrorIs(t, service.RemoveFromCart(c, line.ID), cart.ErrLineNotFound)
}

func TestSeedDestinations(t *testing.T) {
	repo := repositories.NewMockDestinationRepository()

	n, err := services.SeedDestinations(repo)
	require.NoError(t, err)
	assert.Equal(t, len(services.SampleDestinations), n)

	n, err = services.SeedDestinations(repo)
	require.NoError(t, err)
	assert.Zero(t, n)

	count, _ := repo.Count()
	assert.EqualValues(t, 6, count)
	assert.Zero(t, services.SampleDestinations[0].ID)
}
