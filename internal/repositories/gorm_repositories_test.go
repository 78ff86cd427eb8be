package repositories_test

import (
	"errors"
	"strings"
	"testing"

	"dreamtravels/internal/database"
	"dreamtravels/internal/models"
	"dreamtravels/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenInMemory(strings.ReplaceAll(t.Name(), "/", "_"))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func seedDestinations(t *testing.T, repo repositories.DestinationRepository) []models.Destination {
	t.Helper()
	destinations := []models.Destination{
		{Name: "Bali, Indonesia", Description: "Beaches", Price: 899.99},
		{Name: "Paris, France", Description: "Museums", Price: 1299.99},
	}
	for i := range destinations {
		require.NoError(t, repo.Create(&destinations[i]))
	}
	return destinations
}

func TestGORMDestinationRepository(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMDestinationRepository(db)
	seeded := seedDestinations(t, repo)

	all, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, "Bali, Indonesia", all[0].Name)

	d, err := repo.GetByID(seeded[1].ID)
	require.NoError(t, err)
	assert.Equal(t, 1299.99, d.Price)

	_, err = repo.GetByID(999)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	byID, err := repo.GetByIDs([]uint{seeded[0].ID, 999})
	require.NoError(t, err)
	assert.Len(t, byID, 1)
	assert.Contains(t, byID, seeded[0].ID)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestGORMDestinationRepository_DeleteGuard(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMDestinationRepository(db)
	bookings := repositories.NewGORMBookingRepository(db)
	seeded := seedDestinations(t, repo)

	require.NoError(t, bookings.Create(&models.Booking{
		Name: "Ann", Email: "ann@example.com", DestinationID: seeded[0].ID, TravelDate: "2025-06-01",
	}))

	err := repo.Delete(seeded[0].ID)
	assert.ErrorIs(t, err, repositories.ErrConflict)
	var bookingsErr *repositories.BookingsExistError
	require.True(t, errors.As(err, &bookingsErr))
	assert.EqualValues(t, 1, bookingsErr.Count)

	require.NoError(t, repo.Delete(seeded[1].ID))
	_, err = repo.GetByID(seeded[1].ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(seeded[1].ID), repositories.ErrNotFound)
}

func TestGORMUserRepository(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMUserRepository(db)

	user := &models.User{Username: "alice", Email: "alice@example.com", Password: "hash"}
	require.NoError(t, repo.Create(user))
	assert.NotZero(t, user.ID)

	dup := &models.User{Username: "alice", Email: "other@example.com", Password: "hash"}
	assert.ErrorIs(t, repo.Create(dup), repositories.ErrDuplicate)

	found, err := repo.GetByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	found, err = repo.GetByEmail("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice", found.Username)

	_, err = repo.GetByID(999)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	exists, err := repo.ExistsByUsernameOrEmail("bob", "alice@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = repo.ExistsByUsernameOrEmail("bob", "bob@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	admins, err := repo.CountAdmins()
	require.NoError(t, err)
	assert.EqualValues(t, 0, admins)
	require.NoError(t, repo.Create(&models.User{Username: "root", Email: "root@example.com", Password: "x", IsAdmin: true}))
	admins, err = repo.CountAdmins()
	require.NoError(t, err)
	assert.EqualValues(t, 1, admins)
}

func TestGORMOrderRepository_CreateWithItems(t *testing.T) {
	db := setupDB(t)
	users := repositories.NewGORMUserRepository(db)
	orders := repositories.NewGORMOrderRepository(db)

	user := &models.User{Username: "alice", Email: "alice@example.com", Password: "hash"}
	require.NoError(t, users.Create(user))

	order := &models.Order{
		UserID:        user.ID,
		OrderNumber:   "ABCDEF1234",
		TotalAmount:   3099.97,
		PaymentMethod: "card",
		Status:        models.OrderStatusCompleted,
		Items: []models.OrderItem{
			{DestinationID: 1, Quantity: 2, Price: 899.99, TravelDate: "2025-06-01"},
			{DestinationID: 2, Quantity: 1, Price: 1299.99, TravelDate: "2025-07-10"},
		},
	}
	require.NoError(t, orders.CreateWithItems(order))
	require.NotZero(t, order.ID)
	for _, item := range order.Items {
		assert.Equal(t, order.ID, item.OrderID)
		assert.NotZero(t, item.ID)
	}

	stored, err := orders.GetByOrderNumber("ABCDEF1234")
	require.NoError(t, err)
	assert.Equal(t, order.ID, stored.ID)
	assert.Len(t, stored.Items, 2)
	assert.Equal(t, 3099.97, stored.TotalAmount)

	byID, err := orders.GetByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, "ABCDEF1234", byID.OrderNumber)

	mine, err := orders.ListByUser(user.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	rows, err := orders.ListForAdmin()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "alice", rows[0].Username)
	assert.Equal(t, "ABCDEF1234", rows[0].OrderNumber)

	_, err = orders.GetByOrderNumber("NOPE")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestGORMOrderRepository_DuplicateOrderNumberWritesNothing(t *testing.T) {
	db := setupDB(t)
	orders := repositories.NewGORMOrderRepository(db)

	first := &models.Order{UserID: 1, OrderNumber: "SAME000001", TotalAmount: 10, PaymentMethod: "card", Status: models.OrderStatusCompleted,
		Items: []models.OrderItem{{DestinationID: 1, Quantity: 1, Price: 10, TravelDate: "2025-06-01"}}}
	require.NoError(t, orders.CreateWithItems(first))

	second := &models.Order{UserID: 1, OrderNumber: "SAME000001", TotalAmount: 20, PaymentMethod: "card", Status: models.OrderStatusCompleted,
		Items: []models.OrderItem{{DestinationID: 2, Quantity: 2, Price: 10, TravelDate: "2025-06-02"}}}
	err := orders.CreateWithItems(second)
	assert.ErrorIs(t, err, repositories.ErrDuplicate)
	assert.Zero(t, second.ID)

	var items int64
	require.NoError(t, db.Model(&models.OrderItem{}).Count(&items).Error)
	assert.EqualValues(t, 1, items)
}

func TestGORMBookingRepository(t *testing.T) {
	db := setupDB(t)
	destinations := repositories.NewGORMDestinationRepository(db)
	repo := repositories.NewGORMBookingRepository(db)
	seeded := seedDestinations(t, destinations)

	booking := &models.Booking{Name: "Ann", Email: "ann@example.com", DestinationID: seeded[1].ID, TravelDate: "2025-06-01"}
	require.NoError(t, repo.Create(booking))

	count, err := repo.CountByDestination(seeded[1].ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	rows, err := repo.ListForAdmin()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Paris, France", rows[0].DestinationName)
	assert.Equal(t, "Ann", rows[0].Name)

	require.NoError(t, repo.Delete(booking.ID))
	assert.ErrorIs(t, repo.Delete(booking.ID), repositories.ErrNotFound)
}
