package services_test

import (
	"sync"
	"testing"

	"dreamtravels/internal/repositories"
	"dreamtravels/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestSessionLocks_SerializesSameKey(t *testing.T) {
	locks := services.NewSessionLocks()
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock("session-a")
			defer unlock()
			v := counter
			v++
			counter = v
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, counter)
	assert.Zero(t, locks.Len())
}

func TestSessionLocks_ConcurrentCheckoutPlacesOneOrder(t *testing.T) {
	locks := services.NewSessionLocks()
	orders := repositories.NewMockOrderRepository()
	checkout := services.NewCheckoutService(orders, nil)
	c := sampleCart(t)

	var wg sync.WaitGroup
	results := make(chan error, 5)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock("session-a")
			defer unlock()
			_, err := checkout.Checkout(1, c, "card")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	placed, empty := 0, 0
	for err := range results {
		switch err {
		case nil:
			placed++
		case services.ErrEmptyCart:
			empty++
		}
	}
	assert.Equal(t, 1, placed)
	assert.Equal(t, 4, empty)
	assert.Equal(t, 1, orders.Count())
	assert.True(t, c.IsEmpty())
}
