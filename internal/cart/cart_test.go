package cart_test

import (
	"fmt"
	"math"
	"testing"

	"dreamtravels/internal/cart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapSession is an in-memory stand-in for a fiber session.
type mapSession map[string]interface{}

func (m mapSession) Get(key string) interface{}      { return m[key] }
func (m mapSession) Set(key string, val interface{}) { m[key] = val }

func TestCart_AddMergesSameDestinationAndDate(t *testing.T) {
	c := cart.New()

	first, err := c.Add(1, 899.99, "2025-06-01", 2)
	require.NoError(t, err)
	second, err := c.Add(1, 899.99, "2025-06-01", 3)
	require.NoError(t, err)

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 5, c.Lines[0].Quantity)
}

func TestCart_AddDistinctPairs(t *testing.T) {
	c := cart.New()
	adds := []struct {
		dest uint
		date string
		qty  int
	}{
		{1, "2025-06-01", 1},
		{1, "2025-06-02", 2},
		{2, "2025-06-01", 1},
		{1, "2025-06-01", 4},
		{2, "2025-06-01", 2},
	}
	for _, a := range adds {
		_, err := c.Add(a.dest, 100, a.date, a.qty)
		require.NoError(t, err)
	}

	assert.Equal(t, 3, c.Len())
	want := map[string]int{"1/2025-06-01": 5, "1/2025-06-02": 2, "2/2025-06-01": 3}
	for _, l := range c.Lines {
		key := fmt.Sprintf("%d/%s", l.DestinationID, l.TravelDate)
		assert.Equal(t, want[key], l.Quantity, key)
	}
}

func TestCart_AddRejectsQuantityBelowOne(t *testing.T) {
	c := cart.New()
	_, err := c.Add(1, 10, "2025-06-01", 0)
	assert.ErrorIs(t, err, cart.ErrInvalidQuantity)
	assert.True(t, c.IsEmpty())
}

func TestCart_AddRejectsQuantityOverflow(t *testing.T) {
	c := cart.New()
	_, err := c.Add(1, 899.99, "2025-06-01", math.MaxInt)
	require.NoError(t, err)

	_, err = c.Add(1, 899.99, "2025-06-01", 1)
	assert.ErrorIs(t, err, cart.ErrInvalidQuantity)
	assert.Equal(t, math.MaxInt, c.Lines[0].Quantity)
}

func TestCart_TotalUsesLockedPrice(t *testing.T) {
	c := cart.New()
	_, _ = c.Add(1, 899.99, "2025-06-01", 2)
	_, _ = c.Add(2, 1299.99, "2025-07-10", 1)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 3099.97, c.Total())

	// A later add for the same pair at a new price keeps the original price.
	_, _ = c.Add(1, 999.99, "2025-06-01", 1)
	assert.Equal(t, 899.99, c.Lines[0].Price)
	assert.Equal(t, 3999.96, c.Total())
	assert.Equal(t, 2699.97, c.Lines[0].Subtotal())
}

func TestCart_Remove(t *testing.T) {
	c := cart.New()
	a, _ := c.Add(1, 10, "2025-06-01", 1)
	b, _ := c.Add(2, 20, "2025-06-01", 1)

	require.NoError(t, c.Remove(a.ID))
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, b.ID, c.Lines[0].ID)

	err := c.Remove(a.ID)
	assert.ErrorIs(t, err, cart.ErrLineNotFound)
	assert.Equal(t, 1, c.Len())

	assert.ErrorIs(t, c.Remove("missing"), cart.ErrLineNotFound)
}

func TestCart_Clear(t *testing.T) {
	c := cart.New()
	_, _ = c.Add(1, 10, "2025-06-01", 1)
	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0.0, c.Total())
}

func TestLoadAndSave(t *testing.T) {
	sess := mapSession{}

	empty := cart.Load(sess)
	assert.True(t, empty.IsEmpty())

	c := cart.New()
	line, _ := c.Add(3, 1499.99, "2025-08-15", 2)
	require.NoError(t, cart.Save(sess, c))

	loaded := cart.Load(sess)
	require.Equal(t, 1, loaded.Len())
	assert.Equal(t, line, loaded.Lines[0])
	assert.Equal(t, c.Total(), loaded.Total())
}

func TestLoad_UnreadablePayload(t *testing.T) {
	sess := mapSession{cart.SessionKey: "{not json"}
	assert.True(t, cart.Load(sess).IsEmpty())

	sess = mapSession{cart.SessionKey: 42}
	assert.True(t, cart.Load(sess).IsEmpty())
}
