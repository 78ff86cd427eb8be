// Package cart implements the per-session shopping cart. A Cart is a plain value:
// callers load it from the session, mutate it, and save it back.
package cart

import (
	"errors"
	"math"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrLineNotFound is returned when a line id does not exist in the cart.
	ErrLineNotFound = errors.New("cart line not found")
	// ErrInvalidQuantity is returned when a quantity below one is added or a
	// merge would overflow the line's quantity.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// Line is a single cart entry. Price is the destination price at the time the
// line was first added and is never refreshed.
type Line struct {
	ID            string  `json:"id"`
	DestinationID uint    `json:"destination_id"`
	Price         float64 `json:"price"`
	TravelDate    string  `json:"travel_date"`
	Quantity      int     `json:"quantity"`
}

// Subtotal returns price times quantity rounded to cents.
func (l Line) Subtotal() float64 {
	return l.subtotal().Round(2).InexactFloat64()
}

func (l Line) subtotal() decimal.Decimal {
	return decimal.NewFromFloat(l.Price).Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart holds the lines of one session.
type Cart struct {
	Lines []Line `json:"lines"`
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{Lines: []Line{}}
}

// Add merges quantity into the line with the same destination and travel date,
// or appends a new line. It returns a copy of the affected line.
func (c *Cart) Add(destinationID uint, price float64, travelDate string, quantity int) (Line, error) {
	if quantity < 1 {
		return Line{}, ErrInvalidQuantity
	}
	for i := range c.Lines {
		if c.Lines[i].DestinationID == destinationID && c.Lines[i].TravelDate == travelDate {
			if c.Lines[i].Quantity > math.MaxInt-quantity {
				return Line{}, ErrInvalidQuantity
			}
			c.Lines[i].Quantity += quantity
			return c.Lines[i], nil
		}
	}
	line := Line{
		ID:            uuid.NewString(),
		DestinationID: destinationID,
		Price:         price,
		TravelDate:    travelDate,
		Quantity:      quantity,
	}
	c.Lines = append(c.Lines, line)
	return line, nil
}

// Remove deletes the line with the given id.
func (c *Cart) Remove(lineID string) error {
	for i := range c.Lines {
		if c.Lines[i].ID == lineID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return nil
		}
	}
	return ErrLineNotFound
}

// Total returns the sum of all line subtotals, rounded to cents.
func (c *Cart) Total() float64 {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(l.subtotal())
	}
	return total.Round(2).InexactFloat64()
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Lines = []Line{}
}

// Len returns the number of lines.
func (c *Cart) Len() int {
	return len(c.Lines)
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
