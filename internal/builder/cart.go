package builder

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/davicapacle05/Restaurante/internal/catalog"
	"github.com/davicapacle05/Restaurante/internal/enum"
)

// ErrLineNotFound is returned when a cart line id does not exist.
var ErrLineNotFound = errors.New("cart line not found")

// Line is one cart entry: a composed meal or a counted extra. Lines are
// ephemeral; checkout flattens them into order snapshots and they are gone.
type Line struct {
	ID       string         `json:"id"`
	Kind     string         `json:"kind"`
	Title    string         `json:"title"`
	Items    []catalog.Item `json:"items"`
	Quantity int            `json:"quantity"`
}

// Cart collects finished meal lines and extra counters until checkout.
type Cart struct {
	lines []Line
}

func NewCart() *Cart {
	return &Cart{}
}

// Lines returns a copy of the cart contents in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len reports the number of lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) addMealLine(title string, items []catalog.Item) {
	c.lines = append(c.lines, Line{
		ID:       uuid.NewString(),
		Kind:     enum.CartLineMeal,
		Title:    title,
		Items:    items,
		Quantity: 1,
	})
}

// ExtraQuantity returns the current counter for an extra/drink item, 0 when
// it has no line.
func (c *Cart) ExtraQuantity(itemID string) int {
	for _, ln := range c.lines {
		if ln.Kind == enum.CartLineExtra && ln.Items[0].ID == itemID {
			return ln.Quantity
		}
	}
	return 0
}

// AdjustExtraQuantity moves an extra's counter by delta. A positive delta
// with no existing line starts one at quantity 1; dropping to 0 or below
// removes the line. Extras are not quota-gated.
func (c *Cart) AdjustExtraQuantity(item catalog.Item, delta int) {
	for i, ln := range c.lines {
		if ln.Kind == enum.CartLineExtra && ln.Items[0].ID == item.ID {
			qty := ln.Quantity + delta
			if qty <= 0 {
				c.lines = append(c.lines[:i], c.lines[i+1:]...)
				return
			}
			c.lines[i].Quantity = qty
			return
		}
	}
	if delta > 0 {
		c.lines = append(c.lines, Line{
			ID:       uuid.NewString(),
			Kind:     enum.CartLineExtra,
			Title:    item.Name,
			Items:    []catalog.Item{item},
			Quantity: 1,
		})
	}
}

// AdjustLineQuantity moves a line's quantity by delta. Meal lines floor at
// 1 (removal is an explicit delete); extra lines mirror the counter and are
// removed at 0.
func (c *Cart) AdjustLineQuantity(lineID string, delta int) error {
	for i, ln := range c.lines {
		if ln.ID != lineID {
			continue
		}
		qty := ln.Quantity + delta
		switch ln.Kind {
		case enum.CartLineMeal:
			if qty < 1 {
				return nil
			}
		default:
			if qty <= 0 {
				c.lines = append(c.lines[:i], c.lines[i+1:]...)
				return nil
			}
		}
		c.lines[i].Quantity = qty
		return nil
	}
	return ErrLineNotFound
}

// RemoveLine deletes a line of any kind.
func (c *Cart) RemoveLine(lineID string) error {
	for i, ln := range c.lines {
		if ln.ID == lineID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return nil
		}
	}
	return ErrLineNotFound
}

// Total sums every line's item prices times its quantity.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, ln := range c.lines {
		lineSum := decimal.Zero
		for _, it := range ln.Items {
			lineSum = lineSum.Add(it.Price)
		}
		total = total.Add(lineSum.Mul(decimal.NewFromInt(int64(ln.Quantity))))
	}
	return total
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}
