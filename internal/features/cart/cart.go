// Package cart models the customer's order-in-progress. Money is decimal
// end to end; totals round to two places only at the edge.
package cart

import (
	"github.com/shopspring/decimal"
)

// Extra is a priced customization (add-on or extra).
type Extra struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Item is one cart line. Quantity is always at least 1: a line that would
// drop to zero is removed instead.
type Item struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	UnitPrice     decimal.Decimal `json:"price"`
	Quantity      int             `json:"quantity"`
	Extras        []Extra         `json:"selectedExtras,omitempty"`
	AddOns        []Extra         `json:"selectedAddOns,omitempty"`
	Modifications []string        `json:"selectedModifications,omitempty"`
	Instruction   string          `json:"specialInstruction,omitempty"`
}

// LineTotal is (unit price + priced customizations) × quantity.
func (i Item) LineTotal() decimal.Decimal {
	unit := i.UnitPrice
	for _, extra := range i.Extras {
		unit = unit.Add(extra.Price)
	}
	for _, addOn := range i.AddOns {
		unit = unit.Add(addOn.Price)
	}
	return unit.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart is an ordered sequence of items. Not safe for concurrent use; the
// original runs on a single UI thread and callers here do the same.
type Cart struct {
	items []Item
}

func New() *Cart {
	return &Cart{}
}

// Items returns a copy of the lines in insertion order.
func (c *Cart) Items() []Item {
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) Empty() bool {
	return len(c.items) == 0
}

// Add appends a line, or bumps the quantity when an identical line (same id)
// already exists. Quantities below 1 are coerced to 1.
func (c *Cart) Add(item Item) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i].Quantity += item.Quantity
			return
		}
	}
	c.items = append(c.items, item)
}

// Increment bumps a line's quantity. Unknown ids are ignored.
func (c *Cart) Increment(id string) {
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Quantity++
			return
		}
	}
}

// Decrement lowers a line's quantity, flooring at 1. Use Remove to drop the
// line entirely.
func (c *Cart) Decrement(id string) {
	for i := range c.items {
		if c.items[i].ID == id {
			if c.items[i].Quantity > 1 {
				c.items[i].Quantity--
			}
			return
		}
	}
}

// Remove deletes a line.
func (c *Cart) Remove(id string) {
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.items = nil
}

// Total sums every line, rounded to two decimal places.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.LineTotal())
	}
	return total.Round(2)
}
