package models

import (
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

// Cart holds the items chosen during a session. Entries are only ever appended.
type Cart struct {
	mu    sync.RWMutex
	items []FoodItem
}

// NewCart creates an empty cart
func NewCart() *Cart {
	return &Cart{}
}

// Add appends item and returns the new number of entries. Adding the same
// item twice yields two entries.
func (c *Cart) Add(item FoodItem) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
	return len(c.items)
}

// Items returns a snapshot of the cart in insertion order
func (c *Cart) Items() []FoodItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]FoodItem(nil), c.items...)
}

func (c *Cart) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Cart) IsEmpty() bool {
	return c.Len() == 0
}

// CartTotal is the sum of every price label that could be parsed
type CartTotal struct {
	Amount  decimal.Decimal
	Skipped int
}

// Total parses each price label, ignoring a leading currency symbol, and sums them
func (c *Cart) Total() CartTotal {
	var total CartTotal
	for _, item := range c.Items() {
		amount, err := ParsePrice(item.Price)
		if err != nil {
			total.Skipped++
			continue
		}
		total.Amount = total.Amount.Add(amount)
	}
	return total
}

// String formats the total the way catalog labels are written
func (t CartTotal) String() string {
	if t.Amount.IsInteger() {
		return "$" + t.Amount.String()
	}
	return "$" + t.Amount.StringFixed(2)
}

// ParsePrice turns a label such as "$12" or "$4.50" into a decimal amount
func ParsePrice(label string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(label)
	trimmed = strings.TrimPrefix(trimmed, "$")
	return decimal.NewFromString(strings.TrimSpace(trimmed))
}
