package storefront

import "sync"

// CartItem is one line in the shopping cart.
type CartItem struct {
	ID       int64
	Name     string
	Price    float64
	Quantity int
}

// Subtotal is the line total.
func (i CartItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Cart is the in-memory shopping cart. It is session-transient and never
// persisted.
type Cart struct {
	lock  sync.Mutex
	items []CartItem
}

func NewCart() *Cart {
	return &Cart{}
}

// Add puts an item in the cart. Adding an id already present increments its
// quantity instead of duplicating the line.
func (c *Cart) Add(item CartItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i].Quantity += item.Quantity
			return
		}
	}
	c.items = append(c.items, item)
}

// UpdateQuantity sets an item's quantity, clamped to a minimum of 1. Unknown
// ids are ignored.
func (c *Cart) UpdateQuantity(id int64, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// Remove deletes an item. Idempotent.
func (c *Cart) Remove(id int64) {
	c.lock.Lock()
	defer c.lock.Unlock()

	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Items returns the cart lines.
func (c *Cart) Items() []CartItem {
	c.lock.Lock()
	defer c.lock.Unlock()
	return append([]CartItem(nil), c.items...)
}

// Total sums all line subtotals.
func (c *Cart) Total() float64 {
	c.lock.Lock()
	defer c.lock.Unlock()

	var total float64
	for _, item := range c.items {
		total += item.Subtotal()
	}
	return total
}

// Empty reports whether the cart has no items.
func (c *Cart) Empty() bool {
	c.lock.Lock()
	defer c.lock.Unlock()
	return len(c.items) == 0
}
