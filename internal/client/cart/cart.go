// Package cart accumulates marketplace line items ahead of checkout.
// It is pure in-memory bookkeeping, local to one shopping flow; it knows
// nothing about the network or the session.
package cart

// Item is one product-and-quantity entry, unique by ProductID.
type Item struct {
	ProductID   string
	ProductName string
	Quantity    int
}

// Cart is an ordered collection of line items. A product added twice keeps
// its original position and sums its quantity.
type Cart struct {
	items []Item
}

func New() *Cart {
	return &Cart{}
}

// Add merges quantity into an existing line item or appends a new one.
// A non-positive quantity is treated as 1, which defends against blank or
// malformed quantity input in the UI layer.
func (c *Cart) Add(productID, productName string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity += quantity
			return
		}
	}
	c.items = append(c.items, Item{ProductID: productID, ProductName: productName, Quantity: quantity})
}

// Remove deletes the line item with the given product id.
// Removing an id that is not in the cart is a no-op.
func (c *Cart) Remove(productID string) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Items returns a copy of the line items in insertion order. Callers submit
// the copy, so edits made while a checkout is in flight do not affect it.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int {
	return len(c.items)
}

// Clear empties the cart. Called by the UI layer after a successful
// cart checkout.
func (c *Cart) Clear() {
	c.items = nil
}
