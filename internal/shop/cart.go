package shop

import (
	"errors"
	"fmt"
	"sync"
)

// Cart errors.
var (
	ErrUnknownProduct  = errors.New("shop: unknown product")
	ErrInvalidQuantity = errors.New("shop: quantity must be positive")
	ErrOutOfStock      = errors.New("shop: not enough stock")
)

// CartLine is one product in the cart.
type CartLine struct {
	Product  Product
	Quantity int
}

// Subtotal returns price times quantity.
func (l CartLine) Subtotal() float64 {
	return l.Product.Price * float64(l.Quantity)
}

// Cart is a process-wide shopping cart. It is safe for concurrent use.
type Cart struct {
	catalog *Catalog

	mu     sync.Mutex
	counts map[int]int
	order  []int
}

// NewCart creates an empty cart for products of catalog.
func NewCart(catalog *Catalog) *Cart {
	return &Cart{catalog: catalog, counts: make(map[int]int)}
}

// Add puts quantity units of a product in the cart and returns the new item
// count.
func (c *Cart) Add(productID, quantity int) (int, error) {
	if quantity < 1 {
		return 0, ErrInvalidQuantity
	}
	p, ok := c.catalog.Product(productID)
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownProduct, productID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity > p.Stock-c.counts[productID] {
		return 0, fmt.Errorf("%w: only %d of %s left", ErrOutOfStock, p.Stock-c.counts[productID], p.Name)
	}
	if _, ok := c.counts[productID]; !ok {
		c.order = append(c.order, productID)
	}
	c.counts[productID] += quantity
	return c.countLocked(), nil
}

// Count returns the number of units in the cart.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.countLocked()
}

func (c *Cart) countLocked() int {
	n := 0
	for _, q := range c.counts {
		n += q
	}
	return n
}

// Lines returns the cart contents in the order products were first added.
func (c *Cart) Lines() []CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()

	lines := make([]CartLine, 0, len(c.order))
	for _, id := range c.order {
		p, _ := c.catalog.Product(id)
		lines = append(lines, CartLine{Product: p, Quantity: c.counts[id]})
	}
	return lines
}

// Total returns the sum of all line subtotals.
func (c *Cart) Total() float64 {
	total := 0.0
	for _, l := range c.Lines() {
		total += l.Subtotal()
	}
	return total
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts = make(map[int]int)
	c.order = nil
}
