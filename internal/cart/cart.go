// Package cart holds the session-owned shopping cart. State is mutated only
// by the owning session, never shared, so no locking is involved; every
// mutation rewrites the full snapshot through the injected store.
package cart

import (
	"errors"
	"fmt"

	"gromart_back_end/internal/catalog"
	"gromart_back_end/internal/models"
	"gromart_back_end/internal/store"
)

var (
	ErrBelowMinimum = errors.New("quantity below product minimum")
	ErrBadQuantity  = errors.New("quantity not an allowed option")
	ErrUnavailable  = errors.New("product not available")
	ErrNotInCart    = errors.New("product not in cart")
)

// Cart is the current session's cart.
type Cart struct {
	store store.Store
	items []models.CartItem
}

// New returns a cart backed by s, restoring any persisted snapshot.
func New(s store.Store) (*Cart, error) {
	c := &Cart{store: s}
	err := s.Load(store.KeyCart, &c.items)
	if err != nil && !errors.Is(err, store.ErrNoSnapshot) {
		return nil, fmt.Errorf("restore cart: %w", err)
	}
	return c, nil
}

// Add puts quantity units of p into the cart. A line already present for the
// product is replaced, not added to. Quantities below the product minimum or
// outside its bulk option set are rejected without touching the cart.
func (c *Cart) Add(p models.Product, quantity int) error {
	if !p.Available() {
		return fmt.Errorf("%s: %w", p.Name, ErrUnavailable)
	}
	if quantity < p.MinQuantity {
		return fmt.Errorf("minimum order is %d: %w", p.MinQuantity, ErrBelowMinimum)
	}
	if !catalog.AllowedQuantity(p, quantity) {
		return fmt.Errorf("%d not in bulk options of %s: %w", quantity, p.Name, ErrBadQuantity)
	}

	line := models.CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Discount:  p.Discount,
		Unit:      p.Unit,
		ImageURL:  p.ImageURL,
		Quantity:  quantity,
	}

	replaced := false
	for i := range c.items {
		if c.items[i].ProductID == p.ID {
			c.items[i] = line
			replaced = true
			break
		}
	}
	if !replaced {
		c.items = append(c.items, line)
	}
	return c.persist()
}

// UpdateQuantity changes the quantity of an existing line. Zero removes the
// line; a value below the product minimum is rejected.
func (c *Cart) UpdateQuantity(productID string, quantity int) error {
	if quantity == 0 {
		return c.Remove(productID)
	}
	for i := range c.items {
		if c.items[i].ProductID != productID {
			continue
		}
		if p, ok := catalog.ByID(productID); ok {
			if quantity < p.MinQuantity {
				return fmt.Errorf("minimum order is %d: %w", p.MinQuantity, ErrBelowMinimum)
			}
			if !catalog.AllowedQuantity(p, quantity) {
				return fmt.Errorf("%d not in bulk options of %s: %w", quantity, p.Name, ErrBadQuantity)
			}
		}
		c.items[i].Quantity = quantity
		return c.persist()
	}
	return fmt.Errorf("%s: %w", productID, ErrNotInCart)
}

// Remove deletes the line for productID if present.
func (c *Cart) Remove(productID string) error {
	kept := c.items[:0]
	found := false
	for _, item := range c.items {
		if item.ProductID == productID {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		return fmt.Errorf("%s: %w", productID, ErrNotInCart)
	}
	c.items = kept
	return c.persist()
}

// Clear empties the cart.
func (c *Cart) Clear() error {
	c.items = nil
	return c.persist()
}

// Items returns the current lines, most recently added last.
func (c *Cart) Items() []models.CartItem {
	return c.items
}

// TotalItems is the number of units across all lines.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice sums discounted unit price times quantity over all lines.
// Delivery is always free, nothing else is added.
func (c *Cart) TotalPrice() float64 {
	total := 0.0
	for _, item := range c.items {
		total += item.Subtotal()
	}
	return total
}

func (c *Cart) persist() error {
	if err := c.store.Save(store.KeyCart, c.items); err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}
	return nil
}
