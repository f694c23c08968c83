package models

import "time"

// CartItem is a snapshot of an artwork at the moment it entered the cart.
type CartItem struct {
	ArtworkID uint     `json:"artwork_id"`
	Title     string   `json:"title"`
	Image     string   `json:"image"`
	Price     *float64 `json:"price,omitempty"`
	Quantity  int      `json:"quantity"`
}

// Cart holds a user's selected artworks. All mutation helpers operate on the
// in-memory value; persistence is the store's job.
type Cart struct {
	UserID    string     `json:"user_id"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Add appends the item with quantity 1. If the artwork is already in the
// cart the cart is left untouched and Add reports false.
func (c *Cart) Add(item CartItem) bool {
	if c.Contains(item.ArtworkID) {
		return false
	}
	item.Quantity = 1
	c.Items = append(c.Items, item)
	return true
}

// Remove drops the entry for the given artwork. Reports whether an entry
// was removed.
func (c *Cart) Remove(artworkID uint) bool {
	for i, item := range c.Items {
		if item.ArtworkID == artworkID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
}

// SetQuantity sets the quantity for the given artwork. A quantity of zero
// or less removes the entry.
func (c *Cart) SetQuantity(artworkID uint, quantity int) {
	if quantity <= 0 {
		c.Remove(artworkID)
		return
	}
	for i := range c.Items {
		if c.Items[i].ArtworkID == artworkID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// TotalItems returns the sum of all quantities.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// TotalPrice returns the sum of price times quantity. Items without a price
// count as zero.
func (c *Cart) TotalPrice() float64 {
	total := 0.0
	for _, item := range c.Items {
		if item.Price != nil {
			total += *item.Price * float64(item.Quantity)
		}
	}
	return total
}

// Contains reports whether the artwork is in the cart.
func (c *Cart) Contains(artworkID uint) bool {
	for _, item := range c.Items {
		if item.ArtworkID == artworkID {
			return true
		}
	}
	return false
}
