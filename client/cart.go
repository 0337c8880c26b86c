package client

import (
	"log"
	"sync"
)

// MenuItem is the catalog entry as served by the public menu endpoint.
type MenuItem struct {
	ID          uint   `json:"ID"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"` // cents
	Category    string `json:"category"`
	IsActive    bool   `json:"isActive"`
	Image       string `json:"image"`
}

// CartItem is a menu item plus a quantity of at least 1. A cart holds at most
// one entry per menu item id.
type CartItem struct {
	MenuItem
	Quantity int `json:"quantity"`
}

// Cart is the customer's in-progress selection. Every mutation persists the
// full snapshot so a restart restores it exactly.
type Cart struct {
	mu      sync.Mutex
	items   []CartItem
	storage Storage
}

func NewCart(storage Storage) *Cart {
	c := &Cart{storage: storage}
	if storage != nil {
		if saved, err := storage.Load(); err == nil {
			c.items = saved
		}
	}
	return c
}

// Add inserts the item with quantity 1, or bumps an existing entry by 1.
func (c *Cart) Add(item MenuItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i].Quantity++
			c.persist()
			return
		}
	}
	c.items = append(c.items, CartItem{MenuItem: item, Quantity: 1})
	c.persist()
}

// UpdateQuantity adds delta to an entry's quantity; a result of zero or less
// removes the entry. Unknown ids are ignored.
func (c *Cart) UpdateQuantity(itemID uint, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID != itemID {
			continue
		}
		c.items[i].Quantity += delta
		if c.items[i].Quantity <= 0 {
			c.items = append(c.items[:i], c.items[i+1:]...)
		}
		c.persist()
		return
	}
}

// Total is recomputed from the entries on every call; it is never cached.
func (c *Cart) Total() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total int64
	for _, it := range c.items {
		total += it.Price * int64(it.Quantity)
	}
	return total
}

// Items returns a copy of the current entries.
func (c *Cart) Items() []CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Clear empties the cart. Called once, right after a successful submission.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.persist()
}

func (c *Cart) persist() {
	if c.storage == nil {
		return
	}
	if err := c.storage.Save(c.items); err != nil {
		log.Println("cart persist failed:", err)
	}
}
