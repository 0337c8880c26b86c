package client

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

var (
	nasiBiasa   = MenuItem{ID: 1, Name: "Nasi Ayam Biasa", Price: 990, Category: "Main", IsActive: true}
	nasiSpecial = MenuItem{ID: 2, Name: "Nasi Ayam Special", Price: 1290, Category: "Main", IsActive: true}
	tehOAis     = MenuItem{ID: 3, Name: "Teh O' Ais", Price: 300, Category: "Drink", IsActive: true}
)

func TestCartAdd(t *testing.T) {
	c := NewCart(nil)

	c.Add(nasiBiasa)
	c.Add(nasiBiasa)
	c.Add(tehOAis)

	items := c.Items()
	if len(items) != 2 {
		t.Fatalf("len = %d, want 2", len(items))
	}
	if items[0].ID != 1 || items[0].Quantity != 2 {
		t.Errorf("first entry = id %d qty %d, want id 1 qty 2", items[0].ID, items[0].Quantity)
	}
	if items[1].ID != 3 || items[1].Quantity != 1 {
		t.Errorf("second entry = id %d qty %d, want id 3 qty 1", items[1].ID, items[1].Quantity)
	}
}

func TestCartUpdateQuantity(t *testing.T) {
	c := NewCart(nil)
	c.Add(nasiBiasa)
	c.Add(tehOAis)

	c.UpdateQuantity(1, 2)
	if got := c.Items()[0].Quantity; got != 3 {
		t.Errorf("quantity = %d, want 3", got)
	}

	// dropping to zero or below removes the entry entirely
	c.UpdateQuantity(3, -1)
	if c.Len() != 1 {
		t.Errorf("len = %d, want 1 after removal", c.Len())
	}
	c.UpdateQuantity(1, -10)
	if c.Len() != 0 {
		t.Errorf("len = %d, want empty cart", c.Len())
	}

	// unknown ids are ignored
	c.UpdateQuantity(42, 5)
	if c.Len() != 0 {
		t.Errorf("unknown id must not create an entry")
	}
}

func TestCartTotal(t *testing.T) {
	c := NewCart(nil)
	if c.Total() != 0 {
		t.Errorf("empty cart total = %d", c.Total())
	}

	c.Add(nasiBiasa)
	c.Add(nasiBiasa)
	c.Add(nasiSpecial)
	if got := c.Total(); got != 2*990+1290 {
		t.Errorf("total = %d, want %d", got, 2*990+1290)
	}

	c.UpdateQuantity(2, -1)
	if got := c.Total(); got != 2*990 {
		t.Errorf("total = %d, want %d", got, 2*990)
	}
}

// TestCartTotalMatchesEntries drives the cart through random mutations and
// checks the recomputed total against the entries after every step.
func TestCartTotalMatchesEntries(t *testing.T) {
	menu := []MenuItem{nasiBiasa, nasiSpecial, tehOAis}
	rng := rand.New(rand.NewSource(1))
	c := NewCart(nil)

	for i := 0; i < 500; i++ {
		switch rng.Intn(3) {
		case 0:
			c.Add(menu[rng.Intn(len(menu))])
		case 1:
			c.UpdateQuantity(uint(rng.Intn(5)), rng.Intn(7)-3)
		case 2:
			if rng.Intn(20) == 0 {
				c.Clear()
			}
		}

		var want int64
		for _, it := range c.Items() {
			if it.Quantity < 1 {
				t.Fatalf("step %d: entry %d has quantity %d", i, it.ID, it.Quantity)
			}
			want += it.Price * int64(it.Quantity)
		}
		if got := c.Total(); got != want {
			t.Fatalf("step %d: total = %d, entries sum to %d", i, got, want)
		}
	}
}

func TestCartPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	store := NewFileStorage(path)

	c := NewCart(store)
	c.Add(nasiBiasa)
	c.Add(nasiBiasa)
	c.Add(tehOAis)
	c.UpdateQuantity(3, 1)

	// a fresh cart over the same file restores the exact snapshot
	restored := NewCart(NewFileStorage(path))
	items := restored.Items()
	if len(items) != 2 {
		t.Fatalf("restored len = %d, want 2", len(items))
	}
	if items[0].Name != "Nasi Ayam Biasa" || items[0].Quantity != 2 {
		t.Errorf("restored first entry = %q qty %d", items[0].Name, items[0].Quantity)
	}
	if items[1].Quantity != 2 {
		t.Errorf("restored drink qty = %d, want 2", items[1].Quantity)
	}
	if restored.Total() != c.Total() {
		t.Errorf("restored total = %d, want %d", restored.Total(), c.Total())
	}
}

func TestCartPersistenceCorruptSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := NewCart(NewFileStorage(path))
	if c.Len() != 0 {
		t.Errorf("corrupt snapshot should load as empty cart, got %d entries", c.Len())
	}
}

func TestCartClearPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	c := NewCart(NewFileStorage(path))
	c.Add(nasiSpecial)
	c.Clear()

	restored := NewCart(NewFileStorage(path))
	if restored.Len() != 0 {
		t.Errorf("cleared cart must restore empty, got %d entries", restored.Len())
	}
}
