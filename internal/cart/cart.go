// Package cart is the order ledger behind the floating cart bar. All
// operations are pure: they never mutate the input slice, so replaying
// a gesture (a double-tapped increment, a re-render) is always safe.
package cart

import (
	"qrmenu/internal/catalog"
	"qrmenu/internal/domain"
)

// Entry pairs a menu item with a positive quantity. An entry with
// quantity zero never exists; it is removed instead.
type Entry struct {
	Item     domain.MenuItem `json:"item"`
	Quantity int             `json:"quantity"`
}

type Totals struct {
	ItemCount  int     `json:"item_count"`
	TotalPrice float64 `json:"total_price"`
}

// SetQuantity sets the absolute quantity for an item. Increment and
// decrement are caller concerns (current ± 1); the ledger only ever
// sees the target value, which makes repeated application a no-op.
func SetQuantity(entries []Entry, item domain.MenuItem, quantity int) []Entry {
	if quantity <= 0 {
		return Remove(entries, item.ID)
	}
	return Upsert(entries, item, quantity)
}

// Upsert replaces the quantity of an existing entry or appends a new
// one at the end. First-add order is preserved; re-adding after a
// removal starts a new position.
func Upsert(entries []Entry, item domain.MenuItem, quantity int) []Entry {
	next := make([]Entry, 0, len(entries)+1)
	replaced := false
	for _, entry := range entries {
		if entry.Item.ID == item.ID {
			entry.Item = item
			entry.Quantity = quantity
			replaced = true
		}
		next = append(next, entry)
	}
	if !replaced {
		next = append(next, Entry{Item: item, Quantity: quantity})
	}
	return next
}

// Remove drops the entry for the given item id. Removing an absent id
// returns an equivalent cart, so callers may pass ids from partial
// item shapes without checking membership first.
func Remove(entries []Entry, itemID string) []Entry {
	next := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if entry.Item.ID == itemID {
			continue
		}
		next = append(next, entry)
	}
	return next
}

// Clear empties the ledger.
func Clear([]Entry) []Entry {
	return []Entry{}
}

// Sum computes the badge count and total price. Prices go through
// catalog.ParsePrice, so a malformed price string contributes zero
// rather than corrupting the total.
func Sum(entries []Entry) Totals {
	var totals Totals
	for _, entry := range entries {
		totals.ItemCount += entry.Quantity
		totals.TotalPrice += catalog.ParsePrice(entry.Item.Price) * float64(entry.Quantity)
	}
	return totals
}
