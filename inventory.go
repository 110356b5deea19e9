package magazyn

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound is returned by lookups addressing an unknown item.
var ErrNotFound = errors.New("item not found")

// ErrDuplicateBarcode is returned when an edit would give two items the same
// non-empty barcode.
var ErrDuplicateBarcode = errors.New("barcode already in use")

// Inventory owns the catalog: an insertion-ordered collection of items backed
// by a single JSON snapshot file. Every mutation rewrites the snapshot before
// returning; a write failure is reported to the caller while the in-memory
// state keeps the change, so the caller decides whether to retry or surface.
//
// Inventory is not safe for concurrent use; the surrounding command surface
// is single-threaded.
type Inventory struct {
	path   string
	margin decimal.Decimal // default margin for created and recomputed prices
	items  []*Item
}

// NewInventory returns an empty catalog persisting to path. Creating an
// inventory performs no I/O; use LoadInventory to read an existing snapshot.
func NewInventory(path string, defaultMargin decimal.Decimal) *Inventory {
	return &Inventory{path: path, margin: defaultMargin}
}

// Path returns the snapshot file the catalog persists to.
func (inv *Inventory) Path() string { return inv.path }

// Len returns the number of stock lines in the catalog.
func (inv *Inventory) Len() int { return len(inv.items) }

// Items returns the catalog in insertion order. The slice is a copy but the
// records are shared; callers treat them as read-only snapshots.
func (inv *Inventory) Items() []*Item {
	out := make([]*Item, len(inv.items))
	copy(out, inv.items)
	return out
}

// FindByBarcode returns the item carrying this barcode, or nil.
func (inv *Inventory) FindByBarcode(barcode string) *Item {
	if barcode == "" {
		return nil
	}
	for _, it := range inv.items {
		if it.Barcode == barcode {
			return it
		}
	}
	return nil
}

// FindByName returns the first item whose name matches case-insensitively, or nil.
func (inv *Inventory) FindByName(name string) *Item {
	for _, it := range inv.items {
		if it.SameName(name) {
			return it
		}
	}
	return nil
}

// Find looks an item up by barcode first, then by name.
func (inv *Inventory) Find(key string) *Item {
	if it := inv.FindByBarcode(key); it != nil {
		return it
	}
	return inv.FindByName(key)
}

// Receipt describes one incoming stock movement to merge into the catalog:
// a manually added product or one extracted invoice line.
type Receipt struct {
	Name          string
	Category      string // empty defaults to DefaultCategory
	Quantity      int
	Barcode       string // empty means no barcode
	PurchasePrice Money
	SalePrice     *Money           // explicit sale price, nil to derive from the margin
	Margin        *decimal.Decimal // nil to use the catalog default
}

// Reconcile merges a receipt into the catalog.
//
// The barcode is the authoritative key: when the receipt carries one, an
// exact barcode match is updated in place. Receipts without a barcode fall
// back to a case-insensitive name match. When nothing matches, a new item is
// appended.
//
// An update accumulates the incoming quantity. The incoming purchase price
// overwrites the known one only when it is nonzero: a zero price means "no
// price information supplied" and never corrupts historical pricing. When
// the purchase price is overwritten the sale price is recomputed from the
// margin, unless the receipt carries an explicit sale price.
//
// The catalog is persisted before returning; on a write failure the merged
// item is returned together with the error.
func (inv *Inventory) Reconcile(r Receipt) (*Item, error) {
	margin := inv.margin
	if r.Margin != nil {
		margin = *r.Margin
	}

	var existing *Item
	if r.Barcode != "" {
		existing = inv.FindByBarcode(r.Barcode)
	} else {
		existing = inv.FindByName(r.Name)
	}

	if existing != nil {
		existing.Quantity += r.Quantity
		if !r.PurchasePrice.IsZero() {
			existing.PurchasePrice = r.PurchasePrice
			if r.SalePrice != nil {
				existing.SalePrice = *r.SalePrice
			} else {
				existing.Margin = margin
				existing.SalePrice = SalePrice(existing.PurchasePrice, margin)
			}
		} else if r.SalePrice != nil {
			existing.SalePrice = *r.SalePrice
		}
		return existing, inv.Save()
	}

	it := newItem(r.Name, r.Category, r.Quantity, r.PurchasePrice, r.SalePrice, margin, r.Barcode)
	inv.items = append(inv.items, it)
	return it, inv.Save()
}

// Edit applies a partial update to the item addressed by key (barcode first,
// then name). Only populated slots of u are applied. Updating the margin
// recomputes the sale price from the (possibly also updated) purchase price;
// an explicit sale price in the same update takes precedence.
//
// Edit returns ErrNotFound for an unknown key, and refuses updates that
// would break a catalog invariant (negative quantity, duplicate barcode).
func (inv *Inventory) Edit(key string, u ItemUpdate) (*Item, error) {
	it := inv.Find(key)
	if it == nil {
		return nil, fmt.Errorf("cannot edit %q: %w", key, ErrNotFound)
	}

	if u.Quantity != nil && *u.Quantity < 0 {
		return nil, fmt.Errorf("cannot edit %q: quantity must not be negative", key)
	}
	if u.Barcode != nil && *u.Barcode != "" {
		if other := inv.FindByBarcode(*u.Barcode); other != nil && other != it {
			return nil, fmt.Errorf("cannot edit %q: %w by %q", key, ErrDuplicateBarcode, other.Name)
		}
	}

	if u.Name != nil {
		it.Name = *u.Name
	}
	if u.Category != nil {
		it.Category = *u.Category
	}
	if u.Quantity != nil {
		it.Quantity = *u.Quantity
	}
	if u.PurchasePrice != nil {
		it.PurchasePrice = *u.PurchasePrice
	}
	if u.Margin != nil {
		it.Margin = *u.Margin
		it.SalePrice = SalePrice(it.PurchasePrice, it.Margin)
	}
	if u.SalePrice != nil {
		it.SalePrice = *u.SalePrice
	}
	if u.Barcode != nil {
		it.Barcode = *u.Barcode
	}
	return it, inv.Save()
}

// Reduce takes qty units off the stock of the item carrying this barcode.
// The lookup is strictly by barcode. Stock never goes below zero: reducing
// a quantity of 5 by 8 leaves 0.
func (inv *Inventory) Reduce(barcode string, qty int) (*Item, error) {
	it := inv.FindByBarcode(barcode)
	if it == nil {
		return nil, fmt.Errorf("cannot reduce stock for EAN %q: %w", barcode, ErrNotFound)
	}
	it.Quantity = max(0, it.Quantity-qty)
	return it, inv.Save()
}
