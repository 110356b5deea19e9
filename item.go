package magazyn

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCategory is assigned to items created without a category, including
// every item coming from an invoice import (the invoice format carries no
// category information).
const DefaultCategory = "accessory"

// Item is a mutable catalog record for one stock line.
//
// An item is identified by its Barcode when it has one; items without a
// barcode are identified by their name, compared case-insensitively. A
// non-empty barcode is unique across the catalog.
type Item struct {
	Name          string
	Category      string
	Quantity      int // never negative
	PurchasePrice Money
	Margin        decimal.Decimal
	// SalePrice equals SalePrice(PurchasePrice, Margin) unless an explicit
	// sale price was supplied; then it stands on its own until the next
	// margin-driven recompute.
	SalePrice Money
	Barcode   string // "" means no barcode
}

// newItem builds an item, deriving the sale price from the margin when no
// explicit sale price is given.
func newItem(name, category string, quantity int, purchase Money, sale *Money, margin decimal.Decimal, barcode string) *Item {
	if category == "" {
		category = DefaultCategory
	}
	it := &Item{
		Name:          name,
		Category:      category,
		Quantity:      quantity,
		PurchasePrice: purchase,
		Margin:        margin,
		Barcode:       barcode,
	}
	if sale != nil {
		it.SalePrice = *sale
	} else {
		it.SalePrice = SalePrice(purchase, margin)
	}
	return it
}

// SameName reports whether the item's name matches, ignoring case.
func (it *Item) SameName(name string) bool {
	return strings.EqualFold(it.Name, name)
}

// Key returns the identity used to address the item: the barcode when
// present, the name otherwise.
func (it *Item) Key() string {
	if it.Barcode != "" {
		return it.Barcode
	}
	return it.Name
}

// String renders the item as a one-line stock summary.
func (it *Item) String() string {
	ean := it.Barcode
	if ean == "" {
		ean = "-"
	}
	return fmt.Sprintf("%s (%s) - %d pcs | buy %s | sell %s | EAN %s",
		it.Name, it.Category, it.Quantity, it.PurchasePrice, it.SalePrice, ean)
}

// ItemUpdate carries a partial update: only populated slots are applied.
type ItemUpdate struct {
	Name          *string
	Category      *string
	Quantity      *int
	PurchasePrice *Money
	// SalePrice, when set, takes precedence over the Margin-derived value
	// applied in the same update.
	SalePrice *Money
	Margin    *decimal.Decimal
	Barcode   *string
}
