package magazyn

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// This file persists the catalog as a single JSON snapshot: one array with
// one object per item, rewritten wholesale after every mutation. The format
// is a boundary contract shared with earlier renditions of this tool, so the
// field names and the explicit "barcode": null stay as they are.

// MarshalJSON implements json.Marshaler, keeping the snapshot field order stable.
func (it *Item) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", it.Name)
	w.Append("category", it.Category)
	w.Append("quantity", it.Quantity)
	w.Append("purchase_price", it.PurchasePrice)
	w.Append("sale_price", it.SalePrice)
	w.Append("margin", it.Margin)
	if it.Barcode == "" {
		w.Append("barcode", nil)
	} else {
		w.Append("barcode", it.Barcode)
	}
	return w.MarshalJSON()
}

// jitem is the object read from the snapshot using the json parser. Optional
// fields are pointers so that an absent field can fall back to a default.
type jitem struct {
	Name          string           `json:"name"`
	Category      string           `json:"category"`
	Quantity      int              `json:"quantity"`
	PurchasePrice decimal.Decimal  `json:"purchase_price"`
	SalePrice     *decimal.Decimal `json:"sale_price"`
	Margin        *decimal.Decimal `json:"margin"`
	Barcode       *string          `json:"barcode"`
}

// EncodeItems writes the catalog snapshot to w.
func EncodeItems(w io.Writer, items []*Item) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode inventory: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write inventory: %w", err)
	}
	return nil
}

// DecodeItems reads a catalog snapshot from r.
//
// Items are reconstructed verbatim: a previously persisted sale price is
// never recomputed on load. Absent fields fall back to their documented
// defaults (category, margin), and an item persisted without a sale price
// gets one derived from its purchase price and margin.
func DecodeItems(r io.Reader, defaultMargin decimal.Decimal) ([]*Item, error) {
	var jitems []jitem
	dec := json.NewDecoder(r)
	if err := dec.Decode(&jitems); err != nil {
		return nil, fmt.Errorf("cannot parse inventory snapshot: %w", err)
	}

	items := make([]*Item, 0, len(jitems))
	for _, js := range jitems {
		margin := defaultMargin
		if js.Margin != nil {
			margin = *js.Margin
		}
		var sale *Money
		if js.SalePrice != nil {
			sale = &Money{value: *js.SalePrice}
		}
		barcode := ""
		if js.Barcode != nil {
			barcode = *js.Barcode
		}
		items = append(items, newItem(js.Name, js.Category, js.Quantity, Money{value: js.PurchasePrice}, sale, margin, barcode))
	}
	return items, nil
}

// LoadInventory reads the snapshot at path into a new catalog.
// A missing file surfaces as fs.ErrNotExist; the caller decides whether a
// fresh empty catalog is acceptable.
func LoadInventory(path string, cfg Config) (*Inventory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open inventory %q: %w", path, err)
	}
	defer f.Close()

	items, err := DecodeItems(f, cfg.Margin)
	if err != nil {
		return nil, fmt.Errorf("cannot load inventory %q: %w", path, err)
	}
	inv := NewInventory(path, cfg.Margin)
	inv.items = items
	return inv, nil
}

// Save rewrites the whole snapshot file. It blocks until the write completed
// and reports any failure; the in-memory catalog is left untouched either way.
func (inv *Inventory) Save() error {
	if dir := filepath.Dir(inv.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("cannot create inventory directory %q: %w", dir, err)
		}
	}
	f, err := os.Create(inv.path)
	if err != nil {
		return fmt.Errorf("cannot create inventory %q: %w", inv.path, err)
	}
	defer f.Close()

	if err := EncodeItems(f, inv.items); err != nil {
		return fmt.Errorf("cannot save inventory %q: %w", inv.path, err)
	}
	return nil
}
