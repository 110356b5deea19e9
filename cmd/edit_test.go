package cmd

import (
	"flag"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/wkrol/magazyn"
)

func parseEdit(t *testing.T, args ...string) (magazyn.ItemUpdate, error) {
	t.Helper()
	p := &editCmd{}
	f := flag.NewFlagSet("edit", flag.ContinueOnError)
	p.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("cannot parse flags: %v", err)
	}
	return p.update(f)
}

func TestEditCmd_updateOnlySetFlags(t *testing.T) {
	u, err := parseEdit(t, "-qty", "5", "-margin", "0.25", "111")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if u.Quantity == nil || *u.Quantity != 5 {
		t.Errorf("quantity = %v, want 5", u.Quantity)
	}
	if u.Margin == nil || !u.Margin.Equal(decimal.NewFromFloat(0.25)) {
		t.Errorf("margin = %v, want 0.25", u.Margin)
	}
	// Flags that were not passed must stay unset: the edit is partial.
	if u.Name != nil || u.Category != nil || u.PurchasePrice != nil || u.SalePrice != nil || u.Barcode != nil {
		t.Errorf("unset flags leaked into the update: %+v", u)
	}
}

func TestEditCmd_commaPrices(t *testing.T) {
	u, err := parseEdit(t, "-price", "10,50", "-sale", "13,99", "111")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := magazyn.M(10.50); u.PurchasePrice == nil || !u.PurchasePrice.Equal(want) {
		t.Errorf("purchase price = %v, want %v", u.PurchasePrice, want)
	}
	if want := magazyn.M(13.99); u.SalePrice == nil || !u.SalePrice.Equal(want) {
		t.Errorf("sale price = %v, want %v", u.SalePrice, want)
	}
}

func TestEditCmd_invalidMargin(t *testing.T) {
	if _, err := parseEdit(t, "-margin", "thirty", "111"); err == nil {
		t.Error("invalid margin accepted, want error")
	}
}
