package magazyn

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
)

// invoiceDoc is a supplier invoice in the wrapped form: every Line holds a
// nested Line-Item with the actual fields.
const invoiceDoc = `<?xml version="1.0" encoding="UTF-8"?>
<Document-Invoice>
  <Invoice-Header>
    <InvoiceNumber>FV/2024/0042</InvoiceNumber>
  </Invoice-Header>
  <Invoice-Lines>
    <Line>
      <Line-Item>
        <EAN>111</EAN>
        <ItemDescription>Widget</ItemDescription>
        <InvoiceQuantity>3</InvoiceQuantity>
        <InvoiceUnitNetPrice>10,50</InvoiceUnitNetPrice>
      </Line-Item>
    </Line>
    <Line>
      <Line-Item>
        <ItemDescription>Gadget</ItemDescription>
        <InvoiceQuantity>1</InvoiceQuantity>
        <InvoiceUnitNetPrice>5.00</InvoiceUnitNetPrice>
      </Line-Item>
    </Line>
  </Invoice-Lines>
</Document-Invoice>`

func TestImportInvoice_twoLines(t *testing.T) {
	inv := newTestInventory(t)

	count, err := inv.ImportInvoiceFrom(strings.NewReader(invoiceDoc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Fatalf("imported %d lines, want 2", count)
	}

	widget := inv.FindByBarcode("111")
	if widget == nil {
		t.Fatal("item with barcode 111 not found")
	}
	if widget.Quantity != 3 {
		t.Errorf("widget quantity = %d, want 3", widget.Quantity)
	}
	if want := M(10.50); !widget.PurchasePrice.Equal(want) {
		t.Errorf("widget purchase price = %v, want %v", widget.PurchasePrice.Decimal(), want.Decimal())
	}
	if want := M(13.65); !widget.SalePrice.Equal(want) {
		t.Errorf("widget sale price = %v, want %v", widget.SalePrice.Decimal(), want.Decimal())
	}
	if widget.Category != DefaultCategory {
		t.Errorf("widget category = %q, want %q", widget.Category, DefaultCategory)
	}

	gadget := inv.FindByName("Gadget")
	if gadget == nil {
		t.Fatal("item Gadget not found")
	}
	if gadget.Barcode != "" {
		t.Errorf("gadget barcode = %q, want none", gadget.Barcode)
	}
	if gadget.Quantity != 1 {
		t.Errorf("gadget quantity = %d, want 1", gadget.Quantity)
	}
	if want := M(5.00); !gadget.PurchasePrice.Equal(want) {
		t.Errorf("gadget purchase price = %v, want %v", gadget.PurchasePrice.Decimal(), want.Decimal())
	}
	if want := M(6.50); !gadget.SalePrice.Equal(want) {
		t.Errorf("gadget sale price = %v, want %v", gadget.SalePrice.Decimal(), want.Decimal())
	}
}

func TestImportInvoice_reimportAccumulates(t *testing.T) {
	inv := newTestInventory(t)

	if _, err := inv.ImportInvoiceFrom(strings.NewReader(invoiceDoc)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The second delivery of Widget carries no usable price.
	const delivery = `<Document-Invoice><Invoice-Lines><Line><Line-Item>
		<EAN>111</EAN>
		<ItemDescription>Widget</ItemDescription>
		<InvoiceQuantity>2</InvoiceQuantity>
		<InvoiceUnitNetPrice>0</InvoiceUnitNetPrice>
	</Line-Item></Line></Invoice-Lines></Document-Invoice>`
	if _, err := inv.ImportInvoiceFrom(strings.NewReader(delivery)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	widget := inv.FindByBarcode("111")
	if widget.Quantity != 5 {
		t.Errorf("widget quantity = %d, want 5", widget.Quantity)
	}
	if want := M(10.50); !widget.PurchasePrice.Equal(want) {
		t.Errorf("widget purchase price = %v, want unchanged %v", widget.PurchasePrice.Decimal(), want.Decimal())
	}
	if want := M(13.65); !widget.SalePrice.Equal(want) {
		t.Errorf("widget sale price = %v, want unchanged %v", widget.SalePrice.Decimal(), want.Decimal())
	}
}

func TestImportInvoice_alternateSectionTag(t *testing.T) {
	inv := newTestInventory(t)

	const doc = `<Document-Invoice><InvoiceLines><Line>
		<EAN>333</EAN>
		<ItemDescription>Cable</ItemDescription>
		<InvoiceQuantity>4</InvoiceQuantity>
		<InvoiceUnitNetPrice>2,00</InvoiceUnitNetPrice>
	</Line></InvoiceLines></Document-Invoice>`
	count, err := inv.ImportInvoiceFrom(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Fatalf("imported %d lines, want 1", count)
	}
	if it := inv.FindByBarcode("333"); it == nil || it.Quantity != 4 {
		t.Errorf("cable not imported from unwrapped line: %v", it)
	}
}

func TestImportInvoice_lowercaseEANAndDefaults(t *testing.T) {
	inv := newTestInventory(t)

	// A sparse line: lowercase ean tag, no description, no quantity, no price.
	const doc = `<Document-Invoice><Invoice-Lines><Line><Line-Item>
		<ean>444</ean>
	</Line-Item></Line></Invoice-Lines></Document-Invoice>`
	count, err := inv.ImportInvoiceFrom(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Fatalf("imported %d lines, want 1", count)
	}

	it := inv.FindByBarcode("444")
	if it == nil {
		t.Fatal("item with barcode 444 not found")
	}
	if it.Name != "Unnamed" {
		t.Errorf("name = %q, want %q", it.Name, "Unnamed")
	}
	if it.Quantity != 0 {
		t.Errorf("quantity = %d, want 0", it.Quantity)
	}
	if !it.PurchasePrice.IsZero() {
		t.Errorf("purchase price = %v, want 0", it.PurchasePrice.Decimal())
	}
}

func TestImportInvoice_missingSection(t *testing.T) {
	inv := newTestInventory(t)
	if _, err := inv.Reconcile(Receipt{Name: "Widget", Quantity: 1, Barcode: "111", PurchasePrice: M(10)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := inv.Len()

	const doc = `<Document-Invoice><Invoice-Header/></Document-Invoice>`
	count, err := inv.ImportInvoiceFrom(strings.NewReader(doc))
	if !errors.Is(err, ErrMissingLines) {
		t.Fatalf("got %v, want ErrMissingLines", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
	if inv.Len() != before {
		t.Errorf("catalog changed on failed import: %d items, want %d", inv.Len(), before)
	}
}

func TestImportInvoice_malformedDocument(t *testing.T) {
	inv := newTestInventory(t)

	_, err := inv.ImportInvoiceFrom(strings.NewReader("<Document-Invoice><broken"))
	if !errors.Is(err, ErrMalformedDocument) {
		t.Fatalf("got %v, want ErrMalformedDocument", err)
	}
	if inv.Len() != 0 {
		t.Errorf("catalog changed on malformed document")
	}
}

func TestImportInvoice_missingFile(t *testing.T) {
	inv := newTestInventory(t)

	_, err := inv.ImportInvoice(filepath.Join(t.TempDir(), "missing.xml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("got %v, want fs.ErrNotExist", err)
	}
}

func TestExtractLineItem_garbledNumbersDegradeToZero(t *testing.T) {
	inv := newTestInventory(t)

	const doc = `<Document-Invoice><Invoice-Lines><Line><Line-Item>
		<EAN>555</EAN>
		<ItemDescription>Mystery</ItemDescription>
		<InvoiceQuantity>many</InvoiceQuantity>
		<InvoiceUnitNetPrice>n/a</InvoiceUnitNetPrice>
	</Line-Item></Line></Invoice-Lines></Document-Invoice>`
	count, err := inv.ImportInvoiceFrom(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Fatalf("imported %d lines, want 1: a bad number degrades, it does not abort", count)
	}

	it := inv.FindByBarcode("555")
	if it.Quantity != 0 || !it.PurchasePrice.IsZero() {
		t.Errorf("degraded line = %v, want zero quantity and price", it)
	}
}

func TestImportInvoice_nonFiniteNumbersDegradeToZero(t *testing.T) {
	inv := newTestInventory(t)

	// "inf" and "nan" parse as floats but have no decimal representation.
	// They must degrade like any other bad number, not crash the import.
	const doc = `<Document-Invoice><Invoice-Lines><Line><Line-Item>
		<EAN>666</EAN>
		<ItemDescription>Oddity</ItemDescription>
		<InvoiceQuantity>inf</InvoiceQuantity>
		<InvoiceUnitNetPrice>NaN</InvoiceUnitNetPrice>
	</Line-Item></Line></Invoice-Lines></Document-Invoice>`
	count, err := inv.ImportInvoiceFrom(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Fatalf("imported %d lines, want 1", count)
	}

	it := inv.FindByBarcode("666")
	if it.Quantity != 0 || !it.PurchasePrice.IsZero() {
		t.Errorf("non-finite line = %v, want zero quantity and price", it)
	}
}
