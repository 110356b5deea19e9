// Package renderer turns catalog data into markdown suitable for terminal
// rendering.
package renderer

import (
	"fmt"
	"strings"

	"github.com/wkrol/magazyn"
)

// Items renders the catalog as a markdown table, in insertion order.
func Items(items []*magazyn.Item) string {
	var b strings.Builder
	b.WriteString("# Stock\n\n")
	if len(items) == 0 {
		b.WriteString("The catalog is empty.\n")
		return b.String()
	}

	b.WriteString("| Name | Category | Qty | Purchase | Sale | EAN |\n")
	b.WriteString("|:---|:---|---:|---:|---:|:---|\n")
	total := 0
	for _, it := range items {
		ean := it.Barcode
		if ean == "" {
			ean = "-"
		}
		fmt.Fprintf(&b, "| %s | %s | %d | %s | %s | %s |\n",
			cell(it.Name), cell(it.Category), it.Quantity, it.PurchasePrice, it.SalePrice, ean)
		total += it.Quantity
	}
	fmt.Fprintf(&b, "\n%d stock lines, %d units on hand.\n", len(items), total)
	return b.String()
}

// Item renders one item as a single stock line.
func Item(it *magazyn.Item) string {
	return it.String()
}

// ImportReport renders the outcome of an invoice import.
func ImportReport(path string, count int) string {
	return fmt.Sprintf("Imported **%d** lines from `%s`.\n", count, path)
}

// cell escapes the characters that would break a markdown table cell.
func cell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
