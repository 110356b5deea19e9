package magazyn

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Supplier invoices arrive as semi-structured XML. The feed is tolerated
// rather than validated: tag names vary between exports, fields go missing,
// and numbers use either decimal separator. The names below are the known
// variants; lookups always try the aliases in order.
var (
	linesAliases       = []string{"Invoice-Lines", "InvoiceLines"}
	lineTag            = "Line"
	lineItemTag        = "Line-Item"
	barcodeAliases     = []string{"EAN", "ean"}
	descriptionAliases = []string{"ItemDescription"}
	quantityAliases    = []string{"InvoiceQuantity"}
	unitPriceAliases   = []string{"InvoiceUnitNetPrice"}
)

// unnamedItem is the placeholder description for a line with no description field.
const unnamedItem = "Unnamed"

// ErrMalformedDocument reports an invoice file that is not well-formed XML.
var ErrMalformedDocument = errors.New("malformed invoice document")

// ErrMissingLines reports a well-formed invoice with no line-items section.
var ErrMissingLines = errors.New("no Invoice-Lines section in invoice")

// LineItem is one extracted, normalized invoice line. It only lives between
// extraction and reconciliation and is never persisted.
type LineItem struct {
	Barcode     string // "" when the line carries no EAN
	Description string
	Quantity    int
	UnitPrice   Money
}

// xmlNode is a generic element tree, the tolerant counterpart of a schema:
// whatever the supplier nests, the tree captures it for alias lookups.
type xmlNode struct {
	XMLName  xml.Name
	Text     string    `xml:",chardata"`
	Children []xmlNode `xml:",any"`
}

// find returns the first descendant (depth-first) matching one of the alias
// tag names. Aliases are tried in order: the whole tree is searched for the
// first alias before moving to the next.
func (n *xmlNode) find(aliases ...string) *xmlNode {
	for _, alias := range aliases {
		if found := n.descendant(alias); found != nil {
			return found
		}
	}
	return nil
}

func (n *xmlNode) descendant(name string) *xmlNode {
	for i := range n.Children {
		child := &n.Children[i]
		if child.XMLName.Local == name {
			return child
		}
		if found := child.descendant(name); found != nil {
			return found
		}
	}
	return nil
}

// findAll returns every descendant with this tag name, in document order.
func (n *xmlNode) findAll(name string) []*xmlNode {
	var out []*xmlNode
	for i := range n.Children {
		child := &n.Children[i]
		if child.XMLName.Local == name {
			out = append(out, child)
		}
		out = append(out, child.findAll(name)...)
	}
	return out
}

// text returns the trimmed text of the first direct child matching one of
// the alias tag names, or "" when the field is absent.
func (n *xmlNode) text(aliases ...string) string {
	for _, alias := range aliases {
		for i := range n.Children {
			child := &n.Children[i]
			if child.XMLName.Local == alias {
				return strings.TrimSpace(child.Text)
			}
		}
	}
	return ""
}

// extractLineItem normalizes one invoice line node.
//
// The fields may sit directly on the line node or inside one nested
// Line-Item wrapper; the wrapper wins when present. Absent or malformed
// fields degrade to defaults, they never fail the line.
func extractLineItem(line *xmlNode) LineItem {
	node := line.find(lineItemTag)
	if node == nil {
		node = line
	}

	description := node.text(descriptionAliases...)
	if description == "" {
		description = unnamedItem
	}
	return LineItem{
		Barcode:     node.text(barcodeAliases...),
		Description: description,
		Quantity:    ParseQuantity(node.text(quantityAliases...)),
		UnitPrice:   ParseAmount(node.text(unitPriceAliases...)),
	}
}

// ImportInvoice parses the invoice file at path and reconciles every line
// into the catalog. It returns the number of imported lines.
//
// Failures before any line is processed are atomic: a missing file, a
// malformed document (ErrMalformedDocument) or a document without a
// line-items section (ErrMissingLines) leave the catalog untouched.
func (inv *Inventory) ImportInvoice(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("cannot open invoice %q: %w", path, err)
	}
	defer f.Close()
	return inv.ImportInvoiceFrom(f)
}

// ImportInvoiceFrom is ImportInvoice reading from r.
func (inv *Inventory) ImportInvoiceFrom(r io.Reader) (int, error) {
	var root xmlNode
	if err := xml.NewDecoder(r).Decode(&root); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	lines := root.find(linesAliases...)
	if lines == nil {
		return 0, ErrMissingLines
	}

	count := 0
	for _, line := range lines.findAll(lineTag) {
		li := extractLineItem(line)
		if li.Quantity == 0 && li.UnitPrice.IsZero() {
			log.Printf("warning, invoice line %d (%s) has no usable quantity or price", count+1, li.Description)
		}
		if _, err := inv.Reconcile(Receipt{
			Name:          li.Description,
			Category:      DefaultCategory,
			Quantity:      li.Quantity,
			Barcode:       li.Barcode,
			PurchasePrice: li.UnitPrice,
		}); err != nil {
			// the line was merged in memory, the snapshot write failed
			return count, fmt.Errorf("import stopped after %d lines: %w", count, err)
		}
		count++
	}
	return count, nil
}
