package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/wkrol/magazyn"
	"github.com/wkrol/magazyn/renderer"
)

type addCmd struct {
	name     string
	category string
	qty      int
	price    string
	sale     string
	ean      string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a product manually, or top up an existing one" }
func (*addCmd) Usage() string {
	return `mgz add -name <name> [-category <cat>] [-qty <n>] [-price <purchase>] [-sale <sale>] [-ean <barcode>]

  Adds a product to the catalog. When the barcode (or, without a barcode,
  the name) already exists, the quantity is added to the existing stock line
  instead. Prices accept comma or dot decimals.

Usage Examples:
# A new product with a derived sale price (default margin).
$ mgz add -name "Widget" -qty 3 -price 10,50 -ean 111

# Pin an explicit sale price.
$ mgz add -name "Gadget" -qty 1 -price 5.00 -sale 7,99
`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Product name.")
	f.StringVar(&p.category, "category", "", "Product category (defaults to accessory).")
	f.IntVar(&p.qty, "qty", 0, "Quantity to add.")
	f.StringVar(&p.price, "price", "", "Purchase price.")
	f.StringVar(&p.sale, "sale", "", "Explicit sale price (derived from the margin when omitted).")
	f.StringVar(&p.ean, "ean", "", "Product barcode (EAN).")
}

func (p *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required")
		return subcommands.ExitUsageError
	}

	inv, err := OpenInventory()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	receipt := magazyn.Receipt{
		Name:          p.name,
		Category:      p.category,
		Quantity:      p.qty,
		Barcode:       p.ean,
		PurchasePrice: magazyn.ParseAmount(p.price),
	}
	if p.sale != "" {
		sale := magazyn.ParseAmount(p.sale)
		receipt.SalePrice = &sale
	}

	it, err := inv.Reconcile(receipt)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Println(renderer.Item(it))
	return subcommands.ExitSuccess
}
