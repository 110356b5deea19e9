package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/wkrol/magazyn"
	"github.com/wkrol/magazyn/renderer"
)

type editCmd struct {
	name     string
	category string
	qty      int
	price    string
	sale     string
	margin   string
	ean      string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit an item addressed by barcode or name" }
func (*editCmd) Usage() string {
	return `mgz edit <barcode|name> [-name <name>] [-category <cat>] [-qty <n>] [-price <purchase>] [-sale <sale>] [-margin <fraction>] [-ean <barcode>]

  Applies only the flags you pass; everything else stays as it is. Updating
  the margin re-derives the sale price from the purchase price; passing an
  explicit -sale in the same call wins over the derived value.

Usage Examples:
# Rename, keep everything else.
$ mgz edit 111 -name "Widget XL"

# Re-price at a 25% margin.
$ mgz edit 111 -margin 0.25
`
}

func (p *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "New product name.")
	f.StringVar(&p.category, "category", "", "New category.")
	f.IntVar(&p.qty, "qty", 0, "New absolute quantity.")
	f.StringVar(&p.price, "price", "", "New purchase price.")
	f.StringVar(&p.sale, "sale", "", "New explicit sale price.")
	f.StringVar(&p.margin, "margin", "", "New margin fraction, e.g. 0.30 for 30%.")
	f.StringVar(&p.ean, "ean", "", "New barcode (EAN).")
}

// update translates the flags that were actually set into a partial update.
func (p *editCmd) update(f *flag.FlagSet) (magazyn.ItemUpdate, error) {
	var u magazyn.ItemUpdate
	var err error
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "name":
			u.Name = &p.name
		case "category":
			u.Category = &p.category
		case "qty":
			u.Quantity = &p.qty
		case "price":
			price := magazyn.ParseAmount(p.price)
			u.PurchasePrice = &price
		case "sale":
			sale := magazyn.ParseAmount(p.sale)
			u.SalePrice = &sale
		case "margin":
			m, e := decimal.NewFromString(p.margin)
			if e != nil {
				err = fmt.Errorf("invalid margin %q: %w", p.margin, e)
				return
			}
			u.Margin = &m
		case "ean":
			u.Barcode = &p.ean
		}
	})
	return u, err
}

func (p *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected the barcode or name of the item to edit")
		return subcommands.ExitUsageError
	}
	key := f.Arg(0)

	u, err := p.update(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	inv, err := OpenInventory()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	it, err := inv.Edit(key, u)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Println(renderer.Item(it))
	return subcommands.ExitSuccess
}
