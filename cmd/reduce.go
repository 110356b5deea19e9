package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/wkrol/magazyn"
)

type reduceCmd struct {
	ean string
	qty int
}

func (*reduceCmd) Name() string     { return "reduce" }
func (*reduceCmd) Synopsis() string { return "take units off the stock of a barcode" }
func (*reduceCmd) Usage() string {
	return `mgz reduce -ean <barcode> -qty <n>

  Removes n units from the stock line carrying this barcode. Stock never
  goes below zero. The lookup is strictly by barcode.
`
}

func (p *reduceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.ean, "ean", "", "Barcode (EAN) of the item.")
	f.IntVar(&p.qty, "qty", 1, "Units to take off the stock.")
}

func (p *reduceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.ean == "" {
		fmt.Fprintln(os.Stderr, "Error: -ean is required")
		return subcommands.ExitUsageError
	}

	inv, err := OpenInventory()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	it, err := inv.Reduce(p.ean, p.qty)
	if errors.Is(err, magazyn.ErrNotFound) {
		fmt.Fprintf(os.Stderr, "No item with EAN %q found.\n", p.ean)
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Took %d pcs off %q. New stock: %d\n", p.qty, it.Name, it.Quantity)
	return subcommands.ExitSuccess
}
