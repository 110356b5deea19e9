package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type saveCmd struct{}

func (*saveCmd) Name() string     { return "save" }
func (*saveCmd) Synopsis() string { return "force a persistence flush of the catalog" }
func (*saveCmd) Usage() string {
	return `mgz save

  Rewrites the inventory snapshot. Every mutating command already persists;
  save exists to re-materialize a snapshot that was deleted or edited by
  hand.
`
}

func (p *saveCmd) SetFlags(f *flag.FlagSet) {}

func (p *saveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inv, err := OpenInventory()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := inv.Save(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Saved %d items to %s\n", inv.Len(), inv.Path())
	return subcommands.ExitSuccess
}
