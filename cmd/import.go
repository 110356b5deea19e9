package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/google/subcommands"
	"github.com/wkrol/magazyn"
	"github.com/wkrol/magazyn/renderer"
)

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a supplier invoice XML into the catalog" }
func (*importCmd) Usage() string {
	return `mgz import <file.xml>

  Extracts every line of the invoice and merges it into the catalog: known
  barcodes accumulate quantity, unknown products are created. See
  "mgz topic import" for the accepted invoice format.
`
}

func (p *importCmd) SetFlags(f *flag.FlagSet) {}

func (p *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one invoice file")
		return subcommands.ExitUsageError
	}
	path := f.Arg(0)

	inv, err := OpenInventory()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	count, err := inv.ImportInvoice(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		fmt.Fprintf(os.Stderr, "Error: invoice file %q does not exist\n", path)
		return subcommands.ExitFailure
	case errors.Is(err, magazyn.ErrMalformedDocument):
		fmt.Fprintf(os.Stderr, "Error: %q is not a well-formed XML document\n", path)
		return subcommands.ExitFailure
	case errors.Is(err, magazyn.ErrMissingLines):
		fmt.Fprintf(os.Stderr, "Error: %q has no Invoice-Lines section, nothing imported\n", path)
		return subcommands.ExitFailure
	case err != nil:
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ImportReport(path, count))
	return subcommands.ExitSuccess
}
