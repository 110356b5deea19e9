package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/wkrol/magazyn"
	"github.com/xuri/excelize/v2"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the catalog to an XLSX stock report" }
func (*exportCmd) Usage() string {
	return `mgz export [-o <file.xlsx>]

  Writes the whole catalog to a spreadsheet, one row per stock line, for
  stocktakes and supplier hand-off.
`
}

func (p *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.output, "o", "stock.xlsx", "Output spreadsheet file.")
}

func (p *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inv, err := OpenInventory()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := writeStockReport(p.output, inv); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Exported %d items to %s\n", inv.Len(), p.output)
	return subcommands.ExitSuccess
}

func writeStockReport(path string, inv *magazyn.Inventory) error {
	x := excelize.NewFile()
	defer x.Close()

	const sheet = "Stock"
	x.SetSheetName("Sheet1", sheet)

	headers := []string{"Name", "Category", "Quantity", "Purchase price", "Sale price", "Margin", "EAN"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := x.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for row, it := range inv.Items() {
		values := []interface{}{
			it.Name,
			it.Category,
			it.Quantity,
			it.PurchasePrice.InexactFloat64(),
			it.SalePrice.InexactFloat64(),
			it.Margin.InexactFloat64(),
			it.Barcode,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := x.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	if err := x.SaveAs(path); err != nil {
		return fmt.Errorf("cannot write stock report %q: %w", path, err)
	}
	return nil
}
