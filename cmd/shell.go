package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/wkrol/magazyn"
)

type shellCmd struct{}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "interactive console on the catalog" }
func (*shellCmd) Usage() string {
	return `mgz shell

  Starts a line-based console for working through a stack of invoices or
  corrections without re-running mgz for every step.

  Commands: list, import <file>, add, edit, reduce, save, exit
`
}

func (p *shellCmd) SetFlags(f *flag.FlagSet) {}

func (p *shellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inv, err := OpenInventory()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Println("=== mgz console ===")
	fmt.Println("Commands: list, import <file>, add, edit, reduce, save, exit")
	runShell(inv, os.Stdin, os.Stdout)
	return subcommands.ExitSuccess
}

// runShell drives the console loop. It is separated from Execute so the loop
// can be tested against a scripted reader.
func runShell(inv *magazyn.Inventory, in io.Reader, out io.Writer) {
	r := bufio.NewReader(in)
	for {
		fmt.Fprint(out, "> ")
		line, err := r.ReadString('\n')
		if err != nil {
			return
		}
		cmd := strings.TrimSpace(line)
		if cmd == "" {
			continue
		}

		switch {
		case cmd == "exit":
			return
		case cmd == "list":
			for _, it := range inv.Items() {
				fmt.Fprintln(out, it)
			}
		case strings.HasPrefix(cmd, "import "):
			path := strings.TrimSpace(strings.TrimPrefix(cmd, "import "))
			count, err := inv.ImportInvoice(path)
			if err != nil {
				fmt.Fprintln(out, "Import failed:", err)
				continue
			}
			fmt.Fprintf(out, "Imported %d lines.\n", count)
		case cmd == "add":
			shellAdd(inv, r, out)
		case cmd == "edit":
			shellEdit(inv, r, out)
		case cmd == "reduce":
			shellReduce(inv, r, out)
		case cmd == "save":
			if err := inv.Save(); err != nil {
				fmt.Fprintln(out, "Save failed:", err)
				continue
			}
			fmt.Fprintln(out, "Saved.")
		default:
			fmt.Fprintln(out, "Unknown command.")
		}
	}
}

// prompt reads one answer, returning fallback when the answer is empty.
func prompt(r *bufio.Reader, out io.Writer, label, fallback string) string {
	fmt.Fprintf(out, "%s: ", label)
	line, err := r.ReadString('\n')
	if err != nil {
		return fallback
	}
	if answer := strings.TrimSpace(line); answer != "" {
		return answer
	}
	return fallback
}

func shellAdd(inv *magazyn.Inventory, r *bufio.Reader, out io.Writer) {
	name := prompt(r, out, "Name", "")
	if name == "" {
		fmt.Fprintln(out, "A name is required.")
		return
	}
	category := prompt(r, out, "Category", "")
	qty := magazyn.ParseQuantity(prompt(r, out, "Quantity", "0"))
	price := magazyn.ParseAmount(prompt(r, out, "Purchase price", "0"))
	ean := prompt(r, out, "EAN", "")

	it, err := inv.Reconcile(magazyn.Receipt{
		Name:          name,
		Category:      category,
		Quantity:      qty,
		Barcode:       ean,
		PurchasePrice: price,
	})
	if err != nil {
		fmt.Fprintln(out, "Add failed:", err)
		return
	}
	fmt.Fprintln(out, "Added:", it)
}

func shellEdit(inv *magazyn.Inventory, r *bufio.Reader, out io.Writer) {
	key := prompt(r, out, "EAN or name", "")
	it := inv.Find(key)
	if it == nil {
		fmt.Fprintln(out, "Not found.")
		return
	}
	fmt.Fprintln(out, "Current:", it)

	name := prompt(r, out, fmt.Sprintf("Name [%s]", it.Name), it.Name)
	category := prompt(r, out, fmt.Sprintf("Category [%s]", it.Category), it.Category)
	qty := magazyn.ParseQuantity(prompt(r, out, fmt.Sprintf("Quantity [%d]", it.Quantity), fmt.Sprint(it.Quantity)))
	price := magazyn.ParseAmount(prompt(r, out, fmt.Sprintf("Purchase price [%s]", it.PurchasePrice), it.PurchasePrice.Decimal().String()))
	sale := magazyn.ParseAmount(prompt(r, out, fmt.Sprintf("Sale price [%s]", it.SalePrice), it.SalePrice.Decimal().String()))
	ean := prompt(r, out, fmt.Sprintf("EAN [%s]", it.Barcode), it.Barcode)

	updated, err := inv.Edit(it.Key(), magazyn.ItemUpdate{
		Name:          &name,
		Category:      &category,
		Quantity:      &qty,
		PurchasePrice: &price,
		SalePrice:     &sale,
		Barcode:       &ean,
	})
	if err != nil {
		fmt.Fprintln(out, "Edit failed:", err)
		return
	}
	fmt.Fprintln(out, "Saved:", updated)
}

func shellReduce(inv *magazyn.Inventory, r *bufio.Reader, out io.Writer) {
	ean := prompt(r, out, "EAN", "")
	qty := magazyn.ParseQuantity(prompt(r, out, "How many", "1"))

	it, err := inv.Reduce(ean, qty)
	if errors.Is(err, magazyn.ErrNotFound) {
		fmt.Fprintln(out, "Not found.")
		return
	}
	if err != nil {
		fmt.Fprintln(out, "Reduce failed:", err)
		return
	}
	fmt.Fprintln(out, "Updated:", it)
}
