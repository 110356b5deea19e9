// Package cmd implements the CLI application to manage the warehouse catalog.
package cmd

import (
	"errors"
	"flag"
	"io/fs"
	"log"

	"github.com/google/subcommands"
	"github.com/wkrol/magazyn"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&listCmd{}, "catalog")
	c.Register(&addCmd{}, "catalog")
	c.Register(&editCmd{}, "catalog")
	c.Register(&reduceCmd{}, "catalog")

	c.Register(&importCmd{}, "invoices")

	c.Register(&saveCmd{}, "persistence")
	c.Register(&exportCmd{}, "reports")

	c.Register(&shellCmd{}, "console")
	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var inventoryFile = flag.String("inventory-file", "inventory.json", "Path to the inventory snapshot file (JSON format)")
var configFile = flag.String("config-file", "config.json", "Path to the configuration file (JSON format)")

// OpenInventory bootstraps the configuration and loads the catalog snapshot.
// On first run, when no snapshot exists yet, it starts with an empty catalog.
func OpenInventory() (*magazyn.Inventory, error) {
	cfg, err := magazyn.Bootstrap(*configFile)
	if err != nil {
		return nil, err
	}
	inv, err := magazyn.LoadInventory(*inventoryFile, cfg)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, inventory does not exist, starting with an empty catalog instead")
		return magazyn.NewInventory(*inventoryFile, cfg.Margin), nil
	}
	return inv, err
}
