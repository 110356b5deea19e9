package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/wkrol/magazyn/cmd"
)

// completion describes the command tree for shell completion.
// Run `COMP_INSTALL=1 mgz` once to install it.
func completion() *complete.Command {
	files := predict.Files("*")
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"inventory-file": predict.Files("*.json"),
			"config-file":    predict.Files("*.json"),
		},
		Sub: map[string]*complete.Command{
			"list":   {},
			"add":    {},
			"edit":   {},
			"reduce": {},
			"import": {Args: predict.Files("*.xml")},
			"save":   {},
			"export": {Flags: map[string]complete.Predictor{"o": files}},
			"shell":  {},
			"topic":  {Args: predict.Set{"readme", "import", "pricing"}},
		},
	}
}

func main() {
	completion().Complete(path.Base(os.Args[0]))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
