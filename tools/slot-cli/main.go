package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// Run with `go run ./tools/slot-cli`

func main() {
	app := &cli.App{
		Name:     "Slot Store Toolbox",
		HelpName: "slot",
		Usage:    "A set of utilities to inspect word store directories",
		Flags:    []cli.Flag{},
		Commands: []*cli.Command{
			&infoCommand,
			&dumpCommand,
			&getCommand,
			&setCommand,
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
