// Command sportpoet builds and validates sports poetry run configurations.
// Every generated config is accompanied by a reproduction script that
// rebuilds an equivalent config with a fresh timestamp.
package main

import (
	"fmt"
	"os"

	"github.com/sportpoet/sportpoet/cmd/sportpoet/internal/styles"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: sportpoet <command> [flags]

Commands:
  init         Write the default config template and output directory layout
  create       Build a config from flags (non-interactive)
  interactive  Build a config through guided prompts

Run 'sportpoet <command> -h' for command flags.
`)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error

	switch os.Args[1] {
	case "init":
		err = runInit(os.Args[2:])
	case "create":
		err = runCreate(os.Args[2:])
	case "interactive":
		err = runInteractive(os.Args[2:])
	case "help", "-h", "--help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("error: "+err.Error()))
		os.Exit(1)
	}
}
