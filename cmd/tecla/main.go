package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
)

var (
	BuildTag    = "dev"
	BuildCommit = ""
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	app := &cli.App{
		Name:  "tecla",
		Usage: "compute complexity indices for annotated Spanish documents",
		Commands: []*cli.Command{
			analyzeCommand(ui),
			docCommand(ui),
			queryCommand(ui),
			importCommand(ui),
			versionCommand(ui),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(ui.Err, "tecla: %v\n", err)
		os.Exit(1)
	}
}
