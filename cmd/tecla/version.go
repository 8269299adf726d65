package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func versionCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "print the build version",
		Action: func(c *cli.Context) error {
			_, err := fmt.Fprintf(ui.Out, "tecla version %s (commit: %s)\n", BuildTag, BuildCommit)
			return err
		},
	}
}
