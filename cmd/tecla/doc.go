package main

import (
	"fmt"

	"github.com/revelaction/tecla/provider"

	"github.com/urfave/cli/v2"
)

func docCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "doc",
		Usage: "list the documents of the annotated corpus",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "corpus", Value: defaultCorpusDir, Usage: "directory of annotated JSON documents"},
		},
		Action: func(c *cli.Context) error {
			handler, err := provider.NewDocHandler(c.String("corpus"))
			if err != nil {
				return err
			}

			for docId, name := range handler.Names() {
				fmt.Fprintf(ui.Out, "📖 %d %s \n", docId, name)
			}
			return nil
		},
	}
}
