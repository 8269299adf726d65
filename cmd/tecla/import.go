package main

import (
	"fmt"
	"runtime"

	"github.com/revelaction/tecla/provider"
	"github.com/revelaction/tecla/storage/sqlite/zombiezen"

	"github.com/urfave/cli/v2"
)

func importCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "analyze the corpus and store the results in a sqlite database",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "corpus", Value: defaultCorpusDir, Usage: "directory of annotated JSON documents"},
			&cli.StringFlag{Name: "db", Value: "./tecla.db", Usage: "sqlite database path"},
			&cli.IntFlag{Name: "workers", Value: runtime.NumCPU(), Usage: "documents analyzed in parallel"},
		},
		Action: func(c *cli.Context) error {
			handler, err := provider.NewDocHandler(c.String("corpus"))
			if err != nil {
				return err
			}

			fmt.Fprintf(ui.Out, "Analyzing docs from %s...\n", c.String("corpus"))
			results, err := analyzeCorpus(handler, c.Int("workers"))
			if err != nil {
				return err
			}

			var pool Pool
			defer pool.Close()

			p, err := pool.Open(c.String("db"))
			if err != nil {
				return err
			}

			if err := zombiezen.CreateTables(p); err != nil {
				return fmt.Errorf("failed to create metric tables: %w", err)
			}

			store := zombiezen.NewMetricStore(p)
			if err := writeAll(store, results); err != nil {
				return err
			}

			fmt.Fprintf(ui.Out, "Successfully imported %d docs into %s\n", len(results), c.String("db"))
			return nil
		},
	}
}
