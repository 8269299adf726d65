package main

import (
	"runtime"

	"github.com/revelaction/tecla/metric"
	"github.com/revelaction/tecla/provider"
	"github.com/revelaction/tecla/query"
	"github.com/revelaction/tecla/render"

	"github.com/urfave/cli/v2"
)

func queryCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "query",
		Usage: "analyze the corpus and browse indices interactively",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "corpus", Value: defaultCorpusDir, Usage: "directory of annotated JSON documents"},
			&cli.IntFlag{Name: "workers", Value: runtime.NumCPU(), Usage: "documents analyzed in parallel"},
		},
		Action: func(c *cli.Context) error {
			handler, err := provider.NewDocHandler(c.String("corpus"))
			if err != nil {
				return err
			}

			analyzedDocs, err := analyzeCorpus(handler, c.Int("workers"))
			if err != nil {
				return err
			}

			results := make(map[string]metric.Result, len(analyzedDocs))
			for _, a := range analyzedDocs {
				results[a.info.Title] = a.res
			}

			h := query.NewHandler(results, render.NewTextRenderer(ui.Out))
			return h.Run()
		},
	}
}
