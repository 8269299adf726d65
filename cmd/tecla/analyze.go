package main

import (
	"fmt"
	"runtime"
	"sort"
	"sync"

	"github.com/revelaction/tecla/lexicon"
	"github.com/revelaction/tecla/metric"
	"github.com/revelaction/tecla/provider"
	"github.com/revelaction/tecla/render"
	"github.com/revelaction/tecla/storage"
	"github.com/revelaction/tecla/storage/filesystem"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"
)

const defaultCorpusDir = "./corpus/token/"

func analyzeCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Usage:     "compute the 48 indices for every document of an annotated corpus",
		ArgsUsage: "[doc name match]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "corpus", Value: defaultCorpusDir, Usage: "directory of annotated JSON documents"},
			&cli.IntFlag{Name: "workers", Value: runtime.NumCPU(), Usage: "documents analyzed in parallel"},
			&cli.StringFlag{Name: "format", Value: "text", Usage: "output format: text or json"},
			&cli.StringFlag{Name: "out", Usage: "directory to store results as JSON files"},
		},
		Action: func(c *cli.Context) error {
			r, err := renderer(ui, c.String("format"))
			if err != nil {
				return err
			}

			handler, err := provider.NewDocHandler(c.String("corpus"))
			if err != nil {
				return err
			}

			if c.Args().Len() > 0 {
				return analyzeOne(handler, c.Args().First(), r)
			}

			results, err := analyzeCorpus(handler, c.Int("workers"))
			if err != nil {
				return err
			}

			if dir := c.String("out"); dir != "" {
				store, err := filesystem.NewMetricStore(dir)
				if err != nil {
					return err
				}
				if err := writeAll(store, results); err != nil {
					return err
				}
			}

			for _, a := range results {
				if err := r.Render(a.info.Title, a.res); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func renderer(ui UI, format string) (render.Renderer, error) {
	switch format {
	case "text":
		return render.NewTextRenderer(ui.Out), nil
	case "json":
		return render.NewJSONRenderer(ui.Out), nil
	}
	return nil, fmt.Errorf("unknown format: %s", format)
}

func analyzeOne(handler *provider.DocHandler, match string, r render.Renderer) error {
	doc, err := handler.DocForName(match)
	if err != nil {
		return err
	}

	engine := metric.New(lexicon.Spanish())
	res, err := engine.Analyze(doc)
	if err != nil {
		return err
	}

	return r.Render(doc.Title, res)
}

type analyzed struct {
	info storage.DocInfo
	res  metric.Result
}

// analyzeCorpus runs the engine over every corpus document with a fixed
// worker pool. Documents are independent; a single document's failure aborts
// the run and is reported for that document.
func analyzeCorpus(handler *provider.DocHandler, workers int) ([]analyzed, error) {
	names := handler.Names()
	if workers < 1 {
		workers = 1
	}

	engine := metric.New(lexicon.Spanish())

	uiprogress.Start()
	bar := uiprogress.AddBar(len(names))
	bar.AppendCompleted()
	bar.PrependElapsed()
	defer uiprogress.Stop()

	jobs := make(chan int)
	results := make([]analyzed, len(names))
	errs := make([]error, len(names))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := range jobs {
				results[id], errs[id] = analyzeDoc(handler, engine, id)
				bar.Incr()
			}
		}()
	}

	for id := range names {
		jobs <- id
	}
	close(jobs)
	wg.Wait()

	for id, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("doc %s: %w", names[id], err)
		}
	}

	sort.Slice(results, func(i, j int) bool { return results[i].info.Title < results[j].info.Title })
	return results, nil
}

func analyzeDoc(handler *provider.DocHandler, engine *metric.Engine, id int) (analyzed, error) {
	doc, err := handler.Doc(id)
	if err != nil {
		return analyzed{}, err
	}

	res, err := engine.Analyze(doc)
	if err != nil {
		return analyzed{}, err
	}

	return analyzed{info: storage.DocInfo{Id: doc.Id, Title: doc.Title}, res: res}, nil
}

func writeAll(store storage.MetricWriter, results []analyzed) error {
	for _, a := range results {
		if err := store.Write(a.info, a.res); err != nil {
			return err
		}
	}
	return nil
}
