// Package query implements the interactive index-inspection REPL.
package query

import (
	"fmt"
	"sort"
	"strings"

	"github.com/revelaction/tecla/metric"
	"github.com/revelaction/tecla/render"

	"github.com/c-bata/go-prompt"
)

const completionThreshold = 2

// Handler runs a REPL over computed results: typing an index code prints
// its value for every document, typing a document title prints the full
// result table.
type Handler struct {
	Results  map[string]metric.Result
	Renderer render.Renderer
}

func NewHandler(results map[string]metric.Result, r render.Renderer) *Handler {
	return &Handler{
		Results:  results,
		Renderer: r,
	}
}

func (h *Handler) Run() error {
	fmt.Println("🔑 type an index code or a document title, `quit` to exit")

	titles := make([]string, 0, len(h.Results))
	for title := range h.Results {
		titles = append(titles, title)
	}
	sort.Strings(titles)

	history := []string{}

	for {
		in := prompt.Input("      🔖 ", h.completer(titles),
			prompt.OptionTitle("tecla query"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
		)

		in = strings.TrimSpace(in)
		switch in {
		case "":
			continue
		case "quit", "exit":
			return nil
		}

		history = append(history, in)

		if err := h.print(titles, in); err != nil {
			fmt.Println(err)
		}
	}
}

func (h *Handler) print(titles []string, in string) error {
	if isCode(in) {
		for _, title := range titles {
			fmt.Printf("%-40s %12.4f\n", title, h.Results[title][in])
		}
		return nil
	}

	for _, title := range titles {
		if strings.Contains(title, in) {
			return h.Renderer.Render(title, h.Results[title])
		}
	}

	return fmt.Errorf("no index code or document matching %q", in)
}

func (h *Handler) completer(titles []string) prompt.Completer {
	return func(d prompt.Document) []prompt.Suggest {
		word := d.GetWordBeforeCursor()
		if len(word) < completionThreshold {
			return nil
		}

		var suggestions []prompt.Suggest
		for _, code := range metric.Codes {
			suggestions = append(suggestions, prompt.Suggest{Text: code})
		}
		for _, title := range titles {
			suggestions = append(suggestions, prompt.Suggest{Text: title})
		}

		return prompt.FilterHasPrefix(suggestions, word, true)
	}
}

func isCode(in string) bool {
	for _, code := range metric.Codes {
		if code == in {
			return true
		}
	}
	return false
}
