// Package metric computes the 48 Coh-Metrix style indices over an annotated
// Spanish document.
package metric

import (
	"errors"
	"fmt"
	"sync"

	"github.com/revelaction/tecla/lexicon"
	"github.com/revelaction/tecla/match"
	sent "github.com/revelaction/tecla/sentence"
)

// ErrInvariantViolation marks an internal inconsistency, such as a
// calculator failing to produce one of its indices. It is fatal for the
// affected document.
var ErrInvariantViolation = errors.New("invariant violation")

// profile is the read-only view of a document that every calculator
// consumes: the flattened sentences and word tokens, computed once.
type profile struct {
	doc       sent.Doc
	sentences []sent.Sentence
	words     []sent.Token
}

func newProfile(doc sent.Doc) *profile {
	p := &profile{doc: doc, sentences: doc.Sentences()}
	for _, s := range p.sentences {
		p.words = append(p.words, s.Words()...)
	}
	return p
}

// Engine computes all indices for one document per Analyze call. The lexicon
// is shared and read-only, so a single Engine may analyze documents from
// multiple goroutines.
type Engine struct {
	scanner *match.Scanner
}

func New(lex *lexicon.Lexicon) *Engine {
	return &Engine{scanner: match.NewScanner(lex)}
}

// Analyze computes the complete result mapping for the document. The
// calculator families run concurrently; each writes a disjoint set of keys
// which are merged after the barrier join. Either all 48 indices are
// returned or an error is.
func (e *Engine) Analyze(doc sent.Doc) (Result, error) {
	if len(doc.Paragraphs) == 0 {
		return nil, fmt.Errorf("%w: document has no paragraphs", sent.ErrMalformedInput)
	}

	p := newProfile(doc)

	// Readability is a closed-form function of descriptive aggregates, so
	// the descriptive family runs first; everything else is independent.
	desc := descriptive(p)

	calculators := []func() Result{
		func() Result { return lexicalDiversity(p) },
		func() Result { return wordClass(p) },
		func() Result { return syntax(p, e.scanner) },
		func() Result { return connective(p, e.scanner) },
		func() Result { return cohesion(p) },
		func() Result { return readability(desc) },
	}

	partials := make([]Result, len(calculators))
	var wg sync.WaitGroup
	for i, calc := range calculators {
		wg.Add(1)
		go func(i int, calc func() Result) {
			defer wg.Done()
			partials[i] = calc()
		}(i, calc)
	}
	wg.Wait()

	result := make(Result, len(Codes))
	for code, value := range desc {
		result[code] = value
	}
	for _, partial := range partials {
		for code, value := range partial {
			result[code] = value
		}
	}

	for _, code := range Codes {
		if _, ok := result[code]; !ok {
			return nil, fmt.Errorf("%w: index %s was not computed", ErrInvariantViolation, code)
		}
	}
	if len(result) != len(Codes) {
		return nil, fmt.Errorf("%w: %d indices computed, want %d", ErrInvariantViolation, len(result), len(Codes))
	}

	return result, nil
}
