// Package match scans sentences for connective phrases and negation words.
package match

import (
	"github.com/revelaction/tecla/lexicon"
	sent "github.com/revelaction/tecla/sentence"
)

// Span is a matched connective: a category and the token range it covers.
// End is exclusive.
type Span struct {
	Category lexicon.Category
	Start    int
	End      int
}

// Scanner matches a sentence's tokens against a shared read-only lexicon.
// A Scanner is safe for concurrent use.
type Scanner struct {
	lex *lexicon.Lexicon
}

func NewScanner(lex *lexicon.Lexicon) *Scanner {
	return &Scanner{lex: lex}
}

// Scan performs a greedy longest-match pass left to right over the
// sentence. A match consumes its tokens atomically: scanning resumes after
// the matched span, so matches never overlap. Equal-length candidates at the
// same position are resolved by lexicon category priority.
func (s *Scanner) Scan(sentence sent.Sentence) []Span {
	words := make([]string, len(sentence.Tokens))
	for i, t := range sentence.Tokens {
		words[i] = t.Lower()
	}

	var spans []Span
	i := 0
	for i < len(words) {
		cat, length, ok := s.lex.Match(words, i)
		if !ok {
			i++
			continue
		}

		spans = append(spans, Span{Category: cat, Start: i, End: i + length})
		i += length
	}

	return spans
}

// Negations returns the indices of the sentence's negation tokens, matched
// case-insensitively against the fixed negation set.
func (s *Scanner) Negations(sentence sent.Sentence) []int {
	var indices []int
	for _, t := range sentence.Tokens {
		if lexicon.Negation[t.Lower()] {
			indices = append(indices, t.Index)
		}
	}
	return indices
}
