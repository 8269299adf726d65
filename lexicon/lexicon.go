// Package lexicon holds the fixed connective and negation vocabulary used by
// the scanner. A Lexicon is built once at startup and is read-only; the same
// value is shared across all documents analyzed by a process.
package lexicon

import (
	"sort"
	"strings"
)

// Category of discourse connective.
type Category int

const (
	Causal Category = iota
	Logical
	Adversative
	Temporal
	Additive
)

// Priority is the tie-break order for patterns of equal length starting at
// the same position: the first listed category wins. The source material
// defines no precedence, so the order is fixed here as an explicit constant.
var Priority = [...]Category{Causal, Logical, Adversative, Temporal, Additive}

func (c Category) String() string {
	switch c {
	case Causal:
		return "causal"
	case Logical:
		return "logical"
	case Adversative:
		return "adversative"
	case Temporal:
		return "temporal"
	case Additive:
		return "additive"
	}
	return "unknown"
}

// Pattern is an ordered sequence of normalized words forming one connective
// phrase.
type Pattern []string

// entry is a pattern bound to its category, pre-sorted for scanning.
type entry struct {
	cat   Category
	words Pattern
}

// Lexicon maps each connective category to its phrase patterns, indexed by
// first word for the scanner.
type Lexicon struct {
	byFirst map[string][]entry
}

// New builds a lexicon from raw phrase lists. Phrases are normalized to
// lower case and split on spaces. Patterns sharing a starting word are
// ordered longest first, then by category priority, so the scanner can take
// the first match.
func New(phrases map[Category][]string) *Lexicon {
	lex := &Lexicon{byFirst: make(map[string][]entry)}

	for _, cat := range Priority {
		for _, phrase := range phrases[cat] {
			words := Pattern(strings.Fields(strings.ToLower(phrase)))
			if len(words) == 0 {
				continue
			}
			lex.byFirst[words[0]] = append(lex.byFirst[words[0]], entry{cat: cat, words: words})
		}
	}

	for first := range lex.byFirst {
		entries := lex.byFirst[first]
		sort.SliceStable(entries, func(i, j int) bool {
			if len(entries[i].words) != len(entries[j].words) {
				return len(entries[i].words) > len(entries[j].words)
			}
			return entries[i].cat < entries[j].cat
		})
	}

	return lex
}

// Match finds the longest pattern matching words starting at position at.
// words must already be normalized to lower case. It returns the category
// and pattern length of the winning match.
func (l *Lexicon) Match(words []string, at int) (Category, int, bool) {
	entries := l.byFirst[words[at]]

CANDIDATE:
	for _, e := range entries {
		if at+len(e.words) > len(words) {
			continue
		}
		for i, w := range e.words {
			if words[at+i] != w {
				continue CANDIDATE
			}
		}
		return e.cat, len(e.words), true
	}

	return 0, 0, false
}

// Negation is the fixed single-word negation set, independent of the
// connective lists.
var Negation = map[string]bool{
	"no":      true,
	"nunca":   true,
	"jamás":   true,
	"tampoco": true,
}

// Spanish returns the lexicon of Spanish connectives used by the metric
// engine.
func Spanish() *Lexicon {
	return New(map[Category][]string{
		Causal: {
			"por", "porque", "a causa de", "puesto que", "con motivo de",
			"pues", "ya que", "conque", "luego", "por consiguiente",
			"así que", "en consecuencia", "de manera que", "tan",
			"tanto que", "por lo tanto", "de modo que",
		},
		Logical: {
			"y", "o",
		},
		Adversative: {
			"pero", "sino", "no obstante", "sino que", "sin embargo",
			"pero sí", "aunque", "menos", "solo", "excepto", "salvo",
			"más que", "en cambio", "ahora bien", "más bien",
		},
		Temporal: {
			"actualmente", "ahora", "después", "más tarde", "más adelante",
			"a continuación", "antes", "mientras", "érase una vez",
			"hace mucho tiempo", "tiempo antes", "finalmente", "inicialmente",
			"ya", "simultáneamente", "previamente", "anteriormente",
			"posteriormente", "al mismo tiempo", "durante",
			"por la mañana", "por la tarde", "por la noche",
		},
		Additive: {
			"asimismo", "igualmente", "de igual modo", "de igual manera",
			"de igual forma", "del mismo modo", "de la misma manera",
			"de la misma forma", "en primer lugar", "en segundo lugar",
			"en tercer lugar", "en último lugar", "por su parte",
			"por otro lado", "además", "encima", "es más", "por añadidura",
			"incluso", "inclusive", "para colmo",
		},
	})
}
