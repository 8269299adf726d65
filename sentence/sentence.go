package sentence

import (
	"strings"
	"unicode"
)

// Category is the coarse part-of-speech bucket that every calculator filters
// on. The provider's fine-grained tags are folded into these six buckets at
// build time.
type Category int

const (
	Other Category = iota
	Noun
	Verb
	Adj
	Adv
	Pron
)

// Token represents a word of a sentence, with POS and metadata as emitted by
// the annotation provider (spacy, stanza).
type Token struct {
	// The index of the word in the sentence, starting at 0.
	Index int `json:"index"`

	// Head is the sentence-local index of the syntactic head. A token whose
	// head is itself is the sentence root.
	Head int `json:"head"`

	// The unmodified word
	Text string `json:"text"`

	// The lemma of the word
	Lemma string `json:"lemma"`

	// Coarse POS tag (UPOS: NOUN, PROPN, VERB, AUX, ADJ, ...)
	Pos string `json:"pos"`

	// Dependency relation label (nsubj, amod, aux, ...)
	Dep string `json:"dep"`

	// A string containing detailed POS data, e.g.
	// PRON__Number=Sing|Person=1|PronType=Prs
	Tag string `json:"tag"`

	// Derived at build time, not part of the wire format.
	Cat       Category `json:"-"`
	Word      bool     `json:"-"`
	Syllables int      `json:"-"`
}

// Lower returns the normalized surface form used for overlap and type/token
// comparisons.
func (t Token) Lower() string {
	return strings.ToLower(t.Text)
}

// LowerLemma returns the normalized lemma form.
func (t Token) LowerLemma() string {
	return strings.ToLower(t.Lemma)
}

// Content reports whether the token is a content word: noun, verb, adjective
// or adverb.
func (t Token) Content() bool {
	switch t.Cat {
	case Noun, Verb, Adj, Adv:
		return true
	}
	return false
}

// Personal reports whether the token is a personal pronoun per the
// provider's morphology string.
func (t Token) Personal() bool {
	return strings.Contains(t.Tag, "PronType=Prs")
}

// Person returns the grammatical person (1, 2 or 3) of a pronoun token, or 0
// when the provider did not annotate one.
func (t Token) Person() int {
	switch {
	case strings.Contains(t.Tag, "Person=1"):
		return 1
	case strings.Contains(t.Tag, "Person=2"):
		return 2
	case strings.Contains(t.Tag, "Person=3"):
		return 3
	}
	return 0
}

// Singular reports whether the provider marked the token as singular.
func (t Token) Singular() bool {
	return strings.Contains(t.Tag, "Number=Sing")
}

// Plural reports whether the provider marked the token as plural.
func (t Token) Plural() bool {
	return strings.Contains(t.Tag, "Number=Plur")
}

// Sentence is an ordered sequence of tokens plus the derived dependency
// tree. Tokens reference their head by sentence-local index; Root is the
// index of the tree root.
type Sentence struct {
	Id     int     `json:"id"`
	Tokens []Token `json:"tokens"`

	Root int `json:"-"`
}

// Words returns the tokens that consist only of alphabetic characters.
func (s Sentence) Words() []Token {
	var words []Token
	for _, t := range s.Tokens {
		if t.Word {
			words = append(words, t)
		}
	}
	return words
}

// WordCount returns the number of alphabetic tokens.
func (s Sentence) WordCount() int {
	n := 0
	for _, t := range s.Tokens {
		if t.Word {
			n++
		}
	}
	return n
}

// Dependents returns the indices of the direct dependents of the token at
// head, in surface order. The root token is never a dependent of itself.
func (s Sentence) Dependents(head int) []int {
	var deps []int
	for _, t := range s.Tokens {
		if t.Head == head && t.Index != head {
			deps = append(deps, t.Index)
		}
	}
	return deps
}

// Paragraph is an ordered sequence of sentences, bounded by a double-newline
// delimiter in the source text.
type Paragraph struct {
	Sentences []Sentence `json:"sentences"`
}

// Doc is an annotated document: ordered paragraphs of ordered sentences.
type Doc struct {
	Id    int    `json:"id"`
	Title string `json:"title"`

	Paragraphs []Paragraph `json:"paragraphs"`
}

// Sentences returns the document's sentences flattened in source order.
func (d Doc) Sentences() []Sentence {
	var sentences []Sentence
	for _, p := range d.Paragraphs {
		sentences = append(sentences, p.Sentences...)
	}
	return sentences
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func category(pos string) Category {
	switch pos {
	case "NOUN", "PROPN":
		return Noun
	case "VERB", "AUX":
		return Verb
	case "ADJ":
		return Adj
	case "ADV":
		return Adv
	case "PRON":
		return Pron
	}
	return Other
}
