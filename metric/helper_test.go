package metric

import (
	"math"
	"testing"

	sent "github.com/revelaction/tecla/sentence"
	"github.com/revelaction/tecla/syllable"
)

// tok is a compact token literal for building test documents.
type tok struct {
	text  string
	lemma string
	pos   string
	dep   string
	tag   string
	head  int
}

func sentenceOf(toks ...tok) sent.Sentence {
	s := sent.Sentence{}
	for _, t := range toks {
		s.Tokens = append(s.Tokens, sent.Token{
			Text:  t.text,
			Lemma: t.lemma,
			Pos:   t.pos,
			Dep:   t.dep,
			Tag:   t.tag,
			Head:  t.head,
		})
	}
	return s
}

func buildDoc(t *testing.T, paragraphs ...[]sent.Sentence) sent.Doc {
	t.Helper()

	doc := sent.Doc{Title: "test"}
	for _, p := range paragraphs {
		doc.Paragraphs = append(doc.Paragraphs, sent.Paragraph{Sentences: p})
	}

	built, err := sent.Build(doc, syllable.Count)
	if err != nil {
		t.Fatalf("failed to build doc: %v", err)
	}
	return built
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func checkIndex(t *testing.T, res Result, code string, want float64) {
	t.Helper()

	got, ok := res[code]
	if !ok {
		t.Fatalf("index %s missing", code)
	}
	if !near(got, want) {
		t.Errorf("%s = %v, expected %v", code, got, want)
	}
}

// catSleeps is "El gato duerme .": three word tokens, one punctuation.
func catSleeps() sent.Sentence {
	return sentenceOf(
		tok{text: "El", lemma: "el", pos: "DET", dep: "det", head: 1},
		tok{text: "gato", lemma: "gato", pos: "NOUN", dep: "nsubj", head: 2},
		tok{text: "duerme", lemma: "dormir", pos: "VERB", dep: "ROOT", head: 2},
		tok{text: ".", lemma: ".", pos: "PUNCT", dep: "punct", head: 2},
	)
}

// catEats is "El gato come .": repeats the noun of catSleeps.
func catEats() sent.Sentence {
	return sentenceOf(
		tok{text: "El", lemma: "el", pos: "DET", dep: "det", head: 1},
		tok{text: "gato", lemma: "gato", pos: "NOUN", dep: "nsubj", head: 2},
		tok{text: "come", lemma: "comer", pos: "VERB", dep: "ROOT", head: 2},
		tok{text: ".", lemma: ".", pos: "PUNCT", dep: "punct", head: 2},
	)
}

// houseShines is "La casa brilla .": no lexical repetition with the cat
// sentences.
func houseShines() sent.Sentence {
	return sentenceOf(
		tok{text: "La", lemma: "el", pos: "DET", dep: "det", head: 1},
		tok{text: "casa", lemma: "casa", pos: "NOUN", dep: "nsubj", head: 2},
		tok{text: "brilla", lemma: "brillar", pos: "VERB", dep: "ROOT", head: 2},
		tok{text: ".", lemma: ".", pos: "PUNCT", dep: "punct", head: 2},
	)
}
