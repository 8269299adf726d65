package metric

import (
	"testing"

	"github.com/revelaction/tecla/lexicon"
	"github.com/revelaction/tecla/match"
	sent "github.com/revelaction/tecla/sentence"
)

func testScanner() *match.Scanner {
	return match.NewScanner(lexicon.Spanish())
}

func TestSyntaxPhrases(t *testing.T) {
	// "El gato negro come ."
	s := sentenceOf(
		tok{text: "El", lemma: "el", pos: "DET", dep: "det", head: 1},
		tok{text: "gato", lemma: "gato", pos: "NOUN", dep: "nsubj", head: 3},
		tok{text: "negro", lemma: "negro", pos: "ADJ", dep: "amod", head: 1},
		tok{text: "come", lemma: "comer", pos: "VERB", dep: "ROOT", head: 3},
		tok{text: ".", lemma: ".", pos: "PUNCT", dep: "punct", head: 3},
	)

	doc := buildDoc(t, []sent.Sentence{s})
	res := syntax(newProfile(doc), testScanner())

	// 4 word tokens, one noun phrase, one verb phrase.
	checkIndex(t, res, DRNP, 0.25)
	checkIndex(t, res, DRVP, 0.25)
	checkIndex(t, res, DRNEG, 0)

	// "gato" has one adjectival modifier.
	checkIndex(t, res, SYNNP, 1)

	// The root verb sits at index 3.
	checkIndex(t, res, SYNLE, 3)
}

func TestSyntaxAuxiliaryNotAPhrase(t *testing.T) {
	// "El gato ha comido .": one verb phrase, not two.
	s := sentenceOf(
		tok{text: "El", lemma: "el", pos: "DET", dep: "det", head: 1},
		tok{text: "gato", lemma: "gato", pos: "NOUN", dep: "nsubj", head: 3},
		tok{text: "ha", lemma: "haber", pos: "AUX", dep: "aux", head: 3},
		tok{text: "comido", lemma: "comer", pos: "VERB", dep: "ROOT", head: 3},
		tok{text: ".", lemma: ".", pos: "PUNCT", dep: "punct", head: 3},
	)

	doc := buildDoc(t, []sent.Sentence{s})
	res := syntax(newProfile(doc), testScanner())

	checkIndex(t, res, DRVP, 0.25)

	// The main verb of the sentence is the root.
	checkIndex(t, res, SYNLE, 3)
}

func TestSyntaxRootNotAVerb(t *testing.T) {
	// Copular clause: the root is an adjective, the first verb in surface
	// order is the main verb.
	s := sentenceOf(
		tok{text: "El", lemma: "el", pos: "DET", dep: "det", head: 1},
		tok{text: "gato", lemma: "gato", pos: "NOUN", dep: "nsubj", head: 3},
		tok{text: "es", lemma: "ser", pos: "AUX", dep: "cop", head: 3},
		tok{text: "negro", lemma: "negro", pos: "ADJ", dep: "ROOT", head: 3},
	)

	doc := buildDoc(t, []sent.Sentence{s})
	res := syntax(newProfile(doc), testScanner())

	checkIndex(t, res, SYNLE, 2)
}

func TestSyntaxVerblessSentence(t *testing.T) {
	// "Buenos días ." has no verb and contributes its full token length.
	s := sentenceOf(
		tok{text: "Buenos", lemma: "bueno", pos: "ADJ", dep: "amod", head: 1},
		tok{text: "días", lemma: "día", pos: "NOUN", dep: "ROOT", head: 1},
		tok{text: ".", lemma: ".", pos: "PUNCT", dep: "punct", head: 1},
	)

	doc := buildDoc(t, []sent.Sentence{s})
	res := syntax(newProfile(doc), testScanner())

	checkIndex(t, res, SYNLE, 3)
	checkIndex(t, res, DRVP, 0)
}

func TestSyntaxNoNounPhrases(t *testing.T) {
	s := sentenceOf(
		tok{text: "Llueve", lemma: "llover", pos: "VERB", dep: "ROOT", head: 0},
	)

	doc := buildDoc(t, []sent.Sentence{s})
	res := syntax(newProfile(doc), testScanner())

	checkIndex(t, res, SYNNP, 0)
	checkIndex(t, res, DRNP, 0)
}

func TestSyntaxNegations(t *testing.T) {
	// "El gato no come nunca ."
	s := sentenceOf(
		tok{text: "El", lemma: "el", pos: "DET", dep: "det", head: 1},
		tok{text: "gato", lemma: "gato", pos: "NOUN", dep: "nsubj", head: 3},
		tok{text: "no", lemma: "no", pos: "ADV", dep: "advmod", head: 3},
		tok{text: "come", lemma: "comer", pos: "VERB", dep: "ROOT", head: 3},
		tok{text: "nunca", lemma: "nunca", pos: "ADV", dep: "advmod", head: 3},
		tok{text: ".", lemma: ".", pos: "PUNCT", dep: "punct", head: 3},
	)

	doc := buildDoc(t, []sent.Sentence{s})
	res := syntax(newProfile(doc), testScanner())

	// 2 negations over 5 word tokens.
	checkIndex(t, res, DRNEG, 0.4)
}
