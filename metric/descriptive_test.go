package metric

import (
	"math"
	"testing"

	sent "github.com/revelaction/tecla/sentence"
)

func TestDescriptiveCounts(t *testing.T) {
	doc := buildDoc(t,
		[]sent.Sentence{catSleeps(), catEats()},
		[]sent.Sentence{houseShines()},
	)

	res := descriptive(newProfile(doc))

	checkIndex(t, res, DESPC, 2)
	checkIndex(t, res, DESSC, 3)

	// Punctuation tokens are not words.
	checkIndex(t, res, DESWC, 9)
}

func TestDescriptiveLengths(t *testing.T) {
	doc := buildDoc(t,
		[]sent.Sentence{catSleeps(), catEats()},
		[]sent.Sentence{houseShines()},
	)

	res := descriptive(newProfile(doc))

	// Paragraphs of 2 and 1 sentences.
	checkIndex(t, res, DESPL, 1.5)
	checkIndex(t, res, DESPLd, math.Sqrt(0.5))

	// Every sentence has 3 word tokens.
	checkIndex(t, res, DESSL, 3)
	checkIndex(t, res, DESSLd, 0)
}

func TestDescriptiveWordLengths(t *testing.T) {
	doc := buildDoc(t, []sent.Sentence{catSleeps()})

	res := descriptive(newProfile(doc))

	// El=1, gato=2, duerme=2 syllables.
	checkIndex(t, res, DESWLsy, 5.0/3.0)

	// El=2, gato=4, duerme=6 letters.
	checkIndex(t, res, DESWLlt, 4)
	checkIndex(t, res, DESWLltd, 2)
}

func TestDescriptiveWordCountSumsSentences(t *testing.T) {
	doc := buildDoc(t,
		[]sent.Sentence{catSleeps(), catEats()},
		[]sent.Sentence{houseShines()},
	)

	res := descriptive(newProfile(doc))

	sum := 0
	for _, s := range doc.Sentences() {
		sum += s.WordCount()
	}
	if res[DESWC] != float64(sum) {
		t.Errorf("DESWC = %v, expected sum of sentence word counts %d", res[DESWC], sum)
	}
}

func TestLexicalDiversity(t *testing.T) {
	doc := buildDoc(t, []sent.Sentence{catSleeps(), catEats()})

	res := lexicalDiversity(newProfile(doc))

	// Word tokens: el gato duerme el gato come, types: el gato duerme come.
	checkIndex(t, res, LDTTRa, 4.0/6.0)

	// Content tokens: gato duerme gato come, types: gato duerme come.
	checkIndex(t, res, LDTTRcw, 3.0/4.0)
}

func TestLexicalDiversityAllDistinct(t *testing.T) {
	doc := buildDoc(t, []sent.Sentence{catSleeps()})

	res := lexicalDiversity(newProfile(doc))

	checkIndex(t, res, LDTTRa, 1)
	checkIndex(t, res, LDTTRcw, 1)
}
