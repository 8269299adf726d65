package metric

import (
	"testing"

	sent "github.com/revelaction/tecla/sentence"
)

func TestWordClassIncidences(t *testing.T) {
	// "Yo como manzanas rojas rápidamente ." plus a third person pronoun.
	s := sentenceOf(
		tok{text: "Yo", lemma: "yo", pos: "PRON", dep: "nsubj", tag: "PRON__Number=Sing|Person=1|PronType=Prs", head: 1},
		tok{text: "como", lemma: "comer", pos: "VERB", dep: "ROOT", head: 1},
		tok{text: "manzanas", lemma: "manzana", pos: "NOUN", dep: "obj", head: 1},
		tok{text: "rojas", lemma: "rojo", pos: "ADJ", dep: "amod", head: 2},
		tok{text: "rápidamente", lemma: "rápidamente", pos: "ADV", dep: "advmod", head: 1},
		tok{text: "ellos", lemma: "él", pos: "PRON", dep: "obl", tag: "PRON__Number=Plur|Person=3|PronType=Prs", head: 1},
		tok{text: ".", lemma: ".", pos: "PUNCT", dep: "punct", head: 1},
	)

	doc := buildDoc(t, []sent.Sentence{s})
	res := wordClass(newProfile(doc))

	// 6 word tokens.
	checkIndex(t, res, WRDNOUN, 1.0/6.0)
	checkIndex(t, res, WRDVERB, 1.0/6.0)
	checkIndex(t, res, WRDADJ, 1.0/6.0)
	checkIndex(t, res, WRDADV, 1.0/6.0)
	checkIndex(t, res, WRDPRO, 2.0/6.0)

	checkIndex(t, res, WRDPRP1s, 1.0/6.0)
	checkIndex(t, res, WRDPRP3p, 1.0/6.0)
	checkIndex(t, res, WRDPRP1p, 0)
	checkIndex(t, res, WRDPRP2s, 0)
	checkIndex(t, res, WRDPRP2p, 0)
	checkIndex(t, res, WRDPRP3s, 0)
}

func TestWordClassAuxCountsAsVerb(t *testing.T) {
	// "ha comido": the auxiliary folds into the verb category.
	s := sentenceOf(
		tok{text: "ha", lemma: "haber", pos: "AUX", dep: "aux", head: 1},
		tok{text: "comido", lemma: "comer", pos: "VERB", dep: "ROOT", head: 1},
	)

	doc := buildDoc(t, []sent.Sentence{s})
	res := wordClass(newProfile(doc))

	checkIndex(t, res, WRDVERB, 1)
}

func TestWordClassPronounWithoutPerson(t *testing.T) {
	// A relative pronoun counts as a pronoun but in no person bucket.
	s := sentenceOf(
		tok{text: "que", lemma: "que", pos: "PRON", dep: "nsubj", tag: "PRON__PronType=Rel", head: 1},
		tok{text: "ladra", lemma: "ladrar", pos: "VERB", dep: "ROOT", head: 1},
	)

	doc := buildDoc(t, []sent.Sentence{s})
	res := wordClass(newProfile(doc))

	checkIndex(t, res, WRDPRO, 0.5)
	for _, code := range []string{WRDPRP1s, WRDPRP1p, WRDPRP2s, WRDPRP2p, WRDPRP3s, WRDPRP3p} {
		checkIndex(t, res, code, 0)
	}
}
