package metric

import sent "github.com/revelaction/tecla/sentence"

// wordClass computes the WRD* family: part-of-speech incidences and the
// pronoun person/number breakdown, all normalized by the word count.
func wordClass(p *profile) Result {
	var nouns, verbs, adjs, advs, pronouns int
	var prp [4][2]int // [person][0=singular 1=plural], person index 1..3

	for _, w := range p.words {
		switch w.Cat {
		case sent.Noun:
			nouns++
		case sent.Verb:
			verbs++
		case sent.Adj:
			adjs++
		case sent.Adv:
			advs++
		case sent.Pron:
			pronouns++
			person := w.Person()
			if person == 0 {
				continue
			}
			if w.Singular() {
				prp[person][0]++
			} else if w.Plural() {
				prp[person][1]++
			}
		}
	}

	wc := len(p.words)
	return Result{
		WRDNOUN:  incidence(nouns, wc),
		WRDVERB:  incidence(verbs, wc),
		WRDADJ:   incidence(adjs, wc),
		WRDADV:   incidence(advs, wc),
		WRDPRO:   incidence(pronouns, wc),
		WRDPRP1s: incidence(prp[1][0], wc),
		WRDPRP1p: incidence(prp[1][1], wc),
		WRDPRP2s: incidence(prp[2][0], wc),
		WRDPRP2p: incidence(prp[2][1], wc),
		WRDPRP3s: incidence(prp[3][0], wc),
		WRDPRP3p: incidence(prp[3][1], wc),
	}
}
