package metric

import sent "github.com/revelaction/tecla/sentence"

// cohesionSets are the normalized word sets one sentence exposes to the
// overlap predicates, computed once per sentence.
type cohesionSets struct {
	tokens           []sent.Token
	nouns            map[string]bool
	nounLemmas       map[string]bool
	contentWords     map[string]bool
	contentLemmas    map[string]bool
	pronouns         map[string]bool
	personalPronouns map[string]bool
	contentCount     int
}

func newCohesionSets(s sent.Sentence) *cohesionSets {
	cs := &cohesionSets{
		nouns:            map[string]bool{},
		nounLemmas:       map[string]bool{},
		contentWords:     map[string]bool{},
		contentLemmas:    map[string]bool{},
		pronouns:         map[string]bool{},
		personalPronouns: map[string]bool{},
	}

	for _, t := range s.Words() {
		cs.tokens = append(cs.tokens, t)
		if t.Cat == sent.Noun {
			cs.nouns[t.Lower()] = true
			cs.nounLemmas[t.LowerLemma()] = true
		}
		if t.Content() {
			cs.contentWords[t.Lower()] = true
			cs.contentLemmas[t.LowerLemma()] = true
			cs.contentCount++
		}
		if t.Cat == sent.Pron {
			cs.pronouns[t.Lower()] = true
		}
		if t.Personal() {
			cs.personalPronouns[t.Lower()] = true
		}
	}

	return cs
}

// nounOverlap: the sentences share an identical noun surface form.
func nounOverlap(prev, cur *cohesionSets) float64 {
	for _, t := range cur.tokens {
		if t.Cat == sent.Noun && prev.nouns[t.Lower()] {
			return 1
		}
	}
	return 0
}

// argumentOverlap: the sentences share a noun lemma or a personal pronoun.
func argumentOverlap(prev, cur *cohesionSets) float64 {
	for _, t := range cur.tokens {
		if t.Cat == sent.Noun && prev.nounLemmas[t.LowerLemma()] {
			return 1
		}
		if t.Personal() && prev.personalPronouns[t.Lower()] {
			return 1
		}
	}
	return 0
}

// stemOverlap: a noun of one sentence shares its lemma with a content word
// of the other.
func stemOverlap(prev, cur *cohesionSets) float64 {
	for _, t := range cur.tokens {
		if t.Cat == sent.Noun && prev.contentLemmas[t.LowerLemma()] {
			return 1
		}
	}
	return 0
}

// contentWordOverlap is proportional: shared content-word surface forms
// relative to the combined content-word count of the pair. It is the only
// overlap kind whose aggregates carry a standard deviation.
func contentWordOverlap(prev, cur *cohesionSets) float64 {
	total := prev.contentCount + cur.contentCount
	if total == 0 {
		return 0
	}

	matches := 0
	for _, t := range cur.tokens {
		if t.Content() && prev.contentWords[t.Lower()] {
			matches += 2
		}
	}
	return float64(matches) / float64(total)
}

// anaphorOverlap: the sentences share a pronoun surface form.
func anaphorOverlap(prev, cur *cohesionSets) float64 {
	for _, t := range cur.tokens {
		if t.Cat == sent.Pron && prev.pronouns[t.Lower()] {
			return 1
		}
	}
	return 0
}

// cohesion computes the CRF* family. Each overlap kind is aggregated over
// adjacent sentence pairs (contiguous) and over every ordered pair i<j
// (all). Documents with fewer than two sentences yield 0 for every index.
func cohesion(p *profile) Result {
	res := Result{
		CRFNO1: 0, CRFNOa: 0,
		CRFAO1: 0, CRFAOa: 0,
		CRFSO1: 0, CRFSOa: 0,
		CRFCWO1: 0, CRFCWO1d: 0, CRFCWOa: 0, CRFCWOad: 0,
		CRFANP1: 0, CRFANPa: 0,
	}

	if len(p.sentences) < 2 {
		return res
	}

	sets := make([]*cohesionSets, len(p.sentences))
	for i, s := range p.sentences {
		sets[i] = newCohesionSets(s)
	}

	overlaps := []struct {
		fn         func(prev, cur *cohesionSets) float64
		contiguous string
		all        string
	}{
		{nounOverlap, CRFNO1, CRFNOa},
		{argumentOverlap, CRFAO1, CRFAOa},
		{stemOverlap, CRFSO1, CRFSOa},
		{contentWordOverlap, CRFCWO1, CRFCWOa},
		{anaphorOverlap, CRFANP1, CRFANPa},
	}

	for _, o := range overlaps {
		var adjacent, all []float64
		for i := 0; i < len(sets); i++ {
			for j := i + 1; j < len(sets); j++ {
				v := o.fn(sets[i], sets[j])
				all = append(all, v)
				if j == i+1 {
					adjacent = append(adjacent, v)
				}
			}
		}

		res[o.contiguous] = mean(adjacent)
		res[o.all] = mean(all)
		if o.contiguous == CRFCWO1 {
			res[CRFCWO1d] = stddev(adjacent)
			res[CRFCWOad] = stddev(all)
		}
	}

	return res
}
