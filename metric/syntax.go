package metric

import (
	"strings"

	"github.com/revelaction/tecla/match"
	sent "github.com/revelaction/tecla/sentence"
)

// syntax computes the syntactic pattern density (DRNP, DRVP, DRNEG) and
// complexity (SYNNP, SYNLE) indices by walking each sentence's dependency
// tree.
func syntax(p *profile, scanner *match.Scanner) Result {
	var nounPhrases, verbPhrases, negations int
	var modifiers []float64
	var beforeMainVerb []float64

	for _, s := range p.sentences {
		for _, t := range s.Tokens {
			switch {
			case t.Cat == sent.Noun:
				// A noun phrase is a noun head plus its direct adjectival
				// modifier dependents.
				nounPhrases++
				mods := 0
				for _, dep := range s.Dependents(t.Index) {
					if strings.HasPrefix(s.Tokens[dep].Dep, "amod") {
						mods++
					}
				}
				modifiers = append(modifiers, float64(mods))

			case t.Cat == sent.Verb && !auxiliary(t):
				// A verb phrase is a non-auxiliary verb plus its verbal
				// group; auxiliaries attach to their head and are not
				// counted as phrases of their own.
				verbPhrases++
			}
		}

		negations += len(scanner.Negations(s))
		beforeMainVerb = append(beforeMainVerb, float64(mainVerb(s)))
	}

	wc := len(p.words)
	res := Result{
		DRNP:  incidence(nounPhrases, wc),
		DRVP:  incidence(verbPhrases, wc),
		DRNEG: incidence(negations, wc),
		SYNLE: mean(beforeMainVerb),
	}

	// Defined as 0, not NaN, when the document has no noun phrases.
	res[SYNNP] = mean(modifiers)

	return res
}

// auxiliary reports whether the token is an auxiliary dependent of another
// verb (aux, aux:pass, ...).
func auxiliary(t sent.Token) bool {
	return strings.HasPrefix(t.Dep, "aux")
}

// mainVerb returns the number of tokens preceding the sentence's main verb:
// the dependency root when it is a verb, otherwise the first verb in surface
// order. A sentence without a verb contributes its full length.
func mainVerb(s sent.Sentence) int {
	if s.Tokens[s.Root].Cat == sent.Verb {
		return s.Root
	}

	for _, t := range s.Tokens {
		if t.Cat == sent.Verb {
			return t.Index
		}
	}

	return len(s.Tokens)
}
