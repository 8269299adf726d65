package metric

import (
	"github.com/revelaction/tecla/lexicon"
	"github.com/revelaction/tecla/match"
)

// connective computes the CNC* family: per-category connective incidences
// plus the combined CNCAll, from the lexicon scanner's sentence spans.
func connective(p *profile, scanner *match.Scanner) Result {
	var counts [5]int
	total := 0

	for _, s := range p.sentences {
		for _, span := range scanner.Scan(s) {
			counts[span.Category]++
			total++
		}
	}

	wc := len(p.words)
	return Result{
		CNCCaus:  incidence(counts[lexicon.Causal], wc),
		CNCLogic: incidence(counts[lexicon.Logical], wc),
		CNCADC:   incidence(counts[lexicon.Adversative], wc),
		CNCTemp:  incidence(counts[lexicon.Temporal], wc),
		CNCAdd:   incidence(counts[lexicon.Additive], wc),
		CNCAll:   incidence(total, wc),
	}
}
