package metric

// descriptive computes the DES* family: counts and the mean/stddev of
// sentences per paragraph, words per sentence, and syllables/letters per
// word. Word-level aggregates run over all word tokens of the document, not
// grouped by sentence.
func descriptive(p *profile) Result {
	res := Result{
		DESPC: float64(len(p.doc.Paragraphs)),
		DESSC: float64(len(p.sentences)),
		DESWC: float64(len(p.words)),
	}

	var perParagraph []float64
	for _, para := range p.doc.Paragraphs {
		perParagraph = append(perParagraph, float64(len(para.Sentences)))
	}
	res[DESPL] = mean(perParagraph)
	res[DESPLd] = stddev(perParagraph)

	var perSentence []float64
	for _, s := range p.sentences {
		perSentence = append(perSentence, float64(s.WordCount()))
	}
	res[DESSL] = mean(perSentence)
	res[DESSLd] = stddev(perSentence)

	var syllables, letters []float64
	for _, w := range p.words {
		syllables = append(syllables, float64(w.Syllables))
		letters = append(letters, float64(len([]rune(w.Text))))
	}
	res[DESWLsy] = mean(syllables)
	res[DESWLsyd] = stddev(syllables)
	res[DESWLlt] = mean(letters)
	res[DESWLltd] = stddev(letters)

	return res
}

// lexicalDiversity computes the type/token ratios over all words and over
// content words, comparing normalized surface forms.
func lexicalDiversity(p *profile) Result {
	types := make(map[string]bool)
	contentTypes := make(map[string]bool)
	contentCount := 0

	for _, w := range p.words {
		types[w.Lower()] = true
		if w.Content() {
			contentTypes[w.Lower()] = true
			contentCount++
		}
	}

	return Result{
		LDTTRa:  incidence(len(types), len(p.words)),
		LDTTRcw: incidence(len(contentTypes), contentCount),
	}
}
