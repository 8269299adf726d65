package metric

// readability computes RDFHGL, the Fernández-Huerta grade level:
//
//	206.84 - 0.60*P - 1.02*F
//
// with P the mean syllables per 100 words and F the mean words per
// sentence. It reads only the descriptive aggregates.
func readability(desc Result) Result {
	p := desc[DESWLsy] * 100
	f := desc[DESSL]

	return Result{
		RDFHGL: 206.84 - 0.60*p - 1.02*f,
	}
}
