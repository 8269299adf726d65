package metric

import "math"

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stddev is the sample (Bessel-corrected) standard deviation. Degenerate
// groups of fewer than two values yield 0.
func stddev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}

	m := mean(values)
	sum := 0.0
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)-1))
}

// incidence is count normalized by the word denominator. Raw ratio, no
// per-1000 scaling. Empty denominators resolve to 0, never an error.
func incidence(count, words int) float64 {
	if words == 0 {
		return 0
	}
	return float64(count) / float64(words)
}
