// Package syllable implements rule-based Spanish syllable segmentation.
// It is pure and deterministic; the engine only feeds it alphabetic words.
package syllable

import "strings"

// Inseparable onsets: the digraphs ch, ll, rr and the standard
// consonant-blend onsets. A cluster ending in one of these splits before it.
var inseparable = map[string]bool{
	"ch": true, "ll": true, "rr": true,
	"pl": true, "pr": true, "bl": true, "br": true,
	"cl": true, "cr": true, "fl": true, "fr": true,
	"gl": true, "gr": true, "tl": true, "tr": true,
	"dr": true,
}

// Count returns the number of syllables of a Spanish word. Words with no
// vowel count as one syllable.
func Count(word string) int {
	return len(Split(word))
}

// Split divides a Spanish word into its syllables. A syllable boundary is
// inserted between two vowels only when they do not form a diphthong or
// triphthong; consonant clusters attach to the following nucleus except for
// the part a Spanish onset cannot carry.
func Split(word string) []string {
	runes := []rune(strings.ToLower(word))
	nuclei := findNuclei(runes)
	if len(nuclei) == 0 {
		return []string{word}
	}

	orig := []rune(word)

	// A syllable spans from the first rune after the previous boundary up to
	// the boundary before the next nucleus.
	var syllables []string
	start := 0
	for i := 0; i < len(nuclei)-1; i++ {
		boundary := splitCluster(runes, nuclei[i].end, nuclei[i+1].start)
		syllables = append(syllables, string(orig[start:boundary]))
		start = boundary
	}
	syllables = append(syllables, string(orig[start:]))

	return syllables
}

type nucleus struct {
	start, end int // rune range, end exclusive
}

// findNuclei locates the vowel nuclei of the word. Within a run of vowels,
// adjacent vowels share a nucleus when they form a diphthong (strong+weak or
// weak+weak) or extend a weak+strong pair into a triphthong. Two strong
// vowels are a hiatus, as is any pairing with an accent-marked weak vowel.
func findNuclei(runes []rune) []nucleus {
	var nuclei []nucleus

	i := 0
	for i < len(runes) {
		if !isVowel(runes[i]) {
			i++
			continue
		}

		n := nucleus{start: i, end: i + 1}
		for n.end < len(runes) && isVowel(runes[n.end]) && joins(runes[n.start:n.end], runes[n.end]) {
			n.end++
		}
		nuclei = append(nuclei, n)
		i = n.end
	}

	return nuclei
}

func joins(current []rune, v rune) bool {
	if hiatusWeak(v) {
		return false
	}

	last := current[len(current)-1]
	if hiatusWeak(last) {
		return false
	}

	switch len(current) {
	case 1:
		// Diphthong: at least one of the pair must be a weak vowel.
		return weak(last) || weak(v)
	case 2:
		// Triphthong: weak + strong + weak.
		return weak(current[0]) && strong(current[1]) && weak(v)
	}
	return false
}

// splitCluster returns the syllable boundary inside the consonant cluster
// between two nuclei, as a rune index into the word.
func splitCluster(runes []rune, from, to int) int {
	switch to - from {
	case 0:
		return to
	case 1:
		return from
	}

	// An inseparable digraph or blend at the end of the cluster moves whole
	// to the next syllable; otherwise only the last consonant does.
	if inseparable[string(runes[to-2:to])] {
		return to - 2
	}
	return to - 1
}

func isVowel(r rune) bool {
	return strong(r) || weak(r) || hiatusWeak(r)
}

func strong(r rune) bool {
	switch r {
	case 'a', 'e', 'o', 'á', 'é', 'ó':
		return true
	}
	return false
}

func weak(r rune) bool {
	switch r {
	case 'i', 'u', 'ü':
		return true
	}
	return false
}

// hiatusWeak reports whether r is an accent-marked weak vowel, which breaks
// a would-be diphthong into a hiatus (pa-ís, ba-úl).
func hiatusWeak(r rune) bool {
	return r == 'í' || r == 'ú'
}
