package sentence

import (
	"errors"
	"fmt"
)

// ErrMalformedInput marks an annotation that is structurally invalid: zero
// sentences after dropping empty paragraphs, a head reference outside the
// sentence, or a sentence without exactly one root.
var ErrMalformedInput = errors.New("malformed annotation input")

// Build normalizes a provider document into the model the calculators read.
// Empty paragraphs and empty sentences are dropped; every surviving token
// gets its coarse category, word flag and syllable count (via syllables, for
// word tokens only). Token and sentence order is preserved.
func Build(doc Doc, syllables func(string) int) (Doc, error) {
	out := Doc{Id: doc.Id, Title: doc.Title}

	sentID := 0
	for _, para := range doc.Paragraphs {
		var p Paragraph
		for _, s := range para.Sentences {
			if len(s.Tokens) == 0 {
				continue
			}

			built, err := buildSentence(s, sentID, syllables)
			if err != nil {
				return Doc{}, err
			}
			p.Sentences = append(p.Sentences, built)
			sentID++
		}

		if len(p.Sentences) == 0 {
			continue
		}
		out.Paragraphs = append(out.Paragraphs, p)
	}

	if len(out.Paragraphs) == 0 {
		return Doc{}, fmt.Errorf("%w: document has no sentences", ErrMalformedInput)
	}

	return out, nil
}

func buildSentence(s Sentence, id int, syllables func(string) int) (Sentence, error) {
	built := Sentence{Id: id, Tokens: make([]Token, len(s.Tokens)), Root: -1}

	for i, t := range s.Tokens {
		if t.Head < 0 || t.Head >= len(s.Tokens) {
			return Sentence{}, fmt.Errorf("%w: sentence %d token %d head %d out of range", ErrMalformedInput, id, i, t.Head)
		}

		t.Index = i
		t.Cat = category(t.Pos)
		t.Word = isAlpha(t.Text)
		if t.Word {
			t.Syllables = syllables(t.Text)
		}

		if t.Head == i {
			if built.Root >= 0 {
				return Sentence{}, fmt.Errorf("%w: sentence %d has more than one root", ErrMalformedInput, id)
			}
			built.Root = i
		}

		built.Tokens[i] = t
	}

	if built.Root < 0 {
		return Sentence{}, fmt.Errorf("%w: sentence %d has no root", ErrMalformedInput, id)
	}

	return built, nil
}
