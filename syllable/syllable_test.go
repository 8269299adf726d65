package syllable

import (
	"strings"
	"testing"
)

func TestCount(t *testing.T) {
	words := []struct {
		word string
		want int
	}{
		{"casa", 2},
		{"aire", 2},
		{"tren", 1},
		{"murciélago", 4},
		{"país", 2},
		{"baúl", 2},
		{"leer", 2},
		{"buey", 1},
		{"perro", 2},
		{"calle", 2},
		{"mucho", 2},
		{"obstruir", 2},
		{"a", 1},
		{"y", 1},
	}

	for _, w := range words {
		if got := Count(w.word); got != w.want {
			t.Errorf("Count(%q) = %d, expected %d", w.word, got, w.want)
		}
	}
}

func TestSplit(t *testing.T) {
	words := []struct {
		word string
		want string
	}{
		{"casa", "ca-sa"},
		{"murciélago", "mur-cié-la-go"},
		{"país", "pa-ís"},
		{"perro", "pe-rro"},
		{"transporte", "trans-por-te"},
		{"hablar", "ha-blar"},
		{"construir", "cons-truir"},
	}

	for _, w := range words {
		got := strings.Join(Split(w.word), "-")
		if got != w.want {
			t.Errorf("Split(%q) = %q, expected %q", w.word, got, w.want)
		}
	}
}

func TestSplitNoVowel(t *testing.T) {
	got := Split("pss")
	if len(got) != 1 || got[0] != "pss" {
		t.Fatalf("expected the whole word as one syllable, got %v", got)
	}
}

func TestSplitPreservesCase(t *testing.T) {
	got := Split("Casa")
	if len(got) != 2 || got[0] != "Ca" || got[1] != "sa" {
		t.Fatalf("expected [Ca sa], got %v", got)
	}
}
