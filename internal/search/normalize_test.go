package search

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"Matemática", "matematica"},
		{"ÁLGEBRA", "algebra"},
		{"Ação e Reação", "acao e reacao"},
		{"Übung", "ubung"},
		{"plain ascii", "plain ascii"},
		{"  spaced  ", "  spaced  "},
		{"कुमार", "\u0915\u0941\u092e\u093e\u0930"},
		{"ΟΔΟΣ", "οδος"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, s := range []string{"Química Orgânica", "façade", "ÑANDÚ"} {
		once := Normalize(s)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q then %q", s, once, twice)
		}
	}
}

func TestNormalizeKeepsMarksOutsideLatinDiacritics(t *testing.T) {
	tests := []struct {
		query, text string
		want        bool
	}{
		{"कम", "कुमार", false},
		{"कुम", "कुमार", true},
		{"ação", "ACAO", true},
		{"οδος", "ΟΔΟΣ", true},
	}
	for _, tt := range tests {
		got := strings.Contains(Normalize(tt.text), Normalize(tt.query))
		if got != tt.want {
			t.Errorf("Normalize(%q) contains Normalize(%q) = %v, want %v", tt.text, tt.query, got, tt.want)
		}
	}
}
