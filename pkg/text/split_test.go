package text

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitter_Split(t *testing.T) {
	tests := []struct {
		name       string
		delimiters string
		input      string
		want       []string
	}{
		{
			name:  "empty input yields empty sequence",
			input: "",
			want:  []string{},
		},
		{
			name:  "only whitespace yields empty sequence",
			input: "   \t\n  ",
			want:  []string{},
		},
		{
			name:  "simple words",
			input: "the quick brown fox",
			want:  []string{"the", "quick", "brown", "fox"},
		},
		{
			name:  "runs of internal whitespace",
			input: "a   b",
			want:  []string{"a", "b"},
		},
		{
			name:  "leading and trailing whitespace",
			input: "  hello world  ",
			want:  []string{"hello", "world"},
		},
		{
			name:  "mixed whitespace kinds",
			input: "one\ttwo\nthree four",
			want:  []string{"one", "two", "three", "four"},
		},
		{
			name:  "punctuation stays attached to tokens",
			input: "hello,   world!",
			want:  []string{"hello,", "world!"},
		},
		{
			name:       "custom delimiter set",
			delimiters: ",;",
			input:      ";a,,b;c,",
			want:       []string{"a", "b", "c"},
		},
		{
			name:       "custom delimiters keep spaces in tokens",
			delimiters: ",",
			input:      "a b,c d",
			want:       []string{"a b", "c d"},
		},
		{
			name:  "multibyte runes survive splitting",
			input: "héllo wörld 日本語",
			want:  []string{"héllo", "wörld", "日本語"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Splitter{Delimiters: tt.delimiters}
			got := s.Split(tt.input)
			if diff := cmp.Diff(tt.want, got.Strings()); diff != "" {
				t.Errorf("Split(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestSplitter_NoEmptyTokens(t *testing.T) {
	inputs := []string{"", " ", "  a  ", "\t\t", "a  b   c", " leading", "trailing "}
	s := DefaultSplitter()
	for _, in := range inputs {
		s.Split(in).Each(func(token string) bool {
			if token == "" {
				t.Errorf("Split(%q) produced an empty token", in)
			}
			return true
		})
	}
}
