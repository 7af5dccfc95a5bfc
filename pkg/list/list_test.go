package list

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestList_AppendPreservesOrder(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
	}{
		{name: "empty", tokens: []string{}},
		{name: "single", tokens: []string{"hello"}},
		{name: "many", tokens: []string{"the", "quick", "brown", "fox"}},
		{name: "duplicates kept", tokens: []string{"a", "a", "b", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New()
			for _, tok := range tt.tokens {
				l.Append(tok)
			}
			if l.Len() != len(tt.tokens) {
				t.Errorf("Len() = %d, want %d", l.Len(), len(tt.tokens))
			}
			if diff := cmp.Diff(tt.tokens, l.Strings()); diff != "" {
				t.Errorf("Strings() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestList_ZeroValue(t *testing.T) {
	var l List
	if !l.Empty() {
		t.Error("zero value should be empty")
	}
	l.Append("x")
	if l.Len() != 1 {
		t.Errorf("Len() = %d, want 1", l.Len())
	}
	if got, ok := l.First(); !ok || got != "x" {
		t.Errorf("First() = %q, %v, want %q, true", got, ok, "x")
	}
}

func TestList_FromStrings(t *testing.T) {
	l := FromStrings([]string{"a", "b", "c"})
	if diff := cmp.Diff([]string{"a", "b", "c"}, l.Strings()); diff != "" {
		t.Errorf("FromStrings mismatch (-want +got):\n%s", diff)
	}
}

func TestList_EachStopsEarly(t *testing.T) {
	l := FromStrings([]string{"a", "b", "c"})
	var seen []string
	l.Each(func(token string) bool {
		seen = append(seen, token)
		return len(seen) < 2
	})
	if diff := cmp.Diff([]string{"a", "b"}, seen); diff != "" {
		t.Errorf("Each early stop mismatch (-want +got):\n%s", diff)
	}
}

func TestList_NilReceiver(t *testing.T) {
	var l *List
	if l.Len() != 0 {
		t.Errorf("nil Len() = %d, want 0", l.Len())
	}
	if _, ok := l.First(); ok {
		t.Error("nil First() ok = true, want false")
	}
	l.Each(func(string) bool {
		t.Error("Each on nil list should not call fn")
		return false
	})
}
