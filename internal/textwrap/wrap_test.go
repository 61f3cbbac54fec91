package textwrap

import (
	"strings"
	"testing"
)

func TestWrapRoundTrip(t *testing.T) {
	inputs := []string{
		"why did the chicken cross the road",
		"a",
		"several    spaced     words   collapse",
		"exactly ten chars here plus a few more trailing words to force wrapping",
	}

	for _, in := range inputs {
		lines := Wrap(in, 20)
		got := strings.Join(lines, " ")
		want := strings.Join(strings.Fields(in), " ")
		if got != want {
			t.Errorf("round trip failed for %q:\n got %q\nwant %q", in, got, want)
		}
	}
}

func TestWrapWidth(t *testing.T) {
	lines := Wrap("the quick brown fox jumps over the lazy dog", 15)
	for _, line := range lines {
		if len(line) > 15 {
			t.Errorf("line %q exceeds width 15 (len %d)", line, len(line))
		}
	}
	if len(lines) < 2 {
		t.Errorf("expected multiple lines, got %v", lines)
	}
}

func TestWrapLongWord(t *testing.T) {
	lines := Wrap("ok supercalifragilisticexpialidocious ok", 10)

	found := false
	for _, line := range lines {
		if line == "supercalifragilisticexpialidocious" {
			found = true
		}
	}
	if !found {
		t.Errorf("long word should sit alone untruncated, got %v", lines)
	}
}

func TestWrapEmpty(t *testing.T) {
	if got := Wrap("", 20); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
	if got := Wrap("   \n\t ", 20); got != nil {
		t.Errorf("expected nil for whitespace input, got %v", got)
	}
}

func TestWrapSingleWordFits(t *testing.T) {
	lines := Wrap("hello", 20)
	if len(lines) != 1 || lines[0] != "hello" {
		t.Errorf("expected [hello], got %v", lines)
	}
}
