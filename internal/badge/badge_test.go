package badge

import (
	"fmt"
	"strings"
	"testing"
)

func TestRenderEscapesReservedChars(t *testing.T) {
	out := Render("AT&T <buys> B&O", []string{"1 < 2 && 3 > 2"}, DefaultAccent, "2026-08-29")

	for _, raw := range []string{"<buys>", "AT&T", "1 < 2", "&& ", "> 2"} {
		if strings.Contains(out, raw) {
			t.Errorf("raw %q leaked into rendered markup", raw)
		}
	}
	for _, escaped := range []string{"&lt;buys&gt;", "AT&amp;T", "1 &lt; 2 &amp;&amp; 3 &gt; 2"} {
		if !strings.Contains(out, escaped) {
			t.Errorf("expected escaped form %q in output", escaped)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	lines := []string{"first line", "second line"}
	a := Render("Joke of the Day", lines, "#2f81f7", "2026-08-29")
	b := Render("Joke of the Day", lines, "#2f81f7", "2026-08-29")
	if a != b {
		t.Error("identical inputs produced different output")
	}
}

func TestRenderHeightGrowsWithLines(t *testing.T) {
	one := Render("t", []string{"a"}, DefaultAccent, "d")
	three := Render("t", []string{"a", "b", "c"}, DefaultAccent, "d")

	wantOne := fmt.Sprintf(`height="%d"`, baseHeight+lineHeight)
	wantThree := fmt.Sprintf(`height="%d"`, baseHeight+3*lineHeight)
	if !strings.Contains(one, wantOne) {
		t.Errorf("expected %s in single-line badge", wantOne)
	}
	if !strings.Contains(three, wantThree) {
		t.Errorf("expected %s in three-line badge", wantThree)
	}
}

func TestThemeTechnology(t *testing.T) {
	got := Theme("technology")
	if got == DefaultAccent {
		t.Error("technology must resolve to its own accent, not the default")
	}
	if got != categoryAccents["technology"] {
		t.Errorf("expected technology accent, got %s", got)
	}
}

func TestThemeUnknownFallsBack(t *testing.T) {
	if got := Theme("astrology"); got != DefaultAccent {
		t.Errorf("expected default accent for unknown category, got %s", got)
	}
	if got := Theme(""); got != DefaultAccent {
		t.Errorf("expected default accent for empty category, got %s", got)
	}
}

func TestThemeCaseInsensitive(t *testing.T) {
	if Theme("Technology") != Theme("technology") {
		t.Error("category lookup should be case-insensitive")
	}
}
