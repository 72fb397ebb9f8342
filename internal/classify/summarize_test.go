package classify

import (
	"strings"
	"testing"
)

func TestSummarize_Empty(t *testing.T) {
	if got := Summarize("", MaxSummaryChars); got != "" {
		t.Errorf("expected empty summary, got %q", got)
	}
}

func TestSummarize_FirstSentenceCut(t *testing.T) {
	got := Summarize("Hola. Esto es un test.", MaxSummaryChars)
	if got != "Hola." {
		t.Errorf("expected %q, got %q", "Hola.", got)
	}
}

func TestSummarize_ShortTextUnchanged(t *testing.T) {
	text := "Sin punto final"
	if got := Summarize(text, MaxSummaryChars); got != text {
		t.Errorf("expected %q, got %q", text, got)
	}
}

func TestSummarize_Truncation(t *testing.T) {
	text := strings.Repeat("a", 200)
	got := Summarize(text, MaxSummaryChars)

	runes := []rune(got)
	if len(runes) != MaxSummaryChars {
		t.Fatalf("expected %d runes, got %d", MaxSummaryChars, len(runes))
	}
	if string(runes[:MaxSummaryChars-1]) != strings.Repeat("a", MaxSummaryChars-1) {
		t.Errorf("expected first %d characters preserved", MaxSummaryChars-1)
	}
	if runes[MaxSummaryChars-1] != '…' {
		t.Errorf("expected ellipsis terminator, got %q", runes[MaxSummaryChars-1])
	}
}

func TestSummarize_PeriodBeyondBound(t *testing.T) {
	// The ". " shows up past the limit, so plain truncation applies.
	text := strings.Repeat("b", 12) + ". y el resto"
	got := Summarize(text, 10)
	if got != strings.Repeat("b", 9)+"…" {
		t.Errorf("unexpected summary %q", got)
	}
}

func TestSummarize_MultiByteSafe(t *testing.T) {
	text := strings.Repeat("ñ", 200)
	got := Summarize(text, MaxSummaryChars)
	if len([]rune(got)) != MaxSummaryChars {
		t.Errorf("expected %d runes, got %d", MaxSummaryChars, len([]rune(got)))
	}
	if !strings.HasPrefix(got, "ñññ") || !strings.HasSuffix(got, "…") {
		t.Errorf("unexpected summary %q", got)
	}
}

func TestSummarize_TitleBound(t *testing.T) {
	got := Summarize("Propuesta. Detalle largo que no entra en el título.", TitleChars)
	if got != "Propuesta." {
		t.Errorf("expected %q, got %q", "Propuesta.", got)
	}
}
