package classify

// Summary length bounds, in runes.
const (
	// MaxSummaryChars caps a card's preview text.
	MaxSummaryChars = 160

	// TitleChars caps an auto-derived card title.
	TitleChars = 40
)

// Summarize derives a short preview from text, bounded by maxChars runes.
// It prefers the first sentence: if ". " occurs before the bound, the text
// is cut through that period. Otherwise text within the bound is returned
// unchanged, and longer text is truncated to maxChars-1 runes plus an
// ellipsis so the result is exactly maxChars runes.
func Summarize(text string, maxChars int) string {
	if text == "" {
		return ""
	}

	r := []rune(text)
	for i := 0; i+1 < len(r); i++ {
		if r[i] == '.' && r[i+1] == ' ' {
			if i < maxChars {
				return string(r[:i+1])
			}
			break
		}
	}

	if len(r) <= maxChars {
		return text
	}
	return string(r[:maxChars-1]) + "…"
}
