package formatting

// Snippet returns at most limit runes of s, appending an ellipsis when
// content was cut. Used to carry a bounded excerpt of a raw provider reply
// as the citation of a fallback classification result.
func Snippet(s string, limit int) string {
	if limit <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	return string(runes[:limit]) + "..."
}
