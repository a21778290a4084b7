package model

// FormatResult is the outcome of formatting one text: either the formatted
// text or a rejection. A rejection is never confused with an empty text.
type FormatResult struct {
	Text     string
	Rejected bool
	Reason   string
}

// Formatted wraps a successfully formatted text.
func Formatted(text string) FormatResult {
	return FormatResult{Text: text}
}

// Rejected reports that the formatter could not handle the text.
func Rejected(reason string) FormatResult {
	return FormatResult{Rejected: true, Reason: reason}
}
