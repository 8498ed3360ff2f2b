package domain

import "strings"

// SearchKey derives the lowercase search key for a display field.
// The key is stored alongside the display text and must be recomputed in
// the same write whenever the text changes. Case folding only; diacritics,
// hyphens, and inner whitespace are preserved so the key stays a faithful
// lowercase mirror of what the user typed.
func SearchKey(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// SearchSentinel is the exclusive upper bound used for prefix range scans:
// searchKey >= q AND searchKey < q + SearchSentinel matches exactly the
// keys that start with q. U+FFFF sorts after every assigned code point.
const SearchSentinel = "￿"
