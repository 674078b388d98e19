package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var nonDigit = regexp.MustCompile(`\D`)

// ndcWidth is the canonical NDC length after zero padding.
const ndcWidth = 11

// NormalizeNDC canonicalizes a product identifier to an 11-digit string.
// Whitespace (including non-breaking spaces) and every non-digit
// character are removed, then the result is left-padded with zeros.
// Empty input stays empty. Inputs with more than 11 digits are kept
// as-is, without truncation.
func NormalizeNDC(ndc string) string {
	if ndc == "" {
		return ""
	}
	s := strings.ReplaceAll(ndc, "\u00A0", "")
	s = strings.TrimSpace(s)
	s = nonDigit.ReplaceAllString(s, "")
	if s == "" {
		return ""
	}
	for len(s) < ndcWidth {
		s = "0" + s
	}
	return s
}

// CoerceQuantity converts a quantity cell to a number. Values that fail
// numeric parsing become 0; this is the documented policy, not an error.
func CoerceQuantity(value string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return v
}

// StationKey lowercases and trims a location/station name for matching.
func StationKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// MatchKey builds the composite key correlating the same logical order
// line across the draft and submitted tables. The NDC is expected to be
// normalized already.
func MatchKey(notes, name, ndc string) string {
	return StationKey(notes) + "|" + StationKey(name) + "|" + strings.TrimSpace(ndc)
}
