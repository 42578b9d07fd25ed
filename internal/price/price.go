// internal/price/price.go

// Package price recovers an asking price from the free text of an ad.
package price

import (
	"regexp"
	"strconv"
	"strings"
)

// negotiableMarkers flag ads priced "by agreement" in the site's languages;
// such ads carry no usable price no matter what numbers appear in the text.
var negotiableMarkers = []string{"vienošan", "vienosan", "договор"}

var (
	// A well-formed number, either space-grouped by thousands or ungrouped,
	// directly qualified by a currency marker. The leading boundary keeps a
	// preceding area or room figure ("120 m2") from fusing into the price.
	// Matches at any length: "9 500 €" is a real price.
	currencyRe = regexp.MustCompile(`(?i)(?:^|[^\d\p{L}])(\d{1,3}(?:\s\d{3})*|\d+)\s*(?:€|eur)`)

	// Fallback candidates: well-formed numbers of at least four digits,
	// with the same leading boundary.
	fallbackRe = regexp.MustCompile(`(?:^|[^\d\p{L}])(\d{1,3}(?:\s\d{3})+|\d{4,})`)
)

// Extractor turns free ad text into an optional integer price in whole euros.
type Extractor struct {
	// Floor is the minimum value accepted when no currency marker anchors
	// the match, so room counts, areas and years are not mistaken for a
	// price.
	Floor int
}

func New(floor int) *Extractor {
	return &Extractor{Floor: floor}
}

// Extract returns the recovered price and whether one was found. Absent is
// not zero: text with a negotiable marker, or with no plausible candidate,
// yields (0, false). Malformed input never panics.
func (e *Extractor) Extract(text string) (int, bool) {
	if text == "" {
		return 0, false
	}

	// ss.lv price blocks sometimes group thousands with non-breaking spaces.
	text = strings.ReplaceAll(text, " ", " ")

	lower := strings.ToLower(text)
	for _, marker := range negotiableMarkers {
		if strings.Contains(lower, marker) {
			return 0, false
		}
	}

	if m := currencyRe.FindStringSubmatch(text); m != nil {
		if v, err := strconv.Atoi(stripSpaces(m[1])); err == nil && v > 0 {
			return v, true
		}
	}

	// No currency-qualified number: take the largest plausible digit run.
	best := 0
	for _, m := range fallbackRe.FindAllStringSubmatch(text, -1) {
		v, err := strconv.Atoi(stripSpaces(m[1]))
		if err != nil || v < e.Floor {
			continue
		}
		if v > best {
			best = v
		}
	}
	if best <= 0 {
		return 0, false
	}
	return best, true
}

func stripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}
