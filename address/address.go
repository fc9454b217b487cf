// Package address exposes libpostal's statistical address parser through a
// typed Go API. Parsing splits a free-form postal address into labeled
// tokens ("house_number", "road", "postcode", ...), lowercased and
// whitespace-normalized by the native parser.
package address

import "github.com/kodemartin/postal/libpostal"

// Options carries the optional parser hints. Empty fields fall back to the
// native parser's own defaults, resolved at call time.
type Options struct {
	// Language is an ISO language code hint, e.g. "en".
	Language string
	// Country is an ISO country code hint, e.g. "gb".
	Country string
}

// LabeledToken is one (label, token) pair of a parse result. Label is drawn
// from libpostal's fixed vocabulary; Token is the matching substring of the
// input.
type LabeledToken struct {
	Label string
	Token string
}

// Parse analyzes an address into labeled tokens with default hints. The
// pairs keep the parser's left-to-right emission order. A degenerate input
// may legitimately produce an empty (non-nil error free) result.
//
// Requires an active lifecycle token covering libpostal.Parser.
func Parse(text string) ([]LabeledToken, error) {
	return ParseWithOptions(text, Options{})
}

// ParseWithOptions is Parse with explicit language/country hints.
func ParseWithOptions(text string, o Options) ([]LabeledToken, error) {
	labels, tokens, err := libpostal.ParseAddress(text, libpostal.ParserOptions{
		Language: o.Language,
		Country:  o.Country,
	})
	if err != nil {
		return nil, err
	}

	pairs := make([]LabeledToken, len(labels))
	for i := range labels {
		pairs[i] = LabeledToken{Label: labels[i], Token: tokens[i]}
	}
	return pairs, nil
}
