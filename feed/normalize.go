package feed

import "strings"

type dialect int

const (
	dialectRSS dialect = iota
	dialectAtom
)

// detectDialect sniffs the root element with a substring check. Cheap on
// purpose; assumes well-formed, non-adversarial input.
func detectDialect(raw string) (dialect, error) {
	switch {
	case strings.Contains(raw, "<rss"):
		return dialectRSS, nil
	case strings.Contains(raw, "<feed"):
		return dialectAtom, nil
	}
	return 0, ErrUnknownSyntax
}

// Normalize projects a raw RSS 2.0 or Atom document into unified entries,
// preserving source order.
func Normalize(raw string) ([]Entry, error) {
	d, err := detectDialect(raw)
	if err != nil {
		return nil, err
	}
	switch d {
	case dialectRSS:
		return parseRSS(raw)
	default:
		return parseAtom(raw)
	}
}
