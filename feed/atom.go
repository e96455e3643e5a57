package feed

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"
)

const atomHTMLLinkType = "text/html"

type atomEnvelope struct {
	XMLName xml.Name    `xml:"feed"`
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	Title     string     `xml:"title"`
	Links     []atomLink `xml:"link"`
	Published string     `xml:"published"`
	Updated   string     `xml:"updated"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Type string `xml:"type,attr"`
}

func parseAtom(raw string) ([]Entry, error) {
	var env atomEnvelope
	if err := xml.Unmarshal([]byte(raw), &env); err != nil {
		return nil, fmt.Errorf("unmarshaling atom document: %w", err)
	}

	entries := make([]Entry, 0, len(env.Entries))
	for _, entry := range env.Entries {
		href, ok := htmlLink(entry.Links)
		if !ok {
			return nil, fmt.Errorf("atom entry %q has no %s link", entry.Title, atomHTMLLinkType)
		}
		entries = append(entries, Entry{
			Title:       strings.TrimSpace(entry.Title),
			URL:         href,
			PublishedAt: atomTimestamp(entry),
		})
	}
	return entries, nil
}

func htmlLink(links []atomLink) (string, bool) {
	for _, l := range links {
		if l.Type == atomHTMLLinkType {
			return strings.TrimSpace(l.Href), true
		}
	}
	return "", false
}

// atomTimestamp prefers published over updated. An entry where neither
// parses dates to the Unix epoch instead of failing the whole feed.
func atomTimestamp(entry atomEntry) time.Time {
	for _, value := range []string{entry.Published, entry.Updated} {
		if value == "" {
			continue
		}
		if t, err := time.Parse(time.RFC3339, strings.TrimSpace(value)); err == nil {
			return t.UTC()
		}
	}
	return time.Unix(0, 0).UTC()
}
