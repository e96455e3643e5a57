package feed

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"
)

// RSS 2.0 dates carry a fixed GMT suffix; anything else is a parse failure.
const rssTimeLayout = "Mon, 02 Jan 2006 15:04:05 GMT"

type rssEnvelope struct {
	XMLName xml.Name `xml:"rss"`
	Channel struct {
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
}

type rssItem struct {
	Title   string `xml:"title"`
	Link    string `xml:"link"`
	PubDate string `xml:"pubDate"`
}

func parseRSS(raw string) ([]Entry, error) {
	var env rssEnvelope
	if err := xml.Unmarshal([]byte(raw), &env); err != nil {
		return nil, fmt.Errorf("unmarshaling rss document: %w", err)
	}

	entries := make([]Entry, 0, len(env.Channel.Items))
	for _, item := range env.Channel.Items {
		published, err := time.Parse(rssTimeLayout, strings.TrimSpace(item.PubDate))
		if err != nil {
			return nil, fmt.Errorf("parsing rss pubDate %q: %w", item.PubDate, err)
		}
		entries = append(entries, Entry{
			Title:       strings.TrimSpace(item.Title),
			URL:         strings.TrimSpace(item.Link),
			PublishedAt: published.UTC(),
		})
	}
	return entries, nil
}
