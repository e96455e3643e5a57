// Package feed resolves registered RSS/Atom feeds into a unified entry list,
// serving cached documents while fresh and refetching once stale.
package feed

import "time"

// Entry is one normalized feed item.
type Entry struct {
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"published_at"`
}

// Feed is the unified view of one resolved feed, returned to the client and
// never persisted.
type Feed struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Entries  []Entry `json:"entries"`
}

// Descriptor identifies one registered feed. Name is the cache key.
type Descriptor struct {
	Name     string
	Category string
	URL      string
}
