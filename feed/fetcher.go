package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/unifeed/unifeed/models"
)

// DefaultMaxEntries caps a resolved feed when the caller does not say.
const DefaultMaxEntries = 5

// DefaultFreshness is the max age at which a cached document is served
// without refetching.
const DefaultFreshness = 10 * time.Minute

const maxDocumentSize = 2 << 20 // 2MB upstream response cap

// Store is the slice of the document cache the resolver needs.
type Store interface {
	Get(ctx context.Context, name string) (*models.CachedDocument, error)
	Put(ctx context.Context, name, rawContent string) error
	Replace(ctx context.Context, name, rawContent string) error
}

// Resolver turns one feed descriptor into a unified feed, consulting the
// document cache before going to the network.
type Resolver struct {
	store     Store
	client    *http.Client
	freshness time.Duration
	now       func() time.Time
}

// NewResolver builds a resolver. A nil client gets a 10-second timeout; a
// non-positive freshness falls back to DefaultFreshness.
func NewResolver(store Store, client *http.Client, freshness time.Duration) *Resolver {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	if freshness <= 0 {
		freshness = DefaultFreshness
	}
	return &Resolver{
		store:     store,
		client:    client,
		freshness: freshness,
		now:       time.Now,
	}
}

// Resolve produces the unified feed for one descriptor: cache lookup,
// freshness decision, network fetch if stale or missing, normalization,
// recency filter and entry cap. Errors are typed; none are retried here.
func (r *Resolver) Resolve(ctx context.Context, d Descriptor, window Window, maxEntries int) (*Feed, error) {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}

	doc, err := r.store.Get(ctx, d.Name)
	if err != nil {
		return nil, &FetchError{Kind: ErrorCache, Feed: d.Name, Err: err}
	}

	var raw string
	if doc != nil && r.now().Sub(doc.FetchedAt) < r.freshness {
		raw = doc.RawContent
	} else {
		raw, err = r.fetch(ctx, d.URL)
		if err != nil {
			return nil, &FetchError{Kind: ErrorNetwork, Feed: d.Name, Err: err}
		}
		if doc != nil {
			err = r.store.Replace(ctx, d.Name, raw)
		} else {
			err = r.store.Put(ctx, d.Name, raw)
		}
		if err != nil {
			return nil, &FetchError{Kind: ErrorCache, Feed: d.Name, Err: err}
		}
	}

	entries, err := Normalize(raw)
	if err != nil {
		return nil, &FetchError{Kind: ErrorParse, Feed: d.Name, Err: err}
	}

	cutoff := r.now().Add(-window.Duration())
	kept := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.PublishedAt.Before(cutoff) {
			continue
		}
		kept = append(kept, e)
		if len(kept) == maxEntries {
			break
		}
	}

	return &Feed{Name: d.Name, Category: d.Category, Entries: kept}, nil
}

func (r *Resolver) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("upstream returned %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return "", err
	}
	return string(data), nil
}
