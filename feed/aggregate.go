package feed

import (
	"context"
	"sync"

	"github.com/unifeed/unifeed/logger"
)

// ResolveAll resolves every descriptor concurrently and merges the feeds
// that succeeded. A failed feed is logged and dropped; it never aborts or
// delays the rest. Output order is whatever the joins produce.
func (r *Resolver) ResolveAll(ctx context.Context, descriptors []Descriptor, window Window, maxEntries int) []Feed {
	var (
		mu    sync.Mutex
		wg    sync.WaitGroup
		feeds = make([]Feed, 0, len(descriptors))
	)

	for _, d := range descriptors {
		wg.Add(1)
		go func(d Descriptor) {
			defer wg.Done()
			f, err := r.Resolve(ctx, d, window, maxEntries)
			if err != nil {
				logger.L.Warnw("failed to resolve feed", "feed", d.Name, "error", err)
				return
			}
			mu.Lock()
			feeds = append(feeds, *f)
			mu.Unlock()
		}(d)
	}

	wg.Wait()
	return feeds
}
