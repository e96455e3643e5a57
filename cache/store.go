// Package cache persists the last raw document fetched for each feed,
// keyed by feed name, so fresh content is served without hitting upstream.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/unifeed/unifeed/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Error is a storage fault in the document cache. A missing row is not an
// Error; Get reports absence with a nil document.
type Error struct {
	Op   string
	Name string
	Err  error
}

func (e *Error) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("cache %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("cache %s %q: %v", e.Op, e.Name, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Store is the gorm-backed document cache.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Get returns the cached document for name, or nil when none exists.
func (s *Store) Get(ctx context.Context, name string) (*models.CachedDocument, error) {
	var doc models.CachedDocument
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, &Error{Op: "get", Name: name, Err: err}
	}
	return &doc, nil
}

// Put inserts a new row for name stamped with the current time. It does not
// check for an existing row; callers refreshing an entry use Replace (or
// DeleteByName first) so at most one row per name survives.
func (s *Store) Put(ctx context.Context, name, rawContent string) error {
	doc := models.CachedDocument{
		Name:       name,
		RawContent: rawContent,
		FetchedAt:  time.Now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&doc).Error; err != nil {
		return &Error{Op: "put", Name: name, Err: err}
	}
	return nil
}

// Replace refreshes the row for name with new content and a new timestamp.
// It is an upsert on the name key, so a concurrent refresh of the same feed
// cannot leave two rows behind.
func (s *Store) Replace(ctx context.Context, name, rawContent string) error {
	doc := models.CachedDocument{
		Name:       name,
		RawContent: rawContent,
		FetchedAt:  time.Now().UTC(),
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"raw_content", "fetched_at"}),
	}).Create(&doc).Error
	if err != nil {
		return &Error{Op: "replace", Name: name, Err: err}
	}
	return nil
}

// DeleteByName removes the row for one feed name. Deleting a missing row is
// a no-op.
func (s *Store) DeleteByName(ctx context.Context, name string) error {
	err := s.db.WithContext(ctx).
		Where("name = ?", name).
		Delete(&models.CachedDocument{}).Error
	if err != nil {
		return &Error{Op: "delete", Name: name, Err: err}
	}
	return nil
}

// EvictOlderThan deletes every row whose FetchedAt is older than now minus
// retention. Safe to call on an empty cache.
func (s *Store) EvictOlderThan(ctx context.Context, retention time.Duration) error {
	cutoff := time.Now().UTC().Add(-retention)
	err := s.db.WithContext(ctx).
		Where("fetched_at < ?", cutoff).
		Delete(&models.CachedDocument{}).Error
	if err != nil {
		return &Error{Op: "evict", Err: err}
	}
	return nil
}
