package models

import "time"

// CachedDocument is the last raw XML fetched for one feed, keyed by feed name.
// At most one row exists per name; refresh replaces the row rather than
// updating it in place.
type CachedDocument struct {
	ID         uint      `gorm:"primarykey"`
	Name       string    `gorm:"uniqueIndex"`
	RawContent string    `gorm:"type:text"`
	FetchedAt  time.Time `gorm:"index"`
}
