package models

import (
	"gorm.io/gorm"
)

// Category groups feed sources for presentation.
type Category struct {
	gorm.Model
	Name string `gorm:"uniqueIndex" json:"name" binding:"required"`
}

// FeedSource defines an RSS/Atom feed registered for aggregation.
// Name doubles as the document-cache key, so it must stay unique.
type FeedSource struct {
	gorm.Model
	Name       string   `gorm:"uniqueIndex" json:"name" binding:"required"`
	URL        string   `gorm:"uniqueIndex" json:"url" binding:"required"`
	CategoryID uint     `json:"-"`
	Category   Category `json:"category"`
}
