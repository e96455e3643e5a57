package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unifeed/unifeed/cache"
	"github.com/unifeed/unifeed/global"
	"github.com/unifeed/unifeed/models"
	"gorm.io/gorm"
)

type feedInput struct {
	Name     string `json:"name" binding:"required"`
	URL      string `json:"url" binding:"required"`
	Category string `json:"category" binding:"required"`
}

// GetRawFeeds returns the registry rows themselves, not resolved entries.
func GetRawFeeds(c *gin.Context) {
	var sources []models.FeedSource
	err := global.DB.WithContext(c.Request.Context()).
		Preload("Category").
		Find(&sources).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sources)
}

func CreateFeed(c *gin.Context) {
	var input feedInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	source, err := createFeedSource(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	invalidateFeedResponseCache()
	c.JSON(http.StatusCreated, source)
}

func BatchCreateFeeds(c *gin.Context) {
	var inputs []feedInput
	if err := c.ShouldBindJSON(&inputs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created := make([]models.FeedSource, 0, len(inputs))
	for _, input := range inputs {
		source, err := createFeedSource(c.Request.Context(), input)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   err.Error(),
				"created": created,
			})
			return
		}
		created = append(created, *source)
	}

	invalidateFeedResponseCache()
	c.JSON(http.StatusCreated, created)
}

func DeleteFeed(c *gin.Context) {
	ctx := c.Request.Context()

	var source models.FeedSource
	err := global.DB.WithContext(ctx).
		Where("id = ?", c.Param("id")).
		First(&source).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "feed not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	if err := global.DB.WithContext(ctx).Delete(&source).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Drop the orphaned cache row; a failure here is harmless since the
	// eviction job will claim it within the retention window.
	_ = cache.NewStore(global.DB).DeleteByName(ctx, source.Name)

	invalidateFeedResponseCache()
	c.JSON(http.StatusOK, gin.H{"deleted": source.Name})
}

func createFeedSource(ctx context.Context, input feedInput) (*models.FeedSource, error) {
	category := models.Category{Name: input.Category}
	err := global.DB.WithContext(ctx).
		Where("name = ?", input.Category).
		FirstOrCreate(&category).Error
	if err != nil {
		return nil, err
	}

	source := models.FeedSource{
		Name:       input.Name,
		URL:        input.URL,
		CategoryID: category.ID,
		Category:   category,
	}
	if err := global.DB.WithContext(ctx).Create(&source).Error; err != nil {
		return nil, err
	}
	return &source, nil
}

// invalidateFeedResponseCache drops cached aggregate responses after a
// registry mutation. Async and best-effort, matching write-path latency over
// cache precision.
func invalidateFeedResponseCache() {
	go func() {
		ctx := context.Background()
		keys, err := global.RedisDB.Keys(ctx, feedCacheKeyPrefix+"*").Result()
		if err != nil || len(keys) == 0 {
			return
		}
		_ = global.RedisDB.Del(ctx, keys...).Err()
	}()
}
