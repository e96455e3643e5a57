package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/unifeed/unifeed/cache"
	"github.com/unifeed/unifeed/config"
	"github.com/unifeed/unifeed/feed"
	"github.com/unifeed/unifeed/global"
	"github.com/unifeed/unifeed/logger"
	"github.com/unifeed/unifeed/models"
	"gorm.io/gorm"
)

const feedCacheKeyPrefix = "feeds:"

func newResolver() *feed.Resolver {
	return feed.NewResolver(
		cache.NewStore(global.DB),
		&http.Client{Timeout: config.AppConfig.FetchTimeout()},
		config.AppConfig.Freshness(),
	)
}

func listDescriptors(c *gin.Context) ([]feed.Descriptor, error) {
	var sources []models.FeedSource
	err := global.DB.WithContext(c.Request.Context()).
		Preload("Category").
		Find(&sources).Error
	if err != nil {
		return nil, err
	}

	descriptors := make([]feed.Descriptor, 0, len(sources))
	for _, s := range sources {
		descriptors = append(descriptors, feed.Descriptor{
			Name:     s.Name,
			Category: s.Category.Name,
			URL:      s.URL,
		})
	}
	return descriptors, nil
}

func resolveParams(c *gin.Context) (feed.Window, int, bool) {
	window, err := feed.ParseWindow(c.Query("window"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", 0, false
	}

	maxEntries := config.AppConfig.Feeds.DefaultMaxEntries
	if raw := c.Query("max_entries"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "max_entries must be a positive integer"})
			return "", 0, false
		}
		maxEntries = n
	}
	return window, maxEntries, true
}

// GetFeeds resolves every registered feed concurrently and returns the
// successful subset. Always 200, even when every feed failed.
func GetFeeds(c *gin.Context) {
	window, maxEntries, ok := resolveParams(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	key := feedCacheKeyPrefix + string(window) + ":" + strconv.Itoa(maxEntries)

	if cached, err := global.RedisDB.Get(ctx, key).Result(); err == nil {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
		return
	} else if !errors.Is(err, redis.Nil) {
		logger.L.Warnw("feed response cache read failed", "error", err)
	}

	descriptors, err := listDescriptors(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	feeds := newResolver().ResolveAll(ctx, descriptors, window, maxEntries)

	payload, err := json.Marshal(feeds)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := global.RedisDB.Set(ctx, key, payload, config.AppConfig.ResponseCacheTTL()).Err(); err != nil {
		logger.L.Warnw("feed response cache write failed", "error", err)
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}

// GetFeedByName resolves a single registered feed and surfaces its error
// class, unlike the aggregate endpoint which swallows per-feed failures.
func GetFeedByName(c *gin.Context) {
	window, maxEntries, ok := resolveParams(c)
	if !ok {
		return
	}

	var source models.FeedSource
	err := global.DB.WithContext(c.Request.Context()).
		Preload("Category").
		Where("name = ?", c.Param("name")).
		First(&source).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "feed not registered"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	descriptor := feed.Descriptor{
		Name:     source.Name,
		Category: source.Category.Name,
		URL:      source.URL,
	}

	resolved, err := newResolver().Resolve(c.Request.Context(), descriptor, window, maxEntries)
	if err != nil {
		status := http.StatusInternalServerError
		if kind, ok := feed.KindOf(err); ok {
			switch kind {
			case feed.ErrorNetwork:
				status = http.StatusBadGateway
			case feed.ErrorParse:
				status = http.StatusBadRequest
			}
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resolved)
}
