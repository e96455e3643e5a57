package cache

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unifeed/unifeed/models"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) (*Store, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// one in-memory database per test, not one per pooled connection
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.CachedDocument{}))
	return NewStore(db), db
}

func countRows(t *testing.T, db *gorm.DB, name string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.CachedDocument{}).Where("name = ?", name).Count(&n).Error)
	return n
}

func TestPutGetRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "hn", "<rss>payload</rss>"))

	doc, err := store.Get(ctx, "hn")
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, "hn", doc.Name)
	assert.Equal(t, "<rss>payload</rss>", doc.RawContent)
	assert.WithinDuration(t, time.Now().UTC(), doc.FetchedAt, 5*time.Second)
}

func TestGetAbsentIsNotAnError(t *testing.T) {
	store, _ := newTestStore(t)

	doc, err := store.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestReplaceKeepsOneRowPerName(t *testing.T) {
	store, db := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "hn", "old"))
	require.NoError(t, store.Replace(ctx, "hn", "new"))

	assert.Equal(t, int64(1), countRows(t, db, "hn"))

	doc, err := store.Get(ctx, "hn")
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, "new", doc.RawContent)
}

func TestReplaceInsertsWhenAbsent(t *testing.T) {
	store, db := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Replace(ctx, "hn", "content"))
	assert.Equal(t, int64(1), countRows(t, db, "hn"))
}

func TestDeleteByName(t *testing.T) {
	store, db := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "hn", "content"))
	require.NoError(t, store.Put(ctx, "lobsters", "content"))

	require.NoError(t, store.DeleteByName(ctx, "hn"))

	assert.Equal(t, int64(0), countRows(t, db, "hn"))
	assert.Equal(t, int64(1), countRows(t, db, "lobsters"))

	// deleting a missing row is a no-op
	require.NoError(t, store.DeleteByName(ctx, "hn"))
}

func TestEvictOlderThanRemovesExactlyStaleRows(t *testing.T) {
	store, db := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	rows := []models.CachedDocument{
		{Name: "ancient", RawContent: "a", FetchedAt: now.Add(-30 * time.Minute)},
		{Name: "stale", RawContent: "b", FetchedAt: now.Add(-11 * time.Minute)},
		{Name: "fresh", RawContent: "c", FetchedAt: now.Add(-time.Minute)},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}

	require.NoError(t, store.EvictOlderThan(ctx, 10*time.Minute))

	assert.Equal(t, int64(0), countRows(t, db, "ancient"))
	assert.Equal(t, int64(0), countRows(t, db, "stale"))
	assert.Equal(t, int64(1), countRows(t, db, "fresh"))
}

func TestEvictOlderThanEmptyCacheIsNoOp(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.EvictOlderThan(context.Background(), 10*time.Minute))
}
