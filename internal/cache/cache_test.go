package cache_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/gruntwork-io/notecards/internal/cache"
	"github.com/gruntwork-io/notecards/internal/document"
	"github.com/stretchr/testify/assert"
)

func TestCacheCreation(t *testing.T) {
	t.Parallel()

	c := cache.NewCache[string, string]("test")

	assert.Equal(t, "test", c.Name)
	assert.Zero(t, c.Len())
}

func TestStringCacheOperation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := cache.NewCache[string, string]("test")

	value, found := c.Get(ctx, "potato")

	assert.False(t, found)
	assert.Empty(t, value)

	c.Put(ctx, "potato", "carrot")
	value, found = c.Get(ctx, "potato")

	assert.True(t, found)
	assert.Equal(t, "carrot", value)
	assert.Equal(t, 1, c.Len())

	c.Delete("potato")
	_, found = c.Get(ctx, "potato")
	assert.False(t, found)
}

func TestCacheDeleteFuncAndClear(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := cache.NewCache[int, bool]("test")

	for i := range 10 {
		c.Put(ctx, i, i%2 == 0)
	}

	c.DeleteFunc(func(_ int, even bool) bool { return even })
	assert.Equal(t, 5, c.Len())

	c.Clear()
	assert.Zero(t, c.Len())
}

func TestCacheConcurrentAccess(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := cache.NewCache[int, int]("test")

	var wg sync.WaitGroup

	for worker := range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i := range 100 {
				c.Put(ctx, worker*100+i, i)
				c.Get(ctx, i)
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, 800, c.Len())
}

func TestResultCacheKeys(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := cache.NewResultCache()

	saved := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	doc := document.New("a.md", saved, saved, 1)

	c.Put(ctx, cache.KeyOf(doc), true)

	matched, found := c.Get(ctx, cache.Key{Path: "a.md", Stamp: saved.UnixNano()})
	assert.True(t, found)
	assert.True(t, matched)

	edited := document.New("a.md", saved.Add(time.Second), saved, 1)
	_, found = c.Get(ctx, cache.KeyOf(edited))
	assert.False(t, found, "an edited document must miss")

	renamed := document.New("b.md", saved, saved, 1)
	_, found = c.Get(ctx, cache.KeyOf(renamed))
	assert.False(t, found, "a renamed document must miss")
}
