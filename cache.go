package braillefb

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the maximum number of cached bitmaps
const DefaultCacheSize = 100

// cacheKey identifies a bitmap by its source file and conversion parameters
type cacheKey struct {
	path string
	opts Options
}

var (
	bitmapCache     *lru.Cache[cacheKey, *Bitmap]
	bitmapCacheOnce sync.Once
)

func cache() *lru.Cache[cacheKey, *Bitmap] {
	bitmapCacheOnce.Do(func() {
		// lru.New only fails for a non-positive size
		bitmapCache, _ = lru.New[cacheKey, *Bitmap](DefaultCacheSize)
	})
	return bitmapCache
}

// cachedBitmap returns a previously converted bitmap for key
func cachedBitmap(key cacheKey) (*Bitmap, bool) {
	if key.path == "" {
		return nil, false
	}
	bm, ok := cache().Get(key)
	if !ok {
		return nil, false
	}
	return bm.Clone(), true
}

// storeBitmap remembers a copy of bm for key. Sources without a path are
// never cached.
func storeBitmap(key cacheKey, bm *Bitmap) {
	if key.path == "" {
		return
	}
	cache().Add(key, bm.Clone())
}

// ClearCache drops every cached bitmap
func ClearCache() {
	cache().Purge()
}
