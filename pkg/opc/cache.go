package opc

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// ReaderCache keeps recently opened stored packages in memory so that
// opening the same file again skips the disk and the zip directory scan.
// Cached readers are read-only; every Open still builds fresh parts.
type ReaderCache struct {
	cache *lru.LRU[string, *zipPhysReader]
	loads singleflight.Group
}

// NewReaderCache creates a cache of at most maxSize packages, each kept
// for ttl (0 means no expiration).
func NewReaderCache(maxSize int, ttl time.Duration) *ReaderCache {
	return &ReaderCache{cache: lru.NewLRU[string, *zipPhysReader](maxSize, nil, ttl)}
}

// Len returns the number of cached packages.
func (c *ReaderCache) Len() int { return c.cache.Len() }

// Purge empties the cache.
func (c *ReaderCache) Purge() { c.cache.Purge() }

// openFile returns the reader for the zip file at path, from the cache
// when an entry for the same path, size and modification time exists.
func (c *ReaderCache) openFile(path string, logger *logrus.Logger) (physReader, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return openPhysReader(path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	key := fmt.Sprintf("file:%s:%d:%d", abs, info.Size(), info.ModTime().UnixNano())
	if r, ok := c.cache.Get(key); ok {
		logger.WithField("path", path).Debug("reader cache hit")
		return r, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return openPhysReader(path)
	}
	return c.load(key, data)
}

// openBytes returns the reader for an in-memory zip archive, keyed by the
// digest of its bytes.
func (c *ReaderCache) openBytes(data []byte) (physReader, error) {
	key := "blake3:" + DigestBytes(data).String()
	if r, ok := c.cache.Get(key); ok {
		return r, nil
	}
	return c.load(key, data)
}

// load indexes data and caches it under key. Concurrent loads of the same
// key share one result.
func (c *ReaderCache) load(key string, data []byte) (physReader, error) {
	v, err, _ := c.loads.Do(key, func() (interface{}, error) {
		r, err := readZipPhysReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, err
		}
		c.cache.Add(key, r)
		return r, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*zipPhysReader), nil
}

var (
	sharedCache      *ReaderCache
	sharedCacheSize  int
	sharedCacheTTL   time.Duration
	sharedCacheMutex sync.Mutex
)

// sharedReaderCache returns the process-wide cache sized by config, or
// nil when caching is disabled. Changing the size or TTL replaces it.
func sharedReaderCache(config *Config) *ReaderCache {
	if config.CacheMaxSize <= 0 {
		return nil
	}
	sharedCacheMutex.Lock()
	defer sharedCacheMutex.Unlock()
	if sharedCache == nil || sharedCacheSize != config.CacheMaxSize || sharedCacheTTL != config.CacheTTL {
		sharedCache = NewReaderCache(config.CacheMaxSize, config.CacheTTL)
		sharedCacheSize = config.CacheMaxSize
		sharedCacheTTL = config.CacheTTL
	}
	return sharedCache
}
