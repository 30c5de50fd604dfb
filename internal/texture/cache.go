package texture

import (
	"image"
	"sync"
)

// Resolver resolves a texture name to a decoded image, or nil.
type Resolver interface {
	Resolve(texName string) *image.NRGBA
}

// Cache is a concurrency-safe texture cache. Each path is decoded at most
// once; failures are remembered too.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*cacheEntry
	index *Index
}

type cacheEntry struct {
	img *image.NRGBA
	err error
}

// NewCache creates a new texture cache backed by the given index.
func NewCache(index *Index) *Cache {
	return &Cache{
		items: make(map[string]*cacheEntry),
		index: index,
	}
}

// Resolve loads and caches a texture by name. Returns nil if not found or
// undecodable; Err reports why.
func (c *Cache) Resolve(texName string) *image.NRGBA {
	e := c.load(texName)
	if e == nil {
		return nil
	}
	return e.img
}

// Err returns the load error recorded for texName, if any.
func (c *Cache) Err(texName string) error {
	e := c.load(texName)
	if e == nil {
		return nil
	}
	return e.err
}

func (c *Cache) load(texName string) *cacheEntry {
	path, ok := c.index.ResolvePath(texName)
	if !ok {
		return nil
	}

	// Fast path: read lock
	c.mu.RLock()
	if entry, exists := c.items[path]; exists {
		c.mu.RUnlock()
		return entry
	}
	c.mu.RUnlock()

	// Slow path: decode outside the lock
	img, err := LoadTexture(path)

	// Write lock with double-check
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, exists := c.items[path]; exists {
		return entry
	}
	entry := &cacheEntry{img: img, err: err}
	c.items[path] = entry
	return entry
}
