package texture

import (
	"sync"

	"mc-skin-mesher/internal/skin"
)

// Resolver resolves a skin name to a validated skin texture.
type Resolver interface {
	Resolve(name string) *skin.Skin
}

// Cache is a concurrency-safe skin cache backed by an index. Failed
// loads are cached as nil so broken files are only read once.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*cacheEntry
	index *Index
}

type cacheEntry struct {
	skin *skin.Skin
}

// NewCache creates a new skin cache backed by the given index.
func NewCache(index *Index) *Cache {
	return &Cache{
		items: make(map[string]*cacheEntry),
		index: index,
	}
}

// Resolve loads and caches a skin by name. Returns nil if the name is
// unknown or the file fails to load or validate.
func (c *Cache) Resolve(name string) *skin.Skin {
	path, ok := c.index.ResolvePath(name)
	if !ok {
		return nil
	}

	c.mu.RLock()
	if entry, exists := c.items[path]; exists {
		c.mu.RUnlock()
		return entry.skin
	}
	c.mu.RUnlock()

	s, _ := LoadSkin(path)

	c.mu.Lock()
	if entry, exists := c.items[path]; exists {
		c.mu.Unlock()
		return entry.skin
	}
	c.items[path] = &cacheEntry{skin: s}
	c.mu.Unlock()

	return s
}
