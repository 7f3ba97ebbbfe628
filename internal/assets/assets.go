// Package assets resolves and loads files from the asset directory.
//
// Layout: each model lives in its own directory under <root>/models,
// named after the model identifier, containing a same-named .gltf
// scene file plus any textures it references. Shaders live under
// <root>/shaders.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Manager loads asset files relative to a root directory.
type Manager struct {
	root  string
	cache *Cache
	mu    sync.RWMutex
}

// NewManager creates a new asset manager rooted at dir.
func NewManager(dir string) *Manager {
	return &Manager{
		root:  dir,
		cache: NewCache(),
	}
}

// Root returns the asset root directory.
func (m *Manager) Root() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.root
}

// ModelDir returns the directory holding the named model and its textures.
func (m *Manager) ModelDir(name string) string {
	return filepath.Join(m.Root(), "models", name)
}

// ModelScene returns the path of the named model's scene file.
func (m *Manager) ModelScene(name string) string {
	return filepath.Join(m.ModelDir(name), name+".gltf")
}

// ShaderPath returns the path of a shader file.
func (m *Manager) ShaderPath(name string) string {
	return filepath.Join(m.Root(), "shaders", name)
}

// Load reads a file, serving repeat reads from the byte cache.
// The cache holds raw file bytes only; decoded images and GPU objects
// are still created per use.
func (m *Manager) Load(path string) ([]byte, error) {
	if data, ok := m.cache.Get(path); ok {
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading asset %s: %w", path, err)
	}

	m.cache.Set(path, data)
	return data, nil
}

// Close drops all cached data.
func (m *Manager) Close() {
	m.cache.Clear()
}

// Cache is a simple in-memory cache for loaded asset bytes.
type Cache struct {
	data map[string][]byte
	mu   sync.RWMutex

	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
