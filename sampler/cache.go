package sampler

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// ObjectCache caches sampler objects under a caller-chosen comparable
// key, typically a (texture key, Parameters, bindless flag) struct.
// Evicted objects are destroyed, so objects obtained from the cache must
// not be destroyed by the caller.
type ObjectCache[K comparable] struct {
	factory *Factory
	cache   *lru.Cache[K, Object]
}

func NewObjectCache[K comparable](factory *Factory, size int) *ObjectCache[K] {
	cache, _ := lru.NewWithEvict[K, Object](size, destroyOnEvict[K])

	return &ObjectCache[K]{
		factory: factory,
		cache:   cache,
	}
}

func destroyOnEvict[K comparable](_ K, obj Object) {
	obj.Destroy()
}

// Get returns the cached sampler object for key, building one via
// Factory.New on a miss.
func (c *ObjectCache[K]) Get(key K, texture Texture, p Parameters, createBindlessHandle bool) Object {
	if obj, ok := c.cache.Get(key); ok {
		return obj
	}

	obj := c.factory.New(texture, p, createBindlessHandle)
	if obj == nil {
		return nil
	}

	c.cache.Add(key, obj)

	return obj
}

// Remove evicts and destroys the object cached under key.
func (c *ObjectCache[K]) Remove(key K) {
	c.cache.Remove(key)
}

// Purge evicts and destroys all cached objects.
func (c *ObjectCache[K]) Purge() {
	c.cache.Purge()
}

func (c *ObjectCache[K]) Len() int {
	return c.cache.Len()
}
