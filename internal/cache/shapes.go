package cache

import (
	"sync"

	"github.com/OCAP2/polysymbol/pkg/symbol"
)

// ShapeCache keeps built shapes per zoom level for one factory and one set
// of points. Shapes of a zoom-independent factory are stored once and served
// for every zoom.
type ShapeCache struct {
	mu            sync.RWMutex
	zoomDependent bool
	shapes        map[float64][]symbol.Shape
	hits          int
}

// NewShapeCache creates a new ShapeCache. zoomDependent should come from the
// factory's ZoomDependent.
func NewShapeCache(zoomDependent bool) *ShapeCache {
	return &ShapeCache{
		zoomDependent: zoomDependent,
		shapes:        make(map[float64][]symbol.Shape),
	}
}

func (c *ShapeCache) key(zoom float64) float64 {
	if !c.zoomDependent {
		return 0
	}
	return zoom
}

// Get retrieves the shapes built for zoom.
func (c *ShapeCache) Get(zoom float64) ([]symbol.Shape, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	shapes, ok := c.shapes[c.key(zoom)]
	if ok {
		c.hits++
	}
	return shapes, ok
}

// Set stores the shapes built for zoom.
func (c *ShapeCache) Set(zoom float64, shapes []symbol.Shape) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.shapes[c.key(zoom)] = shapes
}

// GetOrBuild returns the cached shapes for zoom, calling build on a miss.
// Failed builds are not cached.
func (c *ShapeCache) GetOrBuild(zoom float64, build func() ([]symbol.Shape, error)) ([]symbol.Shape, error) {
	if shapes, ok := c.Get(zoom); ok {
		return shapes, nil
	}
	shapes, err := build()
	if err != nil {
		return nil, err
	}
	c.Set(zoom, shapes)
	return shapes, nil
}

// Hits returns how many lookups were served from the cache.
func (c *ShapeCache) Hits() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits
}

// Len returns the number of stored shape sets.
func (c *ShapeCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.shapes)
}

// Reset clears all shapes from the cache, e.g. after the points changed.
func (c *ShapeCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.shapes = make(map[float64][]symbol.Shape)
	c.hits = 0
}
