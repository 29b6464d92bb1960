// Package assets resolves texture names to opaque handles.
package assets

import (
	"fmt"
	"math/rand"
	"sort"
)

// Texture is an opaque texture handle. The zero value means "no texture".
type Texture struct {
	Name string
	ID   int
}

// Valid reports whether the handle refers to a loaded texture.
func (t Texture) Valid() bool {
	return t.ID > 0
}

// Catalog maps texture names to handles. Lookups of unknown names register
// them on the fly so a level never fails because of a missing image.
type Catalog struct {
	byName map[string]Texture
	next   int
}

// NewCatalog creates a catalog pre-populated with names.
func NewCatalog(names ...string) *Catalog {
	c := &Catalog{byName: make(map[string]Texture)}
	for _, n := range names {
		c.Get(n)
	}
	return c
}

// Get returns the handle for name.
func (c *Catalog) Get(name string) Texture {
	if t, ok := c.byName[name]; ok {
		return t
	}
	c.next++
	t := Texture{Name: name, ID: c.next}
	c.byName[name] = t
	return t
}

// Has reports whether name has been registered.
func (c *Catalog) Has(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// Names returns the registered names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.byName))
	for n := range c.byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// RegionBackgroundName is the k-th background of region n.
func RegionBackgroundName(region, k int) string {
	return fmt.Sprintf("region%d_bg%d", region, k)
}

// RegionClearedName is the background used once a sublevel of region n is cleared.
func RegionClearedName(region int) string {
	return fmt.Sprintf("region%d_cleared", region)
}

// BackgroundPool holds the background variants of one region.
type BackgroundPool struct {
	Region   int
	Variants []Texture
	Cleared  Texture
}

// NewBackgroundPool registers size variants plus the cleared texture for a region.
func NewBackgroundPool(c *Catalog, region, size int) BackgroundPool {
	p := BackgroundPool{Region: region, Cleared: c.Get(RegionClearedName(region))}
	for k := 0; k < size; k++ {
		p.Variants = append(p.Variants, c.Get(RegionBackgroundName(region, k)))
	}
	return p
}

// Pick chooses a variant with rng. An empty pool yields the zero Texture.
func (p BackgroundPool) Pick(rng *rand.Rand) Texture {
	if len(p.Variants) == 0 {
		return Texture{}
	}
	return p.Variants[rng.Intn(len(p.Variants))]
}
