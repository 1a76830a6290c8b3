package material

import (
	"slices"

	"github.com/matzehuels/mres/pkg/errors"
)

// MetalLayer is one interconnect routing layer.
type MetalLayer struct {
	Name       string  `toml:"name"`
	MinWidth   float64 `toml:"min_width"`  // nanometers
	Resistance float64 `toml:"resistance"` // ohms for 1 um at MinWidth
}

// ViaType is one kind of vertical connection between layers.
type ViaType struct {
	Name       string  `toml:"name"`
	Resistance float64 `toml:"resistance"` // ohms per via
}

// Kind identifies which list a catalog entry came from.
type Kind int

const (
	KindMetal Kind = iota + 1
	KindVia
)

// String returns "metal" or "via".
func (k Kind) String() string {
	switch k {
	case KindMetal:
		return "metal"
	case KindVia:
		return "via"
	}
	return "unknown"
}

// Entry is the result of a successful lookup. Exactly one of Metal or Via
// is meaningful, as indicated by Kind.
type Entry struct {
	Kind  Kind
	Metal MetalLayer
	Via   ViaType
}

// Name returns the name of the matched material.
func (e Entry) Name() string {
	if e.Kind == KindVia {
		return e.Via.Name
	}
	return e.Metal.Name
}

// Catalog is an immutable, ordered set of metal layers and via types.
type Catalog struct {
	metals []MetalLayer
	vias   []ViaType
}

// New creates a catalog from the given lists. The slices are copied, so
// later changes by the caller do not affect the catalog.
func New(metals []MetalLayer, vias []ViaType) *Catalog {
	return &Catalog{
		metals: slices.Clone(metals),
		vias:   slices.Clone(vias),
	}
}

// Metals returns the metal layers in catalog order.
func (c *Catalog) Metals() []MetalLayer { return slices.Clone(c.metals) }

// Vias returns the via types in catalog order.
func (c *Catalog) Vias() []ViaType { return slices.Clone(c.vias) }

// Names returns all metal names followed by all via names, in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.metals)+len(c.vias))
	for _, m := range c.metals {
		names = append(names, m.Name)
	}
	for _, v := range c.vias {
		names = append(names, v.Name)
	}
	return names
}

// Find looks up name in the metal list, then in the via list. The first
// exact match wins, so a name present in both lists resolves to the metal.
func (c *Catalog) Find(name string) (Entry, bool) {
	for _, m := range c.metals {
		if m.Name == name {
			return Entry{Kind: KindMetal, Metal: m}, true
		}
	}
	for _, v := range c.vias {
		if v.Name == name {
			return Entry{Kind: KindVia, Via: v}, true
		}
	}
	return Entry{}, false
}

// Validate checks that every entry has a name and positive values, and that
// no name appears twice across both lists.
func (c *Catalog) Validate() error {
	seen := make(map[string]Kind, len(c.metals)+len(c.vias))
	check := func(name string, kind Kind) error {
		if name == "" {
			return errors.New(errors.ErrCodeInvalidCatalog, "%s with empty name", kind)
		}
		if prev, dup := seen[name]; dup {
			return errors.New(errors.ErrCodeInvalidCatalog, "duplicate material %q (%s and %s)", name, prev, kind)
		}
		seen[name] = kind
		return nil
	}

	for _, m := range c.metals {
		if err := check(m.Name, KindMetal); err != nil {
			return err
		}
		if !(m.MinWidth > 0) || !(m.Resistance > 0) {
			return errors.New(errors.ErrCodeInvalidCatalog, "metal %q: min_width and resistance must be positive", m.Name)
		}
	}
	for _, v := range c.vias {
		if err := check(v.Name, KindVia); err != nil {
			return err
		}
		if !(v.Resistance > 0) {
			return errors.New(errors.ErrCodeInvalidCatalog, "via %q: resistance must be positive", v.Name)
		}
	}
	return nil
}
