package material

import (
	_ "embed"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/mres/pkg/errors"
)

//go:embed materials.toml
var materialsTOML []byte

type catalogFile struct {
	Metal []MetalLayer `toml:"metal"`
	Via   []ViaType    `toml:"via"`
}

// Parse decodes a TOML materials table and validates the result.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "decode materials table")
	}
	c := New(f.Metal, f.Via)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := Parse(materialsTOML)
	if err != nil {
		panic("material: embedded catalog: " + err.Error())
	}
	return c
})

// Default returns the compiled-in catalog.
func Default() *Catalog {
	return defaultCatalog()
}
