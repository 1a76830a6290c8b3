// Package material provides the compiled-in catalog of interconnect materials.
//
// The catalog holds two ordered lists: metal layers, characterized by their
// minimum drawable width and the resistance of a unit-length trace at that
// width, and via types, characterized by the resistance of a single via.
//
// # Data
//
// The default catalog is decoded from an embedded TOML table on first use
// and is read-only afterwards:
//
//	[[metal]]
//	name = "metal1"
//	min_width = 160.0     # nm
//	resistance = 0.84375  # ohm for 1 um at min_width
//
//	[[via]]
//	name = "via1"
//	resistance = 2.0      # ohm per via
//
// # Lookup
//
// [Catalog.Find] matches names exactly and case-sensitively against both
// lists. Names are unique across the two lists in any catalog that passes
// [Catalog.Validate]; when a catalog does contain a name in both, the metal
// layer is returned.
package material
