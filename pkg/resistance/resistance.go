// Package resistance computes interconnect resistance from catalog entries.
//
// Metal traces scale linearly with length and inversely with width relative
// to the layer's minimum-width, unit-length resistance. Via arrays divide the
// single-via resistance by the number of vias along each axis.
package resistance

import (
	"github.com/matzehuels/mres/pkg/errors"
	"github.com/matzehuels/mres/pkg/material"
)

// DefaultLength is the trace length in micrometers used when none is given.
const DefaultLength = 1.0

// MetalDefaults returns the geometry used when no width or length is given:
// the layer's minimum width and DefaultLength.
func MetalDefaults(layer material.MetalLayer) (widthNM, lengthUM float64) {
	return layer.MinWidth, DefaultLength
}

// ViaDefaults returns a single via in each direction.
func ViaDefaults() (x, y int) {
	return 1, 1
}

// Metal returns the resistance in ohms of a trace widthNM nanometers wide and
// lengthUM micrometers long.
func Metal(layer material.MetalLayer, widthNM, lengthUM float64) (float64, error) {
	if err := errors.ValidatePositive("width", widthNM); err != nil {
		return 0, err
	}
	if err := errors.ValidatePositive("length", lengthUM); err != nil {
		return 0, err
	}
	// The width ratio is taken first so the minimum width yields the
	// catalog resistance exactly.
	return layer.Resistance * lengthUM * (layer.MinWidth / widthNM), nil
}

// Via returns the resistance in ohms of an x by y via array.
func Via(via material.ViaType, x, y int) (float64, error) {
	if err := errors.ValidateCount("xrep", x); err != nil {
		return 0, err
	}
	if err := errors.ValidateCount("yrep", y); err != nil {
		return 0, err
	}
	return via.Resistance / float64(x) / float64(y), nil
}
