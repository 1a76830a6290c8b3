// Package pkg provides the libraries behind the mres resistance calculator.
//
// # Overview
//
// mres estimates the resistance of on-chip interconnect from a compiled-in
// table of metal layers and vias. The pkg directory is organized as:
//
//  1. [material] - The materials catalog and its lookup
//  2. [resistance] - Metal trace and via array resistance
//  3. [eng] - Engineering notation with metric prefixes
//  4. [render] - One-line and diagram output templates
//  5. [errors] - Structured error codes
//  6. [buildinfo] - Version information set at build time
//
// # Architecture
//
// The data flow of one invocation:
//
//	material name + geometry
//	         ↓
//	    [material] package (find metal or via)
//	         ↓
//	    [resistance] package (compute ohms)
//	         ↓
//	    [eng] package (scale to prefix)
//	         ↓
//	    [render] package (text to stdout)
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/mres/pkg/material"
//	    "github.com/matzehuels/mres/pkg/resistance"
//	)
//
//	e, ok := material.Default().Find("metal2")
//	if !ok {
//	    return
//	}
//	ohms, err := resistance.Metal(e.Metal, 400, 25)
//
// [material]: github.com/matzehuels/mres/pkg/material
// [resistance]: github.com/matzehuels/mres/pkg/resistance
// [eng]: github.com/matzehuels/mres/pkg/eng
// [render]: github.com/matzehuels/mres/pkg/render
// [errors]: github.com/matzehuels/mres/pkg/errors
// [buildinfo]: github.com/matzehuels/mres/pkg/buildinfo
package pkg
