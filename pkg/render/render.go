package render

import (
	"fmt"
	"io"

	"github.com/matzehuels/mres/pkg/eng"
	"github.com/matzehuels/mres/pkg/errors"
)

// Mode selects between the one-line summary and the diagram.
type Mode int

const (
	ModeLine Mode = iota
	ModeDiagram
)

// Charset selects the glyphs used for the unit and the box art.
type Charset int

const (
	CharsetASCII Charset = iota
	CharsetUnicode
)

// Style is a (Mode, Charset) pair.
type Style struct {
	Mode    Mode
	Charset Charset
}

// MetalResult holds the formatted values of a metal trace calculation.
type MetalResult struct {
	Name       string
	Width      eng.Value // meters
	Length     eng.Value // meters
	Resistance eng.Value // ohms
}

// ViaResult holds the formatted values of a via array calculation.
type ViaResult struct {
	Name       string
	X, Y       int
	Resistance eng.Value // ohms
}

// NewMetalResult formats a trace of widthNM nanometers and lengthUM
// micrometers with the given resistance in ohms.
func NewMetalResult(name string, widthNM, lengthUM, ohms float64) (MetalResult, error) {
	w, err := eng.FormatScaled(widthNM, -9)
	if err != nil {
		return MetalResult{}, err
	}
	l, err := eng.FormatScaled(lengthUM, -6)
	if err != nil {
		return MetalResult{}, err
	}
	r, err := eng.Format(ohms)
	if err != nil {
		return MetalResult{}, err
	}
	return MetalResult{Name: name, Width: w, Length: l, Resistance: r}, nil
}

// NewViaResult formats an x by y via array with the given resistance in ohms.
func NewViaResult(name string, x, y int, ohms float64) (ViaResult, error) {
	r, err := eng.Format(ohms)
	if err != nil {
		return ViaResult{}, err
	}
	return ViaResult{Name: name, X: x, Y: y, Resistance: r}, nil
}

// Metal writes r to w in the given style.
func Metal(w io.Writer, r MetalResult, s Style) error {
	tmpl, ok := metalTemplates[s]
	if !ok {
		return errors.New(errors.ErrCodeInternal, "no metal template for style %+v", s)
	}
	return write(w, tmpl,
		r.Name,
		r.Width.Magnitude, r.Width.Prefix,
		r.Length.Magnitude, r.Length.Prefix,
		r.Resistance.Magnitude, r.Resistance.Prefix,
	)
}

// Via writes r to w in the given style.
func Via(w io.Writer, r ViaResult, s Style) error {
	tmpl, ok := viaTemplates[s]
	if !ok {
		return errors.New(errors.ErrCodeInternal, "no via template for style %+v", s)
	}
	return write(w, tmpl,
		r.Name,
		r.X, r.Y,
		r.Resistance.Magnitude, r.Resistance.Prefix,
	)
}

func write(w io.Writer, tmpl string, args ...any) error {
	if _, err := fmt.Fprintf(w, tmpl, args...); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write output")
	}
	return nil
}
