// Package eng formats quantities in engineering notation.
//
// A value is split into a magnitude in [1, 1000) and a metric prefix whose
// exponent is a multiple of three, from yocto (1e-24) to yotta (1e24):
//
//	v, _ := eng.Format(1500)     // {1.5 k}
//	v, _ = eng.Format(0.00084)   // {840 u}
//	fmt.Println(v)               // "840.0 u"
//
// The decimal exponent is read from the shortest decimal representation of
// the input rather than from log10, so exact powers of ten always land in
// their own bucket (1000 is 1 k, never 1000 or 0.999... without a prefix).
//
// Magnitudes outside the prefix table are reported as errors with code
// OUT_OF_RANGE; they are not saturated to the nearest prefix.
package eng

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/mres/pkg/errors"
)

const (
	minPower = -8 // yocto
	maxPower = 8  // yotta
)

// prefixes is indexed by power-minPower.
var prefixes = [...]string{
	"y", "z", "a", "f", "p", "n", "u", "m",
	"",
	"k", "M", "G", "T", "P", "E", "Z", "Y",
}

// Value is a scaled magnitude and its metric prefix.
type Value struct {
	Magnitude float64
	Prefix    string
}

// String formats the value with one decimal, e.g. "1.5 k".
func (v Value) String() string {
	return fmt.Sprintf("%.1f %s", v.Magnitude, v.Prefix)
}

// Prefixes returns the prefix table ordered from yocto to yotta.
func Prefixes() []string {
	return append([]string(nil), prefixes[:]...)
}

// Prefix returns the prefix for a power of 1000, or false if the power is
// not supported.
func Prefix(power int) (string, bool) {
	if power < minPower || power > maxPower {
		return "", false
	}
	return prefixes[power-minPower], true
}

// Format converts x to engineering notation. Zero maps to {0, ""}.
func Format(x float64) (Value, error) {
	if x == 0 {
		return Value{}, nil
	}
	power, mantissa, exp, err := decompose(x)
	if err != nil {
		return Value{}, err
	}

	scaled, err := strconv.ParseFloat(mantissa+"e"+strconv.Itoa(exp-3*power), 64)
	if err != nil {
		return Value{}, errors.Wrap(errors.ErrCodeInternal, err, "rescale %v", x)
	}
	if x < 0 {
		scaled = -scaled
	}
	return Value{Magnitude: scaled, Prefix: prefixes[power-minPower]}, nil
}

// FormatScaled formats x * 10^exp, shifting the decimal exponent instead of
// multiplying so unit conversions such as nanometers to meters stay exact.
func FormatScaled(x float64, exp int) (Value, error) {
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return Format(x)
	}
	mantissa, expStr, _ := strings.Cut(strconv.FormatFloat(x, 'e', -1, 64), "e")
	e, err := strconv.Atoi(expStr)
	if err != nil {
		return Value{}, errors.Wrap(errors.ErrCodeInternal, err, "parse exponent of %v", x)
	}
	shifted, err := strconv.ParseFloat(mantissa+"e"+strconv.Itoa(e+exp), 64)
	if err != nil {
		return Value{}, errors.Wrap(errors.ErrCodeOutOfRange, err, "shift %v by 1e%d", x, exp)
	}
	return Format(shifted)
}

// Power returns floor(log10(|x|) / 3) for x, computed without floating
// point rounding at the bucket boundaries. Zero has power 0.
func Power(x float64) (int, error) {
	if x == 0 {
		return 0, nil
	}
	power, _, _, err := decompose(x)
	return power, err
}

// decompose splits |x| into its shortest decimal mantissa digits and
// decimal exponent, and derives the power of 1000.
func decompose(x float64) (power int, mantissa string, exp int, err error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, "", 0, errors.New(errors.ErrCodeOutOfRange, "cannot express %v with a metric prefix", x)
	}

	s := strconv.FormatFloat(math.Abs(x), 'e', -1, 64)
	mantissa, expStr, _ := strings.Cut(s, "e")
	exp, err = strconv.Atoi(expStr)
	if err != nil {
		return 0, "", 0, errors.Wrap(errors.ErrCodeInternal, err, "parse exponent of %v", x)
	}

	power = exp / 3
	if exp%3 != 0 && exp < 0 {
		power--
	}
	if power < minPower || power > maxPower {
		return 0, "", 0, errors.New(errors.ErrCodeOutOfRange,
			"magnitude %g is outside the supported range 1e-24 to 1e27", x)
	}
	return power, mantissa, exp, nil
}
