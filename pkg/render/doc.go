// Package render writes computed resistances as text.
//
// Output is selected by a [Mode] (one-line summary or box diagram) and a
// [Charset] (ASCII or Unicode glyphs). Each combination maps to one fixed
// template per material kind; the templates contain no logic and only
// substitute the formatted values.
//
// One-line output for the two material kinds:
//
//	metal1 (160.0 nm / 1.0um) = 843.8 mOhm
//	via1 (2 x 2) = 500.0 mOhm
//
// In Unicode mode the unit is written as Ω and the diagrams
// use box-drawing characters and arrow glyphs.
package render
