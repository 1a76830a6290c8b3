package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - headings
	colorRed   = lipgloss.Color("167") // Soft red - errors
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorGray  = lipgloss.Color("245") // Gray - secondary text
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconError = "✗"
	iconInfo  = "›"
)

// =============================================================================
// Printer
// =============================================================================

// printer writes styled output to w. Styles are bound to a renderer for w,
// so color is only emitted when w is a terminal.
type printer struct {
	w io.Writer

	title     lipgloss.Style
	value     lipgloss.Style
	dim       lipgloss.Style
	iconError lipgloss.Style
	iconInfo  lipgloss.Style
}

func newPrinter(w io.Writer) *printer {
	r := lipgloss.NewRenderer(w)
	return &printer{
		w:         w,
		title:     r.NewStyle().Bold(true).Foreground(colorCyan),
		value:     r.NewStyle().Foreground(colorWhite),
		dim:       r.NewStyle().Foreground(colorDim),
		iconError: r.NewStyle().Foreground(colorRed),
		iconInfo:  r.NewStyle().Foreground(colorGray),
	}
}

// =============================================================================
// Status Output
// =============================================================================

// errorf prints a one-line error message.
func (p *printer) errorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(p.w, p.iconError.Render(iconError)+" "+msg)
}

// infof prints an info/status message.
func (p *printer) infof(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(p.w, p.iconInfo.Render(iconInfo)+" "+msg)
}

// =============================================================================
// Listing Output
// =============================================================================

// heading prints a section heading line.
func (p *printer) heading(text string) {
	fmt.Fprintln(p.w, p.title.Render(text))
}

// names prints an indented, space-separated list of names.
func (p *printer) names(names []string) {
	fmt.Fprintln(p.w, "  "+p.value.Render(strings.Join(names, " ")))
}

// line prints a muted line of text.
func (p *printer) line(text string) {
	fmt.Fprintln(p.w, p.dim.Render(text))
}
