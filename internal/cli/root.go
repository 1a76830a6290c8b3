package cli

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mres/pkg/errors"
	"github.com/matzehuels/mres/pkg/material"
	"github.com/matzehuels/mres/pkg/render"
	"github.com/matzehuels/mres/pkg/resistance"
)

// calcOptions holds the rendering flags of the root command.
type calcOptions struct {
	diagram bool
	unicode bool
}

// query is the parsed form of a single invocation.
type query struct {
	material string
	dims     []string
	style    render.Style
}

func newQuery(args []string, opts calcOptions) query {
	q := query{material: args[0], dims: args[1:]}
	if opts.diagram {
		q.style.Mode = render.ModeDiagram
	}
	if opts.unicode {
		q.style.Charset = render.CharsetUnicode
	}
	return q
}

// calcCommand creates the root command that computes a resistance.
func (c *CLI) calcCommand() *cobra.Command {
	var opts calcOptions

	cmd := &cobra.Command{
		Use:   appName + " [flags] <material> [width/xrep] [length/yrep]",
		Short: "Estimate the resistance of metal traces and via arrays",
		Long: `mres estimates the resistance of on-chip interconnect from a built-in
table of metal layers and vias.

The options, if present, need to be given before the material and geometry
parameters.

metals:
  width is the width in nanometer (default minimum width)
  length is the length in micrometer (default 1)

vias:
  xrep is the number of vias in x direction (default 1)
  yrep is the number of vias in y direction (default 1)

Execute mres without any arguments to get the list of materials.`,
		Example: `  mres metal1
  mres metal2 400 25
  mres -p -u via1 4 2`,
		Args:              maxArgs(maxPositionalArgs),
		ValidArgsFunction: c.completeMaterial,
		SilenceUsage:      true,
		SilenceErrors:     true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				c.printMaterialList(cmd.OutOrStdout())
				return nil
			}
			return c.calculate(cmd.Context(), cmd.OutOrStdout(), newQuery(args, opts))
		},
	}

	cmd.Flags().SetInterspersed(false)
	cmd.Flags().BoolVarP(&opts.diagram, "print", "p", false, "draw the structure as a diagram")
	cmd.Flags().BoolVarP(&opts.unicode, "unicode", "u", false, "use Unicode box-drawing glyphs and Ω")

	return cmd
}

// maxArgs is cobra.MaximumNArgs with a structured error.
func maxArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > n {
			return errors.New(errors.ErrCodeInvalidArgument,
				"too many arguments: expected at most %d, got %d", n, len(args))
		}
		return nil
	}
}

// completeMaterial offers catalog names for the material argument.
func (c *CLI) completeMaterial(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var out []string
	for _, name := range c.Catalog.Names() {
		if strings.HasPrefix(name, toComplete) {
			out = append(out, name)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

// printMaterialList prints every metal and via name in catalog order.
func (c *CLI) printMaterialList(w io.Writer) {
	p := newPrinter(w)

	var metals, vias []string
	for _, m := range c.Catalog.Metals() {
		metals = append(metals, m.Name)
	}
	for _, v := range c.Catalog.Vias() {
		vias = append(vias, v.Name)
	}

	p.line("you need to specify a material")
	p.heading("possible metals are:")
	p.names(metals)
	p.heading("possible vias are:")
	p.names(vias)
}

// calculate resolves q against the catalog, computes the resistance and
// writes it to w.
func (c *CLI) calculate(ctx context.Context, w io.Writer, q query) error {
	logger := loggerFromContext(ctx)

	entry, ok := c.Catalog.Find(q.material)
	if !ok {
		return errors.New(errors.ErrCodeUnknownMaterial, "material '%s' is unknown", q.material)
	}
	logger.Debug("resolved material", "name", entry.Name(), "kind", entry.Kind)

	switch entry.Kind {
	case material.KindMetal:
		return c.calculateMetal(ctx, w, entry.Metal, q)
	case material.KindVia:
		return c.calculateVia(ctx, w, entry.Via, q)
	}
	return errors.New(errors.ErrCodeInternal, "material '%s' has no kind", q.material)
}

func (c *CLI) calculateMetal(ctx context.Context, w io.Writer, layer material.MetalLayer, q query) error {
	logger := loggerFromContext(ctx)

	width, length := resistance.MetalDefaults(layer)
	var err error
	if len(q.dims) > 0 {
		if width, err = parseFloatArg("width", q.dims[0]); err != nil {
			return err
		}
	}
	if len(q.dims) > 1 {
		if length, err = parseFloatArg("length", q.dims[1]); err != nil {
			return err
		}
	}

	ohms, err := resistance.Metal(layer, width, length)
	if err != nil {
		return err
	}
	logger.Debug("computed metal resistance", "width_nm", width, "length_um", length, "ohms", ohms)

	res, err := render.NewMetalResult(layer.Name, width, length, ohms)
	if err != nil {
		return err
	}
	return render.Metal(w, res, q.style)
}

func (c *CLI) calculateVia(ctx context.Context, w io.Writer, via material.ViaType, q query) error {
	logger := loggerFromContext(ctx)

	x, y := resistance.ViaDefaults()
	var err error
	if len(q.dims) > 0 {
		if x, err = parseCountArg("xrep", q.dims[0]); err != nil {
			return err
		}
	}
	if len(q.dims) > 1 {
		if y, err = parseCountArg("yrep", q.dims[1]); err != nil {
			return err
		}
	}

	ohms, err := resistance.Via(via, x, y)
	if err != nil {
		return err
	}
	logger.Debug("computed via resistance", "xrep", x, "yrep", y, "ohms", ohms)

	res, err := render.NewViaResult(via.Name, x, y, ohms)
	if err != nil {
		return err
	}
	return render.Via(w, res, q.style)
}

// parseFloatArg parses a geometry parameter. Unparsable input is an error,
// never zero.
func parseFloatArg(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, invalidArg(name, s, "a number", err)
	}
	return v, nil
}

// parseCountArg parses a via repetition count.
func parseCountArg(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, invalidArg(name, s, "an integer", err)
	}
	return v, nil
}

func invalidArg(name, s, want string, cause error) error {
	if strings.HasPrefix(s, "-") {
		return errors.Wrap(errors.ErrCodeInvalidArgument, cause,
			"invalid %s %q: expected %s (options must come before the material)", name, s, want)
	}
	return errors.Wrap(errors.ErrCodeInvalidArgument, cause, "invalid %s %q: expected %s", name, s, want)
}
