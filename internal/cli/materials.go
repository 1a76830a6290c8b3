package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mres/pkg/eng"
	"github.com/matzehuels/mres/pkg/material"
)

// materialsCommand creates the command that prints the catalog as a table.
func (c *CLI) materialsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "materials",
		Aliases: []string{"list"},
		Short:   "Show the built-in metal and via table",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.printMaterialTable(cmd.OutOrStdout())
		},
	}
}

// printMaterialTable renders every catalog entry with its parameters.
func (c *CLI) printMaterialTable(w io.Writer) error {
	p := newPrinter(w)
	r := lipgloss.NewRenderer(w)

	rows, err := materialRows(c.Catalog)
	if err != nil {
		return err
	}

	header := r.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1)
	cell := r.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.NewStyle().Foreground(colorDim)).
		Headers("NAME", "KIND", "MIN WIDTH", "RESISTANCE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	fmt.Fprintln(w, t.Render())
	p.infof("%d metals · %d vias", len(c.Catalog.Metals()), len(c.Catalog.Vias()))
	return nil
}

// materialRows formats the catalog in display order, metals first.
func materialRows(cat *material.Catalog) ([][]string, error) {
	var rows [][]string
	for _, m := range cat.Metals() {
		width, err := eng.FormatScaled(m.MinWidth, -9)
		if err != nil {
			return nil, err
		}
		res, err := eng.Format(m.Resistance)
		if err != nil {
			return nil, err
		}
		rows = append(rows, []string{m.Name, material.KindMetal.String(), width.String() + "m", res.String() + "Ohm/um"})
	}
	for _, v := range cat.Vias() {
		res, err := eng.Format(v.Resistance)
		if err != nil {
			return nil, err
		}
		rows = append(rows, []string{v.Name, material.KindVia.String(), "-", res.String() + "Ohm"})
	}
	return rows, nil
}
