package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"physiquist/internal/formula"
	"physiquist/internal/quantity"
	"physiquist/internal/style"
	"physiquist/internal/units"
)

func formulasCmd() *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "formulas",
		Short: "List the formula catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := formula.Default()
			categories := cat.Categories()
			if category != "" {
				if len(cat.ByCategory(category)) == 0 {
					return fmt.Errorf("unknown category %q (have %s)", category, strings.Join(categories, ", "))
				}
				categories = []string{category}
			}

			out := cmd.OutOrStdout()
			for i, c := range categories {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintln(out, style.Info.Render(c))
				t := style.NewTable(
					style.Column{Name: "Formula", Width: 38},
					style.Column{Name: "Equation", Width: 40, Style: style.Dim},
				)
				for _, f := range cat.ByCategory(c) {
					t.AddRow(f.Name, f.Equation)
				}
				fmt.Fprint(out, t.Render())
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "only list one category")
	return cmd
}

func formulaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formula NAME",
		Short: "Show the variables, units and targets of one formula",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := formula.Default().Lookup(args[0])
			if err != nil {
				return err
			}
			tbl := units.Default()
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "%s %s\n", style.Info.Render(f.Name), style.Dim.Render("("+f.Category+")"))
			fmt.Fprintf(out, "  %s\n\n", f.Equation)

			t := style.NewTable(
				style.Column{Name: "Symbol", Width: 8},
				style.Column{Name: "Kind", Width: 14},
				style.Column{Name: "Description", Width: 34},
				style.Column{Name: "Units", Width: 30, Style: style.Dim},
			)
			for _, v := range f.Variables {
				t.AddRow(v.Symbol, v.Kind.String(), v.Description, strings.Join(tbl.UnitsFor(v.Kind), " "))
			}
			fmt.Fprint(out, t.Render())
			fmt.Fprintf(out, "\n  Solvable for: %s\n", strings.Join(f.Targets(), ", "))
			return nil
		},
	}
}

func unitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "units KIND",
		Short: "List the units of a quantity kind",
		Long: "List the units of a quantity kind. The SI unit comes first.\n\nKinds: " +
			strings.Join(kindNames(), ", "),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := quantity.ParseKind(args[0])
			if err != nil {
				return err
			}
			list := units.UnitsFor(kind)
			if len(list) == 0 {
				return fmt.Errorf("%s has no units", kind)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", style.Info.Render(kind.String()), style.Dim.Render("SI: "+list[0]))
			for _, u := range list {
				fmt.Fprintf(out, "  %s\n", u)
			}
			return nil
		},
	}
}

func kindNames() []string {
	var out []string
	for _, k := range quantity.Kinds() {
		out = append(out, k.String())
	}
	return out
}
