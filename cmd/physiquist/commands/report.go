package commands

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"physiquist/internal/calc/report"
	"physiquist/internal/style"
)

func reportCmd() *cobra.Command {
	var (
		out     string
		systems string
		in      report.Input
	)
	cmd := &cobra.Command{
		Use:     "report FORMULA TARGET [symbol=value[unit]...]",
		Short:   "Write a PDF report of one calculation",
		Example: `  physiquist report Force F m=2kg a=3 --out force.pdf --project "Lab 3"`,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := parseRequest(args[0], args[1], args[2:], systems)
			if err != nil {
				return err
			}
			in.Request = req

			// render first so a failed calculation leaves no file behind
			var buf bytes.Buffer
			if err := report.Render(&buf, in); err != nil {
				return err
			}
			if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s wrote %s\n", style.ArrowPrefix, out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "report.pdf", "output file")
	cmd.Flags().StringVarP(&systems, "system", "s", "", "comma separated unit systems; all when empty")
	cmd.Flags().StringVar(&in.Title, "title", "", "report title")
	cmd.Flags().StringVar(&in.Project, "project", "", "project name")
	cmd.Flags().StringVar(&in.Author, "author", "", "author")
	cmd.Flags().StringVar(&in.Notes, "notes", "", "free text printed under the results")
	return cmd
}
