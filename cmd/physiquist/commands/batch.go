package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	log "github.com/sirupsen/logrus"

	"physiquist/internal/calc/batch"
	"physiquist/internal/calc/importer"
	"physiquist/internal/style"
)

func batchCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "batch FILE.xlsx",
		Short: "Solve every request of an xlsx workbook",
		Long: `Solve every request of an xlsx workbook. The first sheet holds a header row
and one request per row: formula, target, then symbol, value and unit triples.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			rows, err := importer.ParseWorkbook(f)
			if err != nil {
				return err
			}
			res, err := importer.Run(rows)
			if err != nil {
				return err
			}
			log.WithFields(log.Fields{"count": res.Count, "failed": res.Failed}).Info("batch solved")

			fmt.Fprint(cmd.OutOrStdout(), renderBatch(rows, res))

			if out != "" {
				w, err := os.Create(out)
				if err != nil {
					return err
				}
				if err := importer.WriteResults(w, res.Items); err != nil {
					w.Close()
					return err
				}
				if err := w.Close(); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s wrote %s\n", style.ArrowPrefix, out)
			}
			if res.Failed > 0 {
				return fmt.Errorf("%d of %d requests failed", res.Failed, res.Count)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the results to this xlsx file")
	return cmd
}

func renderBatch(rows []importer.Row, res batch.Result) string {
	t := style.NewTable(
		style.Column{Name: "Row", Width: 4, Align: style.AlignRight},
		style.Column{Name: "Formula", Width: 30},
		style.Column{Name: "Target", Width: 7},
		style.Column{Name: "Result", Width: 40},
	)
	for i, it := range res.Items {
		result := it.Error
		if !it.Failed() && len(it.Result.Entries) > 0 {
			result = it.Result.Entries[0].String()
		}
		t.AddRow(strconv.Itoa(rows[i].Line), it.Request.Formula, it.Request.Target, result)
	}
	return t.Render()
}
