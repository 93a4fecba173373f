package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	log "github.com/sirupsen/logrus"

	"physiquist/internal/calc"
	"physiquist/internal/present"
	"physiquist/internal/style"
)

func solveCmd() *cobra.Command {
	var (
		systems string
		asJSON  bool
	)
	cmd := &cobra.Command{
		Use:   "solve FORMULA TARGET [symbol=value[unit]...]",
		Short: "Solve a formula for one variable",
		Example: `  physiquist solve Force F m=2kg a=3
  physiquist solve "Ohm's Law" I V=12V "R=4 kΩ" --system SI,FPS
  physiquist solve "Maximum Height" H u=20 θ=45deg --json`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := parseRequest(args[0], args[1], args[2:], systems)
			if err != nil {
				return err
			}
			log.WithFields(log.Fields{
				"formula": req.Formula,
				"target":  req.Target,
				"inputs":  len(req.Inputs),
			}).Debug("solving")

			res, err := calc.Calculate(req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			fmt.Fprint(out, renderResult(res))
			return nil
		},
	}
	cmd.Flags().StringVarP(&systems, "system", "s", "", "comma separated unit systems (SI, MKS, FPS); all when empty")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

func renderResult(res present.Result) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s %s %s\n",
		style.ArrowPrefix, style.Info.Render(res.Formula),
		style.Dim.Render("solving for"), style.Bold.Render(res.Target))
	for _, e := range res.Entries {
		fmt.Fprintf(&sb, "  %-4s %s\n", e.System, style.Success.Render(e.String()))
	}
	return sb.String()
}
