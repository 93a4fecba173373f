package commands

import (
	"github.com/spf13/cobra"
	log "github.com/sirupsen/logrus"
)

var (
	logLevel string
	envFile  string
)

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "physiquist",
		Short:         "Physics formula solver with unit conversion",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := log.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			log.SetLevel(lvl)
			log.SetOutput(cmd.ErrOrStderr())
			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "warning", "log level (debug, info, warning, error)")
	root.PersistentFlags().StringVar(&envFile, "env", ".env", "env file with TOKEN_KEY and server settings")

	root.AddCommand(
		formulasCmd(),
		formulaCmd(),
		unitsCmd(),
		solveCmd(),
		batchCmd(),
		reportCmd(),
		tokenCmd(),
		hashKeyCmd(),
	)
	return root
}

func Execute() error {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil {
		root.PrintErrln(errorLine(err))
	}
	return err
}
