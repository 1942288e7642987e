package main

import (
	"github.com/spf13/cobra"
)

// rootFlags are the persistent flags shared by every subcommand.
type rootFlags struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	rf := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "algovibe",
		Short: "Algovibe - watch the longest defensible wall segment being found",
		Long: `Algovibe animates a sliding-window scan over wall segment strengths and
reports the longest run of segments that all hold against threat level K.

Commands:
  scan      Animate a scan and print the defense report
  explain   Explain the algorithm
  generate  Print a generated wall`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&rf.configPath, "config", "", "config file (default: .algovibe.yaml in CWD or $HOME)")
	rootCmd.PersistentFlags().BoolVarP(&rf.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(newScanCmd(rf))
	rootCmd.AddCommand(newExplainCmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
