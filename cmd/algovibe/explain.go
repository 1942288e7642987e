package main

import (
	"github.com/spf13/cobra"

	"github.com/ayushran32/Error-404-Algovibe/render"
)

func newExplainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain",
		Short: "Explain the sliding-window algorithm",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return render.Explain(cmd.OutOrStdout())
		},
	}
}
