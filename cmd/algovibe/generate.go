package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ayushran32/Error-404-Algovibe/parse"
	"github.com/ayushran32/Error-404-Algovibe/wallgen"
)

const (
	generateShapeFlag     = "shape"
	generateCountFlag     = "count"
	generateSeedFlag      = "seed"
	generateBaseFlag      = "base"
	generateAmplitudeFlag = "amplitude"
)

func newGenerateCmd() *cobra.Command {
	var (
		shape     string
		count     int
		seed      int64
		base      int
		amplitude int
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a generated wall as comma-separated strengths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := []wallgen.Option{wallgen.WithSeed(seed)}
			if cmd.Flags().Changed(generateBaseFlag) {
				if base < 0 {
					return fmt.Errorf("--%s must be non-negative", generateBaseFlag)
				}
				opts = append(opts, wallgen.WithBase(base))
			}
			if cmd.Flags().Changed(generateAmplitudeFlag) {
				if amplitude <= 0 {
					return fmt.Errorf("--%s must be positive", generateAmplitudeFlag)
				}
				opts = append(opts, wallgen.WithAmplitude(amplitude))
			}

			wall, err := wallgen.ByName(shape, count, opts...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), parse.Format(wall))
			return nil
		},
	}

	cmd.Flags().StringVar(&shape, generateShapeFlag, "pulse", "wall shape: pulse, random or ramp")
	cmd.Flags().IntVar(&count, generateCountFlag, 16, "number of segments")
	cmd.Flags().Int64Var(&seed, generateSeedFlag, 1, "random seed")
	cmd.Flags().IntVar(&base, generateBaseFlag, 0, "strength of weak segments")
	cmd.Flags().IntVar(&amplitude, generateAmplitudeFlag, 0, "strength added on top of base")

	return cmd
}
