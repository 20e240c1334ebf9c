package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/quake-impact-service/internal/domain"
)

type wavefrontOptions struct {
	until, step float64
	distanceKm  float64
	magnitude   float64
}

func wavefrontCmd() *cobra.Command {
	opts := wavefrontOptions{until: 60, step: 5, magnitude: 6}

	cmd := &cobra.Command{
		Use:   "wavefront",
		Short: "Print P and S wave front radii over time",
		Long: "Prints the P and S wave front radii at each step. With --distance, also " +
			"prints the shaking phase at a site that far from the epicenter.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWavefront(cmd.OutOrStdout(), opts, cmd.Flags().Changed("distance"))
		},
	}

	f := cmd.Flags()
	f.Float64Var(&opts.until, "until", opts.until, "last elapsed time in seconds")
	f.Float64Var(&opts.step, "step", opts.step, "seconds between rows")
	f.Float64Var(&opts.distanceKm, "distance", 0, "site distance from the epicenter in km")
	f.Float64VarP(&opts.magnitude, "magnitude", "m", opts.magnitude, "magnitude used for shaking duration")
	return cmd
}

func runWavefront(out io.Writer, opts wavefrontOptions, withSite bool) error {
	if !(opts.step > 0) {
		return errors.New("--step must be positive")
	}
	if opts.until < 0 {
		return errors.New("--until must not be negative")
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	if withSite {
		fmt.Fprintln(tw, "T (s)\tP (km)\tS (km)\tPHASE\tPROGRESS")
	} else {
		fmt.Fprintln(tw, "T (s)\tP (km)\tS (km)")
	}

	steps := int(opts.until / opts.step)
	for i := 0; i <= steps; i++ {
		t := float64(i) * opts.step
		fr := domain.FrontRadii(t)
		if !withSite {
			fmt.Fprintf(tw, "%.1f\t%.1f\t%.1f\n", fr.ElapsedSeconds, fr.PRadiusKm, fr.SRadiusKm)
			continue
		}
		st := domain.ShakingAt(opts.distanceKm, opts.magnitude, t)
		fmt.Fprintf(tw, "%.1f\t%.1f\t%.1f\t%s\t%.0f%%\n", fr.ElapsedSeconds, fr.PRadiusKm, fr.SRadiusKm, st.Phase, st.Progress*100)
	}
	return tw.Flush()
}
