package main

import (
	"fmt"
	"io"
	"runtime"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/quake-impact-service/internal/domain"
	"github.com/couchcryptid/quake-impact-service/internal/export"
	"github.com/couchcryptid/quake-impact-service/internal/roster"
)

const formatSummary = "summary"

type assessOptions struct {
	id         string
	magnitude  float64
	lat, lon   float64
	depthKm    float64
	rosterPath string
	format     string
	workers    int
}

func assessCmd() *cobra.Command {
	opts := assessOptions{
		magnitude: 7.0,
		lat:       roster.ReferenceEpicenter.Lat,
		lon:       roster.ReferenceEpicenter.Lon,
		depthKm:   8,
		format:    formatSummary,
		workers:   runtime.GOMAXPROCS(0),
	}

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Assess every building in a roster under one scenario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAssess(cmd.OutOrStdout(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.id, "id", "", "scenario ID")
	f.Float64VarP(&opts.magnitude, "magnitude", "m", opts.magnitude, "moment magnitude (4.0-8.0)")
	f.Float64Var(&opts.lat, "lat", opts.lat, "epicenter latitude")
	f.Float64Var(&opts.lon, "lon", opts.lon, "epicenter longitude")
	f.Float64VarP(&opts.depthKm, "depth", "d", opts.depthKm, "hypocenter depth in km (1-30)")
	f.StringVarP(&opts.rosterPath, "roster", "r", "", "YAML or JSON roster; defaults to the built-in San Francisco roster")
	f.StringVarP(&opts.format, "format", "f", opts.format, "output format: summary, json, csv, geojson")
	f.IntVarP(&opts.workers, "workers", "w", opts.workers, "buildings assessed in parallel")
	return cmd
}

func runAssess(out io.Writer, opts assessOptions) error {
	s, err := domain.NewScenario(opts.magnitude, domain.Geo{Lat: opts.lat, Lon: opts.lon}, opts.depthKm)
	if err != nil {
		return err
	}
	s.ID = opts.id

	buildings, err := roster.Load(opts.rosterPath)
	if err != nil {
		return err
	}
	assessments, err := domain.EvaluateConcurrent(s, buildings, opts.workers)
	if err != nil {
		return err
	}
	report := domain.NewReport(s, assessments)

	if opts.format == formatSummary {
		return writeSummary(out, report)
	}
	format, err := export.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	return export.Write(out, format, report)
}

func writeSummary(out io.Writer, r domain.Report) error {
	s := r.Summary
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "Scenario\tM%.1f at (%.4f, %.4f), depth %.0f km, %s\n",
		r.Scenario.Magnitude, r.Scenario.Epicenter.Lat, r.Scenario.Epicenter.Lon, r.Scenario.DepthKm, r.Scenario.Fault())
	fmt.Fprintf(tw, "Buildings\t%d\n", s.Buildings)
	fmt.Fprintf(tw, "Average damage\t%.1f%%\n", s.AverageDamageRatio*100)
	fmt.Fprintf(tw, "Severe or worse\t%d\n", s.SevereOrWorse)
	fmt.Fprintf(tw, "Average multiplier\t%.2fx\n", s.AverageMultiplier)
	fmt.Fprintf(tw, "Average recovery\t%.0f days\n", s.AverageRecoveryDays)
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "STATE\tBUILDINGS")
	for _, st := range domain.DamageStates() {
		fmt.Fprintf(tw, "%s\t%d\n", st, s.StateCounts[st])
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "RECOVERY\tBUILDINGS")
	for _, label := range domain.RecoveryBandLabels() {
		fmt.Fprintf(tw, "%s\t%d\n", label, s.RecoveryBands[label])
	}

	if len(s.Counties) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "COUNTY\tBUILDINGS\tAVG DAMAGE\tAVG RECOVERY")
		for _, name := range s.CountyNames() {
			c := s.Counties[name]
			fmt.Fprintf(tw, "%s\t%d\t%.1f%%\t%.0f days\n", name, c.Buildings, c.AverageDamageRatio*100, c.AverageRecoveryDays)
		}
	}

	if len(s.HighRiskBuildings) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintf(tw, "High risk\t%d buildings\n", len(s.HighRiskBuildings))
	}
	return tw.Flush()
}
