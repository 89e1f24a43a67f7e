package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/san-kum/trajsim/internal/config"
	"github.com/san-kum/trajsim/internal/dynamo"
	"github.com/san-kum/trajsim/internal/export"
	"github.com/san-kum/trajsim/internal/integrators"
	"github.com/san-kum/trajsim/internal/metrics"
	"github.com/san-kum/trajsim/internal/optim"
	"github.com/san-kum/trajsim/internal/physics"
	"github.com/san-kum/trajsim/internal/trajectory"
	"github.com/san-kum/trajsim/internal/viz"
	"github.com/spf13/cobra"
)

type solution struct {
	cfg    *config.Config
	series *trajectory.Series
	energy *trajectory.EnergySeries
}

func solve(cfg *config.Config) (*solution, error) {
	integ, err := integrators.New(cfg.Integrator)
	if err != nil {
		return nil, err
	}
	s, err := trajectory.SolveWith(cfg.Params, integ)
	if err != nil {
		return nil, err
	}
	return &solution{
		cfg:    cfg,
		series: s,
		energy: trajectory.DeriveEnergy(s, cfg.Params.Mass, cfg.Params.Gravity),
	}, nil
}

func newRunCmd() *cobra.Command {
	f := &simFlags{}
	var (
		plot          bool
		width, height int
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "solve once and print a summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.resolve(cmd)
			if err != nil {
				return err
			}
			sol, err := solve(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, viz.Title.Render(cfg.Integrator)+"  "+viz.Subtle.Render(cfg.Params.String()))
			if err := printSummary(out, metrics.Summarize(cfg.Params, sol.series, sol.energy)); err != nil {
				return err
			}
			if plot {
				fmt.Fprintln(out)
				fmt.Fprintln(out, viz.RenderAll(viz.Panels(sol.series, sol.energy), width, height))
			}
			return nil
		},
	}
	f.register(cmd)
	cmd.Flags().BoolVar(&plot, "plot", false, "print ascii plots of every panel")
	cmd.Flags().IntVar(&width, "width", 60, "plot width in columns")
	cmd.Flags().IntVar(&height, "height", 12, "plot height in rows")
	return cmd
}

func printSummary(out io.Writer, sum metrics.Summary) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tSIMULATED\tDRAG-FREE")
	fmt.Fprintf(w, "samples\t%d\t\n", sum.Samples)
	fmt.Fprintf(w, "dt\t%.4fs\t\n", sum.Dt)
	if sum.Apex != nil {
		fmt.Fprintf(w, "apex time\t%.3fs\t%.3fs\n", sum.Apex.T, sum.Ideal.ApexTime)
		fmt.Fprintf(w, "apex height\t%.3fm\t%.3fm\n", sum.Apex.Y, sum.Ideal.ApexHeight)
	} else {
		fmt.Fprintf(w, "apex\t-\t%.3fm\n", sum.Ideal.ApexHeight)
	}
	if sum.Range != nil {
		fmt.Fprintf(w, "flight time\t%.3fs\t%.3fs\n", sum.Range.T, sum.Ideal.FlightTime)
		fmt.Fprintf(w, "range\t%.3fm\t%.3fm\n", sum.Range.X, sum.Ideal.Range)
	} else {
		fmt.Fprintf(w, "range\t-\t%.3fm\n", sum.Ideal.Range)
	}
	fmt.Fprintf(w, "max speed\t%.3fm/s\t\n", sum.MaxSpeed)
	fmt.Fprintf(w, "final speed\t%.3fm/s\t\n", sum.FinalSpeed)
	fmt.Fprintf(w, "energy drift\t%.3e\t\n", sum.EnergyDrift)
	fmt.Fprintf(w, "dissipated\t%.3fJ\t\n", sum.Dissipated)
	return w.Flush()
}

func newExportCmd() *cobra.Command {
	f := &simFlags{}
	var (
		format        string
		outPath       string
		width, height int
		stroke        string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "write the solved series as csv, json, svg or png",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.resolve(cmd)
			if err != nil {
				return err
			}
			if format == "png" && outPath == "" {
				return errors.New("png export requires --out")
			}
			sol, err := solve(cfg)
			if err != nil {
				return err
			}
			write, err := exportWriter(format, sol, width, height, stroke)
			if err != nil {
				return err
			}

			if outPath == "" {
				if err := write(cmd.OutOrStdout()); err != nil {
					return fmt.Errorf("export %s: %w", format, err)
				}
				return nil
			}

			file, err := os.Create(outPath)
			if err != nil {
				return err
			}
			if err := write(file); err != nil {
				file.Close()
				os.Remove(outPath)
				return fmt.Errorf("export %s: %w", format, err)
			}
			if err := file.Close(); err != nil {
				return fmt.Errorf("export %s: %w", format, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", outPath)
			return nil
		},
	}
	f.register(cmd)
	cmd.Flags().StringVar(&format, "format", "csv", "output format: csv, json, svg, png")
	cmd.Flags().StringVar(&outPath, "out", "", "output file (stdout when empty)")
	cmd.Flags().IntVar(&width, "width", 800, "image width in pixels (svg, png)")
	cmd.Flags().IntVar(&height, "height", 600, "image height in pixels (svg, png)")
	cmd.Flags().StringVar(&stroke, "stroke", "#1e90ff", "trajectory stroke color (svg)")
	return cmd
}

// exportWriter maps format to a writer over the solved series.
func exportWriter(format string, sol *solution, width, height int, stroke string) (func(io.Writer) error, error) {
	switch format {
	case "csv":
		return func(w io.Writer) error {
			return export.WriteCSV(w, sol.series, sol.energy)
		}, nil
	case "json":
		return func(w io.Writer) error {
			return export.WriteJSON(w, export.NewDocument(sol.cfg.Integrator, sol.cfg.Params, sol.series, sol.energy))
		}, nil
	case "svg":
		return func(w io.Writer) error {
			_, err := io.WriteString(w, export.TrajectorySVG(sol.series, width, height, stroke))
			return err
		}, nil
	case "png":
		return func(w io.Writer) error {
			dpi := float64(export.DefaultDPI)
			return export.WritePNG(w, viz.Panels(sol.series, sol.energy), float64(width)/dpi, float64(height)/dpi, export.DefaultDPI)
		}, nil
	}
	return nil, fmt.Errorf("unknown format: %s (csv, json, svg, png)", format)
}

func newCompareCmd() *cobra.Command {
	f := &simFlags{}
	cmd := &cobra.Command{
		Use:   "compare [integrator...]",
		Short: "compare integrators against the semi-implicit reference",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.resolve(cmd)
			if err != nil {
				return err
			}
			names := args
			if len(names) == 0 {
				names = integrators.Names()
			}

			refCfg := *cfg
			refCfg.Integrator = integrators.Reference
			ref, err := solve(&refCfg)
			if err != nil {
				return err
			}
			refEnd := finalState(ref.series)

			var h dynamo.Hamiltonian = physics.NewProjectile(cfg.Params.Mass, cfg.Params.Gravity, cfg.Params.Drag)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "INTEGRATOR\tFINAL X\tFINAL Y\tDEVIATION\tENERGY ERR\tENERGY DRIFT\tTIME")
			for _, name := range names {
				run := *cfg
				run.Integrator = name
				start := time.Now()
				sol, err := solve(&run)
				if err != nil {
					return err
				}
				elapsed := time.Since(start)

				end := finalState(sol.series)
				fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%.3e\t%.3e\t%.3e\t%v\n",
					name,
					end[0], end[1],
					end[:2].Sub(refEnd[:2]).Norm(),
					math.Abs(h.Energy(end)-h.Energy(refEnd)),
					metrics.EnergyDrift(sol.energy),
					elapsed.Round(time.Microsecond),
				)
			}
			return w.Flush()
		},
	}
	f.register(cmd)
	return cmd
}

// finalState is the last sample laid out as [x, y, vx, vy].
func finalState(s *trajectory.Series) dynamo.State {
	n := s.Len() - 1
	return dynamo.State{s.X[n], s.Y[n], s.VX[n], s.VY[n]}
}

func newSweepCmd() *cobra.Command {
	f := &simFlags{}
	var (
		axes      []string
		objective string
		workers   int
		top       int
		savePath  string
	)
	cmd := &cobra.Command{
		Use:     "sweep",
		Short:   "grid search parameters for the best trajectory",
		Example: "  trajsim sweep --vary angle=10:80:5 --k 0.5 --objective range",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.resolve(cmd)
			if err != nil {
				return err
			}
			if len(axes) == 0 {
				return errors.New("at least one --vary axis is required")
			}
			parsed := make([]optim.Axis, len(axes))
			for i, s := range axes {
				if parsed[i], err = optim.ParseAxis(s); err != nil {
					return err
				}
			}
			obj, err := optim.GetObjective(objective)
			if err != nil {
				return err
			}

			search := optim.NewGridSearch(parsed...)
			search.Integrator = cfg.Integrator
			if workers > 0 {
				search.Workers = workers
			}
			res, err := search.Search(cmd.Context(), cfg.Params, obj)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s over %d points, %d skipped\n", viz.Title.Render(obj.Name), search.Size(), res.Skipped)
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			header := "RANK"
			for _, a := range parsed {
				header += "\t" + strings.ToUpper(a.Param.String())
			}
			fmt.Fprintln(w, header+"\tSCORE")
			for i, c := range res.Candidates {
				if top > 0 && i >= top {
					break
				}
				row := fmt.Sprintf("%d", i+1)
				for _, a := range parsed {
					row += fmt.Sprintf("\t%g", c.Params.Get(a.Param))
				}
				fmt.Fprintf(w, "%s\t%.4f\n", row, c.Score)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			if savePath == "" {
				return nil
			}
			best, ok := res.Best()
			if !ok {
				return errors.New("no valid point to save")
			}
			if err := config.Save(savePath, &config.Config{Integrator: cfg.Integrator, Params: best.Params}); err != nil {
				return fmt.Errorf("save %s: %w", savePath, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "best point written to %s\n", savePath)
			return nil
		},
	}
	f.register(cmd)
	cmd.Flags().StringArrayVar(&axes, "vary", nil, "swept parameter as name=from:to:step (repeatable)")
	cmd.Flags().StringVar(&objective, "objective", "range", "score to maximize: "+strings.Join(optim.ListObjectives(), ", "))
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel solves (0 uses every CPU)")
	cmd.Flags().IntVar(&top, "top", 10, "rows to print (0 prints all)")
	cmd.Flags().StringVar(&savePath, "save", "", "write the best point as a --config file")
	return cmd
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tPARAMS")
			for _, name := range config.ListPresets() {
				fmt.Fprintf(w, "%s\t%s\n", name, config.Presets[name])
			}
			return w.Flush()
		},
	}
}
