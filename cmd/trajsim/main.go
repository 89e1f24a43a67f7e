package main

import (
	"fmt"
	"os"

	"github.com/san-kum/trajsim/internal/config"
	"github.com/san-kum/trajsim/internal/integrators"
	"github.com/san-kum/trajsim/internal/trajectory"
	"github.com/san-kum/trajsim/internal/tui"
	"github.com/san-kum/trajsim/internal/viz"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	uiFlags := &simFlags{}
	rootCmd := &cobra.Command{
		Use:   "trajsim",
		Short: "projectile trajectories with quadratic air drag",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, uiFlags)
		},
		SilenceUsage: true,
	}
	uiFlags.register(rootCmd)

	tuiFlags := &simFlags{}
	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive slider interface",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, tuiFlags)
		},
	}
	tuiFlags.register(tuiCmd)

	rootCmd.AddCommand(tuiCmd, newRunCmd(), newExportCmd(), newCompareCmd(), newSweepCmd(), newPresetsCmd())
	return rootCmd
}

func runTUI(cmd *cobra.Command, f *simFlags) error {
	cfg, err := f.resolve(cmd)
	if err != nil {
		return err
	}
	return tui.Run(cfg.Params, cfg.Integrator)
}

// simFlags binds one flag per trajectory parameter plus the config sources.
type simFlags struct {
	configFile string
	preset     string
	integrator string
	values     map[trajectory.Param]*float64
	samples    int
}

func (f *simFlags) register(cmd *cobra.Command) {
	def := trajectory.DefaultParams()
	f.values = make(map[trajectory.Param]*float64)
	for _, p := range trajectory.AllParams() {
		usage := config.Info(p)
		if unit := config.Bounds(p).Unit; unit != "" {
			usage += " (" + unit + ")"
		}
		if p == trajectory.ParamNumSamples {
			cmd.Flags().IntVar(&f.samples, p.String(), def.NumSamples, usage)
			continue
		}
		v := new(float64)
		cmd.Flags().Float64Var(v, p.String(), def.Get(p), usage)
		f.values[p] = v
	}
	cmd.Flags().StringVar(&f.configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&f.preset, "preset", "", "use preset configuration")
	cmd.Flags().StringVar(&f.integrator, "integrator", integrators.Reference, "integrator")
}

// resolve layers defaults, preset, config file and explicitly set flags, in
// that order. Values outside the slider bounds are reported but accepted.
func (f *simFlags) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if f.preset != "" {
		cfg = config.GetPreset(f.preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", f.preset, config.ListPresets())
		}
	}

	if f.configFile != "" {
		loaded, err := config.LoadOver(f.configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("integrator") {
		cfg.Integrator = f.integrator
	}
	for _, p := range trajectory.AllParams() {
		if !cmd.Flags().Changed(p.String()) {
			continue
		}
		if p == trajectory.ParamNumSamples {
			cfg.Params.NumSamples = f.samples
			continue
		}
		cfg.Params = cfg.Params.With(p, *f.values[p])
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	for _, err := range config.CheckBounds(cfg.Params) {
		fmt.Fprintln(cmd.ErrOrStderr(), viz.Warning.Render("warning: "+err.Error()))
	}
	return cfg, nil
}
