package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/avasek/gridterm/internal/automata"
	"github.com/avasek/gridterm/internal/config"
	"github.com/avasek/gridterm/internal/render"
	"github.com/avasek/gridterm/internal/storage"
	"github.com/avasek/gridterm/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	width      int
	height     int
	rule       int
	seed       int64
	modeName   string
	cutoff     float64
	theme      string
	fps        int
	steps      int
	retain     int
)

// Foreground colors for the raw ANSI driver, per theme (xterm 256 palette).
var themeColors = map[string]render.Color{
	"retro":     render.Ansi256(46),
	"cyberpunk": render.Ansi256(201),
	"minimal":   render.Ansi256(15),
	"ocean":     render.Ansi256(39),
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "gridterm",
		Short: "cellular automaton lab with sub-cell terminal rendering",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd, "")
			if err != nil {
				return err
			}
			sim, mode, err := buildSim(cfg)
			if err != nil {
				return err
			}
			return viz.Run(sim, cfg, mode)
		},
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".gridterm", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	addRunFlags(rootCmd)

	runCmd := &cobra.Command{
		Use:   "run [model]",
		Short: "render a model directly on the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runModel,
	}
	addRunFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live [model]",
		Short: "interactive TUI with stats and themes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd, modelArg(args))
			if err != nil {
				return err
			}
			sim, mode, err := buildSim(cfg)
			if err != nil {
				return err
			}
			return viz.Run(sim, cfg, mode)
		},
	}
	addRunFlags(liveCmd)

	recordCmd := &cobra.Command{
		Use:   "record [model]",
		Short: "run headless and save the population series",
		Args:  cobra.MaximumNArgs(1),
		RunE:  recordModel,
	}
	addRunFlags(recordCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list models, presets and saved runs",
		RunE:  listAll,
	}

	rootCmd.AddCommand(runCmd, liveCmd, recordCmd, listCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "grid width in cells")
	cmd.Flags().IntVar(&height, "height", config.DefaultHeight, "grid height in cells")
	cmd.Flags().IntVar(&rule, "rule", config.DefaultRule, "wolfram rule (elementary)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	cmd.Flags().StringVar(&modeName, "mode", config.DefaultMode, "glyph mode: block or braille")
	cmd.Flags().Float64Var(&cutoff, "cutoff", config.DefaultCutoff, "on/off threshold")
	cmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	cmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "ticks per second")
	cmd.Flags().IntVar(&steps, "steps", 0, "stop after N ticks (0 = run until interrupted)")
	cmd.Flags().IntVar(&retain, "retain", 0, "bound frame history to N frames (0 = store all)")
	cmd.Flags().StringVar(&preset, "preset", "", "named preset configuration")
}

func modelArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

// buildConfig layers file, preset and flags over the defaults.
func buildConfig(cmd *cobra.Command, model string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if model != "" {
		cfg.Model = model
	}
	if preset != "" {
		p := config.GetPreset(cfg.Model, preset)
		if p == nil {
			return nil, fmt.Errorf("no preset %q for model %q", preset, cfg.Model)
		}
		cfg = p
	}
	flagOverrides(cmd, cfg)
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, nil
}

func flagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = height
	}
	if cmd.Flags().Changed("rule") {
		cfg.Rule = uint8(rule)
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("mode") {
		cfg.Mode = modeName
	}
	if cmd.Flags().Changed("cutoff") {
		cfg.Cutoff = cutoff
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = theme
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = fps
	}
	if cmd.Flags().Changed("steps") {
		cfg.Steps = steps
	}
	if cmd.Flags().Changed("retain") {
		cfg.Retain = retain
	}
}

func buildSim(cfg *config.Config) (automata.Sim, render.GlyphMode, error) {
	sim, err := automata.New(cfg.Model, cfg.Width, cfg.Height)
	if err != nil {
		return nil, 0, err
	}
	if el, ok := sim.(*automata.Elementary); ok {
		el.SetRule(cfg.Rule)
	}
	mode, err := render.ParseMode(cfg.Mode)
	if err != nil {
		return nil, 0, err
	}
	return sim, mode, nil
}

// runModel drives the raw ANSI renderer: one tick per ticker fire, frame
// appended then rendered, until the step limit or an interrupt.
func runModel(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, modelArg(args))
	if err != nil {
		return err
	}
	sim, mode, err := buildSim(cfg)
	if err != nil {
		return err
	}
	sim.Reset(cfg.Seed)

	// Rank-1 models need history for the trail; boards render from the
	// current frame alone.
	store := sim.Frame().Rank() == 1
	retainN := cfg.Retain
	if store && retainN == 0 {
		retainN = 600
	}

	out, err := render.NewOutput(os.Stdout, render.Options{
		Mode:   mode,
		Cutoff: cfg.Cutoff,
		Color:  themeColors[cfg.Theme],
		Store:  store,
		Retain: retainN,
	})
	if err != nil {
		return err
	}
	defer out.Stop()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	ticker := time.NewTicker(time.Second / time.Duration(cfg.FPS))
	defer ticker.Stop()

	for tick := 1; cfg.Steps == 0 || tick <= cfg.Steps; tick++ {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
		sim.Step()
		f := sim.Frame()
		if err := out.Append(f); err != nil {
			return err
		}
		elapsed := float64(tick) / float64(cfg.FPS)
		if err := out.Render(f, tick, elapsed); err != nil {
			return err
		}
	}
	return nil
}

func recordModel(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, modelArg(args))
	if err != nil {
		return err
	}
	if cfg.Steps <= 0 {
		cfg.Steps = 1000
	}
	sim, _, err := buildSim(cfg)
	if err != nil {
		return err
	}
	sim.Reset(cfg.Seed)

	result := &storage.Result{}
	for tick := 1; tick <= cfg.Steps; tick++ {
		sim.Step()
		f := sim.Frame()
		live := 0
		h, w := f.Shape()
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if render.IsOn(f.At(y, x), cfg.Cutoff) {
					live++
				}
			}
		}
		result.Ticks = append(result.Ticks, tick)
		result.Population = append(result.Population, live)
	}

	store := storage.New(dataDir)
	if err := store.Init(); err != nil {
		return err
	}
	runID, err := store.Save(storage.RunMetadata{
		Model:  cfg.Model,
		Seed:   cfg.Seed,
		Width:  cfg.Width,
		Height: cfg.Height,
		Steps:  cfg.Steps,
		Mode:   cfg.Mode,
		Cutoff: cfg.Cutoff,
	}, result)
	if err != nil {
		return err
	}
	fmt.Printf("saved %s (%d ticks)\n", runID, cfg.Steps)
	return nil
}

func listAll(cmd *cobra.Command, args []string) error {
	fmt.Println("models:")
	for _, name := range automata.Names() {
		presets := config.ListPresets(name)
		if len(presets) > 0 {
			fmt.Printf("  %-12s presets: %s\n", name, strings.Join(presets, ", "))
		} else {
			fmt.Printf("  %s\n", name)
		}
	}

	store := storage.New(dataDir)
	runs, err := store.List()
	if err != nil {
		return err
	}
	if len(runs) > 0 {
		fmt.Println("runs:")
		for _, r := range runs {
			fmt.Printf("  %-28s %s %dx%d seed=%d\n", r.ID, r.Model, r.Width, r.Height, r.Seed)
		}
	}
	return nil
}
