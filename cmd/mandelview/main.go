package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/lmittmann/tint"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/san-kum/mandelview/internal/config"
	"github.com/san-kum/mandelview/internal/control"
	"github.com/san-kum/mandelview/internal/gui"
	"github.com/san-kum/mandelview/internal/render"
	"github.com/san-kum/mandelview/internal/session"
	"github.com/san-kum/mandelview/internal/tui"
)

var (
	configFile string
	width      int
	height     int
	maxIter    int
	workers    int
	fps        int
	preset     string
	mode       string
	frames     int
	hud        bool
	verbose    bool
	asTOML     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mandelview",
		Short: "interactive mandelbrot set explorer",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(verbose)
		},
		SilenceUsage: true,
		RunE:         runGUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configFile, "config", "c", "", "config file (yaml or toml)")
	pf.IntVar(&width, "width", config.DefaultWidth, "image width in pixels")
	pf.IntVar(&height, "height", config.DefaultHeight, "image height in pixels")
	pf.IntVar(&maxIter, "max-iter", config.DefaultMaxIteration, "iteration limit per pixel")
	pf.IntVar(&workers, "workers", 0, "render goroutines (0 = one per CPU)")
	pf.IntVar(&fps, "fps", config.DefaultFPS, "target frame rate")
	pf.StringVarP(&preset, "preset", "p", config.DefaultPreset, "starting view")
	pf.StringVarP(&mode, "mode", "m", "gradient", "color mode: gradient, grayscale, hue")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.Flags().BoolVar(&hud, "hud", false, "draw fps and view info over the image")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the raylib window (default)",
		RunE:  runGUI,
	}
	guiCmd.Flags().BoolVar(&hud, "hud", false, "draw fps and view info over the image")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "explore in the terminal with truecolor half blocks",
		RunE:  runTUI,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "render frames headless and report timings",
		RunE:  runBench,
	}
	benchCmd.Flags().IntVarP(&frames, "frames", "n", 60, "frames to render")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list starting views",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCENTER\tZOOM\tDESCRIPTION")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				v := p.View()
				cx, cy := p.Region.Center()
				fmt.Fprintf(w, "%s\t(%.6f, %.6f)\t%.3g\t%s\n", p.Name, cx, cy, v.Zoom, p.Description)
			}
			w.Flush()
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			out, err := cfg.Encode(asTOML)
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(out)
			return err
		},
	}
	configCmd.Flags().BoolVar(&asTOML, "toml", false, "print as toml instead of yaml")

	rootCmd.AddCommand(guiCmd, tuiCmd, benchCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})
	slog.SetDefault(slog.New(handler))
}

// loadConfig starts from the config file, or the defaults, and applies only
// the flags the user actually set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		slog.Debug("loaded config", "path", configFile)
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("max-iter") {
		cfg.MaxIteration = maxIter
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("preset") {
		cfg.Preset = preset
	}
	if flags.Changed("mode") {
		cfg.Mode = mode
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newSession(cfg *config.Config) (*session.Session, error) {
	r, err := render.New(cfg.Width, cfg.Height, cfg.MaxIteration, cfg.Workers)
	if err != nil {
		return nil, err
	}
	ctrl := control.NewWithView(cfg.ControlSettings(), cfg.InitialView())
	slog.Debug("session ready",
		"width", cfg.Width, "height", cfg.Height,
		"max_iteration", cfg.MaxIteration, "workers", r.Workers(),
		"preset", cfg.Preset, "mode", cfg.Mode)
	return session.New(ctrl, r), nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sess, err := newSession(cfg)
	if err != nil {
		return err
	}

	win, err := gui.Open(gui.Options{
		Title:    cfg.Title,
		Width:    cfg.Width,
		Height:   cfg.Height,
		FPS:      cfg.FPS,
		Bindings: cfg.Keys.Bindings(),
		HUD:      hud,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	win.SetStatus(func() string {
		v := sess.Controller().View()
		return fmt.Sprintf("zoom %.3g  (%.6f, %.6f)  %s", v.Zoom, v.XOffset, v.YOffset, v.Mode)
	})

	ctx, cancel := signalContext()
	defer cancel()
	if err := sess.Run(ctx, win); err != nil {
		return err
	}
	logSummary(sess.Stats())
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	// A terminal cell is two pixels tall; keep the default size sane.
	if !cmd.Flags().Changed("width") && configFile == "" {
		cfg.Width = 120
	}
	if !cmd.Flags().Changed("height") && configFile == "" {
		cfg.Height = 60
	}
	tfps := cfg.FPS
	if !cmd.Flags().Changed("fps") {
		tfps = 30
	}

	sess, err := newSession(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()
	return tui.Run(ctx, sess, cfg.Keys.Bindings(), tfps)
}

// runBench holds the zoom_in control so every frame sees a new view.
func runBench(cmd *cobra.Command, args []string) error {
	if frames < 1 {
		return errors.Errorf("--frames %d must be at least 1", frames)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sess, err := newSession(cfg)
	if err != nil {
		return err
	}

	headless := session.NewHeadless(frames, session.Holding(control.ZoomIn))
	start := time.Now()
	if err := sess.Run(context.Background(), headless); err != nil {
		return err
	}
	elapsed := time.Since(start)

	ms := make([]float64, len(headless.Durations))
	for i, d := range headless.Durations {
		ms[i] = float64(d.Microseconds()) / 1000
	}

	fmt.Printf("benchmarking %dx%d, max %d iterations, %d workers\n\n",
		cfg.Width, cfg.Height, cfg.MaxIteration, sess.Renderer().Workers())
	if len(ms) > 1 {
		fmt.Println(asciigraph.Plot(ms,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption("frame time (ms)")))
		fmt.Println()
	}

	st := sess.Stats()
	view := sess.Controller().View()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FRAMES\tTOTAL\tAVG\tMIN\tMAX\tFPS\tFINAL ZOOM")
	fmt.Fprintf(w, "%d\t%v\t%v\t%v\t%v\t%.1f\t%.3g\n",
		st.Frames, elapsed.Round(time.Millisecond), st.Average().Round(time.Microsecond),
		st.Min.Round(time.Microsecond), st.Max.Round(time.Microsecond), st.FPS(), view.Zoom)
	return w.Flush()
}

func logSummary(st session.Stats) {
	slog.Info("session ended",
		"frames", st.Frames,
		"avg", st.Average().Round(time.Microsecond),
		"fps", fmt.Sprintf("%.1f", st.FPS()))
}
