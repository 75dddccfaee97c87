package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/andyrewlee/snapscroll/internal/app"
	"github.com/andyrewlee/snapscroll/internal/config"
	"github.com/andyrewlee/snapscroll/internal/logging"
	"github.com/andyrewlee/snapscroll/internal/perf"
	"github.com/andyrewlee/snapscroll/internal/section"
	"github.com/andyrewlee/snapscroll/internal/ui/content"
	"github.com/andyrewlee/snapscroll/internal/validation"
)

// options holds command-line overrides. Only flags the user set are applied.
type options struct {
	threshold      float64
	lock           time.Duration
	visible        float64
	confirmRelease bool
	wheelDelta     float64
	theme          string
	logLevel       string
	noWatch        bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "snapscroll [document]",
		Short: "Page through a document one full-screen section at a time",
		Long: `snapscroll shows a YAML document as a scrollable page with a run of
full-screen sections in the middle. Inside the sections each scroll gesture
moves exactly one section; past either end the page scrolls normally again.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := run(cmd, opts, args)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			return err
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&opts.threshold, "threshold", 0, "accumulated scroll needed to change section")
	flags.DurationVar(&opts.lock, "lock", 0, "input lock after each transition")
	flags.Float64Var(&opts.visible, "visible", 0, "fraction of the region that must be visible to re-capture")
	flags.BoolVar(&opts.confirmRelease, "confirm-release", false, "require a second gesture to leave the sections")
	flags.Float64Var(&opts.wheelDelta, "wheel-delta", 0, "scroll amount credited per wheel notch")
	flags.StringVar(&opts.theme, "theme", "", "color theme (tokyo-night, day-light)")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flags.BoolVar(&opts.noWatch, "no-watch", false, "do not reload the document when it changes")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

// apply overlays the flags the user set on cfg.
func (o *options) apply(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("threshold") {
		cfg.Policy.Threshold = o.threshold
	}
	if flags.Changed("lock") {
		cfg.Policy.LockDuration = o.lock
	}
	if flags.Changed("visible") {
		cfg.Policy.VisibleFraction = o.visible
	}
	if flags.Changed("confirm-release") {
		cfg.Policy.ConfirmRelease = o.confirmRelease
	}
	if flags.Changed("wheel-delta") {
		if o.wheelDelta <= 0 {
			return errors.New("--wheel-delta must be positive")
		}
		cfg.WheelDelta = o.wheelDelta
	}
	if flags.Changed("theme") {
		cfg.UI.Theme = o.theme
	}
	if err := validation.ValidatePolicy(cfg.Policy); err != nil {
		return fmt.Errorf("invalid policy: %w", err)
	}
	return nil
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	level, err := logging.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := opts.apply(cmd, cfg); err != nil {
		return err
	}

	path := cfg.Document
	if len(args) == 1 {
		path = args[0]
	}
	doc := section.Default()
	if path != "" {
		if doc, err = section.Load(path); err != nil {
			return err
		}
	}
	if err := validation.ValidateDocument(doc); err != nil {
		return fmt.Errorf("invalid document %s: %w", path, err)
	}

	if !term.IsTerminal(os.Stdin.Fd()) || !term.IsTerminal(os.Stdout.Fd()) {
		return errors.New("snapscroll needs an interactive terminal")
	}

	if err := cfg.Paths.EnsureDirectories(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create %s: %v\n", cfg.Paths.Home, err)
	}
	if err := logging.Initialize(cfg.Paths.LogDir, level); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not initialize logging: %v\n", err)
	}
	defer logging.Close()
	logging.Info("Starting snapscroll %s (%d sections)", version, len(doc.Sections))

	// Detection queries the terminal and must happen before the program owns it.
	if cfg.UI.MarkdownStyle == "" {
		cfg.UI.MarkdownStyle = content.DetectStyle()
	}

	watchPath := path
	if opts.noWatch {
		watchPath = ""
	}
	a := app.New(cfg, watchPath, doc)
	p := tea.NewProgram(a, tea.WithFilter(mouseEventFilter))
	_, runErr := p.Run()
	a.Shutdown()
	perf.Flush("shutdown")
	if runErr != nil {
		logging.Error("App exited with error: %v", runErr)
		return runErr
	}
	logging.Info("snapscroll shutdown complete")
	return nil
}
