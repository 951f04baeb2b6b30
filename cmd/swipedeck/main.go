package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"swipedeck/internal/config"
	"swipedeck/internal/deck"
	"swipedeck/internal/discovery"
	"swipedeck/internal/eventbus"
	"swipedeck/internal/logging"
	"swipedeck/internal/ui"
)

// errNoDeck is returned when neither an argument nor the config names a deck
var errNoDeck = errors.New("no deck file given")

type options struct {
	configPath string
	threshold  float64
	logLevel   string
	compact    bool
	noAnimate  bool
	noWatch    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "swipedeck [deck|dir]",
		Short: "Page through a slide deck in the terminal",
		Long: `swipedeck shows a deck of slides as a carousel.

Decks are TOML, YAML or Markdown files. Navigate with the arrow keys, jump
with 1-9 or ':', or drag the card with the mouse: a fast drag to the left
shows the next slide, to the right the previous one. Paging wraps around
at both ends.

A directory argument is searched for deck files and must hold exactly one.
The deck file is watched and reloaded when it changes.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts, args)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/swipedeck/config.toml)")
	flags.Float64Var(&opts.threshold, "threshold", 0, "swipe power needed to change slides")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	cmd.Flags().BoolVar(&opts.compact, "compact", false, "use the compact layout")
	cmd.Flags().BoolVar(&opts.noAnimate, "no-animate", false, "disable slide transitions")
	cmd.Flags().BoolVar(&opts.noWatch, "no-watch", false, "do not reload the deck when it changes")

	cmd.AddCommand(
		newValidateCmd(),
		newListCmd(),
		newInitConfigCmd(opts),
		newGestureCmd(opts),
	)
	return cmd
}

// loadConfig reads the config file and applies command line overrides
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	path := opts.configPath
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.NewConfigService(path).Load()
	if err != nil {
		return nil, err
	}

	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}
	if changed("threshold") {
		cfg.Carousel.SwipeThreshold = opts.threshold
	}
	if changed("log-level") {
		cfg.Logging.Level = opts.logLevel
	}
	if changed("compact") && opts.compact {
		cfg.UI.Size = config.SizeCompact
	}
	if changed("no-animate") && opts.noAnimate {
		cfg.UI.Animate = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runTUI(cmd *cobra.Command, opts *options, args []string) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	deckPath := cfg.Deck
	if len(args) > 0 {
		deckPath = args[0]
	}
	if deckPath == "" {
		return fmt.Errorf("%w: pass a deck path or set deck in the config file", errNoDeck)
	}
	deckPath, err = discovery.NewScanner(nil).Resolve(cmd.Context(), deckPath)
	if err != nil {
		return err
	}

	d, err := deck.Load(deckPath)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bus := eventbus.New(logger)
	defer bus.Close()

	model, err := ui.NewModel(cfg, d, deckPath, bus, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	model.SetProgram(p)

	unsubscribe := bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	})
	defer unsubscribe()

	if !opts.noWatch {
		w, err := deck.NewWatcher(deckPath, deck.DefaultDebounce, logger)
		if err != nil {
			logger.Warn("deck watcher unavailable", zap.String("path", deckPath), zap.Error(err))
			bus.Publish(eventbus.ErrorEvent{Message: "live reload disabled: " + err.Error(), Err: err})
		} else {
			defer w.Close()
			w.Start(ctx, func(d *deck.Deck, err error) {
				p.Send(ui.DeckReloadedMsg{Deck: d, Err: err})
			})
		}
	}

	logger.Info("starting",
		zap.String("deck", deckPath),
		zap.Int("slides", len(d.Slides)),
		zap.Float64("threshold", cfg.Carousel.SwipeThreshold))
	bus.Publish(eventbus.DeckLoadedEvent{Path: deckPath, Slides: len(d.Slides)})

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			logger.Info("interrupted")
			return nil
		}
		logger.Error("program failed", zap.Error(err))
		return fmt.Errorf("error running program: %w", err)
	}
	logger.Info("exited normally")
	return nil
}
