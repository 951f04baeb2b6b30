package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"swipedeck/internal/carousel"
	"swipedeck/internal/config"
	"swipedeck/internal/deck"
	"swipedeck/internal/discovery"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <deck>",
		Short: "Check that a deck file parses and list its slides",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := deck.Load(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %q, %d slides\n", args[0], d.Title, len(d.Slides))
			for i, s := range d.Slides {
				title := s.Title
				if title == "" {
					title = "(untitled)"
				}
				fmt.Fprintf(out, "%3d. %s\n", i+1, title)
			}
			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [dir]",
		Short: "Find deck files under a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) > 0 {
				root = args[0]
			}

			found, err := discovery.NewScanner(nil).Scan(cmd.Context(), root)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(found) == 0 {
				fmt.Fprintf(out, "no decks under %s\n", root)
				return nil
			}
			for _, path := range found {
				d, err := deck.Load(path)
				if err != nil {
					fmt.Fprintf(out, "%s\tinvalid: %v\n", path, err)
					continue
				}
				fmt.Fprintf(out, "%s\t%d slides\n", path, len(d.Slides))
			}
			return nil
		},
	}
}

func newInitConfigCmd(opts *options) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init-config",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.configPath
			if path == "" {
				path = config.DefaultPath()
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("failed to check config file: %w", err)
			}

			if err := config.NewConfigService(path).Save(config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}

func newGestureCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "gesture <offset> <velocity>",
		Short: "Show which way a drag would move the carousel",
		Long: `Resolves a drag sample the same way the TUI does. The swipe power is
|offset| * velocity; below -threshold pages forward, above +threshold pages
backward, anything in between stays put.

Negative numbers must follow "--" so they are not read as flags.`,
		Example: `  swipedeck gesture -- -20 -600
  swipedeck gesture --threshold 500 -- 10 60`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			offset, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("offset %q: %w", args[0], carousel.ErrInvalidArgument)
			}
			velocity, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("velocity %q: %w", args[1], carousel.ErrInvalidArgument)
			}

			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			c, err := carousel.New(carousel.SlideSet[struct{}]{},
				carousel.WithSwipeThreshold(cfg.Carousel.SwipeThreshold))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "power=%g threshold=%g direction=%s\n",
				carousel.SwipePower(offset, velocity), c.SwipeThreshold(), c.InterpretGesture(offset, velocity))
			return nil
		},
	}
}
