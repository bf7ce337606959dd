package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/five82/carousel/internal/app"
	"github.com/five82/carousel/internal/config"
	"github.com/five82/carousel/internal/logtail"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(interactive).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "carousel: %v\n", err)
		return 1
	}
	return 0
}

// interactive reports whether both ends of the terminal are attached.
func interactive() bool {
	return (isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())) &&
		(isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()))
}

func newRootCmd(isTTY func() bool) *cobra.Command {
	opts := app.Options{}

	root := &cobra.Command{
		Use:   "carousel [slide-dir]",
		Short: "Terminal image carousel",
		Long: `Cycle through a set of captioned images in the terminal.

Slides come from the config file (~/.config/carousel/config.toml) or from
slide-dir, which replaces them. Without a terminal the resolved slide list
is printed instead.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.SlideDir = args[0]
			}
			if !isTTY() {
				return printSlides(cmd.OutOrStdout(), opts)
			}
			return app.Run(cmd.Context(), opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file path (default ~/.config/carousel/config.toml)")
	flags.IntVar(&opts.IntervalMS, "interval", 0, "autoplay interval in milliseconds")
	flags.StringVar(&opts.LogFile, "log-file", "", "write logs to this file")
	root.Flags().BoolVar(&opts.Autoplay, "autoplay", false, "start the slideshow immediately")

	root.AddCommand(newSlidesCmd(&opts))
	root.AddCommand(newLogCmd(&opts, isTTY))
	return root
}

func newSlidesCmd(opts *app.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "slides [slide-dir]",
		Short: "Print the resolved slide sequence",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.SlideDir = args[0]
			}
			return printSlides(cmd.OutOrStdout(), *opts)
		},
	}
}

func newLogCmd(opts *app.Options, isTTY func() bool) *cobra.Command {
	var lines int
	var component string

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Print the end of the carousel log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.LogFile
			if path == "" {
				cfg, err := config.Load(opts.ConfigPath)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cfg.ApplyEnv(); err != nil {
					return err
				}
				path = cfg.LogFile
			}
			if path == "" {
				return fmt.Errorf("no log file configured: set log_file, CAROUSEL_LOG_FILE, or --log-file")
			}

			tail, err := logtail.Read(path, lines)
			if err != nil {
				return err
			}
			tail = logtail.Filter(tail, component)
			if isTTY() {
				tail = logtail.ColorizeLines(tail)
			}
			for _, line := range tail {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&lines, "lines", "n", 40, "number of lines to show (0 for all)")
	cmd.Flags().StringVar(&component, "component", "", "only show lines from this component (slider, ui, preview)")
	return cmd
}

func printSlides(w io.Writer, opts app.Options) error {
	session, err := app.Prepare(opts)
	if err != nil {
		return err
	}
	for _, s := range session.Slides {
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\n", s.Ordinal+1, s.Caption, s.Source); err != nil {
			return err
		}
	}
	return nil
}
