package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/breakout-host/internal/config"
	"github.com/vovakirdan/breakout-host/internal/host"
)

var flagCount int

var greetCmd = &cobra.Command{
	Use:   "greet",
	Short: "Print the greeting once per tick",
	Long: `Poll the greeting source once per tick and print each line to stdout,
until Ctrl+C or --count lines have been printed.

Examples:
  host greet
  host greet --count 5
  host greet --greeting "Hello, World" --fps 2`,
	Args: cobra.NoArgs,
	Run:  runGreet,
}

func init() {
	addGameFlags(greetCmd)
	greetCmd.Flags().IntVar(&flagCount, "count", 0, "Stop after this many lines (0 = until interrupted)")
}

func runGreet(_ *cobra.Command, _ []string) {
	hc, err := config.LoadHello(flagConfig)
	if err != nil {
		fatal.Abort("cannot load hello config", err, "path", flagConfig)
	}
	text := hc.Greeting
	if flagGreeting != "" {
		text = flagGreeting
	}

	if term.IsTerminal(int(os.Stdout.Fd())) && flagCount == 0 {
		fmt.Fprintln(os.Stderr, "Press Ctrl+C to stop")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	n, err := greetLoop(ctx, host.Static{GreetingText: text}, runtimeConfig().TickRate, flagCount, func(line string) error {
		_, werr := fmt.Fprintln(os.Stdout, line)
		return werr
	})
	logger.Debug("greet loop stopped", "lines", n)
	if err != nil {
		fatal.Abort("greet loop failed", err, "lines", n)
	}
}

// greetLoop polls src once per tick and hands each line to emit. It stops
// when ctx is done, after count lines when count > 0, or on the first error.
// Returns the number of lines emitted.
func greetLoop(ctx context.Context, src host.GreetingSource, tickRate, count int, emit func(string) error) (int, error) {
	if tickRate <= 0 {
		tickRate = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(tickRate))
	defer ticker.Stop()

	n := 0
	for count <= 0 || n < count {
		select {
		case <-ctx.Done():
			return n, nil
		case <-ticker.C:
		}

		line, err := src.Greeting()
		if err != nil {
			return n, fmt.Errorf("greeting source: %w", err)
		}
		if err := emit(line); err != nil {
			return n, fmt.Errorf("write greeting: %w", err)
		}
		n++
	}
	return n, nil
}
