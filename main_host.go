package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"mios/app"
	"mios/hal"
)

func main() {
	var (
		cfg      app.Config
		headless hal.HeadlessConfig
		tty      bool
		logFile  string
	)
	flag.BoolVar(&headless.Enabled, "headless", false, "Type stdin on the keyboard and print the screen to stdout.")
	flag.DurationVar(&headless.Settle, "settle", 2*time.Second, "Max wait for the kernel to go idle in headless mode.")
	flag.BoolVar(&tty, "tty", false, "Run in the terminal instead of a window.")
	flag.StringVar(&cfg.Prompt, "prompt", "", "Console prompt (default \"mios> \").")
	flag.StringVar(&cfg.LogLevel, "log-level", "info", "Log level: trace, debug, info, warn, error.")
	flag.StringVar(&logFile, "log-file", "", "Write kernel logs to this file.")
	flag.Parse()

	logOut, closeLog, err := openLog(logFile, tty)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := app.Starter(cfg)
	switch {
	case headless.Enabled:
		headless.Input = os.Stdin
		headless.Output = os.Stdout
		headless.LogOutput = logOut
		err = hal.RunHeadless(ctx, start, headless)
	case tty:
		err = hal.RunTTY(ctx, start, logOut)
	default:
		err = hal.RunWindow(start, logOut)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		closeLog()
		os.Exit(1)
	}
}

// openLog picks the kernel log destination. The tty runner owns the terminal, so
// without a log file its logs are discarded.
func openLog(path string, tty bool) (io.Writer, func(), error) {
	if path == "" {
		if tty {
			return io.Discard, func() {}, nil
		}
		return os.Stderr, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}
