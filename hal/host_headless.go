package hal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"
)

// ErrNotIdle is returned when the kernel does not settle within HeadlessConfig.Settle.
var ErrNotIdle = errors.New("kernel did not go idle")

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	// Input is typed on the keyboard, one rune at a time.
	Input io.Reader
	// Output receives the final screen contents.
	Output io.Writer
	// LogOutput receives kernel log lines.
	LogOutput io.Writer
	// Settle bounds each wait for the kernel to go idle.
	Settle time.Duration
}

// RunHeadless boots the kernel, types cfg.Input on the emulated keyboard and writes
// the screen to cfg.Output once the input is exhausted and the kernel is idle.
func RunHeadless(ctx context.Context, start StartFunc, cfg HeadlessConfig) error {
	if cfg.Settle <= 0 {
		cfg.Settle = 2 * time.Second
	}
	if cfg.Output == nil {
		cfg.Output = io.Discard
	}

	h := newHost(cfg.LogOutput)
	if err := start(h); err != nil {
		return fmt.Errorf("headless boot: %w", err)
	}
	if err := h.waitIdle(ctx, cfg.Settle); err != nil {
		return fmt.Errorf("headless boot: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if cfg.Input == nil {
			return nil
		}
		r := bufio.NewReader(cfg.Input)
		var seq []byte
		for {
			ch, _, err := r.ReadRune()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("headless input: %w", err)
			}
			var ok bool
			seq, ok = AppendRune(seq[:0], ch)
			if !ok {
				continue
			}
			h.kbd.raise(seq)
			// Typing faster than the kernel drains overflows the scancode queue.
			if err := h.waitIdle(gctx, cfg.Settle); err != nil {
				return fmt.Errorf("headless input: %w", err)
			}
		}
	})
	if err := g.Wait(); err != nil {
		return err
	}

	_, err := io.WriteString(cfg.Output, h.grid.String()+"\n")
	return err
}

func (h *hostHAL) waitIdle(ctx context.Context, limit time.Duration) error {
	deadline := time.NewTimer(limit)
	defer deadline.Stop()
	poll := time.NewTicker(time.Millisecond)
	defer poll.Stop()
	for !h.cpu.idle() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-deadline.C:
			return ErrNotIdle
		case <-h.cpu.idleCh:
		case <-poll.C:
		}
	}
	return nil
}
