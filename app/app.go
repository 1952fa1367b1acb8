// Package app wires the kernel: logger, console, keyboard interrupt, executor.
package app

import (
	"fmt"

	"mios/hal"
	"mios/internal/klog"
	"mios/kernel"
	"mios/mios/drivers/vga"
	"mios/mios/shell"
	"mios/mios/tasks/keyboard"
)

const banner = "Hello World!"

type Config struct {
	// Prompt defaults to shell.DefaultPrompt.
	Prompt string
	// LogLevel is a logrus level name; empty means info.
	LogLevel string
}

// Start boots the kernel on h and returns once the executor is running on its own
// goroutine.
func Start(h hal.HAL, cfg Config) error {
	log, err := klog.New(h.Logger(), cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}

	cpu := h.CPU()
	console := vga.NewConsole(cpu, h.Text(), vga.DefaultColor)
	console.Println(banner)

	handoff := keyboard.NewHandoff(log)
	h.Keyboard().SetHandler(func(scancode byte) {
		handoff.AddScancode(scancode)
	})

	exec := kernel.NewExecutor(cpu, log)
	exec.OnPanic(panicHandler(h, log))
	session := shell.NewSession(console, cfg.Prompt, log)
	exec.Spawn(keyboard.NewTask(handoff, session))

	log.WithField("component", "boot").Info("kernel started")
	go exec.Run()
	return nil
}

// Starter adapts Start to a hal runner.
func Starter(cfg Config) hal.StartFunc {
	return func(h hal.HAL) error { return Start(h, cfg) }
}
