package app

import (
	"fmt"
	"strings"

	"mios/hal"
	"mios/kernel"
	"mios/mios/drivers/vga"

	"github.com/sirupsen/logrus"
)

var panicColor = vga.NewColorCode(vga.White, vga.Red)

func panicHandler(h hal.HAL, log logrus.FieldLogger) kernel.PanicHandler {
	return func(info kernel.PanicInfo) {
		entry := log.WithFields(logrus.Fields{
			"component": "panic",
			"task":      info.TaskID,
			"polls":     info.Polls,
			"live":      info.Live,
		})
		entry.Errorf("kernel panic: %v", info.Value)
		for _, line := range strings.Split(string(info.Stack), "\n") {
			if line != "" {
				entry.Error(line)
			}
		}

		lines := []string{
			"mios panic:",
			fmt.Sprintf("task: %d (poll %d, %d live)", info.TaskID, info.Polls, info.Live),
			fmt.Sprintf("panic: %v", info.Value),
		}
		if len(info.Stack) > 0 {
			lines = append(lines, "stack:")
			for _, line := range strings.Split(string(info.Stack), "\n") {
				if line != "" {
					lines = append(lines, strings.ReplaceAll(line, "\t", "  "))
				}
			}
		} else {
			lines = append(lines, "stack: unavailable")
		}
		paintPanic(h.Text(), lines)

		cpu := h.CPU()
		for {
			cpu.EnableAndHalt()
		}
	}
}

// paintPanic fills text with lines, wrapped at the screen width and cut at its height.
func paintPanic(text hal.TextBuffer, lines []string) {
	cols, rows := text.Size()
	attr := byte(panicColor)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			text.WriteCell(col, row, hal.Cell{Glyph: ' ', Attr: attr})
		}
	}

	row := 0
	for _, line := range lines {
		for {
			if row >= rows {
				text.SetCursor(0, rows-1)
				return
			}
			chunk, rest := takeBytes(line, cols)
			for col := 0; col < len(chunk); col++ {
				b := chunk[col]
				if b < 0x20 || b > 0x7e {
					b = 0xfe
				}
				text.WriteCell(col, row, hal.Cell{Glyph: b, Attr: attr})
			}
			row++
			if rest == "" {
				break
			}
			line = strings.TrimLeft(rest, " ")
		}
	}
	text.SetCursor(0, min(row, rows-1))
}

func takeBytes(s string, n int) (prefix, rest string) {
	if n <= 0 || len(s) <= n {
		return s, ""
	}
	return s[:n], s[n:]
}
