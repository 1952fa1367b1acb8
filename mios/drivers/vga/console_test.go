package vga

import (
	"testing"

	"mios/hal"
)

type countingCPU struct {
	enabled  bool
	disables int
}

func (c *countingCPU) InterruptsEnabled() bool { return c.enabled }
func (c *countingCPU) DisableInterrupts()      { c.enabled = false; c.disables++ }
func (c *countingCPU) EnableInterrupts()       { c.enabled = true }
func (c *countingCPU) EnableAndHalt()          { c.enabled = true }

func TestConsoleWritesWithInterruptsDisabled(t *testing.T) {
	cpu := &countingCPU{enabled: true}
	g := hal.NewTextGrid(hal.TextColumns, hal.TextRows)
	c := NewConsole(cpu, g, DefaultColor)

	c.Printf("%s %d", "mios", 1)
	if got := bottomRow(g); got != "mios 1" {
		t.Fatalf("bottom row = %q", got)
	}
	if col, _ := g.Cursor(); col != 6 {
		t.Fatalf("cursor col = %d, want 6", col)
	}
	if cpu.disables != 1 || !cpu.enabled {
		t.Fatalf("disables = %d, enabled = %v; want 1, true", cpu.disables, cpu.enabled)
	}

	c.DeleteChar()
	if got := bottomRow(g); got != "mios" {
		t.Fatalf("bottom row after DeleteChar = %q", got)
	}
}

func TestConsoleNestedInInterruptsOff(t *testing.T) {
	cpu := &countingCPU{enabled: false}
	g := hal.NewTextGrid(hal.TextColumns, hal.TextRows)
	c := NewConsole(cpu, g, DefaultColor)

	c.Println("x")
	if cpu.enabled {
		t.Fatal("console enabled interrupts inside an interrupts-off section")
	}
}
