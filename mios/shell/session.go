// Package shell is the console line editor and command interpreter.
package shell

import (
	"fmt"

	"mios/mios/drivers/kbd"
	"mios/mios/drivers/vga"

	"github.com/sirupsen/logrus"
)

// DefaultPrompt is printed before every input line unless configured otherwise.
const DefaultPrompt = "mios> "

// Output is the console surface a session prints to.
type Output interface {
	WriteString(s string) (int, error)
	// DeleteChar erases the cell before the cursor.
	DeleteChar()
}

// State is the session's position in the line-edit cycle.
type State uint8

const (
	Idle State = iota
	Submitting
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// Session holds line-edit state for one console.
type Session struct {
	out Output
	log logrus.FieldLogger

	prompt string
	buf    []rune
	mode   vga.Mode
	state  State
}

// NewSession returns a text-mode session. An empty prompt selects DefaultPrompt.
func NewSession(out Output, prompt string, log logrus.FieldLogger) *Session {
	if prompt == "" {
		prompt = DefaultPrompt
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Session{
		out:    out,
		log:    log.WithField("component", "shell"),
		prompt: prompt,
		mode:   vga.ModeText80x25,
	}
}

func (s *Session) Prompt() string     { return s.prompt }
func (s *Session) Buffer() string     { return string(s.buf) }
func (s *Session) Mode() vga.Mode     { return s.mode }
func (s *Session) State() State       { return s.state }
func (s *Session) SetMode(m vga.Mode) { s.mode = m }

// PrintPrompt writes the current prompt.
func (s *Session) PrintPrompt() {
	s.out.WriteString(s.prompt)
}

// HandleKey applies one decoded key. Keys are discarded outside text mode.
func (s *Session) HandleKey(k kbd.DecodedKey) {
	if s.mode != vga.ModeText80x25 {
		return
	}
	switch k.Kind {
	case kbd.Unicode:
		switch k.Char {
		case '\n':
			s.submit()
		case '\b':
			if len(s.buf) > 0 {
				s.out.DeleteChar()
				s.buf = s.buf[:len(s.buf)-1]
			}
		default:
			s.out.WriteString(string(k.Char))
			s.buf = append(s.buf, k.Char)
		}
	case kbd.Raw:
		s.out.WriteString(k.Code.String())
	}
}

func (s *Session) submit() {
	s.state = Submitting
	line := string(s.buf)
	cmd := Parse(line)
	s.log.WithField("line", line).Debugf("command %T", cmd)
	s.Execute(cmd)
	s.buf = s.buf[:0]
	s.state = Idle
}

// Execute runs cmd, then prints the prompt on a fresh line.
func (s *Session) Execute(cmd Command) {
	s.out.WriteString("\n")
	switch c := cmd.(type) {
	case Help:
		s.out.WriteString(helpText)
	case Echo:
		s.out.WriteString(c.Text + "\n")
	case SetPrompt:
		s.prompt = c.Prompt
	case Draw:
	case Unknown:
		s.out.WriteString("Unknown command: " + c.Line + "\n")
	default:
		panic(fmt.Sprintf("shell: unhandled command %T", cmd))
	}
	s.PrintPrompt()
}
