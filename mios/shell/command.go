package shell

import "strings"

// Command is a parsed console line. The set of variants is closed.
type Command interface {
	isCommand()
}

type (
	// Help prints the command list.
	Help struct{}
	// Echo prints Text.
	Echo struct{ Text string }
	// SetPrompt replaces the prompt.
	SetPrompt struct{ Prompt string }
	// Draw is reserved for graphics mode and does nothing.
	Draw struct{}
	// Unknown carries a line that named no command.
	Unknown struct{ Line string }
)

func (Help) isCommand()      {}
func (Echo) isCommand()      {}
func (SetPrompt) isCommand() {}
func (Draw) isCommand()      {}
func (Unknown) isCommand()   {}

const helpText = "Available commands:\n" +
	"help - display this help message\n" +
	"echo <text> - print text\n" +
	"prompt <text> - change the prompt\n"

// Parse splits line into its first word and the argument remainder. The remainder
// is the line after the command word with exactly one separating space dropped;
// anything else after the word (or nothing) leaves it empty.
func Parse(line string) Command {
	name := ""
	if fields := strings.Fields(line); len(fields) > 0 {
		name = fields[0]
	}

	args := ""
	if rest, ok := strings.CutPrefix(line, name); ok {
		if a, ok := strings.CutPrefix(rest, " "); ok {
			args = a
		}
	}

	switch name {
	case "help":
		return Help{}
	case "echo":
		return Echo{Text: args}
	case "prompt":
		return SetPrompt{Prompt: args}
	case "draw":
		return Draw{}
	default:
		return Unknown{Line: line}
	}
}
