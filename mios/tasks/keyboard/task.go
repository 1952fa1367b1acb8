package keyboard

import (
	"mios/kernel"
	"mios/mios/drivers/kbd"
	"mios/mios/shell"
)

// Task is the console task: it decodes scancodes and feeds the shell session.
// It never completes.
type Task struct {
	handoff *Handoff
	session *shell.Session

	stream  *ScancodeStream
	decoder *kbd.Decoder
}

func NewTask(h *Handoff, session *shell.Session) *Task {
	return &Task{handoff: h, session: session}
}

func (t *Task) Poll(ctx *kernel.Context) kernel.Poll {
	if t.stream == nil {
		t.stream = t.handoff.NewStream()
		t.decoder = kbd.NewDecoder()
		t.session.PrintPrompt()
	}
	for {
		b, p := t.stream.PollNext(ctx)
		if p == kernel.Pending {
			return kernel.Pending
		}
		if key, ok := t.decoder.Feed(b); ok {
			t.session.HandleKey(key)
		}
	}
}
