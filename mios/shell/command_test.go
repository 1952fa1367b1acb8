package shell

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		line string
		want Command
	}{
		{"help", Help{}},
		{"help me", Help{}},
		{"echo hi there", Echo{Text: "hi there"}},
		{"echo  two spaces", Echo{Text: " two spaces"}},
		{"echo", Echo{Text: ""}},
		{"echo\thi", Echo{Text: ""}},
		{"prompt $ ", SetPrompt{Prompt: "$ "}},
		{"prompt", SetPrompt{Prompt: ""}},
		{"draw", Draw{}},
		{"foo bar", Unknown{Line: "foo bar"}},
		{" echo hi", Echo{Text: ""}},
		{"", Unknown{Line: ""}},
		{"HELP", Unknown{Line: "HELP"}},
	}
	for _, tc := range cases {
		if got := Parse(tc.line); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Parse(%q) = %#v, want %#v", tc.line, got, tc.want)
		}
	}
}
