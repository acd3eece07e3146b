package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestHashOrAddr(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"34xp4vRoCGJym3xR7yCVPFHoCNxv4Twseo", "34xp...wseo"},
		{"0xD428B66C27bF3f0e2567139ac4930303Ad11fAe4", "0xD4...fAe4"},
		{"abcdefgh", "abcd...efgh"},
		{"0x1234", "0x1234"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := HashOrAddr(tt.in); got != tt.want {
				t.Errorf("HashOrAddr(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTerminalUI_Table(t *testing.T) {
	var out bytes.Buffer
	u := NewTerminalUIWithIO(&out, strings.NewReader(""), false)

	u.Table([]string{"Address", "Balance"}, [][]string{
		{"34xp...wseo", "31000.07042388"},
		{"198a...g3Hi", "0"},
	})

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d:\n%s", len(lines), out.String())
	}
	if lines[1] != "│ Address     │ Balance        │" {
		t.Errorf("header row = %q", lines[1])
	}
	if lines[4] != "│ 198a...g3Hi │ 0              │" {
		t.Errorf("padded row = %q", lines[4])
	}
	width := len([]rune(lines[0]))
	for i, l := range lines {
		if n := len([]rune(l)); n != width {
			t.Errorf("line %d width = %d, want %d", i, n, width)
		}
	}
}

func TestTerminalUI_Ask(t *testing.T) {
	var out bytes.Buffer
	u := NewTerminalUIWithIO(&out, strings.NewReader("a,b\r\nsecond\n"), false)

	if got := u.Ask("BTC: "); got != "a,b" {
		t.Errorf("Ask() = %q, want %q", got, "a,b")
	}
	if got := u.Ask("ETH: "); got != "second" {
		t.Errorf("Ask() = %q, want %q", got, "second")
	}
	if out.String() != "BTC: ETH: " {
		t.Errorf("prompts = %q", out.String())
	}
}

func TestTerminalUI_PlainOutputWithoutTerminal(t *testing.T) {
	var out bytes.Buffer
	u := NewTerminalUIWithIO(&out, strings.NewReader(""), false)

	u.Error("Sorry, something wrong happened!")
	u.Success("done")
	stop := u.Spinner("working")
	stop()

	if out.String() != "Sorry, something wrong happened!\ndone\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestRecordingUI(t *testing.T) {
	r := NewRecordingUI("first")

	if got := r.Ask("> "); got != "first" {
		t.Errorf("Ask() = %q", got)
	}
	r.Error("boom")
	r.Table([]string{"A"}, [][]string{{"1"}})

	if !r.HasMessage("BOOM") {
		t.Error("HasMessage should ignore case")
	}
	if msgs := r.Messages("Error"); len(msgs) != 1 || msgs[0] != "boom" {
		t.Errorf("Messages(Error) = %v", msgs)
	}
	if tables := r.Tables(); len(tables) != 1 || tables[0].Rows[0][0] != "1" {
		t.Errorf("Tables() = %+v", tables)
	}

	defer func() {
		if recover() == nil {
			t.Error("Ask without scripted input should panic")
		}
	}()
	r.Ask("> ")
}
