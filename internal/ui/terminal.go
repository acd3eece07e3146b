package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/logrusorgru/aurora"
	runewidth "github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// TerminalUI is the production UI. Colours and the spinner are only used when
// the output is a terminal.
type TerminalUI struct {
	out         io.Writer
	in          *bufio.Reader
	au          aurora.Aurora
	interactive bool
}

// NewTerminalUI writes to os.Stdout and reads from os.Stdin.
func NewTerminalUI() *TerminalUI {
	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	return NewTerminalUIWithIO(os.Stdout, os.Stdin, interactive)
}

// NewTerminalUIWithIO builds a TerminalUI over arbitrary streams.
func NewTerminalUIWithIO(out io.Writer, in io.Reader, interactive bool) *TerminalUI {
	return &TerminalUI{
		out:         out,
		in:          bufio.NewReader(in),
		au:          aurora.NewAurora(interactive),
		interactive: interactive,
	}
}

func (u *TerminalUI) Info(format string, args ...any) {
	fmt.Fprintln(u.out, fmt.Sprintf(format, args...))
}

func (u *TerminalUI) Success(format string, args ...any) {
	fmt.Fprintln(u.out, u.au.Green(fmt.Sprintf(format, args...)).String())
}

func (u *TerminalUI) Warn(format string, args ...any) {
	fmt.Fprintln(u.out, u.au.Yellow(fmt.Sprintf(format, args...)).String())
}

func (u *TerminalUI) Error(format string, args ...any) {
	fmt.Fprintln(u.out, u.au.Red(fmt.Sprintf(format, args...)).String())
}

func (u *TerminalUI) Heading(title string) {
	fmt.Fprintf(u.out, "\n%s\n", u.au.Bold(title).String())
}

func (u *TerminalUI) Ask(prompt string) string {
	fmt.Fprint(u.out, prompt)
	text, _ := u.in.ReadString('\n')
	return strings.TrimRight(text, "\r\n")
}

func (u *TerminalUI) Spinner(msg string) func() {
	if !u.interactive {
		return func() {}
	}
	s := spinner.New(spinner.CharSets[14], 80*time.Millisecond, spinner.WithWriter(u.out))
	s.Suffix = " " + msg
	s.Start()
	return func() {
		s.Stop()
	}
}

// Table pads every column to its widest cell. Widths are measured on the
// visible text so coloured cells and wide runes still line up.
func (u *TerminalUI) Table(headers []string, rows [][]string) {
	ncols := len(headers)
	for _, row := range rows {
		if len(row) > ncols {
			ncols = len(row)
		}
	}
	if ncols == 0 {
		return
	}

	widths := make([]int, ncols)
	measure := func(cells []string) {
		for i, cell := range cells {
			if w := visibleWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(headers)
	for _, row := range rows {
		measure(row)
	}

	style := lipgloss.NewStyle()
	if u.interactive {
		style = style.Foreground(lipgloss.Color("240"))
	}
	line := func(left, mid, right string) string {
		parts := make([]string, ncols)
		for i, w := range widths {
			parts[i] = strings.Repeat("─", w+2)
		}
		return style.Render(left + strings.Join(parts, mid) + right)
	}
	render := func(cells []string) string {
		parts := make([]string, ncols)
		for i := range parts {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			parts[i] = " " + padRight(cell, widths[i]) + " "
		}
		bar := style.Render("│")
		return bar + strings.Join(parts, bar) + bar
	}

	fmt.Fprintln(u.out, line("┌", "┬", "┐"))
	if len(headers) > 0 {
		fmt.Fprintln(u.out, render(headers))
		fmt.Fprintln(u.out, line("├", "┼", "┤"))
	}
	for _, row := range rows {
		fmt.Fprintln(u.out, render(row))
	}
	fmt.Fprintln(u.out, line("└", "┴", "┘"))
}

func visibleWidth(s string) int {
	return runewidth.StringWidth(ansi.Strip(s))
}

func padRight(s string, width int) string {
	if gap := width - visibleWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
