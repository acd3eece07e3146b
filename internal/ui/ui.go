package ui

// UI is the terminal surface the commands talk to.
//
// TerminalUI writes to stdout and reads prompts from stdin. RecordingUI keeps
// every call in memory and serves scripted answers so command tests can run
// without a terminal.
type UI interface {
	// Info writes a plain status line.
	Info(format string, args ...any)

	// Success writes a positive outcome in green.
	Success(format string, args ...any)

	// Warn writes a non-fatal warning in yellow.
	Warn(format string, args ...any)

	// Error writes a failure in red. It does not exit.
	Error(format string, args ...any)

	// Heading writes a bold title above a table or a group of lines.
	Heading(title string)

	// Table renders a bordered table with a header row.
	Table(headers []string, rows [][]string)

	// Ask prints prompt, reads one line and returns it without the line
	// terminator.
	Ask(prompt string) string

	// Spinner shows msg while slow work runs and returns the function that
	// clears it.
	Spinner(msg string) func()
}
