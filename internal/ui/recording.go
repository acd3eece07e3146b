package ui

import (
	"fmt"
	"strings"
)

// Entry is one recorded UI call.
type Entry struct {
	Method string
	Value  string
}

// RecordedTable is one Table call.
type RecordedTable struct {
	Headers []string
	Rows    [][]string
}

// RecordingUI implements UI for tests. Ask serves the scripted inputs in order
// and panics when they run out.
type RecordingUI struct {
	entries []Entry
	tables  []RecordedTable
	inputs  []string
	next    int
}

func NewRecordingUI(scriptedInputs ...string) *RecordingUI {
	return &RecordingUI{inputs: scriptedInputs}
}

func (r *RecordingUI) record(method, value string) {
	r.entries = append(r.entries, Entry{Method: method, Value: value})
}

func (r *RecordingUI) Info(format string, args ...any) {
	r.record("Info", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Success(format string, args ...any) {
	r.record("Success", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Warn(format string, args ...any) {
	r.record("Warn", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Error(format string, args ...any) {
	r.record("Error", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Heading(title string) {
	r.record("Heading", title)
}

func (r *RecordingUI) Table(headers []string, rows [][]string) {
	r.record("Table", strings.Join(headers, ","))
	r.tables = append(r.tables, RecordedTable{Headers: headers, Rows: rows})
}

func (r *RecordingUI) Ask(prompt string) string {
	r.record("Prompt", prompt)
	if r.next >= len(r.inputs) {
		panic(fmt.Sprintf("RecordingUI: no scripted input left for %q (consumed %d)", prompt, r.next))
	}
	input := r.inputs[r.next]
	r.next++
	r.record("Ask", input)
	return input
}

func (r *RecordingUI) Spinner(msg string) func() {
	r.record("Spinner", msg)
	return func() {}
}

// Entries returns all recorded calls in order.
func (r *RecordingUI) Entries() []Entry {
	return r.entries
}

// Tables returns every rendered table in order.
func (r *RecordingUI) Tables() []RecordedTable {
	return r.tables
}

// Messages returns the values recorded for method.
func (r *RecordingUI) Messages(method string) []string {
	var out []string
	for _, e := range r.entries {
		if e.Method == method {
			out = append(out, e.Value)
		}
	}
	return out
}

// HasMessage reports whether any recorded value contains substr, ignoring case.
func (r *RecordingUI) HasMessage(substr string) bool {
	lower := strings.ToLower(substr)
	for _, e := range r.entries {
		if strings.Contains(strings.ToLower(e.Value), lower) {
			return true
		}
	}
	return false
}
