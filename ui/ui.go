package ui

import (
	"encoding/json"
	"io"
)

// Severity classifies the visual weight of a piece of inline text. The
// terminal maps each value to a colour; JSON and tests see plain text.
type Severity uint8

const (
	SeverityInfo     Severity = iota // plain
	SeveritySuccess                  // green, positive outcome
	SeverityWarn                     // yellow, needs attention
	SeverityError                    // red, failure or loss
	SeverityCritical                 // bold
)

// StyledText pairs a plain string with a Severity annotation.
//
// It marshals as just the plain Text string so `--json` output carries no
// ANSI codes. Pass it to [UI.Style] to embed it in a formatted line:
//
//	u.Info("Status: %s", u.Style(card.Status))
type StyledText struct {
	Text     string
	Severity Severity
}

func (s StyledText) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Text)
}

// UI is every bit of terminal interaction the txlens commands do.
//
// Commands write to a TerminalUI; tests hand the same code a RecordingUI and
// assert on what was recorded. Use [UI.Indent] to get a child UI one level
// deeper; the child shares the parent's writer and reader.
type UI interface {
	// Style returns t coloured according to its Severity, or the plain text
	// when colours are off.
	Style(t StyledText) string

	Info(format string, args ...any)
	Success(format string, args ...any)
	Warn(format string, args ...any)

	// Error writes a failure in red. It does not exit.
	Error(format string, args ...any)

	// Critical writes a line in bold so it stands out from Info output.
	Critical(format string, args ...any)

	// Section writes a separator centred around title:
	//
	//	============ Transaction Flow ============
	Section(title string)

	// KeyValue renders label/value pairs with the values aligned.
	KeyValue(rows [][2]string)

	// Table renders a bordered table. A nil headers slice renders the rows
	// only, which is how the summary cards are drawn.
	Table(headers []string, rows [][]string)

	// TableWithGroups renders a bordered table with a divider between groups.
	TableWithGroups(headers []string, groups [][][]string)

	// Spinner starts a spinner with msg and returns the function that stops
	// it. On non-terminal outputs it only prints msg.
	Spinner(msg string) func()

	// Interpret shows what was understood from the last Ask, prefixed with
	// "→".
	Interpret(value string)

	// Ask shows a "> " prompt and reads a line, looping until validate
	// returns nil. A nil validate accepts anything.
	Ask(validate func(string) error) string

	// Confirm asks a yes/no question.
	Confirm(prompt string, defaultYes bool) bool

	// Choose prints numbered options and returns the 0-based index picked,
	// -1 when nothing valid was entered before input ran out.
	Choose(prompt string, options []string) int

	Indent() UI

	// Writer returns an io.Writer that prefixes every line with the current
	// indentation.
	Writer() io.Writer
}
