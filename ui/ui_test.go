package ui_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/txlens/txlens/ui"
)

func TestStyledTextMarshalsAsPlainString(t *testing.T) {
	b, err := json.Marshal(struct {
		Status ui.StyledText `json:"status"`
	}{ui.StyledText{Text: "Success", Severity: ui.SeveritySuccess}})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"status":"Success"}` {
		t.Errorf("got %s", b)
	}
}

func TestTerminalTableWithoutColors(t *testing.T) {
	var out bytes.Buffer
	u := ui.NewTerminalUIWithIO(&out, strings.NewReader(""), false)
	u.Table([]string{"Token", "Amount"}, [][]string{
		{"USDC", "1,000.0"},
		{"DAI", "5.0"},
	})
	got := out.String()
	if strings.Contains(got, "\x1b[") {
		t.Fatalf("unexpected escape codes in %q", got)
	}
	want := strings.Join([]string{
		"┌───────┬─────────┐",
		"│ Token │ Amount  │",
		"├───────┼─────────┤",
		"│ USDC  │ 1,000.0 │",
		"│ DAI   │ 5.0     │",
		"└───────┴─────────┘",
		"",
	}, "\n")
	if got != want {
		t.Errorf("table mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestTerminalKeyValueAligns(t *testing.T) {
	var out bytes.Buffer
	u := ui.NewTerminalUIWithIO(&out, strings.NewReader(""), false)
	u.Indent().KeyValue([][2]string{{"Block", "100"}, {"Gas Used", "21,000"}})
	want := "  Block     100\n  Gas Used  21,000\n"
	if out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
}

func TestTerminalAskRetriesUntilValid(t *testing.T) {
	var out bytes.Buffer
	u := ui.NewTerminalUIWithIO(&out, strings.NewReader("nope\n0xabc\n"), false)
	got := u.Ask(func(s string) error {
		if !strings.HasPrefix(s, "0x") {
			return errInvalid
		}
		return nil
	})
	if got != "0xabc" {
		t.Errorf("Ask = %q", got)
	}
	if !strings.Contains(out.String(), errInvalid.Error()) {
		t.Errorf("validation error not shown: %q", out.String())
	}
}

func TestTerminalChooseConfirmAndInterpret(t *testing.T) {
	var out bytes.Buffer
	u := ui.NewTerminalUIWithIO(&out, strings.NewReader("7\n2\n\nmaybe\ny\n"), false)

	if got := u.Choose("Which transaction?", []string{"first", "second"}); got != 1 {
		t.Errorf("Choose = %d, want 1", got)
	}
	if u.Confirm("Remove every history entry?", false) {
		t.Errorf("empty answer should take the default")
	}
	if !u.Confirm("Remove every history entry?", false) {
		t.Errorf("y should confirm after the invalid answer")
	}
	if got := u.Choose("Which transaction?", []string{"first"}); got != -1 {
		t.Errorf("Choose at end of input = %d, want -1", got)
	}

	u.Interpret("0xabc on mainnet")
	if !strings.HasSuffix(out.String(), "  → 0xabc on mainnet\n") {
		t.Errorf("Interpret output: %q", out.String())
	}
}

func TestTerminalSpinnerOnPipe(t *testing.T) {
	var out bytes.Buffer
	u := ui.NewTerminalUIWithIO(&out, strings.NewReader(""), false)
	stop := u.Spinner("Analyzing transaction...")
	stop()
	if out.String() != "Analyzing transaction...\n" {
		t.Errorf("got %q", out.String())
	}
}

func TestRecordingUITables(t *testing.T) {
	r := ui.NewRecordingUI("2")
	r.Section("Token Transfers")
	r.Table([]string{"Token", "Amount"}, [][]string{{"USDC", "1.0"}})
	idx := r.Choose("pick", []string{"a", "b"})

	if idx != 1 {
		t.Errorf("Choose = %d", idx)
	}
	if got := r.Sections(); len(got) != 1 || got[0] != "Token Transfers" {
		t.Errorf("sections = %v", got)
	}
	tables := r.Tables()
	if len(tables) != 1 || tables[0].Cell(0, "Amount") != "1.0" {
		t.Errorf("tables = %+v", tables)
	}
	if !r.HasMessage("usdc | 1.0") {
		t.Errorf("row entry missing: %+v", r.Entries())
	}
}

type validationError string

func (e validationError) Error() string { return string(e) }

const errInvalid = validationError("not a hash")
