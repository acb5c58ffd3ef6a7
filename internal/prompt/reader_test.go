package prompt

// reader_test.go — Tests for the reader-backed Prompter.

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func newTest(input string) (*Reader, *bytes.Buffer) {
	var out bytes.Buffer
	return NewReader(strings.NewReader(input), &out), &out
}

func TestReader_Line(t *testing.T) {
	p, out := newTest("hello\n")
	got, err := p.Line("Name", "fallback")
	if err != nil || got != "hello" {
		t.Fatalf("Line = (%q, %v)", got, err)
	}
	if !strings.Contains(out.String(), "Name: ") {
		t.Errorf("prompt not written: %q", out.String())
	}
}

func TestReader_Line_EmptyReturnsDefault(t *testing.T) {
	p, _ := newTest("\n")
	got, err := p.Line("Name", "fallback")
	if err != nil || got != "fallback" {
		t.Fatalf("Line = (%q, %v), want default", got, err)
	}
}

func TestReader_Line_EOFCancels(t *testing.T) {
	p, _ := newTest("")
	_, err := p.Line("Name", "")
	if !errors.Is(err, ErrCanceled) {
		t.Fatalf("err = %v, want ErrCanceled", err)
	}
}

func TestReader_Confirm(t *testing.T) {
	tests := []struct {
		input string
		def   bool
		want  bool
	}{
		{"y\n", false, true},
		{"yes\n", false, true},
		{"n\n", true, false},
		{"no\n", true, false},
		{"\n", true, true},   // empty accepts default
		{"\n", false, false},
		{"maybe\ny\n", false, true}, // junk re-asks
	}
	for _, tc := range tests {
		p, _ := newTest(tc.input)
		got, err := p.Confirm("Sure?", tc.def)
		if err != nil || got != tc.want {
			t.Errorf("Confirm(%q, def=%v) = (%v, %v), want %v", tc.input, tc.def, got, err, tc.want)
		}
	}
}

func TestReader_Choice(t *testing.T) {
	// Out-of-range and junk inputs re-ask until a valid ordinal arrives.
	p, out := newTest("9\nx\n2\n")
	got, err := p.Choice("Select", 3, 0)
	if err != nil || got != 2 {
		t.Fatalf("Choice = (%d, %v)", got, err)
	}
	if !strings.Contains(out.String(), "between 1 and 3") {
		t.Errorf("invalid input should prompt a range hint: %q", out.String())
	}
}

func TestReader_Choice_EmptyUsesDefault(t *testing.T) {
	p, _ := newTest("\n")
	got, err := p.Choice("Select", 3, 2)
	if err != nil || got != 2 {
		t.Fatalf("Choice = (%d, %v), want default 2", got, err)
	}
}

func TestReader_Choice_EmptyWithoutDefaultReasks(t *testing.T) {
	p, _ := newTest("\n1\n")
	got, err := p.Choice("Select", 3, 0)
	if err != nil || got != 1 {
		t.Fatalf("Choice = (%d, %v)", got, err)
	}
}

func TestReader_Multiline(t *testing.T) {
	p, _ := newTest("first\nsecond\n\n\nignored\n")
	lines, err := p.Multiline("Notes")
	if err != nil {
		t.Fatal(err)
	}
	// Terminates on the blank pair; the first blank is captured.
	want := []string{"first", "second", ""}
	if len(lines) != len(want) {
		t.Fatalf("lines = %q, want %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestReader_Multiline_EOFKeepsCaptured(t *testing.T) {
	p, _ := newTest("only line")
	lines, err := p.Multiline("Notes")
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 1 || lines[0] != "only line" {
		t.Fatalf("lines = %q", lines)
	}
}
