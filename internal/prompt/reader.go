package prompt

// reader.go — a Prompter over plain reader/writer pairs. Used when stdin is
// not a terminal (piped input) and throughout the tests, where scripted
// answers replace keystrokes. End of input counts as cancellation.

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Reader is a Prompter that reads newline-delimited answers from r and
// writes prompts to w.
type Reader struct {
	scanner *bufio.Scanner
	w       io.Writer
}

// NewReader returns a Prompter over the given reader/writer pair.
func NewReader(r io.Reader, w io.Writer) *Reader {
	return &Reader{scanner: bufio.NewScanner(r), w: w}
}

func (p *Reader) readLine() (string, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", ErrCanceled
	}
	return p.scanner.Text(), nil
}

func (p *Reader) Line(prompt, def string) (string, error) {
	fmt.Fprintf(p.w, "%s: ", prompt)
	line, err := p.readLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

func (p *Reader) Confirm(prompt string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	for {
		fmt.Fprintf(p.w, "%s [%s]: ", prompt, hint)
		line, err := p.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		// Anything else: ask again.
	}
}

func (p *Reader) Choice(prompt string, n, def int) (int, error) {
	for {
		fmt.Fprintf(p.w, "%s: ", prompt)
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		if sel, ok := parseOrdinal(line, n, def); ok {
			return sel, nil
		}
		fmt.Fprintf(p.w, "Please enter a number between 1 and %d.\n", n)
	}
}

func (p *Reader) Multiline(prompt string) ([]string, error) {
	fmt.Fprintf(p.w, "%s (press Enter twice to finish):\n", prompt)
	var lines []string
	blanks := 0
	for {
		if !p.scanner.Scan() {
			if err := p.scanner.Err(); err != nil {
				return lines, fmt.Errorf("read input: %w", err)
			}
			return lines, nil // end of input keeps captured lines
		}
		line := p.scanner.Text()
		if strings.TrimSpace(line) == "" {
			blanks++
			if blanks >= 2 {
				return lines, nil
			}
		} else {
			blanks = 0
		}
		lines = append(lines, line)
	}
}
