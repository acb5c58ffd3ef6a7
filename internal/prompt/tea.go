package prompt

// tea.go — terminal Prompter built on bubbletea. Each primitive runs a small
// single-purpose model to completion: a textinput for lines and ordinals, a
// keypress model for confirmations, and a line accumulator for multiline
// entry that stops after two consecutive blank lines.

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Term is the bubbletea-backed Prompter used for real terminal sessions.
type Term struct{}

// NewTerm returns a terminal Prompter.
func NewTerm() *Term { return &Term{} }

// ---------------------------------------------------------------------------
// Line
// ---------------------------------------------------------------------------

type lineModel struct {
	prompt   string
	input    textinput.Model
	done     bool
	canceled bool
}

func newLineModel(prompt, def string) lineModel {
	ti := textinput.New()
	ti.Placeholder = def
	ti.CharLimit = 512
	ti.Focus()
	return lineModel{prompt: prompt, input: ti}
}

func (m lineModel) Init() tea.Cmd { return textinput.Blink }

func (m lineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyCtrlD:
			m.canceled = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m lineModel) View() string {
	if m.done || m.canceled {
		return ""
	}
	return fmt.Sprintf("%s: %s\n", m.prompt, m.input.View())
}

func (t *Term) Line(prompt, def string) (string, error) {
	final, err := runModel(newLineModel(prompt, def))
	if err != nil {
		return "", err
	}
	m := final.(lineModel)
	if m.canceled {
		return "", ErrCanceled
	}
	if v := m.input.Value(); v != "" {
		return v, nil
	}
	return def, nil
}

// ---------------------------------------------------------------------------
// Confirm
// ---------------------------------------------------------------------------

type confirmModel struct {
	prompt   string
	def      bool
	answer   bool
	done     bool
	canceled bool
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc, tea.KeyCtrlD:
		m.canceled = true
		return m, tea.Quit
	case tea.KeyEnter:
		m.answer = m.def
		m.done = true
		return m, tea.Quit
	case tea.KeyRunes:
		switch strings.ToLower(string(key.Runes)) {
		case "y":
			m.answer = true
			m.done = true
			return m, tea.Quit
		case "n":
			m.answer = false
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done || m.canceled {
		return ""
	}
	hint := "y/N"
	if m.def {
		hint = "Y/n"
	}
	return fmt.Sprintf("%s [%s]: ", m.prompt, hint)
}

func (t *Term) Confirm(prompt string, def bool) (bool, error) {
	final, err := runModel(confirmModel{prompt: prompt, def: def})
	if err != nil {
		return false, err
	}
	m := final.(confirmModel)
	if m.canceled {
		return false, ErrCanceled
	}
	return m.answer, nil
}

// ---------------------------------------------------------------------------
// Choice
// ---------------------------------------------------------------------------

type choiceModel struct {
	prompt   string
	n        int
	def      int
	input    textinput.Model
	invalid  bool
	selected int
	done     bool
	canceled bool
}

func newChoiceModel(prompt string, n, def int) choiceModel {
	ti := textinput.New()
	ti.CharLimit = 4
	if def > 0 {
		ti.Placeholder = strconv.Itoa(def)
	}
	ti.Focus()
	return choiceModel{prompt: prompt, n: n, def: def, input: ti}
}

func (m choiceModel) Init() tea.Cmd { return textinput.Blink }

func (m choiceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyCtrlD:
			m.canceled = true
			return m, tea.Quit
		case tea.KeyEnter:
			sel, ok := parseOrdinal(m.input.Value(), m.n, m.def)
			if !ok {
				m.invalid = true
				m.input.SetValue("")
				return m, nil
			}
			m.selected = sel
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m choiceModel) View() string {
	if m.done || m.canceled {
		return ""
	}
	var b strings.Builder
	if m.invalid {
		fmt.Fprintf(&b, "Please enter a number between 1 and %d.\n", m.n)
	}
	fmt.Fprintf(&b, "%s: %s\n", m.prompt, m.input.View())
	return b.String()
}

func (t *Term) Choice(prompt string, n, def int) (int, error) {
	final, err := runModel(newChoiceModel(prompt, n, def))
	if err != nil {
		return 0, err
	}
	m := final.(choiceModel)
	if m.canceled {
		return 0, ErrCanceled
	}
	return m.selected, nil
}

// parseOrdinal interprets raw as a 1-based selection. Empty input falls back
// to def when a default exists.
func parseOrdinal(raw string, n, def int) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if def > 0 {
			return def, true
		}
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 || v > n {
		return 0, false
	}
	return v, true
}

// ---------------------------------------------------------------------------
// Multiline
// ---------------------------------------------------------------------------

type multilineModel struct {
	prompt string
	input  textinput.Model
	lines  []string
	blanks int
	done   bool
}

func newMultilineModel(prompt string) multilineModel {
	ti := textinput.New()
	ti.CharLimit = 0
	ti.Focus()
	return multilineModel{prompt: prompt, input: ti}
}

func (m multilineModel) Init() tea.Cmd { return textinput.Blink }

func (m multilineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyCtrlD:
			// Early termination keeps whatever was captured.
			m.done = true
			return m, tea.Quit
		case tea.KeyEnter:
			line := m.input.Value()
			m.input.SetValue("")
			if strings.TrimSpace(line) == "" {
				m.blanks++
				if m.blanks >= 2 {
					m.done = true
					return m, tea.Quit
				}
			} else {
				m.blanks = 0
			}
			m.lines = append(m.lines, line)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m multilineModel) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s (press Enter twice to finish):\n", m.prompt)
	for _, line := range m.lines {
		b.WriteString(line + "\n")
	}
	b.WriteString(m.input.View() + "\n")
	return b.String()
}

func (t *Term) Multiline(prompt string) ([]string, error) {
	final, err := runModel(newMultilineModel(prompt))
	if err != nil {
		return nil, err
	}
	return final.(multilineModel).lines, nil
}

// runModel runs a model to completion and returns the final state.
func runModel(m tea.Model) (tea.Model, error) {
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return nil, fmt.Errorf("prompt: %w", err)
	}
	return final, nil
}
