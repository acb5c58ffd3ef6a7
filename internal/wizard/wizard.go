// Package wizard drives questionnaire collection: a strictly sequential walk
// over sections and questions, dispatching on question type, skipping
// questions whose visibility condition fails, and degrading per-field
// failures to omitted answers. Only an unhandled cancellation escapes to the
// caller.
package wizard

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"steerwiz/internal/prompt"
	"steerwiz/internal/schema"
	"steerwiz/internal/ui"
)

// Engine collects answers through a Prompter and reports through a Console.
type Engine struct {
	Prompter prompt.Prompter
	Console  *ui.Console
}

// New returns a collection engine.
func New(p prompt.Prompter, c *ui.Console) *Engine {
	return &Engine{Prompter: p, Console: c}
}

// Collect walks the schema in order and returns the accumulated answer map.
// Invisible questions are skipped without a prompt; failed or abandoned
// fields are omitted from the map. A cancellation that cannot be resolved at
// field level propagates as prompt.ErrCanceled.
func (e *Engine) Collect(s *schema.Schema, projectPath string) (schema.Answers, error) {
	e.Console.Panel(s.Metadata.Name, s.Metadata.Description)
	e.Console.Blank()
	e.Console.Field("Project Path", projectPath)
	e.Console.Blank()

	answers := schema.Answers{}
	for _, sec := range s.Sections {
		e.Console.Section(sec.Title)
		for i := range sec.Questions {
			q := &sec.Questions[i]
			if !q.Visible(answers) {
				continue
			}
			value, err := e.ask(q)
			if err != nil {
				return nil, err
			}
			if value != nil {
				answers[q.ID] = value
			}
		}
		e.Console.Blank()
	}
	return answers, nil
}

// ask dispatches on the question type. The returned value is nil when the
// answer was skipped or abandoned.
func (e *Engine) ask(q *schema.Question) (any, error) {
	switch q.Type {
	case schema.TypeChoice:
		return e.askChoice(q)
	case schema.TypeBoolean:
		return e.askBoolean(q)
	case schema.TypeText:
		return e.askText(q)
	case schema.TypeMultiline:
		return e.askMultiline(q)
	}
	e.Console.Error("Unknown question type: %s", q.Type)
	return nil, nil
}

// askChoice presents the options with 1-based ordinals and returns the
// selected choice's value.
func (e *Engine) askChoice(q *schema.Question) (any, error) {
	e.Console.Blank()
	e.Console.Print("%s:", q.Prompt)
	for i, c := range q.Choices {
		marker := ""
		if c.Default {
			marker = " (default)"
		}
		e.Console.Print("  %d. %s%s", i+1, c.Label, marker)
	}
	sel, err := e.Prompter.Choice("Select your choice", len(q.Choices), q.DefaultChoice())
	if err != nil {
		return nil, err
	}
	return q.Choices[sel-1].Value, nil
}

func (e *Engine) askBoolean(q *schema.Question) (any, error) {
	def, _ := q.Default.(bool)
	return e.Prompter.Confirm(q.Prompt, def)
}

// askText runs the bounded retry loop. Validation failures and resolved
// cancellations never escape: the worst outcome is a skipped question.
func (e *Engine) askText(q *schema.Question) (any, error) {
	def, _ := q.Default.(string)

	for attempt := 0; attempt < q.RetryAttempts; attempt++ {
		answer, err := e.Prompter.Line(q.Prompt, def)
		if errors.Is(err, prompt.ErrCanceled) {
			e.Console.Warn("Input canceled.")
			if q.Optional {
				return nil, nil
			}
			skip, cerr := e.Prompter.Confirm("Skip this question?", true)
			if cerr != nil {
				return nil, cerr // cancellation of the recovery prompt propagates
			}
			if skip {
				return nil, nil
			}
			continue
		}
		if err != nil {
			return nil, err
		}

		if strings.TrimSpace(answer) == "" && q.Optional {
			return nil, nil
		}

		if q.Validation != nil {
			ok, msg := q.Validation.Validate(answer)
			if !ok {
				e.Console.Error("%s", msg)
				if attempt < q.RetryAttempts-1 {
					e.Console.Print("Attempts remaining: %d", q.RetryAttempts-attempt-1)
					continue
				}
				e.Console.Warn("Maximum attempts reached. Skipping question.")
				return nil, nil
			}
		}
		return answer, nil
	}
	return nil, nil
}

// askMultiline gathers raw lines until the blank-pair terminator, trims
// trailing blanks and joins with single newlines. An empty body is a skip.
func (e *Engine) askMultiline(q *schema.Question) (any, error) {
	lines, err := e.Prompter.Multiline(q.Prompt)
	if err != nil {
		e.Console.Error("Error during input: %v", err)
		e.Console.Warn("Skipping multiline input.")
		return nil, nil
	}
	body := JoinLines(lines)
	if body == "" {
		return nil, nil
	}
	return body, nil
}

// JoinLines drops trailing blank lines and joins the rest with newlines.
func JoinLines(lines []string) string {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

// ValidateAll re-checks the finished answer map against the schema: every
// required question that is visible under the final answers must be present,
// and stored text answers must still satisfy their rules. All violations are
// reported together; the pass succeeds iff none were found.
func (e *Engine) ValidateAll(answers schema.Answers, s *schema.Schema) (bool, []string) {
	var violations []string

	for _, q := range s.AllQuestions() {
		if !answers.Has(q.ID) {
			if !q.Optional && schema.EvalCondition(q.Condition, answers) {
				violations = append(violations, fmt.Sprintf("required question %q was not answered", q.ID))
			}
			continue
		}
		if (q.Type == schema.TypeText || q.Type == schema.TypeMultiline) && q.Validation != nil {
			if ok, msg := q.Validation.Validate(answers.String(q.ID)); !ok {
				violations = append(violations, fmt.Sprintf("question %q: %s", q.ID, msg))
			}
		}
	}

	if len(violations) > 0 {
		e.Console.Blank()
		e.Console.Error("Validation Errors:")
		for _, v := range violations {
			e.Console.Error("  • %s", v)
		}
		return false, violations
	}
	e.Console.Blank()
	e.Console.Success("All answers validated successfully!")
	return true, nil
}

// Summary prints the collected answers grouped by section. Sections with no
// answers are skipped; booleans display as Yes/No, choice values as their
// labels, multiline bodies as character counts.
func (e *Engine) Summary(answers schema.Answers, s *schema.Schema) {
	e.Console.Blank()
	e.Console.Section("Configuration Summary")

	for _, sec := range s.Sections {
		any := false
		for _, q := range sec.Questions {
			if answers.Has(q.ID) {
				any = true
				break
			}
		}
		if !any {
			continue
		}

		e.Console.Blank()
		e.Console.Field(sec.Title, "")
		for _, q := range sec.Questions {
			if !answers.Has(q.ID) {
				continue
			}
			e.Console.Print("  %s: %s", summaryPrompt(&q), summaryValue(&q, answers))
		}
	}
}

func summaryPrompt(q *schema.Question) string {
	p := strings.TrimSuffix(strings.TrimSpace(q.Prompt), "?")
	if p == "" {
		p = strings.ReplaceAll(q.ID, "_", " ")
	}
	return p
}

func summaryValue(q *schema.Question, answers schema.Answers) string {
	switch q.Type {
	case schema.TypeBoolean:
		if answers.Bool(q.ID) {
			return "Yes"
		}
		return "No"
	case schema.TypeChoice:
		return q.ChoiceLabel(answers.String(q.ID))
	case schema.TypeMultiline:
		return fmt.Sprintf("Yes (%d characters)", utf8.RuneCountInString(answers.String(q.ID)))
	default:
		if v := answers.String(q.ID); v != "" {
			return v
		}
		return "Not specified"
	}
}
