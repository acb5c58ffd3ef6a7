// Package schema holds the questionnaire data model: metadata, ordered
// sections of typed questions, per-question validation rules and visibility
// conditions, plus the answer map a collection run produces.
//
// A Schema is constructed once by the loader and read-only afterwards.
package schema

import (
	"fmt"
	"strings"
)

// QuestionType enumerates the four supported question kinds. The set is
// closed: collection, validation and condition logic all switch exhaustively
// over these values.
type QuestionType string

const (
	TypeChoice    QuestionType = "choice"
	TypeBoolean   QuestionType = "boolean"
	TypeText      QuestionType = "text"
	TypeMultiline QuestionType = "multiline"
)

// Valid reports whether t is one of the recognised question types.
func (t QuestionType) Valid() bool {
	switch t {
	case TypeChoice, TypeBoolean, TypeText, TypeMultiline:
		return true
	}
	return false
}

// DefaultRetryAttempts is the retry budget applied to text questions that do
// not configure their own.
const DefaultRetryAttempts = 3

// Metadata describes the questionnaire as a whole.
type Metadata struct {
	Name        string
	Version     string
	Description string
}

// Choice is one selectable option of a choice question. Value is the answer
// payload stored in the answer map; Label is the display text.
type Choice struct {
	Value   string
	Label   string
	Default bool
}

// Question is a single prompt within a section.
type Question struct {
	ID            string
	Type          QuestionType
	Prompt        string
	Choices       []Choice       // non-empty iff Type == TypeChoice
	Validation    *ValidationRule // meaningful for text/multiline only
	Condition     string          // "" means always visible
	RetryAttempts int
	Optional      bool
	Default       any // string or bool, nil when unset
}

// DefaultChoice returns the 1-based ordinal of the choice flagged default,
// or 0 when none is flagged.
func (q *Question) DefaultChoice() int {
	for i, c := range q.Choices {
		if c.Default {
			return i + 1
		}
	}
	return 0
}

// ChoiceLabel maps a stored choice value back to its display label. Falls
// back to the value itself when no choice matches.
func (q *Question) ChoiceLabel(value string) string {
	for _, c := range q.Choices {
		if c.Value == value {
			return c.Label
		}
	}
	return value
}

// Section groups related questions for display. It carries no validation of
// its own.
type Section struct {
	Name      string
	Title     string
	Questions []Question
}

// Schema is a complete questionnaire: metadata, ordered sections, and a map
// from logical document name to template identifier.
type Schema struct {
	Metadata  Metadata
	Sections  []Section
	Templates map[string]string
}

// AllQuestions returns every question across all sections in schema order.
func (s *Schema) AllQuestions() []Question {
	var out []Question
	for _, sec := range s.Sections {
		out = append(out, sec.Questions...)
	}
	return out
}

// QuestionByID returns the question with the given id, or nil.
func (s *Schema) QuestionByID(id string) *Question {
	for si := range s.Sections {
		for qi := range s.Sections[si].Questions {
			if s.Sections[si].Questions[qi].ID == id {
				return &s.Sections[si].Questions[qi]
			}
		}
	}
	return nil
}

// Validate checks cross-question consistency and returns every violation
// found: duplicate question ids, conditions referencing unknown question ids,
// and choice questions with no choices. An empty slice means the schema is
// consistent.
func (s *Schema) Validate() []string {
	var errs []string

	seen := make(map[string]bool)
	var dups []string
	for _, q := range s.AllQuestions() {
		if seen[q.ID] && !contains(dups, q.ID) {
			dups = append(dups, q.ID)
		}
		seen[q.ID] = true
	}
	if len(dups) > 0 {
		errs = append(errs, fmt.Sprintf("duplicate question IDs found: %s", strings.Join(dups, ", ")))
	}

	for _, q := range s.AllQuestions() {
		if q.Condition == "" {
			continue
		}
		subject, ok := conditionSubject(q.Condition)
		if !ok {
			errs = append(errs, fmt.Sprintf("question %q has invalid condition format: %s", q.ID, q.Condition))
			continue
		}
		if !seen[subject] {
			errs = append(errs, fmt.Sprintf("question %q references unknown variable %q in condition", q.ID, subject))
		}
	}

	for _, q := range s.AllQuestions() {
		if q.Type == TypeChoice && len(q.Choices) == 0 {
			errs = append(errs, fmt.Sprintf("choice question %q has no choices defined", q.ID))
		}
	}

	return errs
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
