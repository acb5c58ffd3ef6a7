package schema

// condition.go — the minimal visibility expression language.
//
// A condition is exactly one equality comparison, "<question_id> == <literal>",
// where the literal is true, false, or a (possibly quoted) string. There are
// no connectives, no inequality and no nesting. Malformed conditions are
// fail-open: the question stays visible so a broken schema never silently
// hides required input.

import (
	"fmt"
	"strings"
)

// Answers maps question ids to collected values (string or bool). One entry
// per answered question; last write wins if a question is re-asked.
type Answers map[string]any

// Has reports whether id has been answered.
func (a Answers) Has(id string) bool {
	_, ok := a[id]
	return ok
}

// String returns the stringified answer for id ("" when absent).
func (a Answers) String(id string) string {
	v, ok := a[id]
	if !ok {
		return ""
	}
	return stringify(v)
}

// Bool returns the answer for id as a boolean (false when absent or not a bool).
func (a Answers) Bool(id string) bool {
	b, _ := a[id].(bool)
	return b
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// Visible reports whether q should be asked given the answers collected so
// far. Questions without a condition are always visible. A condition whose
// subject has not yet been answered is not-yet-visible (forward-only
// dependency). Anything unparseable defaults to visible.
func (q *Question) Visible(answers Answers) bool {
	return EvalCondition(q.Condition, answers)
}

// EvalCondition evaluates a condition expression against answers. An empty
// expression is true.
func EvalCondition(expr string, answers Answers) bool {
	if expr == "" {
		return true
	}

	subject, literal, ok := splitCondition(expr)
	if !ok {
		return true // fail-open: malformed conditions keep the question visible
	}

	actual, answered := answers[subject]
	if !answered {
		return false
	}

	// Boolean literals compare by boolean equality.
	switch strings.ToLower(literal) {
	case "true":
		return actual == true
	case "false":
		return actual == false
	}

	// String literals: strip surrounding quotes, compare stringified.
	expected := strings.Trim(literal, `'"`)
	return stringify(actual) == expected
}

// splitCondition parses expr into its subject and literal tokens. ok is false
// unless the expression splits into exactly two non-empty " == " parts.
func splitCondition(expr string) (subject, literal string, ok bool) {
	parts := strings.Split(expr, " == ")
	if len(parts) != 2 {
		return "", "", false
	}
	subject = strings.TrimSpace(parts[0])
	literal = strings.TrimSpace(parts[1])
	if subject == "" || literal == "" {
		return "", "", false
	}
	return subject, literal, true
}

// conditionSubject returns the question id a condition refers to. Used by
// schema validation to detect dangling references.
func conditionSubject(expr string) (string, bool) {
	subject, _, ok := splitCondition(expr)
	return subject, ok
}
