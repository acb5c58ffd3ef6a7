package schema

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// ValidationRule constrains a free-text answer. The zero value with
// Required=true rejects only empty input. Check order, short-circuiting on
// the first failure: required, min length, max length, pattern.
type ValidationRule struct {
	Pattern   string // regular expression, anchored against the full value
	Message   string // overrides the generic pattern-mismatch message
	MinLength int    // 0 means unconstrained
	MaxLength int    // 0 means unconstrained
	Required  bool
}

// Validate checks value against the rule. On failure the second return value
// carries the user-facing message.
func (r *ValidationRule) Validate(value string) (bool, string) {
	if value == "" {
		if r.Required {
			return false, "This field is required"
		}
		return true, ""
	}

	// Length limits count characters, not bytes, so multibyte input is
	// measured the way the messages describe it.
	length := utf8.RuneCountInString(value)
	if r.MinLength > 0 && length < r.MinLength {
		return false, fmt.Sprintf("Minimum length is %d characters", r.MinLength)
	}
	if r.MaxLength > 0 && length > r.MaxLength {
		return false, fmt.Sprintf("Maximum length is %d characters", r.MaxLength)
	}

	if r.Pattern != "" {
		re, err := regexp.Compile(`\A(?:` + r.Pattern + `)\z`)
		if err != nil || !re.MatchString(value) {
			if r.Message != "" {
				return false, r.Message
			}
			return false, "Invalid format"
		}
	}

	return true, ""
}
