package schema

// load.go — YAML questionnaire loading.
//
// Loading is two-phase. Phase one decodes the document into raw structural
// types and checks shape: required top-level keys, required question and
// choice fields, recognised type values. The first structural problem aborts
// with a single combined error. Phase two runs Schema.Validate and reports
// every semantic violation (duplicate ids, dangling conditions, empty choice
// lists) as one batch.

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadError is the failure mode of questionnaire loading. Messages holds
// every violation found in the failing phase.
type LoadError struct {
	Stage    string // "read", "parse", "structure" or "consistency"
	Messages []string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("questionnaire %s error: %s", e.Stage, strings.Join(e.Messages, "; "))
}

// Raw structural types mirroring the YAML document shape. Pointer fields
// distinguish "absent" from "zero" where the default is not the zero value.
type rawDoc struct {
	Metadata  *rawMetadata      `yaml:"metadata"`
	Sections  []rawSection      `yaml:"sections"`
	Templates map[string]string `yaml:"templates"`
}

type rawMetadata struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
}

type rawSection struct {
	Name      string        `yaml:"name"`
	Title     string        `yaml:"title"`
	Questions []rawQuestion `yaml:"questions"`
}

type rawQuestion struct {
	ID            string       `yaml:"id"`
	Type          string       `yaml:"type"`
	Prompt        string       `yaml:"prompt"`
	Choices       []rawChoice  `yaml:"choices"`
	Validation    *rawRule     `yaml:"validation"`
	Condition     string       `yaml:"condition"`
	RetryAttempts *int         `yaml:"retry_attempts"`
	Optional      bool         `yaml:"optional"`
	Default       any          `yaml:"default_value"`
}

type rawChoice struct {
	Value   *string `yaml:"value"`
	Label   *string `yaml:"label"`
	Default bool    `yaml:"default"`
}

type rawRule struct {
	Regex        string `yaml:"regex"`
	ErrorMessage string `yaml:"error_message"`
	MinLength    int    `yaml:"min_length"`
	MaxLength    int    `yaml:"max_length"`
	Required     *bool  `yaml:"required"`
}

// LoadFile reads and loads a questionnaire YAML file.
func LoadFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Stage: "read", Messages: []string{err.Error()}}
	}
	return Load(data)
}

// Load parses a questionnaire document and returns the validated schema.
func Load(data []byte) (*Schema, error) {
	var doc rawDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &LoadError{Stage: "parse", Messages: []string{err.Error()}}
	}

	if err := checkStructure(&doc); err != nil {
		return nil, err
	}

	s := convert(&doc)

	if errs := s.Validate(); len(errs) > 0 {
		return nil, &LoadError{Stage: "consistency", Messages: errs}
	}
	return s, nil
}

// Check performs the full load and reports validity plus the accumulated
// messages, without requiring the caller to use the schema. Used by the
// validate-only CLI mode.
func Check(path string) (ok bool, name string, messages []string) {
	s, err := LoadFile(path)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			return false, "", le.Messages
		}
		return false, "", []string{err.Error()}
	}
	return true, s.Metadata.Name, nil
}

// checkStructure validates the document shape. Returns on the first problem
// with a single combined error, matching the structural phase contract.
func checkStructure(doc *rawDoc) error {
	fail := func(format string, args ...any) error {
		return &LoadError{Stage: "structure", Messages: []string{fmt.Sprintf(format, args...)}}
	}

	if doc.Metadata == nil {
		return fail("missing required top-level key %q", "metadata")
	}
	if doc.Metadata.Name == "" {
		return fail("metadata is missing required field %q", "name")
	}
	if doc.Metadata.Version == "" {
		return fail("metadata is missing required field %q", "version")
	}
	if doc.Metadata.Description == "" {
		return fail("metadata is missing required field %q", "description")
	}
	if doc.Sections == nil {
		return fail("missing required top-level key %q", "sections")
	}

	for si, sec := range doc.Sections {
		if sec.Name == "" {
			return fail("section %d is missing required field %q", si, "name")
		}
		if sec.Title == "" {
			return fail("section %q is missing required field %q", sec.Name, "title")
		}
		if sec.Questions == nil {
			return fail("section %q is missing required key %q", sec.Name, "questions")
		}
		for qi, q := range sec.Questions {
			where := q.ID
			if where == "" {
				where = fmt.Sprintf("%s[%d]", sec.Name, qi)
			}
			if q.ID == "" {
				return fail("question %s is missing required field %q", where, "id")
			}
			if q.Type == "" {
				return fail("question %q is missing required field %q", where, "type")
			}
			if !QuestionType(q.Type).Valid() {
				return fail("question %q has invalid type %q", where, q.Type)
			}
			if q.Prompt == "" {
				return fail("question %q is missing required field %q", where, "prompt")
			}
			for ci, c := range q.Choices {
				if c.Value == nil {
					return fail("choice %d of question %q is missing required field %q", ci, where, "value")
				}
				if c.Label == nil {
					return fail("choice %d of question %q is missing required field %q", ci, where, "label")
				}
			}
			if q.Default != nil {
				switch q.Default.(type) {
				case string, bool:
				default:
					return fail("question %q has non-string, non-boolean default_value", where)
				}
			}
		}
	}
	return nil
}

// convert builds the schema model from a structurally valid document.
func convert(doc *rawDoc) *Schema {
	s := &Schema{
		Metadata: Metadata{
			Name:        doc.Metadata.Name,
			Version:     doc.Metadata.Version,
			Description: doc.Metadata.Description,
		},
		Templates: doc.Templates,
	}
	if s.Templates == nil {
		s.Templates = map[string]string{}
	}

	for _, rs := range doc.Sections {
		sec := Section{Name: rs.Name, Title: rs.Title}
		for _, rq := range rs.Questions {
			sec.Questions = append(sec.Questions, convertQuestion(rq))
		}
		s.Sections = append(s.Sections, sec)
	}
	return s
}

func convertQuestion(rq rawQuestion) Question {
	q := Question{
		ID:            rq.ID,
		Type:          QuestionType(rq.Type),
		Prompt:        rq.Prompt,
		Condition:     rq.Condition,
		RetryAttempts: DefaultRetryAttempts,
		Optional:      rq.Optional,
		Default:       rq.Default,
	}
	if rq.RetryAttempts != nil {
		q.RetryAttempts = *rq.RetryAttempts
	}
	for _, rc := range rq.Choices {
		q.Choices = append(q.Choices, Choice{Value: *rc.Value, Label: *rc.Label, Default: rc.Default})
	}
	if rq.Validation != nil {
		rule := &ValidationRule{
			Pattern:   rq.Validation.Regex,
			Message:   rq.Validation.ErrorMessage,
			MinLength: rq.Validation.MinLength,
			MaxLength: rq.Validation.MaxLength,
			Required:  true,
		}
		if rq.Validation.Required != nil {
			rule.Required = *rq.Validation.Required
		}
		q.Validation = rule
	}
	return q
}
