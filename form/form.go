package form

import (
	"fmt"
	"sort"
	"strings"
)

type FieldKind string

const (
	KindFreeText     FieldKind = "free_text"
	KindEmail        FieldKind = "email"
	KindPhone        FieldKind = "phone"
	KindDate         FieldKind = "date"
	KindNumber       FieldKind = "number"
	KindSingleChoice FieldKind = "single_choice"
	KindMultiChoice  FieldKind = "multi_choice"
)

// IsChoice reports whether the kind requires a non-empty choice list.
func (k FieldKind) IsChoice() bool {
	return k == KindSingleChoice || k == KindMultiChoice
}

// Question is one prompt in a template. Immutable once the template is bound
// to a session.
type Question struct {
	ID       string      `json:"id" jsonschema:"required,description=Stable unique identifier"`
	Order    int         `json:"order" jsonschema:"required,description=Default traversal position"`
	Prompt   string      `json:"prompt" jsonschema:"required,description=Question text shown to the respondent"`
	Kind     FieldKind   `json:"field_kind" jsonschema:"required,enum=free_text,enum=email,enum=phone,enum=date,enum=number,enum=single_choice,enum=multi_choice"`
	Choices  []string    `json:"choices,omitempty" jsonschema:"description=Ordered answer options for choice kinds"`
	Required bool        `json:"required"`
	Branch   *BranchRule `json:"branch_rule,omitempty"`
	HelpText string      `json:"help_text,omitempty" jsonschema:"description=Explanation of why the question is asked"`
}

// PromptContains reports whether the lower-cased prompt contains the keyword.
func (q *Question) PromptContains(keyword string) bool {
	return strings.Contains(strings.ToLower(q.Prompt), keyword)
}

// Template is an ordered questionnaire, already resolved by the template
// management layer.
type Template struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Organization string     `json:"organization,omitempty"`
	Description  string     `json:"description,omitempty"`
	Questions    []Question `json:"questions"`
}

// QuestionByOrder returns the question with the given order value, or nil.
func (t *Template) QuestionByOrder(order int) *Question {
	for i := range t.Questions {
		if t.Questions[i].Order == order {
			return &t.Questions[i]
		}
	}
	return nil
}

// SortQuestions orders the question list by its order field, keeping the
// original sequence for equal values.
func (t *Template) SortQuestions() {
	sort.SliceStable(t.Questions, func(i, j int) bool {
		return t.Questions[i].Order < t.Questions[j].Order
	})
}

// Validate checks the structural invariants of a template: unique question
// ids, and choices present exactly for choice kinds.
func (t *Template) Validate() error {
	if len(t.Questions) == 0 {
		return fmt.Errorf("template %q has no questions", t.Name)
	}
	seen := make(map[string]bool, len(t.Questions))
	for i := range t.Questions {
		q := &t.Questions[i]
		if q.ID == "" {
			return fmt.Errorf("question #%d has an empty id", q.Order)
		}
		if seen[q.ID] {
			return fmt.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true
		switch {
		case q.Kind.IsChoice() && len(q.Choices) == 0:
			return fmt.Errorf("question %q is %s but has no choices", q.ID, q.Kind)
		case !q.Kind.IsChoice() && len(q.Choices) > 0:
			return fmt.Errorf("question %q is %s but carries choices", q.ID, q.Kind)
		}
	}
	return nil
}

// Normalize trims and case-folds an answer for comparisons.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
