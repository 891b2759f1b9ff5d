package form

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"github.com/eino-contrib/jsonschema"
)

type rawQuestion struct {
	ID       string      `json:"id"`
	Order    int         `json:"order"`
	Prompt   string      `json:"prompt"`
	Kind     FieldKind   `json:"field_kind"`
	Choices  []string    `json:"choices"`
	Required *bool       `json:"required"`
	Branch   *BranchRule `json:"branch_rule"`
	// Legacy templates express branching as free text, e.g.
	// "If Q2 = 'Yes'" or "Skip if Q3 != 'Married'".
	ConditionalLogic string `json:"conditional_logic"`
	HelpText         string `json:"help_text"`
}

type rawTemplate struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Organization string        `json:"organization"`
	Description  string        `json:"description"`
	Questions    []rawQuestion `json:"questions"`
}

// ParseTemplate decodes a template JSON document, converts legacy
// conditional-logic strings into structured branch rules, sorts the
// questions and validates the result.
func ParseTemplate(data []byte) (*Template, error) {
	var raw rawTemplate
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode template: %w", err)
	}
	tmpl := &Template{
		ID:           raw.ID,
		Name:         raw.Name,
		Organization: raw.Organization,
		Description:  raw.Description,
		Questions:    make([]Question, 0, len(raw.Questions)),
	}
	for _, rq := range raw.Questions {
		q := Question{
			ID:       rq.ID,
			Order:    rq.Order,
			Prompt:   rq.Prompt,
			Kind:     rq.Kind,
			Choices:  rq.Choices,
			Required: true,
			Branch:   rq.Branch,
			HelpText: rq.HelpText,
		}
		if rq.Required != nil {
			q.Required = *rq.Required
		}
		if q.Kind == "" {
			q.Kind = KindFreeText
		}
		if q.Branch == nil && rq.ConditionalLogic != "" {
			q.Branch = ParseBranchRule(rq.ConditionalLogic)
		}
		tmpl.Questions = append(tmpl.Questions, q)
	}
	tmpl.SortQuestions()
	if err := tmpl.Validate(); err != nil {
		return nil, err
	}
	return tmpl, nil
}

// LoadTemplate reads and parses a template JSON file.
func LoadTemplate(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}
	return ParseTemplate(data)
}

// TemplateJSONSchema reflects the template structure into a JSON schema
// document, for authoring tools that validate template files before they
// reach the engine.
func TemplateJSONSchema() (string, error) {
	schema := jsonschema.Reflect(&Template{})
	schema.Title = "Intake form template"
	schema.Description = "Ordered questionnaire consumed by the conversational intake engine."
	data, err := sonic.Marshal(schema)
	if err != nil {
		return "", fmt.Errorf("marshal template schema: %w", err)
	}
	return string(data), nil
}
