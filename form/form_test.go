package form

import (
	"testing"
)

func TestTemplateValidate(t *testing.T) {
	tmpl := &Template{
		Name: "test",
		Questions: []Question{
			{ID: "q1", Order: 1, Prompt: "Are you married?", Kind: KindSingleChoice, Choices: []string{"Yes", "No"}},
			{ID: "q2", Order: 2, Prompt: "Spouse name", Kind: KindFreeText},
		},
	}
	if err := tmpl.Validate(); err != nil {
		t.Fatalf("valid template rejected: %v", err)
	}
}

func TestTemplateValidateChoiceInvariant(t *testing.T) {
	cases := []struct {
		name string
		q    Question
	}{
		{"choice kind without choices", Question{ID: "q1", Order: 1, Prompt: "p", Kind: KindSingleChoice}},
		{"free text with choices", Question{ID: "q1", Order: 1, Prompt: "p", Kind: KindFreeText, Choices: []string{"Yes"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tmpl := &Template{Name: "test", Questions: []Question{tc.q}}
			if err := tmpl.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestTemplateValidateDuplicateID(t *testing.T) {
	tmpl := &Template{
		Name: "test",
		Questions: []Question{
			{ID: "q1", Order: 1, Prompt: "a", Kind: KindFreeText},
			{ID: "q1", Order: 2, Prompt: "b", Kind: KindFreeText},
		},
	}
	if err := tmpl.Validate(); err == nil {
		t.Error("expected duplicate id error")
	}
}

func TestResponseMapAppendOnly(t *testing.T) {
	m := NewResponseMap()
	if err := m.Record("q1", "first"); err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if err := m.Record("q1", "second"); err == nil {
		t.Error("expected error recording the same question twice")
	}
	answer, ok := m.Get("q1")
	if !ok || answer != "first" {
		t.Errorf("expected original answer to survive, got %q", answer)
	}
}

func TestResponseMapOrder(t *testing.T) {
	m := NewResponseMap()
	ids := []string{"q3", "q1", "q2"}
	for _, id := range ids {
		if err := m.Record(id, "answer "+id); err != nil {
			t.Fatalf("record %s: %v", id, err)
		}
	}
	entries := m.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for i, id := range ids {
		if entries[i].QuestionID != id {
			t.Errorf("entry %d: expected %s, got %s", i, id, entries[i].QuestionID)
		}
	}
}

func TestParseTemplateLegacyConditional(t *testing.T) {
	data := []byte(`{
		"id": "t1",
		"name": "Test Form",
		"questions": [
			{"id": "q1", "order": 1, "prompt": "Do you currently have a court case?", "field_kind": "single_choice", "choices": ["Yes", "No"]},
			{"id": "q2", "order": 2, "prompt": "Referral source to Court", "field_kind": "free_text", "conditional_logic": "If Q1 = 'Yes', show this question"}
		]
	}`)
	tmpl, err := ParseTemplate(data)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	q2 := tmpl.QuestionByOrder(2)
	if q2 == nil || q2.Branch == nil {
		t.Fatal("expected q2 to carry a branch rule")
	}
	if q2.Branch.Op != BranchEquals || q2.Branch.QuestionOrder != 1 || q2.Branch.Value != "yes" {
		t.Errorf("unexpected rule: %+v", q2.Branch)
	}
}

func TestTemplateJSONSchema(t *testing.T) {
	schema, err := TemplateJSONSchema()
	if err != nil {
		t.Fatalf("schema reflection failed: %v", err)
	}
	if schema == "" {
		t.Error("expected non-empty schema")
	}
}
