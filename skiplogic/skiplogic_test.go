package skiplogic

import (
	"testing"

	"github.com/monjil99/intakeagent/form"
)

func twoQuestionTemplate(branch *form.BranchRule) *form.Template {
	return &form.Template{
		Name: "test",
		Questions: []form.Question{
			{ID: "q2", Order: 2, Prompt: "Do you agree?", Kind: form.KindSingleChoice, Choices: []string{"Yes", "No"}},
			{ID: "q5", Order: 5, Prompt: "Tell us more", Kind: form.KindFreeText, Branch: branch},
		},
	}
}

func TestEqualsRule(t *testing.T) {
	rule := &form.BranchRule{Op: form.BranchEquals, QuestionOrder: 2, Value: "Yes"}
	tmpl := twoQuestionTemplate(rule)
	q := tmpl.QuestionByOrder(5)

	cases := []struct {
		name     string
		answer   string
		answered bool
		skip     bool
	}{
		{"unanswered reference is held back", "", false, true},
		{"matching answer shows", "Yes", true, false},
		{"case and whitespace are folded", "  yes  ", true, false},
		{"non-matching answer skips", "No", true, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			responses := form.NewResponseMap()
			if tc.answered {
				if err := responses.Record("q2", tc.answer); err != nil {
					t.Fatal(err)
				}
			}
			if got := ShouldSkip(q, responses, tmpl); got != tc.skip {
				t.Errorf("expected skip=%v, got %v", tc.skip, got)
			}
		})
	}
}

func TestNotEqualsRule(t *testing.T) {
	rule := &form.BranchRule{Op: form.BranchNotEquals, QuestionOrder: 2, Value: "Married"}
	tmpl := twoQuestionTemplate(rule)
	q := tmpl.QuestionByOrder(5)

	// Unanswered reference keeps the question visible.
	if ShouldSkip(q, form.NewResponseMap(), tmpl) {
		t.Error("unanswered reference should not skip under a not-equals rule")
	}

	responses := form.NewResponseMap()
	if err := responses.Record("q2", "married"); err != nil {
		t.Fatal(err)
	}
	if !ShouldSkip(q, responses, tmpl) {
		t.Error("equal answer should skip under a not-equals rule")
	}
}

func TestUnresolvedReferenceEquals(t *testing.T) {
	rule := &form.BranchRule{Op: form.BranchEquals, QuestionOrder: 99, Value: "Yes"}
	tmpl := twoQuestionTemplate(rule)
	q := tmpl.QuestionByOrder(5)
	if !ShouldSkip(q, form.NewResponseMap(), tmpl) {
		t.Error("unresolved reference under equals should skip")
	}
}

func TestSpouseHeuristic(t *testing.T) {
	tmpl := &form.Template{
		Name: "test",
		Questions: []form.Question{
			{ID: "q1", Order: 1, Prompt: "Are you married?", Kind: form.KindSingleChoice, Choices: []string{"Yes", "No"}},
			{ID: "q2", Order: 2, Prompt: "Spouse name", Kind: form.KindFreeText},
		},
	}
	q2 := tmpl.QuestionByOrder(2)

	responses := form.NewResponseMap()
	if ShouldSkip(q2, responses, tmpl) {
		t.Error("spouse question should show before marital status is answered")
	}

	if err := responses.Record("q1", "No"); err != nil {
		t.Fatal(err)
	}
	if !ShouldSkip(q2, responses, tmpl) {
		t.Error("spouse question should skip after a negative marital answer")
	}

	yes := form.NewResponseMap()
	if err := yes.Record("q1", "Yes"); err != nil {
		t.Fatal(err)
	}
	if ShouldSkip(q2, yes, tmpl) {
		t.Error("spouse question should show when married")
	}
}

func TestCourtReferralHeuristic(t *testing.T) {
	tmpl := &form.Template{
		Name: "test",
		Questions: []form.Question{
			{ID: "q1", Order: 1, Prompt: "Do you currently have a court case?", Kind: form.KindSingleChoice, Choices: []string{"Yes", "No"}},
			{ID: "q2", Order: 2, Prompt: "Referral source to Court", Kind: form.KindFreeText},
		},
	}
	q2 := tmpl.QuestionByOrder(2)

	responses := form.NewResponseMap()
	if err := responses.Record("q1", "no"); err != nil {
		t.Fatal(err)
	}
	if !ShouldSkip(q2, responses, tmpl) {
		t.Error("court referral question should skip when there is no court case")
	}
}

func TestBenefitAmountHeuristic(t *testing.T) {
	tmpl := &form.Template{
		Name: "test",
		Questions: []form.Question{
			{ID: "q1", Order: 1, Prompt: "Do you receive TANF benefits?", Kind: form.KindSingleChoice, Choices: []string{"Yes", "No"}},
			{ID: "q2", Order: 2, Prompt: "What is your monthly TANF benefit?", Kind: form.KindNumber},
		},
	}
	q2 := tmpl.QuestionByOrder(2)

	responses := form.NewResponseMap()
	if err := responses.Record("q1", "none"); err != nil {
		t.Fatal(err)
	}
	if !ShouldSkip(q2, responses, tmpl) {
		t.Error("benefit amount question should skip after a negative benefits answer")
	}
}

func TestProgramHeuristic(t *testing.T) {
	tmpl := &form.Template{
		Name: "test",
		Questions: []form.Question{
			{ID: "q1", Order: 1, Prompt: "Program Currently Enrolled", Kind: form.KindSingleChoice, Choices: []string{"Dads", "Moms", "EPIC", "MEND"}},
			{ID: "q2", Order: 2, Prompt: "How long have you been in the Dads program?", Kind: form.KindFreeText},
		},
	}
	q2 := tmpl.QuestionByOrder(2)

	responses := form.NewResponseMap()
	if err := responses.Record("q1", "EPIC"); err != nil {
		t.Fatal(err)
	}
	if !ShouldSkip(q2, responses, tmpl) {
		t.Error("dads follow-up should skip when enrolled in a different program")
	}

	dads := form.NewResponseMap()
	if err := dads.Record("q1", "Dads"); err != nil {
		t.Fatal(err)
	}
	if ShouldSkip(q2, dads, tmpl) {
		t.Error("dads follow-up should show when enrolled in dads")
	}
}

func TestExplicitRuleBeatsHeuristics(t *testing.T) {
	// A spouse question with an explicit equals rule stays visible even
	// when the heuristic would skip it.
	tmpl := &form.Template{
		Name: "test",
		Questions: []form.Question{
			{ID: "q1", Order: 1, Prompt: "Are you married?", Kind: form.KindSingleChoice, Choices: []string{"Yes", "No"}},
			{ID: "q2", Order: 2, Prompt: "Spouse name", Kind: form.KindFreeText,
				Branch: &form.BranchRule{Op: form.BranchEquals, QuestionOrder: 1, Value: "No"}},
		},
	}
	q2 := tmpl.QuestionByOrder(2)
	responses := form.NewResponseMap()
	if err := responses.Record("q1", "No"); err != nil {
		t.Fatal(err)
	}
	if ShouldSkip(q2, responses, tmpl) {
		t.Error("explicit rule should be authoritative over the spouse heuristic")
	}
}
