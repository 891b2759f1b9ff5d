// Package skiplogic decides whether a question should be presented, based on
// its explicit branch rule or, failing that, a fixed-priority list of
// heuristic rules over the answers recorded so far.
package skiplogic

import (
	"strings"

	"github.com/monjil99/intakeagent/form"
)

// ShouldSkip reports whether the question should not be presented under the
// current responses. An explicit branch rule is authoritative; heuristics
// only apply to questions without one.
func ShouldSkip(q *form.Question, responses *form.ResponseMap, tmpl *form.Template) bool {
	if q.Branch != nil {
		return evalBranch(q.Branch, responses, tmpl)
	}
	for _, rule := range heuristics {
		if rule.skip(q, responses, tmpl) {
			return true
		}
	}
	return false
}

func evalBranch(rule *form.BranchRule, responses *form.ResponseMap, tmpl *form.Template) bool {
	ref := tmpl.QuestionByOrder(rule.QuestionOrder)
	var answer string
	answered := false
	if ref != nil {
		answer, answered = responses.Get(ref.ID)
	}
	if !answered {
		// Asymmetric on purpose: an equals condition holds the question
		// back until its reference is answered, a not-equals condition
		// keeps it visible.
		return rule.Op == form.BranchEquals
	}
	equal := form.Normalize(answer) == form.Normalize(rule.Value)
	if rule.Op == form.BranchNotEquals {
		return equal
	}
	return !equal
}

// heuristicRule is a pure predicate; returning true means skip. Rules run in
// declaration order and the first match wins.
type heuristicRule struct {
	name string
	skip func(q *form.Question, responses *form.ResponseMap, tmpl *form.Template) bool
}

var heuristics = []heuristicRule{
	{name: "court_referral", skip: skipCourtReferral},
	{name: "spouse", skip: skipSpouse},
	{name: "program_specific", skip: skipProgramSpecific},
	{name: "benefit_amount", skip: skipBenefitAmount},
}

var negativeAnswers = map[string]bool{
	"no": true, "n": true, "none": true, "not applicable": true, "na": true,
}

var notMarriedAnswers = map[string]bool{
	"no": true, "single": true, "divorced": true, "widowed": true, "separated": true,
}

var noBenefitAnswers = map[string]bool{
	"no": true, "none": true, "0": true, "not applicable": true, "na": true,
	"do not receive": true,
}

// answerToPromptMatching returns the recorded answer of the first question
// whose prompt contains every given keyword.
func answerToPromptMatching(responses *form.ResponseMap, tmpl *form.Template, keywords ...string) (string, bool) {
	for i := range tmpl.Questions {
		q := &tmpl.Questions[i]
		matched := true
		for _, kw := range keywords {
			if !q.PromptContains(kw) {
				matched = false
				break
			}
		}
		if !matched {
			continue
		}
		if answer, ok := responses.Get(q.ID); ok {
			return answer, true
		}
	}
	return "", false
}

// A court referral-source question is pointless once the respondent said
// they have no court case.
func skipCourtReferral(q *form.Question, responses *form.ResponseMap, tmpl *form.Template) bool {
	if !q.PromptContains("referral source") || !q.PromptContains("court") {
		return false
	}
	answer, ok := answerToPromptMatching(responses, tmpl, "court case")
	return ok && negativeAnswers[form.Normalize(answer)]
}

func skipSpouse(q *form.Question, responses *form.ResponseMap, tmpl *form.Template) bool {
	if !q.PromptContains("spouse") && !q.PromptContains("partner") {
		return false
	}
	for _, kw := range []string{"married", "marital"} {
		if answer, ok := answerToPromptMatching(responses, tmpl, kw); ok {
			if notMarriedAnswers[form.Normalize(answer)] {
				return true
			}
		}
	}
	return false
}

var programTokens = []string{"dads", "moms", "epic", "mend"}

// Program-specific follow-ups only apply when that program was selected in
// the enrollment question.
func skipProgramSpecific(q *form.Question, responses *form.ResponseMap, tmpl *form.Template) bool {
	if !q.PromptContains("program") {
		return false
	}
	answer, ok := answerToPromptMatching(responses, tmpl, "program", "enrolled")
	if !ok {
		return false
	}
	enrolled := form.Normalize(answer)
	for _, token := range programTokens {
		if q.PromptContains(token) && !strings.Contains(enrolled, token) {
			return true
		}
	}
	return false
}

func skipBenefitAmount(q *form.Question, responses *form.ResponseMap, tmpl *form.Template) bool {
	if !q.PromptContains("benefit") {
		return false
	}
	if !q.PromptContains("amount") && !q.PromptContains("monthly") {
		return false
	}
	answer, ok := answerToPromptMatching(responses, tmpl, "benefit")
	return ok && noBenefitAnswers[form.Normalize(answer)]
}
