package form

import (
	"regexp"
	"strconv"
)

type BranchOp string

const (
	// BranchEquals shows the question only while the referenced answer
	// equals the expected value. While the reference is unanswered the
	// question is held back.
	BranchEquals BranchOp = "equals"
	// BranchNotEquals skips the question once the referenced answer does
	// not equal the expected value. While the reference is unanswered the
	// question stays visible.
	BranchNotEquals BranchOp = "not_equals"
)

// BranchRule is a structured show/skip condition over a referenced question's
// recorded answer. It is built once at template-load time; legacy free-text
// rule strings go through ParseBranchRule.
type BranchRule struct {
	Op            BranchOp `json:"op" jsonschema:"required,enum=equals,enum=not_equals"`
	QuestionOrder int      `json:"question_order" jsonschema:"required,description=Order value of the referenced question"`
	Value         string   `json:"value" jsonschema:"required,description=Expected answer, compared case-insensitively"`
}

var (
	// "If Q2 = 'Yes', show this question"
	branchEqualsRe = regexp.MustCompile(`(?i)if\s+q?(\d+)\s*=\s*['"]?([^'",]+)['"]?`)
	// "Skip if Q3 != 'Married'"
	branchNotEqualsRe = regexp.MustCompile(`(?i)skip\s+if\s+q?(\d+)\s*!=\s*['"]?([^'",]+)['"]?`)
)

// ParseBranchRule converts a legacy conditional-logic string into a
// structured rule. It returns nil when the string matches no known pattern,
// in which case the heuristic skip rules remain the only fallback.
func ParseBranchRule(logic string) *BranchRule {
	if m := branchNotEqualsRe.FindStringSubmatch(logic); m != nil {
		order, err := strconv.Atoi(m[1])
		if err != nil {
			return nil
		}
		return &BranchRule{Op: BranchNotEquals, QuestionOrder: order, Value: Normalize(m[2])}
	}
	if m := branchEqualsRe.FindStringSubmatch(logic); m != nil {
		order, err := strconv.Atoi(m[1])
		if err != nil {
			return nil
		}
		return &BranchRule{Op: BranchEquals, QuestionOrder: order, Value: Normalize(m[2])}
	}
	return nil
}
