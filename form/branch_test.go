package form

import "testing"

func TestParseBranchRule(t *testing.T) {
	cases := []struct {
		logic string
		want  *BranchRule
	}{
		{"If Q1 = 'Yes', show this question", &BranchRule{Op: BranchEquals, QuestionOrder: 1, Value: "yes"}},
		{"if q2 = Married", &BranchRule{Op: BranchEquals, QuestionOrder: 2, Value: "married"}},
		{`If 3 = "No"`, &BranchRule{Op: BranchEquals, QuestionOrder: 3, Value: "no"}},
		{"Skip if Q2 != 'Married'", &BranchRule{Op: BranchNotEquals, QuestionOrder: 2, Value: "married"}},
		{"skip if q10 != yes", &BranchRule{Op: BranchNotEquals, QuestionOrder: 10, Value: "yes"}},
		{"always show", nil},
		{"", nil},
	}
	for _, tc := range cases {
		got := ParseBranchRule(tc.logic)
		if tc.want == nil {
			if got != nil {
				t.Errorf("%q: expected no rule, got %+v", tc.logic, got)
			}
			continue
		}
		if got == nil {
			t.Errorf("%q: expected %+v, got nil", tc.logic, tc.want)
			continue
		}
		if *got != *tc.want {
			t.Errorf("%q: expected %+v, got %+v", tc.logic, tc.want, got)
		}
	}
}
