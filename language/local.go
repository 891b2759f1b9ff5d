package language

import (
	"context"
	"regexp"
	"strings"
)

// Local is a deterministic Service built on keyword and pattern matching.
// It is the terminal fallback behind an LLM-backed service, and enough on
// its own for offline or test use. Its open-answer judgment is permissive:
// without semantic understanding it accepts everything.
type Local struct {
	helpPatterns      []*regexp.Regexp
	confusionPatterns []*regexp.Regexp
	avoidancePatterns []*regexp.Regexp
}

func NewLocal() *Local {
	return &Local{
		helpPatterns:      compileAll(helpPatterns),
		confusionPatterns: compileAll(confusionPatterns),
		avoidancePatterns: compileAll(avoidancePatterns),
	}
}

var helpPatterns = []string{
	`why.*need.*this`,
	`why.*ask.*this`,
	`what.*for`,
	`\bhelp\b`,
	`\bexplain\b`,
	`don'?t understand`,
	`not sure`,
	`what.*mean`,
	`what is \w+`,
	`what does \w+`,
	`can you explain`,
	`tell me about`,
	`how.*used`,
	`what.*happen.*with`,
	`what.*do.*with`,
}

var confusionPatterns = []string{
	`i don'?t get it`,
	`confused`,
	`why.*question`,
	`why.*ask`,
	`i don'?t know why`,
	`not sure why`,
	`why do you need`,
	`what'?s the point`,
}

var avoidancePatterns = []string{
	`don'?t want to answer`,
	`dont want to answer`,
	`skip this`,
	`^pass$`,
	`next question`,
	`don'?t want to say`,
	`prefer not to`,
	`rather not`,
	`none of your business`,
	`\bprivate\b`,
	`can'?t answer`,
}

func compileAll(patterns []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(p))
	}
	return out
}

func matchesAny(patterns []*regexp.Regexp, s string) bool {
	for _, re := range patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

func (l *Local) ClassifyIntent(ctx context.Context, req *IntentRequest) (Intent, error) {
	input := strings.ToLower(strings.TrimSpace(req.Input))
	if matchesAny(l.helpPatterns, input) || matchesAny(l.confusionPatterns, input) {
		return IntentHelp, nil
	}
	if matchesAny(l.avoidancePatterns, input) {
		return IntentAvoid, nil
	}
	return IntentAnswer, nil
}

// keyword-keyed canned explanations, checked against the question prompt in
// order.
var cannedExplanations = []struct {
	keyword string
	text    string
}{
	{"substance abuse", "History of substance abuse means past or current problems with drugs or alcohol that have affected your life, work, relationships, or health. We ask this to understand what support services might be helpful for you."},
	{"drug", "I understand this feels personal. We ask about substance use so we can connect you with the right support services if needed. This information is confidential and helps us provide better care."},
	{"substance", "This helps us understand what kind of support might be helpful. All information is kept private and only used to connect you with appropriate resources."},
	{"history", "Family history helps us understand potential risk factors and provide better support. This information is confidential and helps our team serve you better."},
	{"court", "Legal information helps us understand any constraints or needs you might have. This ensures we provide appropriate services and support."},
	{"juvenile", "Juvenile means under 18 years old. We ask this because different services and legal protections apply to minors versus adults."},
	{"referred", "We ask about referrals to understand what services you've already tried and coordinate your care better."},
	{"treatment", "We ask about treatment to understand your care history and avoid duplication of services."},
	{"resources", "We want to know what resources you've been offered so we can build on existing support and avoid gaps in care."},
	{"benefit", "This information helps us understand your current support level and identify additional resources."},
	{"income", "Income information helps determine eligibility for various assistance programs."},
	{"housing", "Housing status helps us identify if you need shelter or housing assistance."},
	{"phone", "Your phone number helps us contact you about available services and appointments."},
	{"email", "Email allows us to send you important updates and resources."},
	{"city", "We need your city to connect you with local resources and services in your area."},
	{"language", "We want to communicate with you in your preferred language for better service."},
}

const genericExplanation = "We ask this to better understand your situation and connect you with the most helpful resources. All information is confidential."

const explainFollowUp = "Would you like to answer the question now?"

func (l *Local) Explain(ctx context.Context, prompt, input string) (string, error) {
	promptLower := strings.ToLower(prompt)
	for _, canned := range cannedExplanations {
		if strings.Contains(promptLower, canned.keyword) {
			return canned.text + "\n\n" + explainFollowUp, nil
		}
	}
	return genericExplanation + " " + explainFollowUp, nil
}

func (l *Local) JudgeOpenAnswer(ctx context.Context, prompt, input string) (*Judgement, error) {
	return &Judgement{Valid: true}, nil
}

var _ Service = (*Local)(nil)
