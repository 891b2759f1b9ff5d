package session

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/monjil99/intakeagent/form"
)

// FormatQuestion renders a question for conversational presentation:
// second-person phrasing, choice rendering sized to the option count, and a
// format hint for typed fields.
func FormatQuestion(q *form.Question) string {
	var sb strings.Builder
	sb.WriteString(Conversationalize(q.Prompt))

	switch q.Kind {
	case form.KindSingleChoice:
		sb.WriteString(formatSingleChoices(q.Choices))
	case form.KindMultiChoice:
		sb.WriteString(formatMultiChoices(q.Choices))
	default:
		if hint := formatHint(q.Kind); hint != "" {
			sb.WriteString("\n\n")
			sb.WriteString(hint)
		}
	}
	return sb.String()
}

func formatSingleChoices(choices []string) string {
	switch {
	case len(choices) == 0:
		return ""
	case len(choices) <= 2:
		return fmt.Sprintf("\n\nYou can answer: %s", strings.Join(choices, " or "))
	case len(choices) <= 4:
		last := choices[len(choices)-1]
		return fmt.Sprintf("\n\nYou can choose: %s, or %s", strings.Join(choices[:len(choices)-1], ", "), last)
	default:
		return "\n\nPlease choose from these options:\n" + numberedList(choices)
	}
}

func formatMultiChoices(choices []string) string {
	if len(choices) == 0 {
		return ""
	}
	if len(choices) <= 3 {
		return fmt.Sprintf("\n\nYou can select: %s (choose one or more)", strings.Join(choices, ", "))
	}
	return "\n\nYou can select multiple options from:\n" + numberedList(choices)
}

func numberedList(choices []string) string {
	var sb strings.Builder
	for i, choice := range choices {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, choice)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatHint(kind form.FieldKind) string {
	switch kind {
	case form.KindEmail:
		return "Please provide a valid email address (like john@example.com)"
	case form.KindPhone:
		return "Please provide your phone number (like 555-123-4567)"
	case form.KindDate:
		return "Please provide the date (like MM/DD/YYYY or January 1, 1990)"
	case form.KindNumber:
		return "Please provide a number"
	default:
		return ""
	}
}

// promptRewrite replaces a well-known intake prompt wholesale. Rules run in
// order; the first whose keywords all appear in the lower-cased prompt wins.
type promptRewrite struct {
	keywords []string
	text     string
}

var promptRewrites = []promptRewrite{
	{[]string{"court case"}, "Do you currently have any ongoing court cases?"},
	{[]string{"referral source", "court"}, "How did you find out about our court services?"},
	{[]string{"city"}, "What city do you live in?"},
	{[]string{"ciudad"}, "What city do you live in?"},
	{[]string{"tanf"}, "Do you receive TANF benefits? If yes, what's your monthly amount?"},
	{[]string{"y programs"}, "Are you currently participating in any YMCA programs?"},
	{[]string{"ymca"}, "Are you currently participating in any YMCA programs?"},
	{[]string{"program", "enrolled"}, "Which program are you interested in or currently enrolled in?"},
	{[]string{"secondary contact", "phone"}, "Is there another phone number we can reach you at?"},
	{[]string{"secondary contact", "email"}, "Do you have an alternate email address?"},
	{[]string{"preferred method", "contact"}, "How would you prefer us to contact you?"},
	{[]string{"preferred language"}, "What language would you prefer for our communications?"},
	{[]string{"pronouns"}, "What pronouns do you use? (This is optional)"},
	{[]string{"other phone or email"}, "Do you have any other contact information you'd like to share?"},
	{[]string{"drug of choice"}, "What is your primary substance of concern?"},
	{[]string{"juvenile", "adult"}, "Are you applying as a juvenile (under 18) or as an adult?"},
}

var conversationalReplacements = []struct {
	re          *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`(?i)\bthe individual\b`), "you"},
	{regexp.MustCompile(`(?i)\bindividual\b`), "you"},
	{regexp.MustCompile(`(?i)\bDoes you\b`), "Do you"},
	{regexp.MustCompile(`(?i)\bIs you\b`), "Are you"},
	{regexp.MustCompile(`(?i)\bHas you\b`), "Do you have"},
}

// Conversationalize rewrites formal intake phrasing into second person and
// ends the prompt as a question. Well-known prompts are replaced wholesale
// from the rewrite table before the generic pass.
func Conversationalize(prompt string) string {
	text := strings.TrimSpace(prompt)
	lower := strings.ToLower(text)
	for _, r := range promptRewrites {
		matched := true
		for _, kw := range r.keywords {
			if !strings.Contains(lower, kw) {
				matched = false
				break
			}
		}
		if matched {
			return r.text
		}
	}
	for _, r := range conversationalReplacements {
		text = r.re.ReplaceAllString(text, r.replacement)
	}
	switch {
	case strings.HasSuffix(text, "?"):
		return text
	case strings.HasSuffix(text, ":"):
		return strings.TrimSuffix(text, ":") + "?"
	default:
		return text + "?"
	}
}
