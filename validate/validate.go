// Package validate implements the answer-acceptance pipeline: format rules
// for typed fields, loose matching for choice fields, and delegated semantic
// judgment for open-ended answers.
package validate

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/monjil99/intakeagent/form"
	"github.com/monjil99/intakeagent/language"
)

// Result is the outcome of validating one raw answer. Message is only set on
// rejection and is always user-correctable guidance, never a fault.
// Normalized carries the canonical choice when a loose match resolved one.
type Result struct {
	Accepted   bool
	Message    string
	Normalized string
}

func accept() *Result                { return &Result{Accepted: true} }
func acceptAs(choice string) *Result { return &Result{Accepted: true, Normalized: choice} }
func reject(message string) *Result  { return &Result{Accepted: false, Message: message} }

// Validator checks answers against their question. Open-ended answers are
// delegated to the Language Service; a service failure accepts the answer
// rather than blocking the conversation.
type Validator struct {
	language language.Service
}

func New(svc language.Service) *Validator {
	return &Validator{language: svc}
}

var (
	emailRe  = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	digitRe  = regexp.MustCompile(`\d`)
	datePats = []*regexp.Regexp{
		regexp.MustCompile(`\d{1,2}[/-]\d{1,2}[/-]\d{4}`),
		regexp.MustCompile(`\d{4}[/-]\d{1,2}[/-]\d{1,2}`),
		regexp.MustCompile(`[A-Za-z]+ \d{1,2},? \d{4}`),
	}
)

// Validate applies the acceptance policy in order; the first rule that
// applies wins.
func (v *Validator) Validate(ctx context.Context, q *form.Question, raw string) *Result {
	answer := strings.TrimSpace(raw)
	if answer == "" {
		return reject("Please provide an answer to continue.")
	}

	// Prompt keywords demand a format regardless of kind, so a follow-up
	// phrased as "secondary phone" or "monthly benefit in $" is format
	// checked even when the template marks it free text or choice.
	switch {
	case q.Kind == form.KindEmail:
		return checkEmail(answer)
	case q.Kind == form.KindPhone || q.PromptContains("phone"):
		return checkPhone(answer)
	case q.Kind == form.KindDate || q.PromptContains("birth"):
		return checkDate(answer)
	case q.Kind == form.KindNumber || strings.Contains(q.Prompt, "$"):
		return checkNumber(answer)
	case q.Kind == form.KindSingleChoice:
		return checkSingleChoice(q, answer)
	case q.Kind == form.KindMultiChoice:
		return checkMultiChoice(q, answer)
	}
	return v.judgeOpen(ctx, q, answer)
}

func checkEmail(answer string) *Result {
	if !emailRe.MatchString(answer) {
		return reject("Please provide a valid email address (e.g., john@example.com)")
	}
	return accept()
}

func checkPhone(answer string) *Result {
	if len(digitRe.FindAllString(answer, -1)) < 10 {
		return reject("Please provide a valid phone number with at least 10 digits (e.g., 555-123-4567)")
	}
	return accept()
}

func checkDate(answer string) *Result {
	for _, re := range datePats {
		if re.MatchString(answer) {
			return accept()
		}
	}
	return reject("Please provide a valid date (e.g., 01/15/1990, January 15, 1990, or 1990-01-15)")
}

func checkNumber(answer string) *Result {
	if !digitRe.MatchString(answer) {
		return reject("Please provide a number (digits only, or with a dollar sign for money amounts)")
	}
	return accept()
}

var (
	yesSynonyms = map[string]bool{"y": true, "yes": true, "yep": true, "yeah": true}
	noSynonyms  = map[string]bool{"n": true, "no": true, "nope": true, "nah": true}
)

func checkSingleChoice(q *form.Question, answer string) *Result {
	normalized := form.Normalize(answer)

	for _, choice := range q.Choices {
		if normalized == form.Normalize(choice) {
			return acceptAs(choice)
		}
	}
	for _, choice := range q.Choices {
		nc := form.Normalize(choice)
		// The answer-in-choice direction is a plain substring, but the
		// choice-in-answer direction needs word boundaries so a short
		// choice like "No" cannot latch onto "not" inside a sentence.
		if strings.Contains(nc, normalized) || containsWord(normalized, nc) {
			return acceptAs(choice)
		}
	}
	switch {
	case yesSynonyms[normalized]:
		if choice, ok := choiceContaining(q.Choices, "yes"); ok {
			return acceptAs(choice)
		}
	case noSynonyms[normalized]:
		if choice, ok := choiceContaining(q.Choices, "no"); ok {
			return acceptAs(choice)
		}
	}

	if isYesNoPair(q.Choices) && len(strings.Fields(answer)) > 3 {
		return reject(fmt.Sprintf("This question needs a simple Yes or No answer. Please choose: %s", strings.Join(q.Choices, " or ")))
	}
	return reject(fmt.Sprintf("Please choose one of these options: %s", strings.Join(q.Choices, " / ")))
}

func checkMultiChoice(q *form.Question, answer string) *Result {
	normalized := form.Normalize(answer)
	var matched []string
	for _, choice := range q.Choices {
		if strings.Contains(normalized, form.Normalize(choice)) {
			matched = append(matched, choice)
		}
	}
	if len(matched) > 0 {
		return acceptAs(strings.Join(matched, ", "))
	}
	return reject(fmt.Sprintf("Please select from these options: %s", strings.Join(q.Choices, " / ")))
}

func containsWord(haystack, needle string) bool {
	return strings.Contains(" "+haystack+" ", " "+needle+" ")
}

func choiceContaining(choices []string, keyword string) (string, bool) {
	for _, choice := range choices {
		if strings.Contains(form.Normalize(choice), keyword) {
			return choice, true
		}
	}
	return "", false
}

func isYesNoPair(choices []string) bool {
	if len(choices) != 2 {
		return false
	}
	for _, choice := range choices {
		n := form.Normalize(choice)
		if n != "yes" && n != "no" {
			return false
		}
	}
	return true
}

func (v *Validator) judgeOpen(ctx context.Context, q *form.Question, answer string) *Result {
	judgement, err := v.language.JudgeOpenAnswer(ctx, q.Prompt, answer)
	if err != nil {
		// Fail open: never block the conversation on an external outage.
		slog.Warn("open-answer judgment unavailable, accepting answer", "question", q.ID, "error", err)
		return accept()
	}
	if judgement.Valid {
		return accept()
	}
	if judgement.IsQuestion {
		message := "I understand you're asking about this."
		if judgement.Reason != "" {
			message += " " + judgement.Reason
		}
		if judgement.Example != "" {
			message += fmt.Sprintf("\n\nTo answer this question, try: %s", judgement.Example)
		}
		return reject(message)
	}
	message := judgement.Reason
	if message == "" {
		message = "That doesn't seem to answer the question."
	}
	if judgement.Example != "" {
		message += fmt.Sprintf("\n\nExample of a good answer: %s", judgement.Example)
	}
	return reject(message)
}
