// Package language defines the delegated semantic-judgment capability the
// engine consumes: intent classification, question explanation and
// open-ended answer judgment. Implementations may be LLM-backed or fully
// deterministic; callers always fail open on error.
package language

import (
	"context"

	"github.com/monjil99/intakeagent/form"
)

type Intent string

const (
	// IntentHelp means the respondent is asking about the question rather
	// than answering it.
	IntentHelp Intent = "help"
	// IntentAvoid means the respondent is trying to dodge the question.
	IntentAvoid Intent = "avoid"
	// IntentAnswer means the input is a genuine answer attempt.
	IntentAnswer Intent = "answer"
)

// IntentRequest carries the current question context alongside the raw
// respondent input.
type IntentRequest struct {
	Prompt  string
	Kind    form.FieldKind
	Choices []string
	Input   string
}

// Judgement is the verdict on an open-ended answer.
type Judgement struct {
	Valid bool
	// IsQuestion is set when the input is a question back to the assistant
	// rather than an answer.
	IsQuestion bool
	Reason     string
	Example    string
}

// Service is the Language Service consumed by the session and the answer
// validator. All three calls are idempotent; retrying on transient failure
// is safe.
type Service interface {
	ClassifyIntent(ctx context.Context, req *IntentRequest) (Intent, error)
	Explain(ctx context.Context, prompt, input string) (string, error)
	JudgeOpenAnswer(ctx context.Context, prompt, input string) (*Judgement, error)
}

// Failback tries each service in order and returns the first successful
// result.
type Failback struct {
	services []Service
}

func NewFailback(services ...Service) *Failback {
	return &Failback{services: services}
}

func (f *Failback) ClassifyIntent(ctx context.Context, req *IntentRequest) (Intent, error) {
	var lastErr error
	for _, svc := range f.services {
		intent, err := svc.ClassifyIntent(ctx, req)
		if err == nil {
			return intent, nil
		}
		lastErr = err
	}
	return IntentAnswer, lastErr
}

func (f *Failback) Explain(ctx context.Context, prompt, input string) (string, error) {
	var lastErr error
	for _, svc := range f.services {
		text, err := svc.Explain(ctx, prompt, input)
		if err == nil {
			return text, nil
		}
		lastErr = err
	}
	return "", lastErr
}

func (f *Failback) JudgeOpenAnswer(ctx context.Context, prompt, input string) (*Judgement, error) {
	var lastErr error
	for _, svc := range f.services {
		judgement, err := svc.JudgeOpenAnswer(ctx, prompt, input)
		if err == nil {
			return judgement, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

var _ Service = (*Failback)(nil)
