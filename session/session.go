// Package session drives the per-turn state machine of one conversational
// intake: question traversal, intent short-circuits, answer validation,
// standard-field extraction and final submission assembly.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cloudwego/eino/schema"

	"github.com/monjil99/intakeagent/extract"
	"github.com/monjil99/intakeagent/form"
	"github.com/monjil99/intakeagent/language"
	"github.com/monjil99/intakeagent/skiplogic"
	"github.com/monjil99/intakeagent/validate"
)

type Phase string

const (
	PhaseSelecting     Phase = "selecting"
	PhasePresenting    Phase = "presenting"
	PhaseAwaitingInput Phase = "awaiting_input"
	PhaseValidating    Phase = "validating"
	PhaseCompleted     Phase = "completed"
)

// Prompt is one question prepared for presentation.
type Prompt struct {
	Question *form.Question
	Text     string
}

// Turn is the engine's reaction to one respondent input.
type Turn struct {
	Intent    language.Intent
	Accepted  bool
	Completed bool
	Message   string
}

// Session owns the response map, the accumulators and the current-question
// pointer for one respondent. It is not safe for concurrent use; independent
// respondents get independent sessions.
type Session struct {
	language  language.Service
	validator *validate.Validator
	trimmer   Trimmer

	template   *form.Template
	responses  *form.ResponseMap
	personal   form.PersonalInfo
	address    form.AddressInfo
	current    *form.Question
	phase      Phase
	transcript []*schema.Message
	turns      int
}

type Option func(*Session)

// WithTrimmer bounds the transcript; the default keeps the last 50
// non-system messages.
func WithTrimmer(t Trimmer) Option {
	return func(s *Session) {
		s.trimmer = t
	}
}

func New(svc language.Service, opts ...Option) *Session {
	s := &Session{
		language:  svc,
		validator: validate.New(svc),
		trimmer:   KeepSystemLastNTrimmer{N: 50},
		phase:     PhaseSelecting,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Bind attaches a template, resets all per-conversation state and returns
// the welcome message.
func (s *Session) Bind(tmpl *form.Template) (string, error) {
	if tmpl == nil {
		return "", stateErrorf("bind", "nil template")
	}
	if err := tmpl.Validate(); err != nil {
		return "", fmt.Errorf("bind template: %w", err)
	}
	s.template = tmpl
	s.responses = form.NewResponseMap()
	s.personal = form.PersonalInfo{}
	s.address = form.AddressInfo{}
	s.current = nil
	s.transcript = nil
	s.turns = 0
	s.phase = PhasePresenting
	slog.Debug("session bound", "template", tmpl.Name, "questions", len(tmpl.Questions))
	return welcomeMessage(tmpl), nil
}

// NextPrompt scans the template in order, skipping answered questions and
// any the skip-logic evaluator rules out, and returns the first remaining
// question. It returns nil once every question is answered or perpetually
// skipped; the session is then completed. Calling it repeatedly without
// submitting returns the same question.
func (s *Session) NextPrompt() (*Prompt, error) {
	if s.template == nil {
		return nil, stateErrorf("next_prompt", "no template bound")
	}
	for i := range s.template.Questions {
		q := &s.template.Questions[i]
		if s.responses.Has(q.ID) {
			continue
		}
		if skiplogic.ShouldSkip(q, s.responses, s.template) {
			continue
		}
		s.current = q
		s.phase = PhaseAwaitingInput
		return &Prompt{Question: q, Text: FormatQuestion(q)}, nil
	}
	s.current = nil
	s.phase = PhaseCompleted
	return nil, nil
}

// Submit processes one raw respondent input against the current question.
// Help-seeking and avoidance inputs short-circuit without recording an
// answer; a genuine answer goes through the validator and, on acceptance,
// is recorded, extracted into the accumulators, and followed by the next
// prompt in the returned message.
func (s *Session) Submit(ctx context.Context, raw string) (*Turn, error) {
	if s.template == nil {
		return nil, stateErrorf("submit", "no template bound")
	}
	if s.current == nil {
		return nil, stateErrorf("submit", "no current question; call NextPrompt first")
	}
	q := s.current
	s.phase = PhaseValidating
	s.transcript = appendTranscript(s.transcript, schema.UserMessage(raw))

	intent := s.classify(ctx, q, raw)
	switch intent {
	case language.IntentHelp:
		return s.finishTurn(&Turn{Intent: intent, Message: s.explain(ctx, q, raw)}), nil
	case language.IntentAvoid:
		return s.finishTurn(&Turn{Intent: intent, Message: s.nudge(q)}), nil
	}

	result := s.validator.Validate(ctx, q, raw)
	if !result.Accepted {
		return s.finishTurn(&Turn{Intent: intent, Message: result.Message}), nil
	}

	// Record the canonical choice when the validator resolved one, so later
	// branch rules compare against the choice value rather than a paraphrase.
	answer := raw
	if result.Normalized != "" {
		answer = result.Normalized
	}
	if err := s.responses.Record(q.ID, answer); err != nil {
		return nil, stateErrorf("submit", "record answer: %v", err)
	}
	extract.Apply(q, answer, &s.personal, &s.address)
	s.current = nil
	s.turns++
	slog.Debug("answer accepted", "question", q.ID, "answered", s.responses.Len())

	confirmation := confirmationFor(answer, s.turns)
	next, err := s.NextPrompt()
	if err != nil {
		return nil, err
	}
	turn := &Turn{Intent: intent, Accepted: true}
	if next != nil {
		turn.Message = confirmation + "\n\n" + next.Text
	} else {
		turn.Completed = true
		turn.Message = confirmation + "\n\n" + completionMessage
	}
	return s.finishTurn(turn), nil
}

// classify asks the Language Service what the input is doing. Failure means
// the input is treated as an answer so the conversation never stalls.
func (s *Session) classify(ctx context.Context, q *form.Question, raw string) language.Intent {
	intent, err := s.language.ClassifyIntent(ctx, &language.IntentRequest{
		Prompt:  q.Prompt,
		Kind:    q.Kind,
		Choices: q.Choices,
		Input:   raw,
	})
	if err != nil {
		slog.Warn("intent classification unavailable, treating input as answer", "question", q.ID, "error", err)
		return language.IntentAnswer
	}
	return intent
}

func (s *Session) explain(ctx context.Context, q *form.Question, raw string) string {
	text, err := s.language.Explain(ctx, q.Prompt, raw)
	if err == nil && text != "" {
		return text
	}
	if err != nil {
		slog.Warn("explanation unavailable, using help text", "question", q.ID, "error", err)
	}
	if q.HelpText != "" {
		return q.HelpText + "\n\nWould you like to answer the question now?"
	}
	return "We ask this to better understand your situation and connect you with the most helpful resources. All information is confidential. Would you like to answer the question now?"
}

var nudgeMessages = []string{
	"I understand this question might feel personal. However, answering it helps us provide you with the most appropriate support and resources. Your information is completely confidential and only used to help you better.",
	"I know some questions can be uncomfortable, but this one is important for connecting you with the right services. All your responses are kept private and secure. Would you be willing to share this information?",
	"This question might seem intrusive, but it helps our team understand your needs better. Everything you share is confidential and helps us serve you more effectively. Could you help us by answering?",
}

func (s *Session) nudge(q *form.Question) string {
	message := nudgeMessages[s.turns%len(nudgeMessages)]
	if len(q.Choices) > 0 && len(q.Choices) <= 4 {
		message += fmt.Sprintf("\n\nYour options are: %s", strings.Join(q.Choices, " / "))
	}
	return message
}

func (s *Session) finishTurn(turn *Turn) *Turn {
	s.transcript = appendTranscript(s.transcript, schema.AssistantMessage(turn.Message, nil))
	if s.trimmer != nil {
		s.transcript = s.trimmer.Trim(s.transcript)
	}
	if s.phase == PhaseValidating {
		s.phase = PhaseAwaitingInput
	}
	return turn
}

func (s *Session) Phase() Phase {
	return s.phase
}

func (s *Session) Completed() bool {
	return s.phase == PhaseCompleted
}

func (s *Session) Template() *form.Template {
	return s.template
}

// Current returns the question awaiting an answer, or nil.
func (s *Session) Current() *form.Question {
	return s.current
}

// Responses returns the recorded answers in answer order.
func (s *Session) Responses() []form.Response {
	if s.responses == nil {
		return nil
	}
	return s.responses.Entries()
}

func (s *Session) Personal() form.PersonalInfo {
	return s.personal
}

func (s *Session) Address() form.AddressInfo {
	return s.address
}

// Transcript returns the conversation history, trimmed per the configured
// trimmer, for hosts that resume sessions or feed history to LLM components.
func (s *Session) Transcript() []*schema.Message {
	out := make([]*schema.Message, len(s.transcript))
	copy(out, s.transcript)
	return out
}

func welcomeMessage(tmpl *form.Template) string {
	return fmt.Sprintf(`Hello! I'm here to help you complete the %s intake form.

I'll ask you questions one at a time in a conversational way. If you're unsure about any question, just ask "Why do you need this?" and I'll explain.

Let's get started!`, tmpl.Name)
}

const completionMessage = "Excellent! We've completed all the questions. Let me prepare your submission summary."

var confirmationFormats = []string{
	"Got it! I've recorded your answer: %s",
	"Thank you! I've noted: %s",
	"Perfect! I've saved: %s",
	"Excellent! I've recorded: %s",
}

func confirmationFor(answer string, turn int) string {
	return fmt.Sprintf(confirmationFormats[turn%len(confirmationFormats)], answer)
}
