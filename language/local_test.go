package language

import (
	"context"
	"strings"
	"testing"
)

func TestLocalClassifyIntent(t *testing.T) {
	svc := NewLocal()
	cases := []struct {
		input string
		want  Intent
	}{
		{"why do you need this?", IntentHelp},
		{"what does juvenile mean?", IntentHelp},
		{"I don't understand", IntentHelp},
		{"can you explain that", IntentHelp},
		{"I'm confused", IntentHelp},
		{"what's the point", IntentHelp},
		{"I don't want to answer", IntentAvoid},
		{"skip this", IntentAvoid},
		{"pass", IntentAvoid},
		{"that's none of your business", IntentAvoid},
		{"I'd prefer not to say", IntentAvoid},
		{"Maria", IntentAnswer},
		{"Yes", IntentAnswer},
		{"555-123-4567", IntentAnswer},
	}
	for _, tc := range cases {
		got, err := svc.ClassifyIntent(context.Background(), &IntentRequest{
			Prompt: "What is your name?",
			Input:  tc.input,
		})
		if err != nil {
			t.Fatalf("%q: %v", tc.input, err)
		}
		if got != tc.want {
			t.Errorf("%q: expected %s, got %s", tc.input, tc.want, got)
		}
	}
}

func TestLocalExplainCanned(t *testing.T) {
	svc := NewLocal()
	text, err := svc.Explain(context.Background(), "Is the individual a juvenile or adult?", "what does that mean")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(text, "under 18") {
		t.Errorf("expected the juvenile explanation, got %q", text)
	}
	if !strings.Contains(text, "Would you like to answer the question now?") {
		t.Errorf("expected the follow-up line, got %q", text)
	}
}

func TestLocalExplainGeneric(t *testing.T) {
	svc := NewLocal()
	text, err := svc.Explain(context.Background(), "Any additional comments?", "why")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(text, "confidential") {
		t.Errorf("expected the generic explanation, got %q", text)
	}
}

func TestLocalJudgePermissive(t *testing.T) {
	svc := NewLocal()
	judgement, err := svc.JudgeOpenAnswer(context.Background(), "What services do you need?", "banana")
	if err != nil {
		t.Fatal(err)
	}
	if !judgement.Valid {
		t.Error("the deterministic service accepts every open answer")
	}
}

type scriptedService struct {
	intent Intent
	err    error
}

func (s *scriptedService) ClassifyIntent(ctx context.Context, req *IntentRequest) (Intent, error) {
	return s.intent, s.err
}

func (s *scriptedService) Explain(ctx context.Context, prompt, input string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "scripted", nil
}

func (s *scriptedService) JudgeOpenAnswer(ctx context.Context, prompt, input string) (*Judgement, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &Judgement{Valid: true}, nil
}

func TestFailbackOrder(t *testing.T) {
	failing := &scriptedService{err: context.DeadlineExceeded}
	working := &scriptedService{intent: IntentAvoid}
	svc := NewFailback(failing, working)

	intent, err := svc.ClassifyIntent(context.Background(), &IntentRequest{Input: "pass"})
	if err != nil {
		t.Fatal(err)
	}
	if intent != IntentAvoid {
		t.Errorf("expected the second service's result, got %s", intent)
	}

	text, err := svc.Explain(context.Background(), "q", "why")
	if err != nil {
		t.Fatal(err)
	}
	if text != "scripted" {
		t.Errorf("expected the second service's explanation, got %q", text)
	}
}

func TestFailbackAllFail(t *testing.T) {
	svc := NewFailback(&scriptedService{err: context.DeadlineExceeded})
	if _, err := svc.ClassifyIntent(context.Background(), &IntentRequest{Input: "x"}); err == nil {
		t.Error("expected the last error surfaced")
	}
}
