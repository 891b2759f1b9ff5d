package session

import (
	"fmt"
	"testing"

	"github.com/cloudwego/eino/schema"
)

func TestKeepSystemLastNTrimmer(t *testing.T) {
	history := []*schema.Message{schema.SystemMessage("system")}
	for i := 0; i < 10; i++ {
		history = append(history, schema.UserMessage(fmt.Sprintf("u%d", i)))
	}

	trimmed := KeepSystemLastNTrimmer{N: 4}.Trim(history)
	if len(trimmed) != 5 {
		t.Fatalf("expected system plus last 4, got %d messages", len(trimmed))
	}
	if trimmed[0].Role != schema.System {
		t.Error("system message must survive trimming")
	}
	if trimmed[1].Content != "u6" || trimmed[4].Content != "u9" {
		t.Errorf("expected the last four user messages, got %v", trimmed)
	}
}

func TestTrimmerKeepsShortHistory(t *testing.T) {
	history := []*schema.Message{schema.UserMessage("a"), schema.UserMessage("b")}
	trimmed := KeepSystemLastNTrimmer{N: 5}.Trim(history)
	if len(trimmed) != 2 {
		t.Errorf("short history must pass through, got %d", len(trimmed))
	}
}

func TestTrimmerZeroKeepsOnlySystem(t *testing.T) {
	history := []*schema.Message{
		schema.SystemMessage("system"),
		schema.UserMessage("a"),
	}
	trimmed := KeepSystemLastNTrimmer{N: 0}.Trim(history)
	if len(trimmed) != 1 || trimmed[0].Role != schema.System {
		t.Errorf("expected only the system message, got %v", trimmed)
	}
}

func TestAppendTranscriptDedupes(t *testing.T) {
	history := appendTranscript(nil, schema.UserMessage("hi"))
	history = appendTranscript(history, schema.UserMessage("hi"))
	history = appendTranscript(history, nil, schema.UserMessage("there"))
	if len(history) != 2 {
		t.Errorf("expected consecutive duplicate and nil dropped, got %d", len(history))
	}
}
