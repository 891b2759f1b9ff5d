package language

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/monjil99/intakeagent/structured"
)

const (
	classifyToolName = "classify_respondent_intent"
	classifyToolDesc = "Classify what the respondent's input is doing: asking for help, avoiding the question, or answering it."

	judgeToolName = "judge_open_answer"
	judgeToolDesc = "Judge whether a free-text answer is a relevant response to an intake question."
)

type classifyResult struct {
	Intent Intent `json:"intent" jsonschema:"required,enum=help,enum=avoid,enum=answer,description=What the respondent's input is doing"`
}

type judgeResult struct {
	Valid      bool   `json:"valid" jsonschema:"required,description=Whether the input is a relevant answer to the question"`
	IsQuestion bool   `json:"is_question" jsonschema:"required,description=Whether the input is a question back to the assistant"`
	Reason     string `json:"reason" jsonschema:"description=Brief explanation when invalid"`
	Example    string `json:"example" jsonschema:"description=Short realistic example of a good answer when helpful"`
}

// ToolBased is an LLM-backed Service built on forced tool calls. Wrap it in
// a Failback with a Local service so an outage degrades to deterministic
// behavior instead of blocking the conversation.
type ToolBased struct {
	chatModel     model.ToolCallingChatModel
	classifyChain *structured.Chain[*IntentRequest, classifyResult]
	judgeChain    *structured.Chain[*judgeInput, judgeResult]
}

type judgeInput struct {
	Prompt string
	Input  string
}

func NewToolBased(chatModel model.ToolCallingChatModel) (*ToolBased, error) {
	classifyChain, err := structured.NewChain[*IntentRequest, classifyResult](
		chatModel, buildClassifyPrompt, classifyToolName, classifyToolDesc)
	if err != nil {
		return nil, fmt.Errorf("create intent classifier: %w", err)
	}
	judgeChain, err := structured.NewChain[*judgeInput, judgeResult](
		chatModel, buildJudgePrompt, judgeToolName, judgeToolDesc)
	if err != nil {
		return nil, fmt.Errorf("create answer judge: %w", err)
	}
	return &ToolBased{
		chatModel:     chatModel,
		classifyChain: classifyChain,
		judgeChain:    judgeChain,
	}, nil
}

func (t *ToolBased) ClassifyIntent(ctx context.Context, req *IntentRequest) (Intent, error) {
	result, err := t.classifyChain.Invoke(ctx, req)
	if err != nil {
		return IntentAnswer, err
	}
	switch result.Intent {
	case IntentHelp, IntentAvoid, IntentAnswer:
		return result.Intent, nil
	default:
		return IntentAnswer, fmt.Errorf("unexpected intent %q from %s", result.Intent, classifyToolName)
	}
}

func (t *ToolBased) Explain(ctx context.Context, prompt, input string) (string, error) {
	messages := []*schema.Message{
		schema.SystemMessage(explainSystemPrompt),
		schema.UserMessage(fmt.Sprintf("Question: %q\n\nThe respondent said: %q\n\nExplain briefly why this information is needed.", prompt, input)),
	}
	response, err := t.chatModel.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("explain call failed: %w", err)
	}
	text := strings.TrimSpace(response.Content)
	if text == "" {
		return "", fmt.Errorf("empty explanation from model")
	}
	return text + "\n\nWould you like to answer the question now?", nil
}

func (t *ToolBased) JudgeOpenAnswer(ctx context.Context, prompt, input string) (*Judgement, error) {
	result, err := t.judgeChain.Invoke(ctx, &judgeInput{Prompt: prompt, Input: input})
	if err != nil {
		return nil, err
	}
	return &Judgement{
		Valid:      result.Valid,
		IsQuestion: result.IsQuestion,
		Reason:     result.Reason,
		Example:    result.Example,
	}, nil
}

const explainSystemPrompt = `You are a compassionate social services intake assistant. A respondent is confused about an intake question. In two or three sentences, explain why the information is needed, how it helps connect them with appropriate resources, and reassure them about confidentiality if relevant. Be conversational and do not repeat the question.`

func buildClassifyPrompt(ctx context.Context, req *IntentRequest) ([]*schema.Message, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Current question:\n%s\n", req.Prompt)
	if req.Kind != "" {
		fmt.Fprintf(&sb, "\n# Field kind:\n%s\n", req.Kind)
	}
	if len(req.Choices) > 0 {
		fmt.Fprintf(&sb, "\n# Answer options:\n%s\n", strings.Join(req.Choices, ", "))
	}
	fmt.Fprintf(&sb, "\n# Respondent input:\n%s\n", req.Input)

	systemPrompt := fmt.Sprintf(`You are an assistant for a conversational intake form, deciding what the respondent's latest input is doing.

Always judge the input against the question being asked; do not classify on isolated words.

Choose exactly one intent:
- help: the respondent asks about the question itself, wants an explanation, or expresses confusion (e.g. "why do you need this?", "what does that mean?", "I don't understand").
- avoid: the respondent refuses or dodges the question (e.g. "skip this", "I'd rather not say", "none of your business").
- answer: the input is a genuine attempt to answer, even a poor one.

Call the '%s' tool with the result.`, classifyToolName)

	return []*schema.Message{
		schema.SystemMessage(systemPrompt),
		schema.UserMessage(sb.String()),
	}, nil
}

func buildJudgePrompt(ctx context.Context, in *judgeInput) ([]*schema.Message, error) {
	systemPrompt := fmt.Sprintf(`You are validating a respondent's free-text answer to an intake form question.

Determine which of these the input is:
1. A question back to the assistant (like "how is this used?").
2. A relevant answer to the question asked.
3. An answer that is completely unrelated or off-topic.

Rules:
- A question back: invalid, is_question true, reason explains why the information is needed.
- An off-topic answer: invalid, reason states the problem, example gives a short realistic good answer.
- A relevant answer: valid.

Call the '%s' tool with the result.`, judgeToolName)

	userPrompt := fmt.Sprintf("Question: %q\n\nRespondent's input: %q", in.Prompt, in.Input)

	return []*schema.Message{
		schema.SystemMessage(systemPrompt),
		schema.UserMessage(userPrompt),
	}, nil
}

var _ Service = (*ToolBased)(nil)
