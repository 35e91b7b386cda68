package agent

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// maxCallRounds bounds the function calls an expert can chain before it
// answers.
const maxCallRounds = 8

// Expert represent a chat with a business expert.
type Expert struct {
	Name        string                       `json:"name"`
	Description string                       `json:"description"`
	ModelName   string                       `json:"model_name"`
	Config      *genai.GenerateContentConfig `json:"config"`
	Library     Library
	chat        *genai.Chat
	log         *zap.Logger
}

// Start creates the chat of the expert.
func (e *Expert) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, e.ModelName, e.Config, nil)
	if err != nil {
		return err
	}
	e.chat = chat
	if e.log == nil {
		e.log = zap.NewNop()
	}
	return nil
}

// Ask sends parts to the expert and returns its answer. Function calls made
// by the expert are served by its Library until it answers.
func (e *Expert) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	for range maxCallRounds {
		resp, err := e.chat.Send(ctx, parts...)
		if err != nil {
			return nil, err
		}
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
			return nil, fmt.Errorf("no response from expert %s", e.Name)
		}
		content := resp.Candidates[0].Content

		calls := functionCalls(content)
		if len(calls) == 0 {
			return content, nil
		}
		if e.Library == nil {
			return nil, fmt.Errorf("expert %s doesn't know how to make function calls", e.Name)
		}
		// answer every call, and send the answers back.
		parts = make([]*genai.Part, 0, len(calls))
		for _, call := range calls {
			e.log.Debug("function call", zap.String("expert", e.Name), zap.String("function", call.Name), zap.Any("args", call.Args))
			parts = append(parts, &genai.Part{FunctionResponse: e.Library(ctx, call)})
		}
	}
	return nil, fmt.Errorf("expert %s made more than %d rounds of function calls", e.Name, maxCallRounds)
}

// functionCalls returns the function calls of content.
func functionCalls(content *genai.Content) []*genai.FunctionCall {
	var calls []*genai.FunctionCall
	for _, p := range content.Parts {
		if p.FunctionCall != nil {
			calls = append(calls, p.FunctionCall)
		}
	}
	return calls
}

// Text concatenates the text parts of content.
func Text(content *genai.Content) string {
	if content == nil {
		return ""
	}
	var b strings.Builder
	for _, p := range content.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}

// Declaration returns the function declaration to ask this expert.
func (e *Expert) Declaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        e.Name,
		Description: e.Description,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"question": {
					Type:        genai.TypeString,
					Description: "The question to ask the expert.",
				},
			},
			Required: []string{"question"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "Expert's response.",
		},
	}
}

// Call perform the call of asking this expert.
func (e *Expert) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	question, err := stringArg(args, "question")
	if err == nil && question == "" {
		err = fmt.Errorf("argument 'question' is required")
	}
	if err != nil {
		return respond(id, e.Name, "", err)
	}

	response, err := e.Ask(ctx, &genai.Part{Text: question})
	if err != nil {
		return respond(id, e.Name, "", fmt.Errorf("something went wrong while calling the expert: %w", err))
	}
	answer := Text(response)
	e.log.Debug("expert answered", zap.String("expert", e.Name), zap.String("question", question), zap.String("answer", answer))
	return respond(id, e.Name, answer, nil)
}
