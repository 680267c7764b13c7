// Package openai implements the solver's reasoner interface on top of
// the OpenAI chat completions API with tool calling.
package openai

import (
	"context"
	"errors"
	"fmt"
	"log"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/beka-birhanu/mazepilot/solver"
)

var ErrMissingAPIKey = errors.New("OpenAI API key is not set")

// Client talks to the chat completions endpoint. One request is made per
// reasoner round; the caller's context carries the per-round deadline.
type Client struct {
	client *goopenai.Client
	model  string
	logger *log.Logger
}

// Config holds settings for creating a new Client.
type Config struct {
	APIKey string
	Model  string // e.g. "gpt-4o-mini"
	Logger *log.Logger
}

// New creates a reasoner client. The API key is required; the model
// defaults to gpt-4o-mini.
func New(c *Config) (*Client, error) {
	if c == nil || c.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	model := c.Model
	if model == "" {
		model = goopenai.GPT4oMini
	}
	return &Client{
		client: goopenai.NewClient(c.APIKey),
		model:  model,
		logger: c.Logger,
	}, nil
}

// Decide implements solver.Reasoner.
func (c *Client) Decide(ctx context.Context, req *solver.Request) (*solver.Response, error) {
	resp, err := c.client.CreateChatCompletion(ctx, buildRequest(c.model, req))
	if err != nil {
		c.logf("chat completion failed: %v", err)
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("chat completion returned no choices")
	}

	msg := parseMessage(resp.Choices[0].Message)
	c.logf("round answered: %d tool calls, finish=%s", len(msg.ToolCalls), resp.Choices[0].FinishReason)
	return &solver.Response{Message: msg}, nil
}

func (c *Client) logf(format string, args ...any) {
	if c.logger != nil {
		c.logger.Printf(format, args...)
	}
}

// buildRequest maps the solver's transcript and tool schema onto the wire
// request. The instruction text rides as the system message.
func buildRequest(model string, req *solver.Request) goopenai.ChatCompletionRequest {
	messages := make([]goopenai.ChatCompletionMessage, 0, len(req.Transcript)+1)
	messages = append(messages, goopenai.ChatCompletionMessage{
		Role:    goopenai.ChatMessageRoleSystem,
		Content: req.Instructions,
	})
	for _, m := range req.Transcript {
		messages = append(messages, buildMessage(m))
	}

	tools := make([]goopenai.Tool, 0, len(req.Tools))
	for _, t := range req.Tools {
		tools = append(tools, goopenai.Tool{
			Type: goopenai.ToolTypeFunction,
			Function: &goopenai.FunctionDefinition{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			},
		})
	}

	return goopenai.ChatCompletionRequest{
		Model:    model,
		Messages: messages,
		Tools:    tools,
	}
}

func buildMessage(m solver.Message) goopenai.ChatCompletionMessage {
	out := goopenai.ChatCompletionMessage{Content: m.Content}

	switch m.Role {
	case solver.RoleAssistant:
		out.Role = goopenai.ChatMessageRoleAssistant
		for _, call := range m.ToolCalls {
			out.ToolCalls = append(out.ToolCalls, goopenai.ToolCall{
				ID:   call.ID,
				Type: goopenai.ToolTypeFunction,
				Function: goopenai.FunctionCall{
					Name:      call.Name,
					Arguments: string(call.Arguments),
				},
			})
		}
	case solver.RoleTool:
		out.Role = goopenai.ChatMessageRoleTool
		out.ToolCallID = m.CallID
	default:
		out.Role = goopenai.ChatMessageRoleUser
	}

	return out
}

// parseMessage maps a wire response message back onto the solver types.
func parseMessage(m goopenai.ChatCompletionMessage) solver.Message {
	out := solver.Message{Role: solver.RoleAssistant, Content: m.Content}
	for _, call := range m.ToolCalls {
		if call.Type != goopenai.ToolTypeFunction {
			continue
		}
		out.ToolCalls = append(out.ToolCalls, solver.ToolCall{
			ID:        call.ID,
			Name:      call.Function.Name,
			Arguments: []byte(call.Function.Arguments),
		})
	}
	return out
}
